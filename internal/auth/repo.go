package auth

import (
	"context"
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ilomarket/shop-backend/internal/models"
)

// Repo stores users in gorm over an in-memory sqlite database. Like the rest
// of the system's state it lives for the process lifetime only.
type Repo struct {
	DB *gorm.DB
}

func NewDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}
	return db, nil
}

func (r *Repo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// GetUserByEmail returns nil without an error when no user matches.
func (r *Repo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
