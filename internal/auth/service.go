package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ilomarket/shop-backend/internal/logging"
	"github.com/ilomarket/shop-backend/internal/models"
)

var (
	ErrValidation         = errors.New("validation")                          // 400
	ErrUserExists         = errors.New("user with this email already exists") // 409
	ErrInvalidCredentials = errors.New("invalid credentials")                 // 401
)

const accessTokenTTL = 15 * time.Minute

type Service struct {
	Repo      *Repo
	JWTSecret []byte
}

type LoginResult struct {
	User  models.User
	Token string
}

func (s *Service) Register(ctx context.Context, name, email, password string) (models.User, error) {
	l := logging.FromContext(ctx).With("service", "auth.register")

	if name == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: name, email and password required", ErrValidation)
	}

	existing, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		HashedPassword: string(hashed),
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return models.User{}, err
	}

	l.Info("register_success", "user_id", user.ID)
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	l := logging.FromContext(ctx).With("service", "auth.login")

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if user == nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.createToken(user.ID, user.Email)
	if err != nil {
		return LoginResult{}, err
	}

	l.Info("login_success", "user_id", user.ID)
	return LoginResult{User: *user, Token: token}, nil
}

func (s *Service) createToken(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTSecret)
}
