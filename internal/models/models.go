package models

import (
	"time"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	StoreID     string    `json:"store_id"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
}

type Store struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Country    string    `json:"country"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	LocationID string    `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type User struct {
	ID             string    `gorm:"primaryKey"       json:"id"`
	Name           string    `gorm:"not null"         json:"name"`
	Email          string    `gorm:"unique;not null"  json:"email"`
	HashedPassword string    `gorm:"not null"         json:"-"`
	CreatedAt      time.Time `gorm:"not null"         json:"created_at"`
}
