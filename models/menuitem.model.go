package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu categories
const (
	CategoryAppetizers  = "Appetizers"
	CategoryMainCourses = "Main Courses"
	CategoryDesserts    = "Desserts"
	CategoryBeverages   = "Beverages"
	CategorySpecials    = "Specials"
)

// DefaultMenuImage is used when an item is created without an image URL.
const DefaultMenuImage = "https://via.placeholder.com/400x300?text=Food+Item"

// DefaultPreparationTime is the fallback preparation estimate in minutes.
const DefaultPreparationTime = 20

// MenuItem represents a dish or drink on the menu
type MenuItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Price           float64            `bson:"price" json:"price"`
	Category        string             `bson:"category" json:"category"`
	Image           string             `bson:"image" json:"image"`
	IsAvailable     bool               `bson:"isAvailable" json:"isAvailable"`
	Featured        bool               `bson:"featured" json:"featured"`
	PreparationTime int                `bson:"preparationTime" json:"preparationTime"` // minutes
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidCategory reports whether c is one of the defined menu categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryAppetizers, CategoryMainCourses, CategoryDesserts, CategoryBeverages, CategorySpecials:
		return true
	}
	return false
}

// Validate checks the fields required to put an item on the menu.
func (m *MenuItem) Validate() error {
	if m.Name == "" {
		return ErrValidation("menu item name is required")
	}
	if m.Description == "" {
		return ErrValidation("description is required")
	}
	if m.Price < 0 {
		return ErrValidation("price must not be negative")
	}
	if !ValidCategory(m.Category) {
		return ErrValidation("invalid category")
	}
	return nil
}
