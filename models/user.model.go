package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address represents a delivery address
type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
}

// Complete reports whether every address field is filled in.
func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.ZipCode != ""
}

// User represents a customer or admin account
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password,omitempty" json:"-"`
	Phone     string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   Address              `bson:"address,omitempty" json:"address"`
	Role      string               `bson:"role" json:"role"` // "user" or "admin"
	Orders    []primitive.ObjectID `bson:"orders,omitempty" json:"orders,omitempty"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// UserContact is the subset of User embedded in admin order views.
type UserContact struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
