package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out for delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Payment statuses
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// PaymentMethodCOD is the only supported payment method.
const PaymentMethodCOD = "COD"

// DeliveryEstimate is added to the creation time to produce
// estimatedDeliveryTime.
const DeliveryEstimate = 45 * time.Minute

// OrderNumberPrefix is prepended to the derived order number.
const OrderNumberPrefix = "MK"

// OrderItem is a line item snapshot captured at order time. Name and price
// are copied from the cart, not re-read from the menu, so historical orders
// survive later catalog edits.
type OrderItem struct {
	MenuItemID primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Name       string             `bson:"name" json:"name"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity" json:"quantity"`
}

// Order represents a placed order
type Order struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID                primitive.ObjectID `bson:"user" json:"user"`
	Items                 []OrderItem        `bson:"items" json:"items"`
	TotalAmount           float64            `bson:"totalAmount" json:"totalAmount"`
	DeliveryAddress       Address            `bson:"deliveryAddress" json:"deliveryAddress"`
	ContactPhone          string             `bson:"contactPhone" json:"contactPhone"`
	Status                string             `bson:"status" json:"status"`
	OrderNotes            string             `bson:"orderNotes,omitempty" json:"orderNotes,omitempty"`
	EstimatedDeliveryTime time.Time          `bson:"estimatedDeliveryTime" json:"estimatedDeliveryTime"`
	PaymentMethod         string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus         string             `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderNumber derives the display number from the order id: the last eight
// hex characters, uppercased, behind a fixed prefix. Never stored.
func (o *Order) OrderNumber() string {
	return OrderNumberFromID(o.ID)
}

// OrderNumberFromID computes the display number for any order id.
func OrderNumberFromID(id primitive.ObjectID) string {
	hex := id.Hex()
	if len(hex) > 8 {
		hex = hex[len(hex)-8:]
	}
	return OrderNumberPrefix + strings.ToUpper(hex)
}

// ValidStatus reports whether s is one of the defined order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a defined payment status.
func ValidPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentPaid
}

// ItemsTotal sums price × quantity over the line items. The order total is
// always derived server-side from this, never taken from the client.
func ItemsTotal(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// NewOrder assembles an order from a checkout submission. It validates the
// submission, computes the authoritative total and the delivery estimate,
// and applies the creation defaults. Returns a ValidationError and no order
// when the submission is rejected.
func NewOrder(userID primitive.ObjectID, items []OrderItem, address Address, contactPhone, notes string, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrValidation("order must contain at least one item")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrValidation(fmt.Sprintf("invalid quantity for item %q", item.Name))
		}
	}
	if !address.Complete() || contactPhone == "" {
		return nil, ErrValidation("delivery address and contact phone are required")
	}

	return &Order{
		UserID:                userID,
		Items:                 items,
		TotalAmount:           ItemsTotal(items),
		DeliveryAddress:       address,
		ContactPhone:          contactPhone,
		Status:                StatusPending,
		OrderNotes:            strings.TrimSpace(notes),
		EstimatedDeliveryTime: now.Add(DeliveryEstimate),
		PaymentMethod:         PaymentMethodCOD,
		PaymentStatus:         PaymentPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}, nil
}
