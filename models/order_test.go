package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validAddress() Address {
	return Address{Street: "12 Main St", City: "Springfield", State: "IL", ZipCode: "62704"}
}

func TestNewOrder_Validation(t *testing.T) {
	userID := primitive.NewObjectID()
	items := []OrderItem{{MenuItemID: primitive.NewObjectID(), Name: "Chicken Wings", Price: 8.99, Quantity: 2}}

	tests := []struct {
		name    string
		items   []OrderItem
		address Address
		phone   string
		wantErr string
	}{
		{
			name:    "empty_items",
			items:   nil,
			address: validAddress(),
			phone:   "555-0101",
			wantErr: "order must contain at least one item",
		},
		{
			name:    "zero_quantity",
			items:   []OrderItem{{MenuItemID: primitive.NewObjectID(), Name: "Cheesecake", Price: 5.99, Quantity: 0}},
			address: validAddress(),
			phone:   "555-0101",
			wantErr: `invalid quantity for item "Cheesecake"`,
		},
		{
			name:    "missing_address_field",
			items:   items,
			address: Address{Street: "12 Main St", City: "Springfield", State: "IL"},
			phone:   "555-0101",
			wantErr: "delivery address and contact phone are required",
		},
		{
			name:    "missing_phone",
			items:   items,
			address: validAddress(),
			phone:   "",
			wantErr: "delivery address and contact phone are required",
		},
		{
			name:    "valid",
			items:   items,
			address: validAddress(),
			phone:   "555-0101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(userID, tt.items, tt.address, tt.phone, "", time.Now())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, order)
		})
	}
}

func TestNewOrder_ComputesTotalServerSide(t *testing.T) {
	items := []OrderItem{
		{MenuItemID: primitive.NewObjectID(), Name: "Chicken Wings", Price: 8.99, Quantity: 2},
		{MenuItemID: primitive.NewObjectID(), Name: "Spring Rolls", Price: 5.99, Quantity: 1},
	}

	order, err := NewOrder(primitive.NewObjectID(), items, validAddress(), "555-0101", "", time.Now())
	require.NoError(t, err)
	assert.InDelta(t, 23.97, order.TotalAmount, 1e-9)
}

func TestNewOrder_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	items := []OrderItem{{MenuItemID: primitive.NewObjectID(), Name: "Margherita Pizza", Price: 13.99, Quantity: 1}}

	order, err := NewOrder(primitive.NewObjectID(), items, validAddress(), "555-0101", "  ring the bell  ", now)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
	assert.Equal(t, PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, "ring the bell", order.OrderNotes)
	assert.Equal(t, now, order.CreatedAt)
	assert.Equal(t, now.Add(45*time.Minute), order.EstimatedDeliveryTime)
}

func TestOrderNumberFromID(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	got := OrderNumberFromID(id)
	assert.Equal(t, "MK99439011", got)
	// Pure function of the id: recomputing yields the same value.
	assert.Equal(t, got, OrderNumberFromID(id))
	assert.Equal(t, got, (&Order{ID: id}).OrderNumber())
}

func TestOrderNumber_UppercasesHexTail(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("65a1b2c3d4e5f6a7b8c9daef")
	require.NoError(t, err)
	assert.Equal(t, "MKB8C9DAEF", OrderNumberFromID(id))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "preparing", "out for delivery", "delivered", "cancelled"} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "shipped", "PENDING", "out_for_delivery"} {
		assert.False(t, ValidStatus(s), s)
	}
}

func TestValidPaymentStatus(t *testing.T) {
	assert.True(t, ValidPaymentStatus("pending"))
	assert.True(t, ValidPaymentStatus("paid"))
	assert.False(t, ValidPaymentStatus("refunded"))
	assert.False(t, ValidPaymentStatus(""))
}

func TestItemsTotal_Empty(t *testing.T) {
	assert.Zero(t, ItemsTotal(nil))
}
