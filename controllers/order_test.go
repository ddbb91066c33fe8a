package controllers

import (
	"testing"
	"time"

	"restaurant-api/models"
	"restaurant-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildStatusUpdate(t *testing.T) {
	tests := []struct {
		name          string
		status        string
		paymentStatus string
		want          map[string]interface{}
		wantErr       bool
	}{
		{
			name:   "status_only",
			status: "preparing",
			want:   map[string]interface{}{"status": "preparing"},
		},
		{
			name:          "both_fields",
			status:        "delivered",
			paymentStatus: "paid",
			want:          map[string]interface{}{"status": "delivered", "paymentStatus": "paid"},
		},
		{
			name:    "invalid_status",
			status:  "shipped",
			wantErr: true,
		},
		{
			name:    "underscore_spelling_rejected",
			status:  "out_for_delivery",
			wantErr: true,
		},
		{
			name:          "invalid_payment_status_dropped",
			paymentStatus: "refunded",
			want:          map[string]interface{}{},
		},
		{
			name: "empty_patch",
			want: map[string]interface{}{},
		},
		{
			// No transition graph: moving backwards is a valid patch.
			name:   "backward_transition_allowed",
			status: "pending",
			want:   map[string]interface{}{"status": "pending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update, err := buildStatusUpdate(tt.status, tt.paymentStatus)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, models.IsValidation(err))
				assert.Nil(t, update)
				return
			}
			require.NoError(t, err)
			assert.Len(t, update, len(tt.want))
			for key, value := range tt.want {
				assert.Equal(t, value, update[key])
			}
		})
	}
}

func TestCanViewOrder(t *testing.T) {
	ownerID := primitive.NewObjectID()
	order := &models.Order{UserID: ownerID}

	owner := &utils.Claims{UserID: ownerID.Hex(), Role: "user"}
	admin := &utils.Claims{UserID: primitive.NewObjectID().Hex(), Role: "admin"}
	stranger := &utils.Claims{UserID: primitive.NewObjectID().Hex(), Role: "user"}

	assert.True(t, canViewOrder(owner, order))
	assert.True(t, canViewOrder(admin, order))
	assert.False(t, canViewOrder(stranger, order))
}

func TestBuildOrderResponse(t *testing.T) {
	menuID := primitive.NewObjectID()
	deletedID := primitive.NewObjectID()
	orderID, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	now := time.Now()
	order := &models.Order{
		ID:     orderID,
		UserID: primitive.NewObjectID(),
		Items: []models.OrderItem{
			{MenuItemID: menuID, Name: "Chicken Wings", Price: 8.99, Quantity: 2},
			{MenuItemID: deletedID, Name: "Retired Dish", Price: 9.99, Quantity: 1},
		},
		TotalAmount:   27.97,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		PaymentMethod: models.PaymentMethodCOD,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	menu := map[primitive.ObjectID]*models.MenuItem{
		menuID: {ID: menuID, Name: "Chicken Wings", Price: 8.99},
	}

	resp := buildOrderResponse(order, menu, order.UserID)

	assert.Equal(t, "MK99439011", resp.OrderNumber)
	assert.Equal(t, order.UserID, resp.User)
	require.Len(t, resp.Items, 2)

	// Hydrated line keeps the snapshot alongside the catalog entry.
	assert.Equal(t, menu[menuID], resp.Items[0].MenuItem)
	assert.Equal(t, "Chicken Wings", resp.Items[0].Name)
	assert.Equal(t, 2, resp.Items[0].Quantity)

	// A line whose menu item was deleted still carries its snapshot.
	assert.Nil(t, resp.Items[1].MenuItem)
	assert.Equal(t, "Retired Dish", resp.Items[1].Name)
	assert.InDelta(t, 9.99, resp.Items[1].Price, 1e-9)
}
