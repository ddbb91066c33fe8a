package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    MenuItem
		wantErr string
	}{
		{
			name: "valid",
			item: MenuItem{Name: "Chicken Wings", Description: "Crispy wings", Price: 8.99, Category: CategoryAppetizers},
		},
		{
			name:    "missing_name",
			item:    MenuItem{Description: "Crispy wings", Price: 8.99, Category: CategoryAppetizers},
			wantErr: "menu item name is required",
		},
		{
			name:    "missing_description",
			item:    MenuItem{Name: "Chicken Wings", Price: 8.99, Category: CategoryAppetizers},
			wantErr: "description is required",
		},
		{
			name:    "negative_price",
			item:    MenuItem{Name: "Chicken Wings", Description: "Crispy wings", Price: -1, Category: CategoryAppetizers},
			wantErr: "price must not be negative",
		},
		{
			name:    "unknown_category",
			item:    MenuItem{Name: "Chicken Wings", Description: "Crispy wings", Price: 8.99, Category: "Sides"},
			wantErr: "invalid category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestTimestampWireKeysAreCamelCase(t *testing.T) {
	now := time.Now()

	keys := func(v interface{}) map[string]json.RawMessage {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &m))
		return m
	}

	item := keys(MenuItem{Name: "Chicken Wings", CreatedAt: now, UpdatedAt: now})
	assert.Contains(t, item, "createdAt")
	assert.Contains(t, item, "updatedAt")
	assert.NotContains(t, item, "created_at")
	assert.NotContains(t, item, "updated_at")

	user := keys(User{Name: "Admin", CreatedAt: now})
	assert.Contains(t, user, "createdAt")
	assert.NotContains(t, user, "created_at")
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryAppetizers, CategoryMainCourses, CategoryDesserts, CategoryBeverages, CategorySpecials} {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("appetizers"))
	assert.False(t, ValidCategory(""))
}
