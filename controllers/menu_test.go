package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildMenuFilter(t *testing.T) {
	t.Run("no_params", func(t *testing.T) {
		assert.Empty(t, buildMenuFilter("", "", ""))
	})

	t.Run("category", func(t *testing.T) {
		filter := buildMenuFilter("Appetizers", "", "")
		assert.Equal(t, bson.M{"category": "Appetizers"}, filter)
	})

	t.Run("featured_true", func(t *testing.T) {
		filter := buildMenuFilter("", "", "true")
		assert.Equal(t, bson.M{"featured": true}, filter)
	})

	t.Run("featured_other_values_ignored", func(t *testing.T) {
		assert.Empty(t, buildMenuFilter("", "", "false"))
		assert.Empty(t, buildMenuFilter("", "", "yes"))
	})

	t.Run("search_is_case_insensitive_over_name_and_description", func(t *testing.T) {
		filter := buildMenuFilter("", "chicken", "")

		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 2)

		nameRegex := or[0].(bson.M)["name"].(primitive.Regex)
		descRegex := or[1].(bson.M)["description"].(primitive.Regex)
		assert.Equal(t, "chicken", nameRegex.Pattern)
		assert.Equal(t, "i", nameRegex.Options)
		assert.Equal(t, "chicken", descRegex.Pattern)
		assert.Equal(t, "i", descRegex.Options)
	})

	t.Run("combined", func(t *testing.T) {
		filter := buildMenuFilter("Main Courses", "pizza", "true")
		assert.Equal(t, "Main Courses", filter["category"])
		assert.Equal(t, true, filter["featured"])
		assert.Contains(t, filter, "$or")
	})
}
