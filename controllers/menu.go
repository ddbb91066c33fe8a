// controllers/menu.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"restaurant-api/models"
	"restaurant-api/utils"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MenuController handles menu item requests
type MenuController struct {
	Collection *mongo.Collection
}

// NewMenuController creates a new MenuController
func NewMenuController(client *mongo.Client) *MenuController {
	collection := client.Database(utils.DatabaseName).Collection("menuitems")
	return &MenuController{Collection: collection}
}

// buildMenuFilter translates the category/search/featured query parameters
// into a mongo filter. Search is a case-insensitive substring match over
// name or description.
func buildMenuFilter(category, search, featured string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if featured == "true" {
		filter["featured"] = true
	}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
		}
	}
	return filter
}

// GetMenuItems retrieves menu items with optional filters (public)
func (mc *MenuController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := buildMenuFilter(q.Get("category"), q.Get("search"), q.Get("featured"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := mc.Collection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching menu items")
		return
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading menu items")
		return
	}

	utils.RespondList(w, len(items), items)
}

// GetMenuItemByID retrieves a single menu item (public)
func (mc *MenuController) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var item models.MenuItem
	if err := mc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		utils.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	utils.RespondData(w, http.StatusOK, "", item)
}

// CreateMenuItem adds a new menu item (admin only)
func (mc *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if item.Image == "" {
		item.Image = models.DefaultMenuImage
	}
	if item.PreparationTime == 0 {
		item.PreparationTime = models.DefaultPreparationTime
	}
	item.IsAvailable = true
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := mc.Collection.InsertOne(ctx, item)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error adding menu item")
		return
	}
	item.ID = result.InsertedID.(primitive.ObjectID)

	utils.RespondData(w, http.StatusCreated, "Menu item added successfully", item)
}

// UpdateMenuItem patches a menu item (admin only)
func (mc *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var req struct {
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price"`
		Category        *string  `json:"category"`
		Image           *string  `json:"image"`
		IsAvailable     *bool    `json:"isAvailable"`
		Featured        *bool    `json:"featured"`
		PreparationTime *int     `json:"preparationTime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.RespondError(w, http.StatusBadRequest, "Price must not be negative")
			return
		}
		update["price"] = *req.Price
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			utils.RespondError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		update["category"] = *req.Category
	}
	if req.Image != nil {
		update["image"] = *req.Image
	}
	if req.IsAvailable != nil {
		update["isAvailable"] = *req.IsAvailable
	}
	if req.Featured != nil {
		update["featured"] = *req.Featured
	}
	if req.PreparationTime != nil {
		update["preparationTime"] = *req.PreparationTime
	}
	if len(update) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Nothing to update")
		return
	}
	update["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var item models.MenuItem
	err = mc.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, http.StatusNotFound, "Menu item not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Error updating menu item")
		return
	}

	utils.RespondData(w, http.StatusOK, "Menu item updated successfully", item)
}

// DeleteMenuItem removes a menu item (admin only). Historical orders keep
// their line item snapshots regardless.
func (mc *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := mc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error deleting menu item")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	utils.RespondData(w, http.StatusOK, "Menu item deleted successfully", nil)
}
