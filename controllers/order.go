// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/utils"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderController handles order-related requests
type OrderController struct {
	OrderCollection *mongo.Collection
	MenuCollection  *mongo.Collection
	UserCollection  *mongo.Collection
	EmailService    *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client, emailService *utils.EmailService) *OrderController {
	db := client.Database(utils.DatabaseName)
	return &OrderController{
		OrderCollection: db.Collection("orders"),
		MenuCollection:  db.Collection("menuitems"),
		UserCollection:  db.Collection("users"),
		EmailService:    emailService,
	}
}

// hydratedItem is a line item with its menu item reference populated.
// MenuItem is nil when the referenced item has since been removed from the
// catalog; the snapshot fields still describe what was ordered.
type hydratedItem struct {
	MenuItem *models.MenuItem `json:"menuItem"`
	Name     string           `json:"name"`
	Price    float64          `json:"price"`
	Quantity int              `json:"quantity"`
}

// orderResponse is the wire shape of an order: the stored document plus the
// derived orderNumber, populated items and (for admin views) user contact.
type orderResponse struct {
	ID                    primitive.ObjectID `json:"id"`
	OrderNumber           string             `json:"orderNumber"`
	User                  interface{}        `json:"user"`
	Items                 []hydratedItem     `json:"items"`
	TotalAmount           float64            `json:"totalAmount"`
	DeliveryAddress       models.Address     `json:"deliveryAddress"`
	ContactPhone          string             `json:"contactPhone"`
	Status                string             `json:"status"`
	OrderNotes            string             `json:"orderNotes,omitempty"`
	EstimatedDeliveryTime time.Time          `json:"estimatedDeliveryTime"`
	PaymentMethod         string             `json:"paymentMethod"`
	PaymentStatus         string             `json:"paymentStatus"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}

// menuItemsByID fetches the catalog entries referenced by the given orders
// in one query.
func (oc *OrderController) menuItemsByID(ctx context.Context, orders []models.Order) map[primitive.ObjectID]*models.MenuItem {
	idSet := map[primitive.ObjectID]struct{}{}
	for _, order := range orders {
		for _, item := range order.Items {
			idSet[item.MenuItemID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	byID := make(map[primitive.ObjectID]*models.MenuItem, len(ids))
	cursor, err := oc.MenuCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("Menu hydration error: %v", err)
		return byID
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		log.Printf("Menu hydration error: %v", err)
		return byID
	}
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
	return byID
}

// buildOrderResponse assembles the response shape for one order. user is the
// value placed in the user field: the raw id for self reads, contact info
// for admin views.
func buildOrderResponse(order *models.Order, menu map[primitive.ObjectID]*models.MenuItem, user interface{}) orderResponse {
	items := make([]hydratedItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, hydratedItem{
			MenuItem: menu[item.MenuItemID],
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return orderResponse{
		ID:                    order.ID,
		OrderNumber:           order.OrderNumber(),
		User:                  user,
		Items:                 items,
		TotalAmount:           order.TotalAmount,
		DeliveryAddress:       order.DeliveryAddress,
		ContactPhone:          order.ContactPhone,
		Status:                order.Status,
		OrderNotes:            order.OrderNotes,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		PaymentMethod:         order.PaymentMethod,
		PaymentStatus:         order.PaymentStatus,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	}
}

// CreateOrder places a new order from a checkout submission
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := oc.UserCollection.FindOne(ctx, bson.M{"email": claims.Email}).Decode(&user); err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	var req struct {
		Items           []models.OrderItem `json:"items"`
		DeliveryAddress models.Address     `json:"deliveryAddress"`
		ContactPhone    string             `json:"contactPhone"`
		OrderNotes      string             `json:"orderNotes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := models.NewOrder(user.ID, req.Items, req.DeliveryAddress, req.ContactPhone, req.OrderNotes, time.Now())
	if err != nil {
		if models.IsValidation(err) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	result, err := oc.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		log.Printf("Order insert error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Error creating order")
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	// Second, uncompensated write. The order document is the source of
	// truth; a failed history append is logged and the request still
	// succeeds.
	_, err = oc.UserCollection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
		"$push": bson.M{"orders": order.ID},
	})
	if err != nil {
		log.Printf("Failed to append order %s to user %s history: %v", order.ID.Hex(), user.ID.Hex(), err)
	}

	go func(email, name string, order models.Order) {
		if err := oc.EmailService.SendOrderConfirmationEmail(email, name, &order); err != nil {
			log.Printf("Failed to send confirmation email to %s: %v", email, err)
		}
	}(user.Email, user.Name, *order)

	menu := oc.menuItemsByID(ctx, []models.Order{*order})
	utils.RespondData(w, http.StatusCreated, "Order placed successfully", buildOrderResponse(order, menu, order.UserID))
}

// GetMyOrders retrieves the authenticated user's order history, newest first
func (oc *OrderController) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := oc.OrderCollection.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading orders")
		return
	}

	menu := oc.menuItemsByID(ctx, orders)
	responses := make([]orderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, buildOrderResponse(&orders[i], menu, orders[i].UserID))
	}

	utils.RespondList(w, len(responses), responses)
}

// canViewOrder decides single-order read access: the owner or any admin.
func canViewOrder(claims *utils.Claims, order *models.Order) bool {
	return claims.IsAdmin() || claims.UserID == order.UserID.Hex()
}

// GetOrderByID retrieves a single order for its owner or an admin
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := oc.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		utils.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	if !canViewOrder(claims, &order) {
		utils.RespondError(w, http.StatusForbidden, "Not authorized to view this order")
		return
	}

	user := oc.userContact(ctx, order.UserID)
	menu := oc.menuItemsByID(ctx, []models.Order{order})
	utils.RespondData(w, http.StatusOK, "", buildOrderResponse(&order, menu, user))
}

// GetAllOrders retrieves every order, optionally filtered by status (admin)
func (oc *OrderController) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := oc.OrderCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error reading orders")
		return
	}

	menu := oc.menuItemsByID(ctx, orders)
	contacts := oc.userContactsByID(ctx, orders)
	responses := make([]orderResponse, 0, len(orders))
	for i := range orders {
		var user interface{} = orders[i].UserID
		if contact, found := contacts[orders[i].UserID]; found {
			user = contact
		}
		responses = append(responses, buildOrderResponse(&orders[i], menu, user))
	}

	utils.RespondList(w, len(responses), responses)
}

// buildStatusUpdate validates a status patch and translates it into the
// fields to set. A provided status must be a defined one; an invalid
// paymentStatus value is dropped rather than rejected. An empty result
// means nothing to change.
func buildStatusUpdate(status, paymentStatus string) (bson.M, error) {
	update := bson.M{}
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, models.ErrValidation("Invalid status value")
		}
		update["status"] = status
	}
	if paymentStatus != "" && models.ValidPaymentStatus(paymentStatus) {
		update["paymentStatus"] = paymentStatus
	}
	return update, nil
}

// UpdateOrderStatus patches an order's status and/or payment status (admin).
// No transition graph is enforced; any defined status may replace any other.
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		Status        string `json:"status"`
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update, err := buildStatusUpdate(req.Status, req.PaymentStatus)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if len(update) == 0 {
		err = oc.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	} else {
		update["updatedAt"] = time.Now()
		err = oc.OrderCollection.FindOneAndUpdate(
			ctx,
			bson.M{"_id": orderID},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&order)
	}
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("Order update error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Error updating order")
		return
	}

	if req.Status != "" {
		go func(order models.Order) {
			var user models.User
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := oc.UserCollection.FindOne(ctx, bson.M{"_id": order.UserID}).Decode(&user); err != nil {
				log.Printf("Status email lookup error for order %s: %v", order.ID.Hex(), err)
				return
			}
			if err := oc.EmailService.SendOrderStatusEmail(user.Email, user.Name, &order); err != nil {
				log.Printf("Failed to send status email to %s: %v", user.Email, err)
			}
		}(order)
	}

	menu := oc.menuItemsByID(ctx, []models.Order{order})
	utils.RespondData(w, http.StatusOK, "Order status updated successfully", buildOrderResponse(&order, menu, order.UserID))
}

// userContact fetches contact info for one user; returns the bare id when
// the lookup fails.
func (oc *OrderController) userContact(ctx context.Context, userID primitive.ObjectID) interface{} {
	var contact models.UserContact
	if err := oc.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&contact); err != nil {
		return userID
	}
	return contact
}

// userContactsByID fetches contact info for every order owner in one query.
func (oc *OrderController) userContactsByID(ctx context.Context, orders []models.Order) map[primitive.ObjectID]models.UserContact {
	idSet := map[primitive.ObjectID]struct{}{}
	for _, order := range orders {
		idSet[order.UserID] = struct{}{}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	contacts := make(map[primitive.ObjectID]models.UserContact, len(ids))
	cursor, err := oc.UserCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("User hydration error: %v", err)
		return contacts
	}
	defer cursor.Close(ctx)

	var users []models.UserContact
	if err := cursor.All(ctx, &users); err != nil {
		log.Printf("User hydration error: %v", err)
		return contacts
	}
	for _, u := range users {
		contacts[u.ID] = u
	}
	return contacts
}
