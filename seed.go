// seed.go
package main

import (
	"context"
	"log"
	"os"
	"restaurant-api/models"
	"restaurant-api/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// seedInitialData creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// when it does not exist, and loads the sample menu when the collection is
// empty. Failures are logged, not fatal.
func seedInitialData(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db := client.Database(utils.DatabaseName)

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		users := db.Collection("users")
		count, err := users.CountDocuments(ctx, bson.M{"email": adminEmail})
		if err != nil {
			log.Printf("Seed error checking admin user: %v", err)
		} else if count == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Seed error hashing admin password: %v", err)
			} else {
				_, err = users.InsertOne(ctx, models.User{
					Name:      "Admin",
					Email:     adminEmail,
					Password:  string(hash),
					Role:      "admin",
					CreatedAt: time.Now(),
				})
				if err != nil {
					log.Printf("Seed error creating admin user: %v", err)
				} else {
					log.Println("Admin user created")
				}
			}
		}
	}

	menu := db.Collection("menuitems")
	count, err := menu.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Seed error checking menu: %v", err)
		return
	}
	if count > 0 {
		return
	}

	now := time.Now()
	sample := []interface{}{
		menuItem("Chicken Wings", "Crispy chicken wings tossed in your choice of buffalo, BBQ, or garlic parmesan sauce", 8.99, models.CategoryAppetizers, true, now),
		menuItem("Mozzarella Sticks", "Golden fried mozzarella cheese sticks served with marinara sauce", 6.99, models.CategoryAppetizers, false, now),
		menuItem("Spring Rolls", "Crispy vegetable spring rolls with sweet chili dipping sauce", 5.99, models.CategoryAppetizers, false, now),
		menuItem("Grilled Chicken Platter", "Marinated grilled chicken breast with rice, salad, and garlic sauce", 14.99, models.CategoryMainCourses, true, now),
		menuItem("Beef Burger Deluxe", "Juicy beef patty with cheese, lettuce, tomato, onions, and special sauce", 12.99, models.CategoryMainCourses, true, now),
		menuItem("Margherita Pizza", "Classic pizza with tomato sauce, fresh mozzarella, and basil", 13.99, models.CategoryMainCourses, false, now),
		menuItem("Pasta Alfredo", "Creamy fettuccine pasta with grilled chicken and parmesan cheese", 11.99, models.CategoryMainCourses, false, now),
		menuItem("Fish & Chips", "Beer-battered fish fillet with crispy fries and tartar sauce", 13.99, models.CategoryMainCourses, false, now),
		menuItem("Vegetable Stir Fry", "Fresh vegetables stir-fried in teriyaki sauce, served with rice", 10.99, models.CategoryMainCourses, false, now),
		menuItem("Chocolate Lava Cake", "Warm chocolate cake with a molten center, served with vanilla ice cream", 6.99, models.CategoryDesserts, true, now),
		menuItem("Cheesecake", "New York style cheesecake with strawberry topping", 5.99, models.CategoryDesserts, false, now),
		menuItem("Ice Cream Sundae", "Three scoops of ice cream with chocolate syrup, whipped cream, and cherry", 4.99, models.CategoryDesserts, false, now),
		menuItem("Fresh Orange Juice", "Freshly squeezed orange juice", 3.99, models.CategoryBeverages, false, now),
		menuItem("Iced Coffee", "Cold brew coffee with ice and milk", 4.49, models.CategoryBeverages, false, now),
		menuItem("Mango Smoothie", "Creamy mango smoothie made with fresh fruit", 5.49, models.CategoryBeverages, false, now),
		menuItem("Soft Drinks", "Coca-Cola, Sprite, Fanta, or Pepsi", 1.99, models.CategoryBeverages, false, now),
		menuItem("Chef's Special Platter", "A combination of our best dishes: grilled chicken, kebab, rice, and salad", 18.99, models.CategorySpecials, true, now),
		menuItem("Family Feast", "Large pizza, chicken wings, mozzarella sticks, and 1L soft drink", 34.99, models.CategorySpecials, false, now),
	}

	if _, err := menu.InsertMany(ctx, sample); err != nil {
		log.Printf("Seed error inserting menu items: %v", err)
		return
	}
	log.Println("Sample menu items added")
}

func menuItem(name, description string, price float64, category string, featured bool, now time.Time) models.MenuItem {
	return models.MenuItem{
		Name:            name,
		Description:     description,
		Price:           price,
		Category:        category,
		Image:           models.DefaultMenuImage,
		IsAvailable:     true,
		Featured:        featured,
		PreparationTime: models.DefaultPreparationTime,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
