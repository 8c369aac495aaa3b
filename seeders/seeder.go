package seeders

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/utils"
)

func hash(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h)
}

func Seed() {
	// ============= Seed Users =============
	admin := models.User{
		Email:          "admin@tablerunner.local",
		Password:       hash("admin123"),
		Role:           "admin",
		ApprovalStatus: "approved",
	}
	config.DB.FirstOrCreate(&admin, models.User{Email: admin.Email})

	now := time.Now()
	owner := models.User{
		Email:          "owner@tablerunner.local",
		Password:       hash("owner123"),
		Role:           "owner",
		FullName:       utils.PtrString("Demo Owner"),
		ContactNo:      utils.PtrString("9800000000"),
		HotelName:      utils.PtrString("Lakeside Tea House"),
		HotelLocation:  utils.PtrString("Lakeside, Pokhara"),
		ApprovalStatus: "approved",
		ApprovedAt:     &now,
	}
	config.DB.FirstOrCreate(&owner, models.User{Email: owner.Email})

	// ============= Seed Menu =============
	menuItems := []models.MenuItem{
		{OwnerID: owner.ID, Name: "Masala Tea", Category: "Tea", Price: 15, Image: utils.PtrString("🫖")},
		{OwnerID: owner.ID, Name: "Chai Latte", Category: "Tea", Price: 35, Image: utils.PtrString("🍵")},
		{OwnerID: owner.ID, Name: "Black Coffee", Category: "Coffee", Price: 20, Image: utils.PtrString("☕")},
		{OwnerID: owner.ID, Name: "Cold Coffee", Category: "Drinks", Price: 45, Image: utils.PtrString("🥤")},
		{OwnerID: owner.ID, Name: "Samosa", Category: "Snacks", Price: 25, Image: utils.PtrString("🥟")},
		{OwnerID: owner.ID, Name: "Sandwich", Category: "Snacks", Price: 40, Image: utils.PtrString("🥪")},
	}

	for _, item := range menuItems {
		config.DB.FirstOrCreate(&item, models.MenuItem{OwnerID: owner.ID, Name: item.Name})
	}

	fmt.Println("Seeding done: admin + demo owner + starter menu")
}
