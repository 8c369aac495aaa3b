package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tablerunner-api/config"
	"tablerunner-api/models"
	"tablerunner-api/utils"
)

func GetMenuItems(c *gin.Context) {
	ownerID := utils.GetUserID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	p := utils.NewPagination(page, pageSize)

	query := config.DB.Model(&models.MenuItem{}).Where("owner_id = ?", *ownerID)

	if category := c.Query("category"); category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		for _, term := range strings.Fields(strings.ToLower(strings.TrimSpace(search))) {
			query = query.Where("LOWER(name) LIKE ?", "%"+term+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var items []models.MenuItem
	if err := query.
		Order("created_at DESC").
		Offset(p.Offset).
		Limit(p.PageSize).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": items,
		"meta": utils.BuildPageMeta(p.Page, p.PageSize, total),
	})
}

func GetMenuItemByID(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var item models.MenuItem
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func CreateMenuItem(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var input struct {
		Name     string  `json:"name" binding:"required"`
		Category string  `json:"category" binding:"required"`
		Price    float64 `json:"price" binding:"required,gt=0"`
		Image    *string `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidMenuCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Category must be one of: %s", strings.Join(models.MenuCategories, ", "))})
		return
	}

	var existing models.MenuItem
	if err := config.DB.Where("owner_id = ? AND name = ?", *ownerID, input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A menu item with this name already exists"})
		return
	}

	item := models.MenuItem{
		OwnerID:  *ownerID,
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Image:    input.Image,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		description := fmt.Sprintf("Menu item '%s' created", item.Name)
		return utils.CreateMenuItemAuditLog(tx, "create", item.ID, nil, &item, ownerID, c.ClientIP(), description)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func UpdateMenuItem(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var oldItem models.MenuItem
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).First(&oldItem).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var input struct {
		Name     string  `json:"name" binding:"required"`
		Category string  `json:"category" binding:"required"`
		Price    float64 `json:"price" binding:"required,gt=0"`
		Image    *string `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidMenuCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Category must be one of: %s", strings.Join(models.MenuCategories, ", "))})
		return
	}

	var existing models.MenuItem
	if err := config.DB.Where("owner_id = ? AND name = ? AND id != ?", *ownerID, input.Name, oldItem.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A menu item with this name already exists"})
		return
	}

	oldCopy := oldItem

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		oldItem.Name = input.Name
		oldItem.Category = input.Category
		oldItem.Price = input.Price
		oldItem.Image = input.Image

		if err := tx.Save(&oldItem).Error; err != nil {
			return err
		}
		description := fmt.Sprintf("Menu item '%s' updated", oldItem.Name)
		return utils.CreateMenuItemAuditLog(tx, "update", oldItem.ID, &oldCopy, &oldItem, ownerID, c.ClientIP(), description)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, oldItem)
}

func DeleteMenuItem(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var item models.MenuItem
	if err := config.DB.Where("id = ? AND owner_id = ?", c.Param("id"), *ownerID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	itemCopy := item

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		description := fmt.Sprintf("Menu item '%s' deleted", itemCopy.Name)
		return utils.CreateMenuItemAuditLog(tx, "delete", itemCopy.ID, &itemCopy, nil, ownerID, c.ClientIP(), description)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func BulkCreateMenuItems(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var input struct {
		Items []struct {
			Name     string  `json:"name" binding:"required"`
			Category string  `json:"category" binding:"required"`
			Price    float64 `json:"price" binding:"required,gt=0"`
			Image    *string `json:"image"`
		} `json:"items" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.MenuItem, 0, len(input.Items))
	for _, in := range input.Items {
		if !models.ValidMenuCategory(in.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid category '%s' for item '%s'", in.Category, in.Name)})
			return
		}
		items = append(items, models.MenuItem{
			OwnerID:  *ownerID,
			Name:     in.Name,
			Category: in.Category,
			Price:    in.Price,
			Image:    in.Image,
		})
	}

	if err := config.DB.Create(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": items, "count": len(items)})
}

func ExportMenuItemsCSV(c *gin.Context) {
	ownerID := utils.GetUserID(c)

	var items []models.MenuItem
	if err := config.DB.Where("owner_id = ?", *ownerID).Order("category, name").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "category", "price", "image"})
	for _, item := range items {
		_ = w.Write([]string{
			item.ID.String(),
			item.Name,
			item.Category,
			fmt.Sprintf("%.2f", item.Price),
			utils.GetStringValue(item.Image),
		})
	}
	w.Flush()

	c.Header("Content-Disposition", "attachment; filename=menu_items.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
