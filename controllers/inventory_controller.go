package controllers

import (
	"timetrack/models"
	"timetrack/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

// Request structs
type AddItemRequest struct {
	StoreID  string `json:"store_id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// UpdateItemRequest updates one item, looked up by id when present and
// by store_id+sku otherwise. quantity, name and new_sku are each
// optional; only those provided change.
type UpdateItemRequest struct {
	ID       string `json:"id"`
	StoreID  string `json:"store_id"`
	SKU      string `json:"sku"`
	Quantity *int   `json:"quantity"`
	Name     string `json:"name"`
	NewSKU   string `json:"new_sku"`
}

type DeleteItemRequest struct {
	StoreID string `json:"store_id"`
	SKU     string `json:"sku"`
}

// GetInventory lists a store's items, or every item when no store_id
// filter is given.
func (ic *InventoryController) GetInventory(c fiber.Ctx) error {
	storeID := c.Query("store_id")

	query := ic.DB.Model(&models.InventoryItem{}).Order("name ASC")
	if storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve inventory",
		})
	}
	return c.JSON(items)
}

// AddItem creates one item.
func (ic *InventoryController) AddItem(c fiber.Ctx) error {
	var req AddItemRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}
	if req.StoreID == "" || req.Name == "" || req.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id, name and sku are required",
		})
	}

	item := models.InventoryItem{
		StoreID:  req.StoreID,
		SKU:      req.SKU,
		Name:     req.Name,
		Quantity: req.Quantity,
	}
	if err := ic.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to add inventory item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem changes quantity, name or SKU. Moving to a SKU another
// item in the store already carries is rejected.
func (ic *InventoryController) UpdateItem(c fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}
	if req.ID == "" && (req.StoreID == "" || req.SKU == "") {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Either id or both store_id and sku are required",
		})
	}
	if req.Quantity == nil && req.Name == "" && req.NewSKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Nothing to update",
		})
	}

	var item models.InventoryItem
	var err error
	if req.ID != "" {
		err = ic.DB.Where("id = ?", req.ID).First(&item).Error
	} else {
		err = ic.DB.Where("store_id = ? AND sku = ?", req.StoreID, req.SKU).First(&item).Error
	}
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Inventory item not found or update failed",
		})
	}

	if req.NewSKU != "" && req.NewSKU != item.SKU {
		var existing models.InventoryItem
		if err := ic.DB.Where("store_id = ? AND sku = ? AND id != ?", item.StoreID, req.NewSKU, item.ID).
			First(&existing).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Error: "SKU '" + req.NewSKU + "' already exists for this store",
			})
		}
		item.SKU = req.NewSKU
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Name != "" {
		item.Name = req.Name
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to update inventory item",
		})
	}

	return c.JSON(item)
}

// DeleteItem removes one item by store and SKU.
func (ic *InventoryController) DeleteItem(c fiber.Ctx) error {
	var req DeleteItemRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}
	if req.StoreID == "" || req.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id and sku are required",
		})
	}

	var item models.InventoryItem
	if err := ic.DB.Where("store_id = ? AND sku = ?", req.StoreID, req.SKU).First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Inventory item not found",
		})
	}
	if err := ic.DB.Delete(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to delete inventory item",
		})
	}

	return c.JSON(utils.StatusResponse{Message: "Inventory item deleted successfully"})
}
