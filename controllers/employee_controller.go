package controllers

import (
	"timetrack/models"
	"timetrack/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

type CreateEmployeeRequest struct {
	StoreID     string  `json:"store_id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	PhoneNumber string  `json:"phone_number"`
	HourlyPay   float64 `json:"hourly_pay"`
}

// GetEmployees lists employees, optionally filtered to one store.
func (ec *EmployeeController) GetEmployees(c fiber.Ctx) error {
	query := ec.DB.Model(&models.Employee{}).Order("name ASC")
	if storeID := c.Query("store_id"); storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve employees",
		})
	}
	return c.JSON(employees)
}

// CreateEmployee adds one employee to a store's roster.
func (ec *EmployeeController) CreateEmployee(c fiber.Ctx) error {
	var req CreateEmployeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Employee name is required",
		})
	}

	employee := models.Employee{
		StoreID:     req.StoreID,
		Name:        req.Name,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		HourlyPay:   req.HourlyPay,
		Active:      true,
	}
	if err := ec.DB.Create(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to create employee",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// DeleteEmployee removes an employee by id. Their past timeclock
// entries are kept for reporting.
func (ec *EmployeeController) DeleteEmployee(c fiber.Ctx) error {
	id := c.Params("id")

	result := ec.DB.Where("id = ?", id).Delete(&models.Employee{})
	if result.Error != nil || result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Employee not found",
		})
	}
	return c.JSON(utils.StatusResponse{Message: "Employee deleted successfully"})
}
