package controllers

import (
	"log"
	"strings"
	"time"

	"timetrack/config"
	"timetrack/models"
	"timetrack/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

// storeScopedTables lists every table that references a store through
// its name. Renames and deletes must touch all of them.
var storeScopedTables = []interface{}{
	&models.InventoryItem{},
	&models.InventorySnapshot{},
	&models.EodReport{},
	&models.TimeclockEntry{},
}

type StoreController struct {
	DB     *gorm.DB
	Config *config.Config
}

func NewStoreController(cfg *config.Config, db *gorm.DB) *StoreController {
	return &StoreController{Config: cfg, DB: db}
}

// Request structs
type CreateStoreRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	TotalBoxes *int   `json:"total_boxes"`
}

type UpdateStoreRequest struct {
	Name       string `json:"name"`
	NewName    string `json:"new_name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	TotalBoxes *int   `json:"total_boxes"`
}

type DeleteStoreRequest struct {
	Name string `json:"name"`
}

type StoreLoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	YubikeyOTP string `json:"yubikey_otp"`
}

type ManagerLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterYubikeyRequest struct {
	StoreName   string `json:"store_name"`
	YubikeyOTP  string `json:"yubikey_otp"`
	YubikeyName string `json:"yubikey_name"`
}

type RemoveYubikeyRequest struct {
	StoreName string `json:"store_name"`
	YubikeyID string `json:"yubikey_id"`
}

// newStoreConflict returns the 409 message when the name or username is
// already taken. The unique indexes on both columns back this check up
// at the database layer. exists reports whether any store matches the
// column value.
func newStoreConflict(name, username string, exists func(column, value string) bool) string {
	if exists("name", name) {
		return "Store with name " + name + " already exists."
	}
	if exists("username", username) {
		return "Username " + username + " is already taken."
	}
	return ""
}

func (sc *StoreController) storeExists(column, value string) bool {
	var store models.Store
	return sc.DB.Where(column+" = ?", value).First(&store).Error == nil
}

// GetStores returns every store. Passwords are never serialized.
func (sc *StoreController) GetStores(c fiber.Ctx) error {
	var stores []models.Store
	if err := sc.DB.Order("name ASC").Find(&stores).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve stores",
		})
	}
	return c.JSON(stores)
}

// CreateStore creates a store and seeds its default inventory catalog.
func (sc *StoreController) CreateStore(c fiber.Ctx) error {
	var req CreateStoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Store name is required",
		})
	}
	if len(req.Name) > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Store name is too long (max 100 characters)",
		})
	}
	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Username is required",
		})
	}
	if len(req.Username) > 50 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Username is too long (max 50 characters)",
		})
	}
	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Password is required",
		})
	}
	if len(req.Password) > 200 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Password is too long (max 200 characters)",
		})
	}
	if req.TotalBoxes == nil || *req.TotalBoxes < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Total boxes must be a positive integer",
		})
	}

	if msg := newStoreConflict(req.Name, req.Username, sc.storeExists); msg != "" {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{Error: msg})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to hash password",
		})
	}

	store := models.Store{
		Name:       req.Name,
		Username:   req.Username,
		Password:   hashed,
		TotalBoxes: *req.TotalBoxes,
	}

	// Store and its starting catalog are created together.
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&store).Error; err != nil {
			return err
		}
		items := models.DefaultInventoryItems(store.Name)
		return tx.Create(&items).Error
	})
	if err != nil {
		log.Println("Failed to create store:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to create store. Please try again.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(store)
}

// UpdateStore edits a store looked up by name. A rename cascades into
// every table that uses the name as store_id.
func (sc *StoreController) UpdateStore(c fiber.Ctx) error {
	var req UpdateStoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Store name is required",
		})
	}
	if req.TotalBoxes != nil && *req.TotalBoxes < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Total boxes must be a positive integer",
		})
	}

	var store models.Store
	if err := sc.DB.Where("name = ?", req.Name).First(&store).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Store '" + req.Name + "' not found",
		})
	}

	newName := strings.TrimSpace(req.NewName)
	if newName != "" && newName != store.Name {
		var existing models.Store
		if err := sc.DB.Where("name = ? AND id != ?", newName, store.ID).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Error: "Store with name " + newName + " already exists.",
			})
		}
	}

	if req.Username != "" {
		var existing models.Store
		if err := sc.DB.Where("username = ? AND id != ?", req.Username, store.ID).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Error: "Username " + req.Username + " is already taken.",
			})
		}
		store.Username = req.Username
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Error: "Failed to hash password",
			})
		}
		store.Password = hashed
	}
	if req.TotalBoxes != nil {
		store.TotalBoxes = *req.TotalBoxes
	}

	oldName := store.Name
	if newName != "" {
		store.Name = newName
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&store).Error; err != nil {
			return err
		}
		if store.Name != oldName {
			for _, table := range storeScopedTables {
				if err := tx.Model(table).Where("store_id = ?", oldName).
					Update("store_id", store.Name).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Println("Failed to update store:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to update store. Please try again.",
		})
	}

	return c.JSON(store)
}

// DeleteStore removes a store and everything scoped to it. Employees
// are kept; they are removed explicitly through the roster.
func (sc *StoreController) DeleteStore(c fiber.Ctx) error {
	var req DeleteStoreRequest
	if err := c.Bind().Body(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Store name is required",
		})
	}

	var store models.Store
	if err := sc.DB.Where("name = ?", req.Name).First(&store).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Store '" + req.Name + "' not found",
		})
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range storeScopedTables {
			if err := tx.Where("store_id = ?", store.Name).Delete(table).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("store_id = ?", store.ID).Delete(&models.Yubikey{}).Error; err != nil {
			return err
		}
		return tx.Delete(&store).Error
	})
	if err != nil {
		log.Println("Failed to delete store:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to delete store. Please try again.",
		})
	}

	return c.JSON(utils.StatusResponse{
		Message: "Store '" + req.Name + "' deleted successfully",
	})
}

// StoreLogin authenticates a store: password first, then the hardware
// token OTP. A store with no registered tokens cannot log in at all.
func (sc *StoreController) StoreLogin(c fiber.Ctx) error {
	var req StoreLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}

	req.Username = strings.TrimSpace(req.Username)
	req.YubikeyOTP = strings.TrimSpace(req.YubikeyOTP)

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Username and password required",
		})
	}

	var store models.Store
	if err := sc.DB.Preload("Yubikeys").Where("username = ?", req.Username).First(&store).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Error: "Invalid credentials",
		})
	}

	if !utils.CheckPasswordHash(req.Password, store.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Error: "Invalid credentials",
		})
	}

	if len(store.Yubikeys) == 0 {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Error: "No YubiKeys are registered for this store. Please contact your manager to register a YubiKey first.",
		})
	}
	if req.YubikeyOTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "YubiKey OTP is required. Please touch your YubiKey to generate an OTP.",
		})
	}

	publicID, ok := utils.VerifyOTP(sc.Config, req.YubikeyOTP)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Error: "Invalid YubiKey OTP. Please try again or contact your manager.",
		})
	}

	authorized := false
	for _, key := range store.Yubikeys {
		if key.YubikeyID == publicID {
			authorized = true
			break
		}
	}
	if !authorized {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Error: "This YubiKey is not authorized for this store. Please contact your manager to register this YubiKey.",
		})
	}

	token, err := utils.GenerateAccessToken(utils.TokenClaims{
		Role:     "store",
		Name:     store.Name,
		Username: store.Username,
	}, sc.Config)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to generate access token",
		})
	}

	log.Println("Store logged in:", store.Name)
	return c.JSON(models.StoreLoginResponse{
		Name:       store.Name,
		Username:   store.Username,
		TotalBoxes: store.TotalBoxes,
		Token:      token,
	})
}

// ManagerLogin validates the configured manager credentials. There is a
// single manager account; no second factor is required.
func (sc *StoreController) ManagerLogin(c fiber.Ctx) error {
	var req ManagerLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Username and password required",
		})
	}

	if req.Username != sc.Config.ManagerUsername || req.Password != sc.Config.ManagerPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Error: "Invalid credentials",
		})
	}

	token, err := utils.GenerateAccessToken(utils.TokenClaims{
		Role:     "manager",
		Name:     "Manager",
		Username: req.Username,
	}, sc.Config)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to generate access token",
		})
	}

	log.Println("Manager logged in:", req.Username)
	return c.JSON(models.ManagerLoginResponse{
		Role:     "manager",
		Name:     "Manager",
		Username: req.Username,
		Token:    token,
	})
}

// RegisterYubikey authorizes a hardware token for a store. The OTP is
// verified once so only a key that is physically present (and known to
// YubiCloud) can be registered.
func (sc *StoreController) RegisterYubikey(c fiber.Ctx) error {
	var req RegisterYubikeyRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}

	req.YubikeyOTP = strings.TrimSpace(req.YubikeyOTP)
	if req.StoreName == "" || req.YubikeyOTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Store name and YubiKey OTP are required",
		})
	}
	if len(req.StoreName) > 100 || len(req.YubikeyName) > 200 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Input too long",
		})
	}

	publicID, ok := utils.VerifyOTP(sc.Config, req.YubikeyOTP)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Invalid YubiKey OTP. Please touch your YubiKey to generate a valid OTP.",
		})
	}

	var store models.Store
	if err := sc.DB.Preload("Yubikeys").Where("name = ?", req.StoreName).First(&store).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Failed to register YubiKey or store not found",
		})
	}

	for _, key := range store.Yubikeys {
		if key.YubikeyID == publicID {
			// Already authorized; nothing to do.
			return c.JSON(fiber.Map{
				"message":    "YubiKey registered successfully",
				"yubikey_id": publicID,
			})
		}
	}

	name := req.YubikeyName
	if name == "" {
		name = "YubiKey"
	}
	key := models.Yubikey{
		StoreID:     store.ID,
		YubikeyID:   publicID,
		YubikeyName: name,
		AddedAt:     time.Now().UTC(),
	}
	if err := sc.DB.Create(&key).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to register YubiKey",
		})
	}

	return c.JSON(fiber.Map{
		"message":    "YubiKey registered successfully",
		"yubikey_id": publicID,
	})
}

// RemoveYubikey revokes a token by its public ID.
func (sc *StoreController) RemoveYubikey(c fiber.Ctx) error {
	var req RemoveYubikeyRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}
	if req.StoreName == "" || req.YubikeyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Store name and YubiKey ID are required",
		})
	}
	if len(req.StoreName) > 100 || !utils.IsValidPublicID(req.YubikeyID) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Invalid input",
		})
	}

	var store models.Store
	if err := sc.DB.Where("name = ?", req.StoreName).First(&store).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Failed to remove YubiKey or store not found",
		})
	}

	result := sc.DB.Where("store_id = ? AND yubikey_id = ?", store.ID, req.YubikeyID).Delete(&models.Yubikey{})
	if result.Error != nil || result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Failed to remove YubiKey or store not found",
		})
	}

	return c.JSON(utils.StatusResponse{Message: "YubiKey removed successfully"})
}

// ListYubikeys returns the tokens registered for one store.
func (sc *StoreController) ListYubikeys(c fiber.Ctx) error {
	storeName := c.Query("store_name")
	if storeName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Store name is required",
		})
	}

	var store models.Store
	if err := sc.DB.Preload("Yubikeys").Where("name = ?", storeName).First(&store).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Store not found",
		})
	}

	keys := store.Yubikeys
	if keys == nil {
		keys = []models.Yubikey{}
	}
	return c.JSON(fiber.Map{"yubikeys": keys})
}
