package Controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"Brokerage/Models"
)

// LookupController serves one of the six reference tables. The same handler
// set is instantiated per table; only the table name and the label used in
// messages differ.
type LookupController struct {
	DB    *gorm.DB
	Table string
	Label string
}

func NewLookupController(db *gorm.DB, table, label string) *LookupController {
	return &LookupController{DB: db, Table: table, Label: label}
}

func (c *LookupController) rows() *gorm.DB {
	return c.DB.Table(c.Table)
}

// List returns active rows, optionally filtered by a name substring.
func (c *LookupController) List(ctx *fiber.Ctx) error {
	q := strings.TrimSpace(ctx.Query("q"))

	query := c.rows().Where("is_active = ?", true).Order("name")
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var rows []Models.LookupRow
	if err := query.Find(&rows).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list " + strings.ToLower(c.Label) + "s"})
	}
	return ctx.JSON(rows)
}

func (c *LookupController) Create(ctx *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": c.Label + " is required"})
	}

	row := Models.LookupRow{Name: name, IsActive: true}
	if err := c.rows().Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"message": c.Label + " already exists"})
		}
		log.WithError(err).WithField("table", c.Table).Error("lookup create failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create " + strings.ToLower(c.Label)})
	}

	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *LookupController) Update(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	// Resolves the row whether active or not; editing a deactivated row is
	// allowed.
	var existing Models.LookupRow
	if err := c.rows().Where("id = ?", id).First(&existing).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": c.Label + " not found"})
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": c.Label + " is required"})
	}

	update := map[string]interface{}{"name": name, "updated_at": time.Now()}
	if err := c.rows().Where("id = ?", id).Updates(update).Error; err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"message": c.Label + " already exists"})
		}
		log.WithError(err).WithField("table", c.Table).Error("lookup update failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update " + strings.ToLower(c.Label)})
	}

	var updated Models.LookupRow
	c.rows().Where("id = ?", id).First(&updated)
	return ctx.JSON(updated)
}

// SoftDelete flips is_active; the row stays behind for history and keeps
// holding its unique name.
func (c *LookupController) SoftDelete(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var existing Models.LookupRow
	if err := c.rows().Where("id = ?", id).First(&existing).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": c.Label + " not found"})
	}

	update := map[string]interface{}{"is_active": false, "updated_at": time.Now()}
	if err := c.rows().Where("id = ?", id).Updates(update).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete " + strings.ToLower(c.Label)})
	}
	return ctx.JSON(fiber.Map{"ok": true})
}

func (c *LookupController) BulkDelete(ctx *fiber.Ctx) error {
	var body BulkDeleteRequest
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ids := body.ValidIDs()
	if len(ids) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No valid ids provided"})
	}

	update := map[string]interface{}{"is_active": false, "updated_at": time.Now()}
	if err := c.rows().Where("id IN ?", ids).Updates(update).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete " + strings.ToLower(c.Label) + "s"})
	}
	return ctx.JSON(fiber.Map{"ok": true, "deleted": len(ids)})
}
