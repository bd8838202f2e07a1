package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"Brokerage/Models"
)

// ClientController handles the client master endpoints.
type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// ClientInput is the create/update payload.
type ClientInput struct {
	Name    string `json:"name" validate:"required"`
	GstNo   string `json:"gst_no"`
	FssaiNo string `json:"fssai_no"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
}

func (in *ClientInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.GstNo = strings.TrimSpace(in.GstNo)
	in.FssaiNo = strings.TrimSpace(in.FssaiNo)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Email = strings.TrimSpace(in.Email)
}

// GetClients lists active clients, optionally filtered by a substring over
// name, mobile, email, gst_no and fssai_no.
func (c *ClientController) GetClients(ctx *fiber.Ctx) error {
	q := strings.TrimSpace(ctx.Query("q"))

	query := c.DB.Where("is_active = ?", true).Order("name")
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"name LIKE ? OR mobile LIKE ? OR email LIKE ? OR gst_no LIKE ? OR fssai_no LIKE ?",
			like, like, like, like, like,
		)
	}

	var clients []Models.Client
	if err := query.Find(&clients).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list clients"})
	}
	return ctx.JSON(clients)
}

func (c *ClientController) CreateClient(ctx *fiber.Ctx) error {
	var input ClientInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	input.trim()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Client name is required"})
	}

	client := Models.Client{
		Name:     input.Name,
		GstNo:    input.GstNo,
		FssaiNo:  input.FssaiNo,
		Address:  input.Address,
		Phone:    input.Phone,
		Mobile:   input.Mobile,
		Email:    input.Email,
		IsActive: true,
	}
	if err := c.DB.Create(&client).Error; err != nil {
		log.WithError(err).Error("client create failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create client"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(client)
}

func (c *ClientController) UpdateClient(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var client Models.Client
	if err := c.DB.First(&client, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Client not found"})
	}

	var input ClientInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	input.trim()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Client name is required"})
	}

	update := map[string]interface{}{
		"name":     input.Name,
		"gst_no":   input.GstNo,
		"fssai_no": input.FssaiNo,
		"address":  input.Address,
		"phone":    input.Phone,
		"mobile":   input.Mobile,
		"email":    input.Email,
	}
	if err := c.DB.Model(&client).Updates(update).Error; err != nil {
		log.WithError(err).Error("client update failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update client"})
	}

	c.DB.First(&client, id)
	return ctx.JSON(client)
}

func (c *ClientController) DeleteClient(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var client Models.Client
	if err := c.DB.First(&client, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Client not found"})
	}

	if err := c.DB.Model(&client).Update("is_active", false).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete client"})
	}
	return ctx.JSON(fiber.Map{"ok": true})
}

func (c *ClientController) BulkDeleteClients(ctx *fiber.Ctx) error {
	var body BulkDeleteRequest
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ids := body.ValidIDs()
	if len(ids) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No valid ids provided"})
	}

	if err := c.DB.Model(&Models.Client{}).Where("id IN ?", ids).Update("is_active", false).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete clients"})
	}
	return ctx.JSON(fiber.Map{"ok": true, "deleted": len(ids)})
}
