package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"Brokerage/Models"
)

// TransactionController handles the brokerage deal endpoints, including the
// derived business code and the delivery lifecycle.
type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// TransactionInput is the create/update payload. Creation requires at least
// one of seller, buyer or product.
type TransactionInput struct {
	Seller          string `json:"seller" validate:"required_without_all=Buyer Product"`
	SellerBrokerage string `json:"seller_brokerage"`
	Buyer           string `json:"buyer"`
	BuyerBrokerage  string `json:"buyer_brokerage"`

	Product  string `json:"product"`
	Rate     string `json:"rate"`
	UnitRate string `json:"unit_rate"`
	Tax      string `json:"tax"`
	Quantity string `json:"quantity"`
	UnitQty  string `json:"unit_qty"`

	ConfirmDate   string `json:"confirm_date"`
	DeliveryTime  string `json:"delivery_time"`
	DeliveryPlace string `json:"delivery_place"`
	Payment       string `json:"payment"`
	Flag          string `json:"flag"`

	Status string `json:"status"`

	DeliveryDate    string `json:"delivery_date"`
	TankerNo        string `json:"tanker_no"`
	BillNo          string `json:"bill_no"`
	DeliveryQty     string `json:"delivery_qty"`
	DeliveryUnitQty string `json:"delivery_unit_qty"`
	AmountRs        string `json:"amount_rs"`
}

func (in *TransactionInput) trim() {
	in.Seller = strings.TrimSpace(in.Seller)
	in.SellerBrokerage = strings.TrimSpace(in.SellerBrokerage)
	in.Buyer = strings.TrimSpace(in.Buyer)
	in.BuyerBrokerage = strings.TrimSpace(in.BuyerBrokerage)
	in.Product = strings.TrimSpace(in.Product)
	in.Rate = strings.TrimSpace(in.Rate)
	in.UnitRate = strings.TrimSpace(in.UnitRate)
	in.Tax = strings.TrimSpace(in.Tax)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.UnitQty = strings.TrimSpace(in.UnitQty)
	in.ConfirmDate = strings.TrimSpace(in.ConfirmDate)
	in.DeliveryTime = strings.TrimSpace(in.DeliveryTime)
	in.DeliveryPlace = strings.TrimSpace(in.DeliveryPlace)
	in.Payment = strings.TrimSpace(in.Payment)
	in.Flag = strings.TrimSpace(in.Flag)
	in.Status = strings.TrimSpace(in.Status)
	in.DeliveryDate = strings.TrimSpace(in.DeliveryDate)
	in.TankerNo = strings.TrimSpace(in.TankerNo)
	in.BillNo = strings.TrimSpace(in.BillNo)
	in.DeliveryQty = strings.TrimSpace(in.DeliveryQty)
	in.DeliveryUnitQty = strings.TrimSpace(in.DeliveryUnitQty)
	in.AmountRs = strings.TrimSpace(in.AmountRs)
}

// GetTransactions lists active transactions, newest first, filtered by an
// exact status and/or a substring over the searchable fields.
func (c *TransactionController) GetTransactions(ctx *fiber.Ctx) error {
	status := strings.TrimSpace(ctx.Query("status"))
	q := strings.TrimSpace(ctx.Query("q"))

	query := c.DB.Where("is_active = ?", true).Order("id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			`seller LIKE ? OR buyer LIKE ? OR product LIKE ? OR
			 delivery_place LIKE ? OR payment LIKE ? OR flag LIKE ? OR
			 tanker_no LIKE ? OR bill_no LIKE ? OR transaction_id LIKE ?`,
			like, like, like, like, like, like, like, like, like,
		)
	}

	var transactions []Models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list transactions"})
	}
	return ctx.JSON(transactions)
}

func (c *TransactionController) GetTransaction(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var transaction Models.Transaction
	if err := c.DB.Where("id = ? AND is_active = ?", id, true).First(&transaction).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
	}
	return ctx.JSON(transaction)
}

// CreateTransaction inserts the deal and persists its business code in one
// database transaction, so a failed code write leaves no visible row.
func (c *TransactionController) CreateTransaction(ctx *fiber.Ctx) error {
	var input TransactionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	input.trim()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Enter at least Seller/Buyer/Product"})
	}

	transaction := Models.Transaction{
		Seller:          input.Seller,
		SellerBrokerage: input.SellerBrokerage,
		Buyer:           input.Buyer,
		BuyerBrokerage:  input.BuyerBrokerage,
		Product:         input.Product,
		Rate:            input.Rate,
		UnitRate:        input.UnitRate,
		Tax:             fallback(input.Tax, "Plus VAT"),
		Quantity:        input.Quantity,
		UnitQty:         input.UnitQty,
		ConfirmDate:     input.ConfirmDate,
		DeliveryTime:    input.DeliveryTime,
		DeliveryPlace:   input.DeliveryPlace,
		Payment:         input.Payment,
		Flag:            input.Flag,
		Status:          fallback(input.Status, Models.StatusUndelivered),
		DeliveryDate:    input.DeliveryDate,
		TankerNo:        input.TankerNo,
		BillNo:          input.BillNo,
		DeliveryQty:     fallback(input.DeliveryQty, "0"),
		DeliveryUnitQty: input.DeliveryUnitQty,
		AmountRs:        fallback(input.AmountRs, "0.00"),
		IsActive:        true,
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}
		transaction.TransactionID = Models.ComposeTransactionID(transaction.Seller, transaction.Buyer, transaction.ID)
		return tx.Model(&Models.Transaction{}).
			Where("id = ?", transaction.ID).
			Update("transaction_id", transaction.TransactionID).Error
	})
	if err != nil {
		log.WithError(err).Error("transaction create failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create transaction"})
	}

	c.DB.First(&transaction, transaction.ID)
	return ctx.Status(fiber.StatusCreated).JSON(transaction)
}

// UpdateTransaction replaces every deal and delivery field, then re-derives
// the business code from the possibly-changed seller/buyer. The code
// rewrite is best-effort and never fails the update.
func (c *TransactionController) UpdateTransaction(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var transaction Models.Transaction
	if err := c.DB.Where("id = ? AND is_active = ?", id, true).First(&transaction).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
	}

	var input TransactionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	input.trim()

	update := map[string]interface{}{
		"seller":            input.Seller,
		"seller_brokerage":  input.SellerBrokerage,
		"buyer":             input.Buyer,
		"buyer_brokerage":   input.BuyerBrokerage,
		"product":           input.Product,
		"rate":              input.Rate,
		"unit_rate":         input.UnitRate,
		"tax":               fallback(input.Tax, "Plus VAT"),
		"quantity":          input.Quantity,
		"unit_qty":          input.UnitQty,
		"confirm_date":      input.ConfirmDate,
		"delivery_time":     input.DeliveryTime,
		"delivery_place":    input.DeliveryPlace,
		"payment":           input.Payment,
		"flag":              input.Flag,
		"status":            fallback(input.Status, fallback(transaction.Status, Models.StatusUndelivered)),
		"delivery_date":     input.DeliveryDate,
		"tanker_no":         input.TankerNo,
		"bill_no":           input.BillNo,
		"delivery_qty":      fallback(input.DeliveryQty, "0"),
		"delivery_unit_qty": input.DeliveryUnitQty,
		"amount_rs":         fallback(input.AmountRs, "0.00"),
	}
	if err := c.DB.Model(&transaction).Updates(update).Error; err != nil {
		log.WithError(err).Error("transaction update failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update transaction"})
	}

	code := Models.ComposeTransactionID(input.Seller, input.Buyer, transaction.ID)
	if err := c.DB.Model(&transaction).Update("transaction_id", code).Error; err != nil {
		log.WithError(err).WithField("id", transaction.ID).Warn("transaction code rewrite failed")
	}

	c.DB.First(&transaction, transaction.ID)
	return ctx.JSON(transaction)
}

// DeliverInput carries only the fulfillment fields.
type DeliverInput struct {
	DeliveryDate    string `json:"delivery_date"`
	TankerNo        string `json:"tanker_no"`
	BillNo          string `json:"bill_no"`
	DeliveryQty     string `json:"delivery_qty"`
	DeliveryUnitQty string `json:"delivery_unit_qty"`
	AmountRs        string `json:"amount_rs"`
}

// DeliverTransaction records the fulfillment details and forces the status
// to DELIVERED, whatever it was before. Deal fields are untouched.
func (c *TransactionController) DeliverTransaction(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var transaction Models.Transaction
	if err := c.DB.Where("id = ? AND is_active = ?", id, true).First(&transaction).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
	}

	var input DeliverInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	update := map[string]interface{}{
		"status":            Models.StatusDelivered,
		"delivery_date":     strings.TrimSpace(input.DeliveryDate),
		"tanker_no":         strings.TrimSpace(input.TankerNo),
		"bill_no":           strings.TrimSpace(input.BillNo),
		"delivery_qty":      fallback(input.DeliveryQty, "0"),
		"delivery_unit_qty": strings.TrimSpace(input.DeliveryUnitQty),
		"amount_rs":         fallback(input.AmountRs, "0.00"),
	}
	if err := c.DB.Model(&transaction).Updates(update).Error; err != nil {
		log.WithError(err).Error("transaction deliver failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update transaction"})
	}

	c.DB.First(&transaction, transaction.ID)
	return ctx.JSON(transaction)
}

func (c *TransactionController) DeleteTransaction(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	if err := c.DB.Model(&Models.Transaction{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete transaction"})
	}
	return ctx.JSON(fiber.Map{"ok": true})
}

func (c *TransactionController) BulkDeleteTransactions(ctx *fiber.Ctx) error {
	var body BulkDeleteRequest
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ids := body.ValidIDs()
	if len(ids) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No valid ids provided"})
	}

	if err := c.DB.Model(&Models.Transaction{}).Where("id IN ?", ids).Update("is_active", false).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete transactions"})
	}
	return ctx.JSON(fiber.Map{"ok": true, "deleted": len(ids)})
}

// TransactionReport joins a transaction with the client rows matching its
// seller and buyer names. Either side is null when no active client matches.
type TransactionReport struct {
	Transaction Models.Transaction `json:"transaction"`
	Seller      *Models.Client     `json:"seller"`
	Buyer       *Models.Client     `json:"buyer"`
}

func (c *TransactionController) GetTransactionReport(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var transaction Models.Transaction
	if err := c.DB.Where("id = ? AND is_active = ?", id, true).First(&transaction).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
	}

	report := TransactionReport{
		Transaction: transaction,
		Seller:      c.clientByName(transaction.Seller),
		Buyer:       c.clientByName(transaction.Buyer),
	}
	return ctx.JSON(report)
}

// clientByName resolves a denormalized party name to its client row.
// Best-effort: names are not unique, an arbitrary active match wins.
func (c *TransactionController) clientByName(name string) *Models.Client {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	var client Models.Client
	if err := c.DB.Where("is_active = ? AND name = ?", true, name).First(&client).Error; err != nil {
		return nil
	}
	return &client
}

