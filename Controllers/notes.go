package Controllers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"Brokerage/Constants"
	"Brokerage/Models"
	"Brokerage/email"
)

// ContactLinks are ready-to-open send targets for one party of a deal.
type ContactLinks struct {
	Name        string `json:"name"`
	WhatsappURL string `json:"whatsapp_url,omitempty"`
	MailtoURL   string `json:"mailto_url,omitempty"`
}

// ConfirmationNote is the printable note plus per-party send links.
type ConfirmationNote struct {
	Note   string        `json:"note"`
	Seller *ContactLinks `json:"seller"`
	Buyer  *ContactLinks `json:"buyer"`
}

// GetConfirmationNote renders the confirmation note for a transaction along
// with wa.me and mailto links for whichever parties resolve to a client.
func (c *TransactionController) GetConfirmationNote(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var transaction Models.Transaction
	if err := c.DB.Where("id = ? AND is_active = ?", id, true).First(&transaction).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
	}

	seller := c.clientByName(transaction.Seller)
	buyer := c.clientByName(transaction.Buyer)
	note := buildConfirmationNote(transaction, seller, buyer)

	return ctx.JSON(ConfirmationNote{
		Note:   note,
		Seller: contactLinks(seller, transaction, note),
		Buyer:  contactLinks(buyer, transaction, note),
	})
}

// EmailNoteRequest picks which party of the deal receives the note.
type EmailNoteRequest struct {
	Party string `json:"party" validate:"required,oneof=seller buyer"`
}

// EmailConfirmationNote sends the note to the chosen party's email address
// from the client master.
func (c *TransactionController) EmailConfirmationNote(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid id"})
	}

	var transaction Models.Transaction
	if err := c.DB.Where("id = ? AND is_active = ?", id, true).First(&transaction).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
	}

	var body EmailNoteRequest
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := validate.Struct(body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Party must be seller or buyer"})
	}

	seller := c.clientByName(transaction.Seller)
	buyer := c.clientByName(transaction.Buyer)

	recipient := seller
	if body.Party == "buyer" {
		recipient = buyer
	}
	if recipient == nil || strings.TrimSpace(recipient.Email) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No email in client master"})
	}

	config := Constants.SMTPConfig()
	if config.SMTPServer == "" {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Email is not configured"})
	}

	message := Models.EmailMessage{
		To:      []string{recipient.Email},
		Subject: "Confirmation Note - " + transaction.TransactionID,
		Body:    buildConfirmationNote(transaction, seller, buyer),
	}
	if err := email.SendEmail(config, message); err != nil {
		log.WithError(err).WithField("id", transaction.ID).Error("confirmation note email failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to send email"})
	}

	return ctx.JSON(fiber.Map{"ok": true})
}

// buildConfirmationNote lays out the letter the broker sends to the seller,
// quoting the buyer and the terms of the deal.
func buildConfirmationNote(tx Models.Transaction, seller, buyer *Models.Client) string {
	var lines []string
	push := func(s string) { lines = append(lines, s) }
	orDash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}

	push(Constants.BrokerName)
	push(Constants.BrokerLine)
	push(Constants.BrokerAddr1)
	push(Constants.BrokerAddr2)
	push(Constants.BrokerCity)
	push(Constants.BrokerPhone + "   " + Constants.BrokerMobile)
	push(Constants.BrokerEmail)

	push("")
	push("TO,")
	if seller != nil {
		push(orDash(seller.Name))
		if seller.Address != "" {
			push(seller.Address)
		}
		if seller.Phone != "" || seller.Mobile != "" {
			push("Phone: " + seller.Phone + "  Mobile: " + seller.Mobile)
		}
		if seller.Email != "" {
			push("Email: " + seller.Email)
		}
	} else {
		push(orDash(tx.Seller))
	}

	push("")
	push("CONFIRMATION NOTE")
	push("")
	push("Date: " + orDash(tx.ConfirmDate))
	push("Transaction No: " + orDash(tx.TransactionID))
	push("")
	push("Dear Sirs,")
	push("")

	if buyer != nil {
		push("To Whom (Buyer): " + orDash(buyer.Name))
		if buyer.Address != "" {
			push(buyer.Address)
		}
		if buyer.Phone != "" || buyer.Mobile != "" {
			push("Phone: " + buyer.Phone + "  Mobile: " + buyer.Mobile)
		}
	} else {
		push("To Whom (Buyer): " + orDash(tx.Buyer))
	}

	push("")
	push("PLACE OF DELIVERY : " + orDash(tx.DeliveryPlace))
	push("QUANTITY : " + orDash(tx.Quantity) + " " + tx.UnitQty)
	push("PRICE : " + orDash(tx.Rate) + " per " + tx.UnitRate + " (" + fallback(tx.Tax, "Plus VAT") + ")")
	push("TIME OF DELIVERY : " + orDash(tx.DeliveryDate))
	push("PAYMENT TERMS : " + orDash(tx.Payment))

	push("")
	push("Yours Faithfully,")
	push(Constants.BrokerSignoff)

	return strings.Join(lines, "\n")
}

func contactLinks(client *Models.Client, tx Models.Transaction, note string) *ContactLinks {
	if client == nil {
		return nil
	}

	links := &ContactLinks{Name: client.Name}
	if digits := digitsOnly(client.Mobile); digits != "" {
		links.WhatsappURL = "https://wa.me/" + digits + "?text=" + url.QueryEscape(note)
	}
	if to := strings.TrimSpace(client.Email); to != "" {
		subject := "Confirmation Note - " + tx.TransactionID
		links.MailtoURL = "mailto:" + url.QueryEscape(to) +
			"?subject=" + url.QueryEscape(subject) +
			"&body=" + url.QueryEscape(note)
	}
	return links
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
