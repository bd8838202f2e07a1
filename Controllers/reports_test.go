package Controllers_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Brokerage/Models"
)

func seedDayWise(t *testing.T, app *fiber.App) {
	t.Helper()
	deals := []string{
		`{"seller":"Acme","buyer":"Beta","product":"Groundnut Oil","confirm_date":"01-Feb-26","seller_brokerage":"100","buyer_brokerage":"50"}`,
		`{"seller":"Gamma","buyer":"Delta","product":"Cotton Cake","confirm_date":"03-Feb-26","seller_brokerage":"200","buyer_brokerage":"75"}`,
		`{"seller":"Acme","buyer":"Delta","product":"Sunflower Oil","confirm_date":"10-Mar-26","seller_brokerage":"300","buyer_brokerage":"25"}`,
	}
	for _, body := range deals {
		createTransaction(t, app, body)
	}
}

func TestDayWiseReportRangeAndTotals(t *testing.T) {
	app, _ := newTestApp(t)
	seedDayWise(t, app)

	resp := doRequest(t, app, "GET", "/api/reports/day-wise?from=01-Feb-26&to=28-Feb-26", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Rows                 []Models.Transaction `json:"rows"`
		SellerBrokerageTotal float64              `json:"seller_brokerage_total"`
		BuyerBrokerageTotal  float64              `json:"buyer_brokerage_total"`
		GrandTotal           float64              `json:"grand_total"`
	}
	decodeBody(t, resp, &result)

	require.Len(t, result.Rows, 2)
	// ordered by confirm date
	assert.Equal(t, "01-Feb-26", result.Rows[0].ConfirmDate)
	assert.Equal(t, "03-Feb-26", result.Rows[1].ConfirmDate)
	assert.InDelta(t, 300, result.SellerBrokerageTotal, 0.001)
	assert.InDelta(t, 125, result.BuyerBrokerageTotal, 0.001)
	assert.InDelta(t, 425, result.GrandTotal, 0.001)
}

func TestDayWiseReportFilters(t *testing.T) {
	app, _ := newTestApp(t)
	seedDayWise(t, app)

	t.Run("client filter matches seller or buyer", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/api/reports/day-wise?from=01-Feb-26&to=31-Mar-26&client=delta", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var result struct {
			Rows []Models.Transaction `json:"rows"`
		}
		decodeBody(t, resp, &result)
		assert.Len(t, result.Rows, 2)
	})

	t.Run("item filter", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/api/reports/day-wise?from=01-Feb-26&to=31-Mar-26&item=oil", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var result struct {
			Rows []Models.Transaction `json:"rows"`
		}
		decodeBody(t, resp, &result)
		assert.Len(t, result.Rows, 2)
	})

	t.Run("invalid date is a client error", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/api/reports/day-wise?from=2026-02-01&to=28-Feb-26", "")
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestDayWiseExportIsWorkbook(t *testing.T) {
	app, _ := newTestApp(t)
	seedDayWise(t, app)

	resp := doRequest(t, app, "GET", "/api/reports/day-wise/export?from=01-Feb-26&to=28-Feb-26", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Contains(t, resp.Header.Get("Content-Disposition"), "day-wise-report_01-Feb-26_to_28-Feb-26.xlsx")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// xlsx files are zip archives
	require.Greater(t, len(body), 4)
	assert.Equal(t, []byte{'P', 'K'}, body[:2])
}

func TestConfirmationNote(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/clients",
		`{"name":"Acme","address":"Kurnool","mobile":"+91 98480 76195","email":"acme@example.com"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	created := createTransaction(t, app,
		`{"seller":"Acme","buyer":"Beta","product":"Groundnut Oil","rate":"1450","unit_rate":"Quintal","quantity":"10","unit_qty":"Tons","delivery_place":"Kurnool","payment":"NEFT","confirm_date":"01-Feb-26"}`)

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/transactions/%d/note", created.ID), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var note struct {
		Note   string `json:"note"`
		Seller *struct {
			Name        string `json:"name"`
			WhatsappURL string `json:"whatsapp_url"`
			MailtoURL   string `json:"mailto_url"`
		} `json:"seller"`
		Buyer interface{} `json:"buyer"`
	}
	decodeBody(t, resp, &note)

	assert.Contains(t, note.Note, "CONFIRMATION NOTE")
	assert.Contains(t, note.Note, "Transaction No: "+created.TransactionID)
	assert.Contains(t, note.Note, "PLACE OF DELIVERY : Kurnool")
	assert.Contains(t, note.Note, "PAYMENT TERMS : NEFT")

	require.NotNil(t, note.Seller)
	assert.Contains(t, note.Seller.WhatsappURL, "https://wa.me/919848076195")
	assert.Contains(t, note.Seller.MailtoURL, "mailto:acme%40example.com")
	// buyer has no client row
	assert.Nil(t, note.Buyer)
}

func TestConfirmationNoteEmailRequiresClientAddress(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTransaction(t, app, `{"seller":"Acme","buyer":"Beta","product":"Oil"}`)

	// no client row for the seller, so no email address
	resp := doRequest(t, app, "POST", fmt.Sprintf("/api/transactions/%d/email", created.ID), `{"party":"seller"}`)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp2 := doRequest(t, app, "POST", fmt.Sprintf("/api/transactions/%d/email", created.ID), `{"party":"carrier"}`)
	defer resp2.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp2.StatusCode)
}
