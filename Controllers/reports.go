package Controllers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Brokerage/Models"
)

// ReportController serves the day-wise brokerage report and its Excel
// export.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// DayWiseResult is the report payload: matching transactions plus brokerage
// totals.
type DayWiseResult struct {
	Rows                 []Models.Transaction `json:"rows"`
	SellerBrokerageTotal float64              `json:"seller_brokerage_total"`
	BuyerBrokerageTotal  float64              `json:"buyer_brokerage_total"`
	GrandTotal           float64              `json:"grand_total"`
}

var reportDateLayouts = []string{"02-Jan-06", "2-Jan-06", "02-Jan-2006", "2-Jan-2006"}

// parseReportDate reads the dd-MMM-yy confirm date format the entry screens
// use, e.g. "03-Feb-26".
func parseReportDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want dd-MMM-yy", s)
}

// parseAmount reads a free-text brokerage amount; anything unparsable
// counts as zero, same as the entry screens.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// DayWise returns active transactions whose confirm date falls in the
// inclusive from/to range, optionally narrowed by a client (seller/buyer)
// and an item (product) substring, ordered by confirm date then id.
func (c *ReportController) DayWise(ctx *fiber.Ctx) error {
	rows, err := c.dayWiseRows(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result := DayWiseResult{Rows: rows}
	for _, row := range rows {
		result.SellerBrokerageTotal += parseAmount(row.SellerBrokerage)
		result.BuyerBrokerageTotal += parseAmount(row.BuyerBrokerage)
	}
	result.GrandTotal = result.SellerBrokerageTotal + result.BuyerBrokerageTotal

	return ctx.JSON(result)
}

func (c *ReportController) dayWiseRows(ctx *fiber.Ctx) ([]Models.Transaction, error) {
	from, err := parseReportDate(ctx.Query("from"))
	if err != nil {
		return nil, err
	}
	to, err := parseReportDate(ctx.Query("to"))
	if err != nil {
		return nil, err
	}
	client := strings.ToLower(strings.TrimSpace(ctx.Query("client")))
	item := strings.ToLower(strings.TrimSpace(ctx.Query("item")))

	var all []Models.Transaction
	if err := c.DB.Where("is_active = ?", true).Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions")
	}

	type dated struct {
		tx   Models.Transaction
		date time.Time
	}
	var matched []dated
	for _, tx := range all {
		d, err := parseReportDate(tx.ConfirmDate)
		if err != nil {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		if client != "" &&
			!strings.Contains(strings.ToLower(tx.Seller), client) &&
			!strings.Contains(strings.ToLower(tx.Buyer), client) {
			continue
		}
		if item != "" && !strings.Contains(strings.ToLower(tx.Product), item) {
			continue
		}
		matched = append(matched, dated{tx: tx, date: d})
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].date.Equal(matched[j].date) {
			return matched[i].date.Before(matched[j].date)
		}
		return matched[i].tx.ID < matched[j].tx.ID
	})

	rows := make([]Models.Transaction, 0, len(matched))
	for _, m := range matched {
		rows = append(rows, m.tx)
	}
	return rows, nil
}

var dayWiseHeaders = []string{
	"S.No", "Conf.Date", "Seller Name", "S.Brok", "Buyer Name", "B.Brok",
	"Item Name", "Qty", "Price",
}

// DayWiseExport streams the same report as an .xlsx workbook.
func (c *ReportController) DayWiseExport(ctx *fiber.Ctx) error {
	rows, err := c.dayWiseRows(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	f := excelize.NewFile()
	sheetName := "Day Wise Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to build workbook"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range dayWiseHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	var sellerTotal, buyerTotal float64
	for rowIndex, tx := range rows {
		row := rowIndex + 2
		sellerTotal += parseAmount(tx.SellerBrokerage)
		buyerTotal += parseAmount(tx.BuyerBrokerage)

		values := []interface{}{
			rowIndex + 1,
			tx.ConfirmDate,
			tx.Seller,
			tx.SellerBrokerage,
			tx.Buyer,
			tx.BuyerBrokerage,
			tx.Product,
			tx.Quantity,
			tx.Rate,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	totalsRow := len(rows) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow), "Seller Brok Total")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalsRow), sellerTotal)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow+1), "Buyer Brok Total")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalsRow+1), buyerTotal)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow+2), "Grand Total")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalsRow+2), sellerTotal+buyerTotal)

	for i := range dayWiseHeaders {
		col := string('A' + rune(i))
		f.SetColWidth(sheetName, col, col, 15)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to write workbook"})
	}

	filename := fmt.Sprintf("day-wise-report_%s_to_%s.xlsx",
		strings.TrimSpace(ctx.Query("from")), strings.TrimSpace(ctx.Query("to")))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}
