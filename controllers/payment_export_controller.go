package controllers

import (
	"fmt"
	"time"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /api/v1/payments/export?period=day|week|month
// Downloads the merchant's payments for the period as an Excel sheet, for
// reconciliation against their own books.
func DownloadPaymentsExcel(c *gin.Context) {
	utils.LogInfo("DownloadPaymentsExcel called")
	merchant := c.MustGet("merchant").(models.Merchant)

	period := c.DefaultQuery("period", "day")

	now := time.Now()
	var startDate, endDate time.Time
	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = now
	case "week":
		startDate = now.AddDate(0, 0, -7)
		endDate = now
	case "month":
		startDate = now.AddDate(0, -1, 0)
		endDate = now
	default:
		utils.LogError("Invalid export period: %s", period)
		utils.BadRequest(c, utils.ErrCodeBadRequest, "Period must be day, week, or month")
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("merchant_id = ? AND created_at >= ? AND created_at <= ?",
		merchant.ID, startDate, endDate).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments")
		return
	}
	utils.LogDebug("Exporting %d payments for merchant %s", len(payments), merchant.ID)

	var succeeded, failed, processing int
	var settledAmount int64
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusSuccess:
			succeeded++
			settledAmount += p.Amount
		case models.PaymentStatusFailed:
			failed++
		default:
			processing++
		}
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create export")
		return
	}

	// Summary block
	addRow := func(values ...string) {
		row := sheet.AddRow()
		for _, v := range values {
			cell := row.AddCell()
			cell.Value = v
		}
	}
	addRow("Payments Report")
	addRow("Merchant", merchant.Name)
	addRow("Period", fmt.Sprintf("%s to %s", startDate.Format("2006-01-02"), endDate.Format("2006-01-02")))
	addRow("Total Payments", fmt.Sprintf("%d", len(payments)))
	addRow("Succeeded", fmt.Sprintf("%d", succeeded))
	addRow("Failed", fmt.Sprintf("%d", failed))
	addRow("Processing", fmt.Sprintf("%d", processing))
	addRow("Amount Settled", fmt.Sprintf("%.2f %s", float64(settledAmount)/100, "INR"))
	addRow()

	// Detail rows
	addRow("Payment ID", "Order ID", "Amount", "Currency", "Method", "Status", "Instrument", "Error Code", "Created At")
	for _, p := range payments {
		instrument := p.VPA
		if p.Method == models.PaymentMethodCard {
			instrument = fmt.Sprintf("%s ****%s", p.CardNetwork, p.CardLast4)
		}
		addRow(
			p.ID,
			p.OrderID,
			fmt.Sprintf("%.2f", float64(p.Amount)/100),
			p.Currency,
			p.Method,
			p.Status,
			instrument,
			p.ErrorCode,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	filename := fmt.Sprintf("payments-%s-%s.xlsx", period, now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel export: %v", err)
	}
}
