package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// GET /api/v1/payments/:payment_id/receipt
// Generates a PDF receipt for a settled payment.
func DownloadPaymentReceipt(c *gin.Context) {
	utils.LogInfo("DownloadPaymentReceipt called")
	merchant := c.MustGet("merchant").(models.Merchant)
	paymentID := c.Param("payment_id")

	var payment models.Payment
	if err := config.DB.Where("id = ? AND merchant_id = ?", paymentID, merchant.ID).First(&payment).Error; err != nil {
		utils.NotFound(c, "Payment not found")
		return
	}

	if !payment.IsTerminal() {
		utils.BadRequest(c, utils.ErrCodeBadRequest, "Receipt is available only after the payment settles")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Payment Receipt")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Merchant", merchant.Name)
	line("Payment ID", payment.ID)
	line("Order ID", payment.OrderID)
	line("Amount", fmt.Sprintf("%.2f %s", float64(payment.Amount)/100, payment.Currency))
	line("Method", payment.Method)
	switch payment.Method {
	case models.PaymentMethodUPI:
		line("VPA", payment.VPA)
	case models.PaymentMethodCard:
		line("Card", fmt.Sprintf("%s ending %s", payment.CardNetwork, payment.CardLast4))
	}
	line("Status", payment.Status)
	if payment.Status == models.PaymentStatusFailed {
		line("Reason", payment.ErrorDescription)
	}
	line("Date", payment.UpdatedAt.Format("02 Jan 2006 15:04:05 MST"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render receipt PDF for %s: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to generate receipt")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", payment.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
