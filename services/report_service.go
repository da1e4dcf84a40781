package services

import (
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"restaurant-manager/models"
	"restaurant-manager/utils"
)

// ReportService exports store contents to xlsx workbooks for the
// operator. Export failures are reported to the menu, not fatal.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// ExportUnpaidBills writes one row per unpaid bill.
func (rs *ReportService) ExportUnpaidBills(path string) error {
	var bills []models.Bill
	if err := rs.DB.Where("payment_status = ?", models.BillUnpaid).Find(&bills).Error; err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Bill ID", "Order ID", "Total", "Discount", "Tax", "Final Amount", "Generated At"}
	if err := writeRow(f, sheet, 1, toCells(headers)); err != nil {
		return err
	}

	for i, bill := range bills {
		row := []interface{}{
			bill.ID,
			bill.OrderID,
			bill.TotalAmount,
			bill.Discount,
			bill.Tax,
			bill.FinalAmount,
			bill.GeneratedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Exported %d unpaid bills to %s", len(bills), path)
	return nil
}

// ExportPayments writes one row per recorded payment plus a total line.
func (rs *ReportService) ExportPayments(path string) error {
	var payments []models.Payment
	if err := rs.DB.Find(&payments).Error; err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Payment ID", "Bill ID", "Method", "Amount Paid", "Status", "Payment Time"}
	if err := writeRow(f, sheet, 1, toCells(headers)); err != nil {
		return err
	}

	var total float64
	for i, payment := range payments {
		total += payment.AmountPaid
		row := []interface{}{
			payment.ID,
			payment.BillID,
			string(payment.Method),
			payment.AmountPaid,
			string(payment.Status),
			payment.PaymentTime.Format("2006-01-02 15:04:05"),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	totalRow := []interface{}{"Total", "", "", total, "", ""}
	if err := writeRow(f, sheet, len(payments)+2, totalRow); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Exported %d payments to %s", len(payments), path)
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}
