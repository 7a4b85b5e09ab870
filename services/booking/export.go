package booking

import (
	"bytes"
	"fmt"

	"playzone/models"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Username", "Email", "Package", "Date", "Time Slot",
	"Status", "Special Requests", "Created",
}

// ExportAll renders every booking into an Excel workbook for the admin
// dashboard download.
func (s *DefaultBookingService) ExportAll() ([]byte, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return buildWorkbook(bookings)
}

func buildWorkbook(bookings []models.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	_ = f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for row, b := range bookings {
		values := []any{
			b.Username,
			b.Email,
			b.PackageType,
			b.Date.Format("2006-01-02"),
			b.TimeSlot,
			string(b.Message),
			b.SpecialRequests,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "C", 20)
	_ = f.SetColWidth(sheet, "D", "H", 24)
	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
