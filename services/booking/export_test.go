package booking

import (
	"bytes"
	"testing"
	"time"

	"playzone/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	date, err := time.Parse("2006-01-02", "2025-06-01")
	require.NoError(t, err)

	bookings := []models.Booking{
		{
			Username:        "Ann",
			Email:           "a@x.com",
			PackageType:     "Basic",
			Date:            date,
			TimeSlot:        "Morning (9AM-12PM)",
			Message:         models.StatusConfirmed,
			SpecialRequests: "clown",
			CreatedAt:       date,
		},
	}

	data, err := buildWorkbook(bookings)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Bookings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Username", header)

	name, err := f.GetCellValue("Bookings", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)

	status, err := f.GetCellValue("Bookings", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", status)

	exportDate, err := f.GetCellValue("Bookings", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", exportDate)
}

func TestBuildWorkbookEmptyList(t *testing.T) {
	data, err := buildWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
