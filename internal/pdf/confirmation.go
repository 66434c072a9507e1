// Package pdf renders booking confirmation documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"reservio/internal/domain/models"
)

// BookingConfirmation renders a one-page confirmation for a room booking.
func BookingConfirmation(b models.BookingWithDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Booking Confirmation")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Booking #", fmt.Sprintf("%d", b.ID))
	line("Title", b.Title)
	line("Room", fmt.Sprintf("%s (%s)", b.Room.Name, b.Room.Location))
	line("Organizer", fmt.Sprintf("%s <%s>", b.OrganizerName, b.OrganizerEmail))
	line("Attendees", fmt.Sprintf("%d", b.AttendeeCount))
	line("From", b.StartDate+" "+b.StartTime)
	line("To", b.EndDate+" "+b.EndTime)
	line("Status", b.Status)
	if len(b.Equipment) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, "Equipment", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, e := range b.Equipment {
			pdf.CellFormat(0, 7, fmt.Sprintf("- %s x%d", e.EquipmentName, e.Quantity), "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: %.2f", float64(b.TotalAmount)/100), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
