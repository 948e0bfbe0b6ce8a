package pdfgen

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"inventory-system/internal/entities"
)

const dateLayout = "2006-01-02"

func newDocument(b Branding, title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, b.FooterNote, "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	if b.LogoPath != "" {
		if _, err := os.Stat(b.LogoPath); err == nil {
			pdf.ImageOptions(b.LogoPath, 15, 12, 25, 0, false, fpdf.ImageOptions{}, 0, "")
		}
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, b.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)
	return pdf
}

func fieldRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(55, 7, label, "1", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 7, value, "1", 1, "L", false, 0, "")
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 7, title, "1", 1, "L", true, 0, "")
}

func checkRow(pdf *fpdf.Fpdf, label string, checked bool) {
	mark := "[ ]"
	if checked {
		mark = "[X]"
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(10, 6, mark, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, label, "", 1, "L", false, 0, "")
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// MaintenanceActa renders the signed maintenance report for one visit,
// checklist included.
func MaintenanceActa(b Branding, m *entities.Maintenance) ([]byte, error) {
	pdf := newDocument(b, "MAINTENANCE REPORT")

	fieldRow(pdf, "Date", m.Date.Format(dateLayout))
	fieldRow(pdf, "Type", m.MaintenanceType)
	if m.Equipment != nil {
		fieldRow(pdf, "Equipment", fmt.Sprintf("%s %s (%s)", m.Equipment.Brand, m.Equipment.Model, m.Equipment.SerialNumber))
	}
	if m.PerformedBy != nil {
		fieldRow(pdf, "Performed by", m.PerformedBy.Name)
	}
	if m.StartTime != nil && m.EndTime != nil {
		fieldRow(pdf, "Time", fmt.Sprintf("%s - %s", *m.StartTime, *m.EndTime))
	}
	if m.NextMaintenanceDate != nil {
		fieldRow(pdf, "Next maintenance", m.NextMaintenanceDate.Format(dateLayout))
	}

	sectionHeader(pdf, "Type of support")
	checkRow(pdf, "Review", m.TypeReview)
	checkRow(pdf, "Software failure", m.TypeSoftwareFailure)
	checkRow(pdf, "Connection", m.TypeConnection)
	checkRow(pdf, "Updates", m.TypeUpdates)
	checkRow(pdf, "Cleaning", m.TypeCleaning)
	checkRow(pdf, "Installation", m.TypeInstall)
	checkRow(pdf, "Peripheral", m.TypePeripheral)
	checkRow(pdf, "Backup", m.TypeBackup)

	sectionHeader(pdf, "Operating system cleanup")
	checkRow(pdf, "Disk defragmentation", m.CleaningDefrag)
	checkRow(pdf, "Temporary files cleanup", m.CleaningCCO)
	checkRow(pdf, "Disk check", m.CleaningScandisk)
	checkRow(pdf, "Free space review", m.CleaningSpace)

	sectionHeader(pdf, "Hardware maintenance")
	checkRow(pdf, "Disassembly", m.HwDisassembly)
	checkRow(pdf, "Power supply", m.HwPowerSupply)
	checkRow(pdf, "Fans", m.HwFans)
	checkRow(pdf, "Chassis", m.HwChassis)
	checkRow(pdf, "Thermal paste", m.HwThermalPaste)
	checkRow(pdf, "Contact cleaning", m.HwContacts)
	checkRow(pdf, "Keyboard and mouse", m.HwKeyboardMouse)
	checkRow(pdf, "Screen", m.HwScreen)
	checkRow(pdf, "Reassembly", m.HwReassembly)

	sectionHeader(pdf, "Description")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, m.Description, "1", "L", false)

	signatureBlock(pdf)
	return output(pdf)
}

// HandoverActa renders the delivery document listing every equipment and
// peripheral line that changed hands.
func HandoverActa(b Branding, h *entities.Handover) ([]byte, error) {
	pdf := newDocument(b, "EQUIPMENT HANDOVER ACTA")

	fieldRow(pdf, "Date", h.Date.Format(dateLayout))
	fieldRow(pdf, "Type", h.Type)
	if h.SourceArea != nil {
		fieldRow(pdf, "From area", h.SourceArea.Name)
	}
	if h.DestinationArea != nil {
		fieldRow(pdf, "To area", h.DestinationArea.Name)
	}
	if h.Technician != nil {
		fieldRow(pdf, "Delivered by", h.Technician.Name)
	}
	if h.Client != nil {
		fieldRow(pdf, "Received by", h.Client.Name)
	} else if h.ReceiverName != nil {
		fieldRow(pdf, "Received by", *h.ReceiverName)
	}

	if len(h.Equipment) > 0 {
		sectionHeader(pdf, "Equipment")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(50, 6, "Serial number", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, "Type", "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, "Brand", "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Model", "1", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, e := range h.Equipment {
			pdf.CellFormat(50, 6, e.SerialNumber, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, e.Type, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, e.Brand, "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, e.Model, "1", 1, "L", false, 0, "")
		}
	}

	if len(h.Peripherals) > 0 {
		sectionHeader(pdf, "Peripherals")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(80, 6, "Item", "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Quantity", "1", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, line := range h.Peripherals {
			name := fmt.Sprintf("#%d", line.PeripheralID)
			if line.Peripheral != nil {
				name = fmt.Sprintf("%s %s", line.Peripheral.Brand, line.Peripheral.Model)
			}
			pdf.CellFormat(80, 6, name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, fmt.Sprintf("%d", line.Quantity), "1", 1, "L", false, 0, "")
		}
	}

	if h.Observations != nil && *h.Observations != "" {
		sectionHeader(pdf, "Observations")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, *h.Observations, "1", "L", false)
	}

	signatureBlock(pdf)
	return output(pdf)
}

// HistoryEntry is one line of the equipment lifecycle report.
type HistoryEntry struct {
	Kind    string
	Date    time.Time
	Summary string
}

// EquipmentHistory renders the full lifecycle report for one equipment.
func EquipmentHistory(b Branding, e *entities.Equipment, entries []HistoryEntry) ([]byte, error) {
	pdf := newDocument(b, "EQUIPMENT HISTORY")

	fieldRow(pdf, "Serial number", e.SerialNumber)
	fieldRow(pdf, "Type", e.Type)
	fieldRow(pdf, "Brand / model", fmt.Sprintf("%s %s", e.Brand, e.Model))
	fieldRow(pdf, "Status", e.Status)
	if eol := e.EndOfLifeDate(); eol != nil {
		fieldRow(pdf, "End of life", eol.Format(dateLayout))
	}

	sectionHeader(pdf, "Timeline")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(25, 6, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Event", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Detail", "1", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range entries {
		pdf.CellFormat(25, 6, entry.Date.Format(dateLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, entry.Kind, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, entry.Summary, "1", 1, "L", false, 0, "")
	}

	return output(pdf)
}

func signatureBlock(pdf *fpdf.Fpdf) {
	pdf.Ln(18)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(85, 6, "_________________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(0, 6, "_________________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(85, 6, "Delivered by", "", 0, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Received by", "", 1, "C", false, 0, "")
}
