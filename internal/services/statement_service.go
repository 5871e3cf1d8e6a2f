package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/url"
	"strings"

	"bunk-backend/internal/models"

	"github.com/jung-kurt/gofpdf/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// StatementService renders a saved daily report as shareable
// statements: plain text, a WhatsApp link carrying that text, a PDF
// and a PNG. All four render the same figures.
type StatementService struct {
	outletName string
}

func NewStatementService(outletName string) *StatementService {
	return &StatementService{outletName: outletName}
}

// Text renders the statement as plain text, money to 2 decimals and
// liters to 3.
func (s *StatementService) Text(r *models.DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s*\n", s.outletName)
	fmt.Fprintf(&b, "Daily Report - %s\n", r.Date)
	if r.EmployeeName != "" {
		fmt.Fprintf(&b, "Employee: %s\n", r.EmployeeName)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "PETROL\n")
	fmt.Fprintf(&b, "  Open %.3f | Close %.3f | Test %.3f\n", r.POpen, r.PClose, r.PTest)
	fmt.Fprintf(&b, "  Sold %.3f L @ %.2f = %.2f\n", r.PetrolLitersSold, r.PRate, r.PetrolAmount)

	fmt.Fprintf(&b, "DIESEL\n")
	fmt.Fprintf(&b, "  Open %.3f | Close %.3f | Test %.3f\n", r.DOpen, r.DClose, r.DTest)
	fmt.Fprintf(&b, "  Sold %.3f L @ %.2f = %.2f\n", r.DieselLitersSold, r.DRate, r.DieselAmount)

	if r.OilPackets > 0 {
		fmt.Fprintf(&b, "2T OIL: %d x %.2f = %.2f\n", r.OilPackets, r.OilPrice, r.OilAmount)
	}

	fmt.Fprintf(&b, "\nTOTAL SALES: %.2f\n\n", r.TotalSales)

	fmt.Fprintf(&b, "QR/UPI: %.2f\n", r.QRAmount)
	fmt.Fprintf(&b, "Advance paid: %.2f\n", r.AdvancePaid)
	fmt.Fprintf(&b, "Owner PhonePe: %.2f\n", r.OwnerPhonePayAmount)

	fmt.Fprintf(&b, "Credit given: %.2f\n", r.CustomerCreditTotal)
	writeItems(&b, r.Details.CustomerCreditRows)
	fmt.Fprintf(&b, "Collections: %.2f\n", r.DebtCollectionsTotal)
	writeItems(&b, r.Details.DebtCollectionRows)
	fmt.Fprintf(&b, "Expenses: %.2f\n", r.OtherExpensesTotal)
	writeItems(&b, r.Details.OtherExpenseRows)

	fmt.Fprintf(&b, "Yesterday balance: %.2f\n", r.YesterdayBalanceAmount)
	fmt.Fprintf(&b, "\n*CASH TO DEPOSIT: %.2f*\n", r.CashToDeposit)

	if r.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", r.Notes)
	}

	return b.String()
}

func writeItems(b *strings.Builder, items []models.LineItem) {
	for _, it := range items {
		fmt.Fprintf(b, "  - %s: %.2f\n", it.Name, it.Amount)
	}
}

// WhatsAppURL wraps the text statement in a wa.me share link.
func (s *StatementService) WhatsAppURL(r *models.DailyReport) string {
	return "https://wa.me/?text=" + url.QueryEscape(s.Text(r))
}

// ReceiptText renders a short confirmation for one ledger transaction.
func (s *StatementService) ReceiptText(e *models.LedgerLogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", s.outletName)
	fmt.Fprintf(&b, "%s receipt - %s\n\n", e.Type, e.EntryDate)
	fmt.Fprintf(&b, "Customer: %s\n", e.Customer)
	fmt.Fprintf(&b, "Amount: %.2f\n", e.Amount)
	fmt.Fprintf(&b, "Outstanding: %.2f -> %.2f\n", e.BalanceBefore, e.BalanceAfter)
	if e.Employee != "" {
		fmt.Fprintf(&b, "Entered by: %s\n", e.Employee)
	}
	if e.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", e.Notes)
	}
	return b.String()
}

// ReceiptWhatsAppURL wraps the receipt in a wa.me share link.
func (s *StatementService) ReceiptWhatsAppURL(e *models.LedgerLogEntry) string {
	return "https://wa.me/?text=" + url.QueryEscape(s.ReceiptText(e))
}

// PDF renders the statement as an A4 PDF.
func (s *StatementService) PDF(r *models.DailyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, s.outletName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Daily Report - %s", r.Date), "", 1, "C", false, 0, "")
	if r.EmployeeName != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Employee: %s", r.EmployeeName), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
	}
	row := func(label, value string) {
		pdf.CellFormat(110, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, value, "", 1, "R", false, 0, "")
	}

	section("Petrol")
	row("Open / Close / Test", fmt.Sprintf("%.3f / %.3f / %.3f", r.POpen, r.PClose, r.PTest))
	row(fmt.Sprintf("Sold %.3f L @ %.2f", r.PetrolLitersSold, r.PRate), fmt.Sprintf("%.2f", r.PetrolAmount))

	section("Diesel")
	row("Open / Close / Test", fmt.Sprintf("%.3f / %.3f / %.3f", r.DOpen, r.DClose, r.DTest))
	row(fmt.Sprintf("Sold %.3f L @ %.2f", r.DieselLitersSold, r.DRate), fmt.Sprintf("%.2f", r.DieselAmount))

	if r.OilPackets > 0 {
		section("2T Oil")
		row(fmt.Sprintf("%d packets @ %.2f", r.OilPackets, r.OilPrice), fmt.Sprintf("%.2f", r.OilAmount))
	}

	section("Collections & Deductions")
	row("QR/UPI", fmt.Sprintf("%.2f", r.QRAmount))
	row("Advance paid", fmt.Sprintf("%.2f", r.AdvancePaid))
	row("Owner PhonePe", fmt.Sprintf("%.2f", r.OwnerPhonePayAmount))
	row("Credit given", fmt.Sprintf("%.2f", r.CustomerCreditTotal))
	for _, it := range r.Details.CustomerCreditRows {
		row("    "+it.Name, fmt.Sprintf("%.2f", it.Amount))
	}
	row("Collections", fmt.Sprintf("%.2f", r.DebtCollectionsTotal))
	for _, it := range r.Details.DebtCollectionRows {
		row("    "+it.Name, fmt.Sprintf("%.2f", it.Amount))
	}
	row("Expenses", fmt.Sprintf("%.2f", r.OtherExpensesTotal))
	for _, it := range r.Details.OtherExpenseRows {
		row("    "+it.Name, fmt.Sprintf("%.2f", it.Amount))
	}
	row("Yesterday balance", fmt.Sprintf("%.2f", r.YesterdayBalanceAmount))

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	row("TOTAL SALES", fmt.Sprintf("%.2f", r.TotalSales))
	row("CASH TO DEPOSIT", fmt.Sprintf("%.2f", r.CashToDeposit))

	if r.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 5, "Notes: "+r.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// PNG renders the text statement into a raster image, for chat apps
// that preview images but not PDFs.
func (s *StatementService) PNG(r *models.DailyReport) ([]byte, error) {
	lines := strings.Split(strings.TrimRight(s.Text(r), "\n"), "\n")

	face := basicfont.Face7x13
	const lineHeight = 16
	const margin = 12

	width := 0
	for _, line := range lines {
		if w := len(line) * face.Advance; w > width {
			width = w
		}
	}
	width += 2 * margin
	height := len(lines)*lineHeight + 2*margin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(margin, margin+(i+1)*lineHeight-4)
		drawer.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to render statement png: %w", err)
	}
	return buf.Bytes(), nil
}
