package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/promptgallery/backend/internal/models"
	qrcode "github.com/skip2/go-qrcode"
)

// ShareService exports an image as a printable handout: an A4 PDF carrying a
// QR code that points at the generated image URL.
type ShareService struct{}

func NewShareService() *ShareService { return &ShareService{} }

// GenerateImageQRPDF renders the share PDF for one image
func (s *ShareService) GenerateImageQRPDF(image *models.Image) ([]byte, error) {
	// Create QR PNG in memory
	var qrBuf bytes.Buffer
	png, err := qrcode.Encode(image.ImageURL, qrcode.Medium, 512)
	if err != nil {
		return nil, err
	}
	qrBuf.Write(png)

	// Create PDF
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "AI Image Gallery")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Prompt: %s\nURL: %s", image.Prompt, image.ImageURL), "", "L", false)

	// Register image from reader
	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("qr", opt, bytes.NewReader(qrBuf.Bytes()))

	// Center QR on the page
	x := (210.0 - 100.0) / 2.0 // A4 width 210mm, QR size 100mm
	y := pdf.GetY() + 10
	pdf.ImageOptions("qr", x, y, 100, 100, false, opt, 0, "")

	// Output to buffer
	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
