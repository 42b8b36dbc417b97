package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/css-society/events-api/internal/logger"
)

// Certificate page geometry in points, A4 landscape.
const (
	pageWidth  = 842.0
	pageHeight = 595.0
)

// placement is a fixed text anchor on the certificate page.
type placement struct {
	x, y    float64
	size    float64
	style   string
	r, g, b int
}

// The coordinates are tuned against the bundled certificate template and
// never derived from text metrics. Re-tune them if the template changes.
var (
	namePlacement  = placement{x: 330, y: 220, size: 24, style: "B"}
	eventPlacement = placement{x: 430, y: 320, size: 18, r: 51, g: 51, b: 51}
)

// CertificateRenderer draws participation certificates over an optional
// background template image.
type CertificateRenderer struct {
	templatePath string
}

// NewCertificateRenderer creates a renderer. templatePath may be empty or
// point to a missing file; the certificate is then drawn on a blank page.
func NewCertificateRenderer(templatePath string) *CertificateRenderer {
	return &CertificateRenderer{templatePath: templatePath}
}

// Render writes a single-page certificate PDF for the given recipient name
// and event title to w.
func (r *CertificateRenderer) Render(w io.Writer, name, event string) error {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetCompression(false)
	doc.AddPage()

	if r.templatePath != "" {
		if _, err := os.Stat(r.templatePath); err == nil {
			doc.ImageOptions(r.templatePath, 0, 0, pageWidth, pageHeight, false,
				gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
		} else {
			logger.Log.Warnw("certificate template not found, rendering blank page", "path", r.templatePath)
		}
	}

	drawText(doc, namePlacement, name)
	drawText(doc, eventPlacement, event)

	if err := doc.Error(); err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}
	return doc.Output(w)
}

func drawText(doc *gofpdf.Fpdf, p placement, text string) {
	doc.SetFont("Helvetica", p.style, p.size)
	doc.SetTextColor(p.r, p.g, p.b)
	doc.Text(p.x, p.y, text)
}

// Filename returns the download filename for a recipient.
func Filename(name string) string {
	return fmt.Sprintf("%s-certificate.pdf", name)
}
