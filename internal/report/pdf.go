package report

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/ytget/customer-list/internal/config"
	"github.com/ytget/customer-list/internal/model"
)

// ErrFontRequired is returned when the report contains text the core font
// cannot print and no UTF-8 font is available
var ErrFontRequired = errors.New("a UTF-8 font is required")

// DefaultFallbackFonts are TrueType fonts with Hangul coverage that are tried,
// in order, when no font is configured and the text needs one
var DefaultFallbackFonts = []string{
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
	"/usr/share/fonts/nanum/NanumGothic.ttf",
	"/usr/share/fonts/truetype/unfonts-core/UnDotum.ttf",
	"/Library/Fonts/NanumGothic.ttf",
	"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
	`C:\Windows\Fonts\malgun.ttf`,
}

// Page layout in millimetres
const (
	colIndexWidth   = 15.0
	colNameWidth    = 80.0
	colCompanyWidth = 95.0
	rowHeight       = 8.0
	titleFontSize   = 14
	bodyFontSize    = 10
)

const (
	coreFont   = "Helvetica"
	customFont = "customer-font"
)

// Labels are the texts printed in the report
type Labels struct {
	Title     string
	Name      string
	Company   string
	NoResults string
}

// DefaultLabels returns English labels
func DefaultLabels() Labels {
	return Labels{
		Title:     "Customer List",
		Name:      "Name",
		Company:   "Company",
		NoResults: "No customers found",
	}
}

// PDFExporter writes a customer table as an A4 PDF
type PDFExporter struct {
	labels        Labels
	fontPath      string
	fallbackFonts []string
	compress      bool
	now           func() time.Time
}

// NewPDFExporter creates an exporter. fontPath is an optional UTF-8 TrueType
// font. Without it, text that fits Windows-1252 uses the core Helvetica font;
// anything else needs one of DefaultFallbackFonts to be installed.
func NewPDFExporter(labels Labels, fontPath string) *PDFExporter {
	return &PDFExporter{
		labels:        labels,
		fontPath:      fontPath,
		fallbackFonts: DefaultFallbackFonts,
		compress:      true,
		now:           time.Now,
	}
}

// Export renders customers in the order given and writes the document to w.
// Nothing is written when the text needs a font that cannot be found.
func (e *PDFExporter) Export(w io.Writer, customers iter.Seq[model.Customer]) error {
	list := slices.Collect(customers)

	fontPath, err := e.resolveFont(list)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetTitle(e.labels.Title, true)
	pdf.SetCreator("customer-list", true)

	family, tr := coreFont, pdf.UnicodeTranslatorFromDescriptor("")
	if fontPath != "" {
		pdf.AddUTF8Font(customFont, "", fontPath)
		family, tr = customFont, func(s string) string { return s }
	}
	if pdf.Err() {
		return fmt.Errorf("failed to load font %s: %w", fontPath, pdf.Error())
	}

	pdf.AddPage()

	pdf.SetFont(family, "", titleFontSize)
	pdf.Cell(0, 10, tr(e.labels.Title))
	pdf.Ln(10)
	pdf.SetFont(family, "", bodyFontSize)
	pdf.Cell(0, 6, e.now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	// Header
	pdf.SetFillColor(242, 242, 242)
	pdf.CellFormat(colIndexWidth, rowHeight, "#", "B", 0, "C", true, 0, "")
	pdf.CellFormat(colNameWidth, rowHeight, tr(e.labels.Name), "B", 0, "L", true, 0, "")
	pdf.CellFormat(colCompanyWidth, rowHeight, tr(e.labels.Company), "B", 1, "L", true, 0, "")

	count := 0
	for _, c := range list {
		count++
		pdf.CellFormat(colIndexWidth, rowHeight, strconv.Itoa(count), "B", 0, "C", false, 0, "")
		pdf.CellFormat(colNameWidth, rowHeight, tr(c.Name), "B", 0, "L", false, 0, "")
		pdf.CellFormat(colCompanyWidth, rowHeight, tr(c.Company), "B", 1, "L", false, 0, "")
	}
	if count == 0 {
		pdf.CellFormat(colIndexWidth+colNameWidth+colCompanyWidth, rowHeight, tr(e.labels.NoResults), "", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// resolveFont returns the UTF-8 font to embed, or "" for the core font
func (e *PDFExporter) resolveFont(customers []model.Customer) (string, error) {
	if e.fontPath != "" {
		return e.fontPath, nil
	}

	texts := []string{e.labels.Title, e.labels.Name, e.labels.Company, e.labels.NoResults}
	for _, c := range customers {
		texts = append(texts, c.Name, c.Company)
	}

	bad, ok := firstUnencodable(texts)
	if !ok {
		return "", nil
	}

	for _, path := range e.fallbackFonts {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q cannot be printed with the built-in font, set %s to a TrueType font that covers it",
		ErrFontRequired, bad, config.EnvPDFFont)
}

// firstUnencodable returns the first text the core font encoding cannot hold
func firstUnencodable(texts []string) (string, bool) {
	enc := charmap.Windows1252.NewEncoder()
	for _, text := range texts {
		if _, err := enc.String(text); err != nil {
			return text, true
		}
	}
	return "", false
}
