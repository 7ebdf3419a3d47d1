package receipt

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"zassprint/internal/model"
)

// A4 geometry in points, matching the static template page. All coordinates
// below are template-specific constants measured from the bottom-left corner
// of the page, the way the template was originally mapped out.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	fontSize   = 12
)

// Renderer overlays computed receipt figures onto the static template PDF.
type Renderer struct {
	templatePath string
}

func NewRenderer(templatePath string) (*Renderer, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("receipt template: %w", err)
	}
	return &Renderer{templatePath: templatePath}, nil
}

// Render produces the receipt PDF for an order: page 1 of the template with
// the order details and price breakdown written at fixed positions.
func (r *Renderer) Render(o *model.ThesisOrder, prices model.PriceList) (out []byte, err error) {
	// gofpdi panics on an unreadable template instead of returning an error.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("import receipt template: %v", p)
		}
	}()

	b := Calculate(o, prices)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	tpl := gofpdi.ImportPage(pdf, r.templatePath, 1, "/MediaBox")
	gofpdi.UseImportedTemplate(pdf, tpl, 0, 0, pageWidth, pageHeight)

	pdf.SetFont("Helvetica", "", fontSize)

	half := pageHeight / 2

	// put writes text with y measured from the bottom of the page.
	put := func(x, yFromBottom float64, text string) {
		pdf.Text(x, pageHeight-yFromBottom, text)
	}

	put(98, half+319, o.CreatedAt.Format("02/01/2006"))
	put(pageWidth-193, half+319, o.OrderNo)
	put(105, half+246, o.Name)
	put(pageWidth-185, half+245, o.PhoneNumber)

	copies := strconv.Itoa(o.Copies)

	// color printing
	put(276, half+158, copies)
	put(330, half+158, strconv.Itoa(o.ColorPages))
	put(pageWidth-183, half+158, Money(b.ColorUnit))
	put(pageWidth-93, half+158, Money(b.ColorTotal))

	// black & white printing
	put(276, half+138, copies)
	put(327, half+138, strconv.Itoa(o.BlackWhitePages))
	put(pageWidth-183, half+138, Money(b.BlackWhiteUnit))
	put(pageWidth-93, half+138, Money(b.BlackWhiteTotal))

	// hard/soft cover binding
	put(276, half+118, copies)
	put(pageWidth-185, half+118, Money(b.CoverUnit))
	put(pageWidth-93, half+118, Money(b.CoverTotal))

	// cd burn & label
	if o.CDCopies != nil && *o.CDCopies > 0 {
		put(276, half+78, strconv.Itoa(*o.CDCopies))
		put(pageWidth-185, half+78, Money(b.LabelUnit))
		put(pageWidth-89, half+78, Money(b.LabelTotal))
	}

	// delivery
	if o.CollectionMethod == collectionDelivery {
		put(pageWidth-185, half+53, Money(b.ShippingTotal))
		put(pageWidth-89, half+53, Money(b.ShippingTotal))
	}

	put(pageWidth-93, 337, Money(b.GrandTotal))
	put(pageWidth-93, 314, Money(b.Deposit))
	put(pageWidth-93, 293, Money(b.Balance))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
