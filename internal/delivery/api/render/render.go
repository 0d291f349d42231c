// Package render serves the server-rendered public pages.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Template names.
const (
	TemplateStorefront = "storefront"
	TemplateNotFound   = "not_found"
	TemplateError      = "error"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse page templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Render writes the named template.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return errors.Wrapf(err, "render %s", name)
	}

	return nil
}

var funcs = template.FuncMap{
	"price":    formatPrice,
	"whatsapp": whatsAppLink,
	"heading":  heading,
}

func formatPrice(p *decimal.Decimal) string {
	if p == nil {
		return ""
	}

	return p.StringFixed(2)
}

// heading renders a section title at level, clamped to h2..h6.
func heading(level int, text string) template.HTML {
	level = max(2, min(level, maxHeadingLevel))

	//nolint:gosec // text is escaped before it is marked safe
	return template.HTML(fmt.Sprintf("<h%d>%s</h%d>", level, template.HTMLEscapeString(text), level))
}

// whatsAppLink builds a click-to-chat link for a catalog number with a prefilled message.
func whatsAppLink(number, catalogName string) string {
	number = strings.TrimPrefix(number, "+")
	if number == "" {
		return ""
	}

	return "https://wa.me/" + number + "?text=" + url.QueryEscape("مرحباً، أود الطلب من "+catalogName)
}
