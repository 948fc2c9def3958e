package summary

import (
	"io"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

// ConfirmationTemplate is the template rendered by Confirmation.
const ConfirmationTemplate = "confirmation"

var fieldLabels = map[string]string{
	fields.Title:           "Title",
	fields.Description:     "Description",
	fields.Category:        "Category",
	fields.Budget:          "Budget",
	fields.Timeline:        "Timeline",
	fields.CooperationType: "Cooperation",
}

// Label returns the display label of a field, falling back to its name.
func Label(name string) string {
	if label, ok := fieldLabels[name]; ok {
		return label
	}
	return name
}

// Row is one line of the confirmation summary.
type Row struct {
	Name  string
	Label string
	Value string
}

// Rows lists every known field in canonical order.
func Rows(values fields.Values) []Row {
	out := make([]Row, 0, len(fields.Names()))
	for _, name := range fields.Names() {
		out = append(out, Row{Name: name, Label: Label(name), Value: values.Get(name)})
	}
	return out
}

// Confirmation renders the review shown on the confirmation step. Empty fields
// are listed as not sent, matching what the submission payload omits.
func (e *Engine) Confirmation(title string, values fields.Values, out ...io.Writer) (string, error) {
	rows := Rows(values)
	ctxRows := make([]map[string]any, 0, len(rows))
	var omitted []string
	width := 0
	for _, row := range rows {
		ctxRows = append(ctxRows, map[string]any{
			"name":  row.Name,
			"label": row.Label + ":",
			"value": row.Value,
		})
		if row.Value == "" {
			omitted = append(omitted, row.Label)
		}
		if n := len(row.Label) + 1; n > width {
			width = n
		}
	}
	return e.RenderTemplate(ConfirmationTemplate, pongo2.Context{
		"step_title":  title,
		"rows":        ctxRows,
		"omitted":     omitted,
		"label_width": width,
	}, out...)
}
