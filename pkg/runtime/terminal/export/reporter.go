package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const reportTemplate = `# {{.Title}}

{{row .LabelHeader .ValueHeader}}
{{separator .LabelHeader .ValueHeader}}
{{range .Entries}}{{row .Label (value .Value)}}
{{end}}
**Highest growth:** {{.Best.Label}} ({{rate .Best.Rate}})
`

// Reporter renders a growth report as markdown.
type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}

	funcMap := template.FuncMap{
		"row": func(label, value string) string {
			return fmt.Sprintf("| %s | %s |", escapeCell(label), escapeCell(value))
		},
		"separator": func(label, value string) string {
			return fmt.Sprintf("|%s|%s|",
				strings.Repeat("-", len(label)+2),
				strings.Repeat("-", len(value)+2))
		},
		"value": FormatValue,
		"rate":  FormatRate,
	}

	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate)),
	}
}

func (c *Reporter) Handle(report *domain.GrowthReport) error {
	if report == nil {
		return fmt.Errorf("nil report")
	}
	if err := c.tmpl.Execute(c.writer, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// escapeCell keeps a pipe inside a label from splitting the table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// FormatValue renders a value in its shortest exact decimal form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRate renders a rate with one decimal place, or n/a when absent.
func FormatRate(r domain.GrowthRate) string {
	return r.String()
}
