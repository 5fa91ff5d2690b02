package output

import (
	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/logging"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Column is one table column. Cells maps a row index to its text; rows
// missing from the map are blank.
type Column struct {
	Title string
	Cells map[int]string
}

// Table is a titled set of columns laid out in order
type Table struct {
	Title   string
	Columns []Column
	// ShowLines draws a separator between every row
	ShowLines bool
	// ForceASCII avoids box drawing characters
	ForceASCII bool
	// NumRows fixes the row count; 0 derives it from the highest cell index
	NumRows int
}

type separators struct {
	column string
	header string
	row    string
}

var (
	boxSeparators   = separators{column: " │ ", header: "─", row: "─"}
	asciiSeparators = separators{column: " | ", header: "=", row: "-"}
)

// layout drops columns without cells and rows without any text. It returns
// no headers when nothing is left to show.
func (t Table) layout() ([]string, [][]string) {
	var columns []Column
	for _, c := range t.Columns {
		if len(c.Cells) > 0 {
			columns = append(columns, c)
		}
	}
	if len(columns) == 0 {
		return nil, nil
	}

	rows := t.NumRows
	if rows <= 0 {
		for _, c := range columns {
			for idx := range c.Cells {
				if idx+1 > rows {
					rows = idx + 1
				}
			}
		}
	}

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Title
	}

	var data [][]string
	for i := 0; i < rows; i++ {
		row := make([]string, len(columns))
		blank := true
		for j, c := range columns {
			row[j] = c.Cells[i]
			if row[j] != "" {
				blank = false
			}
		}
		if !blank {
			data = append(data, row)
		}
	}
	return headers, data
}

// renderTable returns the laid out table, or false when there is nothing
// to show
func renderTable(t Table, color bool) (string, bool, error) {
	headers, rows := t.layout()
	if headers == nil {
		return "", false, nil
	}

	sep := boxSeparators
	if t.ForceASCII {
		sep = asciiSeparators
	}

	plain := pterm.NewStyle()
	cells := plain
	if color {
		cells = pterm.NewStyle(pterm.Bold)
	}

	printer := pterm.DefaultTable.
		WithHasHeader().
		WithData(append(pterm.TableData{headers}, rows...)).
		WithStyle(cells).
		WithHeaderStyle(cells).
		WithSeparator(sep.column).
		WithSeparatorStyle(plain).
		WithHeaderRowSeparator(sep.header).
		WithHeaderRowSeparatorStyle(plain)
	if t.ShowLines {
		printer = printer.WithRowSeparator(sep.row).WithRowSeparatorStyle(plain)
	}

	body, err := printer.Srender()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrRender, "failed to render table").
			WithDetail("title", t.Title)
	}

	if t.Title != "" {
		body = t.Title + "\n" + body
	}
	return body, true, nil
}

// renderMarkdown formats markdown for the terminal, falling back to the
// source text when glamour cannot handle it
func renderMarkdown(markdown string, width int, color bool) string {
	log := logging.GetLogger("output.markdown")

	var options []glamour.TermRendererOption
	if color {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		log.Warn().Err(err).Msg("Markdown renderer unavailable, printing source")
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		log.Warn().Err(err).Msg("Markdown rendering failed, printing source")
		return markdown
	}
	return rendered
}
