// Package formatter renders human-readable reports of generated holiday files.
package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"holidaygen/internal/models"
)

// MaxNameWidth caps the holiday name column.
const MaxNameWidth = 48

var summaryHeader = []string{"Holiday", "Dates", "First", "Last"}

// SummaryTable renders one row per holiday with its occurrence count and
// first and last dates. Columns are padded by display width so names in
// wide scripts stay aligned.
func SummaryTable(file *models.CountryHolidayFile) string {
	rows := [][]string{summaryHeader}

	for _, h := range file.Holidays {
		first, last := "-", "-"
		if len(h.Dates) > 0 {
			first = h.Dates[0].UTC().Format(time.DateOnly)
			last = h.Dates[len(h.Dates)-1].UTC().Format(time.DateOnly)
		}

		rows = append(rows, []string{
			runewidth.Truncate(h.Name, MaxNameWidth, "..."),
			fmt.Sprintf("%d", len(h.Dates)),
			first,
			last,
		})
	}

	return strings.Join(renderTable(rows), "\n") + "\n"
}

// renderTable lays out rows as a markdown-style table. The first row is the
// header and is followed by a separator.
func renderTable(rows [][]string) []string {
	colWidths := make([]int, len(summaryHeader))

	for _, row := range rows {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if width := runewidth.StringWidth(row[i]); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure min width for separator (usually 3 dashes "---")
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	result := make([]string, 0, len(rows)+1)

	for i, row := range rows {
		result = append(result, renderRow(row, colWidths))

		if i == 0 {
			sep := make([]string, len(colWidths))
			for j, w := range colWidths {
				sep[j] = strings.Repeat("-", w)
			}

			result = append(result, renderRow(sep, colWidths))
		}
	}

	return result
}

func renderRow(cells []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(cells) {
			content = cells[j]
		}

		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(content, width))
		sb.WriteString(" |")
	}

	return sb.String()
}
