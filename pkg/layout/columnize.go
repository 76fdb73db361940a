package layout

import "strings"

// gutter is the spacing between columns and the leading indent, in cells.
const gutter = 2

// Columnize packs labels into a column grid no wider than width cells.
//
// Columns are filled top to bottom, left to right, preserving the order
// of labels. The column count is grown greedily: starting from a single
// vertical list, one more column is attempted until the layout would
// overflow width or the first column is down to a single label. Each
// cell is right-padded to its column's widest printable label; rows are
// emitted with a two-space indent and two spaces between columns, one
// row per line, with a trailing newline.
//
// A non-positive width keeps the single-column layout rather than
// attempting any packing.
func Columnize(labels []string, width int) string {
	if len(labels) == 0 {
		return ""
	}

	columns := [][]string{labels}
	if width > 0 {
		for count := 2; len(columns[0]) > 1; count++ {
			candidate := splitColumns(labels, count)
			if gridWidth(candidate) > width {
				break
			}
			columns = candidate
		}
	}

	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = columnWidth(column)
	}

	var sb strings.Builder
	for row := 0; row < len(columns[0]); row++ {
		sb.WriteString(strings.Repeat(" ", gutter))
		for i, column := range columns {
			if row >= len(column) {
				break
			}
			if i > 0 {
				sb.WriteString(strings.Repeat(" ", gutter))
			}
			sb.WriteString(pad(column[row], widths[i]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// splitColumns chunks labels into at most count contiguous columns of
// ceil(len/count) labels each. Fewer columns come back when the chunk
// height already exhausts the labels.
func splitColumns(labels []string, count int) [][]string {
	height := (len(labels) + count - 1) / count
	columns := make([][]string, 0, count)
	for start := 0; start < len(labels); start += height {
		end := start + height
		if end > len(labels) {
			end = len(labels)
		}
		columns = append(columns, labels[start:end])
	}
	return columns
}

// gridWidth is the rendered width of a candidate layout: every column
// contributes its widest printable label plus one gutter.
func gridWidth(columns [][]string) int {
	total := 0
	for _, column := range columns {
		total += columnWidth(column) + gutter
	}
	return total
}

// columnWidth is the widest printable label in the column.
func columnWidth(column []string) int {
	widest := 0
	for _, label := range column {
		if w := DisplayWidth(label); w > widest {
			widest = w
		}
	}
	return widest
}
