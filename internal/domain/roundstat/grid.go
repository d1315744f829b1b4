package roundstat

import "strings"

// FromGrid turns a header row followed by value rows into raw records.
// Short rows are padded with empty cells and rows with no content are skipped.
func FromGrid(values [][]any) []RawRecord {
	if len(values) == 0 {
		return []RawRecord{}
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = strings.TrimSpace(ToText(cell))
	}

	out := make([]RawRecord, 0, len(values)-1)
	for _, row := range values[1:] {
		if isBlankRow(row) {
			continue
		}
		rec := make(RawRecord, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				rec[key] = row[i]
			} else {
				rec[key] = ""
			}
		}
		out = append(out, rec)
	}

	return out
}

func isBlankRow(row []any) bool {
	for _, cell := range row {
		if strings.TrimSpace(ToText(cell)) != "" {
			return false
		}
	}
	return true
}
