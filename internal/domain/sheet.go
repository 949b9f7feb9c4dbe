package domain

// RawSheet is the raw result of one named-range fetch: a header row plus data
// rows. Rows may be shorter than the header row; missing cells are empty.
type RawSheet struct {
	Headers []string
	Rows    [][]string
}

// Records converts the data rows into header-keyed records. Cells beyond the
// header width are ignored, missing cells default to the empty string.
func (s *RawSheet) Records() []map[string]string {
	records := make([]map[string]string, 0, len(s.Rows))

	for _, row := range s.Rows {
		record := make(map[string]string, len(s.Headers))
		for i, header := range s.Headers {
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records
}

// AllRows returns the header row followed by the data rows. The business-line
// totals sheet has no meaningful header row, so it is scanned whole.
func (s *RawSheet) AllRows() [][]string {
	rows := make([][]string, 0, len(s.Rows)+1)
	if len(s.Headers) > 0 {
		rows = append(rows, s.Headers)
	}
	return append(rows, s.Rows...)
}

// DateColumn is a time-series column whose header resolved to a calendar day.
type DateColumn struct {
	Header string
	Date   string // ISO day, e.g. "2025-03-01"
}
