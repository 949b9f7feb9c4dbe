package xlsx

import (
	"context"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/socialpulse/follower-report-api/internal/domain"
)

// Workbook reads the same sheets from a local exported workbook, for runs
// without Google credentials. Sheet names stand in for named ranges.
type Workbook struct {
	path          string
	employeeSheet string
	totalsSheet   string
}

func New(path, employeeSheet, totalsSheet string) *Workbook {
	return &Workbook{
		path:          path,
		employeeSheet: employeeSheet,
		totalsSheet:   totalsSheet,
	}
}

func (w *Workbook) FetchEmployeeSheet(_ context.Context) (*domain.RawSheet, error) {
	return w.readSheet(w.employeeSheet)
}

func (w *Workbook) FetchTotalsSheet(_ context.Context) (*domain.RawSheet, error) {
	return w.readSheet(w.totalsSheet)
}

func (w *Workbook) readSheet(name string) (*domain.RawSheet, error) {
	file, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening workbook %q", w.path)
	}
	defer file.Close()

	rows, err := file.GetRows(name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %q", name)
	}

	if len(rows) == 0 {
		return &domain.RawSheet{}, nil
	}

	return &domain.RawSheet{Headers: rows[0], Rows: rows[1:]}, nil
}
