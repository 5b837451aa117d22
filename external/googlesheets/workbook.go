package googlesheets

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/music-league/internal/platform/metrics"
	"github.com/riskibarqy/music-league/internal/usecase"
)

// WorkbookSource reads an .xlsx download of a league sheet, one worksheet
// per tab. The file is reopened on every fetch so a replaced export is picked
// up without a restart.
type WorkbookSource struct {
	tabRepository

	path string
}

func NewWorkbookSource(path string, recorder *metrics.Recorder) *WorkbookSource {
	s := &WorkbookSource{path: path}
	s.tabRepository = tabRepository{source: "xlsx", fetcher: s, metrics: recorder}
	return s
}

func (s *WorkbookSource) fetchTab(ctx context.Context, _ string, tab string) (table, error) {
	if err := ctx.Err(); err != nil {
		return table{}, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return table{}, crerr.Wrapf(err, "open workbook %s", s.path)
	}
	defer f.Close()

	sheetName, ok := findWorksheet(f.GetSheetList(), tab)
	if !ok {
		return table{}, fmt.Errorf("%w: worksheet %q in %s", usecase.ErrNotFound, tab, s.path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return table{}, crerr.Wrapf(err, "read worksheet %q", sheetName)
	}
	return newTable(tab, rows), nil
}

func findWorksheet(names []string, tab string) (string, bool) {
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), tab) {
			return name, true
		}
	}
	return "", false
}
