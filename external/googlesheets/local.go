package googlesheets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/music-league/internal/platform/metrics"
	"github.com/riskibarqy/music-league/internal/usecase"
)

// LocalSource reads {dir}/{tab}.csv files, for offline development and
// fixtures. The sheet id is ignored.
type LocalSource struct {
	tabRepository

	dir string
}

func NewLocalSource(dir string, recorder *metrics.Recorder) *LocalSource {
	s := &LocalSource{dir: dir}
	s.tabRepository = tabRepository{source: "local", fetcher: s, metrics: recorder}
	return s
}

func (s *LocalSource) fetchTab(ctx context.Context, _ string, tab string) (table, error) {
	if err := ctx.Err(); err != nil {
		return table{}, err
	}

	path := filepath.Join(s.dir, tab+".csv")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table{}, fmt.Errorf("%w: local tab file %s", usecase.ErrNotFound, path)
		}
		return table{}, crerr.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	return readCSV(tab, file)
}
