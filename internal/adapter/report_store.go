package adapter

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "covmap.dev/pkg/covmap/internal/model"
)

// ResultsFileName is the file a run is saved to inside the output directory.
const ResultsFileName = "resolutions.yaml"

// ErrNoResults is returned by LoadRun when the output directory holds no saved run.
var ErrNoResults = errors.New("no saved resolutions")

// ReportStore persists import runs so they can be viewed later.
type ReportStore interface {
	SaveRun(dir m.Path, run m.Run) error
	LoadRun(dir m.Path) (m.Run, error)
}

type yamlReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore returns a ReportStore writing YAML through fs.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &yamlReportStore{fs: fs}
}

// SaveRun writes run to dir/resolutions.yaml, replacing any previous run.
func (s *yamlReportStore) SaveRun(dir m.Path, run m.Run) error {
	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("encode run: %w", err)
	}

	path := s.fs.JoinPath(string(dir), ResultsFileName)
	if err := s.fs.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// LoadRun reads the run saved in dir.
func (s *yamlReportStore) LoadRun(dir m.Path) (m.Run, error) {
	path := s.fs.JoinPath(string(dir), ResultsFileName)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Run{}, fmt.Errorf("%w in %s", ErrNoResults, dir)
		}

		return m.Run{}, fmt.Errorf("read %s: %w", path, err)
	}

	var run m.Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return m.Run{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return run, nil
}
