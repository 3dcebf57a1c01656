package modelstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// FSStore persists artifacts as JSON files in a single directory, one file
// per task.  Writes go to a temp file in the same directory followed by an
// atomic rename, so readers and the fsnotify watcher never observe a partial
// artifact.
type FSStore struct {
	dir    string
	logger logging.Logger
}

// NewFSStore creates the directory if needed and returns a store over it.
func NewFSStore(dir string, logger logging.Logger) (*FSStore, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to create artifact directory")
	}
	return &FSStore{dir: dir, logger: logger.Named("fsstore")}, nil
}

// Dir returns the directory the store reads and writes.
func (s *FSStore) Dir() string { return s.dir }

func (s *FSStore) path(task string) string {
	return filepath.Join(s.dir, task+".model.json")
}

// Put implements Store.
func (s *FSStore) Put(_ context.Context, a *Artifact) error {
	if a.Task == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "artifact task is empty")
	}
	if a.Version == "" {
		a.Version = uuid.NewString()
	}
	a.Seal()

	// The envelope must be written compact: indentation would reformat the
	// raw payload bytes and break the checksum sealed above.
	data, err := json.Marshal(a)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSerialization, "failed to encode artifact")
	}

	tmp, err := os.CreateTemp(s.dir, "."+a.Task+".tmp-*")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to create temp artifact file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to write artifact")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to close artifact file")
	}
	if err := os.Rename(tmpName, s.path(a.Task)); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to publish artifact")
	}

	s.logger.Info("artifact stored",
		logging.String("task", a.Task),
		logging.String("version", a.Version),
		logging.Float64("accuracy", a.Accuracy))
	return nil
}

// Get implements Store.
func (s *FSStore) Get(_ context.Context, task string) (*Artifact, error) {
	data, err := os.ReadFile(s.path(task))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.ErrCodeArtifactNotFound, "no artifact for task").WithDetail("task=" + task)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to read artifact")
	}

	a := &Artifact{}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactCorrupt, "artifact is not valid JSON")
	}
	if !a.VerifyChecksum() {
		return nil, apperrors.New(apperrors.ErrCodeArtifactCorrupt, "artifact checksum mismatch").WithDetail("task=" + task)
	}
	return a, nil
}

// List implements Store.
func (s *FSStore) List(ctx context.Context) ([]*Artifact, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to list artifact directory")
	}
	var out []*Artifact
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".model.json") || strings.HasPrefix(name, ".") {
			continue
		}
		task := strings.TrimSuffix(name, ".model.json")
		a, err := s.Get(ctx, task)
		if err != nil {
			s.logger.Warn("skipping unreadable artifact", logging.String("task", task), logging.Err(err))
			continue
		}
		a.Payload = nil
		out = append(out, a)
	}
	return out, nil
}

var _ Store = (*FSStore)(nil)
