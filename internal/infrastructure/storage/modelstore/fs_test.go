package modelstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

func newTestStore(t *testing.T) *FSStore {
	t.Helper()
	s, err := NewFSStore(t.TempDir(), logging.NewNopLogger())
	require.NoError(t, err)
	return s
}

func testArtifact(task string) *Artifact {
	return &Artifact{
		Task:      task,
		CreatedAt: time.Now().UTC(),
		Labels:    []string{"low", "medium", "high"},
		Accuracy:  0.87,
		Examples:  120,
		Payload:   json.RawMessage(`{"weights":[0.1,0.2,0.3]}`),
	}
}

func TestFSStorePutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := testArtifact(TaskClauseRisk)
	require.NoError(t, s.Put(ctx, in))
	assert.NotEmpty(t, in.Version, "Put should assign a version")
	assert.NotEmpty(t, in.Checksum, "Put should seal the payload")

	out, err := s.Get(ctx, TaskClauseRisk)
	require.NoError(t, err)
	assert.Equal(t, in.Version, out.Version)
	assert.Equal(t, in.Labels, out.Labels)
	assert.InDelta(t, 0.87, out.Accuracy, 1e-9)
	assert.JSONEq(t, `{"weights":[0.1,0.2,0.3]}`, string(out.Payload))
}

func TestFSStorePreservesPayloadBytes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A deeply nested payload is sensitive to any reformatting on write;
	// the bytes on disk must hash to the sealed checksum.
	in := testArtifact(TaskDocType)
	in.Payload = json.RawMessage(`{"vectorizer":{"vocabulary":{"fee":0,"party":1},"idf":[1.2,0.8]},"weights":[[0.1,-0.2],[0.3,0.4]]}`)
	require.NoError(t, s.Put(ctx, in))

	data, err := os.ReadFile(filepath.Join(s.Dir(), TaskDocType+".model.json"))
	require.NoError(t, err)
	var onDisk Artifact
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, in.Checksum, ChecksumOf(onDisk.Payload))

	out, err := s.Get(ctx, TaskDocType)
	require.NoError(t, err)
	assert.True(t, out.VerifyChecksum())
}

func TestFSStoreGetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), TaskDocType)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeArtifactNotFound))
}

func TestFSStoreGetCorrupt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testArtifact(TaskClauseType)
	require.NoError(t, s.Put(ctx, a))

	// Tamper with the payload without updating the checksum.
	path := filepath.Join(s.Dir(), TaskClauseType+".model.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["payload"] = json.RawMessage(`{"weights":[9]}`)
	tampered, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, tampered, 0o644))

	_, err = s.Get(ctx, TaskClauseType)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeArtifactCorrupt))
}

func TestFSStorePutReplacesPrevious(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := testArtifact(TaskDocType)
	require.NoError(t, s.Put(ctx, first))

	second := testArtifact(TaskDocType)
	second.Payload = json.RawMessage(`{"weights":[1]}`)
	require.NoError(t, s.Put(ctx, second))

	out, err := s.Get(ctx, TaskDocType)
	require.NoError(t, err)
	assert.Equal(t, second.Version, out.Version)
	assert.JSONEq(t, `{"weights":[1]}`, string(out.Payload))
}

func TestFSStoreList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testArtifact(TaskDocType)))
	require.NoError(t, s.Put(ctx, testArtifact(TaskClauseType)))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, a := range list {
		assert.Nil(t, a.Payload, "List omits payloads")
		assert.NotEmpty(t, a.Version)
	}
}

func TestWatcherFiresOnPut(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var mu sync.Mutex
	seen := make(map[string]int)
	notify := make(chan string, 4)

	w, err := NewWatcher(s, func(task string) {
		mu.Lock()
		seen[task]++
		mu.Unlock()
		notify <- task
	}, logging.NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, s.Put(ctx, testArtifact(TaskClauseRisk)))

	select {
	case task := <-notify:
		assert.Equal(t, TaskClauseRisk, task)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire within 3s")
	}
}

func TestWatcherIgnoresTempFiles(t *testing.T) {
	s := newTestStore(t)

	notify := make(chan string, 4)
	w, err := NewWatcher(s, func(task string) { notify <- task }, logging.NewNopLogger())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), ".doc_type.tmp-123"), []byte("x"), 0o644))

	select {
	case task := <-notify:
		t.Fatalf("unexpected reload for %q", task)
	case <-time.After(500 * time.Millisecond):
	}
}
