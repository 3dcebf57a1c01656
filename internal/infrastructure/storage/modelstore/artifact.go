// Package modelstore persists and retrieves trained model artifacts.  An
// artifact is an opaque JSON payload (the serialized model) wrapped in an
// envelope carrying identity and integrity metadata.  Two backends implement
// the Store contract: a local filesystem store and an S3-compatible object
// store.
package modelstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Task names identify the model slots the pipeline consumes.  They double as
// artifact file/object names, so values must stay filesystem-safe.
const (
	TaskDocType    = "doc_type"
	TaskClauseType = "clause_type"
	TaskClauseRisk = "clause_risk"
	TaskEmbedding  = "embedding"
)

// Tasks lists every known task in loading order.
func Tasks() []string {
	return []string{TaskDocType, TaskClauseType, TaskClauseRisk, TaskEmbedding}
}

// Artifact is the stored unit: one trained model for one task.
type Artifact struct {
	// Task is the model slot this artifact fills.
	Task string `json:"task"`

	// Version uniquely identifies one training run output.
	Version string `json:"version"`

	// CreatedAt is the training completion time, UTC.
	CreatedAt time.Time `json:"createdAt"`

	// Checksum is the hex sha256 of Payload, verified on every load.
	Checksum string `json:"checksum"`

	// Labels is the ordered label set the model was trained on.  Loading
	// code compares it against the current label set and rejects artifacts
	// trained on a different one.
	Labels []string `json:"labels,omitempty"`

	// Accuracy is the held-out accuracy measured at training time.
	Accuracy float64 `json:"accuracy"`

	// Examples is the total number of training examples used.
	Examples int `json:"examples"`

	// Payload is the serialized model, opaque to this package.
	Payload json.RawMessage `json:"payload"`
}

// Seal computes and sets the payload checksum.  Call before Put.
func (a *Artifact) Seal() {
	a.Checksum = ChecksumOf(a.Payload)
}

// VerifyChecksum reports whether the stored checksum matches the payload.
func (a *Artifact) VerifyChecksum() bool {
	return a.Checksum == ChecksumOf(a.Payload)
}

// ChecksumOf returns the hex sha256 of data.
func ChecksumOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Store is the persistence contract for trained artifacts.  Implementations
// must make Put atomic with respect to concurrent Get calls: a reader sees
// either the previous artifact or the new one, never a partial write.
type Store interface {
	// Put persists the artifact for its task, replacing any previous one.
	Put(ctx context.Context, a *Artifact) error

	// Get retrieves the current artifact for the task.  Returns an
	// ErrCodeArtifactNotFound error when none exists and an
	// ErrCodeArtifactCorrupt error when the checksum does not match.
	Get(ctx context.Context, task string) (*Artifact, error)

	// List returns the artifacts present, payloads omitted.
	List(ctx context.Context) ([]*Artifact, error)
}
