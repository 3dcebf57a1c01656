package statml

import (
	"sort"

	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// LabelEncoder maps class labels to stable integer indices.  Classes are
// stored sorted, so the encoding is a pure function of the label set: two
// training runs over the same labels always agree.  Changing the label set
// produces different indices, which is why artifacts trained on a different
// set are rejected at load time rather than migrated.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// NewLabelEncoder builds an encoder from the labels observed in training.
func NewLabelEncoder(labels []string) *LabelEncoder {
	set := make(map[string]bool)
	for _, l := range labels {
		set[l] = true
	}
	classes := make([]string, 0, len(set))
	for l := range set {
		classes = append(classes, l)
	}
	sort.Strings(classes)
	return &LabelEncoder{Classes: classes}
}

// Encode returns the index of a label.
func (e *LabelEncoder) Encode(label string) (int, error) {
	for i, c := range e.Classes {
		if c == label {
			return i, nil
		}
	}
	return 0, apperrors.Newf(apperrors.ErrCodeValidation, "unknown label %q", label)
}

// Decode returns the label at an index.
func (e *LabelEncoder) Decode(idx int) (string, error) {
	if idx < 0 || idx >= len(e.Classes) {
		return "", apperrors.Newf(apperrors.ErrCodeValidation, "label index %d out of range", idx)
	}
	return e.Classes[idx], nil
}

// EncodeAll encodes a batch, failing on the first unknown label.
func (e *LabelEncoder) EncodeAll(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		idx, err := e.Encode(l)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// Equal reports whether two encoders describe the same label set.
func (e *LabelEncoder) Equal(other *LabelEncoder) bool {
	if other == nil || len(e.Classes) != len(other.Classes) {
		return false
	}
	for i := range e.Classes {
		if e.Classes[i] != other.Classes[i] {
			return false
		}
	}
	return true
}
