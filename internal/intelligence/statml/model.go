package statml

import (
	"encoding/json"

	"github.com/premsagar786/LegalAI/internal/infrastructure/storage/modelstore"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// ClassifierKind names the algorithm stored in a model payload.
type ClassifierKind string

const (
	KindLogistic ClassifierKind = "logistic"
	KindBayes    ClassifierKind = "bayes"
	KindForest   ClassifierKind = "forest"
)

// Model is the (vectorizer, classifier, label encoder) triple for one task.
// Exactly one of the classifier fields is set, selected by Kind.
type Model struct {
	Kind       ClassifierKind      `json:"kind"`
	Vectorizer *Vectorizer         `json:"vectorizer"`
	Labels     *LabelEncoder       `json:"labels"`
	Logistic   *LogisticRegression `json:"logistic,omitempty"`
	Bayes      *NaiveBayes         `json:"bayes,omitempty"`
	Forest     *Forest             `json:"forest,omitempty"`
}

// Prediction is the normalized inference result for any task.
type Prediction struct {
	Label         string             `json:"label"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// PredictProba runs the stored classifier on one vector.
func (m *Model) predictProba(vec []float64) ([]float64, error) {
	switch m.Kind {
	case KindLogistic:
		return m.Logistic.PredictProba(vec), nil
	case KindBayes:
		return m.Bayes.PredictProba(vec), nil
	case KindForest:
		return m.Forest.PredictProba(vec), nil
	default:
		return nil, apperrors.Newf(apperrors.ErrCodeArtifactCorrupt, "unknown classifier kind %q", m.Kind)
	}
}

// Predict vectorizes text and returns the labeled prediction with all class
// probabilities.  Confidence is the maximum class probability.
func (m *Model) Predict(text string) (*Prediction, error) {
	probs, err := m.predictProba(m.Vectorizer.Transform(text))
	if err != nil {
		return nil, err
	}
	if len(probs) != len(m.Labels.Classes) {
		return nil, apperrors.New(apperrors.ErrCodeArtifactCorrupt, "class count mismatch between model and label encoder")
	}

	p := &Prediction{Probabilities: make(map[string]float64, len(probs))}
	best := -1.0
	for i, prob := range probs {
		p.Probabilities[m.Labels.Classes[i]] = prob
		if prob > best {
			best = prob
			p.Label = m.Labels.Classes[i]
		}
	}
	p.Confidence = best
	return p, nil
}

// EncodeModel serializes a model into an artifact payload.
func EncodeModel(m *Model) (json.RawMessage, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeSerialization, "failed to encode model")
	}
	return data, nil
}

// EncodeEmbedder serializes the embedder into an artifact payload.
func EncodeEmbedder(e *Embedder) (json.RawMessage, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeSerialization, "failed to encode embedder")
	}
	return data, nil
}

// DecodeEmbedder deserializes an embedder artifact payload.
func DecodeEmbedder(a *modelstore.Artifact) (*Embedder, error) {
	e := &Embedder{}
	if err := json.Unmarshal(a.Payload, e); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactCorrupt, "embedder payload is not valid JSON")
	}
	if e.Dim <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeArtifactCorrupt, "embedder dimensionality must be positive")
	}
	return e, nil
}

// DecodeModel deserializes an artifact payload and checks that its label set
// matches the artifact envelope.
func DecodeModel(a *modelstore.Artifact) (*Model, error) {
	m := &Model{}
	if err := json.Unmarshal(a.Payload, m); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactCorrupt, "model payload is not valid JSON")
	}
	if m.Vectorizer == nil || m.Labels == nil {
		return nil, apperrors.New(apperrors.ErrCodeArtifactCorrupt, "model payload missing vectorizer or labels")
	}
	if len(a.Labels) > 0 && !m.Labels.Equal(&LabelEncoder{Classes: a.Labels}) {
		return nil, apperrors.New(apperrors.ErrCodeLabelSetChanged, "artifact label set differs from payload").
			WithDetail("task=" + a.Task)
	}
	return m, nil
}
