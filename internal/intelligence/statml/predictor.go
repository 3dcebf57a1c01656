package statml

import (
	"context"
	"sync/atomic"

	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/prometheus"
	"github.com/premsagar786/LegalAI/internal/infrastructure/storage/modelstore"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// loadedTask pairs a decoded model with the envelope metadata the pipeline
// reports (accuracy gauge, version in logs).
type loadedTask struct {
	model    *Model
	version  string
	accuracy float64
}

// Predictor serves statistical predictions from artifacts loaded through the
// model store.  Models are held behind atomic pointers: loading publishes a
// complete replacement, so concurrent requests see either the old model or
// the new one and inference never takes a lock.  A task with no loadable
// artifact simply stays unavailable; callers get an explicit model-not-loaded
// error and fall back.
type Predictor struct {
	store   modelstore.Store
	logger  logging.Logger
	metrics *prometheus.Metrics

	docType    atomic.Pointer[loadedTask]
	clauseType atomic.Pointer[loadedTask]
	clauseRisk atomic.Pointer[loadedTask]
	embedder   atomic.Pointer[Embedder]
}

// NewPredictor wires a predictor to its artifact store.  No artifacts are
// loaded yet; call LoadAll.
func NewPredictor(store modelstore.Store, logger logging.Logger) *Predictor {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Predictor{
		store:   store,
		logger:  logger.Named("predictor"),
		metrics: prometheus.NewNopMetrics(),
	}
}

// WithMetrics attaches the collectors the predictor reports reload outcomes
// and loaded-artifact accuracy to.  Returns the receiver for chaining at
// construction.
func (p *Predictor) WithMetrics(m *prometheus.Metrics) *Predictor {
	if m != nil {
		p.metrics = m
	}
	return p
}

func (p *Predictor) slot(task string) *atomic.Pointer[loadedTask] {
	switch task {
	case modelstore.TaskDocType:
		return &p.docType
	case modelstore.TaskClauseType:
		return &p.clauseType
	case modelstore.TaskClauseRisk:
		return &p.clauseRisk
	default:
		return nil
	}
}

// Reload fetches and decodes the artifact for one task and atomically swaps
// it in.  On any failure the previously loaded model stays in place.
func (p *Predictor) Reload(ctx context.Context, task string) error {
	artifact, err := p.store.Get(ctx, task)
	if err != nil {
		p.metrics.ModelReloads.WithLabelValues(task, "failure").Inc()
		return err
	}

	if task == modelstore.TaskEmbedding {
		e, err := DecodeEmbedder(artifact)
		if err != nil {
			p.metrics.ModelReloads.WithLabelValues(task, "failure").Inc()
			return err
		}
		p.embedder.Store(e)
		p.metrics.ModelReloads.WithLabelValues(task, "success").Inc()
		p.logger.Info("embedder loaded", logging.String("version", artifact.Version))
		return nil
	}

	slot := p.slot(task)
	if slot == nil {
		return apperrors.Newf(apperrors.ErrCodeValidation, "unknown task %q", task)
	}
	m, err := DecodeModel(artifact)
	if err != nil {
		p.metrics.ModelReloads.WithLabelValues(task, "failure").Inc()
		return err
	}
	slot.Store(&loadedTask{model: m, version: artifact.Version, accuracy: artifact.Accuracy})
	p.metrics.ModelReloads.WithLabelValues(task, "success").Inc()
	p.metrics.ModelAccuracy.WithLabelValues(task).Set(artifact.Accuracy)
	p.logger.Info("model loaded",
		logging.String("task", task),
		logging.String("version", artifact.Version),
		logging.Float64("accuracy", artifact.Accuracy))
	return nil
}

// LoadAll attempts to load every task.  Missing artifacts are expected
// (models absent until first training) and only logged; decode failures are
// logged as warnings.  LoadAll never fails the caller.
func (p *Predictor) LoadAll(ctx context.Context) {
	for _, task := range modelstore.Tasks() {
		if err := p.Reload(ctx, task); err != nil {
			if apperrors.IsCode(err, apperrors.ErrCodeArtifactNotFound) {
				p.logger.Info("no artifact for task, statistical path unavailable",
					logging.String("task", task))
			} else {
				p.logger.Warn("failed to load artifact",
					logging.String("task", task), logging.Err(err))
			}
		}
	}
}

// Available reports whether a model is loaded for the task.
func (p *Predictor) Available(task string) bool {
	if task == modelstore.TaskEmbedding {
		return p.embedder.Load() != nil
	}
	slot := p.slot(task)
	return slot != nil && slot.Load() != nil
}

// Accuracy returns the held-out accuracy recorded in the loaded artifact.
func (p *Predictor) Accuracy(task string) (float64, bool) {
	slot := p.slot(task)
	if slot == nil {
		return 0, false
	}
	lt := slot.Load()
	if lt == nil {
		return 0, false
	}
	return lt.accuracy, true
}

func (p *Predictor) predict(task, text string) (*Prediction, error) {
	slot := p.slot(task)
	if slot == nil {
		return nil, apperrors.Newf(apperrors.ErrCodeValidation, "unknown task %q", task)
	}
	lt := slot.Load()
	if lt == nil {
		return nil, apperrors.NewModelNotLoadedError(task)
	}
	return lt.model.Predict(text)
}

// PredictDocumentType classifies whole-document text.
func (p *Predictor) PredictDocumentType(text string) (*Prediction, error) {
	return p.predict(modelstore.TaskDocType, text)
}

// PredictClauseType classifies one clause candidate.
func (p *Predictor) PredictClauseType(text string) (*Prediction, error) {
	return p.predict(modelstore.TaskClauseType, text)
}

// PredictClauseRisk grades one clause candidate.
func (p *Predictor) PredictClauseRisk(text string) (*Prediction, error) {
	return p.predict(modelstore.TaskClauseRisk, text)
}

// Embed returns the semantic embedding of text, or a model-not-loaded error
// when no embedder artifact is present.
func (p *Predictor) Embed(text string) ([]float64, error) {
	e := p.embedder.Load()
	if e == nil {
		return nil, apperrors.NewModelNotLoadedError(modelstore.TaskEmbedding)
	}
	return e.Embed(text), nil
}
