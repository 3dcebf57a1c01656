package statml

import (
	"context"
	"math/rand"
	"time"

	"github.com/premsagar786/LegalAI/internal/config"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	"github.com/premsagar786/LegalAI/internal/infrastructure/storage/modelstore"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// taskSpec fixes the per-task algorithm and vectorizer shape.  These are
// tuned defaults, not hard requirements, but changing them invalidates the
// determinism tests.
type taskSpec struct {
	kind        ClassifierKind
	ngramMin    int
	ngramMax    int
	maxFeatures int
}

var taskSpecs = map[string]taskSpec{
	modelstore.TaskDocType:    {kind: KindLogistic, ngramMin: 1, ngramMax: 3, maxFeatures: 1000},
	modelstore.TaskClauseType: {kind: KindBayes, ngramMin: 1, ngramMax: 3, maxFeatures: 800},
	modelstore.TaskClauseRisk: {kind: KindForest, ngramMin: 1, ngramMax: 2, maxFeatures: 500},
}

// TrainResult summarizes one fitted task.
type TrainResult struct {
	Task     string   `json:"task"`
	Accuracy float64  `json:"accuracy"`
	Examples int      `json:"examples"`
	Classes  []string `json:"classes"`
}

// Trainer fits the statistical models and writes their artifacts through the
// model store.  Training is an offline batch operation; every random choice
// derives from the configured seed, so retraining on identical data yields
// identical artifacts.
type Trainer struct {
	store  modelstore.Store
	cfg    config.TrainingConfig
	logger logging.Logger
}

// NewTrainer wires a trainer to its artifact store.
func NewTrainer(store modelstore.Store, cfg config.TrainingConfig, logger logging.Logger) *Trainer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Trainer{store: store, cfg: cfg, logger: logger.Named("trainer")}
}

// splitHeldOut shuffles deterministically and splits off the held-out share.
func (t *Trainer) splitHeldOut(n int) (trainIdx, testIdx []int) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewSource(t.cfg.Seed))
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	nTest := int(float64(n) * t.cfg.TestFraction)
	if nTest < 1 && n > 1 {
		nTest = 1
	}
	return idx[nTest:], idx[:nTest]
}

// Fit trains one task on the given examples, evaluates on the held-out
// split, and persists the artifact.
func (t *Trainer) Fit(ctx context.Context, task string, examples []Example) (*TrainResult, error) {
	spec, ok := taskSpecs[task]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrCodeValidation, "no training specification for task %q", task)
	}
	if len(examples) < 4 {
		return nil, apperrors.Newf(apperrors.ErrCodeTrainingFailed, "task %q needs at least 4 examples, got %d", task, len(examples))
	}

	labels := make([]string, len(examples))
	texts := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
		labels[i] = ex.Label
	}
	encoder := NewLabelEncoder(labels)
	y, err := encoder.EncodeAll(labels)
	if err != nil {
		return nil, err
	}

	trainIdx, testIdx := t.splitHeldOut(len(examples))

	trainTexts := make([]string, len(trainIdx))
	trainY := make([]int, len(trainIdx))
	for i, idx := range trainIdx {
		trainTexts[i] = texts[idx]
		trainY[i] = y[idx]
	}

	vectorizer := NewVectorizer(spec.ngramMin, spec.ngramMax, spec.maxFeatures)
	vectorizer.Fit(trainTexts)
	trainX := vectorizer.TransformAll(trainTexts)

	model := &Model{Kind: spec.kind, Vectorizer: vectorizer, Labels: encoder}
	nClasses := len(encoder.Classes)
	switch spec.kind {
	case KindLogistic:
		model.Logistic = NewLogisticRegression()
		model.Logistic.Fit(trainX, trainY, nClasses)
	case KindBayes:
		model.Bayes = NewNaiveBayes()
		model.Bayes.Fit(trainX, trainY, nClasses)
	case KindForest:
		model.Forest = NewForest(t.cfg.Seed)
		model.Forest.Fit(trainX, trainY, nClasses)
	}

	correct := 0
	for _, idx := range testIdx {
		pred, err := model.Predict(texts[idx])
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeTrainingFailed, "held-out evaluation failed")
		}
		if pred.Label == labels[idx] {
			correct++
		}
	}
	accuracy := 0.0
	if len(testIdx) > 0 {
		accuracy = float64(correct) / float64(len(testIdx))
	}

	payload, err := EncodeModel(model)
	if err != nil {
		return nil, err
	}
	artifact := &modelstore.Artifact{
		Task:      task,
		CreatedAt: time.Now().UTC(),
		Labels:    encoder.Classes,
		Accuracy:  accuracy,
		Examples:  len(examples),
		Payload:   payload,
	}
	if err := t.store.Put(ctx, artifact); err != nil {
		return nil, err
	}

	t.logger.Info("model trained",
		logging.String("task", task),
		logging.Int("examples", len(examples)),
		logging.Float64("accuracy", accuracy))

	return &TrainResult{
		Task:     task,
		Accuracy: accuracy,
		Examples: len(examples),
		Classes:  encoder.Classes,
	}, nil
}

// FitEmbedder persists the semantic embedder configuration as its own
// artifact.  No corpus is needed; the embedder is fully determined by its
// seed and dimensionality.
func (t *Trainer) FitEmbedder(ctx context.Context) error {
	payload, err := EncodeEmbedder(NewEmbedder(t.cfg.Seed))
	if err != nil {
		return err
	}
	return t.store.Put(ctx, &modelstore.Artifact{
		Task:      modelstore.TaskEmbedding,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	})
}

// TrainAll fits every classification task from the merged corpus and the
// embedder, returning per-task results in a fixed order.
func (t *Trainer) TrainAll(ctx context.Context, examples map[string][]Example) ([]*TrainResult, error) {
	var results []*TrainResult
	for _, task := range []string{modelstore.TaskDocType, modelstore.TaskClauseType, modelstore.TaskClauseRisk} {
		res, err := t.Fit(ctx, task, examples[task])
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	if err := t.FitEmbedder(ctx); err != nil {
		return results, err
	}
	return results, nil
}
