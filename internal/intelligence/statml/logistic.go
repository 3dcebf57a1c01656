package statml

import "math"

// LogisticRegression is a multinomial (softmax) logistic regression trained
// with full-batch gradient descent.  Weights initialize to zero and updates
// follow example order, so training is deterministic for a fixed input.
type LogisticRegression struct {
	Weights [][]float64 `json:"weights"` // [class][feature]
	Bias    []float64   `json:"bias"`
	Epochs  int         `json:"epochs"`
	LR      float64     `json:"lr"`
	L2      float64     `json:"l2"`
}

// NewLogisticRegression returns a model with tuned defaults.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{Epochs: 400, LR: 0.5, L2: 1e-4}
}

func softmax(logits []float64) []float64 {
	maxVal := logits[0]
	for _, v := range logits[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	out := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		out[i] = math.Exp(v - maxVal)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// Fit trains on TF-IDF vectors X with encoded labels y over nClasses.
func (m *LogisticRegression) Fit(X [][]float64, y []int, nClasses int) {
	if len(X) == 0 {
		return
	}
	nFeatures := len(X[0])
	m.Weights = make([][]float64, nClasses)
	for c := range m.Weights {
		m.Weights[c] = make([]float64, nFeatures)
	}
	m.Bias = make([]float64, nClasses)

	grad := make([][]float64, nClasses)
	for c := range grad {
		grad[c] = make([]float64, nFeatures)
	}
	gradBias := make([]float64, nClasses)

	invN := 1.0 / float64(len(X))
	for epoch := 0; epoch < m.Epochs; epoch++ {
		for c := range grad {
			for f := range grad[c] {
				grad[c][f] = 0
			}
			gradBias[c] = 0
		}

		for i, x := range X {
			probs := m.PredictProba(x)
			for c := 0; c < nClasses; c++ {
				diff := probs[c]
				if c == y[i] {
					diff -= 1
				}
				if diff == 0 {
					continue
				}
				row := grad[c]
				for f, xv := range x {
					if xv != 0 {
						row[f] += diff * xv
					}
				}
				gradBias[c] += diff
			}
		}

		for c := 0; c < nClasses; c++ {
			w := m.Weights[c]
			g := grad[c]
			for f := range w {
				w[f] -= m.LR * (g[f]*invN + m.L2*w[f])
			}
			m.Bias[c] -= m.LR * gradBias[c] * invN
		}
	}
}

// PredictProba returns class probabilities for one vector.
func (m *LogisticRegression) PredictProba(x []float64) []float64 {
	logits := make([]float64, len(m.Weights))
	for c, w := range m.Weights {
		s := m.Bias[c]
		for f, xv := range x {
			if xv != 0 {
				s += w[f] * xv
			}
		}
		logits[c] = s
	}
	return softmax(logits)
}
