package statml

import "math"

// NaiveBayes is a multinomial naive Bayes classifier over non-negative
// TF-IDF features with Lidstone smoothing.
type NaiveBayes struct {
	Alpha          float64     `json:"alpha"`
	ClassLogPrior  []float64   `json:"classLogPrior"`
	FeatureLogProb [][]float64 `json:"featureLogProb"` // [class][feature]
}

// NewNaiveBayes returns a model with the tuned smoothing default.
func NewNaiveBayes() *NaiveBayes {
	return &NaiveBayes{Alpha: 0.1}
}

// Fit estimates per-class priors and feature likelihoods.
func (m *NaiveBayes) Fit(X [][]float64, y []int, nClasses int) {
	if len(X) == 0 {
		return
	}
	nFeatures := len(X[0])

	classCount := make([]float64, nClasses)
	featureSum := make([][]float64, nClasses)
	for c := range featureSum {
		featureSum[c] = make([]float64, nFeatures)
	}
	for i, x := range X {
		c := y[i]
		classCount[c]++
		row := featureSum[c]
		for f, xv := range x {
			if xv != 0 {
				row[f] += xv
			}
		}
	}

	total := float64(len(X))
	m.ClassLogPrior = make([]float64, nClasses)
	m.FeatureLogProb = make([][]float64, nClasses)
	for c := 0; c < nClasses; c++ {
		m.ClassLogPrior[c] = math.Log(classCount[c] / total)

		var sum float64
		for _, v := range featureSum[c] {
			sum += v
		}
		denom := sum + m.Alpha*float64(nFeatures)
		m.FeatureLogProb[c] = make([]float64, nFeatures)
		for f := 0; f < nFeatures; f++ {
			m.FeatureLogProb[c][f] = math.Log((featureSum[c][f] + m.Alpha) / denom)
		}
	}
}

// PredictProba returns class probabilities via the normalized log joint.
func (m *NaiveBayes) PredictProba(x []float64) []float64 {
	logJoint := make([]float64, len(m.ClassLogPrior))
	for c := range logJoint {
		s := m.ClassLogPrior[c]
		row := m.FeatureLogProb[c]
		for f, xv := range x {
			if xv != 0 {
				s += xv * row[f]
			}
		}
		logJoint[c] = s
	}
	return softmax(logJoint)
}
