package statml

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// DefaultEmbeddingDim is the embedder's output dimensionality.
const DefaultEmbeddingDim = 128

// Embedder maps text to a fixed-length vector by summing per-token random
// projections.  Token vectors are derived from a hash of the token mixed
// with the seed, so the same (seed, text) pair always embeds identically
// without storing a projection matrix.  The embedder is off the critical
// classification path; its absence never blocks clause analysis.
type Embedder struct {
	Dim  int   `json:"dim"`
	Seed int64 `json:"seed"`
}

// NewEmbedder returns an embedder with the default dimensionality.
func NewEmbedder(seed int64) *Embedder {
	return &Embedder{Dim: DefaultEmbeddingDim, Seed: seed}
}

func (e *Embedder) tokenVector(token string) []float64 {
	h := fnv.New64a()
	h.Write([]byte(token))
	rng := rand.New(rand.NewSource(int64(h.Sum64()) ^ e.Seed))
	vec := make([]float64, e.Dim)
	for i := range vec {
		vec[i] = rng.NormFloat64()
	}
	return vec
}

// Embed returns the L2-normalized sentence vector, or a zero vector when the
// text has no usable tokens.
func (e *Embedder) Embed(text string) []float64 {
	out := make([]float64, e.Dim)
	tokens := Tokenize(text)
	for _, tok := range tokens {
		tv := e.tokenVector(tok)
		for i := range out {
			out[i] += tv[i]
		}
	}
	var norm float64
	for _, v := range out {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range out {
			out[i] /= norm
		}
	}
	return out
}

// Similarity returns the cosine similarity of two embedded texts.
func (e *Embedder) Similarity(a, b string) float64 {
	va, vb := e.Embed(a), e.Embed(b)
	var dot float64
	for i := range va {
		dot += va[i] * vb[i]
	}
	return dot
}
