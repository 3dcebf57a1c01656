package statml

import (
	"math"
	"math/rand"
	"sort"
)

// TreeNode is one node of a decision tree, stored flat for JSON portability.
// Feature == -1 marks a leaf, in which case Dist holds the class
// distribution of the training samples that reached it.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Dist      []float64 `json:"dist,omitempty"`
}

// Tree is a single CART classification tree.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Forest is a bagged ensemble of decision trees with per-split feature
// subsampling.  All randomness (bootstrap draws, feature subsets) comes from
// one seeded source, so training is reproducible.
type Forest struct {
	Trees      []Tree  `json:"trees"`
	NTrees     int     `json:"nTrees"`
	MaxDepth   int     `json:"maxDepth"`
	MinSamples int     `json:"minSamples"`
	Seed       int64   `json:"seed"`
}

// NewForest returns an ensemble with tuned defaults.
func NewForest(seed int64) *Forest {
	return &Forest{NTrees: 25, MaxDepth: 8, MinSamples: 2, Seed: seed}
}

func gini(dist []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	g := 1.0
	for _, c := range dist {
		p := c / total
		g -= p * p
	}
	return g
}

type treeBuilder struct {
	X        [][]float64
	y        []int
	nClasses int
	maxDepth int
	minSamp  int
	rng      *rand.Rand
	nodes    []TreeNode
}

func (b *treeBuilder) leaf(idx []int) int {
	dist := make([]float64, b.nClasses)
	for _, i := range idx {
		dist[b.y[i]]++
	}
	total := float64(len(idx))
	if total > 0 {
		for c := range dist {
			dist[c] /= total
		}
	}
	b.nodes = append(b.nodes, TreeNode{Feature: -1, Dist: dist})
	return len(b.nodes) - 1
}

// bestSplit scans a random subset of features for the split minimizing the
// weighted gini impurity.  Returns ok=false when no split improves.
func (b *treeBuilder) bestSplit(idx []int) (feature int, threshold float64, ok bool) {
	nFeatures := len(b.X[0])
	subset := int(math.Sqrt(float64(nFeatures)))
	if subset < 1 {
		subset = 1
	}

	parentDist := make([]float64, b.nClasses)
	for _, i := range idx {
		parentDist[b.y[i]]++
	}
	total := float64(len(idx))
	best := gini(parentDist, total)
	ok = false

	features := b.rng.Perm(nFeatures)[:subset]
	sort.Ints(features)

	values := make([]float64, len(idx))
	for _, f := range features {
		for j, i := range idx {
			values[j] = b.X[i][f]
		}
		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		for j := 1; j < len(sorted); j++ {
			if sorted[j] == sorted[j-1] {
				continue
			}
			th := (sorted[j] + sorted[j-1]) / 2

			leftDist := make([]float64, b.nClasses)
			rightDist := make([]float64, b.nClasses)
			var nLeft, nRight float64
			for _, i := range idx {
				if b.X[i][f] <= th {
					leftDist[b.y[i]]++
					nLeft++
				} else {
					rightDist[b.y[i]]++
					nRight++
				}
			}
			w := (nLeft*gini(leftDist, nLeft) + nRight*gini(rightDist, nRight)) / total
			if w < best-1e-12 {
				best = w
				feature = f
				threshold = th
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func (b *treeBuilder) build(idx []int, depth int) int {
	pure := true
	for _, i := range idx[1:] {
		if b.y[i] != b.y[idx[0]] {
			pure = false
			break
		}
	}
	if pure || depth >= b.maxDepth || len(idx) < b.minSamp {
		return b.leaf(idx)
	}

	feature, threshold, ok := b.bestSplit(idx)
	if !ok {
		return b.leaf(idx)
	}

	var left, right []int
	for _, i := range idx {
		if b.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return b.leaf(idx)
	}

	// reserve this node's slot before recursing
	b.nodes = append(b.nodes, TreeNode{Feature: feature, Threshold: threshold})
	self := len(b.nodes) - 1
	b.nodes[self].Left = b.build(left, depth+1)
	b.nodes[self].Right = b.build(right, depth+1)
	return self
}

// Fit trains the ensemble on TF-IDF vectors X with encoded labels y.
func (m *Forest) Fit(X [][]float64, y []int, nClasses int) {
	if len(X) == 0 {
		return
	}
	rng := rand.New(rand.NewSource(m.Seed))
	m.Trees = make([]Tree, 0, m.NTrees)

	for t := 0; t < m.NTrees; t++ {
		idx := make([]int, len(X))
		for i := range idx {
			idx[i] = rng.Intn(len(X))
		}
		b := &treeBuilder{
			X:        X,
			y:        y,
			nClasses: nClasses,
			maxDepth: m.MaxDepth,
			minSamp:  m.MinSamples,
			rng:      rng,
		}
		b.build(idx, 0)
		m.Trees = append(m.Trees, Tree{Nodes: b.nodes})
	}
}

func (t *Tree) predict(x []float64) []float64 {
	node := 0
	for {
		n := t.Nodes[node]
		if n.Feature < 0 {
			return n.Dist
		}
		if x[n.Feature] <= n.Threshold {
			node = n.Left
		} else {
			node = n.Right
		}
	}
}

// PredictProba averages leaf distributions over all trees.
func (m *Forest) PredictProba(x []float64) []float64 {
	if len(m.Trees) == 0 {
		return nil
	}
	var nClasses int
	for _, n := range m.Trees[0].Nodes {
		if n.Feature < 0 {
			nClasses = len(n.Dist)
			break
		}
	}
	out := make([]float64, nClasses)
	for _, t := range m.Trees {
		dist := t.predict(x)
		for c, p := range dist {
			out[c] += p
		}
	}
	inv := 1.0 / float64(len(m.Trees))
	for c := range out {
		out[c] *= inv
	}
	return out
}
