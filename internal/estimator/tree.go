package estimator

import "fmt"

const leaf = -1

// Aggregations of per-tree outputs.
const (
	AggregationSum  = "sum"  // gradient boosting: init + learning_rate * Σ tree
	AggregationMean = "mean" // random forest: mean of trees
)

// tree is a binary regression tree in flat node-array form. Node 0 is the root; a node
// whose left child is -1 is a leaf. Samples go left when x[feature] <= threshold.
type tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// validate guarantees evaluation terminates and never indexes out of range:
// every child id points forward in the arrays.
func (t tree) validate(width int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("%w: empty tree", ErrInvalidArtifact)
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("%w: tree node arrays differ in length", ErrInvalidArtifact)
	}

	for node := range n {
		left, right := t.ChildrenLeft[node], t.ChildrenRight[node]
		if left == leaf {
			if right != leaf {
				return fmt.Errorf("%w: node %d has only one child", ErrInvalidArtifact, node)
			}
			continue
		}
		if left <= node || right <= node || left >= n || right >= n {
			return fmt.Errorf("%w: node %d has invalid children %d/%d", ErrInvalidArtifact, node, left, right)
		}
		if f := t.Feature[node]; f < 0 || f >= width {
			return fmt.Errorf("%w: node %d splits on unknown feature %d", ErrInvalidArtifact, node, f)
		}
	}

	return nil
}

func (t tree) eval(row []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if row[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// TreeEnsemble is a gradient boosted or bagged ensemble of regression trees.
type TreeEnsemble struct {
	trees        []tree
	width        int
	aggregation  string
	init         float64
	learningRate float64
}

func newTreeEnsemble(art artifact) (Model, error) {
	if len(art.Trees) == 0 {
		return nil, fmt.Errorf("%w: ensemble has no trees", ErrInvalidArtifact)
	}

	width := len(art.FeatureNames)
	for i, t := range art.Trees {
		if err := t.validate(width); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}

	ens := &TreeEnsemble{
		trees:        art.Trees,
		width:        width,
		aggregation:  art.Aggregation,
		init:         art.Init,
		learningRate: 1,
	}

	switch art.Aggregation {
	case AggregationSum:
		if art.LearningRate != nil {
			ens.learningRate = *art.LearningRate
		}
	case AggregationMean:
	default:
		return nil, fmt.Errorf("%w: unknown aggregation %q", ErrInvalidArtifact, art.Aggregation)
	}

	return ens, nil
}

// Predict implements Model.
func (e *TreeEnsemble) Predict(rows [][]float64) ([]float64, error) {
	if err := checkShape(rows, e.width); err != nil {
		return nil, err
	}

	out := make([]float64, len(rows))
	for i, row := range rows {
		var sum float64
		for _, t := range e.trees {
			sum += t.eval(row)
		}

		if e.aggregation == AggregationMean {
			out[i] = sum / float64(len(e.trees))
		} else {
			out[i] = e.init + e.learningRate*sum
		}
	}

	return out, nil
}
