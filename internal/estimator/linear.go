package estimator

import "fmt"

// Linear is an ordinary least squares style model: intercept + Σ coef_i * x_i.
type Linear struct {
	intercept    float64
	coefficients []float64
}

func newLinear(art artifact) (Model, error) {
	if len(art.Coefficients) != len(art.FeatureNames) {
		return nil, fmt.Errorf("%w: %d coefficients for %d features",
			ErrInvalidArtifact, len(art.Coefficients), len(art.FeatureNames))
	}

	return &Linear{intercept: art.Intercept, coefficients: art.Coefficients}, nil
}

// Predict implements Model.
func (l *Linear) Predict(rows [][]float64) ([]float64, error) {
	if err := checkShape(rows, len(l.coefficients)); err != nil {
		return nil, err
	}

	out := make([]float64, len(rows))
	for i, row := range rows {
		sum := l.intercept
		for j, x := range row {
			sum += l.coefficients[j] * x
		}
		out[i] = sum
	}

	return out, nil
}
