// Package estimator loads a trained regression artifact exported from the training
// pipeline and evaluates it in process.
//
// An artifact is a JSON document:
//
//	{
//	  "format": "linear" | "tree_ensemble",
//	  "feature_names": ["latitude", "longitude", ...],
//	  ... format specific fields ...
//	}
//
// A loaded Model is immutable and safe for concurrent use.
package estimator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// Model is a trained regressor. Predict returns one value per input row.
type Model interface {
	Predict(rows [][]float64) ([]float64, error)
}

// Supported artifact formats.
const (
	FormatLinear       = "linear"
	FormatTreeEnsemble = "tree_ensemble"
)

var (
	// ErrUnsupportedFormat is returned for an artifact whose format is unknown.
	ErrUnsupportedFormat = errors.New("unsupported model format")
	// ErrSchemaMismatch is returned when the artifact was trained on different features.
	ErrSchemaMismatch = errors.New("model feature schema mismatch")
	// ErrInvalidArtifact is returned for a structurally broken artifact.
	ErrInvalidArtifact = errors.New("invalid model artifact")
	// ErrShapeMismatch is returned by Predict when a row has the wrong number of columns.
	ErrShapeMismatch = errors.New("input shape mismatch")
)

type artifact struct {
	Format       string    `json:"format"`
	FeatureNames []string  `json:"feature_names"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	Aggregation  string    `json:"aggregation"`
	Init         float64   `json:"init"`
	LearningRate *float64  `json:"learning_rate"`
	Trees        []tree    `json:"trees"`
}

// Load reads the artifact at path and checks that it was trained on features,
// in that exact order.
func Load(path string, features []string) (Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model artifact: %w", err)
	}
	defer file.Close()

	model, err := Decode(file, features)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact %s: %w", path, err)
	}

	return model, nil
}

// Decode parses an artifact from r. See Load.
func Decode(r io.Reader, features []string) (Model, error) {
	var art artifact
	if err := json.NewDecoder(r).Decode(&art); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	if !slices.Equal(art.FeatureNames, features) {
		return nil, fmt.Errorf("%w: artifact has %v, expected %v", ErrSchemaMismatch, art.FeatureNames, features)
	}

	switch art.Format {
	case FormatLinear:
		return newLinear(art)
	case FormatTreeEnsemble:
		return newTreeEnsemble(art)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, art.Format)
	}
}

func checkShape(rows [][]float64, width int) error {
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d features, model expects %d", ErrShapeMismatch, i, len(row), width)
		}
	}
	return nil
}
