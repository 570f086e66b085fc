package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that also accepts numeric strings, so "500" and 500 decode alike.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if isHexLiteral(s) {
			return fmt.Errorf("expected a decimal number, got %s", data)
		}
		raw = []byte(s)
	} else if len(raw) > 0 && (raw[0] == '{' || raw[0] == '[' || raw[0] == 't' || raw[0] == 'f') {
		return fmt.Errorf("expected a number, got %s", raw)
	}

	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("expected a number, got %s", data)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("expected a finite number, got %s", data)
	}

	*n = Number(value)
	return nil
}

// isHexLiteral reports whether s uses the 0x prefix that strconv.ParseFloat accepts
// but a decimal numeric field must not.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// PredictionRequest is the body of POST /predict.
type PredictionRequest struct {
	Location           *string `json:"location"`
	Latitude           *Number `json:"latitude"`
	Longitude          *Number `json:"longitude"`
	ShortwaveRadiation *Number `json:"shortwave_radiation_backwards_sfc"`
	Azimuth            *Number `json:"azimuth"`
	Zenith             *Number `json:"zenith"`
	AngleOfIncidence   *Number `json:"angle_of_incidence"`
}

// PredictionResponse is the body of a successful POST /predict.
type PredictionResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	PredictedGeneratedKW float64 `json:"predicted_generated_kw"`
}

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse carries the reason of a failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

var errMissingField = errors.New("field required")

// validate checks presence of the required numeric fields.
func (r *PredictionRequest) validate() error {
	required := []struct {
		name  string
		value *Number
	}{
		{"shortwave_radiation_backwards_sfc", r.ShortwaveRadiation},
		{"azimuth", r.Azimuth},
		{"zenith", r.Zenith},
		{"angle_of_incidence", r.AngleOfIncidence},
	}

	for _, field := range required {
		if field.value == nil {
			return fmt.Errorf("%w: %s", errMissingField, field.name)
		}
	}

	return nil
}

func (n *Number) float() *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}
