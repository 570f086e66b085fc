package models

// Feature names in the exact order the regressor was trained on.
const (
	FeatureLatitude           = "latitude"
	FeatureLongitude          = "longitude"
	FeatureShortwaveRadiation = "shortwave_radiation_backwards_sfc"
	FeatureAzimuth            = "azimuth"
	FeatureZenith             = "zenith"
	FeatureAngleOfIncidence   = "angle_of_incidence"
)

// FeatureNames is the training-time schema. Index i of FeatureVector.Row holds FeatureNames[i].
var FeatureNames = []string{
	FeatureLatitude,
	FeatureLongitude,
	FeatureShortwaveRadiation,
	FeatureAzimuth,
	FeatureZenith,
	FeatureAngleOfIncidence,
}

// FeatureVector holds the six model inputs for a single prediction.
type FeatureVector struct {
	Latitude           float64
	Longitude          float64
	ShortwaveRadiation float64
	Azimuth            float64
	Zenith             float64
	AngleOfIncidence   float64
}

// NewFeatureVector combines resolved coordinates with the irradiance geometry of a request.
func NewFeatureVector(coords Coordinates, shortwave, azimuth, zenith, incidence float64) FeatureVector {
	return FeatureVector{
		Latitude:           coords.Latitude,
		Longitude:          coords.Longitude,
		ShortwaveRadiation: shortwave,
		Azimuth:            azimuth,
		Zenith:             zenith,
		AngleOfIncidence:   incidence,
	}
}

// Row returns the features as a single tabular row ordered like FeatureNames.
func (f FeatureVector) Row() []float64 {
	return []float64{
		f.Latitude,
		f.Longitude,
		f.ShortwaveRadiation,
		f.Azimuth,
		f.Zenith,
		f.AngleOfIncidence,
	}
}
