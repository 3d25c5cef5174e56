package polytri

import "github.com/kestrelgeo/polytri/internal/mountain"

type config struct {
	angleThresholdDegrees float64
	angleEpsilonDegrees   float64
	rngSeed               *int64
}

func defaultConfig() config {
	return config{
		angleThresholdDegrees: mountain.DefaultAngleThresholdDegrees,
		angleEpsilonDegrees:   mountain.DefaultAngleEpsilonDegrees,
	}
}

// Option configures a call to Triangulate.
type Option func(*config)

// WithAngleThresholdDegrees sets the preferred maximum ear angle (spec
// §6's angle_threshold_degrees), in (0, 180). Default 150.
func WithAngleThresholdDegrees(degrees float64) Option {
	return func(c *config) { c.angleThresholdDegrees = degrees }
}

// WithAngleEpsilonDegrees sets the margin by which the angle threshold
// relaxes on a pass that clips no ear. Default 0.1.
func WithAngleEpsilonDegrees(degrees float64) Option {
	return func(c *config) { c.angleEpsilonDegrees = degrees }
}

// WithRNGSeed makes the edge insertion order (and so the exact trapezoid
// and triangle decomposition, though not the covered area) deterministic
// given the same input and seed.
func WithRNGSeed(seed int64) Option {
	return func(c *config) { c.rngSeed = &seed }
}
