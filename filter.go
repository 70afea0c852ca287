package motion

// Filter is a recursive filter of a discrete-time measurement stream.
// One Filter smooths one group of coordinates: each call to Update consumes
// exactly one measurement vector and returns the smoothed state.
type Filter interface {
	// Update corrects the filter state with measurement z and returns
	// the new state estimate
	Update(z []float64) ([]float64, error)
	// Dims returns the number of filtered dimensions
	Dims() int
}
