// SPDX-License-Identifier: MIT

package diagram

// Option customises Extract.
type Option func(*config)

type config struct {
	filter bool
	eps    float64 // finite bars with persistence ≤ eps are dropped when filter is set
}

// WithDropZeroPersistence removes finite bars whose birth and death values
// are equal.
func WithDropZeroPersistence() Option {
	return func(c *config) { c.filter, c.eps = true, 0 }
}

// WithMinPersistence removes finite bars with persistence ≤ eps.
// Panics on negative or NaN eps.
func WithMinPersistence(eps float64) Option {
	if !(eps >= 0) {
		panic("diagram: WithMinPersistence(eps<0)")
	}
	return func(c *config) { c.filter, c.eps = true, eps }
}
