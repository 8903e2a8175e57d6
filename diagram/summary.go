// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary aggregates the bars of one dimension. Persistence statistics
// cover finite bars only and are zero when there are none.
type Summary struct {
	Dim       int
	Count     int
	Finite    int
	Essential int

	TotalPersistence  float64
	MeanPersistence   float64
	MedianPersistence float64
	MaxPersistence    float64
	StdDevPersistence float64
}

// Summary describes the (filtered) bars of dimension dim.
//
// Errors: ErrEmptyDimension when dim has no intervals.
func (d *Diagram) Summary(dim int) (Summary, error) {
	ivs := d.byDim[dim]
	if len(ivs) == 0 {
		return Summary{}, fmt.Errorf("Summary(%d): %w", dim, ErrEmptyDimension)
	}
	s := Summary{Dim: dim, Count: len(ivs)}
	var pers stats.Float64Data
	for _, iv := range ivs {
		if iv.IsInfinite() {
			s.Essential++
			continue
		}
		pers = append(pers, iv.Persistence())
	}
	s.Finite = len(pers)
	if s.Finite == 0 {
		return s, nil
	}

	var err error
	if s.TotalPersistence, err = stats.Sum(pers); err != nil {
		return Summary{}, fmt.Errorf("Summary(%d): %w", dim, err)
	}
	if s.MeanPersistence, err = stats.Mean(pers); err != nil {
		return Summary{}, fmt.Errorf("Summary(%d): %w", dim, err)
	}
	if s.MedianPersistence, err = stats.Median(pers); err != nil {
		return Summary{}, fmt.Errorf("Summary(%d): %w", dim, err)
	}
	if s.MaxPersistence, err = stats.Max(pers); err != nil {
		return Summary{}, fmt.Errorf("Summary(%d): %w", dim, err)
	}
	if s.StdDevPersistence, err = stats.StandardDeviation(pers); err != nil {
		return Summary{}, fmt.Errorf("Summary(%d): %w", dim, err)
	}

	return s, nil
}
