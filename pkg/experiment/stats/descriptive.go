// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// -----------------------------------------------------------------------------
// Descriptive Helpers
// -----------------------------------------------------------------------------

// mean returns the arithmetic mean. Zero for an empty sample.
func mean(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	return stat.Mean(sample, nil)
}

// sampleVariance returns the unbiased (n-1) variance. Zero when fewer than
// two observations.
func sampleVariance(sample []float64) float64 {
	if len(sample) < 2 {
		return 0
	}
	return stat.Variance(sample, nil)
}

// median returns the middle value, averaging the two central observations
// for even-length samples. The input is not mutated.
func median(sample []float64) float64 {
	n := len(sample)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, sample)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// centralMoment returns the k-th central moment with an n denominator
// (population form, as the normality transforms expect).
func centralMoment(sample []float64, m float64, k int) float64 {
	if len(sample) == 0 {
		return 0
	}
	var sum float64
	for _, x := range sample {
		d := x - m
		p := d
		for i := 1; i < k; i++ {
			p *= d
		}
		sum += p
	}
	return sum / float64(len(sample))
}

// rankData assigns midranks (1-based) to the combined observations of a and
// b, averaging ranks within tie groups. It returns the ranks aligned with
// the concatenation a||b and the tie correction term sum(t^3 - t) over tie
// groups.
func rankData(a, b []float64) (ranks []float64, tieTerm float64) {
	n := len(a) + len(b)
	type obs struct {
		value float64
		pos   int
	}
	combined := make([]obs, 0, n)
	for i, v := range a {
		combined = append(combined, obs{v, i})
	}
	for i, v := range b {
		combined = append(combined, obs{v, len(a) + i})
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i].value < combined[j].value })

	ranks = make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && combined[j].value == combined[i].value {
			j++
		}
		// Midrank for the tie group [i, j).
		mid := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[combined[k].pos] = mid
		}
		if t := float64(j - i); t > 1 {
			tieTerm += t*t*t - t
		}
		i = j
	}
	return ranks, tieTerm
}
