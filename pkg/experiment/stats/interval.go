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
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// -----------------------------------------------------------------------------
// Confidence Intervals
// -----------------------------------------------------------------------------

// ConfidenceInterval represents a statistical confidence interval.
type ConfidenceInterval struct {
	// Lower is the lower bound.
	Lower float64 `json:"ci_lower"`

	// Upper is the upper bound.
	Upper float64 `json:"ci_upper"`

	// Level is the confidence level (e.g., 0.95).
	Level float64 `json:"ci_level"`

	// Center is the point estimate of mean(b) - mean(a).
	Center float64 `json:"ci_center"`
}

// Contains returns true if the interval contains the value.
func (ci *ConfidenceInterval) Contains(v float64) bool {
	return v >= ci.Lower && v <= ci.Upper
}

// Width returns the interval width.
func (ci *ConfidenceInterval) Width() float64 {
	return ci.Upper - ci.Lower
}

// MeanDifferenceCI calculates a confidence interval for the difference of
// means, mean(b) - mean(a).
//
// Description:
//
//	Always uses the Welch form: standard error sqrt(va/na + vb/nb) and
//	Welch-Satterthwaite degrees of freedom. The Welch interval is valid
//	under both equal- and unequal-variance assumptions, so the interval
//	does not depend on which test the decision table selected.
//
// Inputs:
//   - a: First sample set. Must have at least 2 observations.
//   - b: Second sample set. Must have at least 2 observations.
//   - level: Confidence level in (0,1), e.g. 0.95.
//
// Outputs:
//   - *ConfidenceInterval: Interval centered on the observed difference.
//     Zero-variance inputs degenerate to a point interval.
//   - error: ErrInsufficientSamples or ErrInvalidParameter.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func MeanDifferenceCI(a, b []float64, level float64) (*ConfidenceInterval, error) {
	if len(a) < 2 || len(b) < 2 {
		return nil, ErrInsufficientSamples
	}
	if level <= 0 || level >= 1 {
		return nil, ErrInvalidParameter
	}

	diff := mean(b) - mean(a)

	va := sampleVariance(a)
	vb := sampleVariance(b)
	na := float64(len(a))
	nb := float64(len(b))

	se := math.Sqrt(va/na + vb/nb)
	if se == 0 {
		return &ConfidenceInterval{Lower: diff, Upper: diff, Level: level, Center: diff}, nil
	}

	df, err := welchDF(va, vb, na, nb)
	if err != nil {
		return nil, err
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	tCrit := tDist.Quantile(1 - (1-level)/2)

	margin := tCrit * se
	return &ConfidenceInterval{
		Lower:  diff - margin,
		Upper:  diff + margin,
		Level:  level,
		Center: diff,
	}, nil
}

// BootstrapCI calculates a percentile bootstrap confidence interval for the
// mean difference mean(b) - mean(a).
//
// Description:
//
//	Resamples both arms with replacement and takes percentiles of the
//	resampled mean differences. More robust than the parametric interval
//	when the samples are far from normal. The seed is explicit so results
//	are reproducible; there is no ambient randomness.
//
// Inputs:
//   - a: First sample set. Must have at least 2 observations.
//   - b: Second sample set. Must have at least 2 observations.
//   - level: Confidence level in (0,1), e.g. 0.95.
//   - iterations: Bootstrap resamples; values below 100 are raised to 100.
//   - seed: Seed for the resampling generator.
//
// Outputs:
//   - *ConfidenceInterval: Bootstrap percentile interval.
//   - error: ErrInsufficientSamples or ErrInvalidParameter.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func BootstrapCI(a, b []float64, level float64, iterations int, seed int64) (*ConfidenceInterval, error) {
	if len(a) < 2 || len(b) < 2 {
		return nil, ErrInsufficientSamples
	}
	if level <= 0 || level >= 1 {
		return nil, ErrInvalidParameter
	}
	if iterations < 100 {
		iterations = 100
	}

	rng := rand.New(rand.NewSource(seed))
	diffs := make([]float64, iterations)
	bootA := make([]float64, len(a))
	bootB := make([]float64, len(b))

	for i := 0; i < iterations; i++ {
		resample(rng, a, bootA)
		resample(rng, b, bootB)
		diffs[i] = mean(bootB) - mean(bootA)
	}
	sort.Float64s(diffs)

	alphaLower := (1 - level) / 2
	lowerIdx := int(alphaLower * float64(iterations))
	upperIdx := int((1 - alphaLower) * float64(iterations))
	if upperIdx >= iterations {
		upperIdx = iterations - 1
	}

	return &ConfidenceInterval{
		Lower:  diffs[lowerIdx],
		Upper:  diffs[upperIdx],
		Level:  level,
		Center: mean(b) - mean(a),
	}, nil
}

// resample fills dst with draws from src, with replacement.
func resample(rng *rand.Rand, src, dst []float64) {
	for i := range dst {
		dst[i] = src[rng.Intn(len(src))]
	}
}
