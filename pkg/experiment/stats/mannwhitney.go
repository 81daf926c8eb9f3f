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

	"gonum.org/v1/gonum/stat/distuv"
)

// -----------------------------------------------------------------------------
// Mann-Whitney U Test
// -----------------------------------------------------------------------------

// MannWhitneyUTest performs the two-sided Mann-Whitney U rank test.
//
// Description:
//
//	Non-parametric alternative to the t-test: ranks the pooled
//	observations (midranks for ties) and tests whether one sample tends
//	to produce larger values than the other. The p-value comes from the
//	normal approximation with tie correction and a continuity correction,
//	which is accurate for the sample sizes the engine admits.
//
// Inputs:
//   - a: First sample set. Must have at least 2 observations.
//   - b: Second sample set. Must have at least 2 observations.
//
// Outputs:
//   - *TestResult: The U statistic of sample a and the two-sided p-value.
//     DegreesOfFreedom is zero; the U test has none.
//   - error: ErrInsufficientSamples, or ErrZeroVariance when every
//     observation across both samples is identical.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func MannWhitneyUTest(a, b []float64) (*TestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return nil, ErrInsufficientSamples
	}

	na := float64(len(a))
	nb := float64(len(b))
	n := na + nb

	ranks, tieTerm := rankData(a, b)

	var rankSumA float64
	for i := range a {
		rankSumA += ranks[i]
	}
	u := rankSumA - na*(na+1)/2

	mu := na * nb / 2
	sigma2 := na * nb / 12 * ((n + 1) - tieTerm/(n*(n-1)))
	if sigma2 <= 0 {
		// Every observation tied with every other: one giant tie group.
		return nil, ErrZeroVariance
	}
	sigma := math.Sqrt(sigma2)

	// Continuity correction pulls the statistic toward the null mean.
	num := u - mu
	switch {
	case num > 0.5:
		num -= 0.5
	case num < -0.5:
		num += 0.5
	default:
		num = 0
	}
	z := num / sigma

	normal := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * normal.Survival(math.Abs(z))
	if p > 1 {
		p = 1
	}

	return &TestResult{
		Kind:      MannWhitneyU,
		Statistic: u,
		PValue:    p,
	}, nil
}
