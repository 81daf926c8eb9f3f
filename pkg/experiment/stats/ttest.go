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
// Two-Sample t-Tests
// -----------------------------------------------------------------------------

// PooledTTest performs the two-sample t-test assuming equal population
// variances.
//
// Description:
//
//	The statistic is (mean(b) - mean(a)) over the pooled standard error,
//	with n_a + n_b - 2 degrees of freedom. The p-value is two-sided.
//
// Inputs:
//   - a: First sample set. Must have at least 2 observations.
//   - b: Second sample set. Must have at least 2 observations.
//
// Outputs:
//   - *TestResult: Statistic, two-sided p-value, and degrees of freedom.
//   - error: ErrInsufficientSamples or ErrZeroVariance.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func PooledTTest(a, b []float64) (*TestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return nil, ErrInsufficientSamples
	}

	na := float64(len(a))
	nb := float64(len(b))
	va := sampleVariance(a)
	vb := sampleVariance(b)

	pooledVar := ((na-1)*va + (nb-1)*vb) / (na + nb - 2)
	if pooledVar == 0 {
		return nil, ErrZeroVariance
	}

	se := math.Sqrt(pooledVar * (1/na + 1/nb))
	tStat := (mean(b) - mean(a)) / se
	df := na + nb - 2

	return &TestResult{
		Kind:             PooledT,
		Statistic:        tStat,
		PValue:           twoSidedT(tStat, df),
		DegreesOfFreedom: df,
	}, nil
}

// WelchTTest performs Welch's t-test for two sample sets.
//
// Description:
//
//	Welch's t-test does not assume equal population variances, making it
//	more robust than the pooled test when spreads differ. Degrees of
//	freedom follow the Welch-Satterthwaite approximation.
//
// Inputs:
//   - a: First sample set. Must have at least 2 observations.
//   - b: Second sample set. Must have at least 2 observations.
//
// Outputs:
//   - *TestResult: Statistic, two-sided p-value, and degrees of freedom.
//   - error: ErrInsufficientSamples or ErrZeroVariance.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func WelchTTest(a, b []float64) (*TestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return nil, ErrInsufficientSamples
	}

	va := sampleVariance(a)
	vb := sampleVariance(b)
	na := float64(len(a))
	nb := float64(len(b))

	se2 := va/na + vb/nb
	if se2 == 0 {
		return nil, ErrZeroVariance
	}

	tStat := (mean(b) - mean(a)) / math.Sqrt(se2)

	df, err := welchDF(va, vb, na, nb)
	if err != nil {
		return nil, err
	}

	return &TestResult{
		Kind:             WelchT,
		Statistic:        tStat,
		PValue:           twoSidedT(tStat, df),
		DegreesOfFreedom: df,
	}, nil
}

// welchDF returns the Welch-Satterthwaite degrees of freedom.
func welchDF(va, vb, na, nb float64) (float64, error) {
	num := math.Pow(va/na+vb/nb, 2)
	denom := math.Pow(va/na, 2)/(na-1) + math.Pow(vb/nb, 2)/(nb-1)
	if denom == 0 {
		return 0, ErrZeroVariance
	}
	return num / denom, nil
}

// twoSidedT returns the two-sided p-value of t under a Student's t
// distribution with df degrees of freedom.
func twoSidedT(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.Survival(math.Abs(t))
	if p > 1 {
		p = 1
	}
	return p
}
