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
// Pre-Experiment Sizing
// -----------------------------------------------------------------------------

// SizeProportionTest computes the per-group sample size needed to detect a
// difference between two proportions.
//
// Description:
//
//	Transforms the baseline and shifted proportions into Cohen's h and
//	solves the two-sample normal-approximation equation
//
//	  n1 = (z(1-alpha/2) + z(power))^2 * (1 + 1/ratio) / h^2
//
//	for the first group, where the second group receives ratio*n1
//	subjects. The result is always rounded up: under-sizing an experiment
//	is a correctness defect, over-sizing only costs runtime.
//
// Inputs:
//   - baseline: Baseline conversion rate, in (0,1).
//   - mde: Minimum detectable effect, as an absolute shift of the rate.
//     baseline+mde must stay in (0,1).
//   - alpha: Two-sided significance level, in (0,1).
//   - power: Desired power, in (0,1).
//   - ratio: Group size ratio n2/n1. Must be positive; 1 sizes equal groups.
//
// Outputs:
//   - int: Required subjects in the first group.
//   - error: ErrInvalidParameter or ErrDegenerateEffect.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func SizeProportionTest(baseline, mde, alpha, power, ratio float64) (int, error) {
	if err := checkSizingParams(alpha, power, ratio); err != nil {
		return 0, err
	}
	if mde == 0 {
		return 0, ErrDegenerateEffect
	}

	h, err := CohenH(baseline, baseline+mde)
	if err != nil {
		return 0, err
	}
	return solveSampleSize(h, alpha, power, ratio), nil
}

// SizeContinuousTest computes the per-group sample size needed to detect a
// standardized mean difference.
//
// Inputs:
//   - effect: Standardized effect size (Cohen's d). Must be non-zero.
//   - alpha: Two-sided significance level, in (0,1).
//   - power: Desired power, in (0,1).
//   - ratio: Group size ratio n2/n1. Must be positive; 1 sizes equal groups.
//
// Outputs:
//   - int: Required subjects in the first group, rounded up.
//   - error: ErrInvalidParameter or ErrDegenerateEffect.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func SizeContinuousTest(effect, alpha, power, ratio float64) (int, error) {
	if err := checkSizingParams(alpha, power, ratio); err != nil {
		return 0, err
	}
	if effect == 0 {
		return 0, ErrDegenerateEffect
	}
	return solveSampleSize(effect, alpha, power, ratio), nil
}

// AchievedPower estimates the power of a completed comparison.
//
// Description:
//
//	Normal approximation of the probability that a two-sided test at
//	alpha detects a true standardized effect of the observed magnitude,
//	given the realized group sizes. Direction is irrelevant; the absolute
//	effect is used.
//
// Inputs:
//   - n1: Observations in the first group.
//   - n2: Observations in the second group.
//   - effect: Standardized effect size (Cohen's d).
//   - alpha: Two-sided significance level.
//
// Outputs:
//   - float64: Estimated power in [0,1]. Zero when either group has
//     fewer than 2 observations.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func AchievedPower(n1, n2 int, effect, alpha float64) float64 {
	if n1 < 2 || n2 < 2 {
		return 0
	}

	// Harmonic mean handles unequal group sizes.
	nHarmonic := 2 * float64(n1) * float64(n2) / float64(n1+n2)
	ncp := math.Abs(effect) * math.Sqrt(nHarmonic/2)

	normal := distuv.Normal{Mu: 0, Sigma: 1}
	power := normal.Survival(normal.Quantile(1-alpha/2) - ncp)

	if power < 0 {
		return 0
	}
	if power > 1 {
		return 1
	}
	return power
}

// maxSampleSize caps the solver's output; effects tiny enough to need more
// subjects than this are indistinguishable from zero in practice.
const maxSampleSize = math.MaxInt32

// solveSampleSize inverts the normal-approximation power equation for a
// standardized effect size.
func solveSampleSize(effect, alpha, power, ratio float64) int {
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	zAlpha := normal.Quantile(1 - alpha/2)
	zPower := normal.Quantile(power)

	n := math.Pow((zAlpha+zPower)/effect, 2) * (1 + 1/ratio)
	if n >= maxSampleSize {
		return maxSampleSize
	}
	return int(math.Ceil(n))
}

// checkSizingParams validates the shared sizing parameters.
func checkSizingParams(alpha, power, ratio float64) error {
	if alpha <= 0 || alpha >= 1 || power <= 0 || power >= 1 {
		return ErrInvalidParameter
	}
	if ratio <= 0 || math.IsInf(ratio, 1) || math.IsNaN(ratio) {
		return ErrInvalidParameter
	}
	return nil
}
