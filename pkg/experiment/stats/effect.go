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

import "math"

// -----------------------------------------------------------------------------
// Effect Sizes
// -----------------------------------------------------------------------------

// CohenD calculates Cohen's d effect size.
//
// Description:
//
//	Cohen's d measures the standardized difference between two means in
//	pooled-standard-deviation units: d = (mean(b) - mean(a)) / s_pooled.
//	Positive d means sample b sits above sample a; swapping the arguments
//	flips the sign.
//
// Inputs:
//   - a: First sample set.
//   - b: Second sample set. Combined sizes must exceed 2.
//
// Outputs:
//   - float64: Cohen's d value.
//   - error: ErrInsufficientSamples when n_a + n_b <= 2, ErrZeroVariance
//     when the pooled standard deviation is zero.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func CohenD(a, b []float64) (float64, error) {
	na := float64(len(a))
	nb := float64(len(b))
	if na+nb <= 2 || len(a) == 0 || len(b) == 0 {
		return 0, ErrInsufficientSamples
	}

	pooledVar := ((na-1)*sampleVariance(a) + (nb-1)*sampleVariance(b)) / (na + nb - 2)
	pooledStdDev := math.Sqrt(pooledVar)
	if pooledStdDev == 0 {
		return 0, ErrZeroVariance
	}

	return (mean(b) - mean(a)) / pooledStdDev, nil
}

// CohenH calculates Cohen's h effect size between two proportions,
// h = 2*asin(sqrt(p2)) - 2*asin(sqrt(p1)).
//
// Inputs:
//   - p1: First proportion, in (0,1).
//   - p2: Second proportion, in (0,1).
//
// Outputs:
//   - float64: Cohen's h value.
//   - error: ErrInvalidParameter when a proportion is outside (0,1).
func CohenH(p1, p2 float64) (float64, error) {
	if p1 <= 0 || p1 >= 1 || p2 <= 0 || p2 >= 1 {
		return 0, ErrInvalidParameter
	}
	return 2*math.Asin(math.Sqrt(p2)) - 2*math.Asin(math.Sqrt(p1)), nil
}

// -----------------------------------------------------------------------------
// Effect Categories
// -----------------------------------------------------------------------------

// EffectCategory categorizes effect sizes using Cohen's conventions.
type EffectCategory int

const (
	// EffectNegligible indicates |d| < 0.2
	EffectNegligible EffectCategory = iota
	// EffectSmall indicates 0.2 <= |d| < 0.5
	EffectSmall
	// EffectMedium indicates 0.5 <= |d| < 0.8
	EffectMedium
	// EffectLarge indicates |d| >= 0.8
	EffectLarge
)

// String returns the string representation.
func (e EffectCategory) String() string {
	switch e {
	case EffectNegligible:
		return "negligible"
	case EffectSmall:
		return "small"
	case EffectMedium:
		return "medium"
	case EffectLarge:
		return "large"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e EffectCategory) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// CategorizeEffect returns the category for a Cohen's d value.
func CategorizeEffect(d float64) EffectCategory {
	absD := math.Abs(d)
	switch {
	case absD < 0.2:
		return EffectNegligible
	case absD < 0.5:
		return EffectSmall
	case absD < 0.8:
		return EffectMedium
	default:
		return EffectLarge
	}
}
