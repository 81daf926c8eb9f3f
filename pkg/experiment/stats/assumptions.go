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

	"gonum.org/v1/gonum/stat/distuv"
)

// -----------------------------------------------------------------------------
// Assumption Checks
// -----------------------------------------------------------------------------

// DefaultNormalityCap bounds the number of observations the normality test
// evaluates; larger samples are subsampled. Beyond this size the test is
// both slow and so powerful that it rejects on immaterial deviations.
const DefaultNormalityCap = 5000

// minNormalitySamples is the smallest n for which the K-squared skewness
// and kurtosis transforms are defined.
const minNormalitySamples = 8

// AssumptionResult captures the distributional checks that drive test
// selection for one pair of samples. Derived per analysis call; never
// persisted.
type AssumptionResult struct {
	// NormalA and NormalB report whether each arm failed to reject
	// normality at the threshold.
	NormalA bool `json:"normal_a"`
	NormalB bool `json:"normal_b"`

	// EqualVariance reports whether Levene's test failed to reject
	// variance homogeneity at the threshold.
	EqualVariance bool `json:"equal_variance"`

	// PNormalA, PNormalB, and PLevene are the underlying p-values.
	PNormalA float64 `json:"p_normal_a"`
	PNormalB float64 `json:"p_normal_b"`
	PLevene  float64 `json:"p_levene"`
}

// CheckNormality tests a sample for normality with the D'Agostino-Pearson
// K-squared omnibus test.
//
// Description:
//
//	Combines z-transforms of sample skewness and kurtosis into a
//	chi-squared statistic with 2 degrees of freedom. Samples larger than
//	maxN are reduced to a uniformly drawn subsample of size maxN using
//	the supplied seed; callers needing run-to-run reproducibility must
//	fix the seed, since the subsample (and hence the p-value) depends on
//	it.
//
//	A true result means "failed to reject normality", which on small
//	samples is a weak statement. It must not be read as proof.
//
// Inputs:
//   - sample: Observations to test. Must have at least 8.
//   - threshold: Rejection threshold for the p-value (typically 0.05).
//   - maxN: Maximum observations to evaluate; <= 0 uses DefaultNormalityCap.
//   - seed: Seed for subsample selection. Only consulted when subsampling.
//
// Outputs:
//   - float64: The p-value of the K-squared statistic.
//   - bool: True when p > threshold.
//   - error: ErrInsufficientSamples or ErrZeroVariance.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func CheckNormality(sample []float64, threshold float64, maxN int, seed int64) (float64, bool, error) {
	if len(sample) < minNormalitySamples {
		return 0, false, ErrInsufficientSamples
	}
	if maxN <= 0 {
		maxN = DefaultNormalityCap
	}
	if len(sample) > maxN {
		sample = subsample(sample, maxN, seed)
	}

	p, err := dagostinoK2(sample)
	if err != nil {
		return 0, false, err
	}
	return p, p > threshold, nil
}

// CheckVarianceHomogeneity tests two samples for equal variance with
// Levene's test, centering on the median (the Brown-Forsythe variant),
// which stays accurate for non-normal inputs.
//
// Inputs:
//   - a: First sample set. Must have at least 2 observations.
//   - b: Second sample set. Must have at least 2 observations.
//   - threshold: Rejection threshold for the p-value (typically 0.05).
//
// Outputs:
//   - float64: The p-value of the Levene W statistic. Zero when the
//     deviations have no within-arm spread but differ across arms, in
//     which case homogeneity is rejected rather than errored.
//   - bool: True when p > threshold ("failed to reject" homogeneity).
//   - error: ErrInsufficientSamples.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func CheckVarianceHomogeneity(a, b []float64, threshold float64) (float64, bool, error) {
	if len(a) < 2 || len(b) < 2 {
		return 0, false, ErrInsufficientSamples
	}

	devA := absDeviations(a, median(a))
	devB := absDeviations(b, median(b))

	na := float64(len(a))
	nb := float64(len(b))
	n := na + nb

	meanA := mean(devA)
	meanB := mean(devB)
	grand := (na*meanA + nb*meanB) / n

	between := na*(meanA-grand)*(meanA-grand) + nb*(meanB-grand)*(meanB-grand)
	var within float64
	for _, z := range devA {
		within += (z - meanA) * (z - meanA)
	}
	for _, z := range devB {
		within += (z - meanB) * (z - meanB)
	}

	if within == 0 {
		if between == 0 {
			// Both arms perfectly concentrated around their medians:
			// nothing to distinguish, treat spreads as equal.
			return 1, 1 > threshold, nil
		}
		// Deviations are uniform within each arm but differ across arms:
		// W diverges, homogeneity is rejected outright.
		return 0, false, nil
	}

	// k = 2 groups, so k-1 = 1.
	w := (n - 2) * between / within
	fDist := distuv.F{D1: 1, D2: n - 2}
	p := fDist.Survival(w)
	return p, p > threshold, nil
}

// CheckAssumptions evaluates both normality checks and the variance check
// for a pair of samples, producing the input for ChooseTest.
//
// Inputs:
//   - a: First sample set. Must have at least 8 observations.
//   - b: Second sample set. Must have at least 8 observations.
//   - threshold: Rejection threshold shared by all three checks.
//   - maxN: Normality subsampling limit; <= 0 uses DefaultNormalityCap.
//   - seed: Seed for normality subsampling.
//
// Outputs:
//   - *AssumptionResult: All three verdicts with their p-values.
//   - error: ErrInsufficientSamples or ErrZeroVariance.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func CheckAssumptions(a, b []float64, threshold float64, maxN int, seed int64) (*AssumptionResult, error) {
	pa, normalA, err := CheckNormality(a, threshold, maxN, seed)
	if err != nil {
		return nil, err
	}
	pb, normalB, err := CheckNormality(b, threshold, maxN, seed)
	if err != nil {
		return nil, err
	}
	pl, equal, err := CheckVarianceHomogeneity(a, b, threshold)
	if err != nil {
		return nil, err
	}

	return &AssumptionResult{
		NormalA:       normalA,
		NormalB:       normalB,
		EqualVariance: equal,
		PNormalA:      pa,
		PNormalB:      pb,
		PLevene:       pl,
	}, nil
}

// -----------------------------------------------------------------------------
// D'Agostino-Pearson K-squared
// -----------------------------------------------------------------------------

// dagostinoK2 returns the p-value of the K-squared omnibus statistic.
func dagostinoK2(sample []float64) (float64, error) {
	m := mean(sample)
	m2 := centralMoment(sample, m, 2)
	if m2 == 0 {
		return 0, ErrZeroVariance
	}

	g1 := centralMoment(sample, m, 3) / math.Pow(m2, 1.5)
	b2 := centralMoment(sample, m, 4) / (m2 * m2)
	n := float64(len(sample))

	z1 := skewnessZ(g1, n)
	z2 := kurtosisZ(b2, n)

	k2 := z1*z1 + z2*z2
	chi2 := distuv.ChiSquared{K: 2}
	return chi2.Survival(k2), nil
}

// skewnessZ is D'Agostino's normalizing transform of sample skewness.
func skewnessZ(g1, n float64) float64 {
	y := g1 * math.Sqrt((n+1)*(n+3)/(6*(n-2)))
	beta2 := 3 * (n*n + 27*n - 70) * (n + 1) * (n + 3) /
		((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	delta := 1 / math.Sqrt(0.5*math.Log(w2))
	alpha := math.Sqrt(2 / (w2 - 1))
	if y == 0 {
		return 0
	}
	t := y / alpha
	return delta * math.Log(t+math.Sqrt(t*t+1))
}

// kurtosisZ is the Anscombe-Glynn normalizing transform of sample kurtosis.
func kurtosisZ(b2, n float64) float64 {
	e := 3 * (n - 1) / (n + 1)
	variance := 24 * n * (n - 2) * (n - 3) / ((n + 1) * (n + 1) * (n + 3) * (n + 5))
	x := (b2 - e) / math.Sqrt(variance)

	sqrtBeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) *
		math.Sqrt(6*(n+3)*(n+5)/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtBeta1*(2/sqrtBeta1+math.Sqrt(1+4/(sqrtBeta1*sqrtBeta1)))

	term1 := 1 - 2/(9*a)
	denom := 1 + x*math.Sqrt(2/(a-4))
	if denom == 0 {
		return math.Inf(-1)
	}
	term2 := math.Copysign(math.Cbrt((1-2/a)/math.Abs(denom)), denom)
	return (term1 - term2) / math.Sqrt(2/(9*a))
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// subsample draws k observations uniformly without replacement using the
// given seed. The input is not mutated.
func subsample(sample []float64, k int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(sample))
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = sample[perm[i]]
	}
	return out
}

// absDeviations returns |x - center| for every observation.
func absDeviations(sample []float64, center float64) []float64 {
	out := make([]float64, len(sample))
	for i, x := range sample {
		out[i] = math.Abs(x - center)
	}
	return out
}
