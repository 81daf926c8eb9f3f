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

// -----------------------------------------------------------------------------
// Test Selection
// -----------------------------------------------------------------------------

// TestKind identifies which two-sample hypothesis test was run.
type TestKind int

const (
	// PooledT is the two-sample t-test with pooled variance.
	PooledT TestKind = iota
	// WelchT is Welch's unequal-variance t-test.
	WelchT
	// MannWhitneyU is the non-parametric rank test.
	MannWhitneyU
)

// String returns the string representation.
func (k TestKind) String() string {
	switch k {
	case PooledT:
		return "pooled_t"
	case WelchT:
		return "welch_t"
	case MannWhitneyU:
		return "mann_whitney_u"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so verdicts serialize the
// test by name.
func (k TestKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// TestResult holds the outcome of a two-sample hypothesis test.
type TestResult struct {
	// Kind identifies the test that produced the result.
	Kind TestKind `json:"test_name"`

	// Statistic is the test statistic, oriented as sample b minus sample a
	// for the t-tests and the U statistic of sample a for Mann-Whitney.
	Statistic float64 `json:"statistic"`

	// PValue is the two-sided p-value.
	PValue float64 `json:"p_value"`

	// DegreesOfFreedom is set for the t-tests and zero for Mann-Whitney.
	DegreesOfFreedom float64 `json:"degrees_of_freedom,omitempty"`
}

// ChooseTest maps assumption results to the test that is valid to apply.
//
// Description:
//
//	The mapping is a fixed decision table, not caller-configurable, so a
//	given pair of samples always routes to the same test:
//
//	  normal(a) && normal(b)   equal variance   chosen test
//	  ---------------------   --------------   -----------
//	  true                     true             PooledT
//	  true                     false            WelchT
//	  false                    (ignored)        MannWhitneyU
//
//	When normality fails on either arm the non-parametric test is used
//	regardless of variance equality.
func ChooseTest(assumptions *AssumptionResult) TestKind {
	if !assumptions.NormalA || !assumptions.NormalB {
		return MannWhitneyU
	}
	if assumptions.EqualVariance {
		return PooledT
	}
	return WelchT
}

// Compare runs the test selected by the decision table for the given
// assumption results.
//
// Inputs:
//   - a: First sample set. Must have at least 2 observations.
//   - b: Second sample set. Must have at least 2 observations.
//   - assumptions: Output of CheckAssumptions for the same two samples.
//
// Outputs:
//   - *TestResult: The selected test's statistic and two-sided p-value.
//   - error: ErrInsufficientSamples or ErrZeroVariance.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Compare(a, b []float64, assumptions *AssumptionResult) (*TestResult, error) {
	switch ChooseTest(assumptions) {
	case MannWhitneyU:
		return MannWhitneyUTest(a, b)
	case WelchT:
		return WelchTTest(a, b)
	default:
		return PooledTTest(a, b)
	}
}
