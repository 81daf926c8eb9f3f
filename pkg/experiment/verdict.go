// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package experiment

import (
	"fmt"

	"github.com/AleutianAI/expstat/pkg/experiment/stats"
)

// -----------------------------------------------------------------------------
// Verdict
// -----------------------------------------------------------------------------

// Verdict is the full inference report for one analyzed experiment.
// Statistic, EffectSize, and the interval are oriented test-minus-control.
type Verdict struct {
	// TestName identifies the selected two-sample test.
	TestName stats.TestKind `json:"test_name"`

	// Statistic is the test statistic (t or U, by test).
	Statistic float64 `json:"statistic"`

	// PValue is the two-sided p-value.
	PValue float64 `json:"p_value"`

	// DegreesOfFreedom is set for the t tests, zero for Mann-Whitney.
	DegreesOfFreedom float64 `json:"degrees_of_freedom,omitempty"`

	// EffectSize is Cohen's d of test versus control.
	EffectSize float64 `json:"effect_size"`

	// EffectCategory buckets the effect size per Cohen's conventions.
	EffectCategory stats.EffectCategory `json:"effect_category"`

	// ConfidenceInterval is the interval for the mean difference at level
	// 1-alpha, embedded so its ci_* fields sit at the top level of the
	// serialized verdict.
	stats.ConfidenceInterval

	// Alpha is the significance level the verdict was judged at.
	Alpha float64 `json:"alpha"`

	// Significant is true when PValue < Alpha.
	Significant bool `json:"significant"`

	// Power is the achieved power at the observed effect and sizes.
	Power float64 `json:"power"`

	// Assumptions records the checks that drove test selection.
	Assumptions stats.AssumptionResult `json:"assumptions"`
}

// Summarize builds a Verdict from the core inference outputs. The
// assumption record and achieved power are filled in by the caller.
//
// Inputs:
//   - result: The selected test's outcome.
//   - effect: Cohen's d, test versus control.
//   - ci: Confidence interval for the mean difference.
//   - alpha: Significance level to judge the p-value against.
//
// Outputs:
//   - *Verdict: Report with significance decided as p < alpha.
func Summarize(result *stats.TestResult, effect float64, ci *stats.ConfidenceInterval, alpha float64) *Verdict {
	return &Verdict{
		TestName:           result.Kind,
		Statistic:          result.Statistic,
		PValue:             result.PValue,
		DegreesOfFreedom:   result.DegreesOfFreedom,
		EffectSize:         effect,
		EffectCategory:     stats.CategorizeEffect(effect),
		ConfidenceInterval: *ci,
		Alpha:              alpha,
		Significant:        result.PValue < alpha,
	}
}

// Summary returns a human-readable report.
func (v *Verdict) Summary() string {
	significance := "NOT SIGNIFICANT"
	if v.Significant {
		significance = "SIGNIFICANT"
	}

	return fmt.Sprintf(`Experiment Verdict
==================
Result: %s (alpha %.3f)

Test: %s
  Statistic: %.4f
  p-value: %.4f

Effect:
  Cohen's d: %.3f (%s)
  Mean Difference CI (%.0f%%): [%.4f, %.4f]

Power: %.2f%%

Assumptions:
  Normal (control): %v (p=%.4f)
  Normal (test): %v (p=%.4f)
  Equal Variance: %v (p=%.4f)`,
		significance,
		v.Alpha,
		v.TestName,
		v.Statistic,
		v.PValue,
		v.EffectSize,
		v.EffectCategory,
		v.Level*100,
		v.Lower,
		v.Upper,
		v.Power*100,
		v.Assumptions.NormalA,
		v.Assumptions.PNormalA,
		v.Assumptions.NormalB,
		v.Assumptions.PNormalB,
		v.Assumptions.EqualVariance,
		v.Assumptions.PLevene)
}
