// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package stats implements the statistical core of the experiment engine:
// assumption checks, two-sample hypothesis tests, effect sizes, confidence
// intervals, and power/sample-size analysis.
//
// # Components
//
//   - Assumption checks: D'Agostino-Pearson K-squared normality test and
//     median-centered Levene variance-homogeneity test
//   - Hypothesis tests: pooled t-test, Welch's t-test, Mann-Whitney U
//   - Test selection: a fixed decision table over the assumption results
//   - Effect sizes: Cohen's d (pooled standard deviation) and Cohen's h
//   - Intervals: Welch-form confidence interval for the mean difference,
//     plus a percentile bootstrap alternative
//   - Planning: per-group sample sizes for proportion and continuous
//     metrics, and post-hoc power
//
// # Conventions
//
// Every two-sample quantity is oriented as "b minus a": test statistics,
// effect sizes, and interval centers are positive when sample b sits above
// sample a. Variances are sample variances (n-1 denominator) throughout.
//
// An assumption check answering "normal" or "equal variance" means the test
// failed to reject that hypothesis at the threshold; on small samples this
// is a weak statement, not proof of the property.
//
// # Thread Safety
//
// All functions are pure and stateless; they never mutate their inputs and
// are safe for concurrent use.
package stats
