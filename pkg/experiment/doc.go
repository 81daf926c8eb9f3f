// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package experiment covers the lifecycle of a two-arm experiment.
//
// A Spec declares the experiment: metric type, minimum detectable effect,
// significance, power, and the control allocation. The Engine then drives
// three phases:
//
//   - Plan sizes the experiment before launch.
//   - Assign deterministically buckets subjects into arms while it runs.
//   - Analyze selects and runs the appropriate two-sample test afterward,
//     producing a Verdict.
//
// Test selection is automatic: both arms are checked for normality and for
// variance homogeneity, and the result routes to the pooled t-test, Welch's
// t-test, or the Mann-Whitney U test. Callers never pick a test by hand.
//
// All errors wrap one of the package sentinels (ErrInvalidParameter,
// ErrDegenerateEffect, ErrInsufficientSamples, ErrNumericInstability) and
// are matched with errors.Is.
package experiment
