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

import "errors"

var (
	// ErrInsufficientSamples indicates fewer observations than the chosen
	// statistic requires.
	ErrInsufficientSamples = errors.New("insufficient samples for statistical analysis")

	// ErrZeroVariance indicates a sample set whose variance is zero, which
	// would put a zero in the denominator of a test statistic or effect size.
	ErrZeroVariance = errors.New("sample set has zero variance")

	// ErrInvalidParameter indicates a configuration value outside its valid
	// domain (e.g. alpha not in (0,1)).
	ErrInvalidParameter = errors.New("parameter outside valid domain")

	// ErrDegenerateEffect indicates a zero effect size, for which the
	// required sample size is unbounded.
	ErrDegenerateEffect = errors.New("effect size is zero")
)
