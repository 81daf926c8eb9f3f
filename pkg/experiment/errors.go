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

import "errors"

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidParameter indicates a parameter outside its documented
	// domain (alpha, power, allocation ratio, baseline rate).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateEffect indicates a minimum detectable effect of zero,
	// for which no finite sample size exists.
	ErrDegenerateEffect = errors.New("degenerate effect size")

	// ErrInsufficientSamples indicates an arm too small for the requested
	// analysis.
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrNumericInstability indicates that a computation could not be
	// carried out on the given data, such as a zero-variance arm.
	ErrNumericInstability = errors.New("numeric instability")
)
