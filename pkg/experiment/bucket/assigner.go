// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package bucket deterministically places subjects into experiment arms.
//
// Assignment is a pure function of (subject id, split ratio, salt): the same
// inputs always produce the same arm, across processes and restarts, with no
// external state or I/O. Distinct salts decorrelate concurrently running
// experiments, so one subject can land in different arms of different
// experiments.
package bucket

import "hash/fnv"

// Buckets is the resolution of the assignment space; the split ratio is
// applied in whole-percent granularity.
const Buckets = 100

// Arm identifies one group of a two-group comparison.
type Arm int

const (
	// Control is the baseline arm.
	Control Arm = iota
	// Test is the treatment arm.
	Test
)

// String returns the string representation.
func (a Arm) String() string {
	switch a {
	case Control:
		return "control"
	case Test:
		return "test"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Arm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Assign places a subject into an arm.
//
// Description:
//
//	Hashes subjectID together with the experiment salt using FNV-1a,
//	reduces the hash to a bucket in [0,100), and assigns Control when the
//	bucket falls below 100*splitRatio. FNV-1a is not cryptographic, but
//	its output is uniform enough that the realized control fraction
//	converges to splitRatio over a large population, and assignments
//	under different salts are uncorrelated.
//
// Inputs:
//   - subjectID: Stable identifier for the subject.
//   - splitRatio: Fraction of subjects assigned to Control, in (0,1).
//   - salt: Per-experiment salt decorrelating concurrent experiments.
//
// Outputs:
//   - Arm: Control or Test. Identical inputs always yield the same arm.
//
// Thread Safety: This function is pure and safe for concurrent use.
func Assign(subjectID string, splitRatio float64, salt string) Arm {
	h := fnv.New64a()
	h.Write([]byte(subjectID))
	h.Write([]byte{':'})
	h.Write([]byte(salt))

	b := h.Sum64() % Buckets
	if float64(b) < splitRatio*Buckets {
		return Control
	}
	return Test
}
