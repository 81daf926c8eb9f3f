// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package bucket

import (
	"fmt"
	"testing"
)

// -----------------------------------------------------------------------------
// Assignment Tests
// -----------------------------------------------------------------------------

func TestAssign_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("subject-%d", i)
		first := Assign(id, 0.5, "checkout-flow")
		for j := 0; j < 10; j++ {
			if got := Assign(id, 0.5, "checkout-flow"); got != first {
				t.Fatalf("assignment for %s changed from %v to %v on repeat call", id, first, got)
			}
		}
	}
}

func TestAssign_SplitConvergence(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		var control int
		for i := 0; i < 10000; i++ {
			if Assign(fmt.Sprintf("subject-%d", i), 0.5, "checkout-flow") == Control {
				control++
			}
		}
		frac := float64(control) / 10000
		if frac < 0.48 || frac > 0.52 {
			t.Errorf("expected control fraction near 0.5, got %v", frac)
		}
	})

	t.Run("uneven split", func(t *testing.T) {
		var control int
		for i := 0; i < 10000; i++ {
			if Assign(fmt.Sprintf("subject-%d", i), 0.3, "checkout-flow") == Control {
				control++
			}
		}
		frac := float64(control) / 10000
		if frac < 0.28 || frac > 0.32 {
			t.Errorf("expected control fraction near 0.3, got %v", frac)
		}
	})
}

func TestAssign_SaltIndependence(t *testing.T) {
	// Different salts must reshuffle assignments: if the two experiments
	// were correlated, nearly all subjects would keep their arm.
	var disagree int
	for i := 0; i < 10000; i++ {
		id := fmt.Sprintf("subject-%d", i)
		if Assign(id, 0.5, "checkout-flow") != Assign(id, 0.5, "pricing-flow") {
			disagree++
		}
	}
	frac := float64(disagree) / 10000
	if frac < 0.4 || frac > 0.6 {
		t.Errorf("expected roughly half the subjects to switch arms across salts, got %v", frac)
	}
}

func TestArm_String(t *testing.T) {
	cases := map[Arm]string{
		Control: "control",
		Test:    "test",
		Arm(9):  "unknown",
	}
	for arm, want := range cases {
		if got := arm.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
