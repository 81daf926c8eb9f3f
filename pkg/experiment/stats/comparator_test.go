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

import "testing"

// -----------------------------------------------------------------------------
// Test Selection Tests
// -----------------------------------------------------------------------------

func TestChooseTest(t *testing.T) {
	cases := []struct {
		name        string
		assumptions AssumptionResult
		want        TestKind
	}{
		{
			name:        "normal and equal variance",
			assumptions: AssumptionResult{NormalA: true, NormalB: true, EqualVariance: true},
			want:        PooledT,
		},
		{
			name:        "normal and unequal variance",
			assumptions: AssumptionResult{NormalA: true, NormalB: true, EqualVariance: false},
			want:        WelchT,
		},
		{
			name:        "first arm non-normal",
			assumptions: AssumptionResult{NormalA: false, NormalB: true, EqualVariance: true},
			want:        MannWhitneyU,
		},
		{
			name:        "second arm non-normal",
			assumptions: AssumptionResult{NormalA: true, NormalB: false, EqualVariance: true},
			want:        MannWhitneyU,
		},
		{
			name:        "non-normal overrides unequal variance",
			assumptions: AssumptionResult{NormalA: false, NormalB: false, EqualVariance: false},
			want:        MannWhitneyU,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChooseTest(&tc.assumptions); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := []float64{1.0, 1.2, 0.8, 1.1, 0.9, 1.05, 0.95, 1.15}
	b := []float64{1.3, 1.5, 1.1, 1.4, 1.2, 1.35, 1.25, 1.45}

	t.Run("dispatches to the selected test", func(t *testing.T) {
		cases := []struct {
			name        string
			assumptions AssumptionResult
			want        TestKind
		}{
			{"pooled", AssumptionResult{NormalA: true, NormalB: true, EqualVariance: true}, PooledT},
			{"welch", AssumptionResult{NormalA: true, NormalB: true}, WelchT},
			{"mann-whitney", AssumptionResult{NormalA: false, NormalB: true}, MannWhitneyU},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				result, err := Compare(a, b, &tc.assumptions)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if result.Kind != tc.want {
					t.Errorf("expected kind %v, got %v", tc.want, result.Kind)
				}
			})
		}
	})
}

func TestTestKindString(t *testing.T) {
	cases := map[TestKind]string{
		PooledT:      "pooled_t",
		WelchT:       "welch_t",
		MannWhitneyU: "mann_whitney_u",
		TestKind(99): "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
