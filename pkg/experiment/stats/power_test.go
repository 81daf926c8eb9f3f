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
	"errors"
	"math"
	"testing"
)

// -----------------------------------------------------------------------------
// Proportion Sizing Tests
// -----------------------------------------------------------------------------

func TestSizeProportionTest(t *testing.T) {
	t.Run("reference sizing", func(t *testing.T) {
		// 10% baseline, 1.2pp absolute lift, 5% alpha, 80% power.
		n, err := SizeProportionTest(0.10, 0.012, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 10323 {
			t.Errorf("expected n = 10323, got %d", n)
		}
	})

	t.Run("smaller effects need more subjects", func(t *testing.T) {
		small, err := SizeProportionTest(0.10, 0.005, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		large, err := SizeProportionTest(0.10, 0.05, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if small <= large {
			t.Errorf("expected smaller effect to need more subjects, got %d <= %d", small, large)
		}
	})

	t.Run("higher power needs more subjects", func(t *testing.T) {
		low, err := SizeProportionTest(0.10, 0.012, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		high, err := SizeProportionTest(0.10, 0.012, 0.05, 0.95, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if high <= low {
			t.Errorf("expected 95%% power to need more subjects, got %d <= %d", high, low)
		}
	})

	t.Run("negative lift sizes like a positive one", func(t *testing.T) {
		up, err := SizeProportionTest(0.10, 0.012, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		down, err := SizeProportionTest(0.112, -0.012, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if up != down {
			t.Errorf("expected symmetric sizing, got %d and %d", up, down)
		}
	})

	t.Run("zero effect", func(t *testing.T) {
		if _, err := SizeProportionTest(0.10, 0, 0.05, 0.80, 1); !errors.Is(err, ErrDegenerateEffect) {
			t.Errorf("expected ErrDegenerateEffect, got %v", err)
		}
	})

	t.Run("shifted rate outside the open interval", func(t *testing.T) {
		if _, err := SizeProportionTest(0.95, 0.10, 0.05, 0.80, 1); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("invalid alpha or power", func(t *testing.T) {
		cases := [][2]float64{{0, 0.8}, {1, 0.8}, {0.05, 0}, {0.05, 1}}
		for _, c := range cases {
			if _, err := SizeProportionTest(0.10, 0.012, c[0], c[1], 1); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter for alpha %v power %v, got %v", c[0], c[1], err)
			}
		}
	})
}

// -----------------------------------------------------------------------------
// Continuous Sizing Tests
// -----------------------------------------------------------------------------

func TestSizeContinuousTest(t *testing.T) {
	t.Run("medium effect reference", func(t *testing.T) {
		n, err := SizeContinuousTest(0.5, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 63 {
			t.Errorf("expected n = 63 for d = 0.5, got %d", n)
		}
	})

	t.Run("unbalanced allocation inflates the first group", func(t *testing.T) {
		balanced, err := SizeContinuousTest(0.5, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Second group gets a quarter of the first: n1 must grow.
		unbalanced, err := SizeContinuousTest(0.5, 0.05, 0.80, 0.25)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if unbalanced <= balanced {
			t.Errorf("expected unbalanced n1 (%d) > balanced n1 (%d)", unbalanced, balanced)
		}
	})

	t.Run("zero effect", func(t *testing.T) {
		if _, err := SizeContinuousTest(0, 0.05, 0.80, 1); !errors.Is(err, ErrDegenerateEffect) {
			t.Errorf("expected ErrDegenerateEffect, got %v", err)
		}
	})

	t.Run("vanishing effect saturates instead of overflowing", func(t *testing.T) {
		n, err := SizeContinuousTest(1e-12, 0.05, 0.80, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != math.MaxInt32 {
			t.Errorf("expected saturation at %d, got %d", math.MaxInt32, n)
		}
		if n <= 0 {
			t.Errorf("sample size must stay positive, got %d", n)
		}
	})

	t.Run("invalid ratio", func(t *testing.T) {
		for _, ratio := range []float64{0, -1} {
			if _, err := SizeContinuousTest(0.5, 0.05, 0.80, ratio); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter for ratio %v, got %v", ratio, err)
			}
		}
	})
}

// -----------------------------------------------------------------------------
// Achieved Power Tests
// -----------------------------------------------------------------------------

func TestAchievedPower(t *testing.T) {
	t.Run("sized experiment reaches target power", func(t *testing.T) {
		power := AchievedPower(64, 64, 0.5, 0.05)
		if !approxEqual(power, 0.8074, 1e-3) {
			t.Errorf("expected power = 0.8074, got %v", power)
		}
	})

	t.Run("monotonic in sample size", func(t *testing.T) {
		small := AchievedPower(20, 20, 0.5, 0.05)
		large := AchievedPower(200, 200, 0.5, 0.05)
		if large <= small {
			t.Errorf("expected power to grow with n, got %v <= %v", large, small)
		}
	})

	t.Run("direction is irrelevant", func(t *testing.T) {
		up := AchievedPower(50, 50, 0.4, 0.05)
		down := AchievedPower(50, 50, -0.4, 0.05)
		if up != down {
			t.Errorf("expected symmetric power, got %v and %v", up, down)
		}
	})

	t.Run("undersized groups report zero", func(t *testing.T) {
		if power := AchievedPower(1, 50, 0.5, 0.05); power != 0 {
			t.Errorf("expected 0 power for a single observation, got %v", power)
		}
	})

	t.Run("zero effect floors near alpha", func(t *testing.T) {
		power := AchievedPower(100, 100, 0, 0.05)
		if !approxEqual(power, 0.025, 1e-6) {
			t.Errorf("expected power = alpha/2 at zero effect, got %v", power)
		}
	})
}
