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
	"testing"
)

// -----------------------------------------------------------------------------
// Cohen's d Tests
// -----------------------------------------------------------------------------

func TestCohenD(t *testing.T) {
	t.Run("reference dataset", func(t *testing.T) {
		d, err := CohenD(scaleA, scaleB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approxEqual(d, -1.131033, 1e-4) {
			t.Errorf("expected d = -1.1310, got %v", d)
		}
	})

	t.Run("antisymmetric in argument order", func(t *testing.T) {
		forward, err := CohenD(scaleA, scaleB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		reverse, err := CohenD(scaleB, scaleA)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approxEqual(forward, -reverse, 1e-12) {
			t.Errorf("expected d(a,b) = -d(b,a), got %v and %v", forward, reverse)
		}
	})

	t.Run("identical samples give zero", func(t *testing.T) {
		a := []float64{1, 2, 3, 4, 5}
		d, err := CohenD(a, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d != 0 {
			t.Errorf("expected d = 0, got %v", d)
		}
	})

	t.Run("insufficient samples", func(t *testing.T) {
		if _, err := CohenD([]float64{1}, []float64{2}); !errors.Is(err, ErrInsufficientSamples) {
			t.Errorf("expected ErrInsufficientSamples, got %v", err)
		}
	})

	t.Run("zero pooled variance", func(t *testing.T) {
		if _, err := CohenD([]float64{3, 3, 3}, []float64{4, 4, 4}); !errors.Is(err, ErrZeroVariance) {
			t.Errorf("expected ErrZeroVariance, got %v", err)
		}
	})
}

// -----------------------------------------------------------------------------
// Cohen's h Tests
// -----------------------------------------------------------------------------

func TestCohenH(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		h, err := CohenH(0.10, 0.112)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approxEqual(h, 0.038996, 1e-5) {
			t.Errorf("expected h = 0.0390, got %v", h)
		}
	})

	t.Run("antisymmetric", func(t *testing.T) {
		forward, err := CohenH(0.2, 0.3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		reverse, err := CohenH(0.3, 0.2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approxEqual(forward, -reverse, 1e-12) {
			t.Errorf("expected h(p1,p2) = -h(p2,p1), got %v and %v", forward, reverse)
		}
	})

	t.Run("equal proportions give zero", func(t *testing.T) {
		h, err := CohenH(0.4, 0.4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h != 0 {
			t.Errorf("expected h = 0, got %v", h)
		}
	})

	t.Run("proportions outside the open interval", func(t *testing.T) {
		for _, pair := range [][2]float64{{0, 0.5}, {0.5, 1}, {-0.1, 0.5}, {0.5, 1.2}} {
			if _, err := CohenH(pair[0], pair[1]); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter for %v, got %v", pair, err)
			}
		}
	})
}

// -----------------------------------------------------------------------------
// Effect Category Tests
// -----------------------------------------------------------------------------

func TestCategorizeEffect(t *testing.T) {
	cases := []struct {
		d    float64
		want EffectCategory
	}{
		{0.0, EffectNegligible},
		{0.19, EffectNegligible},
		{0.2, EffectSmall},
		{-0.3, EffectSmall},
		{0.5, EffectMedium},
		{-0.79, EffectMedium},
		{0.8, EffectLarge},
		{-2.5, EffectLarge},
	}
	for _, tc := range cases {
		if got := CategorizeEffect(tc.d); got != tc.want {
			t.Errorf("d = %v: expected %v, got %v", tc.d, tc.want, got)
		}
	}
}
