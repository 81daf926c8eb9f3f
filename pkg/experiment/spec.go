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

	"github.com/go-playground/validator/v10"
)

// -----------------------------------------------------------------------------
// Experiment Specification
// -----------------------------------------------------------------------------

// MetricType identifies how the primary metric is measured.
type MetricType string

const (
	// MetricProportion is a binary conversion-style metric; the minimum
	// detectable effect is an absolute shift of the rate.
	MetricProportion MetricType = "proportion"

	// MetricContinuous is a real-valued metric; the minimum detectable
	// effect is a standardized mean difference (Cohen's d).
	MetricContinuous MetricType = "continuous"
)

// Spec declares one experiment: what is measured, how sensitive the design
// must be, and how subjects split between arms.
type Spec struct {
	// Name identifies the experiment.
	Name string `yaml:"name" validate:"required"`

	// Metric is the primary metric type.
	Metric MetricType `yaml:"metric" validate:"required,oneof=proportion continuous"`

	// BaselineRate is the current conversion rate. Required for
	// proportion metrics, ignored for continuous ones.
	BaselineRate float64 `yaml:"baseline_rate,omitempty"`

	// BaselineMean is the current mean of a continuous metric. Carried
	// for reporting only; continuous sizing works on the standardized
	// effect and never consults it.
	BaselineMean float64 `yaml:"baseline_mean,omitempty"`

	// MDE is the minimum detectable effect: an absolute rate shift for
	// proportion metrics, a Cohen's d for continuous metrics. Sign
	// indicates direction; magnitude drives sizing.
	MDE float64 `yaml:"mde"`

	// Alpha is the two-sided significance level.
	Alpha float64 `yaml:"alpha" validate:"gt=0,lt=1"`

	// Power is the desired statistical power.
	Power float64 `yaml:"power" validate:"gt=0,lt=1"`

	// AllocationRatio is the fraction of subjects assigned to the
	// control arm.
	AllocationRatio float64 `yaml:"allocation_ratio" validate:"gt=0,lt=1"`

	// Salt decorrelates this experiment's assignments from others.
	// Defaults to Name, so two experiments with different names assign
	// subjects independently unless they opt into a shared salt.
	Salt string `yaml:"salt,omitempty"`
}

// salt returns the effective hashing salt.
func (s *Spec) salt() string {
	if s.Salt != "" {
		return s.Salt
	}
	return s.Name
}

// DefaultSpec returns a Spec with the conventional defaults filled in:
// alpha 0.05, power 0.80, and an even split. Name, Metric, and the effect
// fields must still be set by the caller.
func DefaultSpec() Spec {
	return Spec{
		Alpha:           0.05,
		Power:           0.80,
		AllocationRatio: 0.5,
	}
}

// specValidator is shared; validator.Validate is safe for concurrent use.
var specValidator = validator.New()

// Validate checks the specification for internal consistency.
//
// Description:
//
//	Runs the struct-tag checks, then the cross-field checks the tags
//	cannot express: a proportion metric needs a baseline rate in (0,1)
//	whose shifted value baseline+mde also stays in (0,1), and every
//	metric needs a non-zero effect to size against.
//
// Outputs:
//   - error: nil when valid; otherwise an error wrapping
//     ErrInvalidParameter or ErrDegenerateEffect.
func (s *Spec) Validate() error {
	if err := specValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	if s.MDE == 0 {
		return fmt.Errorf("%w: mde must be non-zero", ErrDegenerateEffect)
	}

	if s.Metric == MetricProportion {
		if s.BaselineRate <= 0 || s.BaselineRate >= 1 {
			return fmt.Errorf("%w: baseline_rate %v outside (0,1)", ErrInvalidParameter, s.BaselineRate)
		}
		shifted := s.BaselineRate + s.MDE
		if shifted <= 0 || shifted >= 1 {
			return fmt.Errorf("%w: baseline_rate+mde %v outside (0,1)", ErrInvalidParameter, shifted)
		}
	}

	return nil
}
