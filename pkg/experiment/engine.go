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
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/AleutianAI/expstat/pkg/experiment/bucket"
	"github.com/AleutianAI/expstat/pkg/experiment/stats"
)

// -----------------------------------------------------------------------------
// Engine
// -----------------------------------------------------------------------------

// minArmSamples is the smallest arm Analyze accepts. Below this the
// normality transforms are undefined, so no test can be selected.
const minArmSamples = 8

// Engine runs the experiment lifecycle: sizing before launch, assignment
// during the run, and inference after collection.
//
// Thread Safety: Engine is immutable after construction and safe for
// concurrent use.
type Engine struct {
	logger              *zap.Logger
	normalityCap        int
	normalitySeed       int64
	assumptionThreshold float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithNormalitySeed sets the seed used when the normality check subsamples
// an oversized arm. Fixing the seed makes repeated analyses of the same
// data reproducible.
func WithNormalitySeed(seed int64) Option {
	return func(e *Engine) {
		e.normalitySeed = seed
	}
}

// WithNormalityCap sets the maximum arm size the normality check evaluates
// before subsampling. Defaults to stats.DefaultNormalityCap.
func WithNormalityCap(maxN int) Option {
	return func(e *Engine) {
		if maxN > 0 {
			e.normalityCap = maxN
		}
	}
}

// WithAssumptionThreshold sets the p-value threshold shared by the
// normality and variance checks. Defaults to 0.05.
func WithAssumptionThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold > 0 && threshold < 1 {
			e.assumptionThreshold = threshold
		}
	}
}

// NewEngine constructs an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:              zap.NewNop(),
		normalityCap:        stats.DefaultNormalityCap,
		normalitySeed:       1,
		assumptionThreshold: 0.05,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// -----------------------------------------------------------------------------
// Plan
// -----------------------------------------------------------------------------

// Plan holds the pre-launch sizing for one experiment.
type Plan struct {
	// ControlSize and TestSize are the required subjects per arm.
	ControlSize int `json:"control_size"`
	TestSize    int `json:"test_size"`

	// Total is the combined requirement.
	Total int `json:"total"`

	// Effect is the standardized effect size the plan detects: Cohen's h
	// for proportion metrics, Cohen's d for continuous ones.
	Effect float64 `json:"effect"`

	// BaselineMean echoes the spec's baseline mean for continuous
	// metrics. Reporting only.
	BaselineMean float64 `json:"baseline_mean,omitempty"`
}

// Plan computes the sample sizes required by the specification.
//
// Description:
//
//	Validates the spec, converts the allocation into a test-to-control
//	ratio r = (1-a)/a where a is the control fraction, and solves the
//	normal-approximation power equation for the metric type. Sizes are
//	always rounded up.
//
// Inputs:
//   - spec: Experiment specification. Must pass Validate.
//
// Outputs:
//   - *Plan: Required sizes and the standardized effect they detect.
//   - error: Validation errors, or sizing errors from the statistics
//     layer mapped into this package's taxonomy.
//
// Thread Safety: This method is safe for concurrent use.
func (e *Engine) Plan(spec Spec) (*Plan, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	ratio := (1 - spec.AllocationRatio) / spec.AllocationRatio

	var (
		controlSize int
		effect      float64
		err         error
	)
	switch spec.Metric {
	case MetricProportion:
		effect, err = stats.CohenH(spec.BaselineRate, spec.BaselineRate+spec.MDE)
		if err == nil {
			controlSize, err = stats.SizeProportionTest(
				spec.BaselineRate, spec.MDE, spec.Alpha, spec.Power, ratio)
		}
	case MetricContinuous:
		effect = spec.MDE
		controlSize, err = stats.SizeContinuousTest(spec.MDE, spec.Alpha, spec.Power, ratio)
	default:
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidParameter, spec.Metric)
	}
	if err != nil {
		return nil, mapStatsErr(err)
	}

	testSize := int(math.Ceil(float64(controlSize) * ratio))

	e.logger.Debug("experiment sized",
		zap.String("experiment", spec.Name),
		zap.String("metric", string(spec.Metric)),
		zap.Int("control_size", controlSize),
		zap.Int("test_size", testSize),
		zap.Float64("effect", effect))

	return &Plan{
		ControlSize:  controlSize,
		TestSize:     testSize,
		Total:        controlSize + testSize,
		Effect:       effect,
		BaselineMean: spec.BaselineMean,
	}, nil
}

// -----------------------------------------------------------------------------
// Assign
// -----------------------------------------------------------------------------

// Assign deterministically places a subject into an arm of the experiment.
//
// Description:
//
//	Hashes the subject id with the experiment's salt (the name, unless
//	the spec sets an explicit Salt), so the same subject always lands in
//	the same arm of the same experiment, and independently in arms of
//	experiments with different salts.
//
// Inputs:
//   - subjectID: Stable identifier for the subject. Must be non-empty.
//   - spec: Experiment specification. Must pass Validate.
//
// Outputs:
//   - bucket.Arm: The assigned arm.
//   - error: ErrInvalidParameter on an empty subject id, or validation
//     errors from the spec.
//
// Thread Safety: This method is safe for concurrent use.
func (e *Engine) Assign(subjectID string, spec Spec) (bucket.Arm, error) {
	if subjectID == "" {
		return bucket.Control, fmt.Errorf("%w: empty subject id", ErrInvalidParameter)
	}
	if err := spec.Validate(); err != nil {
		return bucket.Control, err
	}
	return bucket.Assign(subjectID, spec.AllocationRatio, spec.salt()), nil
}

// -----------------------------------------------------------------------------
// Analyze
// -----------------------------------------------------------------------------

// Analyze runs inference over the collected observations of both arms.
//
// Description:
//
//	Checks distributional assumptions on both arms, selects the
//	appropriate two-sample test, and reports the outcome together with
//	the effect size, a confidence interval at level 1-alpha, and the
//	achieved power. The test statistic and effect size are oriented
//	test-minus-control: positive values mean the test arm sits above
//	the control arm.
//
// Inputs:
//   - control: Observations from the control arm. At least 8 required.
//   - test: Observations from the test arm. At least 8 required.
//   - spec: Experiment specification. Must pass Validate.
//
// Outputs:
//   - *Verdict: The full inference report.
//   - error: ErrInsufficientSamples on undersized arms,
//     ErrNumericInstability on degenerate data, or validation errors.
//
// Thread Safety: This method is safe for concurrent use.
func (e *Engine) Analyze(control, test []float64, spec Spec) (*Verdict, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(control) < minArmSamples || len(test) < minArmSamples {
		return nil, fmt.Errorf("%w: need at least %d observations per arm, got %d and %d",
			ErrInsufficientSamples, minArmSamples, len(control), len(test))
	}

	assumptions, err := stats.CheckAssumptions(
		control, test, e.assumptionThreshold, e.normalityCap, e.normalitySeed)
	if err != nil {
		return nil, mapStatsErr(err)
	}

	result, err := stats.Compare(control, test, assumptions)
	if err != nil {
		return nil, mapStatsErr(err)
	}

	effect, err := stats.CohenD(control, test)
	if err != nil {
		return nil, mapStatsErr(err)
	}

	ci, err := stats.MeanDifferenceCI(control, test, 1-spec.Alpha)
	if err != nil {
		return nil, mapStatsErr(err)
	}

	power := stats.AchievedPower(len(control), len(test), effect, spec.Alpha)

	verdict := Summarize(result, effect, ci, spec.Alpha)
	verdict.Assumptions = *assumptions
	verdict.Power = power

	e.logger.Debug("experiment analyzed",
		zap.String("experiment", spec.Name),
		zap.String("test", result.Kind.String()),
		zap.Float64("p_value", result.PValue),
		zap.Float64("effect", effect),
		zap.Bool("significant", verdict.Significant))

	return verdict, nil
}

// mapStatsErr translates statistics-layer sentinels into this package's
// error taxonomy.
func mapStatsErr(err error) error {
	switch {
	case errors.Is(err, stats.ErrZeroVariance):
		return fmt.Errorf("%w: %v", ErrNumericInstability, err)
	case errors.Is(err, stats.ErrInsufficientSamples):
		return fmt.Errorf("%w: %v", ErrInsufficientSamples, err)
	case errors.Is(err, stats.ErrDegenerateEffect):
		return fmt.Errorf("%w: %v", ErrDegenerateEffect, err)
	case errors.Is(err, stats.ErrInvalidParameter):
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	default:
		return err
	}
}
