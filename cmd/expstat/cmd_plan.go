// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/expstat/pkg/experiment"
)

func runPlan(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(specPath)
	if err != nil {
		return err
	}

	engine := experiment.NewEngine(experiment.WithLogger(logger))
	plan, err := engine.Plan(spec)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(plan)
	}

	fmt.Printf("Experiment: %s\n", spec.Name)
	fmt.Printf("Metric: %s\n", spec.Metric)
	if plan.BaselineMean != 0 {
		fmt.Printf("Baseline mean: %.4f\n", plan.BaselineMean)
	}
	fmt.Printf("Standardized effect: %.4f\n", plan.Effect)
	fmt.Printf("Required control arm: %d\n", plan.ControlSize)
	fmt.Printf("Required test arm: %d\n", plan.TestSize)
	fmt.Printf("Required total: %d\n", plan.Total)
	return nil
}
