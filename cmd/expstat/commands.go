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

import "github.com/spf13/cobra"

var (
	// Shared flags.
	specPath   string
	jsonOutput bool

	// Analyze flags.
	controlPath   string
	testPath      string
	normalitySeed int64

	rootCmd = &cobra.Command{
		Use:   "expstat",
		Short: "Size, assign, and analyze two-arm experiments",
		Long: `expstat drives the lifecycle of a two-arm experiment from one
				spec file: sample sizing before launch, deterministic subject
				assignment while it runs, and statistical inference afterward.`,
		SilenceUsage: true,
	}

	// --- Planning ---
	planCmd = &cobra.Command{
		Use:   "plan",
		Short: "Compute the sample sizes required by the experiment spec",
		RunE:  runPlan, // Defined in cmd_plan.go
	}

	// --- Assignment ---
	assignCmd = &cobra.Command{
		Use:   "assign [subject_id...]",
		Short: "Deterministically assign subjects to experiment arms",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAssign, // Defined in cmd_assign.go
	}

	// --- Analysis ---
	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Run statistical inference over collected observations",
		RunE:  runAnalyze, // Defined in cmd_analyze.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&specPath, "spec", "s", "experiment.yaml",
		"Path to the experiment spec file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Emit machine-readable JSON instead of text")

	analyzeCmd.Flags().StringVar(&controlPath, "control", "",
		"Path to a JSON array of control arm observations")
	analyzeCmd.Flags().StringVar(&testPath, "test", "",
		"Path to a JSON array of test arm observations")
	analyzeCmd.Flags().Int64Var(&normalitySeed, "seed", 1,
		"Seed for normality subsampling on oversized arms")
	analyzeCmd.MarkFlagRequired("control")
	analyzeCmd.MarkFlagRequired("test")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(analyzeCmd)
}
