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

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AleutianAI/expstat/pkg/experiment"
)

// report wraps a verdict with identifiers so runs can be archived and
// referenced later.
type report struct {
	ReportID   string `json:"report_id"`
	Experiment string `json:"experiment"`
	*experiment.Verdict
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(specPath)
	if err != nil {
		return err
	}

	control, err := loadSamples(controlPath)
	if err != nil {
		return err
	}
	test, err := loadSamples(testPath)
	if err != nil {
		return err
	}

	engine := experiment.NewEngine(
		experiment.WithLogger(logger),
		experiment.WithNormalitySeed(normalitySeed),
	)
	verdict, err := engine.Analyze(control, test, spec)
	if err != nil {
		return err
	}

	rep := report{
		ReportID:   uuid.NewString(),
		Experiment: spec.Name,
		Verdict:    verdict,
	}
	logger.Info("analysis complete",
		zap.String("report_id", rep.ReportID),
		zap.String("experiment", spec.Name))

	if jsonOutput {
		return printJSON(rep)
	}

	fmt.Printf("Report: %s\n\n", rep.ReportID)
	fmt.Println(verdict.Summary())
	return nil
}
