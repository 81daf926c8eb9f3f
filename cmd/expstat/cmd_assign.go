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
	"github.com/AleutianAI/expstat/pkg/experiment/bucket"
)

type assignment struct {
	SubjectID string     `json:"subject_id"`
	Arm       bucket.Arm `json:"arm"`
}

func runAssign(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(specPath)
	if err != nil {
		return err
	}

	engine := experiment.NewEngine(experiment.WithLogger(logger))

	assignments := make([]assignment, 0, len(args))
	for _, subjectID := range args {
		arm, err := engine.Assign(subjectID, spec)
		if err != nil {
			return err
		}
		assignments = append(assignments, assignment{SubjectID: subjectID, Arm: arm})
	}

	if jsonOutput {
		return printJSON(assignments)
	}

	for _, a := range assignments {
		fmt.Printf("%s\t%s\n", a.SubjectID, a.Arm)
	}
	return nil
}
