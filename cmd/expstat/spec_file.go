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
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/expstat/pkg/experiment"
)

// loadSpec reads and validates an experiment spec. Fields absent from the
// file keep the conventional defaults (alpha 0.05, power 0.80, even split).
func loadSpec(path string) (experiment.Spec, error) {
	spec := experiment.DefaultSpec()

	raw, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("reading spec %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return spec, fmt.Errorf("parsing spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("spec %s: %w", path, err)
	}
	return spec, nil
}

// loadSamples reads a JSON array of observations.
func loadSamples(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading samples %s: %w", path, err)
	}
	var samples []float64
	if err := json.Unmarshal(raw, &samples); err != nil {
		return nil, fmt.Errorf("parsing samples %s: %w", path, err)
	}
	return samples, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
