// Copyright 2010-2024 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The knapsack_mip command solves a small 0/1 knapsack and prints the packed
// items and the solving statistics.
package main

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
	"github.com/mipforge/goscip/scip/go/scip"
	"google.golang.org/protobuf/encoding/protojson"
)

func knapsackMip() error {
	names := []string{"tent", "stove", "rope", "camera"}
	sizes := []float64{2, 3, 4, 5}
	values := []float64{3, 4, 5, 6}
	const capacity = 6

	m := scip.New(scip.WithOutput(false), scip.WithTimeLimit(10)).
		IncludeDefaultPlugins().
		CreateProblem("knapsack").
		SetObjSense(scip.Maximize)
	defer m.Close()

	items := make([]*scip.Variable, len(names))
	for i, name := range names {
		items[i] = m.AddVar(0, 1, values[i], name, scip.Binary)
	}
	m.AddCons(items, sizes, math.Inf(-1), capacity, "capacity")

	solved := m.Solve()
	if solved.Status() != scip.StatusOptimal {
		fmt.Println("No optimal solution found.")
		return nil
	}
	best := solved.BestSol()
	fmt.Printf("Total value: %v\n", solved.ObjVal())
	for i, v := range best.Values(items) {
		if v > 0.5 {
			fmt.Printf("  packed %s (size %v, value %v)\n", names[i], sizes[i], values[i])
		}
	}

	stats, err := solved.Statistics().Proto()
	if err != nil {
		return fmt.Errorf("failed to export the statistics: %w", err)
	}
	fmt.Println(protojson.Format(stats))
	return nil
}

func main() {
	if err := knapsackMip(); err != nil {
		log.Exitf("knapsackMip returned with error: %v", err)
	}
}
