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

// The column_generation command computes the LP bound of a cutting stock
// problem, generating cutting patterns with a pricer.
package main

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
	"github.com/mipforge/goscip/scip/go/scip"
)

const rollWidth = 10

var (
	widths  = []int{3, 4, 5}
	demands = []float64{5, 3, 2}
)

type pattern struct {
	counts []int
	x      *scip.Variable
}

// patternPricer solves a knapsack over the piece widths, valued by the
// duals of the demand constraints.
type patternPricer struct {
	demand   []*scip.Constraint
	patterns []*pattern
}

func (p *patternPricer) GenerateColumns(m *scip.SolvingModel, farkas bool) scip.PricerResult {
	if farkas {
		// The initial patterns cover every demand.
		return scip.PricerResult{State: scip.PricerDidNotRun}
	}
	duals := make([]float64, len(p.demand))
	for i, c := range p.demand {
		duals[i] = c.Dual()
	}
	counts, value := bestPattern(duals)
	if value <= 1+1e-6 {
		return scip.PricerResult{State: scip.PricerNoColumns}
	}
	x := m.AddPricedVar(0, math.Inf(1), 1, fmt.Sprintf("pattern_%d", len(p.patterns)), scip.Continuous)
	for i, n := range counts {
		if n > 0 {
			m.AddConsCoef(p.demand[i], x, float64(n))
		}
	}
	p.patterns = append(p.patterns, &pattern{counts: counts, x: x})
	log.V(1).Infof("new pattern %v with reduced cost %.4f", counts, 1-value)
	return scip.PricerResult{State: scip.PricerFoundColumns}
}

// bestPattern returns the piece counts fitting in a roll that maximize the
// total dual value.
func bestPattern(duals []float64) ([]int, float64) {
	best := make([]float64, rollWidth+1)
	last := make([]int, rollWidth+1)
	for w := range last {
		last[w] = -1
	}
	for w := 1; w <= rollWidth; w++ {
		best[w], last[w] = best[w-1], -1
		for i, pw := range widths {
			if pw <= w && best[w-pw]+duals[i] > best[w] {
				best[w], last[w] = best[w-pw]+duals[i], i
			}
		}
	}
	counts := make([]int, len(widths))
	for w := rollWidth; w > 0; {
		if i := last[w]; i >= 0 {
			counts[i]++
			w -= widths[i]
		} else {
			w--
		}
	}
	return counts, best[rollWidth]
}

func columnGeneration() error {
	m := scip.New(scip.WithOutput(false)).IncludeDefaultPlugins().CreateProblem("cutting_stock")
	defer m.Close()
	if err := m.SetPresolving(scip.ParamOff); err != nil {
		return fmt.Errorf("failed to turn presolving off: %w", err)
	}

	pricer := &patternPricer{}
	for i, w := range widths {
		counts := make([]int, len(widths))
		counts[i] = rollWidth / w
		x := m.AddVar(0, math.Inf(1), 1, fmt.Sprintf("single_%d", w), scip.Continuous)
		pricer.patterns = append(pricer.patterns, &pattern{counts: counts, x: x})
		c := m.AddCons([]*scip.Variable{x}, []float64{float64(counts[i])}, demands[i], math.Inf(1),
			fmt.Sprintf("demand_%d", w))
		m.SetConsModifiable(c, true)
		pricer.demand = append(pricer.demand, c)
	}
	m.IncludePricer(scip.PricerConfig{Name: "patterns", Desc: "knapsack pattern generator"}, pricer)

	solved := m.Solve()
	if solved.Status() != scip.StatusOptimal {
		fmt.Println("The LP bound was not computed.")
		return nil
	}
	fmt.Printf("LP bound on the number of rolls: %.4f\n", solved.ObjVal())
	best := solved.BestSol()
	for _, p := range pricer.patterns {
		if v := best.Val(p.x); v > 1e-6 {
			fmt.Printf("  %.4f x %v\n", v, p.counts)
		}
	}
	return nil
}

func main() {
	if err := columnGeneration(); err != nil {
		log.Exitf("columnGeneration returned with error: %v", err)
	}
}
