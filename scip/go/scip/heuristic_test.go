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

package scip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// heurFunc adapts a function to Heuristic.
type heurFunc func(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult

func (f heurFunc) Execute(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult {
	return f(m, timing, nodeInfeasible)
}

func TestHeuristic_FoundSol(t *testing.T) {
	m, items := newKnapsack(t)
	tune(t, m)
	calls, found := 0, 0
	var timings []HeurTiming
	m.IncludeHeuristic(HeuristicConfig{Name: "packer", Freq: -1}, heurFunc(
		func(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult {
			calls++
			timings = append(timings, timing)
			if found > 0 {
				return HeurNoSolFound
			}
			sol := m.CreateSol()
			sol.SetVal(items[0], 1)
			sol.SetVal(items[2], 1)
			if !m.AddSol(sol) {
				return HeurNoSolFound
			}
			found++
			return HeurFoundSol
		}))

	solved := m.Solve()
	if calls == 0 {
		t.Fatal("the heuristic was never called")
	}
	if found != 1 {
		t.Errorf("the heuristic stored %d solutions, want 1", found)
	}
	for _, timing := range timings {
		if timing != BeforeNode {
			t.Errorf("heuristic called at timing %#x, want %#x", timing, BeforeNode)
		}
	}
	if diff := cmp.Diff(8.0, solved.ObjVal(), approx); diff != "" {
		t.Errorf("ObjVal() returned with unexpected diff (-want+got):\n%s", diff)
	}
}

func TestHeuristic_FoundSolWithoutSolution(t *testing.T) {
	m, _ := newKnapsack(t)
	tune(t, m)
	m.IncludeHeuristic(HeuristicConfig{Name: "liar"}, heurFunc(
		func(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult {
			// The created solution is dropped when the callback returns.
			m.CreateSol()
			return HeurFoundSol
		}))

	v, ok := recovered(func() { m.Solve() }).(*ContractViolation)
	if !ok {
		t.Fatal("Solve() did not panic with a *ContractViolation")
	}
	want := &ContractViolation{Plugin: "liar", Kind: "heuristic", Reason: "FoundSol returned but no solution was accepted"}
	if diff := cmp.Diff(want, v, cmpopts.IgnoreFields(ContractViolation{}, "Cause")); diff != "" {
		t.Errorf("Solve() panicked with unexpected diff (-want+got):\n%s", diff)
	}
}

func TestHeuristic_SolutionDroppedWithScope(t *testing.T) {
	m, items := newKnapsack(t)
	tune(t, m)
	var kept *Solution
	m.IncludeHeuristic(HeuristicConfig{Name: "keeper", Freq: -1}, heurFunc(
		func(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult {
			kept = m.CreateSol()
			return HeurNoSolFound
		}))

	m.Solve()
	if kept == nil {
		t.Fatal("the heuristic was never called")
	}
	if p := recovered(func() { kept.Val(items[0]) }); p == nil {
		t.Error("a solution created in a returned callback is still usable")
	}
}

func TestHeuristic_AddVar(t *testing.T) {
	m, _ := newKnapsack(t)
	tune(t, m)
	var before, after int
	var transformed bool
	m.IncludeHeuristic(HeuristicConfig{Name: "extender", Freq: -1}, heurFunc(
		func(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult {
			before = m.NVars()
			v := m.AddVar(0, 1, 0, "spare", Binary)
			after = m.NVars()
			transformed = v.IsTransformed()
			return HeurDidNotRun
		}))

	solved := m.Solve()
	if after != before+1 {
		t.Errorf("NVars() went from %d to %d after AddVar(), want one more", before, after)
	}
	if !transformed {
		t.Error("a variable added during solving is not transformed")
	}
	if diff := cmp.Diff(8.0, solved.ObjVal(), approx); diff != "" {
		t.Errorf("ObjVal() returned with unexpected diff (-want+got):\n%s", diff)
	}
}

func TestHeuristic_NegativeFreqRunsAtRoot(t *testing.T) {
	m, _ := newKnapsack(t)
	tune(t, m)
	m.IncludeBranchRule(BranchRuleConfig{Priority: 1000000}, &firstFractional{})
	var depths []int
	m.IncludeHeuristic(HeuristicConfig{Name: "root-only", Freq: -1}, heurFunc(
		func(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult {
			depths = append(depths, m.FocusNode().Depth())
			return HeurDidNotRun
		}))

	solved := m.Solve()
	if solved.Statistics().NNodes < 2 {
		t.Fatalf("the search ended at the root, NNodes = %d", solved.Statistics().NNodes)
	}
	if diff := cmp.Diff([]int{0}, depths); diff != "" {
		t.Errorf("heuristic call depths returned with unexpected diff (-want+got):\n%s", diff)
	}
}
