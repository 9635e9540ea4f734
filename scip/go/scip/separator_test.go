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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// conflictCut adds the knapsack conflict itemb + itemc <= 1 once.
type conflictCut struct {
	b, c   *Variable
	calls  int
	added  bool
	origin RowOrigin
	name   string
}

func (s *conflictCut) ExecuteLP(m *SolvingModel) SeparationResult {
	s.calls++
	if s.added {
		return SepaDidNotFind
	}
	row := m.CreateRow("conflict-bc", math.Inf(-1), 1, false, false, true)
	row.AddVar(s.b, 1)
	row.AddVar(s.c, 1)
	s.origin, s.name = row.Origin(), row.Name()
	s.added = true
	if m.AddCut(row, false) {
		return SepaCutoff
	}
	return SepaSeparated
}

// newSeparating returns the knapsack with presolving and heuristics off, so
// that separators see the fractional root LP.
func newSeparating(t *testing.T) (*ProblemModel, []*Variable) {
	t.Helper()
	m, items := newKnapsack(t)
	for name, set := range map[string]func(ParamSetting) error{
		"presolving": m.SetPresolving,
		"heuristics": m.SetHeuristics,
	} {
		if err := set(ParamOff); err != nil {
			t.Fatalf("turning off %s: %v", name, err)
		}
	}
	return m, items
}

func TestSeparator_AddCut(t *testing.T) {
	m, items := newSeparating(t)
	sepa := &conflictCut{b: items[1], c: items[2]}
	m.IncludeSeparator(SeparatorConfig{Name: "conflict", Priority: 1000000}, sepa)

	solved := m.Solve()
	if diff := cmp.Diff(8.0, solved.ObjVal(), approx); diff != "" {
		t.Errorf("ObjVal() returned with unexpected diff (-want+got):\n%s", diff)
	}
	if sepa.calls == 0 {
		t.Fatal("the separator was never called")
	}
	if got, want := sepa.origin, RowSeparator; got != want {
		t.Errorf("Origin() of a row created by a separator = %v, want %v", got, want)
	}
	if got, want := sepa.name, "conflict-bc"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

// sepaFunc adapts a function to Separator.
type sepaFunc func(m *SolvingModel) SeparationResult

func (f sepaFunc) ExecuteLP(m *SolvingModel) SeparationResult {
	return f(m)
}

func TestSeparator_ContractViolations(t *testing.T) {
	testCases := []struct {
		name   string
		sepa   sepaFunc
		reason string
	}{
		{
			name:   "separated",
			sepa:   func(m *SolvingModel) SeparationResult { return SepaSeparated },
			reason: "Separated returned but no cut was added",
		},
		{
			name: "separated with an unused row",
			sepa: func(m *SolvingModel) SeparationResult {
				m.CreateRow("unused", math.Inf(-1), 1, false, false, true)
				return SepaSeparated
			},
			reason: "Separated returned but no cut was added",
		},
		{
			name:   "cons added",
			sepa:   func(m *SolvingModel) SeparationResult { return SepaConsAdded },
			reason: "ConsAdded returned but no constraint was added",
		},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			m, _ := newSeparating(t)
			m.IncludeSeparator(SeparatorConfig{Name: "bad", Priority: 1000000}, test.sepa)

			v, ok := recovered(func() { m.Solve() }).(*ContractViolation)
			if !ok {
				t.Fatal("Solve() did not panic with a *ContractViolation")
			}
			want := &ContractViolation{Plugin: "bad", Kind: "separator", Reason: test.reason}
			if diff := cmp.Diff(want, v, cmpopts.IgnoreFields(ContractViolation{}, "Cause")); diff != "" {
				t.Errorf("Solve() panicked with unexpected diff (-want+got):\n%s", diff)
			}
		})
	}
}

func TestSeparationResult_String(t *testing.T) {
	for r, want := range map[SeparationResult]string{
		SepaDidNotRun:        "DidNotRun",
		SepaSeparated:        "Separated",
		SepaReducedDomain:    "ReducedDomain",
		SepaNewRound:         "NewRound",
		SeparationResult(42): "SeparationResult(42)",
	} {
		if got := r.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
