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

// cheapColumn adds a single column of cost 1 to the covering constraint the
// first time it is called.
type cheapColumn struct {
	cover *Constraint
	calls int
	added bool
	// farkas counts the Farkas pricing rounds.
	farkas int
	dual   float64
}

func (p *cheapColumn) GenerateColumns(m *SolvingModel, farkas bool) PricerResult {
	p.calls++
	if farkas {
		p.farkas++
	}
	if p.added {
		return PricerResult{State: PricerNoColumns}.WithLowerBound(0)
	}
	p.dual = p.cover.Dual()
	v := m.AddPricedVar(0, math.Inf(1), 1, "lambda1", Continuous)
	m.AddConsCoef(p.cover, v, 1)
	p.added = true
	return PricerResult{State: PricerFoundColumns}
}

// newCovering builds min 10*lambda0 s.t. lambda0 >= 1, with the covering
// constraint open to new columns.
func newCovering(t *testing.T) (*ProblemModel, *Constraint) {
	t.Helper()
	m := newProblem(t, "covering")
	if err := m.SetPresolving(ParamOff); err != nil {
		t.Fatalf("SetPresolving() returned with unexpected error %v", err)
	}
	l0 := m.AddVar(0, math.Inf(1), 10, "lambda0", Continuous)
	cover := m.AddCons([]*Variable{l0}, []float64{1}, 1, math.Inf(1), "cover")
	m.SetConsModifiable(cover, true)
	return m, cover
}

func TestPricer_GenerateColumns(t *testing.T) {
	m, cover := newCovering(t)
	p := &cheapColumn{cover: cover}
	m.IncludePricer(PricerConfig{Name: "cheap"}, p)

	solved := m.Solve()
	if got, want := solved.Status(), StatusOptimal; got != want {
		t.Fatalf("Solve() returned status = %v, want %v", got, want)
	}
	if diff := cmp.Diff(1.0, solved.ObjVal(), approx); diff != "" {
		t.Errorf("ObjVal() returned with unexpected diff (-want+got):\n%s", diff)
	}
	if p.calls < 2 {
		t.Errorf("pricer called %d times, want at least 2", p.calls)
	}
	if p.farkas != 0 {
		t.Errorf("Farkas pricing ran %d times on a feasible LP", p.farkas)
	}
	if diff := cmp.Diff(10.0, p.dual, approx); diff != "" {
		t.Errorf("Dual() of the covering constraint returned with unexpected diff (-want+got):\n%s", diff)
	}
}

// pricerFunc adapts a function to Pricer.
type pricerFunc func(m *SolvingModel, farkas bool) PricerResult

func (f pricerFunc) GenerateColumns(m *SolvingModel, farkas bool) PricerResult {
	return f(m, farkas)
}

func TestPricer_FoundColumnsWithoutColumn(t *testing.T) {
	m, _ := newCovering(t)
	m.IncludePricer(PricerConfig{Name: "liar"}, pricerFunc(func(m *SolvingModel, farkas bool) PricerResult {
		return PricerResult{State: PricerFoundColumns}
	}))

	v, ok := recovered(func() { m.Solve() }).(*ContractViolation)
	if !ok {
		t.Fatal("Solve() did not panic with a *ContractViolation")
	}
	want := &ContractViolation{
		Plugin: "liar",
		Kind:   "pricer",
		Reason: "FoundColumns returned but the variable count went from 1 to 1",
	}
	if diff := cmp.Diff(want, v, cmpopts.IgnoreFields(ContractViolation{}, "Cause")); diff != "" {
		t.Errorf("Solve() panicked with unexpected diff (-want+got):\n%s", diff)
	}
}

func TestPricerState_String(t *testing.T) {
	testCases := []struct {
		state PricerState
		want  string
	}{
		{PricerDidNotRun, "DidNotRun"},
		{PricerFoundColumns, "FoundColumns"},
		{PricerNoColumns, "NoColumns"},
		{PricerStopEarly, "StopEarly"},
		{PricerState(9), "PricerState(9)"},
	}
	for _, test := range testCases {
		if got := test.state.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}
