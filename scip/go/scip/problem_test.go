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

func TestProblem_Knapsack(t *testing.T) {
	m, items := newKnapsack(t)
	solved := m.Solve()
	if got, want := solved.Status(), StatusOptimal; got != want {
		t.Fatalf("Solve() returned status = %v, want %v", got, want)
	}
	if diff := cmp.Diff(8.0, solved.ObjVal(), approx); diff != "" {
		t.Errorf("ObjVal() returned with unexpected diff (-want+got):\n%s", diff)
	}
	got := solved.BestSol().Values(items)
	if diff := cmp.Diff([]float64{1, 0, 1, 0}, got, approx); diff != "" {
		t.Errorf("BestSol().Values() returned with unexpected diff (-want+got):\n%s", diff)
	}
	var size float64
	for i, s := range []float64{2, 3, 4, 5} {
		size += s * got[i]
	}
	if size > 6+1e-6 {
		t.Errorf("packed size = %v, want at most 6", size)
	}
}

func TestProblem_ConstraintKinds(t *testing.T) {
	testCases := []struct {
		name  string
		build func(m *ProblemModel)
		want  float64
		tol   float64
	}{
		{
			name: "set cover and partition",
			build: func(m *ProblemModel) {
				x := m.AddVar(0, 1, 1, "x", Binary)
				y := m.AddVar(0, 1, 2, "y", Binary)
				z := m.AddVar(0, 1, 3, "z", Binary)
				m.AddConsSetCover([]*Variable{x, y, z}, "cover")
				m.AddConsSetPart([]*Variable{y, z}, "part")
				m.AddConsSetPack([]*Variable{x, y}, "pack")
			},
			want: 2,
		},
		{
			name: "cardinality",
			build: func(m *ProblemModel) {
				m.SetObjSense(Maximize)
				vars := []*Variable{
					m.AddVar(0, 1, 1, "x", Continuous),
					m.AddVar(0, 1, 1, "y", Continuous),
					m.AddVar(0, 1, 1, "z", Continuous),
				}
				m.AddConsCardinality(vars, 2, "card")
			},
			want: 2,
		},
		{
			name: "indicator",
			build: func(m *ProblemModel) {
				b := m.AddVar(1, 1, 0, "b", Binary)
				x := m.AddVar(0, 10, -1, "x", Continuous)
				m.AddConsIndicator(b, []*Variable{x}, []float64{1}, 2, "ind")
			},
			want: -2,
		},
		{
			name: "quadratic",
			build: func(m *ProblemModel) {
				x := m.AddVar(0, 10, 1, "x", Continuous)
				y := m.AddVar(0, 10, 1, "y", Continuous)
				m.AddConsQuadratic(nil, nil, []QuadTerm{{X: x, Y: y, Coef: 1}}, 4, math.Inf(1), "xy")
			},
			want: 4,
			tol:  1e-3,
		},
		{
			name: "coefficients added later",
			build: func(m *ProblemModel) {
				m.SetObjSense(Maximize)
				x := m.AddVar(0, 10, 1, "x", Continuous)
				y := m.AddVar(0, 1, 1, "y", Binary)
				lin := m.AddCons(nil, nil, math.Inf(-1), 5, "lin")
				m.AddConsCoef(lin, x, 1)
				pack := m.AddConsSetPack(nil, "pack")
				m.AddConsCoefSetppc(pack, y)
			},
			want: 6,
		},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			m := newProblem(t, test.name)
			test.build(m)
			solved := m.Solve()
			if got, want := solved.Status(), StatusOptimal; got != want {
				t.Fatalf("Solve() returned status = %v, want %v", got, want)
			}
			opt := approx
			if test.tol != 0 {
				opt = cmpopts.EquateApprox(0, test.tol)
			}
			if diff := cmp.Diff(test.want, solved.ObjVal(), opt); diff != "" {
				t.Errorf("ObjVal() returned with unexpected diff (-want+got):\n%s", diff)
			}
		})
	}
}

func TestProblem_StartingSolution(t *testing.T) {
	m, items := newKnapsack(t)

	infeasible := m.CreateOrigSol()
	for _, v := range items {
		infeasible.SetVal(v, 1)
	}
	if m.AddSol(infeasible) {
		t.Error("AddSol() accepted a solution exceeding the capacity")
	}

	sol := m.CreateOrigSol()
	sol.SetVal(items[1], 1)
	if !sol.IsOriginal() {
		t.Error("IsOriginal() = false for a solution created by CreateOrigSol()")
	}
	if diff := cmp.Diff(4.0, sol.ObjVal(), approx); diff != "" {
		t.Errorf("ObjVal() of the starting solution returned with unexpected diff (-want+got):\n%s", diff)
	}
	if !m.AddSol(sol) {
		t.Fatal("AddSol() rejected a feasible solution")
	}
	if p := recovered(func() { sol.Val(items[0]) }); p == nil {
		t.Error("a solution consumed by AddSol() is still usable")
	}

	solved := m.Solve()
	if got := solved.NSols(); got < 1 {
		t.Errorf("NSols() = %d, want at least 1", got)
	}
	sols := solved.Sols()
	if !sols[0].Equal(solved.BestSol()) {
		t.Error("Sols()[0] is not the best solution")
	}
	if p := recovered(func() { sols[0].SetVal(items[0], 0) }); p == nil {
		t.Error("SetVal() on a solution owned by the engine did not panic")
	}
}

func TestProblem_Entities(t *testing.T) {
	m := newProblem(t, "entities")
	x := m.AddVar(-1, 2.5, 3, "x", Continuous)
	y := m.AddVar(0, math.Inf(1), 0, "y", Integer)
	c := m.AddCons([]*Variable{x, y}, []float64{1, 1}, 1, math.Inf(1), "c")

	if got, want := x.Name(), "x"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	type bounds struct{ Lb, Ub, Obj float64 }
	if diff := cmp.Diff(bounds{-1, 2.5, 3}, bounds{x.LbOriginal(), x.UbOriginal(), x.Obj()}); diff != "" {
		t.Errorf("bounds of x returned with unexpected diff (-want+got):\n%s", diff)
	}
	if got := y.UbGlobal(); !math.IsInf(got, 1) {
		t.Errorf("UbGlobal() = %v, want +Inf", got)
	}
	if got, want := y.Type(), Integer; got != want {
		t.Errorf("Type() = %v, want %v", got, want)
	}
	if !x.IsOriginal() || x.IsTransformed() {
		t.Error("a variable of the problem is not original")
	}
	if got, want := x.Status(), VarOriginal; got != want {
		t.Errorf("Status() = %v, want %v", got, want)
	}

	vars := m.Vars()
	if !vars[0].Equal(x) || vars[0].Equal(y) {
		t.Error("Vars()[0] does not equal x alone")
	}
	if !m.FindCons("c").Equal(c) {
		t.Error(`FindCons("c") does not equal c`)
	}
	if m.FindCons("missing") != nil {
		t.Error(`FindCons("missing") != nil`)
	}

	m.SetConsModifiable(c, true)
	m.SetConsRemovable(c, true)
	if !c.IsModifiable() || !c.IsRemovable() {
		t.Error("constraint flags were not set")
	}

	vars[0].Release()
	vars[0].Release()
	if p := recovered(func() { vars[0].Name() }); p == nil {
		t.Error("Name() on a released variable did not panic")
	}
	if got := x.Name(); got != "x" {
		t.Errorf("Name() on another view of a released variable = %q, want %q", got, "x")
	}

	if p := recovered(func() { m.AddCons([]*Variable{x}, nil, 0, 1, "bad") }); p == nil {
		t.Error("AddCons() with mismatched coefficients did not panic")
	}
}
