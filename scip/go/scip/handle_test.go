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
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type refBalance struct {
	Live, Captures, Releases int64
}

func balanceOf(inst *instance) refBalance {
	return refBalance{
		Live:     int64(inst.live()),
		Captures: inst.counters.captures.Load(),
		Releases: inst.counters.releases.Load(),
	}
}

func TestHandle_ReferencesBalanced(t *testing.T) {
	m, items := newKnapsack(t)
	tune(t, m)
	inst := m.c.h.inst
	m.IncludeBranchRule(BranchRuleConfig{Priority: 1000000}, &firstFractional{})

	// Four variables and the capacity constraint.
	if diff := cmp.Diff(refBalance{Live: 5, Captures: 5}, balanceOf(inst)); diff != "" {
		t.Errorf("references after building returned with unexpected diff (-want+got):\n%s", diff)
	}

	solved := m.Solve()
	b := balanceOf(inst)
	if b.Live != 5 {
		t.Errorf("%d references live after solving, want the 5 owned by the problem", b.Live)
	}
	if b.Captures <= 5 {
		t.Errorf("%d captures after solving, want callback captures on top of the problem's 5", b.Captures)
	}
	if b.Captures-b.Releases != b.Live {
		t.Errorf("captures - releases = %d, want %d live references", b.Captures-b.Releases, b.Live)
	}

	items[0].Release()
	if got := inst.live(); got != 4 {
		t.Errorf("%d references live after Release(), want 4", got)
	}

	solved.Close()
	b = balanceOf(inst)
	if b.Live != 0 || b.Captures != b.Releases {
		t.Errorf("references after Close() = %+v, want every capture released", b)
	}
	if p := recovered(func() { items[1].Name() }); p == nil {
		t.Error("Name() on a variable of a closed model did not panic")
	}
}

func TestHandle_PluginsFreedWithInstance(t *testing.T) {
	m, _ := newKnapsack(t)
	inst := m.c.h.inst
	rule := &firstFractional{}
	m.IncludeBranchRule(BranchRuleConfig{}, rule).
		IncludeEventHandler(EventHandlerConfig{}, &incumbents{})
	if got, want := len(inst.regs), 2; got != want {
		t.Fatalf("%d plugins registered, want %d", got, want)
	}

	m.Close()
	if got := len(inst.regs); got != 0 {
		t.Errorf("%d plugins still registered after Close()", got)
	}
	if !rule.closed {
		t.Error("the branching rule was not closed with the instance")
	}
}

func TestHandle_AliasDoesNotClose(t *testing.T) {
	m := newProblem(t, "alias")
	h := m.c.h
	alias := h.alias()
	alias.Close()
	if h.inst.scip == nil {
		t.Fatal("closing an alias freed the instance")
	}
	if got, want := m.NVars(), 0; got != want {
		t.Errorf("NVars() = %d, want %d", got, want)
	}
	h.Close()
	h.Close()
	if p := recovered(func() { m.NVars() }); p == nil {
		t.Error("NVars() after Close() did not panic")
	}
}

func TestHandle_IndependentInstances(t *testing.T) {
	const n = 32
	objs := make([]float64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, _ := newKnapsack(t)
			objs[i] = m.Solve().ObjVal()
		}(i)
	}
	wg.Wait()

	want := make([]float64, n)
	for i := range want {
		want[i] = 8
	}
	if diff := cmp.Diff(want, objs, approx); diff != "" {
		t.Errorf("concurrent solves returned with unexpected diff (-want+got):\n%s", diff)
	}
}
