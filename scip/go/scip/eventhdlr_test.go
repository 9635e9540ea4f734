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
)

// nodeCounter counts solved nodes and keeps the views it was handed.
type nodeCounter struct {
	solved  int
	numbers map[int64]bool
	foreign int
	lastM   *SolvingModel
	lastEv  *Event
}

func (h *nodeCounter) EventMask() EventMask {
	return EventNodeSolved
}

func (h *nodeCounter) Execute(m *SolvingModel, ev *Event) {
	if !ev.Type().Intersects(EventNodeSolved) {
		h.foreign++
		return
	}
	h.solved++
	if n := ev.Node(); n != nil {
		h.numbers[n.Number()] = true
	}
	h.lastM, h.lastEv = m, ev
}

func TestEventHandler_NodeSolved(t *testing.T) {
	m, _ := newKnapsack(t)
	tune(t, m)
	h := &nodeCounter{numbers: make(map[int64]bool)}
	m.IncludeEventHandler(EventHandlerConfig{Name: "nodes"}, h)

	solved := m.Solve()
	if h.solved == 0 {
		t.Fatal("no node solved event was delivered")
	}
	if h.foreign != 0 {
		t.Errorf("%d events outside the mask were delivered", h.foreign)
	}
	if len(h.numbers) == 0 {
		t.Error("node solved events carried no node")
	}
	if got, max := int64(h.solved), solved.Statistics().NNodes; got > max {
		t.Errorf("%d node solved events for %d nodes", got, max)
	}

	want := &PhaseError{Phase: PhaseSolving, Reason: "used after its callback returned"}
	if diff := cmp.Diff(want, recovered(func() { h.lastM.NVars() })); diff != "" {
		t.Errorf("NVars() on a stored model panicked with unexpected diff (-want+got):\n%s", diff)
	}
	if diff := cmp.Diff(want, recovered(func() { h.lastEv.Type() })); diff != "" {
		t.Errorf("Type() on a stored event panicked with unexpected diff (-want+got):\n%s", diff)
	}
}

// incumbents records the objective of every improving solution.
type incumbents struct {
	objs []float64
}

func (h *incumbents) EventMask() EventMask {
	return EventBestSolFound
}

func (h *incumbents) Execute(m *SolvingModel, ev *Event) {
	if sol := ev.Sol(); sol != nil {
		h.objs = append(h.objs, sol.ObjVal())
	}
}

func TestEventHandler_BestSolFound(t *testing.T) {
	m, _ := newKnapsack(t)
	h := &incumbents{}
	m.IncludeEventHandler(EventHandlerConfig{}, h)

	solved := m.Solve()
	if len(h.objs) == 0 {
		t.Fatal("no best solution event was delivered")
	}
	for i := 1; i < len(h.objs); i++ {
		if h.objs[i] < h.objs[i-1] {
			t.Errorf("incumbent objective went from %v to %v while maximizing", h.objs[i-1], h.objs[i])
		}
	}
	if diff := cmp.Diff(solved.ObjVal(), h.objs[len(h.objs)-1], approx); diff != "" {
		t.Errorf("last incumbent returned with unexpected diff (-want+got):\n%s", diff)
	}
}

func TestEventMask(t *testing.T) {
	if !EventNodeEvent.Has(EventNodeSolved) {
		t.Error("EventNodeEvent does not contain EventNodeSolved")
	}
	if EventNodeSolved.Has(EventNodeEvent) {
		t.Error("EventNodeSolved contains EventNodeEvent")
	}
	if EventVarEvent.Intersects(EventSolEvent) {
		t.Error("variable and solution events intersect")
	}
	if EventBoundChanged.Has(EventDisabled) {
		t.Error("Has(EventDisabled) = true")
	}
}

// stopper interrupts the solve after the first solved node.
type stopper struct {
	calls int
}

func (s *stopper) EventMask() EventMask {
	return EventNodeSolved
}

func (s *stopper) Execute(m *SolvingModel, ev *Event) {
	s.calls++
	m.Interrupt()
}

func TestEventHandler_Interrupt(t *testing.T) {
	m, _ := newKnapsack(t)
	tune(t, m)
	// Force branching so that the search does not end at the root.
	m.IncludeBranchRule(BranchRuleConfig{Priority: 1000000}, &firstFractional{})
	s := &stopper{}
	m.IncludeEventHandler(EventHandlerConfig{Name: "stopper"}, s)

	solved := m.Solve()
	if s.calls == 0 {
		t.Fatal("no node solved event was delivered")
	}
	if got, want := solved.Status(), StatusUserInterrupt; got != want {
		t.Errorf("Status() of an interrupted solve = %v, want %v", got, want)
	}
}
