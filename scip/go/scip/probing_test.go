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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProber_Nodes(t *testing.T) {
	m, items := newKnapsack(t)
	tune(t, m)
	type probingState struct {
		InProbing         bool
		Depths            []int
		UbFixed, UbAfter  float64
		ValA              float64
		Cutoff            bool
		BadBacktrackPanic bool
		InProbingAfter    bool
	}
	var got probingState
	var probingErr error
	solved := atRootLP(t, m, func(m *SolvingModel) {
		probingErr = m.Probe(func(p *Prober) error {
			got.InProbing = m.InProbing()
			got.Depths = append(got.Depths, p.Depth())
			p.NewNode()
			got.Depths = append(got.Depths, p.Depth())
			p.FixVar(items[0], 0)
			got.UbFixed = items[0].UbLocal()
			if cutoff, _ := p.Propagate(-1); cutoff {
				return errors.New("propagation cut the probing node off")
			}
			cutoff, err := p.SolveLP(-1)
			if err != nil {
				return err
			}
			got.Cutoff = cutoff
			got.ValA = m.CurrentVal(items[0])
			got.BadBacktrackPanic = recovered(func() { p.Backtrack(5) }) != nil
			p.Backtrack(0)
			got.Depths = append(got.Depths, p.Depth())
			got.UbAfter = items[0].UbLocal()
			return nil
		})
		got.InProbingAfter = m.InProbing()
	})
	if probingErr != nil {
		t.Fatalf("Probe() returned with unexpected error %v", probingErr)
	}
	want := probingState{
		InProbing:         true,
		Depths:            []int{0, 1, 0},
		UbFixed:           0,
		UbAfter:           1,
		BadBacktrackPanic: true,
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("probing returned with unexpected diff (-want+got):\n%s", diff)
	}
	if diff := cmp.Diff(8.0, solved.ObjVal(), approx); diff != "" {
		t.Errorf("ObjVal() after probing returned with unexpected diff (-want+got):\n%s", diff)
	}
}

func TestProber_ScopedModes(t *testing.T) {
	m, items := newKnapsack(t)
	tune(t, m)
	var (
		nestedErr      error
		objChanged     bool
		obj            float64
		inProbingAfter bool
		leaked         *Prober
	)
	atRootLP(t, m, func(m *SolvingModel) {
		p, err := m.StartProbing()
		if err != nil {
			t.Errorf("StartProbing() returned with unexpected error %v", err)
			return
		}
		_, nestedErr = m.StartProbing()
		p.ChgVarObj(items[1], 0)
		objChanged, obj = p.IsObjChanged(), p.VarObj(items[1])
		p.End()
		p.End()
		inProbingAfter = m.InProbing()

		// Probing left open is ended when the callback returns.
		leaked, _ = m.StartProbing()
	})
	if !errors.Is(nestedErr, RetcodeInvalidCall) {
		t.Errorf("nested StartProbing() returned %v, want %v", nestedErr, RetcodeInvalidCall)
	}
	if !objChanged || obj != 0 {
		t.Errorf("after ChgVarObj() IsObjChanged() = %v and VarObj() = %v, want true and 0", objChanged, obj)
	}
	if inProbingAfter {
		t.Error("InProbing() = true after End()")
	}
	if leaked == nil || !leaked.ended {
		t.Error("probing left open was not ended with its callback")
	}
}

func TestProber_PanicEndsProbing(t *testing.T) {
	m, items := newKnapsack(t)
	tune(t, m)
	var (
		p              any
		inProbingAfter bool
	)
	solved := atRootLP(t, m, func(m *SolvingModel) {
		p = recovered(func() {
			m.Probe(func(p *Prober) error {
				p.NewNode()
				p.FixVar(items[1], 1)
				panic("probing failed")
			})
		})
		inProbingAfter = m.InProbing()
	})
	if got, want := p, any("probing failed"); got != want {
		t.Errorf("Probe() panicked with %v, want %v", got, want)
	}
	if inProbingAfter {
		t.Error("InProbing() = true after Probe() panicked")
	}
	if diff := cmp.Diff(8.0, solved.ObjVal(), approx); diff != "" {
		t.Errorf("ObjVal() after failed probing returned with unexpected diff (-want+got):\n%s", diff)
	}
}
