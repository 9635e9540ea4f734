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
	"fmt"

	log "github.com/golang/glog"
)

/*
#include "bridge.h"
*/
import "C"

// Prober explores a temporary subtree below the focus node, made of probing
// nodes with their own bound changes. The tree is left untouched when
// probing ends with End, or when the callback that started it returns.
type Prober struct {
	sc    *scope
	m     *SolvingModel
	inst  *instance
	ended bool
}

// StartProbing enters probing mode.
func (m *SolvingModel) StartProbing() (*Prober, error) {
	inst := m.inst()
	if m.sc.prober != nil {
		return nil, fmt.Errorf("scip: starting probing: %w", RetcodeInvalidCall)
	}
	if err := call(C.SCIPstartProbing(inst.raw())); err != nil {
		return nil, fmt.Errorf("scip: starting probing: %w", err)
	}
	p := &Prober{sc: m.sc, m: m, inst: inst}
	m.sc.prober = p
	log.V(2).Infof("scip: %v %q: probing started", m.sc.reg.kind, m.sc.reg.name)
	return p, nil
}

// InProbing reports whether the engine is in probing mode.
func (m *SolvingModel) InProbing() bool {
	return gobool(C.SCIPinProbing(m.inst().raw()))
}

// Probe runs fn in probing mode and ends it on every exit path of fn.
func (m *SolvingModel) Probe(fn func(p *Prober) error) error {
	p, err := m.StartProbing()
	if err != nil {
		return err
	}
	defer p.End()
	return fn(p)
}

func (p *Prober) raw() *C.SCIP {
	p.sc.check()
	if p.ended {
		panic("scip: use of a Prober after End")
	}
	return p.inst.raw()
}

// End leaves probing mode and restores the focus node. Calling End more than
// once has no effect.
func (p *Prober) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.sc.prober = nil
	scip := p.inst.raw()
	if !gobool(C.SCIPinProbing(scip)) {
		panic("scip: ending probing the engine is not in")
	}
	must("SCIPendProbing", C.SCIPendProbing(scip))
}

// NewNode creates a probing node below the current one. Bound changes made
// afterwards are undone by backtracking above it.
func (p *Prober) NewNode() {
	must("SCIPnewProbingNode", C.SCIPnewProbingNode(p.raw()))
}

// Depth returns the depth of the current probing node; the focus node has
// depth zero.
func (p *Prober) Depth() int {
	return int(C.SCIPgetProbingDepth(p.raw()))
}

// Backtrack undoes every probing node deeper than depth.
func (p *Prober) Backtrack(depth int) {
	if depth < 0 || depth > p.Depth() {
		panic(fmt.Sprintf("scip: backtracking probing to depth %d from depth %d", depth, p.Depth()))
	}
	must("SCIPbacktrackProbing", C.SCIPbacktrackProbing(p.raw(), C.int(depth)))
}

func (p *Prober) ChgVarLb(v *Variable, lb float64) {
	must("SCIPchgVarLbProbing", C.SCIPchgVarLbProbing(p.raw(), v.transformed(), p.inst.creal(lb)))
}

func (p *Prober) ChgVarUb(v *Variable, ub float64) {
	must("SCIPchgVarUbProbing", C.SCIPchgVarUbProbing(p.raw(), v.transformed(), p.inst.creal(ub)))
}

func (p *Prober) ChgVarObj(v *Variable, obj float64) {
	must("SCIPchgVarObjProbing", C.SCIPchgVarObjProbing(p.raw(), v.transformed(), C.SCIP_Real(obj)))
}

// FixVar fixes v to val in the current probing node.
func (p *Prober) FixVar(v *Variable, val float64) {
	must("SCIPfixVarProbing", C.SCIPfixVarProbing(p.raw(), v.transformed(), C.SCIP_Real(val)))
}

// VarObj returns the objective coefficient of v in the probing subproblem.
func (p *Prober) VarObj(v *Variable) float64 {
	return float64(C.SCIPgetVarObjProbing(p.raw(), v.transformed()))
}

// IsObjChanged reports whether the objective was changed while probing.
func (p *Prober) IsObjChanged() bool {
	return gobool(C.SCIPisObjChangedProbing(p.raw()))
}

// Propagate applies domain propagation to the probing subproblem for at most
// maxRounds rounds, or until a fixpoint when maxRounds is negative. The
// propagated bounds are read with Variable.LbLocal and UbLocal.
func (p *Prober) Propagate(maxRounds int) (cutoff bool, reductions int64) {
	var co C.SCIP_Bool
	var n C.SCIP_Longint
	must("SCIPpropagateProbing", C.SCIPpropagateProbing(p.raw(), C.int(maxRounds), &co, &n))
	return gobool(co), int64(n)
}

// PropagateImplications propagates the binary variables fixed at the current
// probing node through the implication graph and the clique table.
func (p *Prober) PropagateImplications() (cutoff bool) {
	var co C.SCIP_Bool
	must("SCIPpropagateProbingImplications", C.SCIPpropagateProbingImplications(p.raw(), &co))
	return gobool(co)
}

// SolveLP solves the LP of the probing subproblem with at most iterLimit
// simplex iterations, or without limit when iterLimit is negative. The
// solution is read with SolvingModel.CurrentVal.
func (p *Prober) SolveLP(iterLimit int) (cutoff bool, err error) {
	scip := p.raw()
	if err := p.m.ensureLP(); err != nil {
		return false, err
	}
	var lperror, co C.SCIP_Bool
	if err := call(C.SCIPsolveProbingLP(scip, C.int(iterLimit), &lperror, &co)); err != nil {
		return false, fmt.Errorf("scip: solving probing LP: %w", err)
	}
	if gobool(lperror) {
		return false, fmt.Errorf("scip: solving probing LP: %w", RetcodeLPError)
	}
	return gobool(co), nil
}

// SolveLPWithPricing is SolveLP with at most maxPricingRounds rounds of
// pricing, or without limit when maxPricingRounds is negative.
func (p *Prober) SolveLPWithPricing(maxPricingRounds int) (cutoff bool, err error) {
	scip := p.raw()
	if err := p.m.ensureLP(); err != nil {
		return false, err
	}
	var lperror, co C.SCIP_Bool
	rc := C.SCIPsolveProbingLPWithPricing(scip, C.FALSE, C.TRUE, C.int(maxPricingRounds), &lperror, &co)
	if err := call(rc); err != nil {
		return false, fmt.Errorf("scip: solving probing LP with pricing: %w", err)
	}
	if gobool(lperror) {
		return false, fmt.Errorf("scip: solving probing LP with pricing: %w", RetcodeLPError)
	}
	return gobool(co), nil
}

// AddRow adds row to the LP of the current probing node.
func (p *Prober) AddRow(row *Row) {
	must("SCIPaddRowProbing", C.SCIPaddRowProbing(p.raw(), row.raw()))
}
