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

// Diver gives access to the diving LP, a copy of the current LP whose bounds,
// objective and rows can be changed without affecting the search. Diving ends
// with End, or when the callback that started it returns.
type Diver struct {
	sc    *scope
	inst  *instance
	ended bool
}

// ensureLP constructs the LP of the focus node if the engine has not done so
// yet.
func (m *SolvingModel) ensureLP() error {
	inst := m.inst()
	if gobool(C.SCIPisLPConstructed(inst.raw())) {
		return nil
	}
	var cutoff C.SCIP_Bool
	if err := call(C.SCIPconstructLP(inst.raw(), &cutoff)); err != nil {
		return fmt.Errorf("scip: constructing LP: %w", err)
	}
	return nil
}

// StartDiving enters diving mode. It fails if the LP cannot be constructed
// or the engine is already diving.
func (m *SolvingModel) StartDiving() (*Diver, error) {
	inst := m.inst()
	if m.sc.diver != nil {
		return nil, fmt.Errorf("scip: starting dive: %w", RetcodeInvalidCall)
	}
	if err := m.ensureLP(); err != nil {
		return nil, err
	}
	if err := call(C.SCIPstartDive(inst.raw())); err != nil {
		return nil, fmt.Errorf("scip: starting dive: %w", err)
	}
	d := &Diver{sc: m.sc, inst: inst}
	m.sc.diver = d
	log.V(2).Infof("scip: %v %q: dive started", m.sc.reg.kind, m.sc.reg.name)
	return d, nil
}

// InDive reports whether the engine is in diving mode.
func (m *SolvingModel) InDive() bool {
	return gobool(C.SCIPinDive(m.inst().raw()))
}

// Dive runs fn in diving mode and ends it on every exit path of fn.
func (m *SolvingModel) Dive(fn func(d *Diver) error) error {
	d, err := m.StartDiving()
	if err != nil {
		return err
	}
	defer d.End()
	return fn(d)
}

func (d *Diver) raw() *C.SCIP {
	d.sc.check()
	if d.ended {
		panic("scip: use of a Diver after End")
	}
	return d.inst.raw()
}

// End leaves diving mode. Calling End more than once has no effect.
func (d *Diver) End() {
	if d.ended {
		return
	}
	d.ended = true
	d.sc.diver = nil
	scip := d.inst.raw()
	if !gobool(C.SCIPinDive(scip)) {
		panic("scip: ending a dive the engine is not in")
	}
	must("SCIPendDive", C.SCIPendDive(scip))
}

func (d *Diver) ChgVarLb(v *Variable, lb float64) {
	must("SCIPchgVarLbDive", C.SCIPchgVarLbDive(d.raw(), v.transformed(), d.inst.creal(lb)))
}

func (d *Diver) ChgVarUb(v *Variable, ub float64) {
	must("SCIPchgVarUbDive", C.SCIPchgVarUbDive(d.raw(), v.transformed(), d.inst.creal(ub)))
}

func (d *Diver) ChgVarObj(v *Variable, obj float64) {
	must("SCIPchgVarObjDive", C.SCIPchgVarObjDive(d.raw(), v.transformed(), C.SCIP_Real(obj)))
}

// VarLb returns the lower bound of v in the diving LP.
func (d *Diver) VarLb(v *Variable) float64 {
	return d.inst.goreal(C.SCIPgetVarLbDive(d.raw(), v.transformed()))
}

// VarUb returns the upper bound of v in the diving LP.
func (d *Diver) VarUb(v *Variable) float64 {
	return d.inst.goreal(C.SCIPgetVarUbDive(d.raw(), v.transformed()))
}

// VarObj returns the objective coefficient of v in the diving LP.
func (d *Diver) VarObj(v *Variable) float64 {
	return float64(C.SCIPgetVarObjDive(d.raw(), v.transformed()))
}

// SolveLP solves the diving LP with at most iterLimit simplex iterations,
// or without limit when iterLimit is negative. It reports whether the LP
// exceeded the cutoff bound; an LP solver failure is returned as
// RetcodeLPError.
func (d *Diver) SolveLP(iterLimit int) (cutoff bool, err error) {
	var lperror, co C.SCIP_Bool
	if err := call(C.SCIPsolveDiveLP(d.raw(), C.int(iterLimit), &lperror, &co)); err != nil {
		return false, fmt.Errorf("scip: solving diving LP: %w", err)
	}
	if gobool(lperror) {
		return false, fmt.Errorf("scip: solving diving LP: %w", RetcodeLPError)
	}
	return gobool(co), nil
}

// AddRow adds row to the diving LP.
func (d *Diver) AddRow(row *Row) {
	must("SCIPaddRowDive", C.SCIPaddRowDive(d.raw(), row.raw()))
}

func (d *Diver) ChgRowLhs(row *Row, lhs float64) {
	must("SCIPchgRowLhsDive", C.SCIPchgRowLhsDive(d.raw(), row.raw(), d.inst.creal(lhs)))
}

func (d *Diver) ChgRowRhs(row *Row, rhs float64) {
	must("SCIPchgRowRhsDive", C.SCIPchgRowRhsDive(d.raw(), row.raw(), d.inst.creal(rhs)))
}

// ChgCutoffBound changes the cutoff bound of the diving LP.
func (d *Diver) ChgCutoffBound(bound float64) {
	must("SCIPchgCutoffboundDive", C.SCIPchgCutoffboundDive(d.raw(), C.SCIP_Real(bound)))
}

// LastDiveNode returns the number of the node at which the last dive took
// place.
func (d *Diver) LastDiveNode() int64 {
	return int64(C.SCIPgetLastDivenode(d.raw()))
}
