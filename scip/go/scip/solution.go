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

import "unsafe"

/*
#include "bridge.h"
*/
import "C"

// Solution is a primal solution.
//
// Solutions created through CreateSol or CreateOrigSol are owned by the
// caller until they are handed to AddSol, which consumes them. Solutions
// returned by queries such as BestSol borrow storage kept by the engine: they
// stay valid until the transformed problem is freed, or, inside a callback,
// until the callback returns.
type Solution struct {
	inst *instance
	ptr  *C.SCIP_SOL
	// Exactly one of ref, sc and epoch guards the solution.
	ref   *ref
	sc    *scope
	epoch uint64
}

func (inst *instance) newSol(p *C.SCIP_SOL, sc *scope) *Solution {
	return &Solution{
		inst: inst,
		ptr:  p,
		ref:  inst.capture(refSol, unsafe.Pointer(p), !gobool(C.SCIPsolIsOriginal(p)), true, sc),
	}
}

func (inst *instance) borrowSol(p *C.SCIP_SOL, sc *scope) *Solution {
	return &Solution{inst: inst, ptr: p, sc: sc, epoch: inst.epoch}
}

func (s *Solution) raw() *C.SCIP_SOL {
	switch {
	case s.ref != nil:
		s.ref.check()
	case s.sc != nil:
		s.sc.check()
	case s.epoch != s.inst.epoch:
		panic("scip: use of a solution whose transformed problem was freed")
	}
	return s.ptr
}

// Val returns the value of v in the solution.
func (s *Solution) Val(v *Variable) float64 {
	return float64(C.SCIPgetSolVal(s.inst.raw(), s.raw(), v.raw()))
}

// SetVal sets the value of v. Only solutions created through the API can be
// modified.
func (s *Solution) SetVal(v *Variable, val float64) {
	if s.ref == nil {
		panic("scip: SetVal on a solution owned by the engine")
	}
	p := v.raw()
	if !s.IsOriginal() {
		p = v.transformed()
	}
	must("SCIPsetSolVal", C.SCIPsetSolVal(s.inst.raw(), s.raw(), p, C.SCIP_Real(val)))
}

// ObjVal returns the objective value in the original problem space.
func (s *Solution) ObjVal() float64 {
	return float64(C.SCIPgetSolOrigObj(s.inst.raw(), s.raw()))
}

// IsOriginal reports whether the solution is defined on original variables.
func (s *Solution) IsOriginal() bool {
	return gobool(C.SCIPsolIsOriginal(s.raw()))
}

// Values returns the values of vars in the solution.
func (s *Solution) Values(vars []*Variable) []float64 {
	vals := make([]float64, len(vars))
	for i, v := range vars {
		vals[i] = s.Val(v)
	}
	return vals
}

// Equal reports whether s and o are the same native solution.
func (s *Solution) Equal(o *Solution) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.ptr == o.ptr
}

// Release frees a solution created through the API that was never added.
// It has no effect on borrowed solutions.
func (s *Solution) Release() {
	s.inst.release(s.ref)
}

// addSol hands s to the engine, which checks and stores or frees it. It reports
// whether the solution was accepted.
func (inst *instance) addSol(s *Solution) bool {
	if s.ref == nil {
		panic("scip: only solutions created through the API can be added")
	}
	p := s.raw()
	var stored C.SCIP_Bool
	if gobool(C.SCIPsolIsOriginal(p)) {
		var feasible C.SCIP_Bool
		must("SCIPcheckSolOrig", C.SCIPcheckSolOrig(inst.raw(), p, &feasible, C.FALSE, C.FALSE))
		if !gobool(feasible) {
			inst.release(s.ref)
			return false
		}
		must("SCIPaddSolFree", C.SCIPaddSolFree(inst.raw(), &p, &stored))
	} else {
		must("SCIPtrySolFree", C.SCIPtrySolFree(inst.raw(), &p, C.FALSE, C.FALSE, C.TRUE, C.TRUE, C.TRUE, &stored))
	}
	inst.forget(s.ref)
	return gobool(stored)
}
