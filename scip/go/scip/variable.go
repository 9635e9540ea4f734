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

// Variable is a view over a native variable. It holds one native reference,
// given back by Release or when the model is closed. Variables handed to a
// plugin callback are released when the callback returns.
type Variable struct {
	inst *instance
	ptr  *C.SCIP_VAR
	ref  *ref
}

func (inst *instance) wrapVar(p *C.SCIP_VAR, created bool, sc *scope) *Variable {
	transformed := gobool(C.SCIPvarIsTransformed(p))
	return &Variable{
		inst: inst,
		ptr:  p,
		ref:  inst.capture(refVar, unsafe.Pointer(p), transformed, created, sc),
	}
}

func (inst *instance) wrapVars(ps []*C.SCIP_VAR, sc *scope) []*Variable {
	vars := make([]*Variable, len(ps))
	for i, p := range ps {
		vars[i] = inst.wrapVar(p, false, sc)
	}
	return vars
}

func (v *Variable) raw() *C.SCIP_VAR {
	v.ref.check()
	return v.ptr
}

// transformed returns the transformed counterpart of v, or v itself when it
// already lives in the transformed space.
func (v *Variable) transformed() *C.SCIP_VAR {
	p := v.raw()
	if gobool(C.SCIPvarIsTransformed(p)) {
		return p
	}
	var t *C.SCIP_VAR
	must("SCIPgetTransformedVar", C.SCIPgetTransformedVar(v.inst.raw(), p, &t))
	if t == nil {
		panic("scip: variable " + v.Name() + " has no transformed counterpart")
	}
	return t
}

// Name returns the variable's name.
func (v *Variable) Name() string {
	return C.GoString(C.SCIPvarGetName(v.raw()))
}

// Index returns the unique index of the variable.
func (v *Variable) Index() int {
	return int(C.SCIPvarGetIndex(v.raw()))
}

// ProbIndex returns the position of the variable in its problem, or -1 if
// the variable is not active.
func (v *Variable) ProbIndex() int {
	return int(C.SCIPvarGetProbindex(v.raw()))
}

// Obj returns the objective coefficient.
func (v *Variable) Obj() float64 {
	return float64(C.SCIPvarGetObj(v.raw()))
}

// local returns the variable whose domain changes during the search: the
// transformed counterpart of an original variable while it exists.
func (v *Variable) local() *C.SCIP_VAR {
	p := v.raw()
	if C.SCIPvarGetStatus(p) != C.SCIP_VARSTATUS_ORIGINAL {
		return p
	}
	if t := C.SCIPvarGetTransVar(p); t != nil {
		return t
	}
	return p
}

// LbLocal returns the lower bound at the current node.
func (v *Variable) LbLocal() float64 {
	return v.inst.goreal(C.SCIPvarGetLbLocal(v.local()))
}

// UbLocal returns the upper bound at the current node.
func (v *Variable) UbLocal() float64 {
	return v.inst.goreal(C.SCIPvarGetUbLocal(v.local()))
}

func (v *Variable) LbGlobal() float64 {
	return v.inst.goreal(C.SCIPvarGetLbGlobal(v.raw()))
}

func (v *Variable) UbGlobal() float64 {
	return v.inst.goreal(C.SCIPvarGetUbGlobal(v.raw()))
}

// LbOriginal returns the lower bound the variable was created with.
func (v *Variable) LbOriginal() float64 {
	return v.inst.goreal(C.SCIPvarGetLbOriginal(v.raw()))
}

func (v *Variable) UbOriginal() float64 {
	return v.inst.goreal(C.SCIPvarGetUbOriginal(v.raw()))
}

func (v *Variable) Type() VarType {
	return varTypeOf(C.SCIPvarGetType(v.raw()))
}

func (v *Variable) Status() VarStatus {
	return varStatusOf(C.SCIPvarGetStatus(v.raw()))
}

// IsTransformed reports whether the variable belongs to the transformed
// problem.
func (v *Variable) IsTransformed() bool {
	return gobool(C.SCIPvarIsTransformed(v.raw()))
}

func (v *Variable) IsOriginal() bool {
	return gobool(C.SCIPvarIsOriginal(v.raw()))
}

// Equal reports whether v and o view the same native variable.
func (v *Variable) Equal(o *Variable) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.ptr == o.ptr
}

// Release gives the native reference back. Further use of v panics.
// Releasing twice has no effect.
func (v *Variable) Release() {
	v.inst.release(v.ref)
}

func varPtrs(vars []*Variable, transformed bool) []*C.SCIP_VAR {
	ps := make([]*C.SCIP_VAR, len(vars))
	for i, v := range vars {
		if transformed {
			ps[i] = v.transformed()
		} else {
			ps[i] = v.raw()
		}
	}
	return ps
}
