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

// Constraint is a view over a native constraint holding one native reference.
type Constraint struct {
	inst *instance
	ptr  *C.SCIP_CONS
	ref  *ref
}

func (inst *instance) wrapCons(p *C.SCIP_CONS, created bool, sc *scope) *Constraint {
	transformed := gobool(C.SCIPconsIsTransformed(p))
	return &Constraint{
		inst: inst,
		ptr:  p,
		ref:  inst.capture(refCons, unsafe.Pointer(p), transformed, created, sc),
	}
}

func (c *Constraint) raw() *C.SCIP_CONS {
	c.ref.check()
	return c.ptr
}

// transformed returns the transformed counterpart of c, or nil if presolving
// removed it.
func (c *Constraint) transformed() *C.SCIP_CONS {
	p := c.raw()
	if gobool(C.SCIPconsIsTransformed(p)) {
		return p
	}
	var t *C.SCIP_CONS
	must("SCIPgetTransformedCons", C.SCIPgetTransformedCons(c.inst.raw(), p, &t))
	return t
}

func (c *Constraint) Name() string {
	return C.GoString(C.SCIPconsGetName(c.raw()))
}

// IsModifiable reports whether variables may be added to the constraint
// during pricing.
func (c *Constraint) IsModifiable() bool {
	return gobool(C.SCIPconsIsModifiable(c.raw()))
}

func (c *Constraint) IsRemovable() bool {
	return gobool(C.SCIPconsIsRemovable(c.raw()))
}

func (c *Constraint) IsSeparated() bool {
	return gobool(C.SCIPconsIsSeparated(c.raw()))
}

func (c *Constraint) IsTransformed() bool {
	return gobool(C.SCIPconsIsTransformed(c.raw()))
}

// linear returns the transformed counterpart of a linear constraint.
func (c *Constraint) linear(op string) *C.SCIP_CONS {
	t := c.transformed()
	if t == nil {
		panic("scip: " + op + " of constraint " + c.Name() + " removed by presolving")
	}
	if name := C.GoString(C.SCIPconshdlrGetName(C.SCIPconsGetHdlr(t))); name != "linear" {
		panic("scip: " + op + " of a " + name + " constraint")
	}
	return t
}

// Dual returns the dual value of a linear constraint in the current LP
// solution.
func (c *Constraint) Dual() float64 {
	return float64(C.SCIPgetDualsolLinear(c.inst.raw(), c.linear("Dual")))
}

// FarkasDual returns the Farkas dual value of a linear constraint in an
// infeasible LP.
func (c *Constraint) FarkasDual() float64 {
	return float64(C.SCIPgetDualfarkasLinear(c.inst.raw(), c.linear("FarkasDual")))
}

// Equal reports whether c and o view the same native constraint.
func (c *Constraint) Equal(o *Constraint) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.ptr == o.ptr
}

// Release gives the native reference back. Releasing twice has no effect.
func (c *Constraint) Release() {
	c.inst.release(c.ref)
}
