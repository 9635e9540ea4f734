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

// Row is a view over an LP row. Rows only exist while solving, so a Row is
// owned by the callback that created it and released when it returns; the
// engine keeps its own reference to rows added to the LP.
type Row struct {
	inst *instance
	ptr  *C.SCIP_ROW
	ref  *ref
}

func (inst *instance) wrapRow(p *C.SCIP_ROW, created bool, sc *scope) *Row {
	return &Row{
		inst: inst,
		ptr:  p,
		ref:  inst.capture(refRow, unsafe.Pointer(p), true, created, sc),
	}
}

func (r *Row) raw() *C.SCIP_ROW {
	r.ref.check()
	return r.ptr
}

func (r *Row) Name() string {
	return C.GoString(C.SCIProwGetName(r.raw()))
}

func (r *Row) Lhs() float64 {
	return r.inst.goreal(C.SCIProwGetLhs(r.raw()))
}

func (r *Row) Rhs() float64 {
	return r.inst.goreal(C.SCIProwGetRhs(r.raw()))
}

// NNonzeros returns the number of nonzero coefficients.
func (r *Row) NNonzeros() int {
	return int(C.SCIProwGetNNonz(r.raw()))
}

// Dual returns the dual value of the row in the current LP solution.
func (r *Row) Dual() float64 {
	return float64(C.SCIProwGetDualsol(r.raw()))
}

// FarkasDual returns the dual Farkas value of the row in the current
// infeasible LP.
func (r *Row) FarkasDual() float64 {
	return float64(C.SCIProwGetDualfarkas(r.raw()))
}

func (r *Row) IsLocal() bool {
	return gobool(C.SCIProwIsLocal(r.raw()))
}

func (r *Row) IsInLP() bool {
	return gobool(C.SCIProwIsInLP(r.raw()))
}

func (r *Row) IsModifiable() bool {
	return gobool(C.SCIProwIsModifiable(r.raw()))
}

func (r *Row) IsRemovable() bool {
	return gobool(C.SCIProwIsRemovable(r.raw()))
}

func (r *Row) Origin() RowOrigin {
	return rowOriginOf(C.SCIProwGetOrigintype(r.raw()))
}

// BasisStatus is only meaningful for rows in the LP.
func (r *Row) BasisStatus() BasisStatus {
	return basisStatusOf(C.SCIProwGetBasisStatus(r.raw()))
}

// AddVar adds coef*v to the row.
func (r *Row) AddVar(v *Variable, coef float64) {
	must("SCIPaddVarToRow", C.SCIPaddVarToRow(r.inst.raw(), r.raw(), v.transformed(), C.SCIP_Real(coef)))
}

// Equal reports whether r and o view the same native row.
func (r *Row) Equal(o *Row) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.ptr == o.ptr
}

// Release gives the native reference back before the callback returns.
func (r *Row) Release() {
	r.inst.release(r.ref)
}
