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
	"unsafe"

	log "github.com/golang/glog"
)

/*
#include "bridge.h"
*/
import "C"

// ProblemModel is a model holding a problem that can be modified, extended
// with plugins and solved.
type ProblemModel struct {
	base
}

// SetObjSense sets the optimization direction.
func (m *ProblemModel) SetObjSense(s ObjSense) *ProblemModel {
	must("SCIPsetObjsense", C.SCIPsetObjsense(m.inst().raw(), s.native()))
	return m
}

func (m *ProblemModel) ObjSense() ObjSense {
	if C.SCIPgetObjsense(m.inst().raw()) == C.SCIP_OBJSENSE_MAXIMIZE {
		return Maximize
	}
	return Minimize
}

// AddVar creates a variable with bounds [lb, ub] and objective coefficient
// obj and adds it to the problem. Infinite bounds are given as math.Inf.
func (m *ProblemModel) AddVar(lb, ub, obj float64, name string, vt VarType) *Variable {
	inst := m.inst()
	return inst.addVar(lb, ub, obj, name, vt, false, nil)
}

// AddCons adds the linear constraint lhs <= sum(coefs[i]*vars[i]) <= rhs.
func (m *ProblemModel) AddCons(vars []*Variable, coefs []float64, lhs, rhs float64, name string) *Constraint {
	inst := m.inst()
	return inst.addCons(inst.createLinear(name, varPtrs(vars, false), coefs, lhs, rhs), nil, nil)
}

// AddConsSetPart adds sum(vars) == 1 over binary variables.
func (m *ProblemModel) AddConsSetPart(vars []*Variable, name string) *Constraint {
	inst := m.inst()
	return inst.addCons(inst.createSetppc(setPart, name, varPtrs(vars, false)), nil, nil)
}

// AddConsSetCover adds sum(vars) >= 1 over binary variables.
func (m *ProblemModel) AddConsSetCover(vars []*Variable, name string) *Constraint {
	inst := m.inst()
	return inst.addCons(inst.createSetppc(setCover, name, varPtrs(vars, false)), nil, nil)
}

// AddConsSetPack adds sum(vars) <= 1 over binary variables.
func (m *ProblemModel) AddConsSetPack(vars []*Variable, name string) *Constraint {
	inst := m.inst()
	return inst.addCons(inst.createSetppc(setPack, name, varPtrs(vars, false)), nil, nil)
}

// AddConsCardinality allows at most cardinality of vars to be nonzero.
func (m *ProblemModel) AddConsCardinality(vars []*Variable, cardinality int, name string) *Constraint {
	inst := m.inst()
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	ps := varPtrs(vars, false)
	var cons *C.SCIP_CONS
	must("SCIPcreateConsBasicCardinality", C.SCIPcreateConsBasicCardinality(
		inst.raw(), &cons, cname, C.int(len(ps)), varArray(ps), C.int(cardinality), nil, nil))
	return inst.addCons(cons, nil, nil)
}

// AddConsIndicator adds bin == 1 => sum(coefs[i]*vars[i]) <= rhs.
func (m *ProblemModel) AddConsIndicator(bin *Variable, vars []*Variable, coefs []float64, rhs float64, name string) *Constraint {
	inst := m.inst()
	checkLens(len(vars), len(coefs))
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	ps := varPtrs(vars, false)
	var cons *C.SCIP_CONS
	must("SCIPcreateConsBasicIndicator", C.SCIPcreateConsBasicIndicator(
		inst.raw(), &cons, cname, bin.raw(), C.int(len(ps)), varArray(ps), realArray(coefs), inst.creal(rhs)))
	return inst.addCons(cons, nil, nil)
}

// QuadTerm is the term Coef*X*Y of a quadratic constraint.
type QuadTerm struct {
	X, Y *Variable
	Coef float64
}

// AddConsQuadratic adds lhs <= sum(linCoefs[i]*linVars[i]) + sum(quad) <= rhs.
func (m *ProblemModel) AddConsQuadratic(linVars []*Variable, linCoefs []float64, quad []QuadTerm, lhs, rhs float64, name string) *Constraint {
	inst := m.inst()
	checkLens(len(linVars), len(linCoefs))
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	lin := varPtrs(linVars, false)
	xs := make([]*C.SCIP_VAR, len(quad))
	ys := make([]*C.SCIP_VAR, len(quad))
	qc := make([]float64, len(quad))
	for i, t := range quad {
		xs[i], ys[i], qc[i] = t.X.raw(), t.Y.raw(), t.Coef
	}
	var cons *C.SCIP_CONS
	must("SCIPcreateConsBasicQuadraticNonlinear", C.SCIPcreateConsBasicQuadraticNonlinear(
		inst.raw(), &cons, cname,
		C.int(len(lin)), varArray(lin), realArray(linCoefs),
		C.int(len(quad)), varArray(xs), varArray(ys), realArray(qc),
		inst.creal(lhs), inst.creal(rhs)))
	return inst.addCons(cons, nil, nil)
}

// AddConsCoef adds coef*v to the linear constraint c.
func (m *ProblemModel) AddConsCoef(c *Constraint, v *Variable, coef float64) {
	m.inst().addConsCoef(c, v, coef)
}

// AddConsCoefSetppc adds v to the set partitioning, packing or covering
// constraint c.
func (m *ProblemModel) AddConsCoefSetppc(c *Constraint, v *Variable) {
	inst := m.inst()
	must("SCIPaddCoefSetppc", C.SCIPaddCoefSetppc(inst.raw(), c.raw(), v.raw()))
}

// SetConsModifiable marks c as modifiable, letting pricers add variables to
// it.
func (m *ProblemModel) SetConsModifiable(c *Constraint, modifiable bool) {
	must("SCIPsetConsModifiable", C.SCIPsetConsModifiable(m.inst().raw(), c.raw(), cbool(modifiable)))
}

func (m *ProblemModel) SetConsRemovable(c *Constraint, removable bool) {
	must("SCIPsetConsRemovable", C.SCIPsetConsRemovable(m.inst().raw(), c.raw(), cbool(removable)))
}

func (m *ProblemModel) SetConsSeparated(c *Constraint, separated bool) {
	must("SCIPsetConsSeparated", C.SCIPsetConsSeparated(m.inst().raw(), c.raw(), cbool(separated)))
}

// Vars returns the variables of the problem. Each call captures new
// references.
func (m *ProblemModel) Vars() []*Variable {
	return m.inst().origVars(nil)
}

// Conss returns the constraints of the problem.
func (m *ProblemModel) Conss() []*Constraint {
	return m.inst().origConss(nil)
}

func (m *ProblemModel) NVars() int {
	return int(C.SCIPgetNOrigVars(m.inst().raw()))
}

func (m *ProblemModel) NConss() int {
	return int(C.SCIPgetNOrigConss(m.inst().raw()))
}

// FindCons returns the constraint called name, or nil.
func (m *ProblemModel) FindCons(name string) *Constraint {
	return m.inst().findCons(name)
}

// CreateOrigSol creates an empty solution over the original variables.
func (m *ProblemModel) CreateOrigSol() *Solution {
	inst := m.inst()
	var sol *C.SCIP_SOL
	must("SCIPcreateOrigSol", C.SCIPcreateOrigSol(inst.raw(), &sol, nil))
	return inst.newSol(sol, nil)
}

// AddSol hands sol to the engine as a starting solution and reports whether
// it was accepted. sol cannot be used afterwards. Checking the solution runs
// the Check method of included constraint handlers; a violation there panics
// with a *ContractViolation.
func (m *ProblemModel) AddSol(sol *Solution) bool {
	inst := m.inst()
	defer inst.raise()
	return inst.addSol(sol)
}

// Write writes the problem to path in the format named by ext, e.g. "lp",
// "mps" or "cip".
func (m *ProblemModel) Write(path, ext string) error {
	return m.inst().writeProblem(path, ext)
}

// Solve solves the problem. It panics with a *ContractViolation if a plugin
// broke its contract during the solve.
func (m *ProblemModel) Solve() *SolvedModel {
	c := m.c.advance(PhaseSolved)
	inst := c.h.inst
	inst.violation = nil
	inst.counters.solves.Add(1)
	rc := C.SCIPsolve(inst.raw())
	if v := inst.violation; v != nil {
		inst.violation = nil
		log.Errorf("scip: aborting solve: %v", v)
		panic(v)
	}
	must("SCIPsolve", rc)
	log.V(1).Infof("scip: solve finished with status %v", statusOf(C.SCIPgetStatus(inst.raw())))
	return &SolvedModel{base{c}}
}

// addVar creates and adds a variable. priced adds it as a column generated
// during pricing.
func (inst *instance) addVar(lb, ub, obj float64, name string, vt VarType, priced bool, sc *scope) *Variable {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var v *C.SCIP_VAR
	must("SCIPcreateVarBasic", C.SCIPcreateVarBasic(inst.raw(), &v, cname,
		inst.creal(lb), inst.creal(ub), C.SCIP_Real(obj), vt.native()))
	if priced {
		must("SCIPaddPricedVar", C.SCIPaddPricedVar(inst.raw(), v, 1.0))
	} else {
		must("SCIPaddVar", C.SCIPaddVar(inst.raw(), v))
	}
	return inst.wrapVar(v, true, sc)
}

func (inst *instance) createLinear(name string, vars []*C.SCIP_VAR, coefs []float64, lhs, rhs float64) *C.SCIP_CONS {
	checkLens(len(vars), len(coefs))
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var cons *C.SCIP_CONS
	must("SCIPcreateConsBasicLinear", C.SCIPcreateConsBasicLinear(inst.raw(), &cons, cname,
		C.int(len(vars)), varArray(vars), realArray(coefs), inst.creal(lhs), inst.creal(rhs)))
	return cons
}

type setppcKind int

const (
	setPart setppcKind = iota
	setCover
	setPack
)

func (inst *instance) createSetppc(kind setppcKind, name string, vars []*C.SCIP_VAR) *C.SCIP_CONS {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var cons *C.SCIP_CONS
	n, arr := C.int(len(vars)), varArray(vars)
	switch kind {
	case setPart:
		must("SCIPcreateConsBasicSetpart", C.SCIPcreateConsBasicSetpart(inst.raw(), &cons, cname, n, arr))
	case setCover:
		must("SCIPcreateConsBasicSetcover", C.SCIPcreateConsBasicSetcover(inst.raw(), &cons, cname, n, arr))
	case setPack:
		must("SCIPcreateConsBasicSetpack", C.SCIPcreateConsBasicSetpack(inst.raw(), &cons, cname, n, arr))
	}
	return cons
}

// addCons adds a freshly created constraint globally, or to node when it is
// not nil, and takes over its creation reference.
func (inst *instance) addCons(cons *C.SCIP_CONS, node *C.SCIP_NODE, sc *scope) *Constraint {
	if node != nil {
		must("SCIPaddConsNode", C.SCIPaddConsNode(inst.raw(), node, cons, nil))
	} else {
		must("SCIPaddCons", C.SCIPaddCons(inst.raw(), cons))
	}
	return inst.wrapCons(cons, true, sc)
}

// addConsCoef adds a coefficient to a linear constraint. When exactly one of
// c and v is transformed, the other one is mapped to the transformed space
// too.
func (inst *instance) addConsCoef(c *Constraint, v *Variable, coef float64) {
	cp, vp := c.raw(), v.raw()
	consTransformed := gobool(C.SCIPconsIsTransformed(cp))
	varTransformed := gobool(C.SCIPvarIsTransformed(vp))
	switch {
	case !consTransformed && varTransformed:
		cp = c.transformed()
		if cp == nil {
			panic(fmt.Sprintf("scip: constraint %s was removed by presolving; disable presolving or mark it not removable", c.Name()))
		}
	case consTransformed && !varTransformed:
		vp = v.transformed()
	}
	must("SCIPaddCoefLinear", C.SCIPaddCoefLinear(inst.raw(), cp, vp, C.SCIP_Real(coef)))
}

func (inst *instance) origVars(sc *scope) []*Variable {
	n := int(C.SCIPgetNOrigVars(inst.raw()))
	if n == 0 {
		return nil
	}
	return inst.wrapVars(unsafe.Slice(C.SCIPgetOrigVars(inst.raw()), n), sc)
}

func (inst *instance) origConss(sc *scope) []*Constraint {
	n := int(C.SCIPgetNOrigConss(inst.raw()))
	if n == 0 {
		return nil
	}
	conss := make([]*Constraint, n)
	for i, p := range unsafe.Slice(C.SCIPgetOrigConss(inst.raw()), n) {
		conss[i] = inst.wrapCons(p, false, sc)
	}
	return conss
}

func (inst *instance) findCons(name string) *Constraint {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	p := C.SCIPfindCons(inst.raw(), cname)
	if p == nil {
		return nil
	}
	return inst.wrapCons(p, false, nil)
}

func (inst *instance) writeProblem(path, ext string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cext := C.CString(ext)
	defer C.free(unsafe.Pointer(cext))
	if err := call(C.SCIPwriteOrigProblem(inst.raw(), cpath, cext, C.FALSE)); err != nil {
		return fmt.Errorf("scip: writing problem to %q: %w", path, err)
	}
	return nil
}

func varArray(ps []*C.SCIP_VAR) **C.SCIP_VAR {
	if len(ps) == 0 {
		return nil
	}
	return &ps[0]
}

func realArray(vs []float64) *C.SCIP_Real {
	if len(vs) == 0 {
		return nil
	}
	return (*C.SCIP_Real)(unsafe.Pointer(&vs[0]))
}

func checkLens(nvars, ncoefs int) {
	if nvars != ncoefs {
		panic(fmt.Sprintf("scip: %d variables but %d coefficients", nvars, ncoefs))
	}
}
