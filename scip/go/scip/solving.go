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
	"math"
	"unsafe"
)

/*
#include "bridge.h"
*/
import "C"

// scope is the dynamic extent of one plugin callback.
type scope struct {
	inst    *instance
	reg     *registration
	expired bool
	refs    []*ref
	diver   *Diver
	prober  *Prober
	// Constraints and cuts added during the callback.
	conssAdded int
	cutsAdded  int
}

func (s *scope) check() {
	if s.expired {
		panic(&PhaseError{Phase: PhaseSolving, Reason: "used after its callback returned"})
	}
}

// end closes any scoped mode left open, releases the references owned by
// the callback and expires every view bound to it.
func (s *scope) end() {
	if s.expired {
		return
	}
	if s.diver != nil {
		s.diver.End()
	}
	if s.prober != nil {
		s.prober.End()
	}
	for _, kind := range []refKind{refSol, refRow, refCons, refVar} {
		for _, r := range s.refs {
			if r.kind == kind {
				s.inst.release(r)
			}
		}
	}
	s.refs = nil
	s.expired = true
}

// SolvingModel is the view of a model handed to plugin callbacks. It is
// only valid until the callback returns; any use afterwards panics with a
// *PhaseError. Entities obtained by queries on a SolvingModel are released
// when the callback returns, while variables and constraints it adds stay
// referenced until the model is closed or its transformed problem freed.
type SolvingModel struct {
	base
	sc *scope
}

func newSolvingModel(reg *registration) *SolvingModel {
	sc := &scope{inst: reg.h.inst, reg: reg}
	return &SolvingModel{
		base: base{&core{h: reg.h.alias(), phase: PhaseSolving, sc: sc}},
		sc:   sc,
	}
}

// Vars returns the active variables of the transformed problem.
func (m *SolvingModel) Vars() []*Variable {
	inst := m.inst()
	n := int(C.SCIPgetNVars(inst.raw()))
	if n == 0 {
		return nil
	}
	return inst.wrapVars(unsafe.Slice(C.SCIPgetVars(inst.raw()), n), m.sc)
}

// OrigVars returns the variables of the original problem.
func (m *SolvingModel) OrigVars() []*Variable {
	return m.inst().origVars(m.sc)
}

// NVars returns the number of active variables of the transformed problem.
func (m *SolvingModel) NVars() int {
	return int(C.SCIPgetNVars(m.inst().raw()))
}

func (m *SolvingModel) NConss() int {
	return int(C.SCIPgetNConss(m.inst().raw()))
}

// FocusNode returns the node being processed.
func (m *SolvingModel) FocusNode() *Node {
	p := C.SCIPgetFocusNode(m.inst().raw())
	if p == nil {
		return nil
	}
	return &Node{sc: m.sc, ptr: p}
}

// CreateChild creates a child of the focus node, inheriting its estimate.
func (m *SolvingModel) CreateChild() *Node {
	inst := m.inst()
	var node *C.SCIP_NODE
	must("SCIPcreateChild", C.SCIPcreateChild(inst.raw(), &node, 0, C.SCIPgetLocalTransEstimate(inst.raw())))
	return &Node{sc: m.sc, ptr: node}
}

// BranchVarVal branches on v at val and returns the created children. Nodes
// that were not created are nil.
func (m *SolvingModel) BranchVarVal(v *Variable, val float64) (down, eq, up *Node) {
	inst := m.inst()
	var d, e, u *C.SCIP_NODE
	must("SCIPbranchVarVal", C.SCIPbranchVarVal(inst.raw(), v.transformed(), C.SCIP_Real(val), &d, &e, &u))
	wrap := func(p *C.SCIP_NODE) *Node {
		if p == nil {
			return nil
		}
		return &Node{sc: m.sc, ptr: p}
	}
	return wrap(d), wrap(e), wrap(u)
}

// NChildren returns the number of children of the focus node.
func (m *SolvingModel) NChildren() int {
	return int(C.SCIPgetNChildren(m.inst().raw()))
}

// LPBranchCands returns the variables with a fractional value in the current
// LP solution.
func (m *SolvingModel) LPBranchCands() []BranchingCandidate {
	inst := m.inst()
	var (
		cands    **C.SCIP_VAR
		candsSol *C.SCIP_Real
		nCands   C.int
	)
	must("SCIPgetLPBranchCands", C.SCIPgetLPBranchCands(inst.raw(), &cands, &candsSol, nil, &nCands, nil, nil))
	n := int(nCands)
	if n == 0 {
		return nil
	}
	vars := unsafe.Slice(cands, n)
	sols := unsafe.Slice(candsSol, n)
	out := make([]BranchingCandidate, n)
	for i := range out {
		val := float64(sols[i])
		out[i] = BranchingCandidate{
			Var:      inst.wrapVar(vars[i], false, m.sc),
			LPSolVal: val,
			Frac:     val - math.Floor(val),
		}
	}
	return out
}

// AddPricedVar creates a variable generated by pricing and adds it to the
// problem.
func (m *SolvingModel) AddPricedVar(lb, ub, obj float64, name string, vt VarType) *Variable {
	return m.inst().addVar(lb, ub, obj, name, vt, true, nil)
}

// AddVar adds a variable to the transformed problem outside of pricing.
func (m *SolvingModel) AddVar(lb, ub, obj float64, name string, vt VarType) *Variable {
	return m.inst().addVar(lb, ub, obj, name, vt, false, nil)
}

// AddCons adds a global linear constraint to the transformed problem.
func (m *SolvingModel) AddCons(vars []*Variable, coefs []float64, lhs, rhs float64, name string) *Constraint {
	inst := m.inst()
	m.sc.conssAdded++
	return inst.addCons(inst.createLinear(name, varPtrs(vars, true), coefs, lhs, rhs), nil, nil)
}

// AddConsNode adds a linear constraint valid in the subtree of node.
func (m *SolvingModel) AddConsNode(node *Node, vars []*Variable, coefs []float64, lhs, rhs float64, name string) *Constraint {
	inst := m.inst()
	m.sc.conssAdded++
	return inst.addCons(inst.createLinear(name, varPtrs(vars, true), coefs, lhs, rhs), node.raw(), nil)
}

// AddConsLocal adds a linear constraint valid at the focus node and its
// subtree.
func (m *SolvingModel) AddConsLocal(vars []*Variable, coefs []float64, lhs, rhs float64, name string) *Constraint {
	inst := m.inst()
	cons := inst.createLinear(name, varPtrs(vars, true), coefs, lhs, rhs)
	must("SCIPaddConsLocal", C.SCIPaddConsLocal(inst.raw(), cons, nil))
	m.sc.conssAdded++
	return inst.wrapCons(cons, true, nil)
}

// AddConsCoef adds coef*v to the linear constraint c. Original objects are
// mapped to their transformed counterparts when needed.
func (m *SolvingModel) AddConsCoef(c *Constraint, v *Variable, coef float64) {
	m.inst().addConsCoef(c, v, coef)
}

// CreateRow creates an empty LP row lhs <= ... <= rhs. Rows created from a
// separator or a constraint handler are attributed to it.
func (m *SolvingModel) CreateRow(name string, lhs, rhs float64, local, modifiable, removable bool) *Row {
	inst := m.inst()
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var (
		row *C.SCIP_ROW
		rc  C.SCIP_RETCODE
	)
	l, r := inst.creal(lhs), inst.creal(rhs)
	switch reg := m.sc.reg; {
	case reg != nil && reg.kind == kindSeparator:
		rc = C.SCIPcreateEmptyRowSepa(inst.raw(), &row, (*C.SCIP_SEPA)(reg.native), cname, l, r,
			cbool(local), cbool(modifiable), cbool(removable))
	case reg != nil && reg.kind == kindConstraintHandler:
		rc = C.SCIPcreateEmptyRowConshdlr(inst.raw(), &row, (*C.SCIP_CONSHDLR)(reg.native), cname, l, r,
			cbool(local), cbool(modifiable), cbool(removable))
	default:
		rc = C.SCIPcreateEmptyRowUnspec(inst.raw(), &row, cname, l, r,
			cbool(local), cbool(modifiable), cbool(removable))
	}
	must("SCIPcreateEmptyRow", rc)
	return inst.wrapRow(row, true, m.sc)
}

// AddCut adds row to the separation storage and reports whether it renders
// the current node infeasible.
func (m *SolvingModel) AddCut(row *Row, forceCut bool) (infeasible bool) {
	inst := m.inst()
	var inf C.SCIP_Bool
	must("SCIPaddRow", C.SCIPaddRow(inst.raw(), row.raw(), cbool(forceCut), &inf))
	m.sc.cutsAdded++
	return gobool(inf)
}

// CurrentVal returns the value of v in the current LP or pseudo solution.
func (m *SolvingModel) CurrentVal(v *Variable) float64 {
	inst := m.inst()
	return float64(C.SCIPgetSolVal(inst.raw(), nil, v.transformed()))
}

// LPObjVal returns the objective value of the current LP.
func (m *SolvingModel) LPObjVal() float64 {
	return float64(C.SCIPgetLPObjval(m.inst().raw()))
}

func (m *SolvingModel) LPStatus() LPStatus {
	return lpStatusOf(C.SCIPgetLPSolstat(m.inst().raw()))
}

// CreateSol creates an empty solution over the transformed variables. A
// solution that is not added is freed when the callback returns.
func (m *SolvingModel) CreateSol() *Solution {
	inst := m.inst()
	var heur *C.SCIP_HEUR
	if reg := m.sc.reg; reg != nil && reg.kind == kindHeuristic {
		heur = (*C.SCIP_HEUR)(reg.native)
	}
	var sol *C.SCIP_SOL
	must("SCIPcreateSol", C.SCIPcreateSol(inst.raw(), &sol, heur))
	return inst.newSol(sol, m.sc)
}

// AddSol hands sol to the engine and reports whether it was stored.
func (m *SolvingModel) AddSol(sol *Solution) bool {
	return m.inst().addSol(sol)
}

// BestSol returns the incumbent, or nil.
func (m *SolvingModel) BestSol() *Solution {
	inst := m.inst()
	p := C.SCIPgetBestSol(inst.raw())
	if p == nil {
		return nil
	}
	return inst.borrowSol(p, m.sc)
}

// NSolsFound returns the number of feasible solutions found so far.
func (m *SolvingModel) NSolsFound() int64 {
	return int64(C.SCIPgetNSolsFound(m.inst().raw()))
}

// CutoffBound returns the bound above which nodes are cut off.
func (m *SolvingModel) CutoffBound() float64 {
	return float64(C.SCIPgetCutoffbound(m.inst().raw()))
}

// ObjSense returns the optimization direction.
func (m *SolvingModel) ObjSense() ObjSense {
	if C.SCIPgetObjsense(m.inst().raw()) == C.SCIP_OBJSENSE_MAXIMIZE {
		return Maximize
	}
	return Minimize
}

// Interrupt asks the engine to stop solving as soon as possible. The solve
// then ends with StatusUserInterrupt.
func (m *SolvingModel) Interrupt() {
	must("SCIPinterruptSolve", C.SCIPinterruptSolve(m.inst().raw()))
}
