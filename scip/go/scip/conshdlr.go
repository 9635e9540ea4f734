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
)

/*
#include "bridge.h"
*/
import "C"

// ConshdlrResult is the outcome of enforcing a constraint handler.
type ConshdlrResult int

// The enforcement outcomes.
const (
	// ConshdlrFeasible states that the solution satisfies the handler.
	ConshdlrFeasible ConshdlrResult = iota
	// ConshdlrCutOff states that the current node is infeasible.
	ConshdlrCutOff
	// ConshdlrConsAdded requires that Enforce added a constraint.
	ConshdlrConsAdded
	ConshdlrReducedDom
	// ConshdlrSeparated requires that Enforce added a cut. It is not allowed
	// when enforcing a pseudo solution.
	ConshdlrSeparated
	ConshdlrSolveLP
	// ConshdlrBranched requires that Enforce created a child.
	ConshdlrBranched
)

func (r ConshdlrResult) String() string {
	switch r {
	case ConshdlrFeasible:
		return "Feasible"
	case ConshdlrCutOff:
		return "CutOff"
	case ConshdlrConsAdded:
		return "ConsAdded"
	case ConshdlrReducedDom:
		return "ReducedDom"
	case ConshdlrSeparated:
		return "Separated"
	case ConshdlrSolveLP:
		return "SolveLP"
	case ConshdlrBranched:
		return "Branched"
	}
	return fmt.Sprintf("ConshdlrResult(%d)", int(r))
}

func (r ConshdlrResult) native() C.SCIP_RESULT {
	switch r {
	case ConshdlrCutOff:
		return C.SCIP_CUTOFF
	case ConshdlrConsAdded:
		return C.SCIP_CONSADDED
	case ConshdlrReducedDom:
		return C.SCIP_REDUCEDDOM
	case ConshdlrSeparated:
		return C.SCIP_SEPARATED
	case ConshdlrSolveLP:
		return C.SCIP_SOLVELP
	case ConshdlrBranched:
		return C.SCIP_BRANCHED
	}
	return C.SCIP_FEASIBLE
}

// ConstraintHandler enforces a constraint that is not expressed through
// native constraints, such as subtour elimination.
//
// Check is a predicate over a candidate solution and must not modify the
// problem. Enforce is called when the relaxation solution has to be made
// feasible for the handler.
type ConstraintHandler interface {
	Check(m *SolvingModel, sol *Solution) bool
	Enforce(m *SolvingModel) ConshdlrResult
}

// ConstraintHandlerConfig holds the registration settings of a constraint
// handler.
type ConstraintHandlerConfig struct {
	Name          string
	Desc          string
	EnfoPriority  int
	CheckPriority int
	// EagerFreq zero means the handler is only called when needed.
	EagerFreq int
}

// IncludeConstraintHandler registers hdlr with the engine. The handler
// does not need constraints of its own to be called.
func (m *ProblemModel) IncludeConstraintHandler(cfg ConstraintHandlerConfig, hdlr ConstraintHandler) *ProblemModel {
	inst := m.inst()
	reg := newRegistration(m.c.h, kindConstraintHandler, cfg.Name, hdlr)
	name, desc := C.CString(reg.name), C.CString(cfg.Desc)
	defer C.free(unsafe.Pointer(name))
	defer C.free(unsafe.Pointer(desc))

	var native *C.SCIP_CONSHDLR
	rc := C.SCIPincludeConshdlrBasic(inst.raw(), &native, name, desc,
		C.int(cfg.EnfoPriority), C.int(cfg.CheckPriority), C.int(cfg.EagerFreq), C.FALSE,
		(*[0]byte)(C.goConsEnfoLP), (*[0]byte)(C.goConsEnfoPS),
		(*[0]byte)(C.goConsCheck), (*[0]byte)(C.goConsLock),
		(*C.SCIP_CONSHDLRDATA)(reg.data()))
	if rc == C.SCIP_OKAY {
		rc = C.SCIPsetConshdlrFree(inst.raw(), native, (*[0]byte)(C.goConsFree))
	}
	reg.included(rc, unsafe.Pointer(native))
	return m
}

func (reg *registration) enforce(m *SolvingModel, pseudo bool, result *C.SCIP_RESULT) error {
	before := m.NChildren()
	res := reg.impl.(ConstraintHandler).Enforce(m)
	switch res {
	case ConshdlrConsAdded:
		if m.sc.conssAdded == 0 {
			return reg.violationf("ConsAdded returned but no constraint was added")
		}
	case ConshdlrSeparated:
		if pseudo {
			return reg.violationf("Separated returned when enforcing a pseudo solution")
		}
		if m.sc.cutsAdded == 0 {
			return reg.violationf("Separated returned but no cut was added")
		}
	case ConshdlrBranched:
		if m.NChildren() <= before {
			return reg.violationf("Branched returned but no child was created")
		}
	}
	*result = res.native()
	return nil
}

//export goConsEnfoLP
func goConsEnfoLP(scip *C.SCIP, conshdlr *C.SCIP_CONSHDLR, conss **C.SCIP_CONS, nconss, nusefulconss C.int, solinfeasible C.SCIP_Bool, result *C.SCIP_RESULT) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPconshdlrGetData(conshdlr)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		return reg.enforce(m, false, result)
	})
}

//export goConsEnfoPS
func goConsEnfoPS(scip *C.SCIP, conshdlr *C.SCIP_CONSHDLR, conss **C.SCIP_CONS, nconss, nusefulconss C.int, solinfeasible, objinfeasible C.SCIP_Bool, result *C.SCIP_RESULT) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPconshdlrGetData(conshdlr)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		return reg.enforce(m, true, result)
	})
}

//export goConsCheck
func goConsCheck(scip *C.SCIP, conshdlr *C.SCIP_CONSHDLR, conss **C.SCIP_CONS, nconss C.int, sol *C.SCIP_SOL, checkintegrality, checklprows, printreason, completely C.SCIP_Bool, result *C.SCIP_RESULT) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPconshdlrGetData(conshdlr)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		if reg.impl.(ConstraintHandler).Check(m, m.inst().borrowSol(sol, m.sc)) {
			*result = C.SCIP_FEASIBLE
		} else {
			*result = C.SCIP_INFEASIBLE
		}
		return nil
	})
}

// goConsLock has nothing to lock: the handler owns no constraints.
//
//export goConsLock
func goConsLock(scip *C.SCIP, conshdlr *C.SCIP_CONSHDLR, cons *C.SCIP_CONS, locktype C.SCIP_LOCKTYPE, nlockspos, nlocksneg C.int) C.SCIP_RETCODE {
	return C.SCIP_OKAY
}

//export goConsFree
func goConsFree(scip *C.SCIP, conshdlr *C.SCIP_CONSHDLR) C.SCIP_RETCODE {
	return registrationOf(unsafe.Pointer(C.SCIPconshdlrGetData(conshdlr))).free()
}
