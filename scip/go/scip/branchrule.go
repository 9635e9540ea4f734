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

// BranchingCandidate is a variable with a fractional value in the current LP
// solution.
type BranchingCandidate struct {
	Var      *Variable
	LPSolVal float64
	// Frac is the fractional part of LPSolVal.
	Frac float64
}

// BranchingKind is the outcome of a branching rule.
type BranchingKind int

// The branching outcomes.
const (
	// BranchDidNotRun leaves branching to the next rule.
	BranchDidNotRun BranchingKind = iota
	// BranchOnCandidate asks the engine to branch on BranchingResult.Candidate.
	BranchOnCandidate
	BranchCutOff
	// BranchCustom reports that the rule created the children itself.
	BranchCustom
	BranchSeparated
	BranchReduceDom
	BranchConsAdded
)

func (k BranchingKind) String() string {
	switch k {
	case BranchDidNotRun:
		return "DidNotRun"
	case BranchOnCandidate:
		return "BranchOn"
	case BranchCutOff:
		return "CutOff"
	case BranchCustom:
		return "CustomBranching"
	case BranchSeparated:
		return "Separated"
	case BranchReduceDom:
		return "ReduceDom"
	case BranchConsAdded:
		return "ConsAdded"
	}
	return fmt.Sprintf("BranchingKind(%d)", int(k))
}

// BranchingResult is the decision of a branching rule.
type BranchingResult struct {
	Kind      BranchingKind
	Candidate BranchingCandidate
}

// BranchOn returns the result asking the engine to branch on c.
func BranchOn(c BranchingCandidate) BranchingResult {
	return BranchingResult{Kind: BranchOnCandidate, Candidate: c}
}

func (r BranchingResult) native() C.SCIP_RESULT {
	switch r.Kind {
	case BranchOnCandidate, BranchCustom:
		return C.SCIP_BRANCHED
	case BranchCutOff:
		return C.SCIP_CUTOFF
	case BranchSeparated:
		return C.SCIP_SEPARATED
	case BranchReduceDom:
		return C.SCIP_REDUCEDDOM
	case BranchConsAdded:
		return C.SCIP_CONSADDED
	}
	return C.SCIP_DIDNOTRUN
}

// BranchRule is a branching rule called on fractional LP solutions.
//
// Returning BranchOn makes the engine create the children; the rule must not
// branch itself in that case. Returning BranchCustom requires the rule to
// have created at least one child.
type BranchRule interface {
	Execute(m *SolvingModel, cands []BranchingCandidate) BranchingResult
}

// BranchRuleConfig holds the registration settings of a branching rule.
type BranchRuleConfig struct {
	Name     string
	Desc     string
	Priority int
	// MaxDepth is the deepest tree level the rule is called at; zero means
	// no limit.
	MaxDepth int
	// MaxBoundDist is the maximal relative distance of the node's dual bound
	// to the global one for the rule to be called; zero means 1.
	MaxBoundDist float64
}

// IncludeBranchRule registers rule with the engine.
func (m *ProblemModel) IncludeBranchRule(cfg BranchRuleConfig, rule BranchRule) *ProblemModel {
	inst := m.inst()
	maxDepth, maxBoundDist := cfg.MaxDepth, cfg.MaxBoundDist
	if maxDepth == 0 {
		maxDepth = -1
	}
	if maxBoundDist == 0 {
		maxBoundDist = 1
	}
	reg := newRegistration(m.c.h, kindBranchRule, cfg.Name, rule)
	name, desc := C.CString(reg.name), C.CString(cfg.Desc)
	defer C.free(unsafe.Pointer(name))
	defer C.free(unsafe.Pointer(desc))

	rc := C.SCIPincludeBranchrule(inst.raw(), name, desc,
		C.int(cfg.Priority), C.int(maxDepth), C.SCIP_Real(maxBoundDist),
		nil, (*[0]byte)(C.goBranchFree), nil, nil, nil, nil,
		(*[0]byte)(C.goBranchExecLP), nil, nil,
		(*C.SCIP_BRANCHRULEDATA)(reg.data()))
	var native unsafe.Pointer
	if rc == C.SCIP_OKAY {
		native = unsafe.Pointer(C.SCIPfindBranchrule(inst.raw(), name))
	}
	reg.included(rc, native)
	return m
}

//export goBranchExecLP
func goBranchExecLP(scip *C.SCIP, rule *C.SCIP_BRANCHRULE, allowaddcons C.SCIP_Bool, result *C.SCIP_RESULT) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPbranchruleGetData(rule)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		cands := m.LPBranchCands()
		before := m.NChildren()
		res := reg.impl.(BranchRule).Execute(m, cands)
		switch res.Kind {
		case BranchOnCandidate:
			if res.Candidate.Var == nil {
				return reg.violationf("BranchOn without a candidate variable")
			}
			if n := m.NChildren(); n != before {
				return reg.violationf("BranchOn returned after the rule created %d children itself", n-before)
			}
			m.BranchVarVal(res.Candidate.Var, res.Candidate.LPSolVal)
			if m.NChildren() <= before {
				return reg.violationf("BranchOn on %s created no child", res.Candidate.Var.Name())
			}
		case BranchCustom:
			if m.NChildren() == 0 {
				return reg.violationf("CustomBranching returned without creating a child")
			}
		}
		*result = res.native()
		return nil
	})
}

//export goBranchFree
func goBranchFree(scip *C.SCIP, rule *C.SCIP_BRANCHRULE) C.SCIP_RETCODE {
	return registrationOf(unsafe.Pointer(C.SCIPbranchruleGetData(rule))).free()
}
