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

// HeurTiming is a set of points in the solving loop at which a heuristic is
// called.
type HeurTiming uint32

// The heuristic timings.
const (
	BeforeNode        HeurTiming = 0x001
	DuringLPLoop      HeurTiming = 0x002
	AfterLPLoop       HeurTiming = 0x004
	AfterLPNode       HeurTiming = 0x008
	AfterPseudoNode   HeurTiming = 0x010
	AfterLPPlunge     HeurTiming = 0x020
	AfterPseudoPlunge HeurTiming = 0x040
	DuringPricingLoop HeurTiming = 0x080
	BeforePresol      HeurTiming = 0x100
	DuringPresolLoop  HeurTiming = 0x200
	AfterPropLoop     HeurTiming = 0x400

	AfterNode   = AfterLPNode | AfterPseudoNode
	AfterPlunge = AfterLPPlunge | AfterPseudoPlunge
)

// HeurResult is the outcome of a heuristic call.
type HeurResult int

// The heuristic outcomes.
const (
	HeurDidNotRun HeurResult = iota
	// HeurFoundSol requires that the heuristic added a solution the engine
	// accepted.
	HeurFoundSol
	HeurNoSolFound
	HeurDelayed
)

func (r HeurResult) String() string {
	switch r {
	case HeurDidNotRun:
		return "DidNotRun"
	case HeurFoundSol:
		return "FoundSol"
	case HeurNoSolFound:
		return "NoSolFound"
	case HeurDelayed:
		return "Delayed"
	}
	return fmt.Sprintf("HeurResult(%d)", int(r))
}

func (r HeurResult) native() C.SCIP_RESULT {
	switch r {
	case HeurFoundSol:
		return C.SCIP_FOUNDSOL
	case HeurNoSolFound:
		return C.SCIP_DIDNOTFIND
	case HeurDelayed:
		return C.SCIP_DELAYED
	}
	return C.SCIP_DIDNOTRUN
}

// Heuristic searches for primal solutions. Solutions created with
// SolvingModel.CreateSol inside Execute are attributed to the heuristic.
type Heuristic interface {
	Execute(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult
}

// HeuristicConfig holds the registration settings of a heuristic.
type HeuristicConfig struct {
	Name string
	Desc string
	// DispChar is shown in the solving log next to solutions found by the
	// heuristic; zero means 'g'.
	DispChar byte
	Priority int
	// Freq is the depth frequency of calls; zero means every node and a
	// negative value restricts the heuristic to the root. Unlike the native
	// setting, -1 does not disable the heuristic; one that should never run
	// is simply not included.
	Freq    int
	FreqOfs int
	// MaxDepth zero means no limit.
	MaxDepth int
	// Timing zero means BeforeNode.
	Timing      HeurTiming
	UsesSubSCIP bool
}

// IncludeHeuristic registers heur with the engine.
func (m *ProblemModel) IncludeHeuristic(cfg HeuristicConfig, heur Heuristic) *ProblemModel {
	inst := m.inst()
	dispChar, freq, maxDepth, timing := cfg.DispChar, cfg.Freq, cfg.MaxDepth, cfg.Timing
	if dispChar == 0 {
		dispChar = 'g'
	}
	switch {
	case freq == 0:
		freq = 1
	case freq < 0:
		freq = 0
	}
	if maxDepth == 0 {
		maxDepth = -1
	}
	if timing == 0 {
		timing = BeforeNode
	}
	reg := newRegistration(m.c.h, kindHeuristic, cfg.Name, heur)
	name, desc := C.CString(reg.name), C.CString(cfg.Desc)
	defer C.free(unsafe.Pointer(name))
	defer C.free(unsafe.Pointer(desc))

	rc := C.SCIPincludeHeur(inst.raw(), name, desc, C.char(dispChar),
		C.int(cfg.Priority), C.int(freq), C.int(cfg.FreqOfs), C.int(maxDepth),
		C.SCIP_HEURTIMING(timing), cbool(cfg.UsesSubSCIP),
		nil, (*[0]byte)(C.goHeurFree), nil, nil, nil, nil,
		(*[0]byte)(C.goHeurExec),
		(*C.SCIP_HEURDATA)(reg.data()))
	var native unsafe.Pointer
	if rc == C.SCIP_OKAY {
		native = unsafe.Pointer(C.SCIPfindHeur(inst.raw(), name))
	}
	reg.included(rc, native)
	return m
}

//export goHeurExec
func goHeurExec(scip *C.SCIP, heur *C.SCIP_HEUR, timing C.SCIP_HEURTIMING, nodeinfeasible C.SCIP_Bool, result *C.SCIP_RESULT) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPheurGetData(heur)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		before := m.NSolsFound()
		res := reg.impl.(Heuristic).Execute(m, HeurTiming(timing), gobool(nodeinfeasible))
		if res == HeurFoundSol && m.NSolsFound() <= before {
			return reg.violationf("FoundSol returned but no solution was accepted")
		}
		*result = res.native()
		return nil
	})
}

//export goHeurFree
func goHeurFree(scip *C.SCIP, heur *C.SCIP_HEUR) C.SCIP_RETCODE {
	return registrationOf(unsafe.Pointer(C.SCIPheurGetData(heur))).free()
}
