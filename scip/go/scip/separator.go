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

// SeparationResult is the outcome of a separation round.
type SeparationResult int

// The separation outcomes.
const (
	SepaDidNotRun SeparationResult = iota
	SepaDidNotFind
	SepaSeparated
	SepaCutoff
	SepaConsAdded
	SepaReducedDomain
	SepaDelayed
	SepaNewRound
)

func (r SeparationResult) String() string {
	switch r {
	case SepaDidNotRun:
		return "DidNotRun"
	case SepaDidNotFind:
		return "DidNotFind"
	case SepaSeparated:
		return "Separated"
	case SepaCutoff:
		return "Cutoff"
	case SepaConsAdded:
		return "ConsAdded"
	case SepaReducedDomain:
		return "ReducedDomain"
	case SepaDelayed:
		return "Delayed"
	case SepaNewRound:
		return "NewRound"
	}
	return fmt.Sprintf("SeparationResult(%d)", int(r))
}

func (r SeparationResult) native() C.SCIP_RESULT {
	switch r {
	case SepaDidNotFind:
		return C.SCIP_DIDNOTFIND
	case SepaSeparated:
		return C.SCIP_SEPARATED
	case SepaCutoff:
		return C.SCIP_CUTOFF
	case SepaConsAdded:
		return C.SCIP_CONSADDED
	case SepaReducedDomain:
		return C.SCIP_REDUCEDDOM
	case SepaDelayed:
		return C.SCIP_DELAYED
	case SepaNewRound:
		return C.SCIP_NEWROUND
	}
	return C.SCIP_DIDNOTRUN
}

// Separator looks for cuts violated by the current LP solution. Rows
// created with SolvingModel.CreateRow inside ExecuteLP are attributed to
// the separator.
type Separator interface {
	ExecuteLP(m *SolvingModel) SeparationResult
}

// SeparatorConfig holds the registration settings of a separator.
type SeparatorConfig struct {
	Name     string
	Desc     string
	Priority int
	// Freq is the depth frequency of calls; zero means every node and a
	// negative value restricts the separator to the root. Unlike the native
	// setting, -1 does not disable the separator; one that should never run
	// is simply not included.
	Freq int
	// MaxBoundDist zero means 1.
	MaxBoundDist float64
	UsesSubSCIP  bool
	Delay        bool
}

// IncludeSeparator registers sepa with the engine.
func (m *ProblemModel) IncludeSeparator(cfg SeparatorConfig, sepa Separator) *ProblemModel {
	inst := m.inst()
	freq, maxBoundDist := cfg.Freq, cfg.MaxBoundDist
	switch {
	case freq == 0:
		freq = 1
	case freq < 0:
		freq = 0
	}
	if maxBoundDist == 0 {
		maxBoundDist = 1
	}
	reg := newRegistration(m.c.h, kindSeparator, cfg.Name, sepa)
	name, desc := C.CString(reg.name), C.CString(cfg.Desc)
	defer C.free(unsafe.Pointer(name))
	defer C.free(unsafe.Pointer(desc))

	rc := C.SCIPincludeSepa(inst.raw(), name, desc,
		C.int(cfg.Priority), C.int(freq), C.SCIP_Real(maxBoundDist),
		cbool(cfg.UsesSubSCIP), cbool(cfg.Delay),
		nil, (*[0]byte)(C.goSepaFree), nil, nil, nil, nil,
		(*[0]byte)(C.goSepaExecLP), nil,
		(*C.SCIP_SEPADATA)(reg.data()))
	var native unsafe.Pointer
	if rc == C.SCIP_OKAY {
		native = unsafe.Pointer(C.SCIPfindSepa(inst.raw(), name))
	}
	reg.included(rc, native)
	return m
}

//export goSepaExecLP
func goSepaExecLP(scip *C.SCIP, sepa *C.SCIP_SEPA, result *C.SCIP_RESULT, allowlocal C.SCIP_Bool, depth C.int) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPsepaGetData(sepa)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		res := reg.impl.(Separator).ExecuteLP(m)
		switch {
		case res == SepaSeparated && m.sc.cutsAdded == 0:
			return reg.violationf("Separated returned but no cut was added")
		case res == SepaConsAdded && m.sc.conssAdded == 0:
			return reg.violationf("ConsAdded returned but no constraint was added")
		}
		*result = res.native()
		return nil
	})
}

//export goSepaFree
func goSepaFree(scip *C.SCIP, sepa *C.SCIP_SEPA) C.SCIP_RETCODE {
	return registrationOf(unsafe.Pointer(C.SCIPsepaGetData(sepa))).free()
}
