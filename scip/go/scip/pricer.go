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

// PricerState is the outcome of a pricing round.
type PricerState int

// The pricing outcomes.
const (
	PricerDidNotRun PricerState = iota
	// PricerFoundColumns requires that at least one variable was added.
	PricerFoundColumns
	PricerNoColumns
	// PricerStopEarly ends pricing at the node before the LP is solved to
	// optimality. It is not allowed in Farkas pricing.
	PricerStopEarly
)

func (s PricerState) String() string {
	switch s {
	case PricerDidNotRun:
		return "DidNotRun"
	case PricerFoundColumns:
		return "FoundColumns"
	case PricerNoColumns:
		return "NoColumns"
	case PricerStopEarly:
		return "StopEarly"
	}
	return fmt.Sprintf("PricerState(%d)", int(s))
}

// PricerResult is the outcome of a pricing round, with an optional lower
// bound on the objective of the node's LP.
type PricerResult struct {
	State         PricerState
	LowerBound    float64
	HasLowerBound bool
}

// WithLowerBound returns r carrying the lower bound lb.
func (r PricerResult) WithLowerBound(lb float64) PricerResult {
	r.LowerBound, r.HasLowerBound = lb, true
	return r
}

// Pricer generates columns. GenerateColumns is called with farkas set when
// the LP is infeasible and columns must repair infeasibility, and with farkas
// unset for reduced cost pricing.
type Pricer interface {
	GenerateColumns(m *SolvingModel, farkas bool) PricerResult
}

// PricerConfig holds the registration settings of a pricer.
type PricerConfig struct {
	Name     string
	Desc     string
	Priority int
	// Delay calls the pricer only after every other pricer found no column.
	Delay bool
}

// IncludePricer registers and activates pricer.
func (m *ProblemModel) IncludePricer(cfg PricerConfig, pricer Pricer) *ProblemModel {
	inst := m.inst()
	reg := newRegistration(m.c.h, kindPricer, cfg.Name, pricer)
	name, desc := C.CString(reg.name), C.CString(cfg.Desc)
	defer C.free(unsafe.Pointer(name))
	defer C.free(unsafe.Pointer(desc))

	rc := C.SCIPincludePricer(inst.raw(), name, desc,
		C.int(cfg.Priority), cbool(cfg.Delay),
		nil, (*[0]byte)(C.goPricerFree), nil, nil, nil, nil,
		(*[0]byte)(C.goPricerRedcost), (*[0]byte)(C.goPricerFarkas),
		(*C.SCIP_PRICERDATA)(reg.data()))
	var native *C.SCIP_PRICER
	if rc == C.SCIP_OKAY {
		native = C.SCIPfindPricer(inst.raw(), name)
		rc = C.SCIPactivatePricer(inst.raw(), native)
	}
	reg.included(rc, unsafe.Pointer(native))
	return m
}

func (reg *registration) price(m *SolvingModel, farkas bool, lowerbound *C.SCIP_Real, stopearly *C.SCIP_Bool, result *C.SCIP_RESULT) error {
	before := m.NVars()
	res := reg.impl.(Pricer).GenerateColumns(m, farkas)
	switch res.State {
	case PricerFoundColumns:
		if after := m.NVars(); after <= before {
			return reg.violationf("FoundColumns returned but the variable count went from %d to %d", before, after)
		}
	case PricerStopEarly:
		if farkas {
			return reg.violationf("StopEarly returned from Farkas pricing")
		}
		*stopearly = C.TRUE
	}
	if res.HasLowerBound && lowerbound != nil {
		*lowerbound = C.SCIP_Real(res.LowerBound)
	}
	if res.State == PricerDidNotRun {
		*result = C.SCIP_DIDNOTRUN
	} else {
		*result = C.SCIP_SUCCESS
	}
	return nil
}

//export goPricerRedcost
func goPricerRedcost(scip *C.SCIP, pricer *C.SCIP_PRICER, lowerbound *C.SCIP_Real, stopearly *C.SCIP_Bool, result *C.SCIP_RESULT) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPpricerGetData(pricer)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		return reg.price(m, false, lowerbound, stopearly, result)
	})
}

//export goPricerFarkas
func goPricerFarkas(scip *C.SCIP, pricer *C.SCIP_PRICER, result *C.SCIP_RESULT) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPpricerGetData(pricer)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		return reg.price(m, true, nil, nil, result)
	})
}

//export goPricerFree
func goPricerFree(scip *C.SCIP, pricer *C.SCIP_PRICER) C.SCIP_RETCODE {
	return registrationOf(unsafe.Pointer(C.SCIPpricerGetData(pricer))).free()
}
