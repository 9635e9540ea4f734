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

import "fmt"

/*
#include "bridge.h"
*/
import "C"

// Status is the solving status reported by the engine.
type Status int

// The solving statuses.
const (
	StatusUnknown Status = iota
	StatusUserInterrupt
	StatusNodeLimit
	StatusTotalNodeLimit
	StatusStallNodeLimit
	StatusTimeLimit
	StatusMemLimit
	StatusGapLimit
	StatusSolLimit
	StatusBestSolLimit
	StatusRestartLimit
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
	StatusInfOrUnbd
	StatusTerminate
)

var statusNames = [...]string{
	StatusUnknown:        "UNKNOWN",
	StatusUserInterrupt:  "USERINTERRUPT",
	StatusNodeLimit:      "NODELIMIT",
	StatusTotalNodeLimit: "TOTALNODELIMIT",
	StatusStallNodeLimit: "STALLNODELIMIT",
	StatusTimeLimit:      "TIMELIMIT",
	StatusMemLimit:       "MEMLIMIT",
	StatusGapLimit:       "GAPLIMIT",
	StatusSolLimit:       "SOLLIMIT",
	StatusBestSolLimit:   "BESTSOLLIMIT",
	StatusRestartLimit:   "RESTARTLIMIT",
	StatusOptimal:        "OPTIMAL",
	StatusInfeasible:     "INFEASIBLE",
	StatusUnbounded:      "UNBOUNDED",
	StatusInfOrUnbd:      "INFORUNBD",
	StatusTerminate:      "TERMINATE",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func statusOf(s C.SCIP_STATUS) Status {
	switch s {
	case C.SCIP_STATUS_USERINTERRUPT:
		return StatusUserInterrupt
	case C.SCIP_STATUS_NODELIMIT:
		return StatusNodeLimit
	case C.SCIP_STATUS_TOTALNODELIMIT:
		return StatusTotalNodeLimit
	case C.SCIP_STATUS_STALLNODELIMIT:
		return StatusStallNodeLimit
	case C.SCIP_STATUS_TIMELIMIT:
		return StatusTimeLimit
	case C.SCIP_STATUS_MEMLIMIT:
		return StatusMemLimit
	case C.SCIP_STATUS_GAPLIMIT:
		return StatusGapLimit
	case C.SCIP_STATUS_SOLLIMIT:
		return StatusSolLimit
	case C.SCIP_STATUS_BESTSOLLIMIT:
		return StatusBestSolLimit
	case C.SCIP_STATUS_RESTARTLIMIT:
		return StatusRestartLimit
	case C.SCIP_STATUS_OPTIMAL:
		return StatusOptimal
	case C.SCIP_STATUS_INFEASIBLE:
		return StatusInfeasible
	case C.SCIP_STATUS_UNBOUNDED:
		return StatusUnbounded
	case C.SCIP_STATUS_INFORUNBD:
		return StatusInfOrUnbd
	case C.SCIP_STATUS_TERMINATE:
		return StatusTerminate
	}
	return StatusUnknown
}

// ObjSense is the direction of optimization.
type ObjSense int

// The objective senses.
const (
	Minimize ObjSense = iota
	Maximize
)

func (o ObjSense) String() string {
	if o == Maximize {
		return "MAXIMIZE"
	}
	return "MINIMIZE"
}

func (o ObjSense) native() C.SCIP_OBJSENSE {
	if o == Maximize {
		return C.SCIP_OBJSENSE_MAXIMIZE
	}
	return C.SCIP_OBJSENSE_MINIMIZE
}

// ParamSetting is an emphasis level applied to a group of plugins.
type ParamSetting int

// The emphasis levels.
const (
	ParamDefault ParamSetting = iota
	ParamAggressive
	ParamFast
	ParamOff
)

func (p ParamSetting) String() string {
	switch p {
	case ParamDefault:
		return "DEFAULT"
	case ParamAggressive:
		return "AGGRESSIVE"
	case ParamFast:
		return "FAST"
	case ParamOff:
		return "OFF"
	}
	return fmt.Sprintf("ParamSetting(%d)", int(p))
}

func (p ParamSetting) native() C.SCIP_PARAMSETTING {
	switch p {
	case ParamAggressive:
		return C.SCIP_PARAMSETTING_AGGRESSIVE
	case ParamFast:
		return C.SCIP_PARAMSETTING_FAST
	case ParamOff:
		return C.SCIP_PARAMSETTING_OFF
	}
	return C.SCIP_PARAMSETTING_DEFAULT
}

// VarType is the domain type of a variable.
type VarType int

// The variable types.
const (
	Continuous VarType = iota
	Integer
	Binary
	ImplInt
)

func (v VarType) String() string {
	switch v {
	case Continuous:
		return "CONTINUOUS"
	case Integer:
		return "INTEGER"
	case Binary:
		return "BINARY"
	case ImplInt:
		return "IMPLINT"
	}
	return fmt.Sprintf("VarType(%d)", int(v))
}

func (v VarType) native() C.SCIP_VARTYPE {
	switch v {
	case Integer:
		return C.SCIP_VARTYPE_INTEGER
	case Binary:
		return C.SCIP_VARTYPE_BINARY
	case ImplInt:
		return C.SCIP_VARTYPE_IMPLINT
	}
	return C.SCIP_VARTYPE_CONTINUOUS
}

func varTypeOf(t C.SCIP_VARTYPE) VarType {
	switch t {
	case C.SCIP_VARTYPE_INTEGER:
		return Integer
	case C.SCIP_VARTYPE_BINARY:
		return Binary
	case C.SCIP_VARTYPE_IMPLINT:
		return ImplInt
	}
	return Continuous
}

// VarStatus is the representation of a variable inside the engine.
type VarStatus int

// The variable statuses.
const (
	VarOriginal VarStatus = iota
	VarLoose
	VarColumn
	VarFixed
	VarAggregated
	VarMultiAggregated
	VarNegated
)

func varStatusOf(s C.SCIP_VARSTATUS) VarStatus {
	switch s {
	case C.SCIP_VARSTATUS_LOOSE:
		return VarLoose
	case C.SCIP_VARSTATUS_COLUMN:
		return VarColumn
	case C.SCIP_VARSTATUS_FIXED:
		return VarFixed
	case C.SCIP_VARSTATUS_AGGREGATED:
		return VarAggregated
	case C.SCIP_VARSTATUS_MULTAGGR:
		return VarMultiAggregated
	case C.SCIP_VARSTATUS_NEGATED:
		return VarNegated
	}
	return VarOriginal
}

// LPStatus is the solution status of the last LP solved.
type LPStatus int

// The LP statuses.
const (
	LPNotSolved LPStatus = iota
	LPOptimal
	LPInfeasible
	LPUnboundedRay
	LPObjLimit
	LPIterLimit
	LPTimeLimit
	LPError
)

func lpStatusOf(s C.SCIP_LPSOLSTAT) LPStatus {
	switch s {
	case C.SCIP_LPSOLSTAT_OPTIMAL:
		return LPOptimal
	case C.SCIP_LPSOLSTAT_INFEASIBLE:
		return LPInfeasible
	case C.SCIP_LPSOLSTAT_UNBOUNDEDRAY:
		return LPUnboundedRay
	case C.SCIP_LPSOLSTAT_OBJLIMIT:
		return LPObjLimit
	case C.SCIP_LPSOLSTAT_ITERLIMIT:
		return LPIterLimit
	case C.SCIP_LPSOLSTAT_TIMELIMIT:
		return LPTimeLimit
	case C.SCIP_LPSOLSTAT_ERROR:
		return LPError
	}
	return LPNotSolved
}

// BasisStatus is the position of a row or column in the LP basis.
type BasisStatus int

// The basis statuses.
const (
	BasisLower BasisStatus = iota
	BasisBasic
	BasisUpper
	BasisZero
)

func basisStatusOf(s C.SCIP_BASESTAT) BasisStatus {
	switch s {
	case C.SCIP_BASESTAT_BASIC:
		return BasisBasic
	case C.SCIP_BASESTAT_UPPER:
		return BasisUpper
	case C.SCIP_BASESTAT_ZERO:
		return BasisZero
	}
	return BasisLower
}

// RowOrigin tells which kind of plugin created a row.
type RowOrigin int

// The row origins.
const (
	RowUnspecified RowOrigin = iota
	RowConsHandler
	RowConstraint
	RowSeparator
	RowReoptimization
)

func rowOriginOf(o C.SCIP_ROWORIGINTYPE) RowOrigin {
	switch o {
	case C.SCIP_ROWORIGINTYPE_CONSHDLR:
		return RowConsHandler
	case C.SCIP_ROWORIGINTYPE_CONS:
		return RowConstraint
	case C.SCIP_ROWORIGINTYPE_SEPA:
		return RowSeparator
	case C.SCIP_ROWORIGINTYPE_REOPT:
		return RowReoptimization
	}
	return RowUnspecified
}
