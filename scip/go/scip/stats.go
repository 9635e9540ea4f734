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
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

/*
#include "bridge.h"
*/
import "C"

// Statistics is a snapshot of the solving statistics. Before the problem is
// transformed only NSols, SolvingTime and Status are populated; during a
// solve the values are partial.
type Statistics struct {
	Status    Status
	ObjVal    float64
	BestBound float64
	// Gap is the relative gap between ObjVal and BestBound.
	Gap           float64
	NNodes        int64
	NLPIterations int64
	NSols         int
	SolvingTime   time.Duration
}

func (inst *instance) statistics() Statistics {
	scip := inst.raw()
	st := Statistics{
		Status:      statusOf(C.SCIPgetStatus(scip)),
		NSols:       int(C.SCIPgetNSols(scip)),
		SolvingTime: time.Duration(float64(C.SCIPgetSolvingTime(scip)) * float64(time.Second)),
	}
	if C.SCIPgetStage(scip) < C.SCIP_STAGE_TRANSFORMED {
		return st
	}
	st.ObjVal = inst.goreal(C.SCIPgetPrimalbound(scip))
	st.BestBound = inst.goreal(C.SCIPgetDualbound(scip))
	st.Gap = inst.goreal(C.SCIPgetGap(scip))
	st.NNodes = int64(C.SCIPgetNNodes(scip))
	st.NLPIterations = int64(C.SCIPgetNLPIterations(scip))
	return st
}

// Statistics returns the statistics of the last solve, if any.
func (m *ProblemModel) Statistics() Statistics {
	return m.inst().statistics()
}

// Statistics returns the statistics of the running solve.
func (m *SolvingModel) Statistics() Statistics {
	return m.inst().statistics()
}

// Statistics returns the statistics of the solve.
func (m *SolvedModel) Statistics() Statistics {
	return m.inst().statistics()
}

// Proto returns the statistics as a protobuf Struct, for export in reports.
func (s Statistics) Proto() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"status":               s.Status.String(),
		"obj_val":              s.ObjVal,
		"best_bound":           s.BestBound,
		"gap":                  s.Gap,
		"n_nodes":              s.NNodes,
		"n_lp_iterations":      s.NLPIterations,
		"n_sols":               s.NSols,
		"solving_time_seconds": s.SolvingTime.Seconds(),
	})
}
