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
	"unsafe"

	log "github.com/golang/glog"
)

/*
#include "bridge.h"
*/
import "C"

// SolvedModel is a model whose solve has finished, whatever the status.
type SolvedModel struct {
	base
}

// BestSol returns the best solution found, or nil if there is none.
func (m *SolvedModel) BestSol() *Solution {
	inst := m.inst()
	p := C.SCIPgetBestSol(inst.raw())
	if p == nil {
		return nil
	}
	return inst.borrowSol(p, nil)
}

// Sols returns the stored solutions, best first.
func (m *SolvedModel) Sols() []*Solution {
	inst := m.inst()
	n := int(C.SCIPgetNSols(inst.raw()))
	if n == 0 {
		return nil
	}
	sols := make([]*Solution, n)
	for i, p := range unsafe.Slice(C.SCIPgetSols(inst.raw()), n) {
		sols[i] = inst.borrowSol(p, nil)
	}
	return sols
}

func (m *SolvedModel) NSols() int {
	return int(C.SCIPgetNSols(m.inst().raw()))
}

// ObjVal returns the objective value of the best solution.
func (m *SolvedModel) ObjVal() float64 {
	return float64(C.SCIPgetPrimalbound(m.inst().raw()))
}

// BestBound returns the best dual bound.
func (m *SolvedModel) BestBound() float64 {
	return float64(C.SCIPgetDualbound(m.inst().raw()))
}

// Vars returns the variables of the original problem.
func (m *SolvedModel) Vars() []*Variable {
	return m.inst().origVars(nil)
}

func (m *SolvedModel) Conss() []*Constraint {
	return m.inst().origConss(nil)
}

func (m *SolvedModel) NVars() int {
	return int(C.SCIPgetNOrigVars(m.inst().raw()))
}

func (m *SolvedModel) NConss() int {
	return int(C.SCIPgetNOrigConss(m.inst().raw()))
}

// FindCons returns the original constraint called name, or nil.
func (m *SolvedModel) FindCons(name string) *Constraint {
	return m.inst().findCons(name)
}

// Write writes the original problem to path in the format named by ext.
func (m *SolvedModel) Write(path, ext string) error {
	return m.inst().writeProblem(path, ext)
}

// FreeTransform discards the transformed problem and every solving data so
// that the original problem can be modified and solved again. References to
// transformed objects are released first; solutions borrowed from the solve
// become unusable.
func (m *SolvedModel) FreeTransform() *ProblemModel {
	c := m.c.advance(PhaseProblemBuilt)
	inst := c.h.inst
	inst.releaseAll(func(r *ref) bool { return r.transformed })
	must("SCIPfreeTransform", C.SCIPfreeTransform(inst.raw()))
	inst.epoch++
	log.V(1).Infof("scip: transformed problem freed, %d references alive", inst.live())
	return &ProblemModel{base{c}}
}
