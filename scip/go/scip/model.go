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

// Package scip is a Go binding of the SCIP mixed integer programming solver.
//
// A model moves through phases, each represented by its own type so that
// only the operations valid in a phase can be called:
//
//	New()                          *UnconfiguredModel
//	  .IncludeDefaultPlugins()     *PluginsLoadedModel
//	  .CreateProblem(name)         *ProblemModel
//	  .Solve()                     *SolvedModel
//	  .FreeTransform()             *ProblemModel
//
// A transition consumes its receiver: calling any method on a consumed value
// panics with a *PhaseError. Plugins (branching rules, pricers, separators,
// heuristics, event handlers and constraint handlers) are registered on a
// *ProblemModel and receive a *SolvingModel that is only valid for the
// duration of the callback.
//
// Native memory is released by Close on any phase value of the model.
// Models are not safe for concurrent use, but independent models can be
// solved in parallel.
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

// Phase is a lifecycle phase of a model.
type Phase int

// The lifecycle phases.
const (
	PhaseUnconfigured Phase = iota
	PhasePluginsLoaded
	PhaseProblemBuilt
	PhaseSolving
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseUnconfigured:
		return "Unconfigured"
	case PhasePluginsLoaded:
		return "PluginsLoaded"
	case PhaseProblemBuilt:
		return "ProblemBuilt"
	case PhaseSolving:
		return "Solving"
	case PhaseSolved:
		return "Solved"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// PhaseError is the panic value raised when a model value is used in a phase
// it no longer represents.
type PhaseError struct {
	Phase  Phase
	Reason string
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("scip: %s model: %s", e.Phase, e.Reason)
}

// core is the per-phase state of a model value.
type core struct {
	h        *handle
	phase    Phase
	consumed bool
	sc       *scope
}

func (c *core) check() {
	if c.consumed {
		panic(&PhaseError{Phase: c.phase, Reason: "value consumed by a phase transition"})
	}
	if c.sc != nil && c.sc.expired {
		panic(&PhaseError{Phase: c.phase, Reason: "used after its callback returned"})
	}
}

// advance consumes c and returns the core of the next phase.
func (c *core) advance(next Phase) *core {
	c.check()
	c.consumed = true
	log.V(2).Infof("scip: %v -> %v", c.phase, next)
	return &core{h: c.h, phase: next}
}

// base carries the operations common to every phase.
type base struct {
	c *core
}

func (b base) inst() *instance {
	b.c.check()
	return b.c.h.inst
}

// Phase returns the phase the value represents.
func (b base) Phase() Phase {
	return b.c.phase
}

// Close frees the native instance and every native object still referenced
// by the model. It may be called on any phase value of the model, consumed
// or not, and only the first call has an effect. Close on a *SolvingModel
// is a no-op.
func (b base) Close() {
	b.c.h.Close()
}

// UnconfiguredModel is a freshly created model without plugins.
type UnconfiguredModel struct {
	base
}

// New creates a native solver instance and applies opts to it. It panics if
// the instance cannot be created or an option fails.
func New(opts ...Option) *UnconfiguredModel {
	m := &UnconfiguredModel{base{&core{h: newHandle(), phase: PhaseUnconfigured}}}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.Close()
			panic(err)
		}
	}
	return m
}

// IncludeDefaultPlugins loads the engine's default readers, presolvers,
// separators, heuristics and constraint handlers.
func (m *UnconfiguredModel) IncludeDefaultPlugins() *PluginsLoadedModel {
	c := m.c.advance(PhasePluginsLoaded)
	must("SCIPincludeDefaultPlugins", C.SCIPincludeDefaultPlugins(c.h.inst.raw()))
	return &PluginsLoadedModel{base{c}}
}

// PluginsLoadedModel is a model with plugins but without a problem.
type PluginsLoadedModel struct {
	base
}

// CreateProblem creates an empty problem.
func (m *PluginsLoadedModel) CreateProblem(name string) *ProblemModel {
	c := m.c.advance(PhaseProblemBuilt)
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	must("SCIPcreateProbBasic", C.SCIPcreateProbBasic(c.h.inst.raw(), cname))
	return &ProblemModel{base{c}}
}

// ReadProblem reads a problem from path, in the format given by its
// extension. On failure m is left usable.
func (m *PluginsLoadedModel) ReadProblem(path string) (*ProblemModel, error) {
	inst := m.inst()
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	if err := call(C.SCIPreadProb(inst.raw(), cpath, nil)); err != nil {
		return nil, fmt.Errorf("scip: reading problem %q: %w", path, err)
	}
	return &ProblemModel{base{m.c.advance(PhaseProblemBuilt)}}, nil
}
