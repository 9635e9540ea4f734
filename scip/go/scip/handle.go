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
	"math"
	"runtime"
	"unsafe"

	log "github.com/golang/glog"
)

/*
#cgo LDFLAGS: -lscip
#include "bridge.h"
*/
import "C"

// refKind tells release which native call gives a reference back.
type refKind uint8

const (
	refVar refKind = iota
	refCons
	refRow
	refSol
)

func (k refKind) String() string {
	switch k {
	case refVar:
		return "variable"
	case refCons:
		return "constraint"
	case refRow:
		return "row"
	case refSol:
		return "solution"
	}
	return fmt.Sprintf("refKind(%d)", int(k))
}

// ref is one native reference held by this package: a captured variable,
// constraint or row, or a solution created through the API. Each ref is
// released exactly once.
type ref struct {
	kind        refKind
	ptr         unsafe.Pointer
	transformed bool
	released    bool
	// scope is set for references owned by a single callback invocation.
	// They are released when the callback returns.
	scope *scope
}

// instance is the state shared by an owning handle and all its aliases.
type instance struct {
	scip *C.SCIP
	refs map[*ref]struct{}
	// epoch changes whenever transformed objects die (FreeTransform and
	// teardown). Views that hold no reference record it to detect use after
	// their native object was freed.
	epoch uint64
	// regs holds the plugins included and not yet freed by the engine.
	regs map[*registration]struct{}
	// violation is the first contract violation recorded by a callback since
	// the last Solve or raise.
	violation *ContractViolation
	counters  *counters
}

// handle owns, or aliases, one native SCIP instance.
type handle struct {
	inst   *instance
	owning bool
}

// newHandle creates a native SCIP instance and returns its owning handle.
// The native instance is freed by Close, or by a finalizer if Close is never
// called.
func newHandle() *handle {
	var raw *C.SCIP
	if rc := C.SCIPcreate(&raw); rc != C.SCIP_OKAY {
		panic(fmt.Errorf("scip: SCIPcreate failed: %w", retcodeOf(rc)))
	}
	inst := &instance{
		scip:     raw,
		refs:     make(map[*ref]struct{}),
		regs:     make(map[*registration]struct{}),
		counters: newCounters(),
	}
	h := &handle{inst: inst, owning: true}
	runtime.SetFinalizer(h, (*handle).Close)
	return h
}

// alias returns a handle sharing the instance but never tearing it down.
func (h *handle) alias() *handle {
	return &handle{inst: h.inst}
}

// Close frees the native instance if h is the owning handle. Every live
// reference is released before the instance itself. Calling Close multiple
// times has no effect.
func (h *handle) Close() {
	if !h.owning {
		return
	}
	inst := h.inst
	if inst.scip == nil {
		return
	}
	runtime.SetFinalizer(h, nil)

	switch C.SCIPgetStage(inst.scip) {
	case C.SCIP_STAGE_PROBLEM, C.SCIP_STAGE_TRANSFORMED, C.SCIP_STAGE_INITPRESOLVE,
		C.SCIP_STAGE_PRESOLVING, C.SCIP_STAGE_PRESOLVED, C.SCIP_STAGE_EXITPRESOLVE,
		C.SCIP_STAGE_INITSOLVE, C.SCIP_STAGE_SOLVING, C.SCIP_STAGE_SOLVED,
		C.SCIP_STAGE_EXITSOLVE:
		inst.releaseAll(func(*ref) bool { return true })
	default:
		if len(inst.refs) != 0 {
			log.Warningf("scip: %d references alive outside of a problem stage", len(inst.refs))
		}
	}

	if rc := C.SCIPfree(&inst.scip); rc != C.SCIP_OKAY {
		panic(fmt.Errorf("scip: SCIPfree failed: %w", retcodeOf(rc)))
	}
	inst.scip = nil
	inst.epoch++
	if n := len(inst.regs); n != 0 {
		log.Warningf("scip: %d plugins were not freed with the instance", n)
	}
	log.V(1).Infof("scip: instance freed (captures=%d releases=%d)",
		inst.counters.captures.Load(), inst.counters.releases.Load())
}

// raw returns the native pointer, panicking if the instance is gone.
func (inst *instance) raw() *C.SCIP {
	if inst.scip == nil {
		panic("scip: use of a model after Close")
	}
	return inst.scip
}

// capture records a native reference. Unless created is set, the native
// reference count is incremented first; objects returned by a native
// creation call already carry the reference this package owns.
func (inst *instance) capture(kind refKind, ptr unsafe.Pointer, transformed, created bool, sc *scope) *ref {
	if !created {
		var rc C.SCIP_RETCODE
		switch kind {
		case refVar:
			rc = C.SCIPcaptureVar(inst.raw(), (*C.SCIP_VAR)(ptr))
		case refCons:
			rc = C.SCIPcaptureCons(inst.raw(), (*C.SCIP_CONS)(ptr))
		case refRow:
			rc = C.SCIPcaptureRow(inst.raw(), (*C.SCIP_ROW)(ptr))
		default:
			panic(fmt.Sprintf("scip: %v cannot be captured", kind))
		}
		must("capture "+kind.String(), rc)
	}
	r := &ref{kind: kind, ptr: ptr, transformed: transformed, scope: sc}
	inst.refs[r] = struct{}{}
	if sc != nil {
		sc.refs = append(sc.refs, r)
	}
	inst.counters.captures.Add(1)
	return r
}

// release gives r back to the native engine. Releasing twice is a no-op.
func (inst *instance) release(r *ref) {
	if r == nil || r.released {
		return
	}
	var rc C.SCIP_RETCODE
	switch r.kind {
	case refVar:
		v := (*C.SCIP_VAR)(r.ptr)
		rc = C.SCIPreleaseVar(inst.raw(), &v)
	case refCons:
		c := (*C.SCIP_CONS)(r.ptr)
		rc = C.SCIPreleaseCons(inst.raw(), &c)
	case refRow:
		row := (*C.SCIP_ROW)(r.ptr)
		rc = C.SCIPreleaseRow(inst.raw(), &row)
	case refSol:
		s := (*C.SCIP_SOL)(r.ptr)
		rc = C.SCIPfreeSol(inst.raw(), &s)
	}
	inst.forget(r)
	must("release "+r.kind.String(), rc)
}

// forget marks r released without a native call. It is used when the native
// engine took the reference over, as SCIPaddSolFree does.
func (inst *instance) forget(r *ref) {
	r.released = true
	delete(inst.refs, r)
	inst.counters.releases.Add(1)
}

// releaseAll releases every live reference accepted by match. Rows and
// solutions go first since they may point at variables.
func (inst *instance) releaseAll(match func(*ref) bool) {
	for _, kind := range []refKind{refSol, refRow, refCons, refVar} {
		for r := range inst.refs {
			if r.kind == kind && match(r) {
				inst.release(r)
			}
		}
	}
}

// live returns the number of references not yet released.
func (inst *instance) live() int {
	return len(inst.refs)
}

// check panics if r can no longer be used.
func (r *ref) check() {
	if r.released {
		panic(fmt.Sprintf("scip: use of a released %v", r.kind))
	}
}

// must panics when a native call the caller cannot recover from fails.
func must(op string, rc C.SCIP_RETCODE) {
	if rc != C.SCIP_OKAY {
		panic(fmt.Errorf("scip: %s failed: %w", op, retcodeOf(rc)))
	}
}

// call converts a native return code to an error.
func call(rc C.SCIP_RETCODE) error {
	return retcodeOf(rc).asError()
}

func retcodeOf(rc C.SCIP_RETCODE) Retcode {
	return RetcodeFromInt(int(rc))
}

func cbool(b bool) C.SCIP_Bool {
	if b {
		return C.TRUE
	}
	return C.FALSE
}

func gobool(b C.SCIP_Bool) bool {
	return b != C.FALSE
}

// creal maps Go infinities onto the native infinity value.
func (inst *instance) creal(v float64) C.SCIP_Real {
	switch {
	case math.IsInf(v, 1):
		return C.SCIPinfinity(inst.raw())
	case math.IsInf(v, -1):
		return -C.SCIPinfinity(inst.raw())
	}
	return C.SCIP_Real(v)
}

// goreal maps native infinity values onto Go infinities.
func (inst *instance) goreal(v C.SCIP_Real) float64 {
	inf := C.SCIPinfinity(inst.raw())
	switch {
	case v >= inf:
		return math.Inf(1)
	case v <= -inf:
		return math.Inf(-1)
	}
	return float64(v)
}
