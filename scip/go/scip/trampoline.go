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
	"errors"
	"fmt"
	"io"
	"runtime/cgo"
	"unsafe"

	log "github.com/golang/glog"
	"github.com/google/uuid"
)

/*
#include "bridge.h"
*/
import "C"

type pluginKind int

const (
	kindBranchRule pluginKind = iota
	kindPricer
	kindSeparator
	kindHeuristic
	kindEventHandler
	kindConstraintHandler
	numPluginKinds
)

func (k pluginKind) String() string {
	switch k {
	case kindBranchRule:
		return "branchrule"
	case kindPricer:
		return "pricer"
	case kindSeparator:
		return "separator"
	case kindHeuristic:
		return "heuristic"
	case kindEventHandler:
		return "eventhdlr"
	case kindConstraintHandler:
		return "conshdlr"
	}
	return fmt.Sprintf("pluginKind(%d)", int(k))
}

// ContractViolation is the panic value raised by Solve when a plugin broke
// its contract with the engine: it returned a result whose implied side
// effect did not happen, or it panicked.
type ContractViolation struct {
	Plugin string
	Kind   string
	Reason string
	// Cause is the value the plugin panicked with, if it did.
	Cause any
}

func (v *ContractViolation) Error() string {
	if v.Cause != nil {
		return fmt.Sprintf("scip: %s %q: %s: %v", v.Kind, v.Plugin, v.Reason, v.Cause)
	}
	return fmt.Sprintf("scip: %s %q: %s", v.Kind, v.Plugin, v.Reason)
}

func (v *ContractViolation) Unwrap() error {
	err, _ := v.Cause.(error)
	return err
}

// registration ties a plugin implementation to its native plugin. The
// native user data of the plugin is a C cell holding a cgo.Handle to the
// registration, so no Go pointer is ever stored on the C side.
type registration struct {
	kind   pluginKind
	name   string
	h      *handle
	impl   any
	handle cgo.Handle
	cell   *C.goscip_cell
	// native is the SCIP_BRANCHRULE, SCIP_PRICER, ... of the plugin.
	native unsafe.Pointer
	// mask is the event mask an event handler subscribed to.
	mask EventMask
}

// newRegistration registers impl under name. An empty name is replaced by a
// unique one, since the engine rejects duplicate plugin names.
func newRegistration(h *handle, kind pluginKind, name string, impl any) *registration {
	if name == "" {
		name = kind.String() + "-" + uuid.NewString()
	}
	r := &registration{kind: kind, name: name, h: h.alias(), impl: impl}
	r.handle = cgo.NewHandle(r)
	r.cell = (*C.goscip_cell)(C.malloc(C.sizeof_goscip_cell))
	r.cell.handle = C.uintptr_t(r.handle)
	h.inst.regs[r] = struct{}{}
	return r
}

func (r *registration) data() unsafe.Pointer {
	return unsafe.Pointer(r.cell)
}

// included finishes a registration once the native include call returned.
func (r *registration) included(rc C.SCIP_RETCODE, native unsafe.Pointer) {
	if rc != C.SCIP_OKAY {
		r.free()
		panic(fmt.Errorf("scip: including %v %q: %w", r.kind, r.name, retcodeOf(rc)))
	}
	r.native = native
	log.V(1).Infof("scip: included %v %q", r.kind, r.name)
}

// registrationOf recovers the registration from native user data.
func registrationOf(data unsafe.Pointer) *registration {
	if data == nil {
		log.Fatal("scip: plugin callback invoked without user data")
	}
	cell := (*C.goscip_cell)(data)
	return cgo.Handle(cell.handle).Value().(*registration)
}

// free runs when the engine discards the plugin. Implementations that are
// io.Closers are closed.
func (r *registration) free() C.SCIP_RETCODE {
	if r.cell == nil {
		return C.SCIP_OKAY
	}
	delete(r.h.inst.regs, r)
	if c, ok := r.impl.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Warningf("scip: closing %v %q: %v", r.kind, r.name, err)
		}
	}
	r.handle.Delete()
	C.free(unsafe.Pointer(r.cell))
	r.cell = nil
	log.V(1).Infof("scip: freed %v %q", r.kind, r.name)
	return C.SCIP_OKAY
}

// violationf builds a contract violation attributed to r.
func (r *registration) violationf(format string, args ...any) error {
	return &ContractViolation{Plugin: r.name, Kind: r.kind.String(), Reason: fmt.Sprintf(format, args...)}
}

// invoke runs fn in a fresh callback scope. A violation returned by fn or a
// panic escaping it is recorded on the instance and reported to the engine
// as SCIP_ERROR, which makes the engine abort the solve; Solve then raises
// it as a panic. Panics never cross the C frames of the engine.
func (r *registration) invoke(scip *C.SCIP, fn func(m *SolvingModel) error) C.SCIP_RETCODE {
	inst := r.h.inst
	if inst.violation != nil {
		return C.SCIP_ERROR
	}
	inst.counters.callbacks[r.kind].Add(1)
	err := r.run(scip, fn)
	if err == nil {
		return C.SCIP_OKAY
	}
	var v *ContractViolation
	if !errors.As(err, &v) {
		v = &ContractViolation{Plugin: r.name, Kind: r.kind.String(), Reason: "callback failed", Cause: err}
	}
	// Nested callbacks fail outwards; the innermost violation names the
	// plugin at fault.
	if inst.violation == nil {
		inst.violation = v
	}
	inst.counters.violations.Add(1)
	log.Errorf("scip: contract violation: %v", v)
	return C.SCIP_ERROR
}

// raise panics with the violation recorded by a callback that ran outside
// of Solve, clearing it so the instance stays usable.
func (inst *instance) raise() {
	if v := inst.violation; v != nil {
		inst.violation = nil
		log.Errorf("scip: raising: %v", v)
		panic(v)
	}
}

func (r *registration) run(scip *C.SCIP, fn func(m *SolvingModel) error) (err error) {
	m := newSolvingModel(r)
	defer func() {
		if p := recover(); p != nil {
			err = &ContractViolation{Plugin: r.name, Kind: r.kind.String(), Reason: "panic in callback", Cause: p}
		}
	}()
	defer m.sc.end()
	if scip != r.h.inst.scip {
		return r.violationf("callback received a foreign SCIP instance")
	}
	return fn(m)
}
