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

// Parameters is the parameter surface available in every phase. Parameters
// are addressed by their dotted native name, e.g. "limits/time".
type Parameters interface {
	SetRealParam(name string, v float64) error
	RealParam(name string) (float64, error)
	SetIntParam(name string, v int) error
	IntParam(name string) (int, error)
	SetBoolParam(name string, v bool) error
	BoolParam(name string) (bool, error)
	SetLongintParam(name string, v int64) error
	LongintParam(name string) (int64, error)
	SetStringParam(name string, v string) error
	StringParam(name string) (string, error)
}

// Option configures a model at construction.
type Option func(Parameters) error

// WithOutput enables or disables the engine's console output.
func WithOutput(show bool) Option {
	return func(p Parameters) error {
		verb := 0
		if show {
			verb = 4
		}
		return p.SetIntParam("display/verblevel", verb)
	}
}

// WithTimeLimit sets the wall-clock limit of a solve, in seconds.
func WithTimeLimit(seconds float64) Option {
	return func(p Parameters) error {
		return p.SetRealParam("limits/time", seconds)
	}
}

// WithRealParam sets a real parameter.
func WithRealParam(name string, v float64) Option {
	return func(p Parameters) error { return p.SetRealParam(name, v) }
}

// WithIntParam sets an integer parameter.
func WithIntParam(name string, v int) Option {
	return func(p Parameters) error { return p.SetIntParam(name, v) }
}

// WithBoolParam sets a boolean parameter.
func WithBoolParam(name string, v bool) Option {
	return func(p Parameters) error { return p.SetBoolParam(name, v) }
}

// WithLongintParam sets a long integer parameter.
func WithLongintParam(name string, v int64) Option {
	return func(p Parameters) error { return p.SetLongintParam(name, v) }
}

// WithStringParam sets a string parameter.
func WithStringParam(name, v string) Option {
	return func(p Parameters) error { return p.SetStringParam(name, v) }
}

func paramErr(op, name string, rc C.SCIP_RETCODE) error {
	if err := call(rc); err != nil {
		return fmt.Errorf("scip: %s %q: %w", op, name, err)
	}
	return nil
}

func (b base) SetRealParam(name string, v float64) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return paramErr("setting parameter", name, C.SCIPsetRealParam(b.inst().raw(), cname, C.SCIP_Real(v)))
}

func (b base) RealParam(name string) (float64, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var v C.SCIP_Real
	err := paramErr("reading parameter", name, C.SCIPgetRealParam(b.inst().raw(), cname, &v))
	return float64(v), err
}

func (b base) SetIntParam(name string, v int) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return paramErr("setting parameter", name, C.SCIPsetIntParam(b.inst().raw(), cname, C.int(v)))
}

func (b base) IntParam(name string) (int, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var v C.int
	err := paramErr("reading parameter", name, C.SCIPgetIntParam(b.inst().raw(), cname, &v))
	return int(v), err
}

func (b base) SetBoolParam(name string, v bool) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return paramErr("setting parameter", name, C.SCIPsetBoolParam(b.inst().raw(), cname, cbool(v)))
}

func (b base) BoolParam(name string) (bool, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var v C.SCIP_Bool
	err := paramErr("reading parameter", name, C.SCIPgetBoolParam(b.inst().raw(), cname, &v))
	return gobool(v), err
}

func (b base) SetLongintParam(name string, v int64) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return paramErr("setting parameter", name, C.SCIPsetLongintParam(b.inst().raw(), cname, C.SCIP_Longint(v)))
}

func (b base) LongintParam(name string) (int64, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var v C.SCIP_Longint
	err := paramErr("reading parameter", name, C.SCIPgetLongintParam(b.inst().raw(), cname, &v))
	return int64(v), err
}

func (b base) SetStringParam(name, v string) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cv := C.CString(v)
	defer C.free(unsafe.Pointer(cv))
	return paramErr("setting parameter", name, C.SCIPsetStringParam(b.inst().raw(), cname, cv))
}

func (b base) StringParam(name string) (string, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var v *C.char
	if err := paramErr("reading parameter", name, C.SCIPgetStringParam(b.inst().raw(), cname, &v)); err != nil {
		return "", err
	}
	return C.GoString(v), nil
}

// HideOutput silences the engine's console output.
func (b base) HideOutput() {
	if err := b.SetIntParam("display/verblevel", 0); err != nil {
		panic(err)
	}
}

// SetTimeLimit sets the wall-clock limit of a solve, in seconds.
func (b base) SetTimeLimit(seconds float64) error {
	return b.SetRealParam("limits/time", seconds)
}

// SetPresolving applies an emphasis setting to every presolver.
func (b base) SetPresolving(s ParamSetting) error {
	return paramErr("setting presolving to", s.String(), C.SCIPsetPresolving(b.inst().raw(), s.native(), C.TRUE))
}

// SetSeparating applies an emphasis setting to every separator.
func (b base) SetSeparating(s ParamSetting) error {
	return paramErr("setting separating to", s.String(), C.SCIPsetSeparating(b.inst().raw(), s.native(), C.TRUE))
}

// SetHeuristics applies an emphasis setting to every primal heuristic.
func (b base) SetHeuristics(s ParamSetting) error {
	return paramErr("setting heuristics to", s.String(), C.SCIPsetHeuristics(b.inst().raw(), s.native(), C.TRUE))
}

// Status returns the current solving status.
func (b base) Status() Status {
	return statusOf(C.SCIPgetStatus(b.inst().raw()))
}

// Version returns the version of the linked SCIP library.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", int(C.SCIPmajorVersion()), int(C.SCIPminorVersion()), int(C.SCIPtechVersion()))
}
