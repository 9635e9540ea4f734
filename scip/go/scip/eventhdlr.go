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

// EventHandler receives the events selected by its mask. The handler
// subscribes when the problem is transformed and unsubscribes when the
// transformed problem is freed.
type EventHandler interface {
	EventMask() EventMask
	Execute(m *SolvingModel, ev *Event)
}

// EventHandlerConfig holds the registration settings of an event handler.
type EventHandlerConfig struct {
	Name string
	Desc string
}

// IncludeEventHandler registers hdlr with the engine.
func (m *ProblemModel) IncludeEventHandler(cfg EventHandlerConfig, hdlr EventHandler) *ProblemModel {
	inst := m.inst()
	reg := newRegistration(m.c.h, kindEventHandler, cfg.Name, hdlr)
	reg.mask = hdlr.EventMask()
	name, desc := C.CString(reg.name), C.CString(cfg.Desc)
	defer C.free(unsafe.Pointer(name))
	defer C.free(unsafe.Pointer(desc))

	rc := C.SCIPincludeEventhdlr(inst.raw(), name, desc,
		nil, (*[0]byte)(C.goEventFree),
		(*[0]byte)(C.goEventInit), (*[0]byte)(C.goEventExit),
		nil, nil, nil,
		(*[0]byte)(C.goEventExec),
		(*C.SCIP_EVENTHDLRDATA)(reg.data()))
	var native unsafe.Pointer
	if rc == C.SCIP_OKAY {
		native = unsafe.Pointer(C.SCIPfindEventhdlr(inst.raw(), name))
	}
	reg.included(rc, native)
	return m
}

//export goEventInit
func goEventInit(scip *C.SCIP, hdlr *C.SCIP_EVENTHDLR) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPeventhdlrGetData(hdlr)))
	rc := C.SCIPcatchEvent(scip, C.SCIP_EVENTTYPE(reg.mask), hdlr, nil, nil)
	if rc != C.SCIP_OKAY {
		log.Errorf("scip: eventhdlr %q: catching %#x: %v", reg.name, uint64(reg.mask), retcodeOf(rc))
	}
	return rc
}

//export goEventExit
func goEventExit(scip *C.SCIP, hdlr *C.SCIP_EVENTHDLR) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPeventhdlrGetData(hdlr)))
	return C.SCIPdropEvent(scip, C.SCIP_EVENTTYPE(reg.mask), hdlr, nil, -1)
}

//export goEventExec
func goEventExec(scip *C.SCIP, hdlr *C.SCIP_EVENTHDLR, event *C.SCIP_EVENT, eventdata *C.SCIP_EVENTDATA) C.SCIP_RETCODE {
	reg := registrationOf(unsafe.Pointer(C.SCIPeventhdlrGetData(hdlr)))
	return reg.invoke(scip, func(m *SolvingModel) error {
		reg.impl.(EventHandler).Execute(m, &Event{sc: m.sc, ptr: event})
		return nil
	})
}

//export goEventFree
func goEventFree(scip *C.SCIP, hdlr *C.SCIP_EVENTHDLR) C.SCIP_RETCODE {
	return registrationOf(unsafe.Pointer(C.SCIPeventhdlrGetData(hdlr))).free()
}
