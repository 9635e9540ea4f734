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

/*
#include "bridge.h"
*/
import "C"

// EventMask is a set of event types. Composite masks are formed with |.
type EventMask uint64

// Elementary event types.
const (
	EventDisabled        EventMask = 0x000000000
	EventVarAdded        EventMask = 0x000000001
	EventVarDeleted      EventMask = 0x000000002
	EventVarFixed        EventMask = 0x000000004
	EventVarUnlocked     EventMask = 0x000000008
	EventObjChanged      EventMask = 0x000000010
	EventGlbChanged      EventMask = 0x000000020
	EventGubChanged      EventMask = 0x000000040
	EventLbTightened     EventMask = 0x000000080
	EventLbRelaxed       EventMask = 0x000000100
	EventUbTightened     EventMask = 0x000000200
	EventUbRelaxed       EventMask = 0x000000400
	EventGHoleAdded      EventMask = 0x000000800
	EventGHoleRemoved    EventMask = 0x000001000
	EventLHoleAdded      EventMask = 0x000002000
	EventLHoleRemoved    EventMask = 0x000004000
	EventImplAdded       EventMask = 0x000008000
	EventTypeChanged     EventMask = 0x000010000
	EventPresolveRound   EventMask = 0x000020000
	EventNodeFocused     EventMask = 0x000040000
	EventNodeFeasible    EventMask = 0x000080000
	EventNodeInfeasible  EventMask = 0x000100000
	EventNodeBranched    EventMask = 0x000200000
	EventNodeDelete      EventMask = 0x000400000
	EventFirstLPSolved   EventMask = 0x000800000
	EventLPSolved        EventMask = 0x001000000
	EventPoorSolFound    EventMask = 0x002000000
	EventBestSolFound    EventMask = 0x004000000
	EventRowAddedSepa    EventMask = 0x008000000
	EventRowDeletedSepa  EventMask = 0x010000000
	EventRowAddedLP      EventMask = 0x020000000
	EventRowDeletedLP    EventMask = 0x040000000
	EventRowCoefChanged  EventMask = 0x080000000
	EventRowConstChanged EventMask = 0x100000000
	EventRowSideChanged  EventMask = 0x200000000
	EventSync            EventMask = 0x400000000
)

// Composite event types.
const (
	EventGbdChanged     = EventGlbChanged | EventGubChanged
	EventLbChanged      = EventLbTightened | EventLbRelaxed
	EventUbChanged      = EventUbTightened | EventUbRelaxed
	EventBoundTightened = EventLbTightened | EventUbTightened
	EventBoundRelaxed   = EventLbRelaxed | EventUbRelaxed
	EventBoundChanged   = EventLbChanged | EventUbChanged
	EventGHoleChanged   = EventGHoleAdded | EventGHoleRemoved
	EventLHoleChanged   = EventLHoleAdded | EventLHoleRemoved
	EventHoleChanged    = EventGHoleChanged | EventLHoleChanged
	EventDomChanged     = EventBoundChanged | EventHoleChanged
	EventVarChanged     = EventVarFixed | EventVarUnlocked | EventObjChanged | EventGbdChanged |
		EventDomChanged | EventImplAdded | EventVarDeleted | EventTypeChanged
	EventVarEvent   = EventVarAdded | EventVarChanged | EventTypeChanged
	EventNodeSolved = EventNodeFeasible | EventNodeInfeasible | EventNodeBranched
	EventNodeEvent  = EventNodeFocused | EventNodeSolved
	EventLPEvent    = EventFirstLPSolved | EventLPSolved
	EventSolFound   = EventPoorSolFound | EventBestSolFound
	EventSolEvent   = EventSolFound
	EventRowChanged = EventRowCoefChanged | EventRowConstChanged | EventRowSideChanged
	EventRowEvent   = EventRowAddedSepa | EventRowDeletedSepa | EventRowAddedLP |
		EventRowDeletedLP | EventRowChanged
)

// Has reports whether every bit of o is set in m.
func (m EventMask) Has(o EventMask) bool {
	return m&o == o && o != 0
}

// Intersects reports whether m and o share at least one event type.
func (m EventMask) Intersects(o EventMask) bool {
	return m&o != 0
}

// Event is an event delivered to an event handler. It is valid until the
// handler returns.
type Event struct {
	sc  *scope
	ptr *C.SCIP_EVENT
}

// Type returns the event's type.
func (e *Event) Type() EventMask {
	e.sc.check()
	return EventMask(C.SCIPeventGetType(e.ptr))
}

// Node returns the node of a node event, or nil for other events.
func (e *Event) Node() *Node {
	if !e.Type().Intersects(EventNodeEvent | EventNodeDelete) {
		return nil
	}
	p := C.SCIPeventGetNode(e.ptr)
	if p == nil {
		return nil
	}
	return &Node{sc: e.sc, ptr: p}
}

// Var returns the variable of a variable event, or nil for other events.
func (e *Event) Var() *Variable {
	if !e.Type().Intersects(EventVarEvent) {
		return nil
	}
	p := C.SCIPeventGetVar(e.ptr)
	if p == nil {
		return nil
	}
	return e.sc.inst.wrapVar(p, false, e.sc)
}

// Sol returns the solution of a solution event, or nil for other events.
func (e *Event) Sol() *Solution {
	if !e.Type().Intersects(EventSolEvent) {
		return nil
	}
	p := C.SCIPeventGetSol(e.ptr)
	if p == nil {
		return nil
	}
	return e.sc.inst.borrowSol(p, e.sc)
}
