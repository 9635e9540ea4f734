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

// Node is a node of the branch-and-bound tree. Nodes carry no native
// reference count; a Node is valid until the callback that obtained it
// returns.
type Node struct {
	sc  *scope
	ptr *C.SCIP_NODE
}

func (n *Node) raw() *C.SCIP_NODE {
	n.sc.check()
	return n.ptr
}

// Number returns the node's unique number in the tree.
func (n *Node) Number() int64 {
	return int64(C.SCIPnodeGetNumber(n.raw()))
}

func (n *Node) Depth() int {
	return int(C.SCIPnodeGetDepth(n.raw()))
}

// LowerBound returns the node's dual bound.
func (n *Node) LowerBound() float64 {
	return float64(C.SCIPnodeGetLowerbound(n.raw()))
}

// Estimate returns the estimated value of the best feasible solution in the
// node's subtree.
func (n *Node) Estimate() float64 {
	return float64(C.SCIPnodeGetEstimate(n.raw()))
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	p := C.SCIPnodeGetParent(n.raw())
	if p == nil {
		return nil
	}
	return &Node{sc: n.sc, ptr: p}
}

// NAddedConss returns the number of constraints added locally to the node.
func (n *Node) NAddedConss() int {
	return int(C.SCIPnodeGetNAddedConss(n.raw()))
}

// Equal reports whether n and o are the same tree node.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.ptr == o.ptr
}
