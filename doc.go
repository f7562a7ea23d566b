/*
Package ordset implements an ordered set of unique elements.

A Set keeps its elements sorted by an ordering function and supports insert,
erase, membership tests and lower-bound queries in O(log n). Iterators move
forward and backward through the sorted sequence and have a distinguished end
position one past the largest element.

	s := ordset.New(5, 3, 8, 1, 4, 7, 9)
	for it := s.LowerBound(4); !it.IsEnd(); it.Next() {
		fmt.Println(it.Key()) // 4 5 7 8 9
	}

Sets are backed by an AVL tree (package avltree). Every tree node caches the
largest key of its subtree and a link to its parent. The cached maximum lets
LowerBound skip subtrees holding only smaller keys; the parent link lets
iterators step to a neighbour without keeping a stack.

Sets are not safe for concurrent use. Clients have to serialize access, and
an iterator must not be used after the element it points to has been erased.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordset'
func tracer() tracing.Trace {
	return tracing.Select("ordset")
}

// SetError is an error type for the ordset module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SetError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
