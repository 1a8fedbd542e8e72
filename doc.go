/*
Package skiprope implements a mutable rope for in-place editing of large
Unicode text documents.

Skiprope

Where package cords organizes immutable text fragments in a balanced tree,
skiprope targets the complementary use case: a single, mutable document that
receives very many small edits, as produced by interactive editors and by
collaborative-editing traces. Internally a rope is a probabilistic skip list
whose leaves are fixed-capacity gap buffers of UTF-8 text.

Each leaf participates in a randomly chosen number of index levels. A forward
pointer at any level carries the extent of the text it skips over, measured
simultaneously in bytes, in Unicode scalar values and in UTF-16 code units.
Positioning an edit is a descent over these levels in expected O(log n) time;
applying it is, most of the time, a short byte move inside one leaf's gap
buffer. Leaves that overflow are split, leaves that drain are unlinked.

	Operation     |   Rope          |  String
	--------------+-----------------+--------
	Insert        |   O(log n)      |   O(n)
	Delete        |   O(log n)      |   O(n)
	Index         |   O(log n)      |   O(1)
	Iterate       |   O(n)          |   O(n)

The UTF-16 metric serves callers whose native string offsets are UTF-16
based (JavaScript, the LSP wire protocol, Java). Offsets in either metric may
be converted to the other in one descent.

A rope is single-writer: no operation of this package synchronizes access.
Multiple concurrent readers are fine as long as no writer is active; callers
needing more must wrap the rope in their own synchronization shell.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

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
package skiprope

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// RopeError is an error type for the skiprope module.
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position or range exceeds the
// current length of the rope, in whichever metric the caller addressed it.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrNotCharBoundary is flagged whenever a UTF-16 offset points between the
// two code units of a surrogate pair and therefore does not correspond to a
// character boundary. Such offsets are rejected rather than rounded, because
// the rounding direction would be policy.
const ErrNotCharBoundary = RopeError("offset is not a char boundary")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

// assert panics with msg if cond does not hold. Guards conditions which are
// guaranteed by construction and must not depend on caller input.
func assert(cond bool, msg string) {
	if !cond {
		panic("skiprope: " + msg)
	}
}
