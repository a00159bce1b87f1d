/*
Package ordmap implements an in-memory ordered symbol table.

An OrderedMap maps unique, totally ordered keys to values. Beyond point
lookup, insertion and deletion it answers order-statistics queries (the rank
of a key, the key of a given rank), nearest-key queries (floor, ceiling,
minimum, maximum) and range queries (counting and enumerating the keys
between two bounds).

Internally the map is an unbalanced binary search tree. Every node caches the
number of nodes in its subtree, which makes Rank and Select run in time
proportional to the height of the tree:

	Operation       |  Cost
	----------------+---------------
	Size, IsEmpty   |  O(1)
	Get, Put        |  O(h)
	Delete          |  O(h)
	Rank, Select    |  O(h)
	Floor, Ceiling  |  O(h)
	KeysBetween     |  O(h + k)
	Height          |  O(n)

where h is the height of the tree and k the number of keys reported. The tree
never rotates, so h is linear in the number of keys in the worst case (for
example when keys arrive in ascending order). All traversals use explicit
stacks and paths, so a degenerate tree costs time but never call-stack depth.

An OrderedMap is not safe for concurrent use. Clients sharing a map between
goroutines must serialize access themselves, e.g. with one sync.Mutex per map.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

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
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the 'ordmap' tracer.
func T() tracing.Trace {
	return tracing.Select("ordmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
