/*
Package render prints the shape of an ordered map to a console.

Every node is printed on a line of its own, indented by its depth and
connected to its parent with box-drawing characters:

	* word (7)
	└── L sad (6)
	    ├── L happy (4)
	    │   ├── L haha (1)
	    │   └── R people (2)
	    │       └── L hard (1)
	    └── R strong (1)

On terminals keys and subtree sizes are colored and lines are clipped to the
terminal width.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
