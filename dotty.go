package ordmap

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id, ok := ids.idTable[n]; ok && n != nil {
		return id
	}
	id := ids.max
	ids.max++
	if n != nil {
		ids.idTable[n] = id
	}
	return id
}

// ToDot outputs the internal tree structure of a map in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their key and subtree
// size, empty child links are drawn as small dots.
func ToDot[K, V any](m *OrderedMap[K, V], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	type item struct {
		n     *node[K, V]
		depth int
	}
	if !m.IsEmpty() {
		stack := []item{{n: m.root}}
		for len(stack) > 0 {
			it := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			id := ids.alloc(it.n)
			label := fmt.Sprintf("%v\\n(%d)", escapeLabel(it.n.key), it.n.size)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(it.depth))
			for _, child := range []*node[K, V]{it.n.left, it.n.right} {
				childID := ids.alloc(child)
				if child == nil {
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", childID, emptyNode())
				} else {
					stack = append(stack, item{n: child, depth: it.depth + 1})
				}
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, childID)
			}
		}
	}
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			T().Errorf("ordmap DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func escapeLabel(key any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", key), `"`, `\"`)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(depth int) string {
	s := ",style=filled,color=black,shape=circle"
	if depth >= len(hexcolors) {
		depth = len(hexcolors) - 1
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
