package redblack

import (
	"fmt"
	"io"
	"strings"
)

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Red nodes are filled red, black nodes black, and
// nil leaves are drawn as small black boxes.
func (t *Tree[K]) Dot(w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		var nodelist, edgelist strings.Builder
		nextID, nilcnt := 0, 0
		var walk func(n *Node[K]) int
		walk = func(n *Node[K]) int {
			nextID++
			id := nextID
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\" %s];\n", id, escapeLabel(n.key), nodeDotStyles(n))
			for _, child := range []*Node[K]{n.left, n.right} {
				if child == nil {
					nilcnt++
					fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilcnt, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", id, nilcnt)
					continue
				}
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, walk(child))
			}
			return id
		}
		walk(t.root)
		b.WriteString(nodelist.String())
		b.WriteString(edgelist.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func escapeLabel(key any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", key), `"`, `\"`)
}

func emptyNode() string {
	return "[label=\"\",style=filled,fillcolor=black,shape=box,fixedsize=true,width=.15,height=.15]"
}

func nodeDotStyles[K any](n *Node[K]) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if n.color == Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ff3333\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}
