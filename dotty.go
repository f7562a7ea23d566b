package ordset

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ordset/avltree"
)

type nodeids[T any] struct {
	idTable map[*avltree.Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*avltree.Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *avltree.Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *avltree.Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Set2Dot outputs the internal tree structure of a set in Graphviz DOT format
// (for debugging purposes).
//
// Every node is labelled with its key, the height of its subtree and the cached
// subtree maximum. Absent children of inner nodes are drawn as small empty
// circles, so left and right children can be told apart.
func Set2Dot[T any](s *Set[T], w io.Writer) error {
	if s == nil || w == nil {
		return ErrIllegalArguments
	}
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	s.treeOrNil().ForEachNode(func(node *avltree.Node[T], depth int) bool {
		ID := ids.alloc(node)
		isleaf := node.Left() == nil && node.Right() == nil
		label := fmt.Sprintf("%v\\nh=%d max=%v", node.Key(), node.Height(), node.MaxValue())
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(isleaf, depth))
		if isleaf {
			return true
		}
		for i, child := range []*avltree.Node[T]{node.Left(), node.Right()} {
			if child == nil {
				nilid := 10000*(i+1) + ID
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return true
	})
	sb.WriteString(nodelist.String())
	sb.WriteString(edgelist.String())
	sb.WriteString("}\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		tracer().Errorf("set DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
