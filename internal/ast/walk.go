package ast

// Children returns the direct children of n in document order. Attribute
// values of HTML nodes come before the subtree.
func Children(n Node) []Node {
	switch n := n.(type) {
	case NodeList:
		return n
	case FuncExpr:
		return n
	case FuncCall:
		return []Node{n.Args}
	case FuncFilter:
		return []Node{n.Clause}
	case FuncSet:
		return []Node{n.Value}
	case FuncIf:
		return []Node{n.Condition, n.IfTrue, n.IfFalse}
	case FuncFor:
		return []Node{n.Arg, n.Body}
	case TaggedNode:
		return []Node{n.Subtree}
	case HTMLNode:
		return append(attrValues(n.Attrs), n.Subtree)
	case HTMLSelfNode:
		return attrValues(n.Attrs)
	default:
		return nil
	}
}

func attrValues(attrs Attributes) []Node {
	out := make([]Node, 0, len(attrs)+1)
	for _, a := range attrs {
		out = append(out, a.Value)
	}
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the node just visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node) bool {
		total++
		return true
	})
	return total
}
