package ast

// Tree converts n into plain maps and slices for generic encoders such as
// YAML. Every node becomes a map with a "kind" key plus its payload fields.
func Tree(n Node) any {
	switch n := n.(type) {
	case nil:
		return nil
	case Null:
		return kindMap(n)
	case Text:
		return kindMap(n, "value", n.Value)
	case Comment:
		return kindMap(n, "body", n.Body)
	case NodeList:
		return kindMap(n, "children", treeList(n))
	case FuncVariable:
		return kindMap(n, "name", n.Name)
	case FuncString:
		return kindMap(n, "value", n.Value)
	case FuncTemplate:
		return kindMap(n, "name", n.Name)
	case FuncInteger:
		return kindMap(n, "value", n.Value)
	case FuncDouble:
		return kindMap(n, "value", n.Value)
	case FuncCall:
		return kindMap(n, "name", n.Name, "args", treeList(n.Args))
	case FuncFilter:
		return kindMap(n, "clause", Tree(n.Clause), "content", n.Content)
	case FuncSet:
		return kindMap(n, "name", n.Name, "value", Tree(n.Value))
	case FuncIf:
		return kindMap(n, "condition", Tree(n.Condition), "if_true", Tree(n.IfTrue), "if_false", Tree(n.IfFalse))
	case FuncFor:
		return kindMap(n, "name", n.Name, "arg", Tree(n.Arg), "body", Tree(n.Body))
	case FuncExpr:
		return kindMap(n, "operands", treeList(n))
	case TaggedNode:
		return kindMap(n, "tag", n.Tag, "subtree", Tree(n.Subtree))
	case HTMLNode:
		return kindMap(n, "tag", n.Tag, "attrs", treeAttrs(n.Attrs), "subtree", Tree(n.Subtree))
	case HTMLSelfNode:
		return kindMap(n, "tag", n.Tag, "attrs", treeAttrs(n.Attrs))
	case Highlight:
		return kindMap(n, "language", n.Language, "content", n.Content)
	default:
		return map[string]any{"kind": "unknown"}
	}
}

func kindMap(n Node, kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2+1)
	m["kind"] = n.Kind().String()
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

func treeList(nodes []Node) []any {
	out := make([]any, len(nodes))
	for i, c := range nodes {
		out[i] = Tree(c)
	}
	return out
}

func treeAttrs(attrs Attributes) []any {
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = map[string]any{"name": a.Name, "value": Tree(a.Value)}
	}
	return out
}
