// Package ast defines the closed set of node types produced by the markup
// parser. Node is sealed: only the types in this package implement it, and
// every consumer switches over them exhaustively.
package ast

// Kind identifies a node variant.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindComment
	KindNodeList
	KindFuncVariable
	KindFuncString
	KindFuncTemplate
	KindFuncInteger
	KindFuncDouble
	KindFuncCall
	KindFuncFilter
	KindFuncSet
	KindFuncIf
	KindFuncFor
	KindFuncExpr
	KindTagged
	KindHTML
	KindHTMLSelf
	KindHighlight
)

var kindNames = [...]string{
	KindNull:         "null",
	KindText:         "text",
	KindComment:      "comment",
	KindNodeList:     "list",
	KindFuncVariable: "var",
	KindFuncString:   "string",
	KindFuncTemplate: "template",
	KindFuncInteger:  "integer",
	KindFuncDouble:   "double",
	KindFuncCall:     "call",
	KindFuncFilter:   "filter",
	KindFuncSet:      "set",
	KindFuncIf:       "if",
	KindFuncFor:      "for",
	KindFuncExpr:     "expr",
	KindTagged:       "tagged",
	KindHTML:         "html",
	KindHTMLSelf:     "html_self",
	KindHighlight:    "highlight",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// AllKinds lists every variant in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Node is implemented by every AST variant.
type Node interface {
	Kind() Kind
	node()
}

// Null is the empty value, e.g. the missing ELSE branch of an IF.
type Null struct{}

// Text is rendered text with entities already expanded.
type Text struct {
	Value string
}

// Comment is a raw comment body.
type Comment struct {
	Body string
}

// NodeList is an ordered sequence of children in document order.
type NodeList []Node

// FuncVariable references a template variable.
type FuncVariable struct {
	Name string
}

// FuncString is a string literal.
type FuncString struct {
	Value string
}

// FuncTemplate names a template, as in INCLUDE or a TEMPLATE filter.
type FuncTemplate struct {
	Name string
}

// FuncInteger is a 64-bit integer literal.
type FuncInteger struct {
	Value int64
}

// FuncDouble is a real literal.
type FuncDouble struct {
	Value float64
}

// FuncCall is a function application.
type FuncCall struct {
	Name string
	Args NodeList
}

// FuncFilter applies Clause to an unparsed body.
type FuncFilter struct {
	Clause  Node
	Content string
}

// FuncSet assigns Value to the variable Name.
type FuncSet struct {
	Name  string
	Value Node
}

// FuncIf is a conditional; IfFalse is Null when there is no ELSE branch.
type FuncIf struct {
	Condition Node
	IfTrue    Node
	IfFalse   Node
}

// FuncFor iterates Name over Arg, rendering Body each time.
type FuncFor struct {
	Name string
	Arg  Node
	Body Node
}

// FuncExpr is a flat operand/operator sequence; operators are Text nodes.
type FuncExpr []Node

// TaggedNode wraps a subtree under a name: paragraphs, headers, lists,
// list items and styled spans.
type TaggedNode struct {
	Tag     string
	Subtree Node
}

// HTMLNode is an element with attributes and content.
type HTMLNode struct {
	Tag     string
	Attrs   Attributes
	Subtree Node
}

// HTMLSelfNode is a self-closing element.
type HTMLSelfNode struct {
	Tag   string
	Attrs Attributes
}

// Highlight is a fenced code block. Content is verbatim.
type Highlight struct {
	Language string
	Content  string
}

func (Null) Kind() Kind         { return KindNull }
func (Text) Kind() Kind         { return KindText }
func (Comment) Kind() Kind      { return KindComment }
func (NodeList) Kind() Kind     { return KindNodeList }
func (FuncVariable) Kind() Kind { return KindFuncVariable }
func (FuncString) Kind() Kind   { return KindFuncString }
func (FuncTemplate) Kind() Kind { return KindFuncTemplate }
func (FuncInteger) Kind() Kind  { return KindFuncInteger }
func (FuncDouble) Kind() Kind   { return KindFuncDouble }
func (FuncCall) Kind() Kind     { return KindFuncCall }
func (FuncFilter) Kind() Kind   { return KindFuncFilter }
func (FuncSet) Kind() Kind      { return KindFuncSet }
func (FuncIf) Kind() Kind       { return KindFuncIf }
func (FuncFor) Kind() Kind      { return KindFuncFor }
func (FuncExpr) Kind() Kind     { return KindFuncExpr }
func (TaggedNode) Kind() Kind   { return KindTagged }
func (HTMLNode) Kind() Kind     { return KindHTML }
func (HTMLSelfNode) Kind() Kind { return KindHTMLSelf }
func (Highlight) Kind() Kind    { return KindHighlight }

func (Null) node()         {}
func (Text) node()         {}
func (Comment) node()      {}
func (NodeList) node()     {}
func (FuncVariable) node() {}
func (FuncString) node()   {}
func (FuncTemplate) node() {}
func (FuncInteger) node()  {}
func (FuncDouble) node()   {}
func (FuncCall) node()     {}
func (FuncFilter) node()   {}
func (FuncSet) node()      {}
func (FuncIf) node()       {}
func (FuncFor) node()      {}
func (FuncExpr) node()     {}
func (TaggedNode) node()   {}
func (HTMLNode) node()     {}
func (HTMLSelfNode) node() {}
func (Highlight) node()    {}
