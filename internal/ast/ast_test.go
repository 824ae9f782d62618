package ast

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// samples holds one value per variant, keyed by kind.
func samples() map[Kind]Node {
	return map[Kind]Node{
		KindNull:         Null{},
		KindText:         Text{Value: "t"},
		KindComment:      Comment{Body: "c"},
		KindNodeList:     NodeList{},
		KindFuncVariable: FuncVariable{Name: "v"},
		KindFuncString:   FuncString{Value: "s"},
		KindFuncTemplate: FuncTemplate{Name: "tpl"},
		KindFuncInteger:  FuncInteger{Value: 1},
		KindFuncDouble:   FuncDouble{Value: 1.5},
		KindFuncCall:     FuncCall{Name: "f", Args: NodeList{}},
		KindFuncFilter:   FuncFilter{Clause: FuncVariable{Name: "x"}, Content: "body"},
		KindFuncSet:      FuncSet{Name: "x", Value: FuncInteger{Value: 1}},
		KindFuncIf:       FuncIf{Condition: FuncVariable{Name: "c"}, IfTrue: NodeList{}, IfFalse: Null{}},
		KindFuncFor:      FuncFor{Name: "i", Arg: FuncVariable{Name: "xs"}, Body: NodeList{}},
		KindFuncExpr:     FuncExpr{FuncInteger{Value: 1}, Text{Value: "+"}, FuncInteger{Value: 2}},
		KindTagged:       TaggedNode{Tag: "p", Subtree: NodeList{}},
		KindHTML:         HTMLNode{Tag: "div", Attrs: Attributes{}, Subtree: NodeList{}},
		KindHTMLSelf:     HTMLSelfNode{Tag: "br", Attrs: Attributes{}},
		KindHighlight:    Highlight{Language: "go", Content: "x"},
	}
}

func TestEveryKindHasSampleAndRendering(t *testing.T) {
	s := samples()
	require.Len(t, AllKinds(), 19)
	for _, k := range AllKinds() {
		n, ok := s[k]
		require.True(t, ok, "missing sample for %s", k)
		assert.Equal(t, k, n.Kind())
		assert.NotEqual(t, "unknown", k.String())

		var sb strings.Builder
		require.NoError(t, Fprint(&sb, n), "kind %s", k)
		assert.NotContains(t, sb.String(), "?", "kind %s fell through the printer", k)
	}
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestFprintRejectsNil(t *testing.T) {
	var sb strings.Builder
	err := Fprint(&sb, NodeList{Text{Value: "a"}, nil})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryInternal))
	assert.Equal(t, "{\n  text: \"a\"\n  ?\n}\n", sb.String())
}

func TestDumpFormats(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "tagged list",
			node: TaggedNode{Tag: "h1", Subtree: NodeList{Text{Value: "Title"}}},
			want: "<h1>\n  {\n    text: \"Title\"\n  }\n",
		},
		{
			name: "html with attributes",
			node: HTMLNode{
				Tag:     "markdown-a",
				Attrs:   Attributes{{Name: "href", Value: NodeList{Text{Value: "http://x"}}}},
				Subtree: NodeList{Text{Value: "text"}},
			},
			want: "<markdown-a> [\n" +
				"  href=\n" +
				"    {\n" +
				"      text: \"http://x\"\n" +
				"    }\n" +
				"  ]\n" +
				"  {\n" +
				"    text: \"text\"\n" +
				"  }\n",
		},
		{
			name: "self node without attributes",
			node: HTMLSelfNode{Tag: "br", Attrs: Attributes{}},
			want: "<br>\n",
		},
		{
			name: "set",
			node: FuncSet{Name: "x", Value: FuncInteger{Value: 1}},
			want: "set: x\nvalue:\n  integer: 1\n",
		},
		{
			name: "call",
			node: FuncCall{Name: "f", Args: NodeList{FuncString{Value: "a b"}}},
			want: "call: f {\n{\n  string: \"a b\"\n}\n}\n",
		},
		{
			name: "expr",
			node: FuncExpr{FuncVariable{Name: "a"}, Text{Value: "+"}, FuncDouble{Value: 2.5}},
			want: "expr: {\n{\n  var: a\n  text: \"+\"\n  double: 2.5\n}\n}\n",
		},
		{
			name: "if without else",
			node: FuncIf{Condition: FuncVariable{Name: "c"}, IfTrue: NodeList{}, IfFalse: Null{}},
			want: "if: [\n  var: c\n]\ntrue:\n  {\n  }\nelse:\n  NULL\n",
		},
		{
			name: "for",
			node: FuncFor{Name: "i", Arg: FuncVariable{Name: "xs"}, Body: NodeList{}},
			want: "for: i[\n  var: xs\n]\nsubtree:\n  {\n  }\n",
		},
		{
			name: "filter",
			node: FuncFilter{Clause: FuncTemplate{Name: "box"}, Content: "raw\ntext"},
			want: "filter: [\n  template: box\n] on \"raw\\ntext\"\n",
		},
		{
			name: "highlight",
			node: Highlight{Language: "go", Content: "x := 1"},
			want: "highlight[go]\n\"x := 1\"\n",
		},
		{
			name: "comment",
			node: Comment{Body: " note "},
			want: "comment: \" note \"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dump(tt.node))
		})
	}
}

func TestAttributesLookup(t *testing.T) {
	attrs := Attributes{
		{Name: "href", Value: Text{Value: "first"}},
		{Name: "class", Value: Text{Value: "c"}},
		{Name: "href", Value: Text{Value: "second"}},
	}

	v, err := attrs.Lookup("href")
	require.NoError(t, err)
	assert.Equal(t, Text{Value: "first"}, v, "lookup returns the first match")

	_, err = attrs.Lookup("src")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrAttributeNotFound))
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	name, _ := classified.Context().GetString(errors.ContextAttribute)
	assert.Equal(t, "src", name)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"href", "class", "href"}, attrs.Names())

	_, err = Attributes(nil).Lookup("href")
	assert.ErrorIs(t, err, ErrAttributeNotFound)
}

func TestWalkAndCount(t *testing.T) {
	tree := NodeList{
		TaggedNode{Tag: "p", Subtree: NodeList{Text{Value: "a"}}},
		HTMLSelfNode{Tag: "markdown-img", Attrs: Attributes{
			{Name: "alt", Value: NodeList{Text{Value: "x"}}},
			{Name: "src", Value: NodeList{Text{Value: "y"}}},
		}},
	}
	// list, p, list, text, img, list, text, list, text
	assert.Equal(t, 9, Count(tree))

	var kinds []Kind
	Walk(tree, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindTagged
	})
	assert.Equal(t, []Kind{KindNodeList, KindTagged, KindHTMLSelf, KindNodeList, KindText, KindNodeList, KindText}, kinds)

	assert.Equal(t, 0, Count(nil))
}

func TestTree(t *testing.T) {
	got := Tree(FuncSet{Name: "x", Value: FuncExpr{FuncInteger{Value: 1}, Text{Value: "+"}, FuncVariable{Name: "y"}}})
	want := map[string]any{
		"kind": "set",
		"name": "x",
		"value": map[string]any{
			"kind": "expr",
			"operands": []any{
				map[string]any{"kind": "integer", "value": int64(1)},
				map[string]any{"kind": "text", "value": "+"},
				map[string]any{"kind": "var", "name": "y"},
			},
		},
	}
	assert.Equal(t, want, got)

	html := Tree(HTMLSelfNode{Tag: "img", Attrs: Attributes{{Name: "src", Value: Text{Value: "a.png"}}}})
	assert.Equal(t, map[string]any{
		"kind":  "html_self",
		"tag":   "img",
		"attrs": []any{map[string]any{"name": "src", "value": map[string]any{"kind": "text", "value": "a.png"}}},
	}, html)
}
