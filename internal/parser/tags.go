package parser

import "golang.org/x/net/html/atom"

// passthroughAtoms are the HTML elements that may appear verbatim in markup.
var passthroughAtoms = []atom.Atom{
	atom.A, atom.B, atom.Big, atom.Br, atom.Button, atom.Caption, atom.Code,
	atom.Col, atom.Dd, atom.Div, atom.Dl, atom.Dt, atom.Em, atom.Form,
	atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Hr, atom.I,
	atom.Iframe, atom.Img, atom.Input, atom.Li, atom.Object, atom.Ol,
	atom.Option, atom.P, atom.Param, atom.Pre, atom.Script, atom.Select,
	atom.Span, atom.Strong, atom.Sup, atom.Table, atom.Tbody, atom.Td,
	atom.Textarea, atom.Tfoot, atom.Th, atom.Thead, atom.Tr, atom.Tt, atom.Ul,
}

// longversion is a document-specific element with no HTML atom.
const longversion = "longversion"

func defaultTags() map[string]struct{} {
	tags := make(map[string]struct{}, len(passthroughAtoms)+1)
	for _, a := range passthroughAtoms {
		tags[a.String()] = struct{}{}
	}
	tags[longversion] = struct{}{}
	return tags
}

func (g *Grammar) allowed(name string) bool {
	_, ok := g.tags[name]
	return ok
}
