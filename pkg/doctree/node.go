package doctree

import "strings"

// Kind identifies the role a node plays inside a rendered signature.
type Kind string

const (
	KindPrefix        Kind = "prefix"
	KindAddName       Kind = "addname"
	KindName          Kind = "name"
	KindParameterList Kind = "parameterlist"
	KindParameter     Kind = "parameter"
	KindAnnotation    Kind = "annotation"
	KindReference     Kind = "reference"
)

// Node is one element of the rendered declaration line. Directives mutate
// signature trees in place by appending and removing nodes; renderers walk
// the tree to produce HTML or plain text.
type Node struct {
	Kind     Kind
	Text     string
	Target   string
	Classes  []string
	Children []*Node
}

// Prefix constructs the leading label node ("class ", "attribute ", ...).
func Prefix(text string) *Node {
	return &Node{Kind: KindPrefix, Text: text}
}

// AddName constructs the qualifying module-path node rendered before the
// member name.
func AddName(text string) *Node {
	return &Node{Kind: KindAddName, Text: text}
}

// Name constructs the member-name node.
func Name(text string) *Node {
	return &Node{Kind: KindName, Text: text}
}

// Annotation constructs a trailing annotation node. Optional classes are
// carried through to the HTML writer.
func Annotation(text string, classes ...string) *Node {
	return &Node{Kind: KindAnnotation, Text: text, Classes: classes}
}

// Reference constructs a cross-reference node pointing at another documented
// member identified by its dotted path.
func Reference(text, target string) *Node {
	return &Node{Kind: KindReference, Text: text, Target: target}
}

// Parameter constructs a single parameter node.
func Parameter(text string) *Node {
	return &Node{Kind: KindParameter, Text: text}
}

// ParameterList constructs a parameter-list node holding one parameter node
// per argument name. An empty call renders as "()".
func ParameterList(params ...string) *Node {
	list := &Node{Kind: KindParameterList}
	for _, param := range params {
		trimmed := strings.TrimSpace(param)
		if trimmed == "" {
			continue
		}
		list.Children = append(list.Children, Parameter(trimmed))
	}
	return list
}

// PlainText flattens the node and its children into the text a reader would
// see, inserting the usual punctuation around parameter lists.
func (n *Node) PlainText() string {
	if n == nil {
		return ""
	}
	var out strings.Builder
	n.writeText(&out)
	return out.String()
}

func (n *Node) writeText(out *strings.Builder) {
	switch n.Kind {
	case KindParameterList:
		out.WriteByte('(')
		for i, child := range n.Children {
			if i > 0 {
				out.WriteString(", ")
			}
			child.writeText(out)
		}
		out.WriteByte(')')
	default:
		out.WriteString(n.Text)
		for _, child := range n.Children {
			child.writeText(out)
		}
	}
}

// SignatureNode is the output-tree element representing one documented
// member's declaration line. It carries the fully qualified dotted name used
// by cross-reference lookups and is owned by the build pipeline for the
// duration of a render pass.
type SignatureNode struct {
	Fullname string
	Children []*Node
}

// NewSignature constructs a signature node for the given dotted name.
func NewSignature(fullname string) *SignatureNode {
	return &SignatureNode{Fullname: fullname}
}

// Append adds child nodes to the end of the signature.
func (s *SignatureNode) Append(nodes ...*Node) {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		s.Children = append(s.Children, node)
	}
}

// RemoveChildrenByKind deletes every direct child of the given kind and
// reports how many nodes were removed.
func (s *SignatureNode) RemoveChildrenByKind(kind Kind) int {
	kept := s.Children[:0]
	removed := 0
	for _, child := range s.Children {
		if child.Kind == kind {
			removed++
			continue
		}
		kept = append(kept, child)
	}
	s.Children = kept
	return removed
}

// HasChildOfKind reports whether any direct child matches the kind.
func (s *SignatureNode) HasChildOfKind(kind Kind) bool {
	for _, child := range s.Children {
		if child.Kind == kind {
			return true
		}
	}
	return false
}

// PlainText renders the full declaration line as unstyled text.
func (s *SignatureNode) PlainText() string {
	var out strings.Builder
	for _, child := range s.Children {
		child.writeText(&out)
	}
	return out.String()
}
