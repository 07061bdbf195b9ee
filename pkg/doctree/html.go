package doctree

import (
	"html"
	"io"
	"strings"
)

// cssClass maps node kinds to the CSS hooks emitted by WriteHTML. The names
// stay stable so stylesheets and themes can target them.
var cssClass = map[Kind]string{
	KindPrefix:        "sig-prefix",
	KindAddName:       "sig-addname",
	KindName:          "sig-name",
	KindParameterList: "sig-paramlist",
	KindParameter:     "sig-param",
	KindAnnotation:    "sig-annotation",
	KindReference:     "sig-reference",
}

// WriteHTML serialises a signature tree as a single <code> element. All text
// content is escaped; reference nodes become anchors targeting the referenced
// member's dotted path.
func WriteHTML(w io.Writer, sig *SignatureNode) error {
	if sig == nil {
		return nil
	}
	var out strings.Builder
	out.WriteString(`<code class="sig" id="`)
	out.WriteString(html.EscapeString(sig.Fullname))
	out.WriteString(`">`)
	for _, child := range sig.Children {
		writeNodeHTML(&out, child)
	}
	out.WriteString("</code>")
	_, err := io.WriteString(w, out.String())
	return err
}

// HTML renders the signature tree to a string. Convenience wrapper around
// WriteHTML for template pipelines.
func (s *SignatureNode) HTML() string {
	var out strings.Builder
	_ = WriteHTML(&out, s)
	return out.String()
}

func writeNodeHTML(out *strings.Builder, node *Node) {
	if node == nil {
		return
	}

	classes := classAttr(node)
	switch node.Kind {
	case KindReference:
		out.WriteString(`<a class="`)
		out.WriteString(classes)
		out.WriteString(`" href="#`)
		out.WriteString(html.EscapeString(node.Target))
		out.WriteString(`">`)
		out.WriteString(html.EscapeString(node.Text))
		out.WriteString("</a>")
	case KindParameterList:
		out.WriteString(`<span class="`)
		out.WriteString(classes)
		out.WriteString(`">(`)
		for i, child := range node.Children {
			if i > 0 {
				out.WriteString(", ")
			}
			writeNodeHTML(out, child)
		}
		out.WriteString(")</span>")
	default:
		out.WriteString(`<span class="`)
		out.WriteString(classes)
		out.WriteString(`">`)
		out.WriteString(html.EscapeString(node.Text))
		for _, child := range node.Children {
			writeNodeHTML(out, child)
		}
		out.WriteString("</span>")
	}
}

func classAttr(node *Node) string {
	base := cssClass[node.Kind]
	if len(node.Classes) == 0 {
		return base
	}
	parts := make([]string, 0, len(node.Classes)+1)
	if base != "" {
		parts = append(parts, base)
	}
	for _, class := range node.Classes {
		trimmed := strings.TrimSpace(class)
		if trimmed == "" {
			continue
		}
		parts = append(parts, html.EscapeString(trimmed))
	}
	return strings.Join(parts, " ")
}
