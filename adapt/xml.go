package adapt

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/treema-format/treema/debug"
	"github.com/treema-format/treema/ir"
)

// DecodeXML parses an XML document into an XML-shaped tree: elements
// as Records, attributes in the attribute list, text content as
// anonymous Value children, comments and processing instructions with
// their own kinds.
func DecodeXML(d []byte) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	var (
		root  *ir.Node
		stack []*ir.Node
	)
	appendChild := func(c *ir.Node) {
		if len(stack) == 0 {
			if root == nil && c.Kind == ir.RecordKind {
				root = c
			}
			return
		}
		top := stack[len(stack)-1]
		top.Children = append(top.Children, c)
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &ir.Node{
				Kind:      ir.RecordKind,
				Name:      t.Name.Local,
				Namespace: t.Name.Space,
			}
			for _, a := range t.Attr {
				el.WithAttr(a.Name.Local, ir.Parse(a.Value))
			}
			appendChild(el)
			if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			appendChild(&ir.Node{Kind: ir.ValueKind, Value: ir.String(text)})
		case xml.Comment:
			appendChild(ir.NewComment(strings.TrimSpace(string(t))))
		case xml.ProcInst:
			appendChild(&ir.Node{
				Kind:  ir.InstructionKind,
				Name:  t.Target,
				Value: ir.String(string(t.Inst)),
			})
		}
	}
	if root == nil {
		return nil, fmt.Errorf("decoding xml: no root element")
	}
	if debug.Adapt() {
		debug.Logf("decoded xml root %v\n", root)
	}
	return root, nil
}

// EncodeXML renders an XML-shaped tree as XML text.
func EncodeXML(n *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encodeXML(buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeXML(buf *bytes.Buffer, n *ir.Node) error {
	switch n.Kind {
	case ir.CommentKind:
		buf.WriteString("<!-- ")
		buf.WriteString(n.Value.Text())
		buf.WriteString(" -->")
		return nil
	case ir.InstructionKind:
		buf.WriteString("<?" + n.Name + " ")
		buf.WriteString(n.Value.Text())
		buf.WriteString("?>")
		return nil
	case ir.ValueKind, ir.FieldKind:
		if n.Name != "" {
			return encodeElement(buf, n)
		}
		return xml.EscapeText(buf, []byte(n.Value.Text()))
	default:
		return encodeElement(buf, n)
	}
}

func encodeElement(buf *bytes.Buffer, n *ir.Node) error {
	name := elementName(n)
	buf.WriteString("<" + name)
	for _, a := range n.Attributes {
		buf.WriteString(" " + a.Name + `="`)
		if err := xml.EscapeText(buf, []byte(a.Value.Text())); err != nil {
			return err
		}
		buf.WriteString(`"`)
	}
	if len(n.Children) == 0 && n.Value == nil {
		buf.WriteString("/>")
		return nil
	}
	buf.WriteString(">")
	if n.Value != nil {
		if err := xml.EscapeText(buf, []byte(n.Value.Text())); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encodeXML(buf, c); err != nil {
			return err
		}
	}
	buf.WriteString("</" + name + ">")
	return nil
}

func elementName(n *ir.Node) string {
	name := n.Name
	if name == "" {
		name = "item"
	}
	if n.Namespace != "" && !strings.Contains(n.Namespace, "/") {
		return n.Namespace + ":" + name
	}
	return name
}
