package adapt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
)

func TestJSONRoundTrip(t *testing.T) {
	src := `{
  "age": 36,
  "name": "ada",
  "pi": 3.25,
  "tags": [
    "math",
    "poetry"
  ],
  "wings": null
}`
	n, err := DecodeJSON([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != ir.RecordKind {
		t.Fatalf("root kind %s", n.Kind)
	}
	age := ir.Get(n, "age")
	if age == nil || age.Kind != ir.FieldKind || age.Value.Int64 == nil || *age.Value.Int64 != 36 {
		t.Fatalf("age = %v", age)
	}
	pi := ir.Get(n, "pi")
	if pi.Value.Float64 == nil || *pi.Value.Float64 != 3.25 {
		t.Fatalf("pi = %v", pi.Value)
	}
	tags := ir.Get(n, "tags")
	if tags.Kind != ir.CollectionKind || len(tags.Children) != 2 {
		t.Fatalf("tags = %v", tags)
	}
	if tags.Children[0].Kind != ir.ValueKind || tags.Children[0].Name != "" {
		t.Errorf("array members should be anonymous values")
	}
	if ir.Get(n, "wings").Value.Type != ir.NullValue {
		t.Errorf("wings should be null")
	}

	out, err := EncodeJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != src {
		t.Errorf("round trip:\n%s\nwant:\n%s", out, src)
	}
}

func TestYAML(t *testing.T) {
	src := `
name: ada
age: 36
tags:
  - math
  - poetry
`
	n, err := DecodeYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != ir.RecordKind {
		t.Fatalf("root kind %s", n.Kind)
	}
	if got := ir.Get(n, "name").Value.String; got != "ada" {
		t.Errorf("name = %q", got)
	}
	if got := *ir.Get(n, "age").Value.Int64; got != 36 {
		t.Errorf("age = %d", got)
	}
	if got := len(ir.Get(n, "tags").Children); got != 2 {
		t.Errorf("tags len = %d", got)
	}

	out, err := EncodeYAML(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeYAML(out)
	if err != nil {
		t.Fatal(err)
	}
	if ir.Compare(n, back) != 0 {
		t.Errorf("yaml round trip changed the tree:\n%s", out)
	}
}

func TestCSV(t *testing.T) {
	src := "name,age\nada,36\ngrace,45\n"
	n, err := DecodeCSV([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != ir.CollectionKind || len(n.Children) != 2 {
		t.Fatalf("decoded %v", n)
	}
	for _, row := range n.Children {
		if row.Name != format.RowName || row.Kind != ir.RecordKind {
			t.Fatalf("row = %v", row)
		}
	}
	age := ir.Get(n.Children[1], "age")
	if age.Value.Int64 == nil || *age.Value.Int64 != 45 {
		t.Errorf("age cell = %v", age.Value)
	}

	out, err := EncodeCSV(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != src {
		t.Errorf("round trip:\n%q\nwant:\n%q", out, src)
	}
}

func TestCSVEmpty(t *testing.T) {
	n, err := DecodeCSV(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Children) != 0 {
		t.Errorf("children = %v", n.Children)
	}
	out, err := EncodeCSV(n)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("out = %q", out)
	}
}

func TestXMLDecode(t *testing.T) {
	src := `<?xml version="1.0"?>
<person id="7">
  <!-- pioneer -->
  <name>ada</name>
  <tag>math</tag>
  <tag>poetry</tag>
</person>`
	n, err := DecodeXML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != ir.RecordKind || n.Name != "person" {
		t.Fatalf("root = %v", n)
	}
	id := ir.Attr(n, "id")
	if id == nil || id.Value.Int64 == nil || *id.Value.Int64 != 7 {
		t.Fatalf("id attribute = %v", id)
	}
	if n.Children[0].Kind != ir.CommentKind || n.Children[0].Value.String != "pioneer" {
		t.Errorf("comment = %v", n.Children[0])
	}
	name := ir.Get(n, "name")
	if name == nil || len(name.Children) != 1 || name.Children[0].Value.String != "ada" {
		t.Errorf("name = %v", name)
	}
	tags := 0
	for _, c := range n.Children {
		if c.Name == "tag" {
			tags++
		}
	}
	if tags != 2 {
		t.Errorf("tag count = %d", tags)
	}
}

func TestXMLDecodeErrors(t *testing.T) {
	if _, err := DecodeXML([]byte("  ")); err == nil {
		t.Errorf("expected error on empty document")
	}
	if _, err := DecodeXML([]byte("<a><b></a>")); err == nil {
		t.Errorf("expected error on mismatched tags")
	}
}

func TestXMLEncode(t *testing.T) {
	n := ir.NewRecord("person",
		ir.NewComment("pioneer"),
		ir.NewField("name", ir.String("ada <3")),
		ir.NewRecord("empty"),
	)
	n.WithAttr("id", ir.Int(7))
	out, err := EncodeXML(n)
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	for _, want := range []string{
		`<person id="7">`,
		"<!-- pioneer -->",
		"<name>ada &lt;3</name>",
		"<empty/>",
		"</person>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestXMLRoundTrip(t *testing.T) {
	src := `<people><person id="1"><name>ada</name></person><person id="2"><name>grace</name></person></people>`
	n, err := DecodeXML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	out, err := EncodeXML(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeXML(out)
	if err != nil {
		t.Fatal(err)
	}
	if ir.Compare(n, back) != 0 {
		t.Errorf("xml round trip changed the tree:\n%s", out)
	}
	id := ir.Attr(back.Children[1], "id")
	if id == nil || id.Value.Int64 == nil || *id.Value.Int64 != 2 {
		t.Errorf("id attribute lost in round trip: %v", id)
	}
}

func TestFromAnyToAny(t *testing.T) {
	v := map[string]any{
		"b": []any{int64(1), "two"},
		"a": true,
	}
	n := FromAny(v)
	// members sorted by key
	if n.Children[0].Name != "a" || n.Children[1].Name != "b" {
		t.Fatalf("member order %q, %q", n.Children[0].Name, n.Children[1].Name)
	}
	if d := cmp.Diff(v, ToAny(n)); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestMergePatch(t *testing.T) {
	doc, err := DecodeJSON([]byte(`{"name":"ada","age":36,"city":"london"}`))
	if err != nil {
		t.Fatal(err)
	}
	patch, err := DecodeJSON([]byte(`{"age":37,"city":null}`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if got := *ir.Get(res, "age").Value.Int64; got != 37 {
		t.Errorf("age = %d", got)
	}
	if ir.Get(res, "city") != nil {
		t.Errorf("city should be removed")
	}
	if got := ir.Get(res, "name").Value.String; got != "ada" {
		t.Errorf("name = %q", got)
	}
}

func TestPatch(t *testing.T) {
	doc, err := DecodeJSON([]byte(`{"name":"ada","tags":["math"]}`))
	if err != nil {
		t.Fatal(err)
	}
	patch, err := DecodeJSON([]byte(`[
		{"op":"add","path":"/tags/-","value":"poetry"},
		{"op":"replace","path":"/name","value":"lovelace"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Patch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(res, "name").Value.String; got != "lovelace" {
		t.Errorf("name = %q", got)
	}
	if got := len(ir.Get(res, "tags").Children); got != 2 {
		t.Errorf("tags len = %d", got)
	}

	bad, err := DecodeJSON([]byte(`[{"op":"replace","path":"/missing","value":1}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Patch(doc, bad); err == nil {
		t.Errorf("expected error replacing a missing path")
	}
}
