package format

import (
	"testing"

	"github.com/treema-format/treema/ir"
)

func csvRoot() *ir.Node {
	return ir.NewCollection("",
		ir.NewRecord(RowName,
			ir.NewField("name", ir.String("ada")),
			ir.NewField("age", ir.Int(36)),
		),
		ir.NewRecord(RowName,
			ir.NewField("name", ir.String("grace")),
			ir.NewField("age", ir.Int(45)),
		),
	)
}

func TestJSONNavigatePath(t *testing.T) {
	root := ir.NewRecord("",
		ir.NewRecord("a",
			ir.NewField("b", ir.Int(1)),
		),
	)
	s := JSONSemantics()
	got := s.NavigatePath(root, []string{"a", "b"})
	if got == nil || got.Value.Int64 == nil || *got.Value.Int64 != 1 {
		t.Fatalf("a.b: got %v", got)
	}
	if s.NavigatePath(root, []string{"a", "missing"}) != nil {
		t.Errorf("missing segment should be absent")
	}
	if s.NavigatePath(root, []string{"missing", "b"}) != nil {
		t.Errorf("absent segment should stop navigation")
	}
}

func TestCSVNavigatePath(t *testing.T) {
	root := csvRoot()
	s := CSVSemantics()

	// second row's name, per the row-index grammar
	got := s.NavigatePath(root, []string{RowName, "1", "name"})
	if got == nil || got.Value.String != "grace" {
		t.Fatalf("row.1.name: got %v", got)
	}
	// bare "row" descends into the first row
	got = s.NavigatePath(root, []string{RowName, "name"})
	if got == nil || got.Value.String != "ada" {
		t.Fatalf("row.name: got %v", got)
	}
	// bare index
	got = s.NavigatePath(root, []string{"0", "age"})
	if got == nil || got.Value.Int64 == nil || *got.Value.Int64 != 36 {
		t.Fatalf("0.age: got %v", got)
	}
	if s.NavigatePath(root, []string{"5"}) != nil {
		t.Errorf("out of range index should be absent")
	}
	if s.NavigatePath(root, []string{RowName, "9", "name"}) != nil {
		t.Errorf("out of range row index should be absent")
	}
}

func TestXMLNavigatePath(t *testing.T) {
	node := ir.NewRecord("el",
		ir.NewRecord("child",
			ir.NewValue(ir.String("text")),
		),
	).WithAttr("id", ir.Int(7))
	s := XMLSemantics()

	got := s.NavigatePath(node, []string{"@id"})
	if got == nil || got.Kind != ir.ValueKind || got.Value.Int64 == nil || *got.Value.Int64 != 7 {
		t.Fatalf("@id: got %v", got)
	}
	if s.NavigatePath(node, []string{"missing"}) != nil {
		t.Errorf("missing child should be absent")
	}
	if s.NavigatePath(node, []string{"@nope"}) != nil {
		t.Errorf("missing attribute should be absent")
	}
	if got := s.NavigatePath(node, []string{"child"}); got == nil || got.Name != "child" {
		t.Fatalf("child lookup: got %v", got)
	}
}

func TestLocateItems(t *testing.T) {
	csv := CSVSemantics()
	root := csvRoot()
	// a stray non-row child does not count
	root.Children = append(root.Children, ir.NewComment("trailing"))
	rows := csv.LocateItems(root)
	if len(rows) != 2 {
		t.Fatalf("csv locate: got %d items", len(rows))
	}

	json := JSONSemantics()
	coll := ir.NewCollection("", ir.NewValue(ir.Int(1)), ir.NewValue(ir.Int(2)))
	if got := json.LocateItems(coll); len(got) != 2 {
		t.Errorf("json locate on collection: got %d", len(got))
	}
	if got := json.LocateItems(ir.NewRecord("")); got != nil {
		t.Errorf("json locate on record: got %v", got)
	}

	xml := XMLSemantics()
	el := ir.NewRecord("root",
		ir.NewValue(ir.String("text")),
		ir.NewRecord("a"),
		ir.NewComment("c"),
		ir.NewRecord("b"),
	)
	if got := xml.LocateItems(el); len(got) != 2 {
		t.Errorf("xml locate: got %d element items", len(got))
	}
}

func TestExtractValue(t *testing.T) {
	xml := XMLSemantics()
	el := ir.NewRecord("el",
		ir.NewRecord("id", ir.NewValue(ir.String("child-id"))),
	).WithAttr("id", ir.String("attr-id"))
	v := xml.ExtractValue(el, "id")
	if v == nil || v.String != "attr-id" {
		t.Errorf("xml extract should prefer attributes, got %v", v)
	}
	v = xml.ExtractValue(el, "missing")
	if v != nil {
		t.Errorf("missing key should be absent, got %v", v)
	}

	json := JSONSemantics()
	rec := ir.NewRecord("", ir.NewField("a", ir.Int(3)))
	v = json.ExtractValue(rec, "a")
	if v == nil || v.Int64 == nil || *v.Int64 != 3 {
		t.Errorf("json extract: got %v", v)
	}
}

func TestCSVRebuildRenames(t *testing.T) {
	s := CSVSemantics()
	container := csvRoot()
	items := []*ir.Node{
		ir.NewRecord("person", ir.NewField("name", ir.String("ada"))),
		ir.NewRecord(RowName, ir.NewField("name", ir.String("grace"))),
	}
	res := s.Rebuild(container, items)
	for i, c := range res.Children {
		if c.Name != RowName {
			t.Errorf("child %d named %q, want %q", i, c.Name, RowName)
		}
	}
	// already-canonical items pass through without cloning
	if res.Children[1] != items[1] {
		t.Errorf("row-named item should be reused")
	}
}
