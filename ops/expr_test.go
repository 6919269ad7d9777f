package ops

import (
	"testing"

	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
)

func TestPredExpr(t *testing.T) {
	o := testOps()
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"field", `field("age") > 40`, []string{"grace", "barbara"}},
		{"item view", `item.name == "ada"`, []string{"ada"}},
		{"name", `name == "person"`, []string{"ada", "grace", "edsger", "barbara"}},
		{"conjunction", `field("age") == 45 && field("name") != "grace"`, []string{"barbara"}},
		{"no match", `field("age") > 100`, nil},
		{"non-bool result", `field("name")`, nil},
		{"missing field", `field("height") > 0`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pred, err := PredExpr(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			found, err := o.Find(peopleEnv(), format.JSON, pred)
			if err != nil {
				t.Fatal(err)
			}
			eqStrings(t, names(found), tc.want)
		})
	}
}

func TestPredExprBad(t *testing.T) {
	if _, err := PredExpr("((("); err == nil {
		t.Errorf("expected compile error")
	}
}

func TestPredExprAttr(t *testing.T) {
	n := ir.NewRecord("el").WithAttr("id", ir.Int(7))
	pred, err := PredExpr(`attr("id") == 7`)
	if err != nil {
		t.Fatal(err)
	}
	if !pred(n) {
		t.Errorf("attr predicate should match")
	}
	pred, err = PredExpr(`attr("missing") == nil`)
	if err != nil {
		t.Fatal(err)
	}
	if !pred(n) {
		t.Errorf("missing attr should compare equal to nil")
	}
}

func TestKeyExpr(t *testing.T) {
	o := testOps()
	key, err := KeyExpr(`field("age")`)
	if err != nil {
		t.Fatal(err)
	}
	groups, err := o.GroupBy(peopleEnv(), format.JSON, key)
	if err != nil {
		t.Fatal(err)
	}
	eqStrings(t, names(groups["45"]), []string{"grace", "barbara"})
	eqStrings(t, names(groups["36"]), []string{"ada"})
}

func TestLessExpr(t *testing.T) {
	o := testOps()
	less, err := LessExpr(`field("name")`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := o.Sort(peopleEnv(), format.JSON, less)
	if err != nil {
		t.Fatal(err)
	}
	eqStrings(t, names(res.Data.Children),
		[]string{"ada", "barbara", "edsger", "grace"})
}
