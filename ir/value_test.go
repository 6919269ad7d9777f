package ir

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want *Value
	}{
		{"", Null()},
		{"null", Null()},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"3.5", Float(3.5)},
		{"hello", String("hello")},
		{"42x", String("42x")},
	}
	for _, tc := range tests {
		got := Parse(tc.in)
		if !got.Equal(tc.want) {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		in   *Value
		want string
	}{
		{String("x"), "x"},
		{Int(12), "12"},
		{Float(2.5), "2.5"},
		{Bool(true), "true"},
		{Null(), ""},
		{nil, ""},
	}
	for _, tc := range tests {
		if got := tc.in.Text(); got != tc.want {
			t.Errorf("Text(%+v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !Int(3).Equal(Int(3)) {
		t.Error("Int(3) != Int(3)")
	}
	if Int(3).Equal(Float(3)) {
		t.Error("int and float representations should differ")
	}
	if Int(3).Equal(String("3")) {
		t.Error("number and string should differ")
	}
	if !Null().Equal(Null()) {
		t.Error("nulls should be equal")
	}
	var absent *Value
	if absent.Equal(Null()) {
		t.Error("absent and null should differ")
	}
}
