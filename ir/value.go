package ir

import "strconv"

// ValueType enumerates the closed set of primitives a node may carry.
type ValueType int

const (
	NullValue ValueType = iota
	StringValue
	NumberValue
	BoolValue
)

func (t ValueType) String() string {
	s, ok := map[ValueType]string{
		NullValue:   "Null",
		StringValue: "String",
		NumberValue: "Number",
		BoolValue:   "Bool",
	}[t]
	if ok {
		return s
	}
	return "<unknown value type>"
}

// Value is the primitive carried by leaf-like nodes.  A nil *Value means
// absent; a Value with NullValue type means explicit null.
type Value struct {
	Type    ValueType
	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
}

func String(v string) *Value {
	return &Value{Type: StringValue, String: v}
}

func Int(v int64) *Value {
	return &Value{Type: NumberValue, Int64: &v}
}

func Float(f float64) *Value {
	return &Value{Type: NumberValue, Float64: &f}
}

func Bool(v bool) *Value {
	return &Value{Type: BoolValue, Bool: v}
}

func Null() *Value {
	return &Value{Type: NullValue}
}

// Parse interprets raw text the way an untyped format writes scalars.
func Parse(v string) *Value {
	switch v {
	case "null", "":
		return Null()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		return Int(i)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err == nil {
		return Float(f)
	}
	return String(v)
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{Type: v.Type, String: v.String, Bool: v.Bool}
	if v.Int64 != nil {
		i := *v.Int64
		res.Int64 = &i
	}
	if v.Float64 != nil {
		f := *v.Float64
		res.Float64 = &f
	}
	return res
}

// Text renders the value the way a flat format would write it in a cell.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	switch v.Type {
	case StringValue:
		return v.String
	case NumberValue:
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10)
		}
		if v.Float64 != nil {
			return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
		}
		return ""
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	case NullValue:
		return ""
	default:
		return ""
	}
}

func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case StringValue:
		return v.String == o.String
	case BoolValue:
		return v.Bool == o.Bool
	case NullValue:
		return true
	case NumberValue:
		if v.Int64 != nil && o.Int64 != nil {
			return *v.Int64 == *o.Int64
		}
		if v.Float64 != nil && o.Float64 != nil {
			return *v.Float64 == *o.Float64
		}
		return v.Int64 == nil && o.Int64 == nil &&
			v.Float64 == nil && o.Float64 == nil
	default:
		return false
	}
}
