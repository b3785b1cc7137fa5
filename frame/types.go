package frame

// Type is the runtime element type of a column. The set is closed: every
// variant corresponds to exactly one backing slice representation.
type Type int

const (
	Invalid Type = iota
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
	Boolean
	String
)

func (t Type) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case UInt8:
		return "uint8"
	case UInt16:
		return "uint16"
	case UInt32:
		return "uint32"
	case UInt64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Boolean:
		return "bool"
	case String:
		return "string"
	}
	return "invalid"
}

// IsNumeric reports whether arithmetic is defined for columns of this type.
func (t Type) IsNumeric() bool {
	return t >= Int8 && t <= Float64
}

// IsOrdered reports whether columns of this type can be sorted and compared
// with less-than. Booleans are the only unordered type.
func (t Type) IsOrdered() bool {
	return t.IsNumeric() || t == String
}

// Field is one (name, runtime type) entry of a table's column list.
type Field struct {
	Name string
	Type Type
}
