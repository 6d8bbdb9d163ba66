// Package mxarray models the host array descriptors handed to a MEX function.
package mxarray

// Scalar is a constraint for element types that map onto a numeric class.
// Named types are excluded: ClassOf must resolve T to exactly one class.
type Scalar interface {
	float64 | float32 | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | bool
}

// ClassID identifies the runtime element type of an array.
type ClassID int

// Array classes, named after their mxClassID counterparts.
const (
	Unknown ClassID = iota
	Double
	Single
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Logical
	Char
)

// Size returns the byte size of one element of the class.
func (c ClassID) Size() int {
	switch c {
	case Double, Int64, Uint64:
		return 8
	case Single, Int32, Uint32:
		return 4
	case Int16, Uint16, Char:
		return 2
	case Int8, Uint8, Logical:
		return 1
	default:
		panic("unknown array class")
	}
}

// String returns the MATLAB class name.
func (c ClassID) String() string {
	switch c {
	case Double:
		return "double"
	case Single:
		return "single"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Logical:
		return "logical"
	case Char:
		return "char"
	default:
		return "unknown"
	}
}

// ParseClass returns the class with the given MATLAB name, or Unknown.
func ParseClass(name string) ClassID {
	for c := Double; c <= Char; c++ {
		if c.String() == name {
			return c
		}
	}
	return Unknown
}

// ClassOf returns the class whose elements have Go type T.
func ClassOf[T Scalar]() ClassID {
	var dummy T
	switch any(dummy).(type) {
	case float64:
		return Double
	case float32:
		return Single
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case uint64:
		return Uint64
	case bool:
		return Logical
	default:
		return Unknown
	}
}
