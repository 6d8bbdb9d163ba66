package mxarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	assert.Equal(t, Double, ClassOf[float64]())
	assert.Equal(t, Single, ClassOf[float32]())
	assert.Equal(t, Int8, ClassOf[int8]())
	assert.Equal(t, Uint16, ClassOf[uint16]())
	assert.Equal(t, Int64, ClassOf[int64]())
	assert.Equal(t, Uint64, ClassOf[uint64]())
	assert.Equal(t, Logical, ClassOf[bool]())
}

func TestClassIDString(t *testing.T) {
	for c := Double; c <= Char; c++ {
		name := c.String()
		assert.NotEqual(t, "unknown", name)
		assert.Equal(t, c, ParseClass(name))
	}
	assert.Equal(t, Unknown, ParseClass("cell"))
}

func TestClassIDSize(t *testing.T) {
	assert.Equal(t, 8, Double.Size())
	assert.Equal(t, 4, Single.Size())
	assert.Equal(t, 2, Char.Size())
	assert.Equal(t, 1, Logical.Size())
	assert.Panics(t, func() { _ = Unknown.Size() })
}

func roundTrip[T Scalar](t *testing.T, values ...T) {
	t.Helper()
	d, err := DenseFromSlice(values, len(values))
	if !assert.NoError(t, err, "DenseFromSlice[%T]", values[0]) {
		return
	}
	assert.Equal(t, ClassOf[T](), d.ClassID())
	assert.Equal(t, values, View[T](d))
}

// Every Scalar type resolves to a class and can back an array.
func TestScalarTypesHaveClasses(t *testing.T) {
	roundTrip(t, 1.5, -2)
	roundTrip(t, float32(1.5))
	roundTrip(t, int8(-1), 2)
	roundTrip(t, uint8(1), 255)
	roundTrip(t, int16(-300))
	roundTrip(t, uint16(60000))
	roundTrip(t, int32(-1))
	roundTrip(t, uint32(1))
	roundTrip(t, int64(-1))
	roundTrip(t, uint64(1))
	roundTrip(t, true, false)
}
