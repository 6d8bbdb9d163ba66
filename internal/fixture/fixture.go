// Package fixture loads named array descriptors from YAML files.
//
// A fixture file looks like:
//
//	arrays:
//	  - name: weights
//	    class: double
//	    dims: [3, 4, 2]
//	    data: [1, 2, 3]
//	  - name: graph
//	    class: double
//	    dims: [5, 5]
//	    sparse: true
//
// Data is optional; missing elements are zero. Integer classes only accept
// whole values within their range, and char arrays take no data.
package fixture

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/mexutil/internal/mxarray"
)

// Spec describes a single array.
type Spec struct {
	Name    string    `yaml:"name"`
	Class   string    `yaml:"class"`
	Dims    []int     `yaml:"dims"`
	Sparse  bool      `yaml:"sparse"`
	Complex bool      `yaml:"complex"`
	Data    []float64 `yaml:"data"`
}

// Set is a collection of arrays keyed by name.
type Set struct {
	Arrays []Spec `yaml:"arrays"`

	built map[string]mxarray.Array
}

// Load reads and decodes a fixture file.
func Load(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read fixture")
	}
	return Parse(raw)
}

// Parse decodes fixture YAML and builds every array in it.
func Parse(raw []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return nil, errors.Wrap(err, "decode fixture")
	}

	set.built = make(map[string]mxarray.Array, len(set.Arrays))
	for i := range set.Arrays {
		spec := &set.Arrays[i]
		if spec.Name == "" {
			return nil, errors.Errorf("array %d has no name", i)
		}
		if _, dup := set.built[spec.Name]; dup {
			return nil, errors.Errorf("duplicate array %q", spec.Name)
		}
		array, err := spec.Build()
		if err != nil {
			return nil, errors.WithMessagef(err, "array %q", spec.Name)
		}
		set.built[spec.Name] = array
	}
	return &set, nil
}

// Lookup returns the array with the given name.
func (s *Set) Lookup(name string) (mxarray.Array, error) {
	array, ok := s.built[name]
	if !ok {
		return nil, errors.Errorf("no array named %q", name)
	}
	return array, nil
}

// Build creates the array described by the spec.
func (s *Spec) Build() (mxarray.Array, error) {
	class := mxarray.Double
	if s.Class != "" {
		class = mxarray.ParseClass(s.Class)
	}
	if class == mxarray.Unknown {
		return nil, errors.Errorf("unknown class %q", s.Class)
	}

	if s.Sparse {
		if len(s.Dims) != 2 {
			return nil, errors.Errorf("sparse arrays need exactly 2 dims, got %v", s.Dims)
		}
		sparse, err := mxarray.NewSparse(s.Dims[0], s.Dims[1], len(s.Data), class)
		if err != nil {
			return nil, err
		}
		return sparse, nil
	}

	newArray := mxarray.NewDense
	if s.Complex {
		newArray = mxarray.NewComplex
	}
	array, err := newArray(s.Dims, class)
	if err != nil {
		return nil, err
	}
	if len(s.Data) > array.NumElements() {
		return nil, errors.Errorf("%d data values exceed %d elements", len(s.Data), array.NumElements())
	}
	if err := fill(array, s.Data); err != nil {
		return nil, err
	}
	return array, nil
}

func fill(array *mxarray.Dense, data []float64) error {
	switch array.ClassID() {
	case mxarray.Double:
		copy(mxarray.View[float64](array), data)
	case mxarray.Single:
		for i, v := range data {
			if !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
				return errors.Errorf("data[%d] = %g overflows single", i, v)
			}
		}
		dst := mxarray.View[float32](array)
		for i, v := range data {
			dst[i] = float32(v)
		}
	case mxarray.Int8:
		return convert(mxarray.View[int8](array), data, math.MinInt8, 1<<7)
	case mxarray.Uint8:
		return convert(mxarray.View[uint8](array), data, 0, 1<<8)
	case mxarray.Int16:
		return convert(mxarray.View[int16](array), data, math.MinInt16, 1<<15)
	case mxarray.Uint16:
		return convert(mxarray.View[uint16](array), data, 0, 1<<16)
	case mxarray.Int32:
		return convert(mxarray.View[int32](array), data, math.MinInt32, 1<<31)
	case mxarray.Uint32:
		return convert(mxarray.View[uint32](array), data, 0, 1<<32)
	case mxarray.Int64:
		return convert(mxarray.View[int64](array), data, math.MinInt64, 1<<63)
	case mxarray.Uint64:
		return convert(mxarray.View[uint64](array), data, 0, 1<<64)
	case mxarray.Logical:
		flags := mxarray.View[bool](array)
		for i, v := range data {
			flags[i] = v != 0
		}
	default:
		if len(data) > 0 {
			return errors.Errorf("data is not supported for class %s", array.ClassID())
		}
	}
	return nil
}

type integer interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64
}

// convert stores src into dst. Every value must be an integer in [lo, hi).
func convert[T integer](dst []T, src []float64, lo, hi float64) error {
	for i, v := range src {
		if v != math.Trunc(v) || v < lo || v >= hi {
			return errors.Errorf("data[%d] = %g is not a valid %T", i, v, dst[i])
		}
	}
	for i, v := range src {
		dst[i] = T(v)
	}
	return nil
}
