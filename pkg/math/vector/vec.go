package vector

import (
	"math"
)

type V []float64

func New(vec []float64) V {
	return vec
}

func (v V) Dimensions() int {
	return len(v)
}

func (v V) Copy() V {
	var v1 = make(V, len(v))
	copy(v1, v)
	return v1
}

// Head returns a copy of the first n components, or all of them when v is shorter.
func (v V) Head(n int) V {
	if n > len(v) {
		n = len(v)
	}
	if n < 0 {
		n = 0
	}
	return v[:n].Copy()
}

func (v V) Magnitude() float64 {
	result := 0.0
	for i := range v {
		result += v[i] * v[i]
	}
	return math.Sqrt(result)
}

func (v V) Equal(vec V) bool {
	if len(v) != len(vec) {
		return false
	}
	for i, value := range v {
		if vec[i] != value {
			return false
		}
	}
	return true
}
