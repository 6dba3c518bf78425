package vector

import "testing"

func TestV_Magnitude(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		v        V
		expected float64
	}{
		{name: "positive", v: New([]float64{3, 4}), expected: 5},
		{name: "empty", v: V{}, expected: 0},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.v.Magnitude(); got != test.expected {
				t.Errorf("magnitude got: %v, expected: %v", got, test.expected)
			}
		})
	}
}

func TestV_Head(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		v        V
		n        int
		expected V
	}{
		{name: "shorter", v: V{1, 2, 3, 4, 5, 6}, n: 5, expected: V{1, 2, 3, 4, 5}},
		{name: "longer", v: V{1, 2}, n: 5, expected: V{1, 2}},
		{name: "negative", v: V{1, 2}, n: -1, expected: V{}},
	}
	for _, test := range tests {
		head := test.v.Head(test.n)
		if !head.Equal(test.expected) {
			t.Errorf("%s: head got: %v, expected: %v", test.name, head, test.expected)
		}
		if len(head) > 0 {
			head[0] = 100
			if test.v[0] == 100 {
				t.Errorf("%s: head must not alias the source vector", test.name)
			}
		}
	}
}

func TestV_Equal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		v        V
		v1       V
		expected bool
	}{
		{name: "positive", v: V{10, 10}, v1: V{10, 10}, expected: true},
		{name: "negative", v: V{10, 10}, v1: V{11, 10}, expected: false},
		{name: "negative_size", v: V{10, 10}, v1: V{10}, expected: false},
	}
	for _, test := range tests {
		if test.v.Equal(test.v1) != test.expected {
			t.Errorf("the comparison of vectors, got: %v, expected: %v", test.v.Equal(test.v1), test.expected)
		}
	}
}
