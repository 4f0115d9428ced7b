package inventory

import "testing"

func TestNextQuantity(t *testing.T) {
	cases := []struct {
		current, required, next int64
		short                   bool
	}{
		{10, 2, 8, false},
		{2, 2, 0, false},
		{1, 3, -2, true},
		{-4, 1, -5, true},
	}
	for _, c := range cases {
		next, short := NextQuantity(c.current, c.required)
		if next != c.next || short != c.short {
			t.Errorf("NextQuantity(%d, %d) = (%d, %v), want (%d, %v)", c.current, c.required, next, short, c.next, c.short)
		}
	}
}
