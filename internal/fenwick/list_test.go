package fenwick

import "testing"

func TestList(t *testing.T) {
	l := New(1, 1, 2, 1, 1)

	assertSum := func(i int, v int64) {
		t.Helper()
		if got := l.Sum(i); got != v {
			t.Errorf("sum %d: got %v != exp %v (tree %v)", i, got, v, l.tree)
		}
	}

	assertGet := func(i int, v int64) {
		t.Helper()
		if got := l.Get(i); got != v {
			t.Errorf("get %d: got %v != exp %v (tree %v)", i, got, v, l.tree)
		}
	}

	if l.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", l.Len())
	}

	assertSum(0, 0)
	assertGet(0, 1)
	assertSum(1, 1)
	assertGet(1, 1)
	assertSum(2, 2)
	assertGet(2, 2)
	assertSum(3, 4)
	assertGet(3, 1)
	assertSum(4, 5)
	assertGet(4, 1)
	assertSum(5, 6)

	l.Set(2, 5)

	assertGet(2, 5)
	assertSum(3, 7)
	assertSum(5, 9)

	l.Add(4, -10)

	assertGet(4, -9)
	assertSum(5, -1)
}

func TestSumRange(t *testing.T) {
	values := []int64{5, -3, 8, 0, 12, 7, -1, 4, 9, 2, 6}
	l := New(values...)

	for i := 0; i <= len(values); i++ {
		for j := i; j <= len(values); j++ {
			var want int64
			for _, v := range values[i:j] {
				want += v
			}
			if got := l.SumRange(i, j); got != want {
				t.Errorf("SumRange(%d, %d) = %d, expected %d", i, j, got, want)
			}
		}
	}
}

func TestZeroValue(t *testing.T) {
	var l List
	if l.Len() != 0 || l.Sum(0) != 0 || l.SumRange(0, 0) != 0 {
		t.Errorf("The zero List should be empty")
	}
}
