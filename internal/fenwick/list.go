// Package fenwick provides a list of int64 supporting prefix and range
// sums in O(log n).
//
// A Fenwick tree, or binary indexed tree, keeps the list as an implicit
// tree in a slice of the same length, where element i holds the sum of
// the elements (i & (i+1)) through i.
package fenwick

// List is a list of numbers with efficient range sums. The zero value
// is an empty list.
type List struct {
	// To compute t[0] + … + t[k-1], add tree[k-1] and keep clearing
	// the lowest set bit of k. For k = 13 = 1101₂ this reads tree[12],
	// tree[11] and tree[7], holding t[12], t[8] + … + t[11] and
	// t[0] + … + t[7].
	tree []int64
}

func lsb(i int) int {
	return i & -i
}

// New creates a list holding a copy of values, in O(n).
func New(values ...int64) *List {
	t := make([]int64, len(values))
	copy(t, values)
	for i := range t {
		if j := i | (i + 1); j < len(t) {
			t[j] += t[i]
		}
	}
	return &List{tree: t}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.tree)
}

// Get returns the element at index i.
func (l *List) Get(i int) int64 {
	return l.SumRange(i, i+1)
}

// Set sets the element at index i to v.
func (l *List) Set(i int, v int64) {
	l.Add(i, v-l.Get(i))
}

// Add adds delta to the element at index i.
func (l *List) Add(i int, delta int64) {
	for ; i < len(l.tree); i |= i + 1 {
		l.tree[i] += delta
	}
}

// Sum returns the sum of the elements from index 0 to index i-1.
func (l *List) Sum(i int) int64 {
	var sum int64
	for ; i > 0; i -= lsb(i) {
		sum += l.tree[i-1]
	}
	return sum
}

// SumRange returns the sum of the elements from index i to index j-1.
// It requires i <= j.
func (l *List) SumRange(i, j int) int64 {
	var sum int64
	for j > i {
		sum += l.tree[j-1]
		j -= lsb(j)
	}
	for i > j {
		sum -= l.tree[i-1]
		i -= lsb(i)
	}
	return sum
}
