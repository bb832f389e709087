// Package rangeindex provides a segment tree over a sequence of integers
// supporting point updates and inclusive range sums in O(log n).
//
// The tree is stored implicitly in a flat slice: node 1 is the root and
// the children of node v are 2v and 2v+1. A node covering [tl, tr] splits
// at tm = (tl+tr)/2, its left child covering [tl, tm] and its right child
// [tm+1, tr]. Every node holds the sum of the positions it covers.
//
// Sum is the only combiner. Switching to another associative operation
// with an identity (min, max, xor, gcd) only touches combine and identity.
package rangeindex

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const defaultName = "rangeindex"

// identity is the aggregate of an empty range.
const identity int64 = 0

func combine(a, b int64) int64 {
	return a + b
}

var discardLogger = newDiscardLogger()

// queryVisit, when set, is called for every node query steps into.
var queryVisit func(v int)

func newDiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// RangeIndex is a segment tree answering range sums over a mutable
// sequence. The zero value is unbuilt: calling any method but String on
// it panics. Use New, NewSized or FromBytes.
//
// A RangeIndex is not safe for concurrent use. See SyncIndex and Owner.
type RangeIndex struct {
	tree  []int64
	n     int
	ready bool

	name string
	log  logrus.FieldLogger
}

// New builds a RangeIndex over a copy of values in O(n).
// An empty (or nil) values yields a ready index of length 0.
func New(values []int64, options ...rangeIndexOption) (*RangeIndex, error) {
	ri, err := newUnbuilt(options)
	if err != nil {
		return nil, err
	}
	ri.build(values)
	return ri, nil
}

// NewSized builds a RangeIndex over n zeroes. It fails with
// ErrInvalidInput when n is negative.
func NewSized(n int, options ...rangeIndexOption) (*RangeIndex, error) {
	if n < 0 {
		return nil, invalidInput("size must not be negative, got %d", n)
	}
	return New(make([]int64, n), options...)
}

func newUnbuilt(options []rangeIndexOption) (*RangeIndex, error) {
	ri := &RangeIndex{
		name: defaultName,
		log:  discardLogger,
	}
	for _, option := range options {
		if err := option(ri); err != nil {
			return nil, err
		}
	}
	return ri, nil
}

func (ri *RangeIndex) build(values []int64) {
	ri.n = len(values)
	ri.tree = make([]int64, 4*ri.n)
	if ri.n > 0 {
		ri.buildNode(values, 1, 0, ri.n-1)
	}
	ri.ready = true
}

func (ri *RangeIndex) buildNode(values []int64, v, tl, tr int) {
	if tl == tr {
		ri.tree[v] = values[tl]
		return
	}
	tm := (tl + tr) / 2
	ri.buildNode(values, 2*v, tl, tm)
	ri.buildNode(values, 2*v+1, tm+1, tr)
	ri.tree[v] = combine(ri.tree[2*v], ri.tree[2*v+1])
}

func (ri *RangeIndex) mustBeReady() {
	if !ri.ready {
		panic("rangeindex: use of an unbuilt RangeIndex")
	}
}

func (ri *RangeIndex) checkPos(op string, pos int) error {
	if pos >= 0 && pos < ri.n {
		return nil
	}
	ri.log.WithFields(logrus.Fields{
		"index": ri.name,
		"pos":   pos,
		"len":   ri.n,
	}).Debugf("rejected %s", op)
	return outOfRange("position %d not in [0, %d)", pos, ri.n)
}

// Len returns the length of the indexed sequence.
func (ri *RangeIndex) Len() int {
	ri.mustBeReady()
	return ri.n
}

// Update sets the element at pos to val. Only the nodes on the path from
// the root to the leaf of pos are rewritten.
func (ri *RangeIndex) Update(pos int, val int64) error {
	ri.mustBeReady()
	if err := ri.checkPos("update", pos); err != nil {
		return err
	}
	ri.update(1, 0, ri.n-1, pos, val)
	return nil
}

func (ri *RangeIndex) update(v, tl, tr, pos int, val int64) {
	if tl == tr {
		ri.tree[v] = val
		return
	}
	tm := (tl + tr) / 2
	if pos <= tm {
		ri.update(2*v, tl, tm, pos, val)
	} else {
		ri.update(2*v+1, tm+1, tr, pos, val)
	}
	ri.tree[v] = combine(ri.tree[2*v], ri.tree[2*v+1])
}

// Add adds delta to the element at pos, touching the same nodes Update would.
func (ri *RangeIndex) Add(pos int, delta int64) error {
	ri.mustBeReady()
	if err := ri.checkPos("add", pos); err != nil {
		return err
	}
	v, tl, tr := 1, 0, ri.n-1
	for {
		ri.tree[v] += delta
		if tl == tr {
			return nil
		}
		tm := (tl + tr) / 2
		if pos <= tm {
			v, tr = 2*v, tm
		} else {
			v, tl = 2*v+1, tm+1
		}
	}
}

// Query returns the sum of the elements in [l, r]. When l > r the range
// is empty and Query returns 0 without looking at the bounds; otherwise
// both bounds must lie in [0, n).
func (ri *RangeIndex) Query(l, r int) (int64, error) {
	ri.mustBeReady()
	if l > r {
		return identity, nil
	}
	if l < 0 || r >= ri.n {
		ri.log.WithFields(logrus.Fields{
			"index": ri.name,
			"l":     l,
			"r":     r,
			"len":   ri.n,
		}).Debug("rejected query")
		return identity, outOfRange("range [%d, %d] not within [0, %d)", l, r, ri.n)
	}
	return ri.query(1, 0, ri.n-1, l, r), nil
}

// query descends only while [l, r] differs from the node's segment, and
// hands each child the part of [l, r] on its side of tm.
func (ri *RangeIndex) query(v, tl, tr, l, r int) int64 {
	if queryVisit != nil {
		queryVisit(v)
	}
	if l > r {
		return identity
	}
	if l == tl && r == tr {
		return ri.tree[v]
	}
	tm := (tl + tr) / 2
	return combine(
		ri.query(2*v, tl, tm, l, min(r, tm)),
		ri.query(2*v+1, tm+1, tr, max(l, tm+1), r),
	)
}

// Get returns the element at pos.
func (ri *RangeIndex) Get(pos int) (int64, error) {
	ri.mustBeReady()
	if err := ri.checkPos("get", pos); err != nil {
		return identity, err
	}
	v, tl, tr := 1, 0, ri.n-1
	for tl != tr {
		tm := (tl + tr) / 2
		if pos <= tm {
			v, tr = 2*v, tm
		} else {
			v, tl = 2*v+1, tm+1
		}
	}
	return ri.tree[v], nil
}

// Total returns the sum of the whole sequence, 0 when it is empty.
func (ri *RangeIndex) Total() int64 {
	ri.mustBeReady()
	if ri.n == 0 {
		return identity
	}
	return ri.tree[1]
}

// Values returns a copy of the current sequence.
func (ri *RangeIndex) Values() []int64 {
	ri.mustBeReady()
	values := make([]int64, 0, ri.n)
	if ri.n > 0 {
		values = ri.appendLeaves(values, 1, 0, ri.n-1)
	}
	return values
}

func (ri *RangeIndex) appendLeaves(dst []int64, v, tl, tr int) []int64 {
	if tl == tr {
		return append(dst, ri.tree[v])
	}
	tm := (tl + tr) / 2
	dst = ri.appendLeaves(dst, 2*v, tl, tm)
	return ri.appendLeaves(dst, 2*v+1, tm+1, tr)
}

// Clone returns a deep copy of ri. Updates to either copy do not affect
// the other. The clone shares ri's name and logger.
func (ri *RangeIndex) Clone() *RangeIndex {
	ri.mustBeReady()
	return &RangeIndex{
		tree:  append([]int64(nil), ri.tree...),
		n:     ri.n,
		ready: true,
		name:  ri.name,
		log:   ri.log,
	}
}

func (ri *RangeIndex) String() string {
	if ri == nil || !ri.ready {
		return "RI<unbuilt>"
	}
	return fmt.Sprintf("RI<name=%s, n=%d, total=%d>", ri.name, ri.n, ri.Total())
}
