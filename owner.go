package rangeindex

import "context"

type opKind int

const (
	opUpdate opKind = iota
	opAdd
	opQuery
)

type request struct {
	kind  opKind
	a, b  int
	value int64
	reply chan response
}

type response struct {
	sum int64
	err error
}

// Owner confines a RangeIndex to the goroutine running Run. Other
// goroutines submit operations through Update, Add and Query, which
// are applied one at a time in arrival order.
//
// An operation that reached the owner is applied in full even if the
// caller's context is cancelled while waiting for the answer. Once Run
// has returned, every operation fails with ErrOwnerStopped.
type Owner struct {
	ri       *RangeIndex
	requests chan request
	stopped  chan struct{}
}

// NewOwner takes ownership of ri, which must not be used directly afterwards.
func NewOwner(ri *RangeIndex) *Owner {
	ri.mustBeReady()
	return &Owner{
		ri:       ri,
		requests: make(chan request),
		stopped:  make(chan struct{}),
	}
}

// Run serves requests until ctx is done and returns ctx.Err().
// It must be called at most once.
func (o *Owner) Run(ctx context.Context) error {
	defer close(o.stopped)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-o.requests:
			req.reply <- o.apply(req)
		}
	}
}

func (o *Owner) apply(req request) response {
	switch req.kind {
	case opUpdate:
		return response{err: o.ri.Update(req.a, req.value)}
	case opAdd:
		return response{err: o.ri.Add(req.a, req.value)}
	case opQuery:
		sum, err := o.ri.Query(req.a, req.b)
		return response{sum: sum, err: err}
	default:
		panic("rangeindex: unknown owner request")
	}
}

// Update sets the element at pos to val on the owner goroutine. It blocks
// until the owner answers, ctx is done or the owner stops, and returns
// ErrIndexOutOfRange, ErrOwnerStopped or ctx.Err() accordingly.
func (o *Owner) Update(ctx context.Context, pos int, val int64) error {
	_, err := o.submit(ctx, request{kind: opUpdate, a: pos, value: val})
	return err
}

// Add adds delta to the element at pos. It blocks like Update.
func (o *Owner) Add(ctx context.Context, pos int, delta int64) error {
	_, err := o.submit(ctx, request{kind: opAdd, a: pos, value: delta})
	return err
}

// Query returns the sum of [l, r] as RangeIndex.Query does. It blocks
// like Update.
func (o *Owner) Query(ctx context.Context, l, r int) (int64, error) {
	return o.submit(ctx, request{kind: opQuery, a: l, b: r})
}

func (o *Owner) submit(ctx context.Context, req request) (int64, error) {
	req.reply = make(chan response, 1)
	select {
	case <-ctx.Done():
		return identity, ctx.Err()
	case <-o.stopped:
		return identity, ErrOwnerStopped
	case o.requests <- req:
	}
	select {
	case <-ctx.Done():
		return identity, ctx.Err()
	case resp := <-req.reply:
		return resp.sum, resp.err
	case <-o.stopped:
		// Run always answers a request it received before returning
		select {
		case resp := <-req.reply:
			return resp.sum, resp.err
		default:
			return identity, ErrOwnerStopped
		}
	}
}
