package rangeindex

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const leafEncoding int32 = 1

// AsBytes serializes the current sequence. The layout is a big-endian
// int32 encoding version, a big-endian int32 length and one zig-zag
// varint per element. Inner nodes are not stored: FromBytes rebuilds them.
func (ri *RangeIndex) AsBytes() ([]byte, error) {
	ri.mustBeReady()
	if ri.n > math.MaxInt32 {
		return nil, errors.Errorf("cannot encode %d elements", ri.n)
	}

	buffer := new(bytes.Buffer)
	buffer.Grow(8 + ri.n)

	if err := binary.Write(buffer, binary.BigEndian, leafEncoding); err != nil {
		return nil, err
	}
	if err := binary.Write(buffer, binary.BigEndian, int32(ri.n)); err != nil {
		return nil, err
	}

	var scratch [binary.MaxVarintLen64]byte
	for _, value := range ri.Values() {
		k := binary.PutVarint(scratch[:], value)
		buffer.Write(scratch[:k])
	}

	return buffer.Bytes(), nil
}

// FromBytes reads a sequence written by AsBytes and builds a RangeIndex
// over it. Any malformed input, including trailing bytes, fails with
// ErrInvalidInput.
func FromBytes(buf *bytes.Reader, options ...rangeIndexOption) (*RangeIndex, error) {
	ri, err := newUnbuilt(options)
	if err != nil {
		return nil, err
	}

	values, err := decodeLeaves(buf)
	if err != nil {
		ri.log.WithFields(logrus.Fields{
			"index": ri.name,
			"error": err,
		}).Debug("rejected snapshot")
		return nil, err
	}

	ri.build(values)
	return ri, nil
}

func decodeLeaves(buf *bytes.Reader) ([]int64, error) {
	var encoding int32
	if err := binary.Read(buf, binary.BigEndian, &encoding); err != nil {
		return nil, invalidInput("reading encoding version: %v", err)
	}
	if encoding != leafEncoding {
		return nil, invalidInput("unsupported encoding version: %d", encoding)
	}

	var n int32
	if err := binary.Read(buf, binary.BigEndian, &n); err != nil {
		return nil, invalidInput("reading length: %v", err)
	}
	// every element takes at least one byte
	if n < 0 || int(n) > buf.Len() {
		return nil, invalidInput("length %d does not fit in %d remaining bytes", n, buf.Len())
	}

	values := make([]int64, n)
	for i := range values {
		value, err := binary.ReadVarint(buf)
		if err != nil {
			return nil, invalidInput("reading element %d: %v", i, err)
		}
		values[i] = value
	}

	if buf.Len() != 0 {
		return nil, invalidInput("%d trailing bytes", buf.Len())
	}
	return values, nil
}
