package preprocess

import "github.com/pkg/errors"

// PixelBuffer is a fixed-capacity byte buffer with a write cursor. It is
// meant to be reused across requests: Rewind before every fill.
type PixelBuffer struct {
	data []byte
	pos  int
}

// NewPixelBuffer allocates a buffer holding exactly width*height*channels
// bytes.
func NewPixelBuffer(width, height, channels int) (*PixelBuffer, error) {
	if err := checkGeometry(width, height, channels); err != nil {
		return nil, err
	}
	return &PixelBuffer{data: make([]byte, width*height*channels)}, nil
}

// Rewind resets the cursor and zeroes the content.
func (b *PixelBuffer) Rewind() {
	b.pos = 0
	clear(b.data)
}

// Put appends one byte. Writing past capacity fails with ErrBufferOverflow.
func (b *PixelBuffer) Put(v byte) error {
	if b.pos >= len(b.data) {
		return errors.Wrapf(ErrBufferOverflow, "capacity %d", len(b.data))
	}
	b.data[b.pos] = v
	b.pos++
	return nil
}

// Cap is the fixed capacity in bytes.
func (b *PixelBuffer) Cap() int {
	return len(b.data)
}

// Len is the number of bytes written since the last Rewind.
func (b *PixelBuffer) Len() int {
	return b.pos
}

// Full reports whether every byte has been written.
func (b *PixelBuffer) Full() bool {
	return b.pos == len(b.data)
}

// Bytes returns the written bytes. The slice aliases the buffer and is only
// valid until the next Rewind.
func (b *PixelBuffer) Bytes() []byte {
	return b.data[:b.pos]
}
