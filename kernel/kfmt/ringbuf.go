package kfmt

import "io"

// earlyBufferSize defines the size of the ring buffer that captures Printf
// output generated before a display driver is activated. It is large enough
// to hold the contents of a full 80x25 text grid and must be a power of 2.
const earlyBufferSize = 2048

// ringBuffer buffers early Printf output until an output sink is installed.
// Once the buffer fills up, the oldest data gets overwritten.
type ringBuffer struct {
	buffer [earlyBufferSize]byte
	rIndex int
	wIndex int
}

// Write appends len(p) bytes from p to the ring buffer.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.buffer[rb.wIndex] = b
		rb.wIndex = (rb.wIndex + 1) & (earlyBufferSize - 1)
		if rb.rIndex == rb.wIndex {
			rb.rIndex = (rb.rIndex + 1) & (earlyBufferSize - 1)
		}
	}

	return len(p), nil
}

// Read reads up to len(p) bytes into p, returning the number of bytes read.
// Once the buffered data is drained, Read returns io.EOF.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	var n int

	switch {
	case rb.rIndex < rb.wIndex:
		n = rb.wIndex - rb.rIndex
		if len(p) < n {
			n = len(p)
		}

		copy(p, rb.buffer[rb.rIndex:rb.rIndex+n])
		rb.rIndex += n

		return n, nil
	case rb.rIndex > rb.wIndex:
		n = earlyBufferSize - rb.rIndex
		if len(p) < n {
			n = len(p)
		}

		copy(p, rb.buffer[rb.rIndex:rb.rIndex+n])
		rb.rIndex += n

		if rb.rIndex == earlyBufferSize {
			rb.rIndex = 0
		}

		return n, nil
	default:
		return 0, io.EOF
	}
}
