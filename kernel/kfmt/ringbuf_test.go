package kfmt

import (
	"io"
	"testing"
)

func TestRingBufferReadWrite(t *testing.T) {
	var rb ringBuffer

	var buf [16]byte
	if n, err := rb.Read(buf[:]); n != 0 || err != io.EOF {
		t.Fatalf("expected reading an empty ring buffer to return (0, io.EOF); got (%d, %v)", n, err)
	}

	payload := []byte("the quick brown fox")
	if n, err := rb.Write(payload); n != len(payload) || err != nil {
		t.Fatalf("expected write to report (%d, nil); got (%d, %v)", len(payload), n, err)
	}

	var out []byte
	for {
		n, err := rb.Read(buf[:])
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
	}

	if string(out) != string(payload) {
		t.Fatalf("expected to read back %q; got %q", payload, out)
	}
}

func TestRingBufferOverwritesOldestData(t *testing.T) {
	var rb ringBuffer

	// Overfill the buffer by one byte so the first byte written is dropped.
	payload := make([]byte, earlyBufferSize+1)
	for i := range payload {
		payload[i] = byte('a' + (i % 26))
	}
	rb.Write(payload)

	var (
		buf [64]byte
		out []byte
	)
	for {
		n, err := rb.Read(buf[:])
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
	}

	if len(out) != earlyBufferSize-1 {
		t.Fatalf("expected to read %d bytes after overflow; got %d", earlyBufferSize-1, len(out))
	}

	if out[0] != payload[2] {
		t.Fatalf("expected oldest surviving byte to be %q; got %q", payload[2], out[0])
	}
}
