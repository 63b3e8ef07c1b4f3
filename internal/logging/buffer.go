package logging

import (
	"fmt"
	"strings"
	"sync"
)

func sprintf(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

const chunkSize = 1 << 14

// circularBuffer is a small ring of byte chunks that zerolog always writes
// into alongside stderr, so the library never needs unbounded
// memory to remember "what got logged recently." Ported from the chunked
// ring go2rtc keeps for its in-memory log view.
type circularBuffer struct {
	mu     sync.Mutex
	chunks [][]byte
	r, w   int
}

func newCircularBuffer(chunks int) *circularBuffer {
	b := &circularBuffer{chunks: make([][]byte, 0, chunks)}
	b.chunks = append(b.chunks, make([]byte, 0, chunkSize))
	return b
}

func (b *circularBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(p)
	if len(b.chunks[b.w])+n > chunkSize {
		if b.w++; b.w == cap(b.chunks) {
			b.w = 0
		}
		if b.r == b.w {
			if b.r++; b.r == cap(b.chunks) {
				b.r = 0
			}
		}
		if b.w == len(b.chunks) {
			b.chunks = append(b.chunks, make([]byte, 0, chunkSize))
		} else {
			b.chunks[b.w] = b.chunks[b.w][:0]
		}
	}

	b.chunks[b.w] = append(b.chunks[b.w], p...)
	return n, nil
}

// String renders every chunk from the oldest still held to the newest, in
// order.
func (b *circularBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	for i := b.r; ; {
		sb.Write(b.chunks[i])
		if i == b.w {
			break
		}
		if i++; i == cap(b.chunks) {
			i = 0
		}
	}
	return sb.String()
}
