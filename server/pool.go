package server

import (
	"bytes"
	"sync"
)

// Buffer pools for reducing allocations

// requestBufferSize is the fixed capacity of one connection read. Longer
// requests are truncated, which is fine: the bytes are never parsed.
const requestBufferSize = 4096

// requestBufferPool holds fixed-size buffers for the single read per connection
var requestBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, requestBufferSize)
		return &buf
	},
}

// responseBufferPool holds bytes.Buffer for building responses
var responseBufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Pool size limits - buffers larger than this are discarded
const (
	maxPoolBufferSize = 16384 // 16KB
)
