package byteutil

import (
	"bytes"
	"sync"
)

var bytesBuffer = sync.Pool{
	New: func() interface{} { return &bytes.Buffer{} },
}

// GetBytesBuf returns an empty buffer from the pool.
func GetBytesBuf() *bytes.Buffer {
	return bytesBuffer.Get().(*bytes.Buffer)
}

// PutBytesBuf resets p and hands it back to the pool. p must not be used afterwards.
func PutBytesBuf(p *bytes.Buffer) {
	p.Reset()
	bytesBuffer.Put(p)
}
