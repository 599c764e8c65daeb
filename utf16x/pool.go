package utf16x

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 8192 // max scratch bytes retained
	poolInitCap = 64
)

// scratch byte pool for the native delegate's UTF-16LE staging buffer
var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

func getScratch() *[]byte {
	return scratchPool.Get().(*[]byte)
}

func putScratch(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	scratchPool.Put(buf)
}
