package compress

// ZstdCompressor is a reference codec wrapping Zstandard compression, used by
// the measurement harness for ratio comparisons against the RLE codec.
//
// Two implementations exist behind build tags: a cgo binding (valyala/gozstd)
// when cgo is available, and a pure-Go implementation (klauspost/compress)
// otherwise. Both produce interchangeable Zstandard streams.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
