// Package compress wraps the AAPC frame codec and a set of reference codecs
// behind a common Codec interface.
//
// The native codec is CompressionRLE, the framed run-length format implemented
// by the frame and rle packages. The remaining codecs (None, Zstd, S2, LZ4)
// exist so the measurement harness and the CLI can report how the RLE format
// compares against general-purpose compressors on the same input; they are
// not part of the AAPC wire format.
//
// Codecs are obtained from the factories:
//
//	codec, err := compress.GetCodec(format.CompressionRLE)
//	compressed, err := codec.Compress(data)
//	original, err := codec.Decompress(compressed)
//
// All built-in codecs are stateless values and safe for concurrent use.
package compress
