package format

// CompressionType identifies one of the codecs the aapc toolchain can run.
//
// CompressionRLE is the native AAPC frame codec; the remaining types are
// reference codecs used by the measurement harness and CLI for ratio and
// throughput comparisons. They do not participate in the AAPC wire format.
type CompressionType uint8

const (
	CompressionRLE  CompressionType = 0x1 // CompressionRLE represents the native AAPC run-length codec.
	CompressionNone CompressionType = 0x2 // CompressionNone represents no compression (passthrough).
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionRLE:
		return "RLE"
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a user-facing codec name (as accepted by the CLI)
// to its CompressionType. Accepted names are "rle", "none", "zstd", "s2" and
// "lz4".
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "rle":
		return CompressionRLE, true
	case "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
