package measure

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// PrintResults writes the measurement results to w as a formatted table.
func PrintResults(w io.Writer, results []Result) {
	fmt.Fprintf(w, "%-24s | %-6s | %-12s | %-12s | %-6s | %-12s | %-12s\n",
		"Input", "Codec", "Original", "Compressed", "Ratio", "Comp MB/s", "Decomp MB/s")
	fmt.Fprintln(w, strings.Repeat("-", 102))

	for _, r := range results {
		fmt.Fprintf(w, "%-24s | %-6s | %-12s | %-12s | %-6.2f | %-12.2f | %-12.2f\n",
			r.Name,
			r.Stats.Algorithm.String(),
			formatNumber(int(r.Stats.OriginalSize)),
			formatNumber(int(r.Stats.CompressedSize)),
			r.Stats.CompressionRatio(),
			r.Stats.CompressThroughput()/(1024*1024),
			r.Stats.DecompressThroughput()/(1024*1024))
	}
}

// PrintSummary writes the human-readable summary of a single result, in the
// shape the CLI prints after a generated or single-file test.
func PrintSummary(w io.Writer, r Result) {
	fmt.Fprintf(w, "Original size: %d bytes\n", r.Stats.OriginalSize)
	fmt.Fprintf(w, "Compressed size: %d bytes (ratio: %.2f)\n",
		r.Stats.CompressedSize, r.Stats.CompressionRatio())
	fmt.Fprintf(w, "Compression time: %v\n", r.Stats.CompressionTime)
	fmt.Fprintf(w, "Decompression time: %v\n", r.Stats.DecompressionTime)
	fmt.Fprintf(w, "Digest: %016x\n", r.Digest)
}

// WriteLog appends one log entry per result to the file at path, creating it
// if necessary. The entry layout mirrors the folder harness log: one block of
// key/value lines per input, separated by "---".
func WriteLog(path string, results []Result) error {
	var sb strings.Builder

	timestamp := time.Now().Unix()
	for _, r := range results {
		fmt.Fprintf(&sb, "Timestamp: %ds\n", timestamp)
		fmt.Fprintf(&sb, "File: %s\n", r.Name)
		fmt.Fprintf(&sb, "Original Size: %d bytes\n", r.Stats.OriginalSize)
		fmt.Fprintf(&sb, "Compressed Size: %d bytes\n", r.Stats.CompressedSize)
		fmt.Fprintf(&sb, "Ratio: %.2f\n", r.Stats.CompressionRatio())
		fmt.Fprintf(&sb, "Compress Time: %v\n", r.Stats.CompressionTime)
		fmt.Fprintf(&sb, "Compress Speed: %.2f bytes/s\n", r.Stats.CompressThroughput())
		fmt.Fprintf(&sb, "Decompress Time: %v\n", r.Stats.DecompressionTime)
		fmt.Fprintf(&sb, "Decompress Speed: %.2f bytes/s\n", r.Stats.DecompressThroughput())
		fmt.Fprintf(&sb, "Digest: %016x\n", r.Digest)
		sb.WriteString("---\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	// Add commas
	var result []rune
	for i, digit := range reverse(s) {
		if i > 0 && i%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}

	return reverse(string(result))
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
