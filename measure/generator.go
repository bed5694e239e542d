package measure

import (
	"math/rand"
)

// Config holds the configuration parameters for synthetic test data generation.
type Config struct {
	TargetSize     int   // Total bytes to generate
	MaxRunLength   int   // Upper bound for each generated run (exclusive)
	MaxNoiseLength int   // Upper bound for each noise segment (exclusive)
	Seed           int64 // Random seed for reproducibility
}

// DefaultConfig returns the generation parameters used by the CLI's generated
// test: 1MiB of interleaved runs (1-99 bytes) and random noise (1-49 bytes),
// a mix that is compressible but not trivially so.
func DefaultConfig() Config {
	return Config{
		TargetSize:     1024 * 1024,
		MaxRunLength:   100,
		MaxNoiseLength: 50,
		Seed:           42,
	}
}

// GenerateTestData creates a synthetic byte buffer according to the given
// configuration.
//
// The generator alternates runs of a random byte value with short segments of
// random noise until the target size is reached, then trims to exactly
// TargetSize. The same configuration always produces the same buffer.
func GenerateTestData(config Config) []byte {
	rng := rand.New(rand.NewSource(config.Seed))
	data := make([]byte, 0, config.TargetSize)

	for len(data) < config.TargetSize {
		value := byte(rng.Intn(256))
		runLen := 1 + rng.Intn(config.MaxRunLength-1)
		for n := 0; n < runLen; n++ {
			data = append(data, value)
		}

		noiseLen := 1 + rng.Intn(config.MaxNoiseLength-1)
		for n := 0; n < noiseLen; n++ {
			data = append(data, byte(rng.Intn(256)))
		}
	}

	return data[:config.TargetSize]
}
