// Command aapc is the Adaptive Pattern Compressor CLI.
//
// It compresses and decompresses files with the AAPC frame codec and runs the
// round-trip measurement harness on generated data, a single file, or a
// folder of test files.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/aapc/compress"
	"github.com/arloliu/aapc/format"
	"github.com/arloliu/aapc/measure"
)

var log = logrus.New()

func main() {
	app := &cli.App{
		Name:  "aapc",
		Usage: "Adaptive Pattern Compressor CLI",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file",
				ArgsUsage: "INPUT OUTPUT",
				Action:    compressFile,
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a file",
				ArgsUsage: "INPUT OUTPUT",
				Action:    decompressFile,
			},
			{
				Name:      "test",
				Usage:     "Run a round-trip test on generated data, or on a file if given",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					codecFlag(),
					&cli.IntFlag{
						Name:  "size",
						Usage: "Generated data size in bytes",
						Value: measure.DefaultConfig().TargetSize,
					},
				},
				Action: runTest,
			},
			{
				Name:  "test-folder",
				Usage: "Round-trip test every file in a folder and log the results",
				Flags: []cli.Flag{
					codecFlag(),
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Folder holding the test files",
						Value: "test_data",
					},
					&cli.StringFlag{
						Name:  "log",
						Usage: "Path of the result log to write",
						Value: "test_log.txt",
					},
				},
				Action: runFolderTest,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err)
	}
}

func codecFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "codec",
		Usage: "Codec to measure: rle, none, zstd, s2 or lz4",
		Value: "rle",
	}
}

func codecFromContext(ctx *cli.Context) (format.CompressionType, error) {
	name := ctx.String("codec")
	codecType, ok := format.ParseCompressionType(name)
	if !ok {
		return 0, fmt.Errorf("unknown codec %q", name)
	}

	return codecType, nil
}

func compressFile(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("compress needs INPUT and OUTPUT arguments")
	}
	input := ctx.Args().Get(0)
	output := ctx.Args().Get(1)

	log.WithField("input", input).Debug("reading input file")
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input %s: %w", input, err)
	}

	codec := compress.NewRLECodec()

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.WithField("output", output).Debug("writing compressed output")
	if err := os.WriteFile(output, compressed, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	ratio := 0.0
	if len(data) > 0 {
		ratio = float64(len(compressed)) / float64(len(data))
	}
	fmt.Printf("Compressed %s (%d bytes) to %s (%d bytes) in %v. Ratio: %.2f\n",
		input, len(data), output, len(compressed), elapsed, ratio)

	return nil
}

func decompressFile(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("decompress needs INPUT and OUTPUT arguments")
	}
	input := ctx.Args().Get(0)
	output := ctx.Args().Get(1)

	log.WithField("input", input).Debug("reading compressed input")
	compressed, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input %s: %w", input, err)
	}

	codec := compress.NewRLECodec()

	start := time.Now()
	data, err := codec.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", input, err)
	}
	elapsed := time.Since(start)

	log.WithField("output", output).Debug("writing decompressed output")
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	fmt.Printf("Decompressed %s (%d bytes) to %s (%d bytes) in %v.\n",
		input, len(compressed), output, len(data), elapsed)

	return nil
}

func runTest(ctx *cli.Context) error {
	codecType, err := codecFromContext(ctx)
	if err != nil {
		return err
	}

	var (
		name string
		data []byte
	)

	if ctx.NArg() > 0 {
		name = ctx.Args().Get(0)
		fmt.Printf("Testing with real file: %s\n", name)

		data, err = os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read input %s: %w", name, err)
		}
		log.WithField("size", len(data)).Debug("loaded file")
	} else {
		name = "generated"
		config := measure.DefaultConfig()
		config.TargetSize = ctx.Int("size")

		data = measure.GenerateTestData(config)
		log.WithField("size", len(data)).Debug("generated test data")
	}

	result, err := measure.Run(name, data, codecType)
	if err != nil {
		return err
	}

	measure.PrintSummary(os.Stdout, result)
	fmt.Println("Round trip verified: data is identical.")

	return nil
}

func runFolderTest(ctx *cli.Context) error {
	codecType, err := codecFromContext(ctx)
	if err != nil {
		return err
	}

	dir := ctx.String("dir")
	results, err := measure.RunFolder(dir, codecType, log)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Printf("No files found in %q folder.\n", dir)
		return nil
	}

	measure.PrintResults(os.Stdout, results)

	logPath := ctx.String("log")
	if err := measure.WriteLog(logPath, results); err != nil {
		return fmt.Errorf("write log %s: %w", logPath, err)
	}
	fmt.Printf("All tests complete. Log written to %q.\n", logPath)

	return nil
}
