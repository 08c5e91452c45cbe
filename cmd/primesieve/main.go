package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JosephFranks/groupsieve/internal/progress"
	"github.com/JosephFranks/groupsieve/sieve"
)

var (
	n           uint64
	wheelDepth  int
	blockSize   uint64
	workers     int
	progressBar bool
	quiet       bool
)

func init() {
	flag.Uint64Var(&n, "n", 0, "Upper bound (inclusive) for prime generation")
	flag.IntVar(&wheelDepth, "wheel", 4, "Wheel depth, 1-7 (deeper wheels cost more setup but sieve fewer residues per prime)")
	flag.Uint64Var(&blockSize, "block", sieve.DefaultBlockSize, "Block size, in decade-slots")
	flag.IntVar(&workers, "workers", 1, "Number of worker goroutines (1 selects the serial path)")
	flag.BoolVar(&progressBar, "progress", false, "Show progress bar")
	flag.BoolVar(&quiet, "quiet", false, "Only print the count (no prime list)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Segmented Wheel Sieve\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [n]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --wheel 1 1000                 # Primes up to 1000\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --workers 8 --wheel 5 100000000  # Parallel, deeper wheel\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --quiet 1000000000              # Count only, no output\n", os.Args[0])
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 0 && n == 0 {
		parsed, err := strconv.ParseUint(flag.Arg(0), 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid number %q: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
		n = parsed
	}

	if n == 0 {
		fmt.Fprint(os.Stderr, "Enter upper bound (n): ")
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		parsed, err := strconv.ParseUint(strings.TrimSpace(input), 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid number %q: %v\n", strings.TrimSpace(input), err)
			os.Exit(1)
		}
		n = parsed
	}

	if workers <= 0 {
		workers = progress.DefaultWorkers()
	}

	cfg := sieve.Config{
		N:          n,
		WheelDepth: wheelDepth,
		BlockSize:  blockSize,
		Workers:    workers,
	}

	var bar *progress.Bar
	if progressBar {
		slots := n/10 + 1
		bar = progress.NewBar(int64(slots), "Sieving")
		cfg.Progress = func(delta int) { bar.Add(int64(delta)) }
	}

	computeStart := time.Now()
	ctx, err := sieve.Run(cfg)
	if err != nil {
		exitForError(err)
	}

	out := bufio.NewWriter(os.Stdout)
	count := 0
	var last uint64
	printErr := ctx.Emit(func(p uint64) error {
		count++
		last = p
		if !quiet {
			fmt.Fprintln(out, p)
		}
		return nil
	})
	if flushErr := out.Flush(); printErr == nil {
		printErr = flushErr
	}
	if printErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", printErr)
		os.Exit(1)
	}

	if bar != nil {
		bar.Finish()
	}

	totalTime := time.Since(computeStart)
	rate := float64(count) / totalTime.Seconds()

	if count > 0 {
		fmt.Fprintf(os.Stderr, "Done! Largest prime <= %d is %d. Generated %d primes in %.3fs (%s primes/s).\n",
			n, last, count, totalTime.Seconds(), progress.FormatNumber(int64(rate)))
	} else {
		fmt.Fprintf(os.Stderr, "Done! Generated 0 primes in %.3fs.\n", totalTime.Seconds())
	}
}

func exitForError(err error) {
	switch {
	case errors.Is(err, sieve.ErrBadBound):
		fmt.Fprintf(os.Stderr, "Error: %v (must be in 1..%d)\n", err, sieve.MaxBound)
	case errors.Is(err, sieve.ErrBadWheel):
		fmt.Fprintf(os.Stderr, "Error: %v (depth must be 1..%d and fit within the bound)\n", err, sieve.MaxWheelDepth)
	case errors.Is(err, sieve.ErrAlloc):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
