package sieve

import (
	"fmt"
	"testing"
)

func BenchmarkRunSerial(b *testing.B) {
	cfg := Config{N: 1000000, WheelDepth: 4, BlockSize: DefaultBlockSize, Workers: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Run(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunParallel(b *testing.B) {
	cfg := Config{N: 1000000, WheelDepth: 4, BlockSize: 4096, Workers: 4}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Run(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompareWorkerCounts(b *testing.B) {
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			cfg := Config{N: 5000000, WheelDepth: 5, BlockSize: 8192, Workers: workers}
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Run(cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompareWheelDepths(b *testing.B) {
	for depth := 1; depth <= 5; depth++ {
		b.Run(fmt.Sprintf("depth=%d", depth), func(b *testing.B) {
			cfg := Config{N: 5000000, WheelDepth: depth, BlockSize: 8192, Workers: 4}
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Run(cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
