// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the elementwise layer and the
// elimination engine, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkF float64
	sinkI int
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomMatrix(b, n, n, 1337)
			B := randomMatrix(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulMat(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomMatrix(b, n, n, 11)
			B := randomMatrix(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MulMat(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkReducedRowEchelon(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomMatrix(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.ReducedRowEchelon(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomMatrix(b, n, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant4x4(b *testing.B) {
	b.ReportAllocs()
	A := randomMatrix(b, 4, 4, 5)
	for i := 0; i < b.N; i++ {
		d, err := matrix.Determinant(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = d
	}
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	A := randomMatrix(b, 64, 32, 3)
	for i := 0; i < b.N; i++ {
		r, err := matrix.Rank(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = r
	}
}
