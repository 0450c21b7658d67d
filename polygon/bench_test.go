// SPDX-License-Identifier: MIT

package polygon_test

import (
	"testing"

	"github.com/katalvlaran/polymetrics/polygon"
)

// benchmarkBordering runs Bordering on a tagged regular n-gon.
func benchmarkBordering(b *testing.B, n int, borderType int) {
	tags := make([]int, n)
	for i := range tags {
		tags[i] = i % 3 // three interleaved border types
	}
	p := polygon.MustNew(regular(n, 100), polygon.WithBorderTypes(tags...))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Bordering(borderType, 1.5); err != nil {
			b.Fatalf("Bordering failed: %v", err)
		}
	}
}

// BenchmarkBordering_Any1k sums every edge of a 1000-gon.
func BenchmarkBordering_Any1k(b *testing.B) {
	benchmarkBordering(b, 1000, polygon.AnyBorder)
}

// BenchmarkBordering_Type1k filters a third of the edges of a 1000-gon.
func BenchmarkBordering_Type1k(b *testing.B) {
	benchmarkBordering(b, 1000, 1)
}

// BenchmarkArea1k measures the fan area of a 1000-gon.
func BenchmarkArea1k(b *testing.B) {
	p := polygon.MustNew(regular(1000, 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Area()
	}
}
