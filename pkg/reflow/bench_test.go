package reflow_test

import (
	"strings"
	"testing"

	"github.com/micr0-dev/prose/pkg/reflow"
)

// benchmarkReformat runs Reformat over sample repeated n times at the given
// options. The timer is reset after building the input.
func benchmarkReformat(b *testing.B, n int, opts reflow.Options) {
	text := strings.Repeat(sample+" ", n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = reflow.Reformat(opts, text)
	}
}

func BenchmarkReformat_Greedy(b *testing.B) {
	benchmarkReformat(b, 20, reflow.Options{MaxLength: 72})
}

func BenchmarkReformat_Balanced(b *testing.B) {
	benchmarkReformat(b, 20, reflow.Options{MaxLength: 72, ReduceJaggedness: true})
}

func BenchmarkReformat_BalancedLastLine(b *testing.B) {
	benchmarkReformat(b, 20, reflow.Options{MaxLength: 72, ReduceJaggedness: true, LastLine: true})
}

// BenchmarkReformat_BalancedLongParagraph covers a single paragraph of about
// 12,000 words.
func BenchmarkReformat_BalancedLongParagraph(b *testing.B) {
	benchmarkReformat(b, 200, reflow.Options{MaxLength: 72, ReduceJaggedness: true, LastLine: true})
}
