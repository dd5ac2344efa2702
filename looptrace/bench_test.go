package looptrace_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// borderLoop returns an n×n grid whose outer ring is the loop, S in the
// top-left corner.
func borderLoop(n int) []byte {
	var buf bytes.Buffer
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == 0 && y == 0:
				buf.WriteByte('S')
			case x == n-1 && y == 0:
				buf.WriteByte('7')
			case x == 0 && y == n-1:
				buf.WriteByte('L')
			case x == n-1 && y == n-1:
				buf.WriteByte('J')
			case y == 0 || y == n-1:
				buf.WriteByte('-')
			case x == 0 || x == n-1:
				buf.WriteByte('|')
			default:
				buf.WriteByte('.')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// BenchmarkTrace measures a walk around the border of a 1000×1000 grid.
// Complexity: O(L) per walk plus O(W×H) for the membership bitmap.
func BenchmarkTrace(b *testing.B) {
	g, err := pipegrid.Parse(borderLoop(1000))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = looptrace.Trace(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTraceVerify measures the two-direction self-check.
func BenchmarkTraceVerify(b *testing.B) {
	g, err := pipegrid.Parse(borderLoop(1000))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = looptrace.Trace(g, looptrace.WithVerify()); err != nil {
			b.Fatal(err)
		}
	}
}

// TestBorderLoop keeps the benchmark fixture honest.
func TestBorderLoop(t *testing.T) {
	g, err := pipegrid.Parse(borderLoop(6))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	loop, err := looptrace.Trace(g, looptrace.WithVerify())
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if loop.Len() != 20 {
		t.Errorf("Len = %d; want 20", loop.Len())
	}
}
