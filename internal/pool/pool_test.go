package pool

import (
	"strings"
	"sync"
	"testing"
)

// TestStringBuilderPool tests the string builder pool
func TestStringBuilderPool(t *testing.T) {
	// Get a string builder from pool
	sb := GetStringBuilder()
	if sb == nil {
		t.Fatal("GetStringBuilder returned nil")
	}

	// Use it
	sb.WriteString("test")
	if sb.String() != "test" {
		t.Errorf("Expected 'test', got %q", sb.String())
	}

	// Return it to pool
	PutStringBuilder(sb)

	// Get again and verify it's reset
	sb2 := GetStringBuilder()
	if sb2.Len() != 0 {
		t.Errorf("String builder should be reset, but has length %d", sb2.Len())
	}

	PutStringBuilder(sb2)
}

// TestStringBuilderPool_Concurrent tests concurrent access to string builder pool
func TestStringBuilderPool_Concurrent(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sb := GetStringBuilder()
				sb.WriteString("test")
				if sb.String() != "test" {
					t.Errorf("Goroutine %d iteration %d: unexpected content", id, j)
				}
				PutStringBuilder(sb)
			}
		}(i)
	}

	wg.Wait()
}

// TestLineSlicePool tests the line slice pool
func TestLineSlicePool(t *testing.T) {
	lines := GetLineSlice()
	if lines == nil {
		t.Fatal("GetLineSlice returned nil")
	}
	if cap(*lines) < 16 {
		t.Errorf("Expected capacity >= 16, got %d", cap(*lines))
	}

	*lines = append(*lines, "row one", "row two")
	PutLineSlice(lines)

	lines2 := GetLineSlice()
	if len(*lines2) != 0 {
		t.Errorf("Line slice should be empty, has %d entries", len(*lines2))
	}
	PutLineSlice(lines2)
}

// BenchmarkStringBuilderPool benchmarks the string builder pool
func BenchmarkStringBuilderPool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := GetStringBuilder()
			sb.WriteString("test string")
			_ = sb.String()
			PutStringBuilder(sb)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := &strings.Builder{}
			sb.WriteString("test string")
			_ = sb.String()
		}
	})
}

// BenchmarkStringBuilderPool_Parallel benchmarks concurrent pool usage
func BenchmarkStringBuilderPool_Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			sb := GetStringBuilder()
			sb.WriteString("test string for parallel benchmark")
			_ = sb.String()
			PutStringBuilder(sb)
		}
	})
}

// BenchmarkLineSlicePool benchmarks the line slice pool
func BenchmarkLineSlicePool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			lines := GetLineSlice()
			*lines = append(*lines, "row")
			PutLineSlice(lines)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			lines := make([]string, 0, 64)
			_ = append(lines, "row")
		}
	})
}
