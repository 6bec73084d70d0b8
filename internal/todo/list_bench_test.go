package todo

import (
	"fmt"
	"testing"
)

func benchList(n int) List {
	l := List{}
	for i := 1; i <= n; i++ {
		l = l.Add(fmt.Sprintf("Task %d", i))
		if i%3 == 0 {
			l = l.Complete(i)
		}
	}
	return l
}

// BenchmarkAdd benchmarks appending to a 100-task list.
func BenchmarkAdd(b *testing.B) {
	l := benchList(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Add("another task")
	}
}

// BenchmarkReorder benchmarks moving the first task after the last one.
func BenchmarkReorder(b *testing.B) {
	l := benchList(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Reorder(1, 100)
	}
}

// BenchmarkFilter benchmarks a full pass over the active view.
func BenchmarkFilter(b *testing.B) {
	l := benchList(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range l.Filter(FilterActive) {
			n++
		}
		if n == 0 {
			b.Fatal("no active tasks")
		}
	}
}
