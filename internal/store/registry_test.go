package store

import (
	"sync"
	"testing"
)

func TestRegistryHandlesMonotonic(t *testing.T) {
	r := NewRegistry[int]()
	for want := 0; want < 5; want++ {
		if got := r.Load([]int{want}); got != want {
			t.Fatalf("Load #%d returned handle %d", want, got)
		}
	}
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
}

func TestRegistryCopiesInput(t *testing.T) {
	r := NewRegistry[float64]()
	src := []float64{1, 2, 3}
	id := r.Load(src)
	src[0] = 99

	got, ok := r.Get(id)
	if !ok {
		t.Fatal("Get: handle not found")
	}
	if got[0] != 1 {
		t.Errorf("stored[0] = %v, want 1 (registry must own its copy)", got[0])
	}
}

func TestRegistryUnknownHandle(t *testing.T) {
	r := NewRegistry[string]()
	r.Load([]string{"a"})
	for _, id := range []int{-1, 1, 42} {
		if _, ok := r.Get(id); ok {
			t.Errorf("Get(%d) ok = true, want false", id)
		}
	}
}

func TestRegistryConcurrentLoad(t *testing.T) {
	r := NewRegistry[int]()
	const n = 64

	var wg sync.WaitGroup
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = r.Load([]int{i})
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool, n)
	for i, id := range ids {
		if seen[id] {
			t.Fatalf("handle %d issued twice", id)
		}
		seen[id] = true
		got, ok := r.Get(id)
		if !ok || len(got) != 1 || got[0] != i {
			t.Errorf("Get(%d) = %v, %v; want [%d]", id, got, ok, i)
		}
	}
}
