package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/wordladder/internal/puzzle"
)

func seed(t *testing.T) Store {
	t.Helper()
	st := NewMemory()
	err := st.Put(context.Background(), []*puzzle.Puzzle{
		{ID: "b_002", Start: "cot", Target: "dog", MinSteps: 2, Difficulty: "easy"},
		{ID: "a_001", Start: "cat", Target: "dog", MinSteps: 3, Difficulty: "easy"},
		{ID: "c_003", Start: "cold", Target: "warm", MinSteps: 4, Difficulty: "medium"},
	})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	return st
}

func TestMemoryGet(t *testing.T) {
	st := seed(t)
	p, err := st.Get(context.Background(), "a_001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Start != "cat" || p.Target != "dog" {
		t.Fatalf("got %s -> %s", p.Start, p.Target)
	}

	if _, err := st.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRandom(t *testing.T) {
	st := seed(t)
	ctx := context.Background()

	p, err := st.Random(ctx, "medium")
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if p.ID != "c_003" {
		t.Fatalf("Random(medium) = %s", p.ID)
	}

	if _, err := st.Random(ctx, "hard"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Random(hard): err = %v, want ErrNotFound", err)
	}

	// Unfiltered draws come from the whole set.
	if _, err := st.Random(ctx, ""); err != nil {
		t.Fatalf("Random(any) failed: %v", err)
	}
}

func TestMemoryAllOrdered(t *testing.T) {
	st := seed(t)
	all, err := st.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("All not ordered by id: %s before %s", all[i-1].ID, all[i].ID)
		}
	}
}

func TestMemoryCounts(t *testing.T) {
	st := seed(t)
	counts, err := st.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts["easy"] != 2 || counts["medium"] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	st := seed(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = st.Get(ctx, "a_001")
				_, _ = st.Random(ctx, "")
				_ = st.Put(ctx, []*puzzle.Puzzle{{ID: "a_001", Start: "cat", Target: "dog", MinSteps: 3, Difficulty: "easy"}})
			}
		}()
	}
	wg.Wait()
}
