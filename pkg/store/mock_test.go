package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"farmdash/entities"
	"farmdash/pkg/apperr"
)

func newTaskStore(t *testing.T, seed ...entities.Task) *Mock[entities.Task, *entities.Task] {
	t.Helper()
	return NewMock[entities.Task]("task", seed, 0)
}

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	s := newTaskStore(t, entities.Task{ID: 2, Title: "a"}, entities.Task{ID: 7, Title: "b"})

	first, err := s.Create(ctx, entities.Task{Title: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 8 {
		t.Fatalf("first id = %d, want 8", first.ID)
	}
	second, err := s.Create(ctx, entities.Task{ID: 99, Title: "d"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != 9 {
		t.Fatalf("second id = %d, want 9", second.ID)
	}
}

func TestCreateOnEmptyStoreStartsAtOne(t *testing.T) {
	s := newTaskStore(t)
	got, err := s.Create(context.Background(), entities.Task{Title: "first"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("id = %d, want 1", got.ID)
	}
}

func TestUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	s := newTaskStore(t, entities.Task{ID: 1, Title: "Water", Category: "watering", Priority: entities.PriorityHigh})

	done := true
	got, err := s.Update(ctx, 1, entities.TaskPatch{Completed: &done}.Apply)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.Completed || got.Title != "Water" || got.Category != "watering" || got.Priority != entities.PriorityHigh {
		t.Fatalf("update lost fields: %+v", got)
	}

	stored, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.Completed {
		t.Fatalf("stored task not completed")
	}
}

func TestUpdateKeepsID(t *testing.T) {
	s := newTaskStore(t, entities.Task{ID: 4})
	got, err := s.Update(context.Background(), 4, func(tk *entities.Task) { tk.ID = 40 })
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("id = %d, want 4", got.ID)
	}
}

func TestDeleteReturnsRemoved(t *testing.T) {
	ctx := context.Background()
	s := newTaskStore(t, entities.Task{ID: 1, Title: "a"}, entities.Task{ID: 2, Title: "b"}, entities.Task{ID: 3, Title: "c"})

	removed, err := s.Delete(ctx, 2)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != 2 || removed.Title != "b" {
		t.Fatalf("removed = %+v", removed)
	}
	all, _ := s.All(ctx)
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 3 {
		t.Fatalf("remaining = %+v", all)
	}
	if _, err := s.Delete(ctx, 2); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("second delete err = %v, want not found", err)
	}
}

func TestFilterByForeignKey(t *testing.T) {
	s := newTaskStore(t,
		entities.Task{ID: 1, FieldID: 1},
		entities.Task{ID: 2, FieldID: 2},
		entities.Task{ID: 3, FieldID: 1},
	)
	got, err := s.Filter(context.Background(), func(tk *entities.Task) bool { return tk.FieldID == 1 })
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("filter = %+v", got)
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := newTaskStore(t, entities.Task{ID: 1, Title: "orig"})
	got, _ := s.Get(ctx, 1)
	got.Title = "changed"
	again, _ := s.Get(ctx, 1)
	if again.Title != "orig" {
		t.Fatalf("store mutated through returned pointer: %q", again.Title)
	}
}

func TestDelayHonoursContext(t *testing.T) {
	s := NewMock[entities.Task]("task", nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.All(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestLoadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"tasks.json": {Data: []byte(`[{"id":1,"title":"Water","completed":false,"field_id":2}]`)},
	}
	got, err := LoadJSON[entities.Task](fsys, "tasks.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].FieldID != 2 {
		t.Fatalf("load = %+v", got)
	}
	if _, err := LoadJSON[entities.Task](fsys, "missing.json"); err == nil {
		t.Fatalf("expected error for missing seed")
	}
}

func TestConcurrentCreateKeepsIDsUnique(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTaskStore(t, entities.Task{ID: 3, Title: "seed"})

	const workers, each = 8, 25
	ids := make(chan int, workers*each)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				got, err := s.Create(ctx, entities.Task{Title: "t"})
				if err != nil {
					t.Errorf("create: %v", err)
					return
				}
				ids <- got.ID
				if _, err := s.All(ctx); err != nil {
					t.Errorf("all: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*each {
		t.Fatalf("created %d, want %d", len(seen), workers*each)
	}
	for id := 4; id < 4+workers*each; id++ {
		if !seen[id] {
			t.Fatalf("id %d missing; ids should run 4..%d", id, 3+workers*each)
		}
	}
}
