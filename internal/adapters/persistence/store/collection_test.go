package store

import (
	"sync"
	"testing"
)

type note struct {
	ID   int
	Text string
}

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	c := NewCollection[note]()

	prev := 0
	for i := 0; i < 5; i++ {
		n := c.Insert(func(id int) note { return note{ID: id, Text: "n"} })
		if n.ID <= prev {
			t.Fatalf("expected ID > %d, got %d", prev, n.ID)
		}
		prev = n.ID
	}
	if prev != 5 {
		t.Fatalf("expected last ID 5, got %d", prev)
	}
}

func TestGetAfterInsert(t *testing.T) {
	c := NewCollection[note]()

	created := c.Insert(func(id int) note { return note{ID: id, Text: "hello"} })

	got, ok := c.Get(created.ID)
	if !ok {
		t.Fatalf("expected record %d to exist", created.ID)
	}
	if got != created {
		t.Fatalf("expected %+v, got %+v", created, got)
	}
}

func TestGetAbsent(t *testing.T) {
	c := NewCollection[note]()

	if _, ok := c.Get(99); ok {
		t.Fatal("expected absent record")
	}
}

func TestDeleteSemantics(t *testing.T) {
	c := NewCollection[note]()
	n := c.Insert(func(id int) note { return note{ID: id} })

	if !c.Delete(n.ID) {
		t.Fatal("first delete should return true")
	}
	if _, ok := c.Get(n.ID); ok {
		t.Fatal("record should be gone after delete")
	}
	if c.Delete(n.ID) {
		t.Fatal("second delete should return false")
	}
}

func TestIDsNeverReusedAfterDelete(t *testing.T) {
	c := NewCollection[note]()

	first := c.Insert(func(id int) note { return note{ID: id} })
	c.Delete(first.ID)

	second := c.Insert(func(id int) note { return note{ID: id} })
	if second.ID <= first.ID {
		t.Fatalf("ID %d reused after delete of %d", second.ID, first.ID)
	}
}

func TestUpdateMergesOverExisting(t *testing.T) {
	c := NewCollection[note]()
	n := c.Insert(func(id int) note { return note{ID: id, Text: "old"} })

	updated, ok := c.Update(n.ID, func(existing note) note {
		existing.Text = "new"
		return existing
	})
	if !ok {
		t.Fatal("update of existing record should succeed")
	}
	if updated.Text != "new" || updated.ID != n.ID {
		t.Fatalf("unexpected updated record %+v", updated)
	}

	got, _ := c.Get(n.ID)
	if got != updated {
		t.Fatalf("stored record %+v does not match returned %+v", got, updated)
	}
}

func TestUpdateAbsentDoesNotCreate(t *testing.T) {
	c := NewCollection[note]()

	if _, ok := c.Update(7, func(n note) note { return n }); ok {
		t.Fatal("update of absent record should report false")
	}
	if c.Len() != 0 {
		t.Fatal("update must never create records")
	}
}

func TestListInsertionOrder(t *testing.T) {
	c := NewCollection[note]()
	texts := []string{"a", "b", "c", "d"}
	for _, s := range texts {
		s := s
		c.Insert(func(id int) note { return note{ID: id, Text: s} })
	}

	got := c.List()
	if len(got) != len(texts) {
		t.Fatalf("expected %d records, got %d", len(texts), len(got))
	}
	for i, n := range got {
		if n.Text != texts[i] {
			t.Fatalf("position %d: expected %q, got %q", i, texts[i], n.Text)
		}
	}
}

func TestConcurrentInsertsAllocateDistinctIDs(t *testing.T) {
	c := NewCollection[note]()

	const workers = 20
	const perWorker = 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				c.Insert(func(id int) note { return note{ID: id} })
			}
		}()
	}
	wg.Wait()

	if c.Len() != workers*perWorker {
		t.Fatalf("expected %d records, got %d", workers*perWorker, c.Len())
	}
	seen := make(map[int]bool)
	for _, n := range c.List() {
		if seen[n.ID] {
			t.Fatalf("duplicate ID %d", n.ID)
		}
		seen[n.ID] = true
	}
}
