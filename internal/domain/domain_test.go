package domain

import "testing"

func TestNewAllActive(t *testing.T) {
	d := New([]int{1, 2, 3, 4})
	if d.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", d.Size())
	}
	if d.IsEmpty() {
		t.Fatal("IsEmpty() = true, want false")
	}
}

func TestRemoveRestore(t *testing.T) {
	d := New([]int{1, 2, 3})
	if !d.Remove(2) {
		t.Fatal("Remove(2) = false, want true")
	}
	if d.Remove(2) {
		t.Fatal("second Remove(2) = true, want false")
	}
	if d.Contains(2) {
		t.Fatal("Contains(2) = true after removal")
	}
	if d.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", d.Size())
	}
	if !d.Restore(2) {
		t.Fatal("Restore(2) = false, want true")
	}
	if d.Restore(2) {
		t.Fatal("second Restore(2) = true, want false")
	}
	if d.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", d.Size())
	}
}

func TestReduceTo(t *testing.T) {
	d := New([]int{1, 2, 3})
	if err := d.ReduceTo(2); err != nil {
		t.Fatalf("ReduceTo(2) error = %v", err)
	}
	if !d.IsSingleton() || !d.Contains(2) {
		t.Fatalf("ReduceTo(2) did not leave a singleton {2}")
	}
	if err := d.ReduceTo(99); err != ErrNotInUniverse {
		t.Fatalf("ReduceTo(99) error = %v, want ErrNotInUniverse", err)
	}
}

func TestFirstEmpty(t *testing.T) {
	d := New([]int{1, 2})
	d.Remove(1)
	d.Remove(2)
	if _, err := d.First(); err != ErrEmptyDomain {
		t.Fatalf("First() error = %v, want ErrEmptyDomain", err)
	}
}

func TestCheckpointRollback(t *testing.T) {
	d := New([]int{1, 2, 3, 4, 5})
	before := d.Values()
	d.Checkpoint()
	d.Remove(2)
	d.Remove(4)
	if d.Size() != 3 {
		t.Fatalf("Size() after removals = %d, want 3", d.Size())
	}
	if err := d.Rollback(); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}
	after := d.Values()
	if len(before) != len(after) {
		t.Fatalf("Values() after rollback = %v, want %v", after, before)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Values() after rollback = %v, want %v", after, before)
		}
	}
}

func TestRollbackWithoutCheckpoint(t *testing.T) {
	d := New([]int{1, 2})
	if err := d.Rollback(); err != ErrNoCheckpoint {
		t.Fatalf("Rollback() error = %v, want ErrNoCheckpoint", err)
	}
}

func TestCommitDiscards(t *testing.T) {
	d := New([]int{1, 2, 3})
	d.Checkpoint()
	d.Remove(1)
	if err := d.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if err := d.Rollback(); err != ErrNoCheckpoint {
		t.Fatalf("Rollback() after Commit() error = %v, want ErrNoCheckpoint", err)
	}
	if d.Contains(1) {
		t.Fatal("Contains(1) = true after Commit() discarded the removal's checkpoint")
	}
}

func TestCopyIndependence(t *testing.T) {
	d := New([]int{1, 2, 3})
	cp := d.Copy()
	cp.Remove(1)
	if !d.Contains(1) {
		t.Fatal("Remove on copy affected the original domain")
	}
	if cp.Contains(1) {
		t.Fatal("Remove on copy did not take effect")
	}
}

func TestIterateInPlaceRemoval(t *testing.T) {
	d := New([]int{1, 2, 3, 4, 5})
	var seen []int
	d.Iterate(func(v int) bool {
		seen = append(seen, v)
		if v%2 == 0 {
			d.Remove(v)
		}
		return true
	})
	if len(seen) != 5 {
		t.Fatalf("Iterate visited %d values, want 5", len(seen))
	}
	if d.Size() != 3 {
		t.Fatalf("Size() after in-place removal = %d, want 3", d.Size())
	}
}
