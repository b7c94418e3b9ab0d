package keylock

import (
	"sync"
	"testing"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	t.Parallel()

	kl := New()
	const workers = 50

	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			kl.Lock("doc-1")
			defer kl.Unlock("doc-1")
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("counter = %d, want %d", counter, workers)
	}
	if kl.Len() != 0 {
		t.Errorf("expected no live locks after release, got %d", kl.Len())
	}
}

func TestKeyLock_IndependentKeys(t *testing.T) {
	t.Parallel()

	kl := New()
	kl.Lock("a")
	defer kl.Unlock("a")

	done := make(chan struct{})
	go func() {
		kl.Lock("b")
		kl.Unlock("b")
		close(done)
	}()

	// Must complete even though "a" stays held.
	<-done
}

func TestKeyLock_EntryRemovedAfterUnlock(t *testing.T) {
	t.Parallel()

	kl := New()
	kl.Lock("x")
	if kl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", kl.Len())
	}
	kl.Unlock("x")
	if kl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", kl.Len())
	}
}

func TestKeyLock_UnlockUnknownPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unlock of unlocked key")
		}
	}()
	New().Unlock("nope")
}
