package cache

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGetLoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	writeFile(t, path, "one")

	var calls atomic.Int32
	c := NewFile(path, func(p string) (string, error) {
		calls.Add(1)
		b, err := os.ReadFile(p)
		return string(b), err
	})

	for i := 0; i < 5; i++ {
		if got := c.Get(); got != "one" {
			t.Fatalf("Get = %q, want one", got)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("loader ran %d times, want 1", n)
	}
}

func TestGetReloadsOnMtimeChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	writeFile(t, path, "one")

	c := NewFile(path, func(p string) (string, error) {
		b, err := os.ReadFile(p)
		return string(b), err
	})
	if got := c.Get(); got != "one" {
		t.Fatalf("Get = %q, want one", got)
	}

	writeFile(t, path, "two")
	// Force a distinct mtime even on coarse-resolution filesystems.
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	if got := c.Get(); got != "two" {
		t.Errorf("Get after rewrite = %q, want two", got)
	}
}

func TestGetMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")

	c := NewFile(path, func(p string) (string, error) {
		b, err := os.ReadFile(p)
		return string(b), err
	})

	if got := c.Get(); got != "" {
		t.Fatalf("Get on missing file = %q, want empty", got)
	}
	if loaded, _ := c.Info(); loaded {
		t.Error("missing file must not mark the cache loaded")
	}

	// A later successful load must not be poisoned by the earlier miss.
	writeFile(t, path, "back")
	if got := c.Get(); got != "back" {
		t.Errorf("Get after file appears = %q, want back", got)
	}
}

func TestGetLoadErrorNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	writeFile(t, path, "x")

	fail := true
	c := NewFile(path, func(p string) (string, error) {
		if fail {
			return "", errors.New("boom")
		}
		return "ok", nil
	})

	if got := c.Get(); got != "" {
		t.Fatalf("Get with failing loader = %q, want empty", got)
	}
	fail = false
	if got := c.Get(); got != "ok" {
		t.Errorf("Get after loader recovers = %q, want ok", got)
	}
}

func TestConcurrentReaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	writeFile(t, path, "snapshot")

	c := NewFile(path, func(p string) ([]string, error) {
		b, err := os.ReadFile(p)
		return []string{string(b)}, err
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got := c.Get()
				if len(got) != 1 || got[0] != "snapshot" {
					t.Errorf("inconsistent snapshot: %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
