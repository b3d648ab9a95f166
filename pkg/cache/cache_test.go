package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get() = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Fatal("empty cache reported a hit")
	}
	if err := c.Set(ctx, "svg", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "svg")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get() = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "svg"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Error("deleted entry still hit")
	}
	if err := c.Delete(ctx, "svg"); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry hit")
	}
	if _, err := os.Stat(c.path("old")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}

	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without TTL missed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("bad")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)

	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	n, err := c.Clear()
	if err != nil || n != 3 {
		t.Fatalf("Clear() = %d, %v; want 3", n, err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("%d entries left after Clear", len(entries))
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	lk1 := k.LayoutKey("scene", LayoutKeyOpts{Width: 800, Height: 600})
	lk2 := k.LayoutKey("scene", LayoutKeyOpts{Width: 800, Height: 600, Anchor: "top"})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(lk1, "layout:") {
		t.Errorf("LayoutKey unexpected: %s", lk1)
	}

	ak1 := k.ArtifactKey("layout", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("layout", ArtifactKeyOpts{Format: "png"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if ak1 != k.ArtifactKey("layout", ArtifactKeyOpts{Format: "svg"}) {
		t.Error("ArtifactKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "serve:")
	inner := NewDefaultKeyer()

	opts := ArtifactKeyOpts{Format: "dot"}
	if got, want := scoped.ArtifactKey("h", opts), "serve:"+inner.ArtifactKey("h", opts); got != want {
		t.Errorf("ArtifactKey = %q, want %q", got, want)
	}

	nilInner := NewScopedKeyer(nil, "p:")
	if got := nilInner.LayoutKey("h", LayoutKeyOpts{}); !strings.HasPrefix(got, "p:layout:") {
		t.Errorf("LayoutKey with nil inner = %q", got)
	}
}
