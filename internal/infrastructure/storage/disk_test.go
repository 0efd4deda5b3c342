package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ts := time.UnixMilli(1700000000123)
	store.now = func() time.Time { return ts }

	name, err := store.Save("photo.png", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "1700000000123.png" {
		t.Fatalf("unexpected name: %s", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected content: %s", data)
	}
}

func TestDiskStore_Save_KeepsOnlyExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ts := time.UnixMilli(42)
	store.now = func() time.Time { return ts }

	// The client-supplied basename never reaches the filesystem.
	name, err := store.Save("../../etc/passwd.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "42.jpg" {
		t.Fatalf("unexpected name: %s", name)
	}
}

func TestDiskStore_Save_NoExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ts := time.UnixMilli(99)
	store.now = func() time.Time { return ts }

	name, err := store.Save("README", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "99" {
		t.Fatalf("unexpected name: %s", name)
	}
}

func TestDiskStore_Save_SameMillisecondOverwrites(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ts := time.UnixMilli(1000)
	store.now = func() time.Time { return ts }

	if _, err := store.Save("a.png", strings.NewReader("first")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	name, err := store.Save("b.png", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected later write to win, got %s", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single file, got %d", len(entries))
	}
}

func TestDiskStore_SequentialNamesDiffer(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ms := int64(1)
	store.now = func() time.Time {
		ms++
		return time.UnixMilli(ms)
	}

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		name, err := store.Save("f"+strconv.Itoa(i)+".png", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if seen[name] {
			t.Fatalf("duplicate name: %s", name)
		}
		seen[name] = true
	}
}
