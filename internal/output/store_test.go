package output

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestStoreWriteManifest(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := st.Write("rulers/b.svg", []byte("<svg/>\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := st.Write("rulers/a.svg", []byte("abc")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "rulers", "b.svg"))
	if err != nil || string(data) != "<svg/>\n" {
		t.Fatalf("file not written: %q, %v", data, err)
	}

	m, err := st.WriteManifest()
	if err != nil {
		t.Fatalf("manifest failed: %v", err)
	}
	if len(m.Files) != 2 || m.Files[0].Path != "rulers/a.svg" {
		t.Fatalf("expected sorted entries, got %+v", m.Files)
	}
	if m.Files[0].Bytes != 3 {
		t.Errorf("expected 3 bytes, got %d", m.Files[0].Bytes)
	}
	if m.Files[0].SHA256 != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("unexpected digest %s", m.Files[0].SHA256)
	}

	loaded, err := st.ReadManifest()
	if err != nil {
		t.Fatalf("read manifest failed: %v", err)
	}
	if len(loaded.Files) != 2 || loaded.Files[1] != m.Files[1] {
		t.Errorf("manifest round trip mismatch: %+v", loaded.Files)
	}
}

func TestStoreRewriteKeepsOneEntry(t *testing.T) {
	st := New(t.TempDir())
	st.Write("x.svg", []byte("1"))
	st.Write("./x.svg", []byte("22"))

	entries := st.Entries()
	if len(entries) != 1 || entries[0].Bytes != 2 {
		t.Errorf("expected one updated entry, got %+v", entries)
	}
}

func TestStoreRejectsEscape(t *testing.T) {
	st := New(t.TempDir())
	for _, rel := range []string{"../x.svg", "/etc/x.svg", "a/../../x.svg", ""} {
		if err := st.Write(rel, nil); err == nil {
			t.Errorf("%q: expected error", rel)
		}
	}
}

func TestStoreConcurrentWrites(t *testing.T) {
	st := New(t.TempDir())
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := filepath.ToSlash(filepath.Join("d", string(rune('a'+i%26)), "f.svg"))
			if err := st.Write(name, []byte{byte(i)}); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
	if n := len(st.Entries()); n != 26 {
		t.Errorf("expected 26 entries, got %d", n)
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	st.Write("a.svg", []byte("a"))
	st.Write("b.svg", []byte("b"))
	st.Write("c.svg", []byte("c"))
	m, err := st.WriteManifest()
	if err != nil {
		t.Fatal(err)
	}

	os.WriteFile(filepath.Join(dir, "a.svg"), []byte("changed"), 0644)
	os.Remove(filepath.Join(dir, "c.svg"))

	stale, err := st.Verify(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(stale) != 2 || stale[0] != "a.svg" || stale[1] != "c.svg" {
		t.Errorf("unexpected stale list %v", stale)
	}
}

func TestReadManifestMissing(t *testing.T) {
	if _, err := New(t.TempDir()).ReadManifest(); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
