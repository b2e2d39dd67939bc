package scope

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/source"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("class A {};\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFilter_Contains(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "project")
	inside := filepath.Join(root, "src", "car.h")
	sibling := filepath.Join(base, "project-extra", "bike.h")
	outside := filepath.Join(base, "vendor", "base.h")
	writeFile(t, inside)
	writeFile(t, sibling)
	writeFile(t, outside)

	f, err := New(root)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		name string
		loc  source.Location
		want bool
	}{
		{"file under root", source.Location{File: inside, Line: 1}, true},
		{"relative spelling", source.Location{File: filepath.Join(root, "src", "..", "src", "car.h")}, true},
		{"sibling sharing prefix", source.Location{File: sibling}, false},
		{"outside root", source.Location{File: outside}, false},
		{"missing file", source.Location{File: filepath.Join(root, "gone.h")}, false},
		{"invalid location", source.Location{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Contains(tt.loc); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.loc, got, tt.want)
			}
		})
	}
}

func TestFilter_SymlinkIntoRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "project")
	target := filepath.Join(root, "shape.h")
	writeFile(t, target)

	link := filepath.Join(base, "link.h")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	f, err := New(root)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Contains(source.Location{File: link}) {
		t.Error("Contains() should follow symlinks into the root")
	}
}

func TestFilter_FileRemovedAfterFirstLookup(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "tmp.h")
	writeFile(t, file)

	f, err := New(root)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Contains(source.Location{File: file}) {
		t.Fatal("Contains() = false for existing file")
	}
	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}
	// Memoised: the answer is stable within one run.
	if !f.Contains(source.Location{File: file}) {
		t.Error("Contains() changed answer within one filter")
	}

	fresh, _ := New(root)
	if fresh.Contains(source.Location{File: file}) {
		t.Error("Contains() = true for a file that no longer exists")
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("New(\"\") error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
	missing := filepath.Join(t.TempDir(), "nope")
	if _, err := New(missing); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("New(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestUnder(t *testing.T) {
	tests := []struct {
		root, path string
		want       bool
	}{
		{"/src", "/src", true},
		{"/src", "/src/a.h", true},
		{"/src", "/srcs/a.h", false},
		{"/", "/anything", true},
		{"/src/app", "/src", false},
	}
	for _, tt := range tests {
		if got := Under(tt.root, tt.path); got != tt.want {
			t.Errorf("Under(%q, %q) = %v, want %v", tt.root, tt.path, got, tt.want)
		}
	}
}
