package languages

import (
	"testing"

	"github.com/matzehuels/classtower/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"cpp", "cpp", false},
		{"c++", "cpp", false},
		{"CXX", "cpp", false},
		{"go", "go", false},
		{" golang ", "go", false},
		{"python", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := Lookup(tt.name)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidLanguage) {
					t.Fatalf("Lookup(%q) error = %v, want %s", tt.name, err, errors.ErrCodeInvalidLanguage)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.name, err)
			}
			if lang.Name != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.name, lang.Name, tt.want)
			}
			if got := lang.Provider(nil).Name(); got != tt.want {
				t.Errorf("Provider().Name() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() = %v, want %d entries", names, len(All))
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate language %q", n)
		}
		seen[n] = true
	}
}
