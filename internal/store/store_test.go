package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/agbru/numlist/internal/digitlist"
	"github.com/agbru/numlist/internal/logging"
	"github.com/agbru/numlist/internal/numeric"
)

func newMemStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return New(fs, numeric.Default(), nil), fs
}

func TestLoadDecimalLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		write   bool
		want    string
		wantOK  bool
	}{
		{"single line", "13", true, "13", true},
		{"trailing newline", "13\n", true, "13", true},
		{"crlf", "13\r\n", true, "13", true},
		{"first line only", "42\n17\n", true, "42", true},
		{"non numeric kept", "abc\n", true, "abc", true},
		{"empty file", "", true, "", false},
		{"empty first line", "\n5\n", true, "", false},
		{"missing file", "", false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, fs := newMemStore(t)
			if tt.write {
				if err := afero.WriteFile(fs, "value.txt", []byte(tt.content), 0o644); err != nil {
					t.Fatalf("WriteFile: %v", err)
				}
			}
			got, ok := s.LoadDecimalLine("value.txt")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LoadDecimalLine() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSaveDecimalLine(t *testing.T) {
	t.Parallel()
	s, fs := newMemStore(t)

	s.SaveDecimalLine("out/nested/value.txt", "12345")
	got, err := afero.ReadFile(fs, "out/nested/value.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "12345" {
		t.Errorf("content = %q, want %q", got, "12345")
	}

	s.SaveDecimalLine("out/nested/value.txt", "7")
	got, _ = afero.ReadFile(fs, "out/nested/value.txt")
	if string(got) != "7" {
		t.Errorf("content after overwrite = %q, want %q", got, "7")
	}
}

func TestSaveDecimalLineSwallowsErrors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := New(fs, numeric.Default(), logging.NewLogger(&buf, "store"))

	s.SaveDecimalLine("dir/value.txt", "13")

	if _, err := fs.Stat("dir/value.txt"); err == nil {
		t.Error("file should not exist on a read-only filesystem")
	}
	if !strings.Contains(buf.String(), "save failed") {
		t.Errorf("expected a debug entry for the failed save, got: %s", buf.String())
	}
}

func TestListRoundTrip(t *testing.T) {
	t.Parallel()
	s, _ := newMemStore(t)

	s.SaveList("n.txt", digitlist.NewWithDigits(3, 1, 1, 1))
	l, ok := s.LoadList("n.txt")
	if !ok {
		t.Fatal("LoadList reported absent after SaveList")
	}
	if diff := cmp.Diff([]uint8{1, 1, 1}, l.Digits()); diff != "" {
		t.Errorf("LoadList mismatch (-want +got):\n%s", diff)
	}

	s.SaveList("empty.txt", digitlist.New(3))
	if line, _ := s.LoadDecimalLine("empty.txt"); line != "0" {
		t.Errorf("empty list saved as %q, want %q", line, "0")
	}
}

func TestLoadListAbsentAndInvalid(t *testing.T) {
	t.Parallel()
	s, fs := newMemStore(t)

	l, ok := s.LoadList("missing.txt")
	if ok || !l.IsEmpty() || l.Base() != 3 {
		t.Errorf("LoadList(missing) = %v, %v base %d", l.Digits(), ok, l.Base())
	}

	_ = afero.WriteFile(fs, "bad.txt", []byte("-4\n"), 0o644)
	l, ok = s.LoadList("bad.txt")
	if !ok || !l.IsEmpty() {
		t.Errorf("LoadList(bad) = %v, %v; want empty, true", l.Digits(), ok)
	}
}
