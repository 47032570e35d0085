package lander

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseSprite(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantWidth  int
		wantHeight int
		wantErr    error
	}{
		{"single line", "<o>", 3, 1, nil},
		{"ragged rows", " A\n/_\\_\n", 4, 2, nil},
		{"crlf and trailing blanks", "ab\r\ncd\r\n\r\n  \n", 2, 2, nil},
		{"multibyte", "╱█╲\n", 3, 1, nil},
		{"empty", "", 0, 0, ErrEmptySprite},
		{"blank lines only", "\n  \n\n", 0, 0, ErrEmptySprite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseSprite([]byte(tc.data))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, expected %v", err, tc.wantErr)
			}
			if s.Width != tc.wantWidth || s.Height != tc.wantHeight {
				t.Errorf("size = %dx%d, expected %dx%d", s.Width, s.Height, tc.wantWidth, tc.wantHeight)
			}
		})
	}
}

func TestLoadSpriteBuiltin(t *testing.T) {
	s, err := LoadSprite("")
	if err != nil {
		t.Fatalf("LoadSprite(\"\") failed: %v", err)
	}
	if s.Width != 5 || s.Height != 3 {
		t.Errorf("built-in sprite is %dx%d, expected 5x3", s.Width, s.Height)
	}
}

func TestLoadSpriteFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ship.txt")
	if err := os.WriteFile(path, []byte("/\\\n||\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSprite(path)
	if err != nil {
		t.Fatalf("LoadSprite() failed: %v", err)
	}
	if s.Height != 2 || s.Art[1] != "||" {
		t.Errorf("unexpected sprite %+v", s)
	}

	if _, err := LoadSprite(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing sprite file")
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSprite(empty); !errors.Is(err, ErrEmptySprite) {
		t.Errorf("error = %v, expected ErrEmptySprite", err)
	}
}
