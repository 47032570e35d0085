package lander

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

//go:embed sprites/lander.txt
var defaultSprite []byte

// ErrEmptySprite is returned for art without a single non-blank line.
var ErrEmptySprite = errors.New("lander: sprite is empty")

// Sprite is the ship art. It starts out Unloaded and is replaced exactly
// once by a Loaded value when loading succeeds.
type Sprite interface {
	isSprite()
}

// SpriteUnloaded means no art is available; the renderer draws a box.
type SpriteUnloaded struct{}

// SpriteLoaded holds parsed ASCII art. Spaces are transparent.
type SpriteLoaded struct {
	Art    []string
	Width  int
	Height int
}

func (SpriteUnloaded) isSprite() {}
func (SpriteLoaded) isSprite()   {}

// ParseSprite parses text art, one row per line.
// Trailing blank lines and carriage returns are dropped.
func ParseSprite(data []byte) (SpriteLoaded, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return SpriteLoaded{}, ErrEmptySprite
	}

	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	return SpriteLoaded{Art: lines, Width: width, Height: len(lines)}, nil
}

// LoadSprite reads sprite art from path, or the built-in art when path is empty.
func LoadSprite(path string) (SpriteLoaded, error) {
	if path == "" {
		return ParseSprite(defaultSprite)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return SpriteLoaded{}, fmt.Errorf("lander: failed to read sprite %s: %w", path, err)
	}
	sprite, err := ParseSprite(data)
	if err != nil {
		return SpriteLoaded{}, fmt.Errorf("lander: invalid sprite %s: %w", path, err)
	}
	return sprite, nil
}
