// Package prompts discovers the session inputs: the reference face image and
// the per-prompt text files.
package prompts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Bizzaro10/nano-banana-script/imageio"
)

// promptExtension is the recognized prompt file extension (case-insensitive).
const promptExtension = ".txt"

// ErrNoPrompts signals an empty prompt set, a fatal startup condition.
var ErrNoPrompts = errors.New("prompts: no prompt files found")

// PromptFile is one discovered prompt: its name (filename minus extension)
// and the path its text is read from.
type PromptFile struct {
	Name string
	Path string
}

// ReadText returns the prompt file's trimmed contents. Content is not
// validated; an empty file is a valid, if degenerate, prompt.
func (p PromptFile) ReadText() (string, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", fmt.Errorf("prompts: read %s: %w", p.Path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// LoadReferenceFace reads the reference face image once and sniffs its MIME
// type. A missing file is a fatal startup condition and surfaces as an error
// wrapping os.ErrNotExist.
func LoadReferenceFace(path string) (data []byte, mimeType string, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("prompts: reference face not found at %s: %w", path, err)
	}
	return data, imageio.DetectImageMIME(data), nil
}

// Discover lists the prompt files in dir, in directory-listing order, without
// recursing into subdirectories. Returns ErrNoPrompts if none match.
func Discover(dir string) ([]PromptFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("prompts: list %s: %w", dir, err)
	}

	var files []PromptFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), promptExtension) {
			continue
		}
		files = append(files, PromptFile{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPrompts, dir)
	}
	return files, nil
}
