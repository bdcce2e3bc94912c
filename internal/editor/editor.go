package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Session is one external edit of a note's content through a temp file.
type Session struct {
	NoteID   int64
	Path     string
	Original string
}

// Prepare writes content to a fresh temp file named after the note ID.
func Prepare(id int64, content string) (*Session, error) {
	suffix, err := gonanoid.Generate(suffixAlphabet, 10)
	if err != nil {
		return nil, fmt.Errorf("generating temp file name: %w", err)
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("notectl_%d_%s.md", id, suffix))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	return &Session{NoteID: id, Path: path, Original: content}, nil
}

// Command builds the editor process with the temp file as last argument.
// Standard streams are left unset so the caller can attach them.
func (s *Session) Command(editorCmd string) (*exec.Cmd, error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty editor command")
	}
	args := append(parts[1:], s.Path)
	return exec.Command(parts[0], args...), nil
}

// Result reads back the edited content once the editor has exited with
// runErr. A non-nil runErr means the edit failed and the file is not read.
func (s *Session) Result(runErr error) (string, error) {
	if runErr != nil {
		return "", fmt.Errorf("editor exited with error: %w", runErr)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return string(data), nil
}

// Cleanup removes the temp file. It is safe to call more than once.
func (s *Session) Cleanup() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing temp file: %w", err)
	}
	return nil
}

// Edit opens content in the editor attached to the current terminal and
// returns the edited content. changed is false when the result only differs
// from the original in surrounding whitespace.
func Edit(editorCmd string, id int64, initialContent string) (content string, changed bool, err error) {
	s, err := Prepare(id, initialContent)
	if err != nil {
		return "", false, err
	}
	defer s.Cleanup()

	cmd, err := s.Command(editorCmd)
	if err != nil {
		return "", false, err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	result, err := s.Result(cmd.Run())
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(result) == strings.TrimSpace(initialContent) {
		return initialContent, false, nil
	}
	return result, true, nil
}
