package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// prependRecord inserts block into the progress document immediately after
// its first line (the title), preserving all prior content verbatim. The
// whole document is read, rebuilt in memory, and written back in one atomic
// replace so a reader never observes a duplicated or truncated title.
func prependRecord(path, block string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoProgressLog, path)
		}
		return fmt.Errorf("read progress log: %w", err)
	}

	content := string(data)
	title := content
	rest := ""
	if idx := strings.Index(content, "\n"); idx >= 0 {
		title = content[:idx]
		rest = content[idx+1:]
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(block)
	b.WriteString("\n")
	b.WriteString(rest)

	if err := atomicWriteFile(path, []byte(b.String())); err != nil {
		return fmt.Errorf("write progress log: %w", err)
	}
	return nil
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath) //nolint:errcheck // cleanup in error path
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close() //nolint:errcheck // cleanup in error path
		return fmt.Errorf("write content: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close() //nolint:errcheck // cleanup in error path
		return fmt.Errorf("sync file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename to final: %w", err)
	}

	success = true
	return nil
}
