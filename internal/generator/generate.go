package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdlcforge/makefwd/internal/model"
)

const (
	blockBegin = "# BEGIN makefwd"
	blockEnd   = "# END makefwd"

	// generatedByMarker is the first line of a standalone forwarding file,
	// recognized the same way the teacher's isGeneratedByMakeHelp
	// recognizes its own prior output.
	generatedByMarker = "# generated-by: makefwd"
)

// Render renders fm's directories into forwarding rules relative to root:
// one .PHONY declaration and one recipe-forwarding rule per target,
// skipping any target name that collides across directories (those are
// reported separately; see internal/lint).
func Render(fm *model.ForwardingModel, root string) (string, error) {
	collided := make(map[string]bool, len(fm.Collisions))
	for _, c := range fm.Collisions {
		collided[c.Name] = true
	}

	var names []string
	var rules strings.Builder

	for _, dir := range fm.Directories {
		relDir, err := filepath.Rel(root, dir.Makefile.ExecPath)
		if err != nil {
			return "", fmt.Errorf("failed to compute relative path for %s: %w", dir.Makefile.ExecPath, err)
		}

		for _, tgt := range dir.Targets {
			if collided[tgt.Path] {
				continue
			}
			names = append(names, tgt.Path)
			fmt.Fprintf(&rules, "%s:\n\t$(MAKE) -C %s %s\n", tgt.Path, relDir, tgt.Path)
		}
	}

	var sb strings.Builder
	if len(names) > 0 {
		fmt.Fprintf(&sb, ".PHONY: %s\n\n", strings.Join(names, " "))
	}
	sb.WriteString(rules.String())
	return sb.String(), nil
}

// WriteStandalone renders fm and writes it as a self-contained file at
// path, atomically, with a generated-by marker as the first line so a
// later run can recognize and safely overwrite its own prior output.
func WriteStandalone(fm *model.ForwardingModel, root, path string) error {
	body, err := Render(fm, root)
	if err != nil {
		return err
	}
	content := generatedByMarker + "\n\n" + body
	return atomicWriteFile(path, []byte(content), 0o644)
}

// IsGenerated reports whether the file at path starts with makefwd's
// generated-by marker.
func IsGenerated(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	lines := strings.SplitN(string(content), "\n", 2)
	return strings.TrimSpace(lines[0]) == generatedByMarker
}

// Splice inserts or replaces fm's rendered rules as a marked block inside
// the Makefile at path, leaving the rest of the file untouched. If the
// block already exists it is replaced in place; otherwise it is appended.
// Calling Splice again with an updated fm is idempotent: the block always
// reflects the latest render.
func Splice(fm *model.ForwardingModel, root, path string) error {
	body, err := Render(fm, root)
	if err != nil {
		return err
	}

	block := blockBegin + "\n" + body + blockEnd + "\n"

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return atomicWriteFile(path, []byte(block), 0o644)
		}
		return err
	}

	text := string(existing)
	start := strings.Index(text, blockBegin)
	if start == -1 {
		if len(text) > 0 && !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		return atomicWriteFile(path, []byte(text+block), 0o644)
	}

	end := strings.Index(text[start:], blockEnd)
	if end == -1 {
		return fmt.Errorf("malformed makefwd block in %s: missing %q", path, blockEnd)
	}
	end = start + end + len(blockEnd)
	// Consume a single trailing newline after the end marker, if present,
	// so repeated splices don't accumulate blank lines.
	if end < len(text) && text[end] == '\n' {
		end++
	}

	newText := text[:start] + block + text[end:]
	return atomicWriteFile(path, []byte(newText), 0o644)
}

// Remove deletes the marked makefwd block from the Makefile at path, if
// present. It is a no-op if the block is absent.
func Remove(path string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	text := string(existing)
	start := strings.Index(text, blockBegin)
	if start == -1 {
		return nil
	}
	end := strings.Index(text[start:], blockEnd)
	if end == -1 {
		return fmt.Errorf("malformed makefwd block in %s: missing %q", path, blockEnd)
	}
	end = start + end + len(blockEnd)
	if end < len(text) && text[end] == '\n' {
		end++
	}

	return atomicWriteFile(path, []byte(text[:start]+text[end:]), 0o644)
}
