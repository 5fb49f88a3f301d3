// INCLUDE-directive preprocessor.
//
// File access is routed through an injected FileResolver collaborator
// rather than reading straight off disk, so tests can supply an in-memory
// filesystem. Cycle detection, a nesting-depth cap, and pseudo-symlink
// stub following are layered on top to handle include chains that a
// straightforward recursive inliner would otherwise mishandle.

package z80asm

import (
	"fmt"
	"regexp"
	"strings"
)

const maxIncludeDepth = 64
const symlinkStubMaxSize = 512

// FileResolver is the preprocessor's file-system collaborator. Given a
// filename, the current directory of the including file, and the
// configured search path, it returns the resolved absolute path and file
// contents, or ok == false if no match was found.
type FileResolver interface {
	Resolve(filename, currentDir string, includePaths []string) (resolvedPath string, contents []byte, ok bool)
}

var includeDirectiveRe = regexp.MustCompile(`(?i)^[ \t]*INCLUDE[ \t]+(?:"([^"]*)"|'([^']*)')[ \t]*(;.*)?$`)

type preprocessor struct {
	resolver     FileResolver
	includePaths []string
	active       map[string]bool // canonical paths on the current include stack
	diags        []string
}

// Preprocess recursively inlines INCLUDE directives in source, which was
// itself loaded from originPath. It returns the expanded text (with
// included content spliced in place of each INCLUDE line) and a list of
// preprocessor error messages; callers should surface those as fatal
// Diagnostics.
func Preprocess(source, originPath string, includePaths []string, resolver FileResolver) (string, []string) {
	p := &preprocessor{
		resolver:     resolver,
		includePaths: includePaths,
		active:       map[string]bool{},
	}
	expanded := p.expand(source, originPath, 0)
	return expanded, p.diags
}

func (p *preprocessor) expand(source, originPath string, depth int) string {
	if depth > maxIncludeDepth {
		p.diags = append(p.diags, fmt.Sprintf(
			"include nesting exceeds %d levels, aborting at %s", maxIncludeDepth, originPath,
		))
		return "; <include nesting limit exceeded>\n"
	}

	canon := canonicalPath(originPath)
	if p.active[canon] {
		p.diags = append(p.diags, fmt.Sprintf("circular INCLUDE of %s", originPath))
		return "; <circular include>\n"
	}
	p.active[canon] = true
	defer delete(p.active, canon)

	currentDir := dirOf(originPath)

	var out strings.Builder
	lines := splitKeepingLineCount(source)
	for _, line := range lines {
		m := includeDirectiveRe.FindStringSubmatch(line)
		if m == nil {
			out.WriteString(line)
			out.WriteString("\n")
			continue
		}
		filename := m[1]
		if filename == "" {
			filename = m[2]
		}
		resolvedPath, contents, ok := p.resolver.Resolve(filename, currentDir, p.includePaths)
		if !ok {
			p.diags = append(p.diags, fmt.Sprintf("include file not found: %s", filename))
			out.WriteString("; <include not found: " + filename + ">\n")
			continue
		}

		text, followedPath := p.followPseudoSymlink(resolvedPath, contents)
		out.WriteString(p.expand(text, followedPath, depth+1))
	}
	return out.String()
}

// followPseudoSymlink handles the "tiny text file whose content is a
// single line resembling a path" convention used by checkouts that
// substitute symlinks with redirect stubs on filesystems without native
// symlink support. Nested includes inside the target still resolve
// relative to resolvedPath (the stub's own location), not the redirect
// target, so that stubs behave like the file they represent.
func (p *preprocessor) followPseudoSymlink(resolvedPath string, contents []byte) (text string, originPath string) {
	if len(contents) < symlinkStubMaxSize {
		trimmed := strings.TrimSpace(string(contents))
		if looksLikeBarePath(trimmed) {
			targetPath, targetContents, ok := p.resolver.Resolve(trimmed, dirOf(resolvedPath), p.includePaths)
			if ok {
				_ = targetPath
				return string(targetContents), resolvedPath
			}
		}
	}
	return string(contents), resolvedPath
}

func looksLikeBarePath(s string) bool {
	if s == "" || strings.Contains(s, "\n") || strings.ContainsAny(s, " \t") {
		return false
	}
	return strings.ContainsAny(s, "/\\.") && !strings.HasPrefix(s, ";")
}

func dirOf(path string) string {
	i := strings.LastIndexAny(path, "/\\")
	if i < 0 {
		return "."
	}
	return path[:i]
}

func canonicalPath(path string) string {
	// Normalise separators so the same file referenced via "./a/b.asm"
	// and "a/b.asm" is recognised as the same include-stack entry.
	p := strings.ReplaceAll(path, "\\", "/")
	for strings.Contains(p, "/./") {
		p = strings.ReplaceAll(p, "/./", "/")
	}
	return strings.TrimPrefix(p, "./")
}

func splitKeepingLineCount(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
