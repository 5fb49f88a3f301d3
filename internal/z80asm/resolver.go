// OSFileResolver resolves INCLUDE directives against the real filesystem,
// checked relative to the including file's directory first and then each
// configured include path in order.

package z80asm

import (
	"os"
	"path/filepath"
)

// OSFileResolver is the production FileResolver backed by os.ReadFile.
type OSFileResolver struct{}

func (OSFileResolver) Resolve(filename, currentDir string, includePaths []string) (string, []byte, bool) {
	candidates := make([]string, 0, len(includePaths)+1)
	if currentDir != "" {
		candidates = append(candidates, filepath.Join(currentDir, filename))
	} else {
		candidates = append(candidates, filename)
	}
	for _, dir := range includePaths {
		candidates = append(candidates, filepath.Join(dir, filename))
	}

	for _, path := range candidates {
		contents, err := os.ReadFile(path)
		if err == nil {
			return path, contents, true
		}
	}
	return "", nil, false
}
