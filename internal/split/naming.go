package split

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputPath builds the path of the index-th output file (1-based) for
// source: {targetDir}/{stem}_{index}{ext}. An empty targetDir keeps the
// source file's directory.
func OutputPath(source, targetDir string, index int) string {
	dir, file := filepath.Split(source)
	ext := filepath.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	if targetDir != "" {
		dir = targetDir
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, index, ext))
}
