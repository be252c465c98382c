package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// excluded holds dependency and build output folders
var excluded = map[string]bool{
	"Pods":        true,
	"Carthage":    true,
	"build":       true,
	".build":      true,
	"DerivedData": true,
	".git":        true,
	".swiftpm":    true,
}

// sourceExtensions holds parseable source extensions
var sourceExtensions = map[string]bool{
	".h":     true,
	".m":     true,
	".swift": true,
}

// IsSource returns true for parseable source files, dependency and build folders are skipped
func IsSource(info os.FileInfo) bool {
	if info.IsDir() {
		return !excluded[info.Name()]
	}
	return sourceExtensions[strings.ToLower(filepath.Ext(info.Name()))]
}

// SourceFiles walks root and returns source file paths in walk order
func (d *Detector) SourceFiles(ctx context.Context, root string) ([]string, error) {
	var files []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return IsSource(info), nil
		}
		if !IsSource(info) {
			return true, nil
		}
		files = append(files, url.Path(url.Join(baseURL, path.Join(parent, info.Name()))))
		return true, nil
	}
	if err := d.fs.Walk(ctx, root, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}
