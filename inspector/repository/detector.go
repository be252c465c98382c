package repository

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/viant/afs"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	fs afs.Service
	// Project root marker files/directories, glob patterns are allowed
	markers []string
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []string{
			"Package.swift", // Swift package manager
			"Podfile",       // CocoaPods
			"Cartfile",      // Carthage
			"*.xcworkspace", // Xcode workspace
			"*.xcodeproj",   // Xcode project
			".git",          // Generic VCS marker
		},
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(filePath string, baseURL ...string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, marker := d.findProjectRoot(startDir)
	info := &Project{
		Type:     "unknown",
		RootPath: absPath,
	}
	if rootPath == "" && len(baseURL) > 0 && baseURL[0] != "" {
		info.RootPath = baseURL[0]
	} else if rootPath != "" {
		info.RootPath = rootPath
		info.Type = determineProjectType(marker)
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)

	if rootPath != "" {
		info.Name = d.extractProjectName(rootPath, marker)
	}
	return info, nil
}

// DetectRepository identifies the repository containing the given file path
func (d *Detector) DetectRepository(filePath string) (*Repository, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	if gitRoot := d.findGitRoot(startDir); gitRoot != "" {
		repo := &Repository{
			Kind:   "git",
			Root:   gitRoot,
			Origin: d.extractGitOrigin(gitRoot),
		}
		if info, err := d.DetectProject(filePath); err == nil {
			repo.Info = info
		}
		return repo, nil
	}

	info, err := d.DetectProject(filePath)
	if err != nil {
		return nil, err
	}
	return &Repository{
		Kind: info.Type,
		Root: info.RootPath,
		Info: info,
	}, nil
}

// findProjectRoot searches up from the start directory for project markers, it returns root and matched marker name
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			matches, _ := filepath.Glob(filepath.Join(dir, marker))
			if len(matches) > 0 {
				return dir, filepath.Base(matches[0])
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// findGitRoot finds the root of the git repository containing the given directory
func (d *Detector) findGitRoot(startDir string) string {
	dir := startDir
	homeDir := os.Getenv("HOME")
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || homeDir == parent {
			return ""
		}
		dir = parent
	}
}

// extractGitOrigin extracts the origin URL from git config
func (d *Detector) extractGitOrigin(gitRoot string) string {
	content, err := d.fs.DownloadWithURL(context.Background(), filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(content))
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "[remote \"origin\"]") {
			foundRemote = true
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url = ") {
			return strings.TrimPrefix(line, "url = ")
		}
	}
	return ""
}

var (
	packageNameRegex = regexp.MustCompile(`name\s*:\s*"([^"]+)"`)
	podTargetRegex   = regexp.MustCompile(`target\s+['"]([^'"]+)['"]`)
)

// extractProjectName attempts to extract a project name from manifest files
func (d *Detector) extractProjectName(rootPath string, marker string) string {
	switch determineProjectType(marker) {
	case "swiftpm":
		return d.extractWithRegex(filepath.Join(rootPath, marker), packageNameRegex, rootPath)
	case "cocoapods":
		return d.extractWithRegex(filepath.Join(rootPath, marker), podTargetRegex, rootPath)
	case "xcode":
		return strings.TrimSuffix(marker, filepath.Ext(marker))
	case "git":
		if origin := d.extractGitOrigin(rootPath); origin != "" {
			parts := strings.Split(strings.TrimSuffix(origin, ".git"), "/")
			return parts[len(parts)-1]
		}
	}
	return filepath.Base(rootPath)
}

func (d *Detector) extractWithRegex(manifest string, expr *regexp.Regexp, rootPath string) string {
	data, err := d.fs.DownloadWithURL(context.Background(), manifest)
	if err != nil {
		return filepath.Base(rootPath)
	}
	matches := expr.FindSubmatch(data)
	if len(matches) < 2 {
		return filepath.Base(rootPath)
	}
	return string(matches[1])
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch {
	case marker == "Package.swift":
		return "swiftpm"
	case marker == "Podfile":
		return "cocoapods"
	case marker == "Cartfile":
		return "carthage"
	case strings.HasSuffix(marker, ".xcodeproj"), strings.HasSuffix(marker, ".xcworkspace"):
		return "xcode"
	case marker == ".git":
		return "git"
	}
	return "unknown"
}
