package repository

type Repository struct {
	Kind   string
	Root   string
	Origin string
	Info   *Project
}

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Type of project (swiftpm, cocoapods, carthage, xcode, git)
	Name         string // Name of the project (extracted from manifest files)
	RelativePath string // Path from project root to the specified file
}
