package model

// Path represents a file system path.
type Path string

// File represents a source file selected for cleanup.
type File struct {
	FullPath  Path
	ShortPath Path // relative to the project root
}
