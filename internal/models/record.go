package models

import "time"

// FileRecord describes a single regular file discovered during traversal.
// Records are created once by the walker and are never mutated by later
// pipeline stages; filtering and sorting produce new slices of the same
// values.
type FileRecord struct {
	// Path is the absolute path to the file
	Path string

	// Name is the base name of the file
	Name string

	// Size is the file size in bytes
	Size int64

	// ModTime is the file's last modification time
	ModTime time.Time

	// Depth is the number of directory levels below the traversal root.
	// A root's immediate children are depth 0.
	Depth int
}
