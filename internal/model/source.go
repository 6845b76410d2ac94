// Package model defines the data structures shared by the resolver, the file index and the UI.
package model

// Path represents a file system path.
type Path string

// Language identifies the language an indexed file is analysed as (e.g. "cs").
type Language string

// InputFile is a file known to the file index. Paths are recorded the way the
// index builder saw them: AbsolutePath in native form, RelativePath in slash form
// relative to the index root.
type InputFile struct {
	AbsolutePath Path     `yaml:"absolute_path"`
	RelativePath Path     `yaml:"relative_path"`
	Language     Language `yaml:"language"`
}
