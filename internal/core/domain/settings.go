package domain

import (
	"fmt"
	"path/filepath"
)

// Default dataset locations, relative to the working directory.
const (
	DefaultInputPath  = "p5-ref.json"
	DefaultOutputPath = "p5-ref-slim.json"
)

// Settings controls a slimming run.
type Settings struct {
	// InputPath is the source dataset.
	InputPath string

	// OutputPath is the destination for the slim dataset.
	OutputPath string

	// ASCIIOnly escapes every non-ASCII character in the output as \uXXXX.
	ASCIIOnly bool
}

// DefaultSettings returns settings that read and write the fixed default paths.
func DefaultSettings() Settings {
	return Settings{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.InputPath == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidInput)
	}
	if s.OutputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidInput)
	}
	if samePath(s.InputPath, s.OutputPath) {
		return fmt.Errorf("%w: input and output are the same file: %s", ErrInvalidInput, s.InputPath)
	}
	return nil
}

// samePath reports whether a and b name the same location once made
// absolute and cleaned. Symlinks are not resolved.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// SlimReport summarises a completed slimming run.
type SlimReport struct {
	// Source is the dataset that was read.
	Source string

	// Destination is the file that was written.
	Destination string

	// Entries is the number of symbols written.
	Entries int

	// Bytes is the size of the written output.
	Bytes int
}
