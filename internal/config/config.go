// Package config loads castgen settings from defaults, an optional YAML
// file, CASTGEN_* environment variables and command-line flags.
package config

import (
	"go/token"

	"github.com/pkg/errors"
)

// Setting keys. They double as flag names; environment variables use the
// upper-cased key with "-" replaced by "_" and the CASTGEN_ prefix.
const (
	KeyMaxLen  = "max-len"
	KeyPackage = "package"
	KeyOut     = "out"
	KeyTestOut = "test-out"
)

// Defaults.
const (
	DefaultMaxLen  = 32
	DefaultPackage = "cast"
	DefaultOut     = "zz_generated_array.go"
	DefaultTestOut = "zz_generated_array_test.go"
)

// MaxArrayLen is the largest array length castgen will generate code for.
const MaxArrayLen = 64

var (
	ErrEmptyPackage   = errors.New("package name is empty")
	ErrInvalidPackage = errors.New("package name is not a Go identifier")
	ErrEmptyOut       = errors.New("output path is empty")
	ErrMaxLen         = errors.New("max-len exceeds the supported maximum")
)

// Config holds the generator settings.
type Config struct {
	// Package is the package clause written to the generated files.
	Package string
	// MaxLen is the largest array length to generate; lengths 0 through
	// MaxLen are emitted.
	MaxLen uint8
	// Out is the path of the generated source file.
	Out string
	// TestOut is the path of the generated test file. Empty skips it.
	TestOut string
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Package: DefaultPackage,
		MaxLen:  DefaultMaxLen,
		Out:     DefaultOut,
		TestOut: DefaultTestOut,
	}
}

// Validate reports the first invalid setting in c.
func (c Config) Validate() error {
	switch {
	case c.Package == "":
		return ErrEmptyPackage
	case !token.IsIdentifier(c.Package):
		return errors.Wrapf(ErrInvalidPackage, "%q", c.Package)
	case c.Out == "":
		return ErrEmptyOut
	case c.MaxLen > MaxArrayLen:
		return errors.Wrapf(ErrMaxLen, "%d > %d", c.MaxLen, MaxArrayLen)
	}

	return nil
}

// Lengths returns every array length to generate, in ascending order.
func (c Config) Lengths() []int {
	lengths := make([]int, 0, int(c.MaxLen)+1)
	for n := 0; n <= int(c.MaxLen); n++ {
		lengths = append(lengths, n)
	}

	return lengths
}
