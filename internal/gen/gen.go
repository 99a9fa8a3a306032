// Package gen renders the length-specific array conversions of package cast.
//
// Go has no way to abstract over an array length, so each supported length
// gets its own pair of functions. The set of lengths is the only input; the
// templates below are the whole generator.
package gen

import (
	"bytes"
	"go/format"
	"os"
	"text/template"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"go.dw1.io/numcast/internal/config"
)

var srcTmpl = template.Must(template.New("src").Parse(`// Code generated by castgen. DO NOT EDIT.

package {{.Package}}
{{range .Lengths}}
// Array{{.}} lifts c to convert [{{.}}]F element-wise, in index order.
func Array{{.}}[F, T any](c Caster[F, T]) Caster[[{{.}}]F, [{{.}}]T] {
	return func(in [{{.}}]F) (out [{{.}}]T) {
		for i := range in {
			out[i] = c(in[i])
		}

		return out
	}
}

// ToArray{{.}} converts each element of a with [To].
func ToArray{{.}}[T, F Number](a [{{.}}]F) [{{.}}]T {
	return Array{{.}}(Numeric[T, F]())(a)
}
{{end}}`))

var testTmpl = template.Must(template.New("test").Parse(`// Code generated by castgen. DO NOT EDIT.

package {{.Package}}

import "testing"

func TestGeneratedArrays(t *testing.T) {
{{- range .Lengths}}
	t.Run("len{{.}}", func(t *testing.T) {
		var in [{{.}}]int32
		fillSequence(in[:])

		floats := ToArray{{.}}[float32](in)
		requireElementwise(t, in[:], floats[:])

		bools := Array{{.}}(NumberToBool[int32]())(in)
		requireBools(t, in[:], bools[:])
	})
{{- end}}
}
`))

type data struct {
	Package string
	Lengths []int
}

// Render returns the formatted source and test files for cfg.
func Render(cfg config.Config) (src, test []byte, err error) {
	d := data{Package: cfg.Package, Lengths: cfg.Lengths()}

	if src, err = execute(srcTmpl, d); err != nil {
		return nil, nil, err
	}

	if test, err = execute(testTmpl, d); err != nil {
		return nil, nil, err
	}

	return src, test, nil
}

func execute(t *template.Template, d data) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return nil, errors.Wrapf(err, "execute %s template", t.Name())
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format %s", t.Name())
	}

	return out, nil
}

// Generator writes the rendered files to disk.
type Generator struct {
	cfg config.Config
	log zerolog.Logger
}

// New returns a Generator for cfg.
func New(cfg config.Config, log zerolog.Logger) *Generator {
	return &Generator{cfg: cfg, log: log}
}

// Run renders and writes the configured files. The test file is skipped
// when no test output path is set.
func (g *Generator) Run() error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	src, test, err := Render(g.cfg)
	if err != nil {
		return err
	}

	if err := g.write(g.cfg.Out, src); err != nil {
		return err
	}

	if g.cfg.TestOut == "" {
		g.log.Debug().Msg("test output disabled")
		return nil
	}

	return g.write(g.cfg.TestOut, test)
}

func (g *Generator) write(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	g.log.Info().
		Str("file", path).
		Int("lengths", int(g.cfg.MaxLen)+1).
		Int("bytes", len(b)).
		Msg("wrote generated file")

	return nil
}
