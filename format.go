// Package pfafmt formats source files of the input language: space
// normalization around operators, comment hygiene, blank-line
// coalescing, and line wrapping at a fixed column. It is the public
// entry point both the CLI and other Go programs import.
package pfafmt

import (
	"bytes"
	"io"

	"github.com/mstoeckl/pfafmt/internal/layout"
	"github.com/mstoeckl/pfafmt/internal/lexer"
	"github.com/mstoeckl/pfafmt/internal/token"
)

// Format reads the input language source from r and writes its
// canonical formatting to w. It never rejects input; malformed
// constructs are emitted best-effort (spec.md §4.7).
func Format(w io.Writer, r io.Reader) error {
	emitter := layout.NewEmitter(w)
	lr := lexer.NewLineReader(r)
	asm := lexer.NewAssembler()

	flush := func(f *lexer.Flush) error {
		toks := make([]token.Token, len(f.Tokens))
		for i, t := range f.Tokens {
			toks[i] = token.Classify(t)
		}
		spaced := layout.Space(toks)
		return emitter.WriteLine(layout.Wrap(spaced, f.Leading, f.BlankFlush))
	}

	for {
		line, ok, err := lr.ReadLine()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		f, bareBlank := asm.Feed(line)
		if bareBlank {
			if err := emitter.WriteLine("\n"); err != nil {
				return err
			}
			continue
		}
		if f != nil {
			if err := flush(f); err != nil {
				return err
			}
		}
	}

	if f := asm.Finish(); f != nil {
		if err := flush(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatBytes formats src in memory, returning the formatted bytes.
// It is the building block in-place mode uses to compare against the
// original file before touching disk (spec.md §5, §8 property 7).
func FormatBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Format(&buf, bytes.NewReader(src)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
