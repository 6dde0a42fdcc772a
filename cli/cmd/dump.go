package cmd

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/mstoeckl/pfafmt/internal/lexer"
	"github.com/mstoeckl/pfafmt/internal/token"
)

// dumpFileTokens pretty-prints the classified token stream of every
// logical line in src. It is a debugging aid (spec.md §6, cli ambient
// stack), not part of the formatting contract, and never returns an
// error -- a malformed dump is not a reason to stop formatting.
func dumpFileTokens(cmd *cobra.Command, name string, src []byte) {
	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "-- tokens: %s --\n", name)

	lr := lexer.NewLineReader(bytes.NewReader(src))
	asm := lexer.NewAssembler()

	dump := func(f *lexer.Flush) {
		toks := make([]token.Token, len(f.Tokens))
		for i, t := range f.Tokens {
			toks[i] = token.Classify(t)
		}
		fmt.Fprintln(out, repr.String(toks))
	}

	for {
		line, ok, err := lr.ReadLine()
		if err != nil || !ok {
			break
		}
		if f, bareBlank := asm.Feed(line); f != nil {
			dump(f)
		} else if bareBlank {
			continue
		}
	}
	if f := asm.Finish(); f != nil {
		dump(f)
	}
}
