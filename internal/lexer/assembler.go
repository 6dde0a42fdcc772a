package lexer

import "github.com/mstoeckl/pfafmt/internal/token"

// LineState is the logical-line assembler's state machine, deciding
// whether the next physical line extends the current logical line or
// starts a new one.
type LineState int

const (
	Normal LineState = iota
	Blank
	Continuation
	TriStr
)

// Flush is one complete logical line, ready for the spacer/wrapper.
// BlankFlush marks the case where a blank line closed a bracket
// continuation (spec.md §4.2/§4.6): the wrapper owes that swallowed
// blank line an extra trailing newline.
type Flush struct {
	Tokens     []token.Token
	Leading    int
	BlankFlush bool
}

// Assembler stitches physical lines joined by brackets, a trailing
// backslash, or an open triple-quoted string into logical lines. Both
// its line-state and its token buffer are reset whenever a Normal or
// Blank line begins.
type Assembler struct {
	state        LineState
	tokens       []token.Token
	depth        int
	leading      int
	tri          TriState
	pendingLCont bool
}

// NewAssembler returns an assembler ready to consume the first
// physical line of a file.
func NewAssembler() *Assembler {
	return &Assembler{state: Normal}
}

func isBlankLine(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func leadingSpaces(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

// Feed consumes one physical line. It returns a non-nil flush when a
// logical line is complete (the spacer/wrapper should run on it now),
// and reports whether a single bare newline should be written to
// output for a non-flushing blank line.
func (a *Assembler) Feed(line string) (flush *Flush, bareBlank bool) {
	if a.state == TriStr {
		toks, tri := ScanPhysicalLine(line, a.tri)
		sawLCont := len(toks) > 0 && toks[len(toks)-1].Kind == token.LCont
		if len(a.tokens) > 0 {
			a.tokens[len(a.tokens)-1].Text += toks[0].Text
			toks = toks[1:]
		}
		a.appendTokens(toks)
		a.tri = tri
		a.pendingLCont = sawLCont
		return a.advance()
	}

	if isBlankLine(line) {
		switch a.state {
		case Continuation:
			f := a.flushNow()
			f.BlankFlush = true
			a.state = Blank
			return f, false
		case Blank:
			return nil, false
		default:
			a.state = Blank
			return nil, true
		}
	}

	if a.state == Blank {
		a.state = Normal
	}

	if len(a.tokens) == 0 {
		a.leading = leadingSpaces(line)
	}
	toks, tri := ScanPhysicalLine(line, TriState{})
	sawLCont := len(toks) > 0 && toks[len(toks)-1].Kind == token.LCont
	a.appendTokens(toks)
	a.tri = tri
	a.pendingLCont = sawLCont
	return a.advance()
}

// Finish synthesizes an end-of-stream flush for any logical line left
// open (an unterminated continuation, an unclosed bracket, or an
// unterminated triple string) when the input ends.
func (a *Assembler) Finish() *Flush {
	if len(a.tokens) == 0 {
		return nil
	}
	return a.flushNow()
}

// appendTokens folds toks into the logical line's token buffer and
// tracks bracket depth. LCont tokens are a pure continuation signal --
// consulted via pendingLCont in nextState, not carried into the token
// stream the spacer/wrapper see, since the wrapper decides for itself
// where a continuation backslash belongs (spec.md §4.6).
func (a *Assembler) appendTokens(toks []token.Token) {
	for _, t := range toks {
		if t.Kind == token.LCont {
			continue
		}
		switch t.Kind {
		case token.OBrace:
			a.depth++
		case token.CBrace:
			a.depth--
		}
		a.tokens = append(a.tokens, t)
	}
}

func (a *Assembler) advance() (*Flush, bool) {
	a.state = a.nextState()
	if a.state == Normal {
		return a.flushNow(), false
	}
	return nil, false
}

func (a *Assembler) nextState() LineState {
	if a.tri.Open {
		return TriStr
	}
	if a.pendingLCont {
		return Continuation
	}
	if a.depth > 0 {
		return Continuation
	}
	return Normal
}

func (a *Assembler) flushNow() *Flush {
	f := &Flush{Tokens: a.tokens, Leading: a.leading}
	a.tokens = nil
	a.depth = 0
	a.tri = TriState{}
	a.pendingLCont = false
	return f
}
