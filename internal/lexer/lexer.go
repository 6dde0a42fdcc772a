// Package lexer implements the physical-line reader and the
// character-driven tokenizer described by the formatter's data model:
// it turns one physical line of source text into a sequence of
// internal/token.Token values, resuming across physical lines when a
// triple-quoted string is left open.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/mstoeckl/pfafmt/internal/token"
)

// TriState carries a triple-quoted string across a physical-line
// boundary: the tokenizer exposes this as an explicit resume entry
// point rather than truncating and reopening a token stream.
type TriState struct {
	Open    bool
	Quote   rune
	Leads   int  // consecutive unescaped occurrences of Quote seen so far
	Escaped bool // odd number of pending backslashes
}

const operatorChars = "=+-@|^&*/<>!~%"

func isOperatorChar(r rune) bool {
	for _, c := range operatorChars {
		if c == r {
			return true
		}
	}
	return false
}

func isIdentStart(r rune) bool {
	return xid.Start(r) || r == '_' || r > 127
}

func isIdentCont(r rune) bool {
	return xid.Continue(r) || r == '_' || r > 127 || unicode.IsDigit(r)
}

func decodeAt(s string, pos int) (rune, int) {
	if pos >= len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s[pos:])
}

// ScanPhysicalLine tokenizes one physical line (including its trailing
// newline) of source text, appending to an in-progress triple-quoted
// string if resume.Open is set. It returns the tokens produced for
// this physical line and the TriState to resume with on the next
// physical line (Open is false once any open triple string closes).
func ScanPhysicalLine(line string, resume TriState) ([]token.Token, TriState) {
	var toks []token.Token
	pos := 0

	if resume.Open {
		consumed, leads, escaped, closed := scanTriStrBody(line, resume.Quote, resume.Leads, resume.Escaped)
		toks = append(toks, token.Token{Kind: token.TriStr, Text: line[:consumed]})
		if !closed {
			return toks, TriState{Open: true, Quote: resume.Quote, Leads: leads, Escaped: escaped}
		}
		pos = consumed
	}

	for pos < len(line) {
		r, w := decodeAt(line, pos)
		switch {
		case r == ' ' || r == '\t':
			pos += w
		case r == '\n':
			pos += w
		case r == '#':
			end := scanComment(line, pos+w)
			toks = append(toks, token.Token{Kind: token.Comment, Text: line[pos:end]})
			pos = end
		case r == '\'' || r == '"':
			end, kind, rs := scanQuoted(line, pos+w, r)
			toks = append(toks, token.Token{Kind: kind, Text: line[pos:end]})
			pos = end
			if kind == token.TriStr && rs.Open {
				return toks, rs
			}
		case r == '(' || r == '[' || r == '{':
			toks = append(toks, token.Token{Kind: token.OBrace, Text: line[pos : pos+w]})
			pos += w
		case r == ')' || r == ']' || r == '}':
			toks = append(toks, token.Token{Kind: token.CBrace, Text: line[pos : pos+w]})
			pos += w
		case r == ',':
			toks = append(toks, token.Token{Kind: token.Comma, Text: line[pos : pos+w]})
			pos += w
		case r == ':':
			toks = append(toks, token.Token{Kind: token.Colon, Text: line[pos : pos+w]})
			pos += w
		case r == '\\':
			toks = append(toks, token.Token{Kind: token.LCont, Text: line[pos : pos+w]})
			pos += w
		case isIdentStart(r):
			end := scanIdentifier(line, pos+w)
			if qr, qw := decodeAt(line, end); qr == '\'' || qr == '"' {
				send, kind, rs := scanQuoted(line, end+qw, qr)
				toks = append(toks, token.Token{Kind: kind, Text: line[pos:send]})
				pos = send
				if kind == token.TriStr && rs.Open {
					return toks, rs
				}
				continue
			}
			toks = append(toks, token.Token{Kind: token.Label, Text: line[pos:end]})
			pos = end
		case (r >= '0' && r <= '9') || r == '.':
			end, kind := scanNumber(line, pos)
			toks = append(toks, token.Token{Kind: kind, Text: line[pos:end]})
			pos = end
		case isOperatorChar(r):
			end, kind := scanOperator(line, pos)
			// Left context: a lone '+', '-' or '*' right after an operand
			// is binary; a "**" anywhere else is a keyword-argument splat.
			afterOperand := false
			if n := len(toks); n > 0 {
				switch toks[n-1].Kind {
				case token.Label, token.Number, token.String, token.TriStr, token.CBrace:
					afterOperand = true
				}
			}
			if kind == token.Unary && afterOperand {
				kind = token.Operator
			} else if kind == token.Exp && !afterOperand && line[pos:end] == "**" {
				kind = token.Unary
			}
			toks = append(toks, token.Token{Kind: kind, Text: line[pos:end]})
			pos = end
		default:
			// Total over byte sequences: an unrecognized rune is still
			// emitted, as its own opaque single-character token, rather
			// than rejecting the input.
			toks = append(toks, token.Token{Kind: token.Operator, Text: line[pos : pos+w]})
			pos += w
		}
	}
	return toks, TriState{}
}

// scanComment consumes up to (but not including) the line's trailing
// newline. start is the index right after '#'.
func scanComment(line string, start int) int {
	i := start
	for i < len(line) {
		r, w := decodeAt(line, i)
		if r == '\n' {
			return i
		}
		i += w
	}
	return i
}

// scanIdentifier consumes identifier-continuation characters. start is
// the index right after the already-consumed first character.
func scanIdentifier(line string, start int) int {
	i := start
	for i < len(line) {
		r, w := decodeAt(line, i)
		if !isIdentCont(r) {
			break
		}
		i += w
	}
	return i
}

// scanNumber consumes a numeric literal (including scientific and hex
// forms) starting at start, which points at the literal's first digit
// or '.'. If the run turns out to be a single '.', it is reclassified
// as Dot.
func scanNumber(line string, start int) (end int, kind token.Kind) {
	i := start
	var prev rune
	hex := false
	for i < len(line) {
		r, w := decodeAt(line, i)
		cont := false
		switch {
		case r >= '0' && r <= '9', r == '.':
			cont = true
		case r == 'e' || r == 'E' || r == 'x' || r == 'X':
			cont = true
			hex = hex || r == 'x' || r == 'X'
		case r == '+' || r == '-':
			cont = prev == 'e' || prev == 'E'
		case hex && ((r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')):
			cont = true
		}
		if !cont {
			break
		}
		prev = r
		i += w
	}
	if line[start:i] == "." {
		return start + 1, token.Dot
	}
	return i, token.Number
}

// scanQuoted scans a single-, double-, or triple-quoted string. start
// is the index right after the opening quote character.
func scanQuoted(line string, start int, quote rune) (end int, kind token.Kind, resume TriState) {
	if r1, w1 := decodeAt(line, start); r1 == quote {
		if r2, w2 := decodeAt(line, start+w1); r2 == quote {
			bodyStart := start + w1 + w2
			consumed, leads, escaped, closed := scanTriStrBody(line[bodyStart:], quote, 0, false)
			if closed {
				return bodyStart + consumed, token.TriStr, TriState{}
			}
			return len(line), token.TriStr, TriState{Open: true, Quote: quote, Leads: leads, Escaped: escaped}
		}
		// Two quotes with no third: an empty single/double-quoted string.
		return start + w1, token.String, TriState{}
	}

	i := start
	escaped := false
	for i < len(line) {
		r, w := decodeAt(line, i)
		if r == '\n' {
			break
		}
		if escaped {
			escaped = false
			i += w
			continue
		}
		if r == '\\' {
			escaped = true
			i += w
			continue
		}
		if r == quote {
			return i + w, token.String, TriState{}
		}
		i += w
	}
	// Unterminated string at end of physical line: emit best-effort as
	// a String token rather than rejecting the input.
	return i, token.String, TriState{}
}

// scanTriStrBody scans the body of a triple-quoted string (the part
// after its opening three quote characters) for the terminating run of
// three consecutive, unescaped quote characters. It reports how much
// of s was consumed and, if the string did not close within s, the
// escape/run state to resume with on the next physical line.
func scanTriStrBody(s string, quote rune, leads int, escaped bool) (consumed, newLeads int, newEscaped, closed bool) {
	i := 0
	for i < len(s) {
		r, w := decodeAt(s, i)
		i += w
		if escaped {
			escaped = false
			leads = 0
			continue
		}
		if r == '\\' {
			escaped = true
			leads = 0
			continue
		}
		if r == quote {
			leads++
			if leads == 3 {
				return i, 0, false, true
			}
		} else {
			leads = 0
		}
	}
	return i, leads, escaped, false
}

// scanOperator scans a run of operator characters starting at start,
// extending it only for the specifically enumerated continuation
// patterns: a second '*' (promoting the run to Exp), a doubled '/',
// '>', or '<' (floor-div, shift), or a trailing '=' extending a prior
// operator character (compound assignment, which folds a prior Exp
// back to Operator -- the "**=" case). Any other operator character
// immediately following one that isn't itself a continuation ends the
// run right there, so e.g. "=-1" scans as "=" then "-", not "=-".
//
// At exit, a lone '=' is reclassified Equal and a lone '+', '-', or
// '*' is reclassified Unary; longer runs (including "==", "**", "//",
// ">>", "<<", "!=", compound assignments) keep their running kind.
// ScanPhysicalLine then adjusts Unary and "**" by the preceding token.
func scanOperator(line string, start int) (end int, kind token.Kind) {
	kind = token.Operator
	prev, w0 := decodeAt(line, start)
	i := start + w0

loop:
	for i < len(line) {
		r, w := decodeAt(line, i)
		if !isOperatorChar(r) {
			break
		}
		switch {
		case prev == '*' && r == '*':
			kind = token.Exp
		case prev == '/' && r == '/', prev == '>' && r == '>', prev == '<' && r == '<':
			// doubled character: keep accumulating as Operator.
		case r == '=':
			if kind == token.Exp {
				kind = token.Operator
			}
		default:
			break loop
		}
		prev = r
		i += w
	}

	text := line[start:i]
	switch {
	case text == "=":
		return i, token.Equal
	case text == "+" || text == "-" || text == "*":
		return i, token.Unary
	default:
		return i, kind
	}
}
