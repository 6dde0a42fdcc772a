// Package layout turns a classified token stream into a spaced,
// column-wrapped byte sequence: the spacer decides which token-pair
// boundaries take a space and records candidate split points, and the
// wrapper (see wrapper.go) turns those into physical output lines.
package layout

import (
	"strings"

	"github.com/mstoeckl/pfafmt/internal/token"
)

// Scores attached to candidate split points. splitForce is large
// enough that a Comment split point always wins the wrapper's
// look-ahead; the discourage constants are merely "very negative", not
// forced.
const (
	splitForce          = 1 << 30
	splitDiscourageCall = -1 << 20
	splitDiscourageDot  = -1 << 16
)

// SplitPoint is a candidate break location recorded after a token: the
// byte offset into the accumulator, the boundary's score (higher is
// more attractive to the wrapper), and the bracket depth at that
// offset.
type SplitPoint struct {
	Offset int
	Score  int
	Depth  int
}

// Spaced is one logical line's spacer output: the fully spaced text
// and its candidate split points in ascending offset order.
type Spaced struct {
	Text   string
	Splits []SplitPoint
}

// Space walks tokens with a three-token (pp, pre, post) window,
// materializing the spaces between adjacent tokens and the candidate
// split points the wrapper will choose among.
func Space(tokens []token.Token) Spaced {
	var b strings.Builder
	var splits []SplitPoint
	depth := 0
	pp, pre := token.Inbetween, token.Inbetween

	for i, tok := range tokens {
		kind := tok.Kind
		text := tok.Text
		if kind == token.Comment {
			text = normalizeComment(text)
		}

		if i > 0 {
			splits = append(splits, SplitPoint{
				Offset: b.Len(),
				Score:  splitScore(pre, kind, depth),
				Depth:  depth,
			})
			if kind == token.Comment && pre != token.Comment {
				// Inline comments get a two-space gutter, one space
				// past the ordinary single-space boundary (spec.md
				// §8 S7).
				b.WriteString("  ")
			} else if needSpace(pp, pre, kind, depth) {
				b.WriteByte(' ')
			}
		}

		b.WriteString(text)

		pp = pre
		pre = kind
		switch kind {
		case token.OBrace:
			depth++
		case token.CBrace:
			depth--
		}
	}

	return Spaced{Text: b.String(), Splits: splits}
}

// needSpace implements spec's (pp, pre, post) spacing table, in order
// -- the first matching rule wins.
func needSpace(pp, pre, post token.Kind, depth int) bool {
	switch {
	case pre == token.Comment:
		return false
	case pp == token.Inbetween && pre == token.Operator && post == token.Label:
		// Leading annotation, e.g. "@decorator".
		return false
	case pre == token.Equal || post == token.Equal:
		// Keyword arguments (inside brackets) get no surrounding spaces.
		return depth == 0
	case pre == token.Special:
		return post != token.Colon
	case post == token.Special:
		return true
	case pre == token.TriStr && post == token.TriStr:
		return false
	case pre == token.Exp || post == token.Exp:
		return false
	case pre == token.Dot || post == token.Dot:
		return false
	case pre == token.Operator && post == token.Unary:
		return true
	case pre == token.Label && post == token.Unary:
		return true
	case pre == token.CBrace && post == token.Unary:
		return true
	case pre == token.OBrace && post == token.Unary:
		return false
	case pre == token.Unary:
		switch pp {
		case token.Operator, token.Exp, token.Comma, token.OBrace, token.Equal, token.Colon:
			return false
		default:
			return true
		}
	case post == token.Comma || post == token.Colon:
		return false
	case pre == token.Comma:
		return post != token.CBrace
	case pre == token.Colon:
		return pp == token.Label || pp == token.Special
	case pre == token.CBrace && post == token.Label:
		return true
	case pre == token.Operator || post == token.Operator:
		return true
	case pre == token.OBrace || post == token.CBrace || pre == token.CBrace || post == token.OBrace:
		return false
	default:
		return true
	}
}

// splitScore scores the boundary right after pre, given what follows
// at post and the bracket depth at that boundary.
func splitScore(pre, post token.Kind, depth int) int {
	switch {
	case pre == token.Comment:
		return splitForce
	case pre == token.Comma && post != token.CBrace && depth > 0:
		return 1
	case pre == token.Colon && post != token.CBrace:
		return 1
	case pre == token.Label && post == token.OBrace:
		return splitDiscourageCall
	case pre == token.Dot || post == token.Dot:
		return splitDiscourageDot
	default:
		return 0
	}
}

// normalizeComment trims trailing whitespace from a comment's body and
// inserts a single space after '#' unless the body begins with '!'.
func normalizeComment(text string) string {
	body := strings.TrimRight(text[1:], " \t")
	if strings.HasPrefix(body, "!") {
		return "#" + body
	}
	return "# " + strings.TrimLeft(body, " \t")
}
