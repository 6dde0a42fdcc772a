// Package token defines the closed set of token kinds produced by the
// tokenizer and the keyword table used to promote Label tokens to
// Special ones.
package token

// Kind is the closed enumeration of token kinds the tokenizer emits.
type Kind int

const (
	// Inbetween is the tokenizer's pre-token default state. It is never
	// emitted into a token stream.
	Inbetween Kind = iota
	Label
	Special
	Number
	String
	TriStr
	OBrace
	CBrace
	Comment
	Equal
	Operator
	Unary
	Exp
	Comma
	Colon
	Dot
	LCont
)

func (k Kind) String() string {
	return kindToDescription[k]
}

func (k Kind) GoString() string {
	return kindToDescription[k]
}

func init() {
	// Catch an incomplete rewrite of the enum at process start rather
	// than silently printing an empty kind name at format time.
	for k := Inbetween; k <= LCont; k++ {
		if kindToDescription[k] == "" {
			panic("token: missing description for Kind")
		}
	}
}

var kindToDescription = map[Kind]string{
	Inbetween: "Inbetween",
	Label:     "Label",
	Special:   "Special",
	Number:    "Number",
	String:    "String",
	TriStr:    "TriStr",
	OBrace:    "OBrace",
	CBrace:    "CBrace",
	Comment:   "Comment",
	Equal:     "Equal",
	Operator:  "Operator",
	Unary:     "Unary",
	Exp:       "Exp",
	Comma:     "Comma",
	Colon:     "Colon",
	Dot:       "Dot",
	LCont:     "LCont",
}

// Token is one (kind, text) pair produced by the tokenizer.
type Token struct {
	Kind Kind
	Text string
}
