package token

// keywords is the fixed reserved-word set of the input language. Built
// once into a trie at package init and never mutated afterwards, the
// same process-lifetime-constant shape as a scanner's reserved-word
// table, generalized from a map into a trie per the O(length)
// membership-testing requirement.
var keywords = []string{
	"and", "as", "assert", "break", "class", "continue", "def", "del",
	"elif", "else", "except", "finally", "for", "from", "global", "if",
	"import", "in", "is", "lambda", "nonlocal", "not", "or", "pass",
	"raise", "return", "try", "while", "with", "yield",
}

type trieNode struct {
	children [26]*trieNode
	terminal bool
}

var keywordTrie = buildKeywordTrie(keywords)

func buildKeywordTrie(words []string) *trieNode {
	root := &trieNode{}
	for _, w := range words {
		n := root
		for i := 0; i < len(w); i++ {
			c := w[i]
			if c < 'a' || c > 'z' {
				panic("token: keyword contains non-lowercase-ASCII byte: " + w)
			}
			idx := c - 'a'
			if n.children[idx] == nil {
				n.children[idx] = &trieNode{}
			}
			n = n.children[idx]
		}
		n.terminal = true
	}
	return root
}

// IsKeyword reports whether text is exactly one of the reserved words
// of the input language. Membership testing is restricted to lowercase
// ASCII letters; any other byte in text is a guaranteed non-match.
func IsKeyword(text string) bool {
	n := keywordTrie
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 'a' || c > 'z' {
			return false
		}
		n = n.children[c-'a']
		if n == nil {
			return false
		}
	}
	return n.terminal
}

// Classify promotes a Label token to Special if its text is a reserved
// keyword. It is the only place keyword promotion happens; the
// tokenizer emits plain Labels, and callers apply Classify once to each
// token of a flushed logical line.
func Classify(t Token) Token {
	if t.Kind == Label && IsKeyword(t.Text) {
		t.Kind = Special
	}
	return t
}
