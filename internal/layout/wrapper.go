package layout

import "strings"

// maxWidth is the target column budget; it is a soft bound -- a single
// token (or a forced comment break) may still push a line past it.
const maxWidth = 80

// depthPenalty discourages the wrapper from preferring a split point
// buried deep inside nested brackets over a shallower one just as
// reachable.
const depthPenalty = 2

// continuationIndent is the extra indent (beyond the logical line's
// leading spaces) applied to every wrapped continuation line.
const continuationIndent = 4

// Wrap turns sp into physical output lines: leading is the logical
// line's captured leading-spaces count, and blankFlush marks a logical
// line flushed by a blank line closing a bracket continuation (S6/S4),
// which gets one extra trailing blank line.
func Wrap(sp Spaced, leading int, blankFlush bool) string {
	var out strings.Builder
	pad := strings.Repeat(" ", leading)
	contPad := strings.Repeat(" ", leading+continuationIndent)

	out.WriteString(pad)

	text := sp.Text
	cur := 0
	budget := maxWidth - leading

	breakAt := func(split SplitPoint) {
		segment := strings.TrimPrefix(text[cur:split.Offset], " ")
		out.WriteString(segment)

		bareBreak := split.Depth > 0 || split.Score >= splitForce
		if bareBreak {
			out.WriteString("\n")
		} else {
			out.WriteString(" \\\n")
		}
		out.WriteString(contPad)

		cur = split.Offset
		budget = maxWidth - leading - continuationIndent
	}

	for {
		// A comment is a terminator: wherever one falls in the token
		// stream, the wrapper must break right after it regardless of
		// how much budget remains (spec.md §4.6).
		if fs, ok := firstForcedSplit(sp.Splits, cur); ok {
			breakAt(fs)
			continue
		}

		rest := strings.TrimPrefix(text[cur:], " ")
		if len(rest) <= budget || !hasSplitPast(sp.Splits, cur) {
			out.WriteString(rest)
			break
		}

		split, ok := chooseSplit(sp.Splits, cur, budget)
		if !ok {
			out.WriteString(rest)
			break
		}
		breakAt(split)
	}

	out.WriteString("\n")
	if blankFlush {
		out.WriteString("\n")
	}
	return out.String()
}

func firstForcedSplit(splits []SplitPoint, cur int) (SplitPoint, bool) {
	for _, s := range splits {
		if s.Offset > cur && s.Score >= splitForce {
			return s, true
		}
	}
	return SplitPoint{}, false
}

func hasSplitPast(splits []SplitPoint, cur int) bool {
	for _, s := range splits {
		if s.Offset > cur {
			return true
		}
	}
	return false
}

// chooseSplit picks the split point the wrapper should break at: the
// highest (depth-penalized) scoring candidate reachable within budget,
// or -- if none is reachable -- the nearest candidate past cur, so a
// single overlong token is never held hostage to the width budget
// (spec.md §8 property 4: the max-width bound is soft).
func chooseSplit(splits []SplitPoint, cur, budget int) (SplitPoint, bool) {
	var best SplitPoint
	haveBest := false
	bestEff := 0

	for _, s := range splits {
		if s.Offset <= cur {
			continue
		}
		if s.Offset-cur > budget {
			continue
		}
		eff := s.Score - s.Depth*depthPenalty
		if !haveBest || eff > bestEff || (eff == bestEff && s.Offset > best.Offset) {
			best = s
			bestEff = eff
			haveBest = true
		}
	}
	if haveBest {
		return best, true
	}

	for _, s := range splits {
		if s.Offset > cur {
			return s, true
		}
	}
	return SplitPoint{}, false
}
