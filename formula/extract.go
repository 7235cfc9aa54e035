package formula

import (
	"sort"
	"strings"
)

// DefaultMaxTokenLen bounds accepted token length. Real formulas in
// synthesis text stay well under this; longer tokens are concatenation
// noise.
const DefaultMaxTokenLen = 40

// Options configures an Extractor.
type Options struct {
	// KeepSingleElement accepts bare element symbols ("Fe", "Cu") as
	// formulas. Off by default, since element mentions in prose are far
	// more often words than formulas worth reporting.
	KeepSingleElement bool

	// MaxTokenLen overrides the accepted token length bound. Values <= 0
	// keep DefaultMaxTokenLen.
	MaxTokenLen int
}

// Extractor finds chemical formula mentions in free text. The zero-cost
// construction makes it fine to create one per call, but an Extractor is
// also stateless and safe for concurrent reuse.
type Extractor struct {
	opts Options
}

// NewExtractor creates an Extractor with the given options.
func NewExtractor(opts ...Options) *Extractor {
	e := &Extractor{}
	if len(opts) > 0 {
		e.opts = opts[0]
	}
	if e.opts.MaxTokenLen <= 0 {
		e.opts.MaxTokenLen = DefaultMaxTokenLen
	}
	return e
}

// Extract returns the deduplicated, sorted formula mentions found in text.
// Tokens are normalized before matching: ASCII dots become hydrate
// interpuncts and trailing charge signs are dropped, so the returned
// strings are canonical forms rather than raw text slices.
func (e *Extractor) Extract(text string) []string {
	seen := make(map[string]bool)
	var formulas []string

	for _, raw := range tokenize(text) {
		token, ok := e.match(raw)
		if !ok || seen[token] {
			continue
		}
		seen[token] = true
		formulas = append(formulas, token)
	}

	sort.Strings(formulas)
	return formulas
}

// tokenize splits text into candidate tokens on any rune outside the
// formula alphabet.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r == '(' || r == ')' || r == '·' || r == '.' || r == '+' || r == '-':
			return false
		}
		return true
	})
}

// match normalizes one candidate token and reports its canonical form if it
// parses as a formula.
func (e *Extractor) match(raw string) (string, bool) {
	token := strings.TrimRight(raw, ".+-")
	token = strings.ReplaceAll(token, ".", "·")

	if token == "" || len(token) > e.opts.MaxTokenLen {
		return "", false
	}

	elements, hasDigit, ok := parse(token)
	if !ok {
		return "", false
	}
	if elements == 1 && !hasDigit && !e.opts.KeepSingleElement {
		return "", false
	}
	return token, true
}

// parse walks the token as a formula grammar: hydrate segments separated by
// interpuncts, each a run of element symbols, counts, and balanced
// parenthesized groups, with an optional leading stoichiometric
// coefficient. It returns how many element symbols matched and whether any
// count digit appeared.
func parse(token string) (elements int, hasDigit bool, ok bool) {
	for _, segment := range strings.Split(token, "·") {
		if segment == "" {
			return 0, false, false
		}

		runes := []rune(segment)
		i := 0
		depth := 0

		// Leading hydrate or stoichiometric coefficient.
		for i < len(runes) && isDigit(runes[i]) {
			hasDigit = true
			i++
		}

		for i < len(runes) {
			switch r := runes[i]; {
			case r == '(':
				depth++
				i++
			case r == ')':
				if depth == 0 {
					return 0, false, false
				}
				depth--
				i++
				for i < len(runes) && isDigit(runes[i]) {
					hasDigit = true
					i++
				}
			case r >= 'A' && r <= 'Z':
				symbol := string(r)
				if i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z' {
					two := symbol + string(runes[i+1])
					if !elementSymbols[two] {
						return 0, false, false
					}
					symbol = two
				} else if !elementSymbols[symbol] {
					return 0, false, false
				}
				elements++
				i += len(symbol)
				for i < len(runes) && isDigit(runes[i]) {
					hasDigit = true
					i++
				}
			default:
				return 0, false, false
			}
		}
		if depth != 0 {
			return 0, false, false
		}
	}
	return elements, hasDigit, elements > 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
