package expr

import "strconv"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokFloorDiv
	tokPercent
	tokPow
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokFloorDiv:
		return "'//'"
	case tokPercent:
		return "'%'"
	case tokPow:
		return "'**'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "token"
	}
}

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// tokenize splits src into tokens. Anything outside the arithmetic alphabet
// (assignment, member access, separators, quotes) is a syntax error here.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		ch := rune(src[i])
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case isDigit(src[i]) || (ch == '.' && i+1 < len(src) && isDigit(src[i+1])):
			end := scanNumber(src, i)
			val, err := strconv.ParseFloat(src[i:end], 64)
			if err != nil {
				return nil, syntaxError(src, i, "invalid number %q", src[i:end])
			}
			toks = append(toks, token{kind: tokNumber, text: src[i:end], num: val, pos: i})
			i = end
		case isIdentStart(src[i]):
			start := i
			for i < len(src) && (isIdentStart(src[i]) || isDigit(src[i])) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		case ch == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, token{kind: tokPow, text: "**", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar, text: "*", pos: i})
				i++
			}
		case ch == '^':
			toks = append(toks, token{kind: tokPow, text: "^", pos: i})
			i++
		case ch == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", pos: i})
			i++
		case ch == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++
		case ch == '/':
			if i+1 < len(src) && src[i+1] == '/' {
				toks = append(toks, token{kind: tokFloorDiv, text: "//", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokSlash, text: "/", pos: i})
				i++
			}
		case ch == '%':
			toks = append(toks, token{kind: tokPercent, text: "%", pos: i})
			i++
		case ch == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		default:
			return nil, syntaxError(src, i, "unexpected character %q", src[i])
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

// scanNumber returns the end offset of the numeric literal starting at i.
// An exponent marker is only consumed when digits follow, so "2*e" and "2e"
// never swallow the constant e.
func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
