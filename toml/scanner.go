package toml

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// tokenKind classifies a scanned token
type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokError
	tokNewline
	tokBare   // bare key, or an unquoted scalar literal (number, bool)
	tokString // quoted string, already unescaped
	tokEqual
	tokDot
	tokComma
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
)

var tokenNames = [...]string{
	tokEOF:      "end of input",
	tokError:    "error",
	tokNewline:  "newline",
	tokBare:     "bare word",
	tokString:   "string",
	tokEqual:    "'='",
	tokDot:      "'.'",
	tokComma:    "','",
	tokLBracket: "'['",
	tokRBracket: "']'",
	tokLBrace:   "'{'",
	tokRBrace:   "'}'",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("token(%d)", k)
}

// token is a lexical unit with its source line
type token struct {
	kind tokenKind
	text string
	line int
}

// scanner splits TOML input into tokens, skipping whitespace and comments
type scanner struct {
	src  []byte
	pos  int
	line int
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1}
}

func (s *scanner) peekRune() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	r, _ := utf8.DecodeRune(s.src[s.pos:])
	return r
}

func (s *scanner) nextRune() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	r, w := utf8.DecodeRune(s.src[s.pos:])
	s.pos += w
	if r == '\n' {
		s.line++
	}
	return r
}

// next returns the next token
func (s *scanner) next() token {
	for {
		switch s.peekRune() {
		case ' ', '\t', '\r':
			s.nextRune()
			continue
		case '#':
			for s.pos < len(s.src) && s.peekRune() != '\n' {
				s.nextRune()
			}
			continue
		}
		break
	}

	if s.pos >= len(s.src) {
		return token{kind: tokEOF, line: s.line}
	}

	line := s.line
	ch := s.nextRune()
	switch ch {
	case '\n':
		return token{kind: tokNewline, line: line}
	case '=':
		return token{kind: tokEqual, text: "=", line: line}
	case '.':
		return token{kind: tokDot, text: ".", line: line}
	case ',':
		return token{kind: tokComma, text: ",", line: line}
	case '[':
		return token{kind: tokLBracket, text: "[", line: line}
	case ']':
		return token{kind: tokRBracket, text: "]", line: line}
	case '{':
		return token{kind: tokLBrace, text: "{", line: line}
	case '}':
		return token{kind: tokRBrace, text: "}", line: line}
	case '"':
		return s.basicString(line)
	case '\'':
		return s.literalString(line)
	}

	if isBareRune(ch) {
		start := s.pos - utf8.RuneLen(ch)
		for s.pos < len(s.src) && isBareRune(s.peekRune()) {
			s.nextRune()
		}
		return token{kind: tokBare, text: string(s.src[start:s.pos]), line: line}
	}

	return token{kind: tokError, text: fmt.Sprintf("unexpected character %q", ch), line: line}
}

// nextScalarTail extends a bare literal across '.' for floats such as 1.5 or 1e-3
// Called by the parser in value position, where a dot cannot separate keys
func (s *scanner) nextScalarTail(head string) string {
	var b strings.Builder
	b.WriteString(head)
	for s.pos < len(s.src) {
		r := s.peekRune()
		if r == '.' || isBareRune(r) {
			b.WriteRune(s.nextRune())
			continue
		}
		break
	}
	return b.String()
}

func (s *scanner) basicString(line int) token {
	var b strings.Builder
	for {
		if s.pos >= len(s.src) {
			return token{kind: tokError, text: "unterminated string", line: line}
		}
		ch := s.nextRune()
		switch ch {
		case '"':
			return token{kind: tokString, text: b.String(), line: line}
		case '\n':
			return token{kind: tokError, text: "newline in basic string", line: line}
		case '\\':
			esc := s.nextRune()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				return token{kind: tokError, text: fmt.Sprintf("unsupported escape \\%c", esc), line: line}
			}
		default:
			b.WriteRune(ch)
		}
	}
}

func (s *scanner) literalString(line int) token {
	start := s.pos
	for s.pos < len(s.src) {
		ch := s.peekRune()
		if ch == '\'' {
			text := string(s.src[start:s.pos])
			s.nextRune()
			return token{kind: tokString, text: text, line: line}
		}
		if ch == '\n' {
			break
		}
		s.nextRune()
	}
	return token{kind: tokError, text: "unterminated literal string", line: line}
}

// isBareRune reports runes allowed in bare keys and unquoted scalars
func isBareRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r == '_' || r == '-' || r == '+'
}
