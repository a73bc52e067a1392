package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses TOML data into a tree of map[string]any
// Values are string, int, float64, bool, []any or map[string]any
func Parse(data []byte) (map[string]any, error) {
	p := &parser{
		sc:      newScanner(data),
		root:    make(map[string]any),
		defined: make(map[string]bool),
	}
	p.table = p.root
	p.advance()

	for p.tok.kind != tokEOF {
		if err := p.statement(); err != nil {
			return nil, err
		}
	}
	return p.root, nil
}

type parser struct {
	sc      *scanner
	tok     token
	root    map[string]any
	table   map[string]any  // current table receiving key/value pairs
	defined map[string]bool // explicitly declared table paths
}

func (p *parser) advance() {
	p.tok = p.sc.next()
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("toml: line %d: %s", p.tok.line, fmt.Sprintf(format, args...))
}

func (p *parser) statement() error {
	switch p.tok.kind {
	case tokNewline:
		p.advance()
		return nil
	case tokLBracket:
		return p.tableHeader()
	case tokBare, tokString:
		if err := p.keyValue(p.table); err != nil {
			return err
		}
		return p.endOfLine()
	case tokError:
		return p.errorf("%s", p.tok.text)
	}
	return p.errorf("unexpected %s", p.tok.kind)
}

// endOfLine requires a newline or EOF after a statement
func (p *parser) endOfLine() error {
	switch p.tok.kind {
	case tokNewline:
		p.advance()
		return nil
	case tokEOF:
		return nil
	}
	return p.errorf("expected end of line, got %s", p.tok.kind)
}

func (p *parser) tableHeader() error {
	p.advance() // consume [
	if p.tok.kind == tokLBracket {
		return p.errorf("array of tables is not supported")
	}

	keys, err := p.key()
	if err != nil {
		return err
	}
	if p.tok.kind != tokRBracket {
		return p.errorf("expected ']' after table name, got %s", p.tok.kind)
	}
	p.advance()

	path := strings.Join(keys, ".")
	if p.defined[path] {
		return p.errorf("table [%s] defined twice", path)
	}
	p.defined[path] = true

	tbl, err := descend(p.root, keys)
	if err != nil {
		return p.errorf("%v", err)
	}
	p.table = tbl
	return p.endOfLine()
}

// descend walks or creates nested tables along keys
func descend(m map[string]any, keys []string) (map[string]any, error) {
	for _, k := range keys {
		existing, ok := m[k]
		if !ok {
			child := make(map[string]any)
			m[k] = child
			m = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q is not a table", k)
		}
		m = child
	}
	return m, nil
}

// key parses a dotted key: a.b."c d"
func (p *parser) key() ([]string, error) {
	var keys []string
	for {
		if p.tok.kind != tokBare && p.tok.kind != tokString {
			return nil, p.errorf("expected key, got %s", p.tok.kind)
		}
		keys = append(keys, p.tok.text)
		p.advance()
		if p.tok.kind != tokDot {
			return keys, nil
		}
		p.advance()
	}
}

func (p *parser) keyValue(into map[string]any) error {
	keys, err := p.key()
	if err != nil {
		return err
	}
	if p.tok.kind != tokEqual {
		return p.errorf("expected '=' after key %q, got %s", strings.Join(keys, "."), p.tok.kind)
	}
	p.advance()

	val, err := p.value()
	if err != nil {
		return err
	}

	tbl, err := descend(into, keys[:len(keys)-1])
	if err != nil {
		return p.errorf("%v", err)
	}
	last := keys[len(keys)-1]
	if _, exists := tbl[last]; exists {
		return p.errorf("duplicate key %q", strings.Join(keys, "."))
	}
	tbl[last] = val
	return nil
}

func (p *parser) value() (any, error) {
	switch p.tok.kind {
	case tokString:
		s := p.tok.text
		p.advance()
		return s, nil
	case tokBare:
		// Dots inside a value belong to the literal (floats), not to a dotted key
		lit := p.sc.nextScalarTail(p.tok.text)
		v, err := scalar(lit)
		if err != nil {
			return nil, p.errorf("%v", err)
		}
		p.advance()
		return v, nil
	case tokLBracket:
		return p.array()
	case tokLBrace:
		return p.inlineTable()
	case tokError:
		return nil, p.errorf("%s", p.tok.text)
	}
	return nil, p.errorf("expected value, got %s", p.tok.kind)
}

func (p *parser) skipNewlines() {
	for p.tok.kind == tokNewline {
		p.advance()
	}
}

func (p *parser) array() ([]any, error) {
	p.advance() // consume [
	arr := make([]any, 0)
	for {
		p.skipNewlines()
		if p.tok.kind == tokRBracket {
			p.advance()
			return arr, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
		p.skipNewlines()
		switch p.tok.kind {
		case tokComma:
			p.advance()
		case tokRBracket:
		default:
			return nil, p.errorf("expected ',' or ']' in array, got %s", p.tok.kind)
		}
	}
}

func (p *parser) inlineTable() (map[string]any, error) {
	p.advance() // consume {
	m := make(map[string]any)
	if p.tok.kind == tokRBrace {
		p.advance()
		return m, nil
	}
	for {
		if err := p.keyValue(m); err != nil {
			return nil, err
		}
		switch p.tok.kind {
		case tokComma:
			p.advance()
		case tokRBrace:
			p.advance()
			return m, nil
		default:
			return nil, p.errorf("expected ',' or '}' in inline table, got %s", p.tok.kind)
		}
	}
}

// scalar classifies an unquoted literal
func scalar(lit string) (any, error) {
	switch lit {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	digits := strings.ReplaceAll(lit, "_", "")
	unsigned := strings.TrimLeft(digits, "+-")
	if len(unsigned) > 2 && unsigned[0] == '0' && strings.ContainsRune("xob", rune(unsigned[1])) {
		n, err := strconv.ParseInt(digits, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", lit)
		}
		return int(n), nil
	}

	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return int(n), nil
	}
	if strings.ContainsAny(digits, ".eE") {
		if f, err := strconv.ParseFloat(digits, 64); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("invalid value %q", lit)
}
