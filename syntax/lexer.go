package syntax

import (
	"strings"
	"text/scanner"

	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax/token"
)

// lexer wraps text/scanner exactly as the teacher's internal/lexer.go and
// system/parser.go do, generalized to also capture `#` comments as leading
// trivia (commas and whitespace are skipped and not recorded) and to count
// tokens/recursion depth for the
// §5/§6.1 soft-cancellation limits instead of panicking straight to the
// caller.
type lexer struct {
	scan     *scanner.Scanner
	next     token.Kind
	trivia   strings.Builder
	file     source.FileID
	tokens   int
	depth    int
	cfg      Config
	strText  string // set when next is STRING/RAWSTRING; text/scanner never sees these
	strStart int
}

// syntaxError is panicked by SyntaxError and recovered by the tolerant
// parser at a recovery point, never escaping to the caller of Parse.
type syntaxError string

func newLexer(text string, file source.FileID, cfg Config) *lexer {
	scan := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats,
	}
	scan.Init(strings.NewReader(text))
	scan.Error = func(*scanner.Scanner, string) {} // we report our own errors
	l := &lexer{scan: scan, file: file, cfg: cfg}
	l.advanceRaw()
	return l
}

func (l *lexer) peek() token.Kind { return l.next }

func (l *lexer) text() string {
	if l.next == token.STRING || l.next == token.RAWSTRING {
		return l.strText
	}
	return l.scan.TokenText()
}

func (l *lexer) span() source.Span {
	if l.next == token.STRING || l.next == token.RAWSTRING {
		return source.Span{File: l.file, Start: l.strStart, End: l.strStart + len(l.strText)}
	}
	// text/scanner reports the *end* position of the just-scanned token in
	// Pos(); offsets are reconstructed via the source map at diagnostic
	// render time, so here we only need a stable, monotonically increasing
	// marker — scanner.Position.Offset is exactly that.
	start := l.scan.Position.Offset
	end := start + len(l.scan.TokenText())
	return source.Span{File: l.file, Start: start, End: end}
}

// advanceRaw scans the next raw token (no trivia skipping), tracking the
// token-limit counter. Strings are intercepted and scanned by hand
// (scanString) rather than left to text/scanner's own string mode, because
// GraphQL's triple-quoted block strings have no equivalent in text/scanner's
// token set.
func (l *lexer) advanceRaw() {
	l.tokens++
	if l.cfg.TokenLimit > 0 && l.tokens > l.cfg.TokenLimit {
		panic(syntaxError("token limit reached"))
	}
	for r := l.scan.Peek(); r >= 0 && r < 64 && l.scan.Whitespace&(1<<uint(r)) != 0; r = l.scan.Peek() {
		l.scan.Next()
	}
	if l.scan.Peek() == '"' {
		l.scanString()
		return
	}
	l.next = l.scan.Scan()
}

// scanString recognizes both an ordinary `"..."` string and a triple-quoted
// `"""..."""` block string, since GraphQL's block strings have no analogue
// in text/scanner's built-in modes. It consumes runes directly off the
// scanner via Next/Peek (text/scanner explicitly supports mixing manual
// low-level scanning with Scan) and stores the raw (still-quoted) text for
// text()/span() to report.
func (l *lexer) scanString() {
	start := l.scan.Pos().Offset
	l.scan.Next() // consume opening quote
	if l.scan.Peek() == '"' {
		l.scan.Next()
		if l.scan.Peek() == '"' {
			l.scan.Next()
			l.scanBlockStringBody(start)
			return
		}
		l.next = token.STRING
		l.strText = `""`
		l.strStart = start
		return
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for {
		r := l.scan.Next()
		if r < 0 {
			l.syntaxError("unterminated string")
		}
		sb.WriteRune(r)
		if r == '\\' {
			sb.WriteRune(l.scan.Next())
			continue
		}
		if r == '"' {
			break
		}
	}
	l.next = token.STRING
	l.strText = sb.String()
	l.strStart = start
}

func (l *lexer) scanBlockStringBody(start int) {
	var sb strings.Builder
	sb.WriteString(`"""`)
	for {
		r := l.scan.Next()
		if r < 0 {
			l.syntaxError("unterminated block string")
		}
		if r == '\\' && l.scan.Peek() == '"' {
			// `\"""` is the block string's escape for a literal `"""`.
			sb.WriteRune(r)
			sb.WriteRune(l.scan.Next())
			continue
		}
		if r == '"' {
			if l.scan.Peek() != '"' {
				sb.WriteRune(r)
				continue
			}
			l.scan.Next()
			if l.scan.Peek() != '"' {
				sb.WriteString(`""`)
				continue
			}
			l.scan.Next()
			sb.WriteString(`"""`)
			break
		}
		sb.WriteRune(r)
	}
	l.next = token.RAWSTRING
	l.strText = sb.String()
	l.strStart = start
}

// skipWhitespace advances past commas and comments (both insignificant to
// the grammar, per the GraphQL spec). Comments are recorded as trivia;
// commas are dropped.
func (l *lexer) skipWhitespace() {
	l.trivia.Reset()
	for {
		l.advanceRaw()
		if l.next == ',' {
			continue
		}
		if l.next == '#' {
			l.skipComment()
			continue
		}
		break
	}
}

func (l *lexer) skipComment() {
	l.trivia.WriteRune('#')
	for {
		next := l.scan.Next()
		if next == '\r' || next == '\n' || next == scanner.EOF {
			break
		}
		l.trivia.WriteRune(next)
	}
	l.trivia.WriteRune('\n')
}

// advance asserts the current token is expected, then skips to the next
// significant token. On mismatch it raises a syntaxError rather than
// panicking the whole parse; the caller (parser) is responsible for
// recovering at a synchronization point.
func (l *lexer) advance(expected token.Kind) {
	if l.next != expected {
		l.unexpected(token.KindString(expected))
	}
	l.skipWhitespace()
}

func (l *lexer) advanceKeyword(keyword string) {
	if l.next != token.NAME || l.text() != keyword {
		l.unexpected("\"" + keyword + "\"")
	}
	l.skipWhitespace()
}

func (l *lexer) unexpected(expected string) {
	found := strings.TrimPrefix(l.text(), `"`)
	found = strings.TrimSuffix(found, `"`)
	l.syntaxError("expected " + expected + ", found " + found)
}

func (l *lexer) syntaxError(message string) {
	panic(syntaxError(message))
}

func (l *lexer) enterRecursion() {
	l.depth++
	if l.cfg.RecursionLimit >= 0 && l.depth > l.cfg.RecursionLimit {
		panic(syntaxError("recursion limit reached"))
	}
}

func (l *lexer) exitRecursion() {
	l.depth--
}
