package params

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// span marks one token as a half-open range over the reconstructed argument
// buffer. Spans are produced once per Parse and consumed by the driver.
type span struct{ start, end int }

// A word opening with a quote runs to the next quote, unconditionally and
// with no escape handling; text butted against the closing quote starts the
// next token. Any other word runs to the next space and may contain interior
// quotes. An unterminated quote runs to the end of the input.
var argLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Quoted", Pattern: `"[^"]*"?`},
	{Name: "Word", Pattern: `[^ "][^ ]*`},
	{Name: "whitespace", Pattern: ` +`},
})

var wsType = argLexer.Symbols()["whitespace"]

// joinArgs rebuilds argv into one buffer with a space after each element,
// rewriting every equals sign not preceded by a backslash into a space so
// --seed=3 tokenizes like --seed 3. A backslash-escaped equals survives
// verbatim, backslash included.
func joinArgs(argv []string) string {
	var b strings.Builder
	for _, arg := range argv {
		b.WriteString(arg)
		b.WriteByte(' ')
	}
	buf := []byte(b.String())
	for i, c := range buf {
		if c == '=' && (i == 0 || buf[i-1] != '\\') {
			buf[i] = ' '
		}
	}
	return string(buf)
}

// tokenize scans buf into ordered token spans. Quote characters delimiting a
// quoted token are excluded from its span.
func tokenize(buf string) ([]span, error) {
	lex, err := argLexer.LexString("", buf)
	if err != nil {
		return nil, err
	}
	var spans []span
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return spans, nil
		}
		if tok.Type == wsType {
			continue
		}
		start, end := tok.Pos.Offset, tok.Pos.Offset+len(tok.Value)
		if strings.HasPrefix(tok.Value, `"`) {
			start++
			if len(tok.Value) > 1 && strings.HasSuffix(tok.Value, `"`) {
				end--
			}
		}
		spans = append(spans, span{start, end})
	}
}
