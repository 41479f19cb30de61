package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotedStringEscapes(t *testing.T) {
	assert.Equal(t, `"hi"`, quotedString("hi"))
	assert.Equal(t, `"a\"b"`, quotedString(`a"b`))
	assert.Equal(t, `"a\\b"`, quotedString(`a\b`))
	assert.Equal(t, `"a\nb"`, quotedString("a\nb"))
	ctrl := string([]byte{1})
	assert.Equal(t, `"a\u0001b"`, quotedString("a"+ctrl+"b"))
}

func TestCanBlockStringRejectsCarriageReturn(t *testing.T) {
	assert.False(t, canBlockString("a\r\nb"))
}

func TestCanBlockStringRejectsLeadingBlankLine(t *testing.T) {
	assert.False(t, canBlockString("\nhello"))
}

func TestCanBlockStringRejectsTrailingBlankLine(t *testing.T) {
	assert.False(t, canBlockString("hello\n"))
}

func TestCanBlockStringRejectsCommonIndent(t *testing.T) {
	assert.False(t, canBlockString("a\n  b\n  c"))
}

func TestCanBlockStringAcceptsPlainMultiline(t *testing.T) {
	assert.True(t, canBlockString("a\nb\nc"))
}

func TestBlockStringEscapesTripleQuote(t *testing.T) {
	got := blockString(`has """ inside`, "")
	assert.Contains(t, got, `\"""`)
}

func TestFormatFloatAlwaysLooksLikeAFloat(t *testing.T) {
	assert.Equal(t, "1.0", formatFloat(1))
	assert.Equal(t, "1.5", formatFloat(1.5))
}
