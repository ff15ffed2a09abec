package shrimply

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	l, err := NewLexer("test.spl", []byte(src))
	require.NoError(t, err)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == TokEOF {
			return toks
		}
	}
}

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestLexerKeywordsAndPunctuation(t *testing.T) {
	toks := lexAll(t, "fn add(a, b) { return + a b; }")
	assert.Equal(t, []TokenType{
		TokFn, TokIdentifier, TokLParen, TokIdentifier, TokComma, TokIdentifier, TokRParen,
		TokLBrace, TokReturn, TokPlus, TokIdentifier, TokIdentifier, TokSemicolon, TokRBrace,
		TokEOF,
	}, tokenTypes(toks))
}

func TestLexerNegInfIsAKeywordNotMinusInf(t *testing.T) {
	toks := lexAll(t, "-inf")
	assert.Equal(t, []TokenType{TokNegInf, TokEOF}, tokenTypes(toks))
}

func TestLexerMinusFollowedByIdentifierIsNotNegInf(t *testing.T) {
	toks := lexAll(t, "-infinity")
	assert.Equal(t, []TokenType{TokMinus, TokIdentifier, TokEOF}, tokenTypes(toks))
}

func TestLexerBasedNumericLiterals(t *testing.T) {
	toks := lexAll(t, "0xFF 0b1010 0o17")
	require.Len(t, toks, 4)
	assert.Equal(t, TokHex, toks[0].Type)
	assert.Equal(t, "0xFF", toks[0].Span)
	assert.Equal(t, TokBin, toks[1].Type)
	assert.Equal(t, TokOct, toks[2].Type)
}

func TestLexerDecimalLiteralWithLeadingMinus(t *testing.T) {
	toks := lexAll(t, "-3.5")
	require.Len(t, toks, 2)
	assert.Equal(t, TokDecimal, toks[0].Type)
	assert.Equal(t, "-3.5", toks[0].Span)
}

func TestLexerStringEscapes(t *testing.T) {
	toks := lexAll(t, `"a\nb\"c"`)
	require.Len(t, toks, 2)
	s, err := Unescape(toks[0].Span)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\"c", s)
}

func TestLexerRejectsNonASCII(t *testing.T) {
	_, err := NewLexer("test.spl", []byte("x := \"caf\xc3\xa9\";"))
	assert.Error(t, err)
}

func TestLexerRejectsNullByteInString(t *testing.T) {
	l, err := NewLexer("test.spl", []byte(`"a\0b"`))
	require.NoError(t, err)
	_, err = l.Next()
	assert.Error(t, err)
}

func TestLexerEmitsExactlyOneEOF(t *testing.T) {
	l, err := NewLexer("test.spl", []byte(""))
	require.NoError(t, err)
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokEOF, tok.Type)
	_, err = l.Next()
	assert.Error(t, err)
}
