package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeAliases(t *testing.T) {
	cases := []struct {
		input string
		want  TokenType
	}{
		{"~", OpNot}, {"!", OpNot}, {"NOT", OpNot}, {"not", OpNot},
		{"&&", OpAnd}, {"&", OpAnd}, {"/\\", OpAnd}, {"AND", OpAnd},
		{"||", OpOr}, {"|", OpOr}, {"\\/", OpOr}, {"or", OpOr},
		{"⊻", OpXor}, {"XOR", OpXor},
		{"->", OpImplies}, {"IMP", OpImplies},
		{"<->", OpIff}, {"≡", OpIff}, {"EQ", OpIff},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.input)
		require.NoError(t, err, c.input)
		require.Len(t, toks, 2, c.input) // operator + EOF
		require.Equal(t, c.want, toks[0].Type, c.input)
	}
}

func TestTokenizeIdentifier(t *testing.T) {
	toks, err := Tokenize("p_1 Q2")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, IDENT, toks[0].Type)
	require.Equal(t, "p_1", toks[0].Value)
	require.Equal(t, IDENT, toks[1].Type)
	require.Equal(t, "Q2", toks[1].Value)
}

func TestTokenizeParens(t *testing.T) {
	toks, err := Tokenize("(P)")
	require.NoError(t, err)
	require.Equal(t, []TokenType{LPAREN, IDENT, RPAREN, EOF}, []TokenType{toks[0].Type, toks[1].Type, toks[2].Type, toks[3].Type})
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := Tokenize("P % Q")
	require.Error(t, err)
}

func TestTokenizeWhitespaceSkipped(t *testing.T) {
	toks, err := Tokenize("  P  \n\t ∧ Q ")
	require.NoError(t, err)
	require.Equal(t, []TokenType{IDENT, OpAnd, IDENT, EOF}, []TokenType{toks[0].Type, toks[1].Type, toks[2].Type, toks[3].Type})
}
