package bcalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

type TokenType int

const (
	TokenNumber TokenType = iota
	TokenOperator
	TokenLeftBracket
	TokenRightBracket
)

// Token is one lexical unit of an expression: a number, an operator
// (+, x, /) or a bracket.
type Token struct {
	Type  TokenType
	Value int64
	Op    byte
}

func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return strconv.FormatInt(t.Value, 10)
	case TokenOperator:
		return string(t.Op)
	case TokenLeftBracket:
		return "["
	case TokenRightBracket:
		return "]"
	}
	return "?"
}

// ParseNumber parses a signed 64-bit integer literal. A 0x prefix selects
// base 16, a 0b prefix base 2, anything else is decimal. The whole string
// after the prefix must be consumed.
func ParseNumber(s string) (int64, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseInt(rest, 16, 64)
	}
	if rest, ok := strings.CutPrefix(s, "0b"); ok {
		return strconv.ParseInt(rest, 2, 64)
	}
	return strconv.ParseInt(s, 10, 64)
}

// Tokenize converts one raw argument into a Token.
func Tokenize(raw string) (Token, error) {
	if n, err := ParseNumber(raw); err == nil {
		return Token{Type: TokenNumber, Value: n}, nil
	}
	if len(raw) == 1 && strings.ContainsAny(raw, "+x/") {
		return Token{Type: TokenOperator, Op: raw[0]}, nil
	}
	switch raw {
	case "[":
		return Token{Type: TokenLeftBracket}, nil
	case "]":
		return Token{Type: TokenRightBracket}, nil
	}
	return Token{}, fmt.Errorf("%w %q", ErrInvalidToken, raw)
}

// TokenizeArgs tokenizes a full argument list, stopping at the first
// invalid argument.
func TokenizeArgs(args []string) ([]Token, error) {
	tokens := make([]Token, 0, len(args))
	for _, arg := range args {
		tok, err := Tokenize(arg)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
