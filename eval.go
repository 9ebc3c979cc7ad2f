package bcalc

import (
	"errors"

	"github.com/ahrtr/gocontainer/stack"
)

var (
	ErrUnbalancedBrackets    = errors.New("unbalanced brackets")
	ErrUnmatchedRightBracket = errors.New("unmatched right bracket")
	ErrMissingOperand        = errors.New("missing operand")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrEmptyExpression       = errors.New("empty expression")
	ErrMalformedExpression   = errors.New("malformed expression")
	ErrTooDeep               = errors.New("expression too deeply nested")
)

// precedence ranks operators; a pending operator is reduced before an
// incoming one of lower or equal rank.
var precedence = map[byte]int{
	'+': 1,
	'x': 2,
	'/': 2,
}

// maxBracketDepth bounds recursion on user-controlled input.
const maxBracketDepth = 64

// Evaluate reduces a token sequence to a single value. Multiplication and
// division bind tighter than addition; bracketed groups are evaluated
// recursively; equal ranks resolve left to right.
func Evaluate(tokens []Token) (int64, error) {
	return evaluate(tokens, 0)
}

func evaluate(tokens []Token, depth int) (int64, error) {
	if depth > maxBracketDepth {
		return 0, ErrTooDeep
	}
	values := stack.New()
	operators := stack.New()

	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i]; tok.Type {
		case TokenNumber:
			values.Push(tok.Value)
		case TokenOperator:
			for !operators.IsEmpty() && precedence[operators.Peek().(byte)] >= precedence[tok.Op] {
				if err := reduce(values, operators); err != nil {
					return 0, err
				}
			}
			operators.Push(tok.Op)
		case TokenLeftBracket:
			j, err := matchBracket(tokens, i)
			if err != nil {
				return 0, err
			}
			sub, err := evaluate(tokens[i+1:j], depth+1)
			if err != nil {
				return 0, err
			}
			values.Push(sub)
			i = j
		case TokenRightBracket:
			return 0, ErrUnmatchedRightBracket
		}
	}

	for !operators.IsEmpty() {
		if err := reduce(values, operators); err != nil {
			return 0, err
		}
	}

	switch values.Size() {
	case 0:
		return 0, ErrEmptyExpression
	case 1:
		return values.Pop().(int64), nil
	}
	return 0, ErrMalformedExpression
}

// matchBracket returns the index of the right bracket matching the left
// bracket at open, counting nesting depth.
func matchBracket(tokens []Token, open int) (int, error) {
	depth := 0
	for j := open; j < len(tokens); j++ {
		switch tokens[j].Type {
		case TokenLeftBracket:
			depth++
		case TokenRightBracket:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, ErrUnbalancedBrackets
}

// reduce pops one operator and its two operands (right first) and pushes
// the result back.
func reduce(values, operators stack.Interface) error {
	op := operators.Pop().(byte)
	right, err := popValue(values)
	if err != nil {
		return err
	}
	left, err := popValue(values)
	if err != nil {
		return err
	}
	result, err := apply(op, left, right)
	if err != nil {
		return err
	}
	values.Push(result)
	return nil
}

func popValue(values stack.Interface) (int64, error) {
	if values.IsEmpty() {
		return 0, ErrMissingOperand
	}
	return values.Pop().(int64), nil
}

func apply(op byte, left, right int64) (int64, error) {
	switch op {
	case '+':
		return left + right, nil
	case 'x':
		return left * right, nil
	case '/':
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	}
	return 0, ErrMalformedExpression
}
