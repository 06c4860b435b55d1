package lang

import (
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"
)

// evalExpr reduces one postfix token sequence to a single value using an
// explicit operand stack, left to right in a single pass:
//
//   - literal tokens push their value
//   - names push the constant they reference
//   - "+ - * /" pop two operands (right first) and push the result
//   - "sqrt" and "len" pop one operand and push the result
//
// After all tokens are consumed the stack must hold exactly one value.
func (s *Session) evalExpr(expr *ExprNode) (Value, error) {
	stack := make([]Value, 0, len(expr.Tokens))

	for _, tok := range expr.Tokens {
		switch tok.Kind {
		case TokenNumber, TokenString, TokenBool:
			v, err := literalValue(tok)
			if err != nil {
				return Value{}, err
			}

			stack = append(stack, v)

		case TokenName:
			v, lerr := s.lookup(tok.Lit)
			if lerr != nil {
				return Value{}, lerr.WithPosition(tok.Pos)
			}

			stack = append(stack, v)

		case TokenOperator:
			var err *Error

			stack, err = applyOperator(tok.Lit, stack)
			if err != nil {
				return Value{}, err.WithPosition(tok.Pos)
			}

		default:
			return Value{}, ErrSyntax.WithPosition(tok.Pos).
				With(slog.String("unexpected", tok.Kind.String()))
		}
	}

	if len(stack) != 1 {
		return Value{}, ErrMalformedExpression.WithPosition(expr.pos).
			With(slog.Int("stack_size", len(stack)))
	}

	return stack[0], nil
}

// applyOperator pops the operator's operands off the stack and pushes the
// result. Binary operators pop b (most recent) then a.
func applyOperator(op string, stack []Value) ([]Value, *Error) {
	switch op {
	case "+", "-", "*", "/":
		if len(stack) < 2 {
			return stack, ErrInsufficientOperands.With(
				slog.String("operator", op),
				slog.Int("stack_size", len(stack)),
			)
		}

		b := stack[len(stack)-1]
		a := stack[len(stack)-2]

		v, err := applyBinary(op, a, b)
		if err != nil {
			return stack, err
		}

		return append(stack[:len(stack)-2], v), nil

	default: // sqrt, len
		if len(stack) < 1 {
			return stack, ErrInsufficientOperands.With(
				slog.String("operator", op),
				slog.Int("stack_size", len(stack)),
			)
		}

		a := stack[len(stack)-1]

		v, err := applyUnary(op, a)
		if err != nil {
			return stack, err
		}

		return append(stack[:len(stack)-1], v), nil
	}
}

func applyBinary(op string, a, b Value) (Value, *Error) {
	switch op {
	case "+":
		// A string operand on either side turns addition into
		// concatenation of the operands' textual forms.
		if a.Kind() == KindString || b.Kind() == KindString {
			return StringValue(a.Text() + b.Text()), nil
		}

		if a.isNumeric() && b.isNumeric() {
			if a.Kind() == KindInt && b.Kind() == KindInt {
				return IntValue(a.Int() + b.Int()), nil
			}

			return FloatValue(a.asFloat() + b.asFloat()), nil
		}

	case "-":
		if a.isNumeric() && b.isNumeric() {
			if a.Kind() == KindInt && b.Kind() == KindInt {
				return IntValue(a.Int() - b.Int()), nil
			}

			return FloatValue(a.asFloat() - b.asFloat()), nil
		}

	case "*":
		// A string and an integer repeat the string, regardless of
		// operand order. A negative count yields the empty string.
		if a.Kind() == KindString && b.Kind() == KindInt {
			return StringValue(repeat(a.Str(), b.Int())), nil
		}

		if a.Kind() == KindInt && b.Kind() == KindString {
			return StringValue(repeat(b.Str(), a.Int())), nil
		}

		if a.isNumeric() && b.isNumeric() {
			if a.Kind() == KindInt && b.Kind() == KindInt {
				return IntValue(a.Int() * b.Int()), nil
			}

			return FloatValue(a.asFloat() * b.asFloat()), nil
		}

	case "/":
		if a.isNumeric() && b.isNumeric() {
			if b.asFloat() == 0 {
				return Value{}, ErrDivisionByZero
			}

			// Division always yields a true quotient, even for
			// exact integer divisors.
			return FloatValue(a.asFloat() / b.asFloat()), nil
		}
	}

	return Value{}, ErrUnsupportedOperandType.With(
		slog.String("operator", op),
		slog.String("left", a.Kind().String()),
		slog.String("right", b.Kind().String()),
	)
}

func applyUnary(op string, a Value) (Value, *Error) {
	switch op {
	case "sqrt":
		if !a.isNumeric() {
			return Value{}, ErrUnsupportedOperandType.With(
				slog.String("operator", op),
				slog.String("operand", a.Kind().String()),
			)
		}

		f := a.asFloat()
		if f < 0 {
			return Value{}, ErrNegativeOperand.With(
				slog.Float64("operand", f))
		}

		return FloatValue(math.Sqrt(f)), nil

	case "len":
		switch a.Kind() {
		case KindString:
			return IntValue(int64(utf8.RuneCountInString(a.Str()))), nil
		case KindArray:
			return IntValue(int64(len(a.Array()))), nil
		case KindMap:
			return IntValue(int64(a.Map().Len())), nil
		}

		return Value{}, ErrUnsupportedLenTarget.With(
			slog.String("kind", a.Kind().String()))
	}

	return Value{}, ErrUnsupportedOperandType.With(
		slog.String("operator", op))
}

// repeat builds n copies of s, clamping negative counts to zero.
func repeat(s string, n int64) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(s, int(n))
}
