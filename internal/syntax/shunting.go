package syntax

import "github.com/pkg/errors"

// priority gives each operator its precedence for the shunting-yard
// algorithm, highest first: ~ > & > | > =>. All operators are treated as
// left-associative.
func priority(k TokenKind) int {
	switch k {
	case TokNot:
		return 4
	case TokAnd:
		return 3
	case TokOr:
		return 2
	case TokImplies:
		return 1
	}
	return 0
}

func isOperator(k TokenKind) bool {
	switch k {
	case TokNot, TokAnd, TokOr, TokImplies:
		return true
	}
	return false
}

// ToPostfix converts an infix token stream to postfix (reverse Polish)
// order using the classic shunting-yard algorithm: operands
// are emitted immediately, operators are pushed after popping any
// stack-top operator whose priority is >= the incoming one, and
// parentheses are handled by popping until the matching "(".
func ToPostfix(tokens []Token) ([]Token, error) {
	var output []Token
	var stack []Token
	for _, tok := range tokens {
		switch {
		case tok.Kind == TokLiteral:
			output = append(output, tok)
		case isOperator(tok.Kind):
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TokLParen {
					break
				}
				if priority(top.Kind) < priority(tok.Kind) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tok.Kind == TokLParen:
			stack = append(stack, tok)
		case tok.Kind == TokRParen:
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokLParen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, errors.New("unbalanced parentheses: unmatched ')'")
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokLParen {
			return nil, errors.New("unbalanced parentheses: unmatched '('")
		}
		output = append(output, top)
	}
	return output, nil
}

// FromPostfix builds the expression tree from a postfix token stream:
// a literal pushes a leaf node; "~" toggles the Negated
// marker on whatever is currently on top of the stack, be it a leaf or an
// already-combined subtree; a binary operator pops its two operands and
// pushes the resulting internal node.
func FromPostfix(tokens []Token) (*Node, error) {
	var stack []*Node
	for _, tok := range tokens {
		switch tok.Kind {
		case TokLiteral:
			stack = append(stack, Leaf(tok.Literal))
		case TokNot:
			if len(stack) == 0 {
				return nil, errors.New("'~' with no preceding operand")
			}
			top := stack[len(stack)-1]
			top.Negated = !top.Negated
		case TokAnd, TokOr, TokImplies:
			if len(stack) < 2 {
				return nil, errors.Errorf("operator %q missing operands", opSymbol(tok.Kind))
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, Binary(binOp(tok.Kind), left, right))
		default:
			return nil, errors.Errorf("unexpected token in postfix stream: %v", tok.Kind)
		}
	}
	if len(stack) != 1 {
		return nil, errors.Errorf("malformed formula: %d operands left after parse", len(stack))
	}
	return stack[0], nil
}

func binOp(k TokenKind) Op {
	switch k {
	case TokAnd:
		return OpAnd
	case TokOr:
		return OpOr
	case TokImplies:
		return OpImplies
	}
	return 0
}

func opSymbol(k TokenKind) string {
	switch k {
	case TokAnd:
		return "&"
	case TokOr:
		return "|"
	case TokImplies:
		return "=>"
	}
	return "?"
}

// Parse tokenizes, converts to postfix, and builds the expression tree for
// a single infix sentence in one call.
func Parse(sentence string) (*Node, error) {
	tokens, err := Tokenize(sentence)
	if err != nil {
		return nil, errors.Wrap(err, "tokenize")
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, errors.Wrap(err, "infix to postfix")
	}
	tree, err := FromPostfix(postfix)
	if err != nil {
		return nil, errors.Wrap(err, "build expression tree")
	}
	return tree, nil
}
