package syntax

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/kailashmaurya/folresolution/internal/clause"
	"github.com/kailashmaurya/folresolution/internal/term"
)

// TokenKind distinguishes the token classes the scanner recognizes.
type TokenKind int

const (
	TokLiteral TokenKind = iota
	TokNot
	TokAnd
	TokOr
	TokImplies
	TokLParen
	TokRParen
)

// Token is one lexical unit of a sentence. For TokLiteral it also carries
// the parsed predicate literal.
type Token struct {
	Kind    TokenKind
	Literal clause.Literal
}

// Tokenize scans a whitespace-stripped infix sentence into a token stream.
// Predicate literals are parsed directly out of the surface syntax here
// rather than through any intermediate encoding, so no per-sentence
// encode/decode table is ever needed.
func Tokenize(sentence string) ([]Token, error) {
	s := strip(sentence)
	var tokens []Token
	var errs *multiErrList
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '~':
			tokens = append(tokens, Token{Kind: TokNot})
			i++
		case c == '&':
			tokens = append(tokens, Token{Kind: TokAnd})
			i++
		case c == '|':
			tokens = append(tokens, Token{Kind: TokOr})
			i++
		case c == '(':
			tokens = append(tokens, Token{Kind: TokLParen})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: TokRParen})
			i++
		case c == '=':
			if i+1 < len(s) && s[i+1] == '>' {
				tokens = append(tokens, Token{Kind: TokImplies})
				i += 2
				continue
			}
			errs = errs.append(errors.Errorf("malformed operator at %q", s[i:]))
			i++
		case isUpper(c):
			lit, n, err := scanLiteral(s[i:])
			if err != nil {
				errs = errs.append(errors.Wrapf(err, "scanning literal at %q", s[i:]))
				i++
				continue
			}
			tokens = append(tokens, Token{Kind: TokLiteral, Literal: lit})
			i += n
		default:
			errs = errs.append(errors.Errorf("unexpected character %q in sentence %q", c, sentence))
			i++
		}
	}
	if err := errs.errorOrNil(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// scanLiteral parses a single predicate literal "Name(arg,arg,...)" at the
// start of s, returning the parsed literal and the number of bytes it
// consumed.
func scanLiteral(s string) (clause.Literal, int, error) {
	j := 1
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	name := s[:j]
	if j >= len(s) || s[j] != '(' {
		return clause.Literal{}, 0, errors.Errorf("predicate %q not followed by '('", name)
	}
	closeIdx := strings.IndexByte(s[j:], ')')
	if closeIdx < 0 {
		return clause.Literal{}, 0, errors.Errorf("predicate %q missing closing ')'", name)
	}
	closeIdx += j
	argsStr := s[j+1 : closeIdx]
	if argsStr == "" {
		return clause.Literal{}, 0, errors.Errorf("predicate %q has no arguments", name)
	}
	rawArgs := strings.Split(argsStr, ",")
	args := make([]term.Term, 0, len(rawArgs))
	for _, a := range rawArgs {
		if a == "" || !isAllLetters(a) {
			return clause.Literal{}, 0, errors.Errorf("predicate %q has malformed argument %q", name, a)
		}
		args = append(args, term.New(a))
	}
	return clause.NewLiteral(name, false, args), closeIdx + 1, nil
}

func strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
func isAllLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

// multiErrList accumulates malformed-token problems found while scanning a
// single sentence so the caller can report every problem at once instead of
// stopping at the first, matching SPEC_FULL.md's ambient error-handling
// section. A nil *multiErrList is a valid empty accumulator.
type multiErrList struct {
	errs []error
}

func (m *multiErrList) append(err error) *multiErrList {
	if m == nil {
		m = &multiErrList{}
	}
	m.errs = append(m.errs, err)
	return m
}

func (m *multiErrList) errorOrNil() error {
	if m == nil || len(m.errs) == 0 {
		return nil
	}
	return newMultiError(m.errs)
}
