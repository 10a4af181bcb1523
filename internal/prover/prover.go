// Package prover implements the per-query driver: negate the query, add it
// to a fresh copy of the base knowledge base, run resolution, and report
// TRUE or FALSE.
package prover

import (
	"github.com/hashicorp/go-hclog"
	uuid "github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"

	"github.com/kailashmaurya/folresolution/internal/clause"
	"github.com/kailashmaurya/folresolution/internal/resolve"
	"github.com/kailashmaurya/folresolution/internal/syntax"
)

// Driver answers ground queries against an immutable base knowledge base.
// Each call to Prove works against its own cloned copy, so resolvents
// produced while proving one query never leak into another.
type Driver struct {
	base      *clause.KnowledgeBase
	killLimit int
	logger    hclog.Logger
}

// New returns a Driver over base, saturating each query's working copy up
// to killLimit clauses. If logger is nil, a discarding logger is used,
// matching hclog's own convention for an optional sub-logger.
func New(base *clause.KnowledgeBase, killLimit int, logger hclog.Logger) *Driver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Driver{base: base, killLimit: killLimit, logger: logger.Named("prover")}
}

// ParseQuery parses a single ground literal, optionally prefixed with "~".
func ParseQuery(text string) (clause.Literal, error) {
	tokens, err := syntax.Tokenize(text)
	if err != nil {
		return clause.Literal{}, errors.Wrapf(err, "tokenizing query %q", text)
	}
	negated := false
	i := 0
	if i < len(tokens) && tokens[i].Kind == syntax.TokNot {
		negated = true
		i++
	}
	if i >= len(tokens) || tokens[i].Kind != syntax.TokLiteral || i != len(tokens)-1 {
		return clause.Literal{}, errors.Errorf("query %q is not a single literal", text)
	}
	lit := tokens[i].Literal
	lit.Negated = lit.Negated != negated
	if !ground(lit) {
		return clause.Literal{}, errors.Errorf("query %q is not ground", text)
	}
	return lit, nil
}

func ground(lit clause.Literal) bool {
	for _, a := range lit.Args {
		if a.IsVariable() {
			return false
		}
	}
	return true
}

// Prove reports whether the base knowledge base entails query, by
// refutation: negate query, add it to a fresh working copy of the base KB,
// and saturate.
func (d *Driver) Prove(query clause.Literal) bool {
	id, err := uuid.GenerateUUID()
	if err != nil {
		id = "unavailable"
	}
	log := d.logger.With("query_id", id, "query", query.String())
	log.Info("proving query", "clause_count", d.base.Len())

	working := d.base.Clone()
	negated := clause.New([]clause.Literal{query.Negate()})
	working.Add(negated)

	result := resolve.Saturate(working, d.killLimit)
	log.Info("proof finished", "entailed", result, "final_clause_count", working.Len())
	return result
}
