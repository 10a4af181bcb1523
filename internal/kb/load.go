// Package kb turns a list of raw FOL sentences into a ready-to-query
// knowledge base: deduplicate identical sentences, normalize each to CNF,
// standardize apart the variables of every resulting clause, and index
// the result.
package kb

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/kailashmaurya/folresolution/internal/clause"
	"github.com/kailashmaurya/folresolution/internal/cnf"
	"github.com/kailashmaurya/folresolution/internal/standardize"
)

// Load builds a base knowledge base from raw sentence strings. Sentences
// are deduplicated by exact string match before parsing. One Generator is
// shared across every clause produced so that variable names stay globally
// unique across the whole base KB. If logger is nil, a discarding logger
// is used.
func Load(sentences []string, logger hclog.Logger) (*clause.KnowledgeBase, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	log := logger.Named("kb")
	base := clause.NewKB()
	gen := standardize.NewGenerator()

	seen := make(map[string]struct{}, len(sentences))
	for _, s := range sentences {
		if _, dup := seen[s]; dup {
			log.Debug("dropping duplicate sentence", "sentence", s)
			continue
		}
		seen[s] = struct{}{}

		clauses, err := cnf.Normalize(s)
		if err != nil {
			return nil, errors.Wrapf(err, "normalizing sentence %q", s)
		}
		log.Debug("normalized sentence to CNF", "sentence", s, "clause_count", len(clauses))
		for _, c := range clauses {
			base.Add(standardize.Clause(gen, c))
		}
	}
	log.Info("knowledge base prepared", "clause_count", base.Len())
	return base, nil
}
