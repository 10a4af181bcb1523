package syntax

import "github.com/hashicorp/go-multierror"

// newMultiError wraps a batch of per-token scan failures into a single
// error using go-multierror, the same aggregation style Nomad's config
// validation uses for reporting every problem found in one pass instead of
// just the first.
func newMultiError(errs []error) error {
	var result *multierror.Error
	for _, e := range errs {
		result = multierror.Append(result, e)
	}
	return result.ErrorOrNil()
}
