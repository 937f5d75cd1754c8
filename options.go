package gridsight

// QueryOption configures a visibility query.
// Use functional options to adjust the default obstruction rules.
//
// Example:
//
//	// Default: the target's own cell never hides the target
//	v := gridsight.Visible(guard, intruder, 100, walls)
//
//	// Strict: an occupied target cell counts as an obstruction
//	v := gridsight.Visible(guard, intruder, 100, walls, gridsight.WithTargetBlocking())
type QueryOption func(*queryOptions)

// queryOptions holds optional configuration for a query.
type queryOptions struct {
	targetBlocks bool
}

// defaultQueryOptions returns the default query options.
func defaultQueryOptions() queryOptions {
	return queryOptions{
		targetBlocks: false,
	}
}

func applyQueryOptions(opts []QueryOption) queryOptions {
	o := defaultQueryOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithTargetBlocking makes an occupied target cell obstruct its own sight
// line. By default the target's cell is never checked, since whatever
// stands there occupies it.
func WithTargetBlocking() QueryOption {
	return func(o *queryOptions) {
		o.targetBlocks = true
	}
}
