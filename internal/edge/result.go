package edge

import (
	"context"

	"github.com/mdouchement/topbrands/pkg/libcatalog"
)

// A Result is the outcome of a catalog call: either items or an error.
type Result struct {
	Items []libcatalog.Item
	Err   error
}

// Success returns a successful Result.
func Success(items []libcatalog.Item) Result {
	return Result{Items: items}
}

// Failure returns a failed Result.
func Failure(err error) Result {
	return Result{Err: err}
}

// Failed returns true when the call did not succeed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Fetch reads the items from the catalog.
func Fetch(ctx context.Context, client libcatalog.Client) Result {
	items, err := client.ReadItems(ctx)
	if err != nil {
		return Failure(err)
	}
	return Success(items)
}
