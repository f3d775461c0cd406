package ucapi

import (
	"context"
	"fmt"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
)

// PageFetcher is implemented by every resource client that can list a
// collection path with query parameters.
type PageFetcher[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)
}

// FetchPage fetches a single page of a listing. An empty continuation token
// fetches the first page. A returned page carrying a continuation token means
// at least one more page may exist; an absent token means the traversal is
// complete. Page fetches are not retried here beyond what the underlying
// request layer does; its errors surface unchanged.
func FetchPage[T any](ctx context.Context, client PageFetcher[T], path string, pageSize int, continuationToken string) (*ListResponse[T], error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}

	params := NewQueryParams().WithPageSize(pageSize)
	if continuationToken != "" {
		params.WithContinuationToken(continuationToken)
	}

	return client.ListWithPath(ctx, path, params)
}

// PaginationIterator walks a token-paginated listing as a lazy, single-pass
// sequence of items, in server order. It buffers only the current page and is
// not safe for concurrent use; give each traversal its own iterator or call
// Reset to start over.
type PaginationIterator[T any] struct {
	ctx       context.Context
	client    PageFetcher[T]
	path      string
	params    *QueryParams
	buffer    []T
	token     string
	started   bool
	exhausted bool
	err       error
}

// NewPaginationIterator creates an iterator over the listing at path. The
// query parameters are cloned and stay fixed for the iterator's lifetime; a
// continuation token present in params resumes the traversal from that page.
func NewPaginationIterator[T any](ctx context.Context, client PageFetcher[T], path string, params *QueryParams) *PaginationIterator[T] {
	cloned := params.Clone()
	token := cloned.ContinuationToken
	cloned.ContinuationToken = ""

	return &PaginationIterator[T]{
		ctx:    ctx,
		client: client,
		path:   path,
		params: cloned,
		token:  token,
	}
}

// HasNext reports whether another item is available, fetching pages as
// needed. A page with zero items but a continuation token does not end the
// traversal; the iterator keeps following tokens until one is absent.
func (it *PaginationIterator[T]) HasNext() bool {
	for {
		if it.err != nil || len(it.buffer) > 0 {
			return true
		}

		if it.exhausted {
			return false
		}

		it.fetch()
	}
}

// Next returns the next item in server order. A fetch error aborts the
// traversal at that point: the error is latched and every later call
// returns it again, so no page fetch is ever re-issued. Items already
// yielded remain valid; Reset clears the error and restarts from the
// first page.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		return zero, it.err
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All collects the remaining items across all pages.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping on the first error.
func (it *PaginationIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Reset restarts the traversal from the first page.
func (it *PaginationIterator[T]) Reset() {
	it.buffer = nil
	it.token = ""
	it.started = false
	it.exhausted = false
	it.err = nil
}

func (it *PaginationIterator[T]) fetch() {
	if it.params.PageSize < 0 {
		it.err = fmt.Errorf("%w: got %d", ErrInvalidPageSize, it.params.PageSize)
		it.exhausted = true

		return
	}

	params := it.params.Clone()
	params.ContinuationToken = it.token

	page, err := it.client.ListWithPath(it.ctx, it.path, params)
	if err != nil {
		it.err = err

		return
	}

	it.started = true
	it.buffer = append(it.buffer, page.Value...)
	it.token = page.ContinuationToken

	if it.token == "" {
		it.exhausted = true
	}
}

// PaginationOptions controls the bulk pagination helpers.
type PaginationOptions struct {
	// PageSize overrides the page size used for each fetch.
	PageSize int
	// MaxPages stops the traversal after this many pages; zero means no limit.
	MaxPages int
}

// DefaultPaginationOptions returns options with the default page size and no
// page limit.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: constants.DefaultPageSize,
	}
}

// FetchAllPages collects every item of a listing into one slice.
func FetchAllPages[T any](ctx context.Context, client PageFetcher[T], path string, params *QueryParams, options *PaginationOptions) ([]T, error) {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	query := params.Clone()
	if options.PageSize > 0 {
		query.PageSize = options.PageSize
	}

	if query.PageSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, query.PageSize)
	}

	var all []T

	token := query.ContinuationToken

	for page := 1; ; page++ {
		pageQuery := query.Clone()
		pageQuery.ContinuationToken = token

		resp, err := client.ListWithPath(ctx, path, pageQuery)
		if err != nil {
			return all, err
		}

		all = append(all, resp.Value...)

		token = resp.ContinuationToken
		if token == "" {
			break
		}

		if options.MaxPages > 0 && page >= options.MaxPages {
			break
		}
	}

	return all, nil
}

// PageResult carries one page of a streamed traversal.
type PageResult[T any] struct {
	Items             []T
	ContinuationToken string
	Err               error
}

// StreamPages sends each page of a listing on the returned channel, closing
// it when the traversal completes or fails. A failed fetch sends a final
// PageResult carrying the error.
func StreamPages[T any](ctx context.Context, client PageFetcher[T], path string, params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	query := params.Clone()
	if options.PageSize > 0 {
		query.PageSize = options.PageSize
	}

	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		token := query.ContinuationToken

		for page := 1; ; page++ {
			pageQuery := query.Clone()
			pageQuery.ContinuationToken = token

			resp, err := client.ListWithPath(ctx, path, pageQuery)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			result := PageResult[T]{
				Items:             resp.Value,
				ContinuationToken: resp.ContinuationToken,
			}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}

			token = resp.ContinuationToken
			if token == "" {
				return
			}

			if options.MaxPages > 0 && page >= options.MaxPages {
				return
			}
		}
	}()

	return results
}
