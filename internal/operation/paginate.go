package operation

import "context"

// PageFunc fetches the page addressed by token and returns it with the next token.
type PageFunc[R any] func(ctx context.Context, token *string) (R, *string, error)

// Paginate fetches pages starting at start and emits each one before fetching the next.
// It stops when the next token is absent or empty, after the first page when manual is set,
// or at the first fetch or emit error. Pages already emitted are not retracted.
func Paginate[R any](ctx context.Context, start *string, manual bool, fetch PageFunc[R], emit func(R) error) error {
	token := start
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, next, err := fetch(ctx, token)
		if err != nil {
			return err
		}

		if err := emit(page); err != nil {
			return err
		}

		if manual || !HasMore(next) {
			return nil
		}
		token = next
	}
}

// HasMore reports whether token points at another page.
func HasMore(token *string) bool {
	return token != nil && *token != ""
}
