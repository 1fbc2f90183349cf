// Package operation runs one service API operation the same way for every command: it
// snapshots the bound request, resolves the output projection, issues the call (following
// continuation tokens for list operations) and translates transport failures.
package operation

import (
	"context"
	"io"
	"log/slog"
	"reflect"
)

// Operation describes a single service API operation. C is the client the call is issued
// against, In and Out are the SDK request and response types.
type Operation[C, In, Out any] struct {
	// Name is the API operation name, e.g. "ListConnections".
	Name string

	// Required lists request fields that must be set. A missing field produces a warning,
	// the request is still sent.
	Required []string

	// Call issues the request.
	Call func(ctx context.Context, client C, in *In) (*Out, error)

	// Default is used when no select expression is given. Nil means the whole response.
	Default Projection[In, Out]

	// Paging is set for list operations that take a continuation token.
	Paging *Paging[In, Out]
}

// Paging wires the continuation token of a list operation.
type Paging[In, Out any] struct {
	SetToken  func(in *In, token *string)
	NextToken func(out *Out) *string
}

// Options carries the caller's choices for one invocation.
type Options struct {
	// Select is the projection expression ("", "*", "^Param" or a field path).
	Select string

	// NextToken is an explicit starting token. Supplying one switches to manual paging.
	NextToken *string

	// NoPaginate fetches a single page even when more results exist.
	NoPaginate bool

	Logger *slog.Logger
}

// Invocation is the per-call context: the request snapshot and the resolved projection.
// It is not modified after Build.
type Invocation[In, Out any] struct {
	input   In
	project Projection[In, Out]
	echo    bool
	start   *string
	manual  bool
	logger  *slog.Logger
}

// Input returns a copy of the request snapshot.
func (inv *Invocation[In, Out]) Input() In {
	return inv.input
}

// Manual reports whether the caller controls paging.
func (inv *Invocation[In, Out]) Manual() bool {
	return inv.manual
}

// Build snapshots in and resolves the projection for one invocation.
func (op Operation[C, In, Out]) Build(in *In, opts Options) (*Invocation[In, Out], error) {
	if in == nil {
		in = new(In)
	}

	project, err := ParseSelect(opts.Select, op.Default)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, name := range missingFields(in, op.Required) {
		logger.Warn("required parameter is not set, the service is expected to reject the request",
			"operation", op.Name,
			"parameter", name)
	}

	inv := &Invocation[In, Out]{
		input:   *in,
		project: project,
		echo:    IsParamEcho(opts.Select),
		logger:  logger,
	}
	if op.Paging != nil {
		inv.start = opts.NextToken
		inv.manual = opts.NextToken != nil || opts.NoPaginate
	}

	return inv, nil
}

// exchange pairs the request actually sent with its response.
type exchange[In, Out any] struct {
	in  *In
	out *Out
}

// Invoke issues the operation and passes every projected result to emit as soon as it is
// available. List operations fetch page after page until the continuation token runs out,
// unless the invocation is in manual paging mode.
func (op Operation[C, In, Out]) Invoke(ctx context.Context, client C, inv *Invocation[In, Out], emit func(any) error) error {
	send := func(x exchange[In, Out]) error {
		v := inv.project(x.in, x.out)
		if isNil(v) {
			return nil
		}
		return emit(v)
	}

	if inv.echo {
		return op.invokeEcho(ctx, client, inv, send)
	}

	if op.Paging == nil {
		in := inv.input
		out, err := op.Call(ctx, client, &in)
		if err != nil {
			return Translate(op.Name, err)
		}
		return send(exchange[In, Out]{in: &in, out: out})
	}

	var (
		pages int
		last  *string
	)
	fetch := func(ctx context.Context, token *string) (exchange[In, Out], *string, error) {
		in := inv.input
		op.Paging.SetToken(&in, token)

		out, err := op.Call(ctx, client, &in)
		if err != nil {
			return exchange[In, Out]{}, nil, Translate(op.Name, err)
		}

		pages++
		last = op.Paging.NextToken(out)
		inv.logger.Debug("fetched page", "operation", op.Name, "page", pages, "more", HasMore(last))

		return exchange[In, Out]{in: &in, out: out}, last, nil
	}

	if err := Paginate(ctx, inv.start, inv.manual, fetch, send); err != nil {
		return err
	}

	if inv.manual && HasMore(last) {
		inv.logger.Info("more results are available", "operation", op.Name, "next_token", *last)
	}

	return nil
}

// invokeEcho issues a single request and emits the echoed parameter once. The echo reads the
// caller's request, never a per-page copy carrying a token the service returned.
func (op Operation[C, In, Out]) invokeEcho(ctx context.Context, client C, inv *Invocation[In, Out], send func(exchange[In, Out]) error) error {
	in := inv.input
	if op.Paging != nil && inv.start != nil {
		op.Paging.SetToken(&in, inv.start)
	}
	caller := in

	out, err := op.Call(ctx, client, &in)
	if err != nil {
		return Translate(op.Name, err)
	}
	return send(exchange[In, Out]{in: &caller, out: out})
}

// isNil reports whether v carries no value worth emitting.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
