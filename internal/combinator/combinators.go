package combinator

// Pair2 is the product of two parser values, returned by Pair.
type Pair2[A, B any] struct {
	First  A
	Second B
}

// Pair sequences two parsers: both must succeed, in order, for the whole
// thing to succeed. Yields both values; see Left/Right to keep only one.
func Pair[A, B any](a Parser[A], b Parser[B]) Parser[Pair2[A, B]] {
	return func(state State) (Result[Pair2[A, B]], error) {
		ra, err := a(state)
		if err != nil {
			return fail[Pair2[A, B]](state, ra.State.LastErr)
		}
		rb, err := b(ra.State)
		if err != nil {
			return fail[Pair2[A, B]](state, rb.State.LastErr)
		}
		return succeed(rb.State.Remaining, Pair2[A, B]{First: ra.Value, Second: rb.Value})
	}
}

// Left runs a then b and keeps only a's value, discarding b's.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Pair(a, b), func(p Pair2[A, B]) A { return p.First })
}

// Right runs a then b and keeps only b's value, discarding a's.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Pair(a, b), func(p Pair2[A, B]) B { return p.Second })
}

// Either tries a first; if a fails (non-fatally), tries b against the
// original, untouched input. Restores the input on a's failure so b sees
// exactly what a saw.
func Either[T any](a, b Parser[T]) Parser[T] {
	return func(state State) (Result[T], error) {
		ra, err := a(state)
		if err == nil {
			return ra, nil
		}
		rb, err := b(state)
		if err != nil {
			return fail[T](state, rb.State.LastErr)
		}
		return rb, nil
	}
}

// Alternative tries each parser in order against the original input and
// returns the first success. If every parser fails, the deepest-advanced
// (shortest remaining input) failure is reported, since it usually names
// the branch that got furthest before giving up.
func Alternative[T any](parsers ...Parser[T]) Parser[T] {
	return func(state State) (Result[T], error) {
		var deepest *Error
		for _, p := range parsers {
			r, err := p(state)
			if err == nil {
				return r, nil
			}
			if deepest == nil || len(r.State.LastErr.Input) < len(deepest.Input) {
				deepest = r.State.LastErr
			}
		}
		return fail[T](state, deepest)
	}
}

// Map transforms a successful parse's value with f; failures pass through.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(state State) (Result[B], error) {
		ra, err := p(state)
		if err != nil {
			return fail[B](state, ra.State.LastErr)
		}
		return succeed(ra.State.Remaining, f(ra.Value))
	}
}

// MapErr rewrites the error of a failed parse; successes pass through.
func MapErr[T any](p Parser[T], f func(*Error) *Error) Parser[T] {
	return func(state State) (Result[T], error) {
		r, err := p(state)
		if err == nil {
			return r, nil
		}
		return fail[T](state, f(r.State.LastErr))
	}
}

// Pred rejects a successful parse whose value fails pred, restoring the
// original input so a sibling alternative can still try it.
func Pred[T any](p Parser[T], pred func(T) bool, kind ErrorKind) Parser[T] {
	return func(state State) (Result[T], error) {
		r, err := p(state)
		if err != nil {
			return fail[T](state, r.State.LastErr)
		}
		if !pred(r.Value) {
			return fail[T](state, &Error{Input: state.Remaining, Kind: kind})
		}
		return r, nil
	}
}

// AndThen runs p, then uses its value to build the next parser to run.
// This is how the grammar threads context-dependent choices (e.g. "this
// identifier was 'fn', so now parse a function literal").
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(state State) (Result[B], error) {
		ra, err := p(state)
		if err != nil {
			return fail[B](state, ra.State.LastErr)
		}
		return f(ra.Value)(ra.State)
	}
}

// ZeroOrMore applies p greedily and always succeeds, possibly with an
// empty slice. A p that fails with no progress does not loop forever: we
// stop at the first failure after zero or more successes.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(state State) (Result[[]T], error) {
		values := make([]T, 0)
		cur := state
		for {
			r, err := p(cur)
			if err != nil {
				return succeed(cur.Remaining, values)
			}
			values = append(values, r.Value)
			cur = r.State
		}
	}
}

// OneOrMore applies p greedily, failing iff the very first application
// fails. Otherwise behaves like ZeroOrMore.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(state State) (Result[[]T], error) {
		first, err := p(state)
		if err != nil {
			return fail[[]T](state, first.State.LastErr)
		}
		rest, _ := ZeroOrMore(p)(first.State)
		values := append([]T{first.Value}, rest.Value...)
		return succeed(rest.State.Remaining, values)
	}
}

// Trim accepts optional leading and trailing whitespace around p.
func Trim[T any](p Parser[T]) Parser[T] {
	return Right(Whitespace0(), Left(p, Whitespace0()))
}
