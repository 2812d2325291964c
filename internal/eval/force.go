package eval

// Force drives a zero-parameter Closure (a thunk) to its weak-head
// normal form, evaluating its body in its captured environment. Other
// values pass through unchanged. A thunk's result is cached on first
// force (spec §9's update-on-force recommendation): re-forcing the same
// Closure — e.g. because it is shared between two call sites, as
// happens whenever a naive recursive function like `fib` is not
// memoized by the caller — returns the cached value instead of
// redoing the work. This changes performance, not semantics: spec §4.4
// never distinguishes a thunk by identity, only by the value it forces
// to.
func Force(v Value) (Value, error) {
	for {
		c, ok := v.(*Closure)
		if !ok || !c.IsThunk() {
			return v, nil
		}
		if c.forced {
			v = c.cached
			continue
		}
		result, err := EvalExpr(c.Env, c.Body)
		if err != nil {
			return nil, err
		}
		c.forced = true
		c.cached = result
		v = result
	}
}

// ForceDeep recursively forces v as deeply as spec §4.4's top-level
// "force_eval" describes: tuple elements, closures, and list spines are
// driven eagerly; an infinite list's tail is only as safe to force this
// way as the caller's patience allows (the spec calls diverging on an
// infinite top-level list a user error, not a bug to guard against).
func ForceDeep(v Value) (Value, error) {
	v, err := Force(v)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case *TupleValue:
		elems := make([]Value, len(v.Elems))
		for i, e := range v.Elems {
			fe, err := ForceDeep(e)
			if err != nil {
				return nil, err
			}
			elems[i] = fe
		}
		return &TupleValue{Elems: elems}, nil
	case *ConsValue:
		head, err := ForceDeep(v.Head)
		if err != nil {
			return nil, err
		}
		tail, err := ForceDeep(v.Tail)
		if err != nil {
			return nil, err
		}
		return &ConsValue{Head: head, Tail: tail}, nil
	default:
		return v, nil
	}
}
