package nfa

import "github.com/coregx/rexfsm/tree"

// Fragment is a not-yet-complete NFA piece exposing one start state and
// the set of states pending an accept wire-up, per spec.md §3/§9.
type Fragment struct {
	Start   StateID
	Accepts []StateID
}

// Builder assembles an NFA via Thompson's construction. Its state-id
// counter is a field, not a package-level variable, so that two Builders
// used concurrently (e.g. by pipeline.Run calls fanned out across
// batch.RunAll's worker pool) never share or race on state identity.
type Builder struct {
	states []State
	nextID StateID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// newState allocates a fresh state with a dense, monotonically increasing
// id and appends it to the arena.
func (b *Builder) newState() StateID {
	id := b.nextID
	b.nextID++
	b.states = append(b.states, State{id: id, trans: make(map[string][]StateID)})
	return id
}

// AddLiteral allocates the two-state fragment for a single-symbol move:
// start --symbol--> accept.
func (b *Builder) AddLiteral(symbol string) (start, accept StateID) {
	start = b.newState()
	accept = b.newState()
	b.LinkSymbol(start, symbol, accept)
	return start, accept
}

// AddEpsilon allocates the two-state fragment for the empty string:
// start --ε--> accept.
func (b *Builder) AddEpsilon() (start, accept StateID) {
	start = b.newState()
	accept = b.newState()
	b.Link(start, accept)
	return start, accept
}

// NewState allocates a bare state with no transitions yet, for operators
// (Union, Star) that need fresh split/join points.
func (b *Builder) NewState() StateID {
	return b.newState()
}

// Link adds an epsilon-edge from -> to.
func (b *Builder) Link(from, to StateID) {
	b.states[from].eps = append(b.states[from].eps, to)
}

// LinkSymbol adds a labeled edge from --symbol--> to. symbol must never be
// the empty string; use Link for epsilon-edges.
func (b *Builder) LinkSymbol(from StateID, symbol string, to StateID) {
	b.states[from].trans[symbol] = append(b.states[from].trans[symbol], to)
}

// Build compiles root into a complete NFA: the Thompson recursion in
// buildNode produces a Fragment with a single start and a set of pending
// accepts, which Build then wires into one final accept state (every
// construction rule in buildNode already yields exactly one accept, so
// this wiring is a defensive normalization, not a workaround for a real
// multi-accept case).
func (b *Builder) Build(root tree.Node) (*NFA, error) {
	frag, err := b.buildNode(root)
	if err != nil {
		return nil, err
	}

	final := frag.Accepts[0]
	if len(frag.Accepts) > 1 {
		final = b.newState()
		for _, acc := range frag.Accepts {
			b.Link(acc, final)
		}
	}

	return &NFA{states: b.states, start: frag.Start, accept: final}, nil
}

// buildNode implements the recursive cases of spec.md §4.5. Plus and
// Question tree nodes are never produced by tree.Build (token.Tokenize
// expands A+/A? away before Shunting-Yard runs), so encountering one here
// — or any other node kind this switch does not know about — is reported
// as ErrUnsupportedOperator rather than silently guessed at.
func (b *Builder) buildNode(n tree.Node) (Fragment, error) {
	switch node := n.(type) {
	case *tree.Leaf:
		switch node.Kind() {
		case tree.KindLiteral:
			s, a := b.AddLiteral(node.Literal)
			return Fragment{Start: s, Accepts: []StateID{a}}, nil
		case tree.KindEpsilon:
			s, a := b.AddEpsilon()
			return Fragment{Start: s, Accepts: []StateID{a}}, nil
		default:
			return Fragment{}, &BuildError{NodeKind: node.Kind(), Err: ErrUnsupportedOperator}
		}

	case *tree.Unary:
		if node.Kind() != tree.KindStar {
			return Fragment{}, &BuildError{NodeKind: node.Kind(), Err: ErrUnsupportedOperator}
		}
		child, err := b.buildNode(node.Child)
		if err != nil {
			return Fragment{}, err
		}
		start := b.newState()
		final := b.newState()
		b.Link(start, child.Start)
		b.Link(start, final)
		for _, acc := range child.Accepts {
			b.Link(acc, child.Start)
			b.Link(acc, final)
		}
		return Fragment{Start: start, Accepts: []StateID{final}}, nil

	case *tree.Binary:
		switch node.Kind() {
		case tree.KindConcat:
			left, err := b.buildNode(node.Left)
			if err != nil {
				return Fragment{}, err
			}
			right, err := b.buildNode(node.Right)
			if err != nil {
				return Fragment{}, err
			}
			for _, acc := range left.Accepts {
				b.Link(acc, right.Start)
			}
			return Fragment{Start: left.Start, Accepts: right.Accepts}, nil

		case tree.KindUnion:
			left, err := b.buildNode(node.Left)
			if err != nil {
				return Fragment{}, err
			}
			right, err := b.buildNode(node.Right)
			if err != nil {
				return Fragment{}, err
			}
			start := b.newState()
			final := b.newState()
			b.Link(start, left.Start)
			b.Link(start, right.Start)
			for _, acc := range left.Accepts {
				b.Link(acc, final)
			}
			for _, acc := range right.Accepts {
				b.Link(acc, final)
			}
			return Fragment{Start: start, Accepts: []StateID{final}}, nil

		default:
			return Fragment{}, &BuildError{NodeKind: node.Kind(), Err: ErrUnsupportedOperator}
		}

	default:
		return Fragment{}, &BuildError{Err: ErrUnsupportedOperator}
	}
}
