package filter

// Sink receives the recomputed visibility after every change.
type Sink func(Visibility)

type options struct {
	match Matcher
	sink  Sink
	state State
}

// Option configures an Engine.
type Option func(*options)

// WithMatcher overrides the tag matcher. The default is ExactMatch.
func WithMatcher(m Matcher) Option {
	return func(o *options) {
		if m != nil {
			o.match = m
		}
	}
}

// WithSink registers a callback invoked with every recomputed visibility set.
func WithSink(s Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithState restores a previously stored selection without notifying the sink.
func WithState(st State) Option {
	return func(o *options) { o.state = st }
}

// Engine owns the single active category and query of one catalog group.
type Engine[T Item] struct {
	items []T
	mode  Mode
	match Matcher
	sink  Sink
	state State
	vis   Visibility
}

// New builds an engine over items. The initial selection is All with no query unless
// WithState says otherwise.
func New[T Item](items []T, mode Mode, opts ...Option) *Engine[T] {
	o := options{match: ExactMatch, state: State{Active: All}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.state.Active == "" {
		o.state.Active = All
	}
	o.state.Query = Fold(o.state.Query)
	e := &Engine[T]{
		items: items,
		mode:  mode,
		match: o.match,
		sink:  o.sink,
		state: o.state,
	}
	e.vis = Apply(e.items, e.state, e.mode, e.match)
	return e
}

// SetActiveCategory replaces the active category and recomputes visibility. Categories no card
// carries simply match nothing.
func (e *Engine[T]) SetActiveCategory(tag Category) {
	if tag == "" {
		tag = All
	}
	e.state.Active = tag
	e.recompute()
}

// SetQuery trims and case-folds text and recomputes visibility. The query only narrows
// ByCategoryAndText engines; other engines record it and ignore it.
func (e *Engine[T]) SetQuery(text string) {
	e.state.Query = Fold(text)
	if e.mode != ByCategoryAndText {
		return
	}
	e.recompute()
}

// State returns the current selection.
func (e *Engine[T]) State() State { return e.state }

// Mode returns the predicate set in use.
func (e *Engine[T]) Mode() Mode { return e.mode }

// Visibility returns a copy of the current per-card flags.
func (e *Engine[T]) Visibility() Visibility {
	return append(Visibility(nil), e.vis...)
}

// Visible returns the visible items in catalog order.
func (e *Engine[T]) Visible() []T {
	out := make([]T, 0, e.vis.Count())
	for i, it := range e.items {
		if e.vis[i] {
			out = append(out, it)
		}
	}
	return out
}

func (e *Engine[T]) recompute() {
	e.vis = Apply(e.items, e.state, e.mode, e.match)
	if e.sink != nil {
		e.sink(e.Visibility())
	}
}
