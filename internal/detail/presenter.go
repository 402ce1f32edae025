package detail

// State is either closed (the zero value) or open on one key.
type State struct {
	key Key
}

// Closed is the initial presenter state.
var Closed = State{}

// OpenOn returns the open state for k.
func OpenOn(k Key) State { return State{key: k} }

// IsOpen reports whether the overlay is shown.
func (s State) IsOpen() bool { return s.key != "" }

// Key returns the open key, or "" when closed.
func (s State) Key() Key { return s.key }

func (s State) String() string {
	if !s.IsOpen() {
		return "Closed"
	}
	return "Open(" + string(s.key) + ")"
}

// Sink renders presenter output. Show receives the record for a newly opened key; Dismiss is
// called on close.
type Sink interface {
	Show(Key, Record)
	Dismiss()
}

// Presenter drives the single reusable detail overlay.
type Presenter struct {
	state  State
	record Record
	sink   Sink
}

// NewPresenter returns a closed presenter. sink may be nil.
func NewPresenter(sink Sink) *Presenter {
	return &Presenter{sink: sink}
}

// Restore rebuilds a presenter from a stored key. Unknown or empty keys yield a closed
// presenter. The sink is not notified.
func Restore(raw string, sink Sink) *Presenter {
	p := NewPresenter(sink)
	k, err := ParseKey(raw)
	if err != nil {
		return p
	}
	rec, _ := Lookup(k)
	p.state = OpenOn(k)
	p.record = rec
	return p
}

// Open shows the record for raw. An open overlay is replaced without closing first. On a miss
// it returns ErrNotFound and leaves the state as it was.
func (p *Presenter) Open(raw string) error {
	k, err := ParseKey(raw)
	if err != nil {
		return err
	}
	rec, err := Lookup(k)
	if err != nil {
		return err
	}
	p.state = OpenOn(k)
	p.record = rec
	if p.sink != nil {
		p.sink.Show(k, rec.clone())
	}
	return nil
}

// Close dismisses the overlay. Closing a closed presenter does nothing.
func (p *Presenter) Close() {
	if !p.state.IsOpen() {
		return
	}
	p.state = Closed
	p.record = Record{}
	if p.sink != nil {
		p.sink.Dismiss()
	}
}

// State returns the current state.
func (p *Presenter) State() State { return p.state }

// Current returns the record being shown, if any.
func (p *Presenter) Current() (Record, bool) {
	if !p.state.IsOpen() {
		return Record{}, false
	}
	return p.record.clone(), true
}
