package components

// Signal is a synchronous notification with per-listener release handles.
// It is stored by pointer in component data so subscriptions stay valid when
// the owning entry changes archetype.
type Signal struct {
	listeners []*listener
}

type listener struct {
	fn       func()
	released bool
}

func NewSignal() *Signal {
	return &Signal{}
}

// Subscribe registers fn. The returned subscription removes it again.
func (s *Signal) Subscribe(fn func()) *Subscription {
	l := &listener{fn: fn}
	s.listeners = append(s.listeners, l)
	return &Subscription{signal: s, l: l}
}

// Emit calls every listener registered at the time of the call. Listeners
// released by an earlier listener during the same Emit are skipped.
func (s *Signal) Emit() {
	snapshot := make([]*listener, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		if !l.released {
			l.fn()
		}
	}
}

// Len returns the number of live listeners.
func (s *Signal) Len() int {
	return len(s.listeners)
}

func (s *Signal) remove(l *listener) {
	for i, other := range s.listeners {
		if other == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Subscription is the release handle of one listener. Release is idempotent,
// and a nil or zero Subscription releases nothing.
type Subscription struct {
	signal *Signal
	l      *listener
}

func (sub *Subscription) Release() {
	if sub == nil || sub.l == nil || sub.l.released {
		return
	}
	sub.l.released = true
	sub.signal.remove(sub.l)
}
