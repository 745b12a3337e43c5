package playercontrol

type trackedTarget struct {
	target Target
	sub    Subscription
}

// targetList keeps targets in insertion order. Every entry owns the
// subscription to its destroyed notification and releases it on removal.
type targetList struct {
	entries []trackedTarget
}

func (l *targetList) Len() int {
	return len(l.entries)
}

func (l *targetList) Front() (Target, bool) {
	if len(l.entries) == 0 {
		return nil, false
	}
	return l.entries[0].target, true
}

func (l *targetList) index(t Target) int {
	for i, e := range l.entries {
		if e.target == t {
			return i
		}
	}
	return -1
}

func (l *targetList) Contains(t Target) bool {
	return l.index(t) >= 0
}

func (l *targetList) PushBack(t Target, sub Subscription) {
	l.entries = append(l.entries, trackedTarget{target: t, sub: sub})
}

// Remove drops t and releases its subscription. Returns false if t is not tracked.
func (l *targetList) Remove(t Target) bool {
	i := l.index(t)
	if i < 0 {
		return false
	}
	e := l.entries[i]
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	release(e.sub)
	return true
}

// RemoveFront drops the active target and releases its subscription.
func (l *targetList) RemoveFront() (Target, bool) {
	if len(l.entries) == 0 {
		return nil, false
	}
	e := l.entries[0]
	l.entries[0] = trackedTarget{}
	l.entries = l.entries[1:]
	release(e.sub)
	return e.target, true
}

// Clear releases every subscription and empties the list.
func (l *targetList) Clear() {
	entries := l.entries
	l.entries = nil
	for _, e := range entries {
		release(e.sub)
	}
}

func (l *targetList) Targets() []Target {
	out := make([]Target, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.target
	}
	return out
}

func release(sub Subscription) {
	if sub != nil {
		sub.Release()
	}
}
