package dodge

// Listeners is a set of resize callbacks owned by the host screen.
// Hosts call Notify whenever the window size or orientation changes.
type Listeners struct {
	next int
	fns  map[int]func()
}

// Add registers fn and returns a function that removes it again.
// The returned function is safe to call more than once.
func (l *Listeners) Add(fn func()) (remove func()) {
	if l.fns == nil {
		l.fns = map[int]func(){}
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	return func() {
		delete(l.fns, id)
	}
}

func (l *Listeners) Notify() {
	for _, fn := range l.fns {
		fn()
	}
}

func (l *Listeners) Len() int {
	return len(l.fns)
}
