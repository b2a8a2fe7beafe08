package progress

// Handler receives progress notifications from a long-running
// operation. phase names the stage ("maximize", "speedup:step-u",
// "diagram:indirect", "diagram:direct", "triviality", "coloring"); current
// and total describe progress within that phase, with total <= 0
// meaning the operation does not know its total work in advance.
// "parse:alphabet-mismatch" is a one-off event sent with current and
// total both 0.
//
// Implementations must tolerate being called from a single goroutine at
// a high frequency (once per line processed during maximization, for
// instance); they should not block or perform expensive work.
type Handler interface {
	Notify(phase string, current, total int)
}

// nullHandler discards every notification.
type nullHandler struct{}

func (nullHandler) Notify(string, int, int) {}

// Null returns a Handler that discards every notification. Every entry
// point in this module accepts a nil Handler as equivalent to Null.
func Null() Handler { return nullHandler{} }

// FuncHandler adapts a plain function to the Handler interface.
type FuncHandler func(phase string, current, total int)

// Notify implements Handler.
func (f FuncHandler) Notify(phase string, current, total int) {
	if f != nil {
		f(phase, current, total)
	}
}

// orNull returns h, or Null() if h is nil, so call sites never need to
// nil-check before calling Notify.
func orNull(h Handler) Handler {
	if h == nil {
		return Null()
	}
	return h
}

// Notify is a package-level convenience that nil-checks h before
// calling Notify, for call sites that received h as a parameter and
// don't want to carry the nil check themselves.
func Notify(h Handler, phase string, current, total int) {
	orNull(h).Notify(phase, current, total)
}
