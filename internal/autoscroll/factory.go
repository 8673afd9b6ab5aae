package autoscroll

// SessionFactory owns zero or one active Session for a viewport.
// Starting a new session always abandons the previous one first, so the
// input capture is never held by two sessions.
type SessionFactory struct {
	opts    Options
	session *Session
}

// NewSessionFactory creates a factory whose sessions use opts.
func NewSessionFactory(opts Options) *SessionFactory {
	return &SessionFactory{opts: opts.normalized()}
}

// SetOptions replaces the options used by sessions started from now on.
// A running session keeps the options it was started with.
func (f *SessionFactory) SetOptions(opts Options) {
	f.opts = opts.normalized()
}

// Options returns the options for new sessions.
func (f *SessionFactory) Options() Options {
	return f.opts
}

// TryStart stops any current session, then starts a new one anchored at a
// local point of v. It reports whether the new session started.
func (f *SessionFactory) TryStart(v Viewport, local Point) bool {
	f.Stop()

	s := NewSession(f.opts)
	if !s.Start(v, local) {
		return false
	}
	f.session = s
	return true
}

// Stop aborts the current session, if any.
func (f *SessionFactory) Stop() {
	if f.session == nil {
		return
	}
	f.session.Abort()
	f.session = nil
}

// HasActiveSession reports whether a session is in progress. A session that
// terminated itself (viewport closed or hidden during a tick) is not active.
func (f *SessionFactory) HasActiveSession() bool {
	return f.session != nil && f.session.Active()
}

// HasSessionScrolled reports whether the active session has scrolled.
func (f *SessionFactory) HasSessionScrolled() bool {
	return f.HasActiveSession() && f.session.HasScrolled()
}

// Session returns the current session, or nil.
func (f *SessionFactory) Session() *Session {
	return f.session
}
