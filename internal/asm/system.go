package asm

import "fmt"

// System is the runtime-level collaborator that owns process-fatal error
// reporting. The assembler never recovers from an assertion violation or an
// unrepresentable branch displacement (spec.md §7): it reports through
// System and the call never returns.
type System interface {
	// Abort reports a fatal condition and does not return.
	Abort(message string)
}

// Client is the register-allocation collaborator: the assembler requests
// temporaries from it and must return every one it acquires before the
// enclosing lowering routine returns (spec.md §5 Temporaries).
type Client interface {
	AcquireTemporary() Register
	ReleaseTemporary(r Register)
}

// FaultError is the panic value Abort raises with, when System is a
// PanicSystem. Library code never recovers its own faults; a CLI boundary
// may choose to recover and report one as a normal exit code.
type FaultError struct {
	Message string
}

func (e *FaultError) Error() string { return e.Message }

// PanicSystem is the default System: it panics with a *FaultError, matching
// the "abort is fatal, not a recoverable error" contract of spec.md §7.
type PanicSystem struct{}

func (PanicSystem) Abort(message string) {
	panic(&FaultError{Message: message})
}

// Abort reports a fatal condition via s using a formatted message.
func Abort(s System, format string, args ...any) {
	s.Abort(fmt.Sprintf(format, args...))
}

// Assert calls Abort via s when cond is false.
func Assert(s System, cond bool, format string, args ...any) {
	if !cond {
		Abort(s, format, args...)
	}
}
