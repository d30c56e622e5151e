// Package services defines the business logic of the invoicing backend: the
// validated mutation pipeline for invoices and the credential gate for
// sign-in. This file declares the tagged result every mutation returns.
package services

// State is the structured payload surfaced to the caller when a mutation
// does not end in a redirect: per-field validation errors and/or a summary
// message. The delete path also uses it for its confirmation message.
type State struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Result is the tagged outcome of one pipeline invocation. Exactly one of
// two shapes applies:
//
//   - Terminal: RedirectTo is non-empty; the caller must transfer control to
//     that path and treat the invocation as never returning a payload.
//   - Non-terminal: State carries errors and/or a message; Failed tells the
//     caller whether it describes a failure or a synchronous success (the
//     delete confirmation).
//
// Callers branch on the tag, never on the absence of a value.
type Result struct {
	RedirectTo string
	Failed     bool
	State      State
}

// Terminal reports whether the result is a terminal control transfer.
func (r Result) Terminal() bool { return r.RedirectTo != "" }

// Redirect builds a terminal result pointing at path.
func Redirect(path string) Result {
	return Result{RedirectTo: path}
}

// Failure builds a non-terminal failure carrying state.
func Failure(state State) Result {
	return Result{Failed: true, State: state}
}

// Done builds a non-terminal success carrying state (the delete path's
// confirmation message).
func Done(state State) Result {
	return Result{State: state}
}
