// Package auth defines the authentication collaborator consumed by the
// credential gate, together with its closed failure taxonomy.
//
// The service layer never inspects concrete causes: it matches on
// *auth.Error and its Kind, mapping known kinds to user-facing messages.
// Faults that are not *auth.Error fall outside the taxonomy on purpose, so
// infrastructure problems surface to the runtime instead of masquerading as
// login failures.
package auth

import (
	"context"
	"fmt"

	"github.com/shadewithin/go-invoice-backend/internal/forms"
)

// StrategyCredentials is the opaque strategy tag for email+password sign-in.
const StrategyCredentials = "credentials"

// Kind classifies an authentication failure.
type Kind string

const (
	// KindCredentialsSignin marks a rejected credential check: unknown email,
	// wrong password, or a submission that fails the credential schema.
	KindCredentialsSignin Kind = "CredentialsSignin"

	// KindCallbackRoute marks a failure inside the sign-in callback itself,
	// such as the user store being unreachable.
	KindCallbackRoute Kind = "CallbackRouteError"
)

// Error is a classified authentication failure. Kind is always one of the
// constants above; Err optionally carries the underlying cause for logs.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return "auth: " + string(e.Kind)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Err }

// Authenticator is the external authentication service boundary. On success
// it returns the path the signed-in user should be redirected to; on failure
// it returns an *Error carrying the classification, or a raw error for
// faults outside the taxonomy.
type Authenticator interface {
	SignIn(ctx context.Context, strategy string, credentials forms.Values) (string, error)
}
