// Package services – AuthService
//
// This file implements the credential gate: a thin pipeline that delegates a
// sign-in attempt to the external authentication service and maps its
// failure taxonomy to a single user-facing message. Faults the taxonomy does
// not recognize are re-raised unchanged so infrastructure problems are never
// masked as login failures.
package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/shadewithin/go-invoice-backend/internal/auth"
	"github.com/shadewithin/go-invoice-backend/internal/forms"
)

// AuthService gates sign-in attempts behind the injected Authenticator.
type AuthService struct {
	// Auth is the external authentication service boundary.
	Auth auth.Authenticator
}

// Authenticate delegates the raw credential form to the authenticator under
// the "credentials" strategy.
//
// Outcomes:
//   - Success: a terminal redirect to the authenticator's target; this entry
//     point does not return a payload on success.
//   - *auth.Error with Kind CredentialsSignin: non-terminal failure with
//     "Invalid credentials.".
//   - *auth.Error of any other kind: non-terminal failure with
//     "Something went wrong." (cause logged server-side).
//   - Any error that is not *auth.Error: returned unchanged to the caller.
func (s *AuthService) Authenticate(ctx context.Context, form forms.Values) (Result, error) {
	redirect, err := s.Auth.SignIn(ctx, auth.StrategyCredentials, form)
	if err != nil {
		var ae *auth.Error
		if !errors.As(err, &ae) {
			return Result{}, err
		}
		switch ae.Kind {
		case auth.KindCredentialsSignin:
			return Failure(State{Message: MsgInvalidCredentials}), nil
		default:
			log.Error().Err(ae).Str("kind", string(ae.Kind)).Msg("sign-in failed")
			return Failure(State{Message: MsgSomethingWentWrong}), nil
		}
	}
	return Redirect(redirect), nil
}
