package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shadewithin/go-invoice-backend/internal/forms"
	"github.com/shadewithin/go-invoice-backend/internal/repo"
)

// Credential form field names and schema limits.
const (
	fieldEmail    = "email"
	fieldPassword = "password"

	minPasswordLen = 6
)

// CredentialsAuthenticator checks email+password submissions against the
// users table. Passwords are compared with bcrypt; the plaintext never
// leaves this package.
type CredentialsAuthenticator struct {
	// DB is the GORM handle used to look up accounts.
	DB *gorm.DB
	// RedirectTo is the path returned on successful sign-in.
	RedirectTo string
}

// SignIn implements Authenticator.
//
// Classification:
//   - A strategy other than "credentials", a submission that fails the
//     credential schema, an unknown email, or a wrong password all yield
//     *Error{Kind: KindCredentialsSignin}. The caller cannot distinguish
//     which check failed, by design.
//   - A store fault during lookup yields *Error{Kind: KindCallbackRoute}
//     wrapping the cause.
func (a *CredentialsAuthenticator) SignIn(ctx context.Context, strategy string, credentials forms.Values) (string, error) {
	if strategy != StrategyCredentials {
		return "", &Error{Kind: KindCredentialsSignin}
	}

	email, _ := credentials.Get(fieldEmail)
	password, _ := credentials.Get(fieldPassword)
	email = strings.ToLower(strings.TrimSpace(email))
	if !validEmail(email) || len(password) < minPasswordLen {
		return "", &Error{Kind: KindCredentialsSignin}
	}

	user, err := repo.GetUserByEmail(ctx, a.DB, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &Error{Kind: KindCredentialsSignin}
		}
		return "", &Error{Kind: KindCallbackRoute, Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", &Error{Kind: KindCredentialsSignin}
	}

	return a.RedirectTo, nil
}

// validEmail applies the same minimal shape check as the credential schema:
// a non-empty local part and domain around a single "@".
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.Contains(s[at+1:], "@")
}
