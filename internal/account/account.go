package account

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidCredentials is returned by authenticators that reject a login.
var ErrInvalidCredentials = errors.New("account: invalid credentials")

// User is the record kept in an authenticated session.
type User struct {
	Email         string
	FoodTruckName string
}

// Credentials identify a visitor at login.
type Credentials struct {
	Email    string
	Password string
}

// Registration carries the fields of the sign-up form.
type Registration struct {
	Email         string
	FoodTruckName string
	Password      string
}

// Authenticator resolves credentials and registrations into users.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (User, error)
	Register(ctx context.Context, reg Registration) (User, error)
}

// StubAuthenticator accepts every credential pair. There is no backend.
type StubAuthenticator struct{}

// NewStubAuthenticator returns the accept-all authenticator.
func NewStubAuthenticator() StubAuthenticator {
	return StubAuthenticator{}
}

func (StubAuthenticator) Login(ctx context.Context, creds Credentials) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	return User{Email: strings.TrimSpace(creds.Email)}, nil
}

func (StubAuthenticator) Register(ctx context.Context, reg Registration) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	return User{
		Email:         strings.TrimSpace(reg.Email),
		FoodTruckName: strings.TrimSpace(reg.FoodTruckName),
	}, nil
}
