// Package auth provides the credential gate for the store management system.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Role is the access level granted on successful authentication. No store
// operation is role-gated today; the role is surfaced to the user only.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole converts a configuration string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("unknown role: %s", s)
	}
}

// InvalidCredentialsError is returned when a username/password pair does not
// match any account
type InvalidCredentialsError struct {
	Username string
}

// Error implements the error interface for InvalidCredentialsError
func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials: username=%s", e.Username)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidCredentialsError) Is(target error) bool {
	_, ok := target.(*InvalidCredentialsError)
	return ok
}

// IsInvalidCredentialsError checks if an error is an InvalidCredentialsError
func IsInvalidCredentialsError(err error) bool {
	var ice *InvalidCredentialsError
	return errors.As(err, &ice)
}

// Credential seeds one account. Password is plaintext at construction time
// and hashed before the gate stores it.
type Credential struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Role     Role   `mapstructure:"role"`
}

type account struct {
	passwordHash []byte
	role         Role
}

// Gate checks usernames and passwords against a fixed in-memory table.
// Construct one explicitly and pass it where needed; there is no package
// singleton, so tests can inject alternate tables.
type Gate struct {
	accounts map[string]account
}

// NewGate builds a gate from the given credentials, bcrypt-hashing each
// password. A later credential with a duplicate username replaces the earlier
// one.
func NewGate(creds ...Credential) (*Gate, error) {
	g := &Gate{accounts: make(map[string]account, len(creds))}
	for _, c := range creds {
		if _, err := ParseRole(string(c.Role)); err != nil {
			return nil, fmt.Errorf("credential for %s: %w", c.Username, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", c.Username, err)
		}
		g.accounts[c.Username] = account{passwordHash: hash, role: c.Role}
	}
	return g, nil
}

// NewDefaultGate builds a gate seeded with the reference deployment accounts.
func NewDefaultGate() (*Gate, error) {
	return NewGate(
		Credential{Username: "manager", Password: "password123", Role: RoleAdmin},
		Credential{Username: "normal_user", Password: "userpassword", Role: RoleUser},
		Credential{Username: "admin", Password: "password", Role: RoleAdmin},
	)
}

// Authenticate checks the pair against the table and returns the account's
// role. Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (g *Gate) Authenticate(username, password string) (Role, error) {
	acct, ok := g.accounts[username]
	if !ok {
		return "", &InvalidCredentialsError{Username: username}
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return "", &InvalidCredentialsError{Username: username}
	}
	return acct.role, nil
}
