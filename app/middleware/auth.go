package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

const authRealm = `Basic realm="blogposts"`

// Credentials is the single admin account allowed to modify data.
type Credentials struct {
	login string
	hash  []byte
}

// NewCredentials accepts either a bcrypt hash or a plaintext password.
// Plaintext passwords are hashed once and only the hash is kept.
func NewCredentials(login, password string) (*Credentials, error) {
	if login == "" || password == "" {
		return nil, fmt.Errorf("auth login and password must be set")
	}

	hash := []byte(password)
	if _, err := bcrypt.Cost(hash); err != nil {
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}
	return &Credentials{login: login, hash: hash}, nil
}

// Check reports whether login and password match the account.
func (c *Credentials) Check(login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(c.login)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return loginOK && passwordOK
}

// BasicAuth rejects requests without valid HTTP Basic credentials with 401
func BasicAuth(creds *Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login, password, ok := r.BasicAuth()
			if !ok || !creds.Check(login, password) {
				w.Header().Set("WWW-Authenticate", authRealm)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
