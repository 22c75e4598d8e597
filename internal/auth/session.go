package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"deviceInventoryManagement/models"
)

// Session identifies the logged-in user between CLI invocations.
type Session struct {
	UserID   int64
	Username string
	Role     string
}

type sessionClaims struct {
	UID  int64  `json:"uid"`
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the authenticated user.
func IssueToken(secret string, u *models.User, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	if u == nil {
		return "", errors.New("user is nil")
	}
	now := time.Now()
	claims := sessionClaims{
		UID:  u.ID,
		Name: u.Username,
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and extracts the session.
func ParseToken(tokenStr, secret string) (*Session, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	tok, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	c, _ := tok.Claims.(*sessionClaims)
	if c == nil || c.Name == "" || c.UID == 0 {
		return nil, errors.New("invalid claims")
	}
	return &Session{UserID: c.UID, Username: c.Name, Role: c.Role}, nil
}

// WriteSessionFile persists the token at path, creating the parent
// directory on demand. The file is user-readable only.
func WriteSessionFile(path, token string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}

// ReadSessionFile loads a previously written token. A missing file means
// no active session.
func ReadSessionFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// RemoveSessionFile deletes the session file. Removing an absent file is
// not an error.
func RemoveSessionFile(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
