// Package cookiestore persists small JSON collections in browser cookies.
// A cookie holds at most ~4KB once encoded, so writes that exceed the
// ceiling are rejected loudly instead of silently truncating data.
package cookiestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MaxEncodedBytes is the practical single-cookie ceiling.
const MaxEncodedBytes = 4000

var (
	ErrNotFound = errors.New("cookie not set")
	ErrTooLarge = errors.New("serialized value exceeds cookie size limit")
)

type Store struct {
	name   string
	maxAge time.Duration
}

func New(name string, days int) *Store {
	return &Store{
		name:   name,
		maxAge: time.Duration(days) * 24 * time.Hour,
	}
}

func (s *Store) Name() string { return s.name }

// Save serializes v into the cookie. Returns ErrTooLarge before writing
// anything when the encoded value would not fit.
func (s *Store) Save(w http.ResponseWriter, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s cookie: %w", s.name, err)
	}

	encoded := url.QueryEscape(string(raw))
	if len(encoded) > MaxEncodedBytes {
		return fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, s.name, len(encoded))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		Expires:  time.Now().Add(s.maxAge),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load decodes the cookie into out. Absence of the cookie means "empty
// collection", reported as ErrNotFound so callers can fall back cleanly.
func (s *Store) Load(r *http.Request, out any) error {
	c, err := r.Cookie(s.name)
	if err != nil {
		return ErrNotFound
	}

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return fmt.Errorf("unescape %s cookie: %w", s.name, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s cookie: %w", s.name, err)
	}
	return nil
}

// Delete expires the cookie. Saving an empty collection should call this
// instead of Save, to avoid stale empty-array cookies.
func (s *Store) Delete(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    s.name,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}
