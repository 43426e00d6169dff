package cart

import (
	"errors"
	"net/http"

	"adornia-be/internal/cookiestore"
	"adornia-be/internal/logger"

	"go.uber.org/zap"
)

const cookieName = "adornia_cart"

var ErrCartTooLarge = errors.New("cart is too large to save")

// Store persists cart state in the browser cookie. The cookie is the only
// durable copy; there is no server-side authoritative cart.
type Store struct {
	cookies *cookiestore.Store
}

func NewStore() *Store {
	return &Store{cookies: cookiestore.New(cookieName, 30)}
}

// Load rehydrates the cart. A malformed cookie is a hydration failure: it is
// logged and the cart falls back to empty rather than erroring out.
func (s *Store) Load(r *http.Request) State {
	var items []LineItem
	err := s.cookies.Load(r, &items)
	switch {
	case errors.Is(err, cookiestore.ErrNotFound):
		return Empty()
	case err != nil:
		logger.FromCtx(r.Context()).Warn("discarding unreadable cart cookie", zap.Error(err))
		return Empty()
	}
	return Load(items)
}

// Save writes the cart back, deleting the cookie entirely when the cart is
// empty.
func (s *Store) Save(w http.ResponseWriter, state State) error {
	if len(state.Items) == 0 {
		s.cookies.Delete(w)
		return nil
	}
	if err := s.cookies.Save(w, state.Items); err != nil {
		if errors.Is(err, cookiestore.ErrTooLarge) {
			return ErrCartTooLarge
		}
		return err
	}
	return nil
}

func (s *Store) Clear(w http.ResponseWriter) {
	s.cookies.Delete(w)
}
