package wishlist

import (
	"errors"
	"net/http"

	"adornia-be/internal/cookiestore"
	"adornia-be/internal/logger"

	"go.uber.org/zap"
)

const cookieName = "adornia_wishlist"

var ErrWishlistTooLarge = errors.New("wishlist is too large to save")

type Store struct {
	cookies *cookiestore.Store
}

func NewStore() *Store {
	return &Store{cookies: cookiestore.New(cookieName, 30)}
}

func (s *Store) Load(r *http.Request) State {
	var items []Entry
	err := s.cookies.Load(r, &items)
	switch {
	case errors.Is(err, cookiestore.ErrNotFound):
		return Empty()
	case err != nil:
		logger.FromCtx(r.Context()).Warn("discarding unreadable wishlist cookie", zap.Error(err))
		return Empty()
	}
	return Load(items)
}

func (s *Store) Save(w http.ResponseWriter, state State) error {
	if len(state.Items) == 0 {
		s.cookies.Delete(w)
		return nil
	}
	if err := s.cookies.Save(w, state.Items); err != nil {
		if errors.Is(err, cookiestore.ErrTooLarge) {
			return ErrWishlistTooLarge
		}
		return err
	}
	return nil
}

func (s *Store) Clear(w http.ResponseWriter) {
	s.cookies.Delete(w)
}
