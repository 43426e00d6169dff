package checkout

import (
	"net/http"

	"adornia-be/internal/cookiestore"
)

const contactCookieName = "adornia_checkout_info"

// ContactStore remembers the buyer's contact details between visits when
// they opt in at the address step.
type ContactStore struct {
	cookies *cookiestore.Store
}

func NewContactStore() *ContactStore {
	return &ContactStore{cookies: cookiestore.New(contactCookieName, 30)}
}

func (s *ContactStore) Save(w http.ResponseWriter, info CustomerInfo) error {
	return s.cookies.Save(w, info)
}

func (s *ContactStore) Load(r *http.Request) (CustomerInfo, bool) {
	var info CustomerInfo
	if err := s.cookies.Load(r, &info); err != nil {
		return CustomerInfo{}, false
	}
	return info, true
}
