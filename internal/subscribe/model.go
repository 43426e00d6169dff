package subscribe

import "time"

type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Request is the newsletter signup payload. Source tells the business which
// surface the signup came from (footer, popup, checkout).
type Request struct {
	Email  string `json:"email" validate:"required,email"`
	Source string `json:"source"`
}
