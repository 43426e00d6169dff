package subscribe

import (
	"context"
	"errors"
	"time"

	"adornia-be/internal/email"
	"adornia-be/internal/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service interface {
	Subscribe(ctx context.Context, req Request, userAgent, ip string) (Subscriber, error)
}

type service struct {
	repo     Repository
	emails   *email.Sender
	validate *validator.Validate
}

func NewService(repo Repository, emails *email.Sender) Service {
	return &service{
		repo:     repo,
		emails:   emails,
		validate: validator.New(),
	}
}

// Subscribe records the email and sends the welcome and business-notice
// emails. A duplicate signup is not an error for the caller; the emails are
// simply not resent.
func (s *service) Subscribe(ctx context.Context, req Request, userAgent, ip string) (Subscriber, error) {
	log := logger.FromCtx(ctx)

	if err := s.validate.Struct(req); err != nil {
		return Subscriber{}, ErrInvalidEmail
	}
	if req.Source == "" {
		req.Source = "website"
	}

	sub, err := s.repo.Create(ctx, req.Email, req.Source)
	if err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			existing, findErr := s.repo.FindByEmail(ctx, req.Email)
			if findErr != nil {
				return Subscriber{}, findErr
			}
			return existing, nil
		}
		return Subscriber{}, err
	}

	// Emails are best-effort: the subscription is already recorded.
	if err := s.emails.SendWelcome(ctx, sub.Email); err != nil {
		log.Error("failed to send welcome email",
			zap.String("email", sub.Email),
			zap.Error(err),
		)
	}
	if err := s.emails.SendSubscriptionNotice(ctx, email.SubscriptionData{
		SubscriberEmail: sub.Email,
		Source:          sub.Source,
		Timestamp:       time.Now().Format(time.RFC1123),
		UserAgent:       userAgent,
		IP:              ip,
	}); err != nil {
		log.Error("failed to send subscription notice",
			zap.String("email", sub.Email),
			zap.Error(err),
		)
	}

	return sub, nil
}
