package subscribe

import (
	"context"
	"database/sql"
	"errors"

	"adornia-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, email, source string) (Subscriber, error)
	FindByEmail(ctx context.Context, email string) (Subscriber, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, source string) (Subscriber, error) {
	log := logger.FromCtx(ctx)

	var s Subscriber
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO subscribers (email, source) VALUES ($1, $2) RETURNING id, email, source, created_at",
		email, source,
	).Scan(&s.ID, &s.Email, &s.Source, &s.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return Subscriber{}, ErrAlreadySubscribed
		}
		log.Error("db: failed to insert subscriber",
			zap.String("email", email),
			zap.Error(err),
		)
		return Subscriber{}, err
	}

	return s, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Subscriber, error) {
	var s Subscriber
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, source, created_at FROM subscribers WHERE email=$1",
		email,
	).Scan(&s.ID, &s.Email, &s.Source, &s.CreatedAt)

	return s, err
}
