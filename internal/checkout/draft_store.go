package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	draftTTL     = 24 * time.Hour
	completedTTL = 2 * time.Hour
)

// Drafts is the storage contract for in-flight checkout drafts and the
// post-success order snapshot, keyed by the guest session.
type Drafts interface {
	SaveDraft(ctx context.Context, sessionID string, draft *Draft) error
	GetDraft(ctx context.Context, sessionID string) (*Draft, error)
	DeleteDraft(ctx context.Context, sessionID string) error
	SaveCompleted(ctx context.Context, sessionID string, completed *CompletedOrder) error
	GetCompleted(ctx context.Context, sessionID string) (*CompletedOrder, error)
}

// DraftStore keeps the in-flight checkout draft and the post-success order
// snapshot in redis, keyed by the guest session. Drafts can exceed the
// cookie size ceiling, which is why they live here and not in a cookie.
type DraftStore struct {
	rdb *redis.Client
}

func NewDraftStore(rdb *redis.Client) *DraftStore {
	return &DraftStore{rdb: rdb}
}

func draftKey(sessionID string) string     { return "checkout:draft:" + sessionID }
func completedKey(sessionID string) string { return "checkout:completed:" + sessionID }

func (s *DraftStore) SaveDraft(ctx context.Context, sessionID string, draft *Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode checkout draft: %w", err)
	}
	return s.rdb.Set(ctx, draftKey(sessionID), raw, draftTTL).Err()
}

func (s *DraftStore) GetDraft(ctx context.Context, sessionID string) (*Draft, error) {
	raw, err := s.rdb.Get(ctx, draftKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}

	var draft Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("decode checkout draft: %w", err)
	}
	return &draft, nil
}

func (s *DraftStore) DeleteDraft(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, draftKey(sessionID)).Err()
}

// SaveCompleted parks the confirmed order for the confirmation page to read
// once the draft is gone.
func (s *DraftStore) SaveCompleted(ctx context.Context, sessionID string, order *CompletedOrder) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode completed order: %w", err)
	}
	return s.rdb.Set(ctx, completedKey(sessionID), raw, completedTTL).Err()
}

func (s *DraftStore) GetCompleted(ctx context.Context, sessionID string) (*CompletedOrder, error) {
	raw, err := s.rdb.Get(ctx, completedKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}

	var order CompletedOrder
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, fmt.Errorf("decode completed order: %w", err)
	}
	return &order, nil
}
