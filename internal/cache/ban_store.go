package cache

import (
	"context"
	"time"
)

const banKeyPrefix = "banned:"

// BanStore records ban markers so that an already issued token is rejected
// on the banned identity's next request, without a DB read per request.
type BanStore interface {
	MarkBanned(ctx context.Context, userID, reason string, ttl time.Duration) error
	BanReason(ctx context.Context, userID string) (string, bool)
	ClearBan(ctx context.Context, userID string) error
}

type banStore struct {
	cache *Client
}

var _ BanStore = (*banStore)(nil)

func NewBanStore(cache *Client) BanStore {
	return &banStore{cache: cache}
}

func (s *banStore) MarkBanned(ctx context.Context, userID, reason string, ttl time.Duration) error {
	return s.cache.Set(ctx, banKeyPrefix+userID, []byte(reason), ttl)
}

// BanReason returns the recorded reason and whether a marker exists.
func (s *banStore) BanReason(ctx context.Context, userID string) (string, bool) {
	data, err := s.cache.Get(ctx, banKeyPrefix+userID)
	if err != nil || data == nil {
		return "", false
	}
	return string(data), true
}

func (s *banStore) ClearBan(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, banKeyPrefix+userID)
}
