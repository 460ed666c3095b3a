package store

import (
	"context"
	"time"
)

func parseTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
