package statstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/campushelp/helpdesk/internal/domain/helpdesk"
)

// ValkeyStore keeps trending counters in a Valkey-compatible database so they
// survive restarts and are shared across instances.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "helpdesk"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// IncrementQuery bumps the sorted-set score for the canonical question and
// records a display string on first sight.
func (s *ValkeyStore) IncrementQuery(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

// TopQueries returns the highest scored questions.
func (s *ValkeyStore) TopQueries(ctx context.Context, limit int) ([]helpdesk.TrendingQuery, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]helpdesk.TrendingQuery, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i++
					continue
				}
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, helpdesk.TrendingQuery{Query: s.fetchDisplay(ctx, member), Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	resp := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build())
	display, err := resp.ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ helpdesk.Store = (*ValkeyStore)(nil)
