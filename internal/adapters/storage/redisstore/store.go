// Package redisstore implements the board and preference store ports on Redis.
//
// Each board is stored as one JSON document under {prefix}board:{projectID};
// the theme lives under {prefix}pref:theme. Keys never expire.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/kanban-board-service/internal/domain"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/preference"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

// CheckName is the readiness check name the Store registers under.
const CheckName = "redis"

var (
	_ ports.BoardStore      = (*Store)(nil)
	_ ports.PreferenceStore = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

// Store persists boards and preferences in Redis. It is safe for concurrent
// use; the underlying client pools connections.
type Store struct {
	client *redis.Client
	prefix string
}

// New creates a Store that namespaces every key with prefix.
func New(client *redis.Client, prefix string) *Store {
	if client == nil {
		panic("redisstore.New: client is nil")
	}
	return &Store{client: client, prefix: prefix}
}

// Load returns the board stored for a project.
func (s *Store) Load(ctx context.Context, projectID int64) (board.Board, error) {
	data, err := s.client.Get(ctx, s.boardKey(projectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return board.Board{}, fmt.Errorf("board of project %d: %w", projectID, domain.ErrNotFound)
	}
	if err != nil {
		return board.Board{}, fmt.Errorf("loading board of project %d: %w: %w", projectID, domain.ErrUnavailable, err)
	}

	var rec boardRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return board.Board{}, fmt.Errorf("decoding board of project %d: %w", projectID, err)
	}
	return rec.toDomain(), nil
}

// Save writes the board snapshot, replacing any previous one.
func (s *Store) Save(ctx context.Context, b board.Board) error {
	data, err := json.Marshal(fromDomain(b))
	if err != nil {
		return fmt.Errorf("encoding board of project %d: %w", b.ProjectID, err)
	}
	if err := s.client.Set(ctx, s.boardKey(b.ProjectID), data, 0).Err(); err != nil {
		return fmt.Errorf("saving board of project %d: %w: %w", b.ProjectID, domain.ErrUnavailable, err)
	}
	return nil
}

// Delete removes a project's board.
func (s *Store) Delete(ctx context.Context, projectID int64) error {
	if err := s.client.Del(ctx, s.boardKey(projectID)).Err(); err != nil {
		return fmt.Errorf("deleting board of project %d: %w: %w", projectID, domain.ErrUnavailable, err)
	}
	return nil
}

// Theme returns the stored theme. Unknown stored values are reported as
// missing so that callers fall back to the default.
func (s *Store) Theme(ctx context.Context) (preference.Theme, error) {
	raw, err := s.client.Get(ctx, s.prefKey(preference.ThemeKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%s preference: %w", preference.ThemeKey, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("loading %s preference: %w: %w", preference.ThemeKey, domain.ErrUnavailable, err)
	}

	theme := preference.Theme(raw)
	if !theme.IsValid() {
		return "", fmt.Errorf("%s preference %q: %w", preference.ThemeKey, raw, domain.ErrNotFound)
	}
	return theme, nil
}

// SetTheme stores the theme.
func (s *Store) SetTheme(ctx context.Context, theme preference.Theme) error {
	if err := s.client.Set(ctx, s.prefKey(preference.ThemeKey), theme.String(), 0).Err(); err != nil {
		return fmt.Errorf("saving %s preference: %w: %w", preference.ThemeKey, domain.ErrUnavailable, err)
	}
	return nil
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return CheckName
}

// HealthCheck pings the server.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

func (s *Store) boardKey(projectID int64) string {
	return s.prefix + "board:" + strconv.FormatInt(projectID, 10)
}

func (s *Store) prefKey(name string) string {
	return s.prefix + "pref:" + name
}
