// Package progress хранит просмотренные пользователем видео и считает
// статистику обучения.
package progress

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/magabrotheeeer/course-portal/internal/cache"
)

const keyPrefix = "progress:videos:"

// MinutesPerVideo оценка длительности одного видео.
const MinutesPerVideo = 15

// Stats статистика обучения.
type Stats struct {
	VideosCompleted int     `json:"videos_completed"`
	LearningHours   float64 `json:"learning_hours"`
}

// Compute считает статистику по числу просмотренных видео.
// Без доступа к курсам статистика нулевая.
func Compute(completed int, access bool) Stats {
	if !access || completed <= 0 {
		return Stats{}
	}
	hours := math.Round(float64(completed*MinutesPerVideo)/60*10) / 10
	return Stats{VideosCompleted: completed, LearningHours: hours}
}

// Store хранит множество просмотренных видео в Redis.
type Store struct {
	cache *cache.Cache
}

// NewStore создаёт Store.
func NewStore(c *cache.Cache) *Store {
	return &Store{cache: c}
}

func key(userID string) string {
	return keyPrefix + userID
}

// MarkCompleted отмечает видео просмотренным. Повторная отметка ничего
// не меняет. Возвращает true, если видео отмечено впервые.
func (s *Store) MarkCompleted(ctx context.Context, userID, videoID string) (bool, error) {
	const op = "progress.MarkCompleted"
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return false, fmt.Errorf("%s: empty video id", op)
	}
	added, err := s.cache.Db.SAdd(ctx, key(userID), videoID).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return added > 0, nil
}

// Completed возвращает просмотренные видео в алфавитном порядке.
func (s *Store) Completed(ctx context.Context, userID string) ([]string, error) {
	const op = "progress.Completed"
	ids, err := s.cache.Db.SMembers(ctx, key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Stats возвращает статистику пользователя с учётом доступа.
func (s *Store) Stats(ctx context.Context, userID string, access bool) (Stats, error) {
	const op = "progress.Stats"
	if !access {
		return Stats{}, nil
	}
	n, err := s.cache.Db.SCard(ctx, key(userID)).Result()
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", op, err)
	}
	return Compute(int(n), access), nil
}
