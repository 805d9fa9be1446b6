package services

import (
	"context"
	"encoding/json"
	"time"

	"api/metrics"
	"api/models"
	"api/rules"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const leaderboardCacheTTL = 5 * time.Minute

// Leaderboards computes post-event rankings, caching final boards in Redis
type Leaderboards struct {
	DB    *gorm.DB
	Cache *redis.Client
}

func NewLeaderboards(db *gorm.DB, cache *redis.Client) *Leaderboards {
	return &Leaderboards{DB: db, Cache: cache}
}

// Get returns the leaderboard for the hackathon. Before the end date the
// board is pending and never cached; final and empty boards are served from
// Redis when possible.
func (s *Leaderboards) Get(ctx context.Context, hackathonID string, today time.Time) (rules.Leaderboard, error) {
	var board rules.Leaderboard

	if cached := s.fromCache(ctx, hackathonID, &board); cached {
		metrics.CacheHits.Inc()
		return board, nil
	}
	metrics.CacheMisses.Inc()

	hackathon, teams, err := s.load(hackathonID)
	if err != nil {
		return board, err
	}

	board = rules.ComputeLeaderboard(hackathon, teams, today)
	metrics.LeaderboardComputations.WithLabelValues(hackathonID).Inc()

	if board.Status != rules.LeaderboardPending {
		s.store(ctx, hackathonID, board)
	}
	return board, nil
}

// Invalidate drops the cached board for the hackathon
func (s *Leaderboards) Invalidate(ctx context.Context, hackathonID string) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Del(ctx, cacheKey(hackathonID)).Err()
}

func (s *Leaderboards) load(hackathonID string) (*models.Hackathon, []*models.Team, error) {
	var hackathon models.Hackathon
	if err := s.DB.First(&hackathon, "id = ?", hackathonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, models.NewError(models.KindNotFound, "hackathon not found")
		}
		return nil, nil, err
	}

	// Creation order drives the tiebreak for equal means
	var teams []*models.Team
	err := s.DB.
		Preload("Evaluations").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, nil, err
	}
	return &hackathon, teams, nil
}

func (s *Leaderboards) fromCache(ctx context.Context, hackathonID string, board *rules.Leaderboard) bool {
	if s.Cache == nil {
		return false
	}
	payload, err := s.Cache.Get(ctx, cacheKey(hackathonID)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, board) == nil
}

func (s *Leaderboards) store(ctx context.Context, hackathonID string, board rules.Leaderboard) {
	if s.Cache == nil {
		return
	}
	payload, err := json.Marshal(board)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, cacheKey(hackathonID), payload, leaderboardCacheTTL)
}

func cacheKey(hackathonID string) string {
	return "leaderboard:" + hackathonID
}
