package services

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/repos"
	"github.com/kaupunki/events-backend/internal/types"
)

type KeywordService interface {
	GetByID(ctx context.Context, id string) (*types.Keyword, error)
	Search(ctx context.Context, text string, limit int) ([]*types.Keyword, error)
}

type keywordService struct {
	db       *gorm.DB
	log      *logger.Logger
	keywords repos.KeywordRepo
	rdb      *goredis.Client
	cacheTTL time.Duration
}

// NewKeywordService wires keyword reads with an optional redis cache; rdb may
// be nil, in which case every read goes to the database.
func NewKeywordService(db *gorm.DB, log *logger.Logger, keywords repos.KeywordRepo, rdb *goredis.Client, cacheTTL time.Duration) KeywordService {
	return &keywordService{
		db:       db,
		log:      log.With("service", "KeywordService"),
		keywords: keywords,
		rdb:      rdb,
		cacheTTL: cacheTTL,
	}
}

func (s *keywordService) GetByID(ctx context.Context, id string) (*types.Keyword, error) {
	cacheKey := "keyword:" + id
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var kw types.Keyword
			if jsonErr := json.Unmarshal(raw, &kw); jsonErr == nil {
				return &kw, nil
			}
		} else if err != goredis.Nil {
			s.log.Warn("Keyword cache read failed", "id", id, "error", err)
		}
	}

	kw, err := s.keywords.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, jsonErr := json.Marshal(kw); jsonErr == nil {
			if err := s.rdb.Set(ctx, cacheKey, raw, s.cacheTTL).Err(); err != nil {
				s.log.Warn("Keyword cache write failed", "id", id, "error", err)
			}
		}
	}
	return kw, nil
}

func (s *keywordService) Search(ctx context.Context, text string, limit int) ([]*types.Keyword, error) {
	return s.keywords.SearchByName(ctx, nil, text, limit)
}
