package app

import (
	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/repos"
)

type Repos struct {
	Keywords      repos.KeywordRepo
	KeywordLabels repos.KeywordLabelRepo
	Events        repos.EventRepo
	Users         repos.UserRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Keywords:      repos.NewKeywordRepo(db, log),
		KeywordLabels: repos.NewKeywordLabelRepo(db, log),
		Events:        repos.NewEventRepo(db, log),
		Users:         repos.NewUserRepo(db, log),
	}
}
