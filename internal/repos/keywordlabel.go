package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/types"
)

type KeywordLabelRepo interface {
	GetByNameAndLanguage(ctx context.Context, tx *gorm.DB, name, languageID string) (*types.KeywordLabel, error)
	EnsureExists(ctx context.Context, tx *gorm.DB, name, languageID string) error
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type keywordLabelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewKeywordLabelRepo(db *gorm.DB, baseLog *logger.Logger) KeywordLabelRepo {
	return &keywordLabelRepo{db: db, log: baseLog.With("repo", "KeywordLabelRepo")}
}

func (r *keywordLabelRepo) GetByNameAndLanguage(ctx context.Context, tx *gorm.DB, name, languageID string) (*types.KeywordLabel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var label types.KeywordLabel
	if err := transaction.WithContext(ctx).
		Where("name = ? AND language_id = ?", name, languageID).
		First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// EnsureExists creates the (name, language) label row if it is not already
// present. Safe to call repeatedly; the unique index backs the no-op path.
func (r *keywordLabelRepo) EnsureExists(ctx context.Context, tx *gorm.DB, name, languageID string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	label := types.KeywordLabel{Name: name, LanguageID: languageID}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "language_id"}},
			DoNothing: true,
		}).Create(&label).Error
}

func (r *keywordLabelRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var n int64
	if err := transaction.WithContext(ctx).Model(&types.KeywordLabel{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
