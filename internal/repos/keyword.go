package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/types"
)

type KeywordRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Keyword, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*types.Keyword, error)
	Upsert(ctx context.Context, tx *gorm.DB, kw *types.Keyword) error
	AppendAltLabels(ctx context.Context, tx *gorm.DB, kw *types.Keyword, labels []*types.KeywordLabel) error
	SetDeprecated(ctx context.Context, tx *gorm.DB, id string, replacedBy *string) error
	SearchByName(ctx context.Context, tx *gorm.DB, text string, limit int) ([]*types.Keyword, error)
}

type keywordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewKeywordRepo(db *gorm.DB, baseLog *logger.Logger) KeywordRepo {
	return &keywordRepo{db: db, log: baseLog.With("repo", "KeywordRepo")}
}

func (r *keywordRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Keyword, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var kw types.Keyword
	if err := transaction.WithContext(ctx).
		Preload("AltLabels").
		First(&kw, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &kw, nil
}

func (r *keywordRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*types.Keyword, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Keyword
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Upsert creates the keyword row or overwrites its synced columns in place.
// Association columns (alt label links, replaced_by) are managed separately.
func (r *keywordRepo) Upsert(ctx context.Context, tx *gorm.DB, kw *types.Keyword) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"data_source_id",
				"name_fi",
				"name_sv",
				"name_en",
				"broader",
				"narrower",
				"deprecated",
				"last_modified_time",
			}),
		}).Create(kw).Error
}

func (r *keywordRepo) AppendAltLabels(ctx context.Context, tx *gorm.DB, kw *types.Keyword, labels []*types.KeywordLabel) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(labels) == 0 {
		return nil
	}
	// Additive: links from previous runs are left in place. Append upserts
	// the join rows only; the label rows already exist.
	return transaction.WithContext(ctx).
		Model(kw).
		Association("AltLabels").
		Append(labels)
}

func (r *keywordRepo) SetDeprecated(ctx context.Context, tx *gorm.DB, id string, replacedBy *string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	updates := map[string]interface{}{"deprecated": true}
	if replacedBy != nil {
		updates["replaced_by_id"] = *replacedBy
	}
	res := transaction.WithContext(ctx).
		Model(&types.Keyword{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *keywordRepo) SearchByName(ctx context.Context, tx *gorm.DB, text string, limit int) ([]*types.Keyword, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if limit <= 0 {
		limit = 50
	}
	like := "%" + text + "%"
	var results []*types.Keyword
	if err := transaction.WithContext(ctx).
		Where("name_fi LIKE ? OR name_sv LIKE ? OR name_en LIKE ?", like, like, like).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
