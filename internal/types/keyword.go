package types

import (
	"time"

	"gorm.io/datatypes"
)

// KeywordLabel is a globally deduplicated (name, language) synonym row.
// Labels are created once and never updated or deleted by the importer.
type KeywordLabel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"column:name;not null;index:idx_keyword_label_name_language,unique" json:"name"`
	LanguageID string    `gorm:"column:language_id;not null;index:idx_keyword_label_name_language,unique" json:"language"`
	Language   *Language `gorm:"foreignKey:LanguageID;references:ID" json:"-"`
}

func (KeywordLabel) TableName() string { return "keyword_label" }

// Keyword is a synced ontology concept. The primary key is the ontology
// reference "<namespace>:<local_id>", e.g. "yso:1200".
type Keyword struct {
	ID           string      `gorm:"primaryKey" json:"id"`
	DataSourceID string      `gorm:"column:data_source_id;not null;index" json:"data_source"`
	DataSource   *DataSource `gorm:"foreignKey:DataSourceID;references:ID" json:"-"`

	NameFi *string `gorm:"column:name_fi" json:"name_fi,omitempty"`
	NameSv *string `gorm:"column:name_sv" json:"name_sv,omitempty"`
	NameEn *string `gorm:"column:name_en" json:"name_en,omitempty"`

	// Ontology hierarchy references, stored as ordered JSON arrays of
	// "<namespace>:<local_id>" strings. Duplicates are preserved as
	// encountered in the source graph.
	Broader  datatypes.JSON `gorm:"column:broader;type:jsonb" json:"broader,omitempty"`
	Narrower datatypes.JSON `gorm:"column:narrower;type:jsonb" json:"narrower,omitempty"`

	Deprecated   bool     `gorm:"column:deprecated;not null;default:false" json:"deprecated"`
	ReplacedByID *string  `gorm:"column:replaced_by_id" json:"replaced_by,omitempty"`
	ReplacedBy   *Keyword `gorm:"foreignKey:ReplacedByID;references:ID" json:"-"`

	AltLabels []*KeywordLabel `gorm:"many2many:keyword_alt_labels" json:"alt_labels,omitempty"`

	CreatedTime      time.Time `gorm:"column:created_time" json:"created_time"`
	LastModifiedTime time.Time `gorm:"column:last_modified_time" json:"last_modified_time"`
}

func (Keyword) TableName() string { return "keyword" }

// Name returns the localized name for the given language, or nil.
func (k *Keyword) Name(lang string) *string {
	switch lang {
	case "fi":
		return k.NameFi
	case "sv":
		return k.NameSv
	case "en":
		return k.NameEn
	}
	return nil
}
