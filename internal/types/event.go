package types

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PublicationStatusDraft  = "draft"
	PublicationStatusPublic = "public"
)

type Event struct {
	ID           string      `gorm:"primaryKey" json:"id"`
	DataSourceID string      `gorm:"column:data_source_id;not null;index" json:"data_source"`
	DataSource   *DataSource `gorm:"foreignKey:DataSourceID;references:ID" json:"-"`

	PublisherID string        `gorm:"column:publisher_id;index" json:"publisher"`
	Publisher   *Organization `gorm:"foreignKey:PublisherID;references:ID" json:"-"`

	NameFi *string `gorm:"column:name_fi" json:"name_fi,omitempty"`
	NameSv *string `gorm:"column:name_sv" json:"name_sv,omitempty"`
	NameEn *string `gorm:"column:name_en" json:"name_en,omitempty"`

	DescriptionFi *string `gorm:"column:description_fi" json:"description_fi,omitempty"`
	DescriptionSv *string `gorm:"column:description_sv" json:"description_sv,omitempty"`
	DescriptionEn *string `gorm:"column:description_en" json:"description_en,omitempty"`

	StartTime *time.Time `gorm:"column:start_time;index" json:"start_time,omitempty"`
	EndTime   *time.Time `gorm:"column:end_time" json:"end_time,omitempty"`

	PublicationStatus string `gorm:"column:publication_status;not null;default:'draft'" json:"publication_status"`

	LocationID *string `gorm:"column:location_id" json:"location,omitempty"`

	Keywords []*Keyword `gorm:"many2many:event_keywords" json:"keywords,omitempty"`

	CustomData datatypes.JSON `gorm:"column:custom_data;type:jsonb" json:"custom_data,omitempty"`

	CreatedTime      time.Time `gorm:"column:created_time" json:"created_time"`
	LastModifiedTime time.Time `gorm:"column:last_modified_time" json:"last_modified_time"`
}

func (Event) TableName() string { return "event" }

func (e *Event) HasName() bool {
	return e.NameFi != nil || e.NameSv != nil || e.NameEn != nil
}
