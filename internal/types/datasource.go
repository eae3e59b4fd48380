package types

import (
	"time"
)

// DataSource tags persisted rows with their owning system (yso, jupo, org).
type DataSource struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"column:name;not null" json:"name"`
	UserEditable bool   `gorm:"column:user_editable;not null;default:false" json:"user_editable"`
}

func (DataSource) TableName() string { return "data_source" }

type OrganizationClass struct {
	ID           string      `gorm:"primaryKey" json:"id"`
	OriginID     string      `gorm:"column:origin_id" json:"origin_id"`
	Name         string      `gorm:"column:name;not null" json:"name"`
	DataSourceID string      `gorm:"column:data_source_id;index" json:"data_source"`
	DataSource   *DataSource `gorm:"foreignKey:DataSourceID;references:ID" json:"-"`
	CreatedTime  time.Time   `gorm:"column:created_time" json:"created_time"`
}

func (OrganizationClass) TableName() string { return "organization_class" }

type Organization struct {
	ID               string             `gorm:"primaryKey" json:"id"`
	OriginID         string             `gorm:"column:origin_id" json:"origin_id"`
	Name             string             `gorm:"column:name;not null" json:"name"`
	ClassificationID string             `gorm:"column:classification_id;index" json:"classification"`
	Classification   *OrganizationClass `gorm:"foreignKey:ClassificationID;references:ID" json:"-"`
	DataSourceID     string             `gorm:"column:data_source_id;index" json:"data_source"`
	DataSource       *DataSource        `gorm:"foreignKey:DataSourceID;references:ID" json:"-"`
	CreatedTime      time.Time          `gorm:"column:created_time" json:"created_time"`
}

func (Organization) TableName() string { return "organization" }

// Language rows exist for the supported locales (fi, sv, en).
type Language struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

func (Language) TableName() string { return "language" }
