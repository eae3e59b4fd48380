package finto

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kaupunki/events-backend/internal/types"
)

// BootstrapData lists the reference rows that must exist before keywords can
// be upserted. It is built once and passed by value; nothing mutates it.
type BootstrapData struct {
	DataSources   []types.DataSource
	OrgClasses    []types.OrganizationClass
	Organizations []types.Organization
	Languages     []types.Language
}

// Refs holds the bootstrap rows resolved to typed references, one named slot
// per row the pipeline needs later.
type Refs struct {
	DataSourceYSO  *types.DataSource
	DataSourceJUPO *types.DataSource
	DataSourceOrg  *types.DataSource
	OrgClass       *types.OrganizationClass
	OrgYSO         *types.Organization
	OrgJUPO        *types.Organization
}

func DefaultBootstrap() BootstrapData {
	now := time.Now()
	return BootstrapData{
		DataSources: []types.DataSource{
			{ID: "yso", Name: "Yleinen suomalainen ontologia", UserEditable: true},
			{ID: "jupo", Name: "Julkisen hallinnon palveluontologia", UserEditable: true},
			{ID: "org", Name: "Ulkoa tuodut organisaatiotiedot", UserEditable: true},
		},
		OrgClasses: []types.OrganizationClass{
			{ID: "org:13", OriginID: "13", Name: "Sanasto", DataSourceID: "org", CreatedTime: now},
		},
		Organizations: []types.Organization{
			{ID: "yso:1200", OriginID: "1200", Name: "YSO", ClassificationID: "org:13", DataSourceID: "yso", CreatedTime: now},
			{ID: "jupo:1300", OriginID: "1300", Name: "JUPO", ClassificationID: "org:13", DataSourceID: "jupo", CreatedTime: now},
		},
		Languages: []types.Language{
			{ID: "fi", Name: "suomi"},
			{ID: "sv", Name: "svenska"},
			{ID: "en", Name: "English"},
		},
	}
}

// ensureBootstrap creates any missing reference rows and resolves the typed
// refs. Creation is idempotent: existing rows are left untouched.
func ensureBootstrap(ctx context.Context, db *gorm.DB, data BootstrapData) (*Refs, error) {
	create := func(rows interface{}) error {
		return db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(rows).Error
	}
	if len(data.DataSources) > 0 {
		if err := create(&data.DataSources); err != nil {
			return nil, fmt.Errorf("ensure datasources: %w", err)
		}
	}
	if len(data.OrgClasses) > 0 {
		if err := create(&data.OrgClasses); err != nil {
			return nil, fmt.Errorf("ensure organization classes: %w", err)
		}
	}
	if len(data.Organizations) > 0 {
		if err := create(&data.Organizations); err != nil {
			return nil, fmt.Errorf("ensure organizations: %w", err)
		}
	}
	if len(data.Languages) > 0 {
		if err := create(&data.Languages); err != nil {
			return nil, fmt.Errorf("ensure languages: %w", err)
		}
	}

	refs := &Refs{
		DataSourceYSO:  &types.DataSource{},
		DataSourceJUPO: &types.DataSource{},
		DataSourceOrg:  &types.DataSource{},
		OrgClass:       &types.OrganizationClass{},
		OrgYSO:         &types.Organization{},
		OrgJUPO:        &types.Organization{},
	}
	lookups := []struct {
		dest interface{}
		id   string
	}{
		{refs.DataSourceYSO, "yso"},
		{refs.DataSourceJUPO, "jupo"},
		{refs.DataSourceOrg, "org"},
		{refs.OrgClass, "org:13"},
		{refs.OrgYSO, "yso:1200"},
		{refs.OrgJUPO, "jupo:1300"},
	}
	for _, l := range lookups {
		if err := db.WithContext(ctx).First(l.dest, "id = ?", l.id).Error; err != nil {
			return nil, fmt.Errorf("resolve bootstrap row %q: %w", l.id, err)
		}
	}
	return refs, nil
}
