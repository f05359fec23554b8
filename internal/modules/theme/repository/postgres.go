package repository

import (
	"context"

	"anoa.com/socialfeed/internal/entity"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) PreferenceRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Get(ctx context.Context, key string) (string, bool, error) {
	// Find with a slice avoids gorm's "record not found" log noise from First().
	var rows []entity.Preference
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return "", false, errors.Wrapf(err, "load preference %s", key)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

func (r *postgresRepository) Set(ctx context.Context, key, value string) error {
	pref := entity.Preference{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
	if err != nil {
		return errors.Wrapf(err, "save preference %s", key)
	}
	return nil
}
