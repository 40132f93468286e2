package repository

import (
	"context"
	"errors"
	"fmt"

	"workload_survey/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKVStore keeps entries in the kv_entries table of the MySQL database.
type GormKVStore struct {
	DB *gorm.DB
}

func NewGormKVStore(db *gorm.DB) *GormKVStore {
	return &GormKVStore{DB: db}
}

func (r *GormKVStore) Get(ctx context.Context, key string) (string, error) {
	var entry model.KVEntry
	err := r.DB.WithContext(ctx).Where("`key` = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("mysql get %q: %w", key, err)
	}
	return entry.Value, nil
}

func (r *GormKVStore) Put(ctx context.Context, key, value string) error {
	entry := model.KVEntry{Key: key, Value: value}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("mysql put %q: %w", key, err)
	}
	return nil
}

func (r *GormKVStore) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormKVStore) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
