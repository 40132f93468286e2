package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"workload_survey/internal/model"
)

const DefaultSnapshotKey = "survey_app_data"

// AppDataRepository persists the whole AppData as one JSON document.
type AppDataRepository struct {
	store KVStore
	key   string
}

func NewAppDataRepository(store KVStore, key string) *AppDataRepository {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &AppDataRepository{store: store, key: key}
}

// Load always returns usable data. When the snapshot is missing, unreadable or malformed the
// built-in defaults come back together with the reason; ErrKeyNotFound marks a first start.
func (r *AppDataRepository) Load(ctx context.Context) (model.AppData, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		return model.DefaultAppData(), err
	}

	var data model.AppData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return model.DefaultAppData(), fmt.Errorf("decode snapshot: %w", err)
	}
	if len(data.Questions) == 0 {
		return model.DefaultAppData(), errors.New("decode snapshot: no questions")
	}
	if data.Personnel == nil {
		data.Personnel = []string{}
	}
	if data.Responses == nil {
		data.Responses = []model.Response{}
	}
	for i := range data.Responses {
		if data.Responses[i].Scores == nil {
			data.Responses[i].Scores = map[string]int{}
		}
	}
	return data, nil
}

func (r *AppDataRepository) Save(ctx context.Context, data model.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return r.store.Put(ctx, r.key, string(raw))
}

func (r *AppDataRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
