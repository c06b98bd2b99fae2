package repository

import (
	"context"
	"log/slog"

	"github.com/orderkyat/orderkyat/gen/ent"
	"github.com/orderkyat/orderkyat/internal/entity"
)

// StoreProfileRepository persists the single store profile shown in the
// invoice FROM block.
type StoreProfileRepository interface {
	Get(ctx context.Context) (*entity.StoreProfile, error)
	Upsert(ctx context.Context, p *entity.StoreProfile) (*entity.StoreProfile, error)
}

type storeProfileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStoreProfileRepository(client *ent.Client, logger *slog.Logger) StoreProfileRepository {
	return &storeProfileRepository{
		client: client,
		logger: logger,
	}
}

// Get returns the profile row, or an empty profile when none was saved yet.
func (r *storeProfileRepository) Get(ctx context.Context) (*entity.StoreProfile, error) {
	row, err := r.client.StoreProfile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &entity.StoreProfile{}, nil
		}
		r.logger.Error("failed to load store profile", "error", err)
		return nil, err
	}
	return toStoreProfile(row), nil
}

func (r *storeProfileRepository) Upsert(ctx context.Context, p *entity.StoreProfile) (*entity.StoreProfile, error) {
	existing, err := r.client.StoreProfile.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to query store profile", "error", err)
		return nil, err
	}

	var row *ent.StoreProfile
	if existing == nil {
		row, err = r.client.StoreProfile.Create().
			SetName(p.Name).
			SetPhone(p.Phone).
			SetAddress(p.Address).
			Save(ctx)
	} else {
		row, err = existing.Update().
			SetName(p.Name).
			SetPhone(p.Phone).
			SetAddress(p.Address).
			Save(ctx)
	}
	if err != nil {
		r.logger.Error("failed to save store profile", "name", p.Name, "error", err)
		return nil, err
	}
	return toStoreProfile(row), nil
}

func toStoreProfile(e *ent.StoreProfile) *entity.StoreProfile {
	return &entity.StoreProfile{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Address:   e.Address,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
