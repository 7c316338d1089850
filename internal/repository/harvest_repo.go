package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"canetrack/internal/apperror"
	"canetrack/internal/infra"
	"canetrack/internal/model"
)

// HarvestRepository is the remote side of the dual persistence layer. Every
// operation may fail with *apperror.ConnectionError; the service treats that
// as a degraded mode, not a fatal condition.
type HarvestRepository interface {
	Ping(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, h *model.Harvest) error
	ListAll(ctx context.Context) ([]model.Harvest, error)
	FindByLot(ctx context.Context, lotID string) (*model.Harvest, error)
	DeleteByLot(ctx context.Context, lotID string) error
}

type harvestRepo struct{ db *gorm.DB }

func NewHarvestRepository(db *gorm.DB) HarvestRepository { return &harvestRepo{db: db} }

func (r *harvestRepo) Ping(ctx context.Context) error {
	return infra.Ping(ctx, r.db)
}

func (r *harvestRepo) EnsureSchema(ctx context.Context) error {
	return infra.EnsureSchema(ctx, r.db)
}

func (r *harvestRepo) Insert(ctx context.Context, h *model.Harvest) error {
	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		return &apperror.ConnectionError{Err: err}
	}
	return nil
}

func (r *harvestRepo) ListAll(ctx context.Context) ([]model.Harvest, error) {
	var harvests []model.Harvest
	if err := r.db.WithContext(ctx).Order("created_at").Find(&harvests).Error; err != nil {
		return nil, &apperror.ConnectionError{Err: err}
	}
	return harvests, nil
}

func (r *harvestRepo) FindByLot(ctx context.Context, lotID string) (*model.Harvest, error) {
	var h model.Harvest
	err := r.db.WithContext(ctx).Where("lot_id = ?", lotID).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperror.NotFoundError{LotID: lotID}
	}
	if err != nil {
		return nil, &apperror.ConnectionError{Err: err}
	}
	return &h, nil
}

func (r *harvestRepo) DeleteByLot(ctx context.Context, lotID string) error {
	res := r.db.WithContext(ctx).Where("lot_id = ?", lotID).Delete(&model.Harvest{})
	if res.Error != nil {
		return &apperror.ConnectionError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &apperror.NotFoundError{LotID: lotID}
	}
	return nil
}
