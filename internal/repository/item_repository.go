package repository

import (
	"context"
	"strings"

	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"gorm.io/gorm"
)

// listCap bounds every listing query; there is no pagination.
const listCap = 1000

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context, category, search string) ([]model.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Item, error)
	UpdateStatus(ctx context.Context, id string, status model.ItemStatus) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, category, search string) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if category != "" && category != "All" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var items []model.Item
	if err := q.Order("created_at DESC").Limit(listCap).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(listCap).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) UpdateStatus(ctx context.Context, id string, status model.ItemStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", id).
		Update("status", status).Error
}
