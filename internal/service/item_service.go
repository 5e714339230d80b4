package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"github.com/sreeja24H51A66DH/lendahand1/internal/repository"
	"github.com/sreeja24H51A66DH/lendahand1/internal/storage"
	"gorm.io/gorm"
)

type CreateItemInput struct {
	Title        string
	Description  string
	Category     string
	Location     string
	ContactPhone string
	Image        []byte
	ContentType  string
}

type ItemService interface {
	Create(ctx context.Context, ownerID string, in CreateItemInput) (*model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context, category, search string) ([]model.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Item, error)
	UpdateStatus(ctx context.Context, id, requesterID string, status model.ItemStatus) error
}

type itemService struct {
	repo     repository.ItemRepository
	userRepo repository.UserRepository
	uploader storage.Uploader
}

func NewItemService(repo repository.ItemRepository, userRepo repository.UserRepository, uploader storage.Uploader) ItemService {
	return &itemService{repo: repo, userRepo: userRepo, uploader: uploader}
}

func (s *itemService) Create(ctx context.Context, ownerID string, in CreateItemInput) (*model.Item, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	category := strings.TrimSpace(in.Category)

	if title == "" || len(title) > 120 {
		return nil, fmt.Errorf("%w: invalid title", ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if len(in.Image) == 0 {
		return nil, fmt.Errorf("%w: image file is required", ErrValidation)
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, fmt.Errorf("%w: only image files are allowed", ErrValidation)
	}

	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	// Upload must complete before the item row is written: a failed upload
	// leaves no partial item behind.
	imageURL, err := s.uploader.Upload(ctx, in.Image, in.ContentType, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaUpload, err)
	}

	item := &model.Item{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		Category:     category,
		ImageURL:     imageURL,
		Location:     strings.TrimSpace(in.Location),
		ContactName:  owner.Name,
		ContactEmail: owner.Email,
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		OwnerID:      owner.ID,
		Status:       model.ItemStatusAvailable,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, category, search string) ([]model.Item, error) {
	return s.repo.List(ctx, strings.TrimSpace(category), strings.TrimSpace(search))
}

func (s *itemService) ListByOwner(ctx context.Context, ownerID string) ([]model.Item, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *itemService) UpdateStatus(ctx context.Context, id, requesterID string, status model.ItemStatus) error {
	if !model.ValidItemStatus(status) {
		return fmt.Errorf("%w: status must be available or taken", ErrValidation)
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.OwnerID != requesterID {
		return ErrForbidden
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
