package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ideadrop/internal/model"
)

// IdeaRepository defines idea persistence operations.
type IdeaRepository interface {
	Create(ctx context.Context, idea *model.Idea) error
	Update(ctx context.Context, idea *model.Idea) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Idea, error)
	FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.Idea, error)
	List(ctx context.Context, limit int) ([]model.Idea, error)
	DeleteAll(ctx context.Context) error
	CreateBatch(ctx context.Context, ideas []model.Idea) error
}

type ideaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository builds a GORM-backed repository.
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) Create(ctx context.Context, idea *model.Idea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

func (r *ideaRepository) Update(ctx context.Context, idea *model.Idea) error {
	return r.db.WithContext(ctx).Save(idea).Error
}

func (r *ideaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Idea{}).Error
}

func (r *ideaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	var idea model.Idea
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&idea).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// FindByIDWithOwner loads an idea with its owning user preloaded.
func (r *ideaRepository) FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	var idea model.Idea
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&idea).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// List returns ideas ordered newest first. A limit <= 0 means no limit.
func (r *ideaRepository) List(ctx context.Context, limit int) ([]model.Idea, error) {
	var ideas []model.Idea
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// DeleteAll removes every idea. Used by the seed tool.
func (r *ideaRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Idea{}).Error
}

func (r *ideaRepository) CreateBatch(ctx context.Context, ideas []model.Idea) error {
	if len(ideas) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ideas).Error
}
