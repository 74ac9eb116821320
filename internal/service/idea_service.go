package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ideadrop/internal/cache"
	"ideadrop/internal/errors"
	"ideadrop/internal/model"
	"ideadrop/internal/repository"
)

const ideaCacheTTL = 5 * time.Minute

// IdeaInput carries the user-editable idea fields.
type IdeaInput struct {
	Title       string
	Summary     string
	Description string
	Tags        model.TagList
}

// IdeaService handles idea operations. Mutations enforce ownership: only
// the user who created an idea may update or delete it, and the checks run
// in a fixed order (existence, then ownership, then validation).
type IdeaService interface {
	Create(ctx context.Context, userID uuid.UUID, input IdeaInput) (*model.Idea, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Idea, error)
	List(ctx context.Context, limit int) ([]model.Idea, error)
	Update(ctx context.Context, userID, id uuid.UUID, input IdeaInput) (*model.Idea, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ideaService struct {
	repo  repository.IdeaRepository
	cache *cache.Client
}

// NewIdeaService creates a new idea service.
func NewIdeaService(repo repository.IdeaRepository, cache *cache.Client) IdeaService {
	return &ideaService{
		repo:  repo,
		cache: cache,
	}
}

func (s *ideaService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("idea:%s", id.String())
}

// Create validates and persists a new idea owned by userID.
func (s *ideaService) Create(ctx context.Context, userID uuid.UUID, input IdeaInput) (*model.Idea, error) {
	idea, err := buildIdea(input)
	if err != nil {
		return nil, err
	}
	idea.UserID = userID

	if err := s.repo.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}
	return idea, nil
}

// Get retrieves an idea by ID with its owner preloaded, through the cache.
func (s *ideaService) Get(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Idea
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	idea, err := s.repo.FindByIDWithOwner(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrIdeaNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(idea); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, ideaCacheTTL)
	}
	return idea, nil
}

// List returns ideas newest first, capped at limit when limit > 0.
func (s *ideaService) List(ctx context.Context, limit int) ([]model.Idea, error) {
	ideas, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	if ideas == nil {
		ideas = []model.Idea{}
	}
	return ideas, nil
}

// Update replaces the editable fields of an idea owned by userID.
func (s *ideaService) Update(ctx context.Context, userID, id uuid.UUID, input IdeaInput) (*model.Idea, error) {
	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrIdeaNotFound
		}
		return nil, err
	}

	if idea.UserID != userID {
		return nil, errors.ErrNotIdeaOwner
	}

	fields, err := buildIdea(input)
	if err != nil {
		return nil, err
	}
	idea.Title = fields.Title
	idea.Summary = fields.Summary
	idea.Description = fields.Description
	idea.Tags = fields.Tags

	if err := s.repo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("update idea: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return idea, nil
}

// Delete removes an idea owned by userID.
func (s *ideaService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrIdeaNotFound
		}
		return err
	}

	if idea.UserID != userID {
		return errors.ErrNotIdeaOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// buildIdea trims and validates the editable fields and normalizes tags.
func buildIdea(input IdeaInput) (*model.Idea, error) {
	title := strings.TrimSpace(input.Title)
	summary := strings.TrimSpace(input.Summary)
	description := strings.TrimSpace(input.Description)
	if title == "" || summary == "" || description == "" {
		return nil, errors.ErrMissingFields
	}

	return &model.Idea{
		Title:       title,
		Summary:     summary,
		Description: description,
		Tags:        input.Tags.Normalize(),
	}, nil
}
