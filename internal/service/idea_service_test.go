package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"ideadrop/internal/errors"
	"ideadrop/internal/model"
)

// MockIdeaRepository is a mock implementation of IdeaRepository.
type MockIdeaRepository struct {
	mock.Mock
}

func (m *MockIdeaRepository) Create(ctx context.Context, idea *model.Idea) error {
	args := m.Called(ctx, idea)
	return args.Error(0)
}

func (m *MockIdeaRepository) Update(ctx context.Context, idea *model.Idea) error {
	args := m.Called(ctx, idea)
	return args.Error(0)
}

func (m *MockIdeaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIdeaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Idea), args.Error(1)
}

func (m *MockIdeaRepository) FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Idea), args.Error(1)
}

func (m *MockIdeaRepository) List(ctx context.Context, limit int) ([]model.Idea, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Idea), args.Error(1)
}

func (m *MockIdeaRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockIdeaRepository) CreateBatch(ctx context.Context, ideas []model.Idea) error {
	args := m.Called(ctx, ideas)
	return args.Error(0)
}

func TestIdeaService_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		input         IdeaInput
		setupMock     func(*MockIdeaRepository)
		expectedError error
		expectedTags  model.TagList
	}{
		{
			name: "successful create with tag normalization",
			input: IdeaInput{
				Title:       "  My Idea  ",
				Summary:     "A summary",
				Description: "A description",
				Tags:        model.TagList{"a", " b", " ", "a"},
			},
			setupMock: func(m *MockIdeaRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Idea")).Return(nil)
			},
			expectedTags: model.TagList{"a", "b"},
		},
		{
			name: "whitespace-only title rejected",
			input: IdeaInput{
				Title:       "   ",
				Summary:     "A summary",
				Description: "A description",
			},
			setupMock:     func(m *MockIdeaRepository) {},
			expectedError: errors.ErrMissingFields,
		},
		{
			name: "missing description rejected",
			input: IdeaInput{
				Title:   "My Idea",
				Summary: "A summary",
			},
			setupMock:     func(m *MockIdeaRepository) {},
			expectedError: errors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockIdeaRepository)
			tt.setupMock(mockRepo)

			svc := NewIdeaService(mockRepo, nil)
			idea, err := svc.Create(context.Background(), userID, tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, idea)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, idea)
				assert.Equal(t, "My Idea", idea.Title)
				assert.Equal(t, userID, idea.UserID)
				assert.Equal(t, tt.expectedTags, idea.Tags)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestIdeaService_Get(t *testing.T) {
	ideaID := uuid.New()

	t.Run("found with owner expanded", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByIDWithOwner", mock.Anything, ideaID).Return(&model.Idea{
			ID:    ideaID,
			Title: "My Idea",
			User:  &model.User{Name: "Owner", Email: "owner@example.com"},
		}, nil)

		svc := NewIdeaService(mockRepo, nil)
		idea, err := svc.Get(context.Background(), ideaID)

		assert.NoError(t, err)
		assert.Equal(t, "My Idea", idea.Title)
		assert.NotNil(t, idea.User)
		assert.Equal(t, "owner@example.com", idea.User.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByIDWithOwner", mock.Anything, ideaID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewIdeaService(mockRepo, nil)
		idea, err := svc.Get(context.Background(), ideaID)

		assert.ErrorIs(t, err, errors.ErrIdeaNotFound)
		assert.Nil(t, idea)
		mockRepo.AssertExpectations(t)
	})
}

func TestIdeaService_Update(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	ideaID := uuid.New()

	validInput := IdeaInput{
		Title:       "New Title",
		Summary:     "New summary",
		Description: "New description",
		Tags:        model.TagList{"x"},
	}

	t.Run("owner updates successfully", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByID", mock.Anything, ideaID).Return(&model.Idea{
			ID:     ideaID,
			Title:  "Old Title",
			UserID: ownerID,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Idea")).Return(nil)

		svc := NewIdeaService(mockRepo, nil)
		idea, err := svc.Update(context.Background(), ownerID, ideaID, validInput)

		assert.NoError(t, err)
		assert.Equal(t, "New Title", idea.Title)
		assert.Equal(t, model.TagList{"x"}, idea.Tags)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByID", mock.Anything, ideaID).Return(&model.Idea{
			ID:     ideaID,
			UserID: ownerID,
		}, nil)

		svc := NewIdeaService(mockRepo, nil)
		idea, err := svc.Update(context.Background(), otherID, ideaID, validInput)

		assert.ErrorIs(t, err, errors.ErrNotIdeaOwner)
		assert.Nil(t, idea)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing idea reads as not found even for non-owner", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByID", mock.Anything, ideaID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewIdeaService(mockRepo, nil)
		_, err := svc.Update(context.Background(), otherID, ideaID, validInput)

		assert.ErrorIs(t, err, errors.ErrIdeaNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ownership checked before validation", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByID", mock.Anything, ideaID).Return(&model.Idea{
			ID:     ideaID,
			UserID: ownerID,
		}, nil)

		svc := NewIdeaService(mockRepo, nil)
		_, err := svc.Update(context.Background(), otherID, ideaID, IdeaInput{})

		// a non-owner submitting an invalid body still gets the ownership error
		assert.ErrorIs(t, err, errors.ErrNotIdeaOwner)
		mockRepo.AssertExpectations(t)
	})

	t.Run("owner with empty fields gets validation error", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByID", mock.Anything, ideaID).Return(&model.Idea{
			ID:     ideaID,
			UserID: ownerID,
		}, nil)

		svc := NewIdeaService(mockRepo, nil)
		_, err := svc.Update(context.Background(), ownerID, ideaID, IdeaInput{})

		assert.ErrorIs(t, err, errors.ErrMissingFields)
		mockRepo.AssertExpectations(t)
	})
}

func TestIdeaService_Delete(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	ideaID := uuid.New()

	t.Run("owner deletes successfully", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByID", mock.Anything, ideaID).Return(&model.Idea{
			ID:     ideaID,
			UserID: ownerID,
		}, nil)
		mockRepo.On("Delete", mock.Anything, ideaID).Return(nil)

		svc := NewIdeaService(mockRepo, nil)
		err := svc.Delete(context.Background(), ownerID, ideaID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByID", mock.Anything, ideaID).Return(&model.Idea{
			ID:     ideaID,
			UserID: ownerID,
		}, nil)

		svc := NewIdeaService(mockRepo, nil)
		err := svc.Delete(context.Background(), otherID, ideaID)

		assert.ErrorIs(t, err, errors.ErrNotIdeaOwner)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nonexistent idea is not found", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("FindByID", mock.Anything, ideaID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewIdeaService(mockRepo, nil)
		err := svc.Delete(context.Background(), ownerID, ideaID)

		assert.ErrorIs(t, err, errors.ErrIdeaNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestIdeaService_List(t *testing.T) {
	t.Run("empty store yields empty non-nil slice", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("List", mock.Anything, 0).Return([]model.Idea(nil), nil)

		svc := NewIdeaService(mockRepo, nil)
		ideas, err := svc.List(context.Background(), 0)

		assert.NoError(t, err)
		assert.NotNil(t, ideas)
		assert.Empty(t, ideas)
		mockRepo.AssertExpectations(t)
	})

	t.Run("limit forwarded to repository", func(t *testing.T) {
		mockRepo := new(MockIdeaRepository)
		mockRepo.On("List", mock.Anything, 2).Return([]model.Idea{
			{Title: "Newest"},
			{Title: "Older"},
		}, nil)

		svc := NewIdeaService(mockRepo, nil)
		ideas, err := svc.List(context.Background(), 2)

		assert.NoError(t, err)
		assert.Len(t, ideas, 2)
		assert.Equal(t, "Newest", ideas[0].Title)
		mockRepo.AssertExpectations(t)
	})
}
