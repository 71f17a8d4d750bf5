package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
	"github.com/yakhltv/yakhltv-api/internal/store"
)

type NewsService struct {
	store *store.NewsStore
	now   func() time.Time
}

func NewNewsService(store *store.NewsStore) *NewsService {
	return &NewsService{store: store, now: time.Now}
}

type NewsInput struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func (s *NewsService) GetNews(ctx context.Context) ([]bracket.News, error) {
	return s.store.GetNews(ctx)
}

func (s *NewsService) CreateNews(ctx context.Context, input NewsInput) (string, error) {
	if input.Title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	news := bracket.News{
		ID:      uuid.NewString(),
		Title:   input.Title,
		Summary: input.Summary,
		Date:    s.now().UTC().Format(bracket.TimeLayout),
	}
	if err := s.store.CreateNews(ctx, &news); err != nil {
		return "", err
	}
	return news.ID, nil
}

func (s *NewsService) DeleteNews(ctx context.Context, id string) error {
	return s.store.DeleteNews(ctx, id)
}
