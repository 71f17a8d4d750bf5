package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
)

type NewsStore struct {
	db *sqlx.DB
}

func NewNewsStore(db *sqlx.DB) *NewsStore {
	return &NewsStore{db: db}
}

func (s *NewsStore) CreateNews(ctx context.Context, news *bracket.News) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO news (id, title, summary, date)
		VALUES (:id, :title, :summary, :date)`, news)
	return err
}

func (s *NewsStore) GetNews(ctx context.Context) ([]bracket.News, error) {
	news := []bracket.News{}
	err := s.db.SelectContext(ctx, &news, "SELECT * FROM news ORDER BY date DESC")
	return news, err
}

func (s *NewsStore) DeleteNews(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM news WHERE id = ?", id)
	return err
}
