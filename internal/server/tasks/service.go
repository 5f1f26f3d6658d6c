package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// Service validates input shapes before the repository persists them.
// It is the single write path for task records.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// validateText trims the text and rejects values that are empty after
// trimming. The trimmed form is what gets persisted.
func validateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("%w: text must not be empty", common.ErrValidation)
	}
	return trimmed, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Task, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, text string) (*models.Task, error) {
	valid, err := validateText(text)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, valid)
}

func (s *Service) Update(ctx context.Context, id int64, text *string, completed *bool) (*models.Task, error) {
	if text == nil && completed == nil {
		return nil, fmt.Errorf("%w: provide at least one field: text or completed", common.ErrValidation)
	}

	if text != nil {
		valid, err := validateText(*text)
		if err != nil {
			return nil, err
		}
		text = &valid
	}

	return s.repo.Update(ctx, id, text, completed)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
