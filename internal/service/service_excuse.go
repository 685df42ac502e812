package service

import (
	"context"
	"fmt"

	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/internal/generator"
	"github.com/yjkwon-dev/pinggye/internal/store"
	"github.com/yjkwon-dev/pinggye/models"
)

// Excuses implements ExcuseService.
type Excuses struct {
	excuses store.ExcuseRepository
	usage   store.UsageRepository
	gen     generator.Generator
	log     *logger.Logger
}

// NewExcuseService creates the excuse service.
func NewExcuseService(excuses store.ExcuseRepository, usage store.UsageRepository, gen generator.Generator, log *logger.Logger) *Excuses {
	return &Excuses{excuses: excuses, usage: usage, gen: gen, log: log}
}

// GenerateExcuse runs the full generation flow: validate, generate, persist,
// count. Generation itself never fails; storage errors propagate.
func (e *Excuses) GenerateExcuse(ctx context.Context, req models.ExcuseRequest, owner *string) (*models.Excuse, error) {
	category := models.Category(req.Category)
	if !category.ValidRequestCategory() {
		return nil, ErrInvalidCategory
	}
	tone := models.Tone(req.Tone)
	if !tone.Valid() {
		return nil, ErrInvalidTone
	}

	result := e.gen.Generate(ctx, generator.Request{
		Category:  category,
		Tone:      tone,
		UserInput: req.UserInput,
		Subject:   req.Subject,
		Timeframe: req.Timeframe,
	})

	var userInput *string
	if req.UserInput != "" {
		userInput = &req.UserInput
	}

	excuse, err := e.excuses.CreateExcuse(ctx, store.ExcuseDraft{
		Category:  result.Category,
		Tone:      result.Tone,
		Content:   result.Excuse,
		UserInput: userInput,
	}, owner)
	if err != nil {
		return nil, fmt.Errorf("error persisting excuse: %w", err)
	}

	if _, err = e.usage.IncrementUsage(ctx, owner); err != nil {
		return nil, fmt.Errorf("error counting usage: %w", err)
	}

	return excuse, nil
}

func (e *Excuses) GetRecentExcuses(ctx context.Context, limit int, owner *string) ([]models.Excuse, error) {
	return e.excuses.GetRecentExcuses(ctx, limit, owner)
}

func (e *Excuses) GetBookmarkedExcuses(ctx context.Context, owner *string) ([]models.Excuse, error) {
	return e.excuses.GetBookmarkedExcuses(ctx, owner)
}

func (e *Excuses) SetBookmark(ctx context.Context, id int64, bookmarked bool) (*models.Excuse, error) {
	return e.excuses.SetBookmark(ctx, id, bookmarked)
}

func (e *Excuses) ClearExcuses(ctx context.Context, owner *string) error {
	return e.excuses.ClearExcuses(ctx, owner)
}
