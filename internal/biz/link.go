package biz

import (
	"context"
	"errors"
	"fmt"

	"tinylink/internal/domain"
	"tinylink/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
)

// maxGenerateAttempts bounds regeneration when a generated code collides.
// Caller-supplied codes are tried exactly once.
const maxGenerateAttempts = 3

// LinkUsecase orchestrates link creation, lookup, deletion and redirects.
type LinkUsecase struct {
	repo       domain.LinkRepository
	dispatcher *event.Dispatcher
	generate   func() (string, error)
	log        *log.Helper
}

// NewLinkUsecase creates a new LinkUsecase.
func NewLinkUsecase(repo domain.LinkRepository, dispatcher *event.Dispatcher, logger log.Logger) *LinkUsecase {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &LinkUsecase{
		repo:       repo,
		dispatcher: dispatcher,
		generate:   domain.GenerateCode,
		log:        log.NewHelper(logger),
	}
}

// CreateLink validates the target and stores a new link. A non-empty code
// is used verbatim; an empty one is generated.
func (uc *LinkUsecase) CreateLink(ctx context.Context, targetURL, code string) (*domain.Link, error) {
	if err := domain.ValidateTargetURL(targetURL); err != nil {
		return nil, err
	}

	if code != "" {
		if err := domain.ValidateCode(code); err != nil {
			return nil, err
		}
		return uc.create(ctx, code, targetURL, false)
	}

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		generated, err := uc.generate()
		if err != nil {
			return nil, fmt.Errorf("generate code: %w", err)
		}

		l, err := uc.create(ctx, generated, targetURL, true)
		if errors.Is(err, domain.ErrCodeExists) {
			uc.log.WithContext(ctx).Warnf("generated code %s collided (attempt %d/%d)", generated, attempt, maxGenerateAttempts)
			continue
		}
		return l, err
	}

	return nil, domain.ErrCodeExists
}

func (uc *LinkUsecase) create(ctx context.Context, code, targetURL string, generated bool) (*domain.Link, error) {
	exists, err := uc.repo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCodeExists
	}

	l, err := uc.repo.Insert(ctx, code, targetURL)
	if err != nil {
		return nil, err
	}

	uc.dispatch(ctx, event.NewLinkCreated(l.Code(), l.TargetURL(), generated))
	return l, nil
}

// ListLinks returns every link, newest first.
func (uc *LinkUsecase) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	return uc.repo.ListAll(ctx)
}

// GetLink returns the link for code or domain.ErrLinkNotFound.
func (uc *LinkUsecase) GetLink(ctx context.Context, code string) (*domain.Link, error) {
	l, err := uc.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrLinkNotFound
	}
	return l, nil
}

// DeleteLink removes the link for code or returns domain.ErrLinkNotFound.
func (uc *LinkUsecase) DeleteLink(ctx context.Context, code string) error {
	l, err := uc.repo.DeleteByCode(ctx, code)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrLinkNotFound
	}

	uc.dispatch(ctx, event.NewLinkDeleted(l.Code(), l.TotalClicks()))
	return nil
}

// ResolveRedirect records a click and returns the target to redirect to.
// The click is stored before the caller redirects.
func (uc *LinkUsecase) ResolveRedirect(ctx context.Context, code string) (string, error) {
	l, err := uc.repo.RecordClick(ctx, code)
	if err != nil {
		return "", err
	}
	if l == nil {
		return "", domain.ErrLinkNotFound
	}

	uc.dispatch(ctx, event.NewLinkClicked(l.Code(), l.TotalClicks()))
	return l.TargetURL(), nil
}

// dispatch publishes an event after the write it describes has succeeded.
// Handler failures are logged and never fail the request.
func (uc *LinkUsecase) dispatch(ctx context.Context, e event.Event) {
	if err := uc.dispatcher.Dispatch(e); err != nil {
		uc.log.WithContext(ctx).Warnf("event %s for %s: %v", e.EventName(), e.AggregateID(), err)
	}
}
