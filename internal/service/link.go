package service

import (
	"context"
	"net/http"
	"time"

	"tinylink/internal/biz"
	"tinylink/internal/domain"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/samber/lo"
)

// Version is reported by the health endpoint.
const Version = "1.0"

// ReasonInvalidBody marks request bodies that could not be decoded.
const ReasonInvalidBody = "INVALID_BODY"

// CreateLinkRequest is the body of POST /api/links.
type CreateLinkRequest struct {
	TargetURL string `json:"targetUrl"`
	Code      string `json:"code"`
}

// GetLinkRequest addresses a single link by code.
type GetLinkRequest struct {
	Code string `json:"code"`
}

// DeleteLinkRequest addresses the link to delete.
type DeleteLinkRequest struct {
	Code string `json:"code"`
}

// DeleteLinkReply is empty; the transport answers 204.
type DeleteLinkReply struct{}

// ListLinksRequest has no parameters.
type ListLinksRequest struct{}

// RedirectRequest addresses the link to follow.
type RedirectRequest struct {
	Code string `json:"code"`
}

// RedirectReply carries the redirect target.
type RedirectReply struct {
	TargetURL string `json:"targetUrl"`
}

// Redirect implements the kratos http.Redirector contract.
func (r *RedirectReply) Redirect() (string, int) {
	return r.TargetURL, http.StatusFound
}

// HealthRequest has no parameters.
type HealthRequest struct{}

// HealthReply is the liveness payload.
type HealthReply struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
}

// LinkReply is the JSON shape of a link.
type LinkReply struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	TargetURL   string     `json:"targetUrl"`
	TotalClicks int64      `json:"totalClicks"`
	LastClicked *time.Time `json:"lastClicked"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// LinkService adapts the link usecase to the HTTP surface.
type LinkService struct {
	uc *biz.LinkUsecase
}

// NewLinkService creates a new LinkService.
func NewLinkService(uc *biz.LinkUsecase) *LinkService {
	return &LinkService{uc: uc}
}

func (s *LinkService) Health(context.Context, *HealthRequest) (*HealthReply, error) {
	return &HealthReply{OK: true, Version: Version}, nil
}

func (s *LinkService) CreateLink(ctx context.Context, req *CreateLinkRequest) (*LinkReply, error) {
	l, err := s.uc.CreateLink(ctx, req.TargetURL, req.Code)
	if err != nil {
		return nil, err
	}
	return toLinkReply(l), nil
}

func (s *LinkService) ListLinks(ctx context.Context, _ *ListLinksRequest) ([]*LinkReply, error) {
	links, err := s.uc.ListLinks(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(links, func(l *domain.Link, _ int) *LinkReply {
		return toLinkReply(l)
	}), nil
}

func (s *LinkService) GetLink(ctx context.Context, req *GetLinkRequest) (*LinkReply, error) {
	l, err := s.uc.GetLink(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	return toLinkReply(l), nil
}

func (s *LinkService) DeleteLink(ctx context.Context, req *DeleteLinkRequest) (*DeleteLinkReply, error) {
	if err := s.uc.DeleteLink(ctx, req.Code); err != nil {
		return nil, err
	}
	return &DeleteLinkReply{}, nil
}

func (s *LinkService) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectReply, error) {
	target, err := s.uc.ResolveRedirect(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	return &RedirectReply{TargetURL: target}, nil
}

func toLinkReply(l *domain.Link) *LinkReply {
	return &LinkReply{
		ID:          l.ID(),
		Code:        l.Code(),
		TargetURL:   l.TargetURL(),
		TotalClicks: l.TotalClicks(),
		LastClicked: l.LastClicked(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
}

// errInvalidBody wraps a body decoding failure as a 400.
func errInvalidBody(cause error) error {
	return errors.BadRequest(ReasonInvalidBody, "Invalid JSON body").WithCause(cause)
}
