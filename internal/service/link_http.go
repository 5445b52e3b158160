package service

import (
	"context"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationLinkHealth     = "/tinylink.v1.Link/Health"
	OperationLinkCreateLink = "/tinylink.v1.Link/CreateLink"
	OperationLinkListLinks  = "/tinylink.v1.Link/ListLinks"
	OperationLinkGetLink    = "/tinylink.v1.Link/GetLink"
	OperationLinkDeleteLink = "/tinylink.v1.Link/DeleteLink"
	OperationLinkRedirect   = "/tinylink.v1.Link/Redirect"
)

// LinkHTTPServer is the HTTP surface of the link service.
type LinkHTTPServer interface {
	Health(context.Context, *HealthRequest) (*HealthReply, error)
	CreateLink(context.Context, *CreateLinkRequest) (*LinkReply, error)
	ListLinks(context.Context, *ListLinksRequest) ([]*LinkReply, error)
	GetLink(context.Context, *GetLinkRequest) (*LinkReply, error)
	DeleteLink(context.Context, *DeleteLinkRequest) (*DeleteLinkReply, error)
	Redirect(context.Context, *RedirectRequest) (*RedirectReply, error)
}

// RegisterLinkHTTPServer mounts the routes. The catch-all redirect route is
// registered last so fixed paths win.
func RegisterLinkHTTPServer(s *http.Server, srv LinkHTTPServer) {
	r := s.Route("/")
	r.GET("/healthz", _Link_Health0_HTTP_Handler(srv))
	r.POST("/api/links", _Link_CreateLink0_HTTP_Handler(srv))
	r.GET("/api/links", _Link_ListLinks0_HTTP_Handler(srv))
	r.GET("/api/links/{code}", _Link_GetLink0_HTTP_Handler(srv))
	r.DELETE("/api/links/{code}", _Link_DeleteLink0_HTTP_Handler(srv))
	r.GET("/{code}", _Link_Redirect0_HTTP_Handler(srv))
}

func _Link_Health0_HTTP_Handler(srv LinkHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in HealthRequest
		http.SetOperation(ctx, OperationLinkHealth)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Health(ctx, req.(*HealthRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*HealthReply)
		return ctx.Result(200, reply)
	}
}

func _Link_CreateLink0_HTTP_Handler(srv LinkHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in CreateLinkRequest
		if err := ctx.Bind(&in); err != nil {
			return errInvalidBody(err)
		}
		http.SetOperation(ctx, OperationLinkCreateLink)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CreateLink(ctx, req.(*CreateLinkRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*LinkReply)
		return ctx.Result(201, reply)
	}
}

func _Link_ListLinks0_HTTP_Handler(srv LinkHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListLinksRequest
		http.SetOperation(ctx, OperationLinkListLinks)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListLinks(ctx, req.(*ListLinksRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.([]*LinkReply)
		return ctx.Result(200, reply)
	}
}

func _Link_GetLink0_HTTP_Handler(srv LinkHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetLinkRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationLinkGetLink)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetLink(ctx, req.(*GetLinkRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*LinkReply)
		return ctx.Result(200, reply)
	}
}

func _Link_DeleteLink0_HTTP_Handler(srv LinkHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in DeleteLinkRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationLinkDeleteLink)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.DeleteLink(ctx, req.(*DeleteLinkRequest))
		})
		if _, err := h(ctx, &in); err != nil {
			return err
		}
		ctx.Response().WriteHeader(nethttp.StatusNoContent)
		return nil
	}
}

// The redirect route answers failures in plain text, not JSON.
func _Link_Redirect0_HTTP_Handler(srv LinkHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in RedirectRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationLinkRedirect)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Redirect(ctx, req.(*RedirectRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			if errors.FromError(err).Code == nethttp.StatusNotFound {
				return ctx.String(nethttp.StatusNotFound, "Not found")
			}
			return ctx.String(nethttp.StatusInternalServerError, "Server error")
		}
		reply := out.(*RedirectReply)
		return ctx.Result(nethttp.StatusFound, reply)
	}
}
