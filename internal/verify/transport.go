package verify

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"

	"github.com/extrasuite/docsrecon/internal/retry"
)

// Transport dispatches a batchUpdate script against a live document and
// returns the post-update document, for comparison against the mock's
// output (spec.md §4.F). Implementations other than RealTransport exist
// only in tests (an in-memory fake in composite_test.go).
type Transport interface {
	BatchUpdate(ctx context.Context, documentID string, requests []*docs.Request) ([]*docs.Reply, error)
	GetDocument(ctx context.Context, documentID string) (*docs.Document, error)
}

// RealTransport wraps a *docs.Service, retrying transient failures via
// internal/retry (spec.md §6: real API calls are read once at CLI startup
// and retried on transient failure, not by the core's pure functions).
type RealTransport struct {
	svc *docs.Service
}

// NewRealTransport builds a Docs service from an OAuth2 token source, the
// same construction gogcli's docs service builder performs via
// option.WithHTTPClient/option.WithTokenSource.
func NewRealTransport(ctx context.Context, ts oauth2.TokenSource) (*RealTransport, error) {
	client := oauth2.NewClient(ctx, ts)
	svc, err := docs.NewService(ctx, option.WithHTTPClient(client), option.WithTokenSource(ts))
	if err != nil {
		return nil, err
	}
	return &RealTransport{svc: svc}, nil
}

// NewRealTransportWithClient builds a Docs service from an already
// constructed *http.Client, optionally pointed at another endpoint (for
// example an httptest.Server) via option.WithEndpoint.
func NewRealTransportWithClient(ctx context.Context, client *http.Client, endpoint string) (*RealTransport, error) {
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &RealTransport{svc: svc}, nil
}

func (t *RealTransport) BatchUpdate(ctx context.Context, documentID string, requests []*docs.Request) ([]*docs.Reply, error) {
	var resp *docs.BatchUpdateDocumentResponse
	err := retry.Do(ctx, func() error {
		var err error
		resp, err = t.svc.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{Requests: requests}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp.Replies, nil
}

func (t *RealTransport) GetDocument(ctx context.Context, documentID string) (*docs.Document, error) {
	var doc *docs.Document
	err := retry.Do(ctx, func() error {
		var err error
		doc, err = t.svc.Documents.Get(documentID).Context(ctx).Do()
		return err
	})
	return doc, err
}
