package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"richtext-render-be/internal/dto"
	"richtext-render-be/internal/entity"
	"richtext-render-be/internal/pkg/logger"
	"richtext-render-be/internal/repository/contract"
	"richtext-render-be/pkg/events"
	"richtext-render-be/pkg/lexical"
	"richtext-render-be/pkg/lexical/htmlout"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrInvalidDocument = errors.New("invalid lexical document")

const renderModule = "RENDER"

type IRenderService interface {
	RenderTree(ctx context.Context, req *dto.RenderRequest) (*dto.RenderTreeResponse, error)
	RenderHTML(ctx context.Context, req *dto.RenderRequest) (*dto.RenderHTMLResponse, error)
	RenderText(ctx context.Context, req *dto.RenderRequest) (*dto.RenderTextResponse, error)
}

type renderService struct {
	// Consulted in order; a hit in a later tier is copied into earlier ones.
	caches           []contract.RenderCache
	publisherService IPublisherService
	logger           logger.ILogger
	mediaBaseURL     string
}

func NewRenderService(
	caches []contract.RenderCache,
	publisherService IPublisherService,
	log logger.ILogger,
	mediaBaseURL string,
) IRenderService {
	return &renderService{
		caches:           caches,
		publisherService: publisherService,
		logger:           log,
		mediaBaseURL:     mediaBaseURL,
	}
}

func (s *renderService) RenderTree(ctx context.Context, req *dto.RenderRequest) (*dto.RenderTreeResponse, error) {
	renderId := uuid.New()
	result, cached, err := s.render(ctx, entity.RenderModeTree, req)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, renderId, result, cached)

	tree := result.Tree
	if tree == nil {
		tree = req.Fallback
	}
	return &dto.RenderTreeResponse{
		RenderId: renderId,
		Cached:   cached,
		Empty:    result.Empty(),
		Tree:     tree,
	}, nil
}

func (s *renderService) RenderHTML(ctx context.Context, req *dto.RenderRequest) (*dto.RenderHTMLResponse, error) {
	renderId := uuid.New()
	result, cached, err := s.render(ctx, entity.RenderModeHTML, req)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, renderId, result, cached)

	return &dto.RenderHTMLResponse{
		RenderId: renderId,
		Cached:   cached,
		Empty:    result.Empty(),
		HTML:     result.HTML,
	}, nil
}

func (s *renderService) RenderText(ctx context.Context, req *dto.RenderRequest) (*dto.RenderTextResponse, error) {
	renderId := uuid.New()
	result, cached, err := s.render(ctx, entity.RenderModeText, req)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, renderId, result, cached)

	return &dto.RenderTextResponse{
		RenderId: renderId,
		Cached:   cached,
		Empty:    result.Empty(),
		Text:     result.Text,
	}, nil
}

func (s *renderService) render(ctx context.Context, mode entity.RenderMode, req *dto.RenderRequest) (*entity.RenderResult, bool, error) {
	ctx, span := otel.Tracer("render-service").Start(ctx, "RenderService.render")
	defer span.End()

	opts := req.Options.ToOptions(s.mediaBaseURL)
	fingerprint, err := Fingerprint(mode, req.Document, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fingerprint failed")
		return nil, false, err
	}
	span.SetAttributes(
		attribute.String("render.mode", string(mode)),
		attribute.String("render.fingerprint", fingerprint),
	)

	if result := s.lookup(ctx, fingerprint); result != nil {
		span.SetAttributes(attribute.Bool("render.cached", true))
		return result, true, nil
	}

	doc, err := lexical.ParseDocument(req.Document)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid document")
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	tree := lexical.Render(doc, opts)
	result := &entity.RenderResult{
		Fingerprint: fingerprint,
		Mode:        mode,
		Elements:    tree.Count(),
		RenderedAt:  time.Now(),
	}

	switch mode {
	case entity.RenderModeTree:
		result.Tree = tree
	case entity.RenderModeHTML:
		html, err := htmlout.Render(tree)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "html serialization failed")
			return nil, false, fmt.Errorf("failed to serialize document: %w", err)
		}
		result.HTML = html
	case entity.RenderModeText:
		result.Text = lexical.PlainText(doc)
	}

	s.store(ctx, 0, len(s.caches), result)
	span.SetAttributes(attribute.Int("render.elements", result.Elements))
	return result, false, nil
}

func (s *renderService) lookup(ctx context.Context, fingerprint string) *entity.RenderResult {
	for i, cache := range s.caches {
		result, err := cache.Get(ctx, fingerprint)
		if err != nil {
			s.logger.Warn(renderModule, "Render cache read failed", map[string]interface{}{
				"error":       err.Error(),
				"fingerprint": fingerprint,
				"tier":        i,
			})
			continue
		}
		if result != nil {
			s.store(ctx, 0, i, result)
			return result
		}
	}
	return nil
}

// store writes result into caches[from:to]. Failures only degrade caching.
func (s *renderService) store(ctx context.Context, from, to int, result *entity.RenderResult) {
	for i := from; i < to; i++ {
		if err := s.caches[i].Set(ctx, result); err != nil {
			s.logger.Warn(renderModule, "Render cache write failed", map[string]interface{}{
				"error":       err.Error(),
				"fingerprint": result.Fingerprint,
				"tier":        i,
			})
		}
	}
}

func (s *renderService) publish(ctx context.Context, renderId uuid.UUID, result *entity.RenderResult, cached bool) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(events.DocumentRendered{
		RenderId:    renderId,
		Fingerprint: result.Fingerprint,
		Mode:        string(result.Mode),
		Elements:    result.Elements,
		Empty:       result.Empty(),
		Cached:      cached,
		RenderedAt:  time.Now(),
	})
	if err != nil {
		s.logger.Error(renderModule, "Failed to encode render event", map[string]interface{}{"error": err.Error()})
		return
	}

	// Rendering already succeeded; the event is auxiliary.
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn(renderModule, "Failed to publish render event", map[string]interface{}{
			"error":     err.Error(),
			"render_id": renderId.String(),
		})
	}
}

// Fingerprint identifies a render by output mode, document bytes, and the
// serializable options. Map keys are marshaled sorted, so equal options
// always hash equally.
func Fingerprint(mode entity.RenderMode, document []byte, opts lexical.Options) (string, error) {
	optsJSON, err := json.Marshal(struct {
		TextProps    lexical.Props `json:"t"`
		HeadingProps lexical.Props `json:"h"`
		LinkProps    lexical.Props `json:"l"`
		ImageProps   lexical.Props `json:"i"`
		CodeProps    lexical.Props `json:"c"`
		MediaBaseURL string        `json:"m"`
	}{opts.TextProps, opts.HeadingProps, opts.LinkProps, opts.ImageProps, opts.CodeProps, opts.MediaBaseURL})
	if err != nil {
		return "", fmt.Errorf("failed to encode render options: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(mode))
	h.Write([]byte{0})
	h.Write(optsJSON)
	h.Write([]byte{0})
	h.Write(document)
	return hex.EncodeToString(h.Sum(nil)), nil
}
