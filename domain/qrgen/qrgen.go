package qrgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/infrastructure/cache"
	"github.com/prasetyowira/qrgen/infrastructure/logger"
)

var (
	// ErrEmptyInput is returned when the submitted text is blank.
	ErrEmptyInput = errors.New(constant.ErrEmptyInput)
	// ErrInvalidURL is returned when the normalized URL fails validation.
	ErrInvalidURL = errors.New(constant.ErrInvalidURL)
	// ErrGeneration matches every *GenerationError.
	ErrGeneration = errors.New(constant.ErrGeneration)
	// ErrPreviewNotFound is returned by Preview when no artifact exists for a domain.
	ErrPreviewNotFound = errors.New(constant.ErrPreviewNotFound)
)

// GenerationError wraps a failure raised while encoding, saving or
// previewing a QR code.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrGeneration) match any GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// Artifact describes a generated QR code saved to disk.
type Artifact struct {
	URL         string
	Domain      string
	FileName    string
	Path        string
	Preview     []byte
	GeneratedAt time.Time
	Overwritten bool
}

// Encoder turns content into a PNG-encoded QR code.
type Encoder interface {
	Encode(content string) ([]byte, error)
}

// Sink stores artifact files by name.
type Sink interface {
	Write(name string, data []byte) (overwritten bool, err error)
	Read(name string) ([]byte, error)
	Exists(name string) (bool, error)
	Path(name string) string
}

// Previewer renders a display thumbnail from a PNG image.
type Previewer interface {
	Thumbnail(png []byte) ([]byte, error)
}

// Service validates input and produces one QR code artifact per domain.
type Service struct {
	encoder   Encoder
	sink      Sink
	previewer Previewer
	previews  *cache.NamespaceLRU[[]byte]
	now       func() time.Time

	// one generate runs at a time; preview re-renders wait for it
	mu sync.Mutex
}

// NewService creates a new generator service
func NewService(encoder Encoder, sink Sink, previewer Previewer, previews *cache.NamespaceLRU[[]byte]) *Service {
	logger.CtxDebug(context.Background(), "Creating generator service", logger.LoggerInfo{
		ContextFunction: constant.CtxDomain,
		Data: map[string]interface{}{
			constant.DataService: "qrgen",
		},
	})

	return &Service{
		encoder:   encoder,
		sink:      sink,
		previewer: previewer,
		previews:  previews,
		now:       time.Now,
	}
}

// Prepare trims raw input, canonicalizes it and validates the result. It
// returns the canonical URL and its normalized domain.
func Prepare(raw string) (string, string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", ErrEmptyInput
	}

	canonical := NormalizeURL(trimmed)
	if !IsValidURL(canonical) {
		return canonical, "", ErrInvalidURL
	}

	domain, err := DomainFromURL(canonical)
	if err != nil {
		return canonical, "", ErrInvalidURL
	}
	return canonical, domain, nil
}

// Generate validates raw, encodes the canonical URL as a QR code, saves it as
// <output>/<domain>.png (replacing any earlier file for the domain) and
// renders its preview thumbnail.
func (s *Service) Generate(ctx context.Context, raw string) (*Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.CtxDebug(ctx, "Generating QR code", logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataRawInput: raw,
		},
	})

	canonical, domain, err := Prepare(raw)
	if err != nil {
		code := constant.ErrCodeInvalidURL
		if errors.Is(err, ErrEmptyInput) {
			code = constant.ErrCodeEmptyInput
		}
		logger.CtxWarn(ctx, "Rejected input", logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    code,
				Message: err.Error(),
				Type:    constant.ErrTypeValidation,
			},
			Data: map[string]interface{}{
				constant.DataRawInput: raw,
				constant.DataURL:      canonical,
			},
		})
		return nil, err
	}

	fileName := DomainToFilename(domain)
	artifact := &Artifact{
		URL:      canonical,
		Domain:   domain,
		FileName: fileName,
		Path:     s.sink.Path(fileName),
	}

	png, err := s.encoder.Encode(canonical)
	if err != nil {
		return nil, s.fail(ctx, artifact, constant.CtxEncoder, constant.ErrCodeEncode, err)
	}

	artifact.Overwritten, err = s.sink.Write(fileName, png)
	if err != nil {
		return nil, s.fail(ctx, artifact, constant.CtxStorage, constant.ErrCodeSave, err)
	}

	// the preview is rendered from the saved file, as displayed to the user
	saved, err := s.sink.Read(fileName)
	if err != nil {
		return nil, s.fail(ctx, artifact, constant.CtxStorage, constant.ErrCodePreview, err)
	}
	artifact.Preview, err = s.previewer.Thumbnail(saved)
	if err != nil {
		return nil, s.fail(ctx, artifact, constant.CtxRenderer, constant.ErrCodePreview, err)
	}

	s.previews.Set(constant.PreviewNamespace, domain, artifact.Preview)
	artifact.GeneratedAt = s.now()

	logger.CtxInfo(ctx, "QR code generated", logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Data: map[string]interface{}{
			constant.DataURL:         artifact.URL,
			constant.DataDomain:      artifact.Domain,
			constant.DataFilePath:    artifact.Path,
			constant.DataOverwritten: artifact.Overwritten,
			constant.DataBytes:       len(png),
		},
	})

	return artifact, nil
}

func (s *Service) fail(ctx context.Context, artifact *Artifact, stage, code string, err error) error {
	logger.CtxError(ctx, "Failed to generate QR code", logger.LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Error: &logger.CustomError{
			Code:    code,
			Message: err.Error(),
			Type:    constant.ErrTypeGeneration,
		},
		Data: map[string]interface{}{
			constant.DataURL:      artifact.URL,
			constant.DataDomain:   artifact.Domain,
			constant.DataFilePath: artifact.Path,
		},
	})
	// the saved file may no longer match the cached thumbnail
	s.previews.Invalidate(constant.PreviewNamespace, artifact.Domain)

	return &GenerationError{Stage: stage, Err: err}
}

// Preview returns the thumbnail of the artifact saved for domain. Cached
// thumbnails are served directly; otherwise the saved file is re-rendered.
func (s *Service) Preview(ctx context.Context, domain string) ([]byte, error) {
	domain = NormalizeDomain(domain)

	if thumb, found := s.previews.Get(constant.PreviewNamespace, domain); found {
		logger.CtxDebug(ctx, "Preview served from cache", logger.LoggerInfo{
			ContextFunction: constant.CtxPreview,
			Data: map[string]interface{}{
				constant.DataDomain:   domain,
				constant.DataCacheHit: true,
			},
		})
		return thumb, nil
	}

	if !IsValidDomain(domain) {
		return nil, ErrPreviewNotFound
	}

	// wait for a running generate so the file is never read mid-write
	s.mu.Lock()
	defer s.mu.Unlock()

	if thumb, found := s.previews.Get(constant.PreviewNamespace, domain); found {
		return thumb, nil
	}

	fileName := DomainToFilename(domain)
	exists, err := s.sink.Exists(fileName)
	if err != nil {
		return nil, err
	}
	if !exists {
		logger.CtxInfo(ctx, "No artifact saved for domain", logger.LoggerInfo{
			ContextFunction: constant.CtxPreview,
			Error: &logger.CustomError{
				Code:    constant.ErrCodePreviewNotFound,
				Message: constant.ErrPreviewNotFound,
				Type:    constant.ErrTypeRetrieval,
			},
			Data: map[string]interface{}{
				constant.DataDomain: domain,
			},
		})
		return nil, ErrPreviewNotFound
	}

	saved, err := s.sink.Read(fileName)
	if err != nil {
		return nil, err
	}
	thumb, err := s.previewer.Thumbnail(saved)
	if err != nil {
		return nil, fmt.Errorf("render preview for %s: %w", domain, err)
	}
	s.previews.Set(constant.PreviewNamespace, domain, thumb)

	logger.CtxDebug(ctx, "Preview rendered from saved file", logger.LoggerInfo{
		ContextFunction: constant.CtxPreview,
		Data: map[string]interface{}{
			constant.DataDomain:   domain,
			constant.DataFilePath: s.sink.Path(fileName),
			constant.DataCacheHit: false,
		},
	})

	return thumb, nil
}
