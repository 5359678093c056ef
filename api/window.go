package api

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/qrgen"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
)

//go:embed templates/window.html
var templates embed.FS

var windowTemplate = template.Must(template.ParseFS(templates, "templates/window.html"))

// Generator is the part of the generator service the window drives
type Generator interface {
	Generate(ctx context.Context, raw string) (*qrgen.Artifact, error)
	Preview(ctx context.Context, domain string) ([]byte, error)
}

// Notice is a modal notification shown once after a submit
type Notice struct {
	Kind    string
	Title   string
	Message string
}

// windowPage is the data rendered into the window template
type windowPage struct {
	Title       string
	Action      string
	Input       string
	StatusLine  string
	PreviewSrc  string
	PreviewSize int
	Placeholder string
	Notice      *Notice
}

// Window is the application context behind the form: the widget values that
// outlive a single submit.
type Window struct {
	mu            sync.Mutex
	statusLine    string
	previewDomain string
	previewStamp  int64
}

// NewWindow creates a window with the initial widget values
func NewWindow() *Window {
	return &Window{statusLine: constant.StatusLinePrefix}
}

func (w *Window) setStatus(canonicalURL string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.statusLine = constant.StatusLinePrefix + canonicalURL
}

func (w *Window) setPreview(artifact *qrgen.Artifact) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.previewDomain = artifact.Domain
	w.previewStamp = artifact.GeneratedAt.UnixNano()
}

func (w *Window) snapshot() (string, string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.previewDomain == "" {
		return w.statusLine, ""
	}
	src := constant.RoutePreviewBase + url.PathEscape(w.previewDomain) + "?v=" + strconv.FormatInt(w.previewStamp, 10)
	return w.statusLine, src
}

// Handler serves the window
type Handler struct {
	generator   Generator
	window      *Window
	previewSize int
}

// NewHandler creates a new window handler
func NewHandler(generator Generator, window *Window, previewSize int) *Handler {
	return &Handler{
		generator:   generator,
		window:      window,
		previewSize: previewSize,
	}
}

// ShowWindow renders the form with the current widget values
func (h *Handler) ShowWindow(w http.ResponseWriter, r *http.Request) {
	appLogger.CtxDebug(r.Context(), "Showing window", appLogger.LoggerInfo{
		ContextFunction: constant.CtxShowWindow,
	})
	h.render(w, r, http.StatusOK, "", nil)
}

// GenerateClick handles a submit of the form
func (h *Handler) GenerateClick(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		appLogger.CtxWarn(ctx, "Invalid form submission", appLogger.LoggerInfo{
			ContextFunction: constant.CtxGenerateClick,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeWindowForm,
				Message: err.Error(),
				Type:    constant.ErrTypeWindow,
			},
		})
		h.render(w, r, http.StatusBadRequest, "", &Notice{
			Kind:    "error",
			Title:   constant.TitleInputError,
			Message: constant.MsgInputError,
		})
		return
	}
	raw := r.PostForm.Get(constant.FormFieldURL)

	artifact, err := h.generator.Generate(ctx, raw)
	switch {
	case err == nil:
		h.window.setStatus(artifact.URL)
		h.window.setPreview(artifact)

		appLogger.CtxInfo(ctx, "QR code generated from window", appLogger.LoggerInfo{
			ContextFunction: constant.CtxGenerateClick,
			Data: map[string]interface{}{
				constant.DataURL:         artifact.URL,
				constant.DataFilePath:    artifact.Path,
				constant.DataOverwritten: artifact.Overwritten,
			},
		})

		h.render(w, r, http.StatusOK, raw, &Notice{
			Kind:    "info",
			Title:   constant.TitleSuccess,
			Message: fmt.Sprintf(constant.MsgSuccess, artifact.Path),
		})

	case errors.Is(err, qrgen.ErrEmptyInput):
		h.render(w, r, http.StatusBadRequest, raw, &Notice{
			Kind:    "error",
			Title:   constant.TitleInputError,
			Message: constant.MsgInputError,
		})

	case errors.Is(err, qrgen.ErrInvalidURL):
		h.render(w, r, http.StatusUnprocessableEntity, raw, &Notice{
			Kind:    "error",
			Title:   constant.TitleInvalidURL,
			Message: constant.MsgInvalidURL,
		})

	default:
		// the URL was accepted before generation failed
		h.window.setStatus(qrgen.NormalizeURL(strings.TrimSpace(raw)))

		appLogger.CtxError(ctx, "QR code generation failed", appLogger.LoggerInfo{
			ContextFunction: constant.CtxGenerateClick,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeWindowGenerate,
				Message: err.Error(),
				Type:    constant.ErrTypeGeneration,
			},
			Data: map[string]interface{}{
				constant.DataRawInput: raw,
			},
		})

		h.render(w, r, http.StatusInternalServerError, raw, &Notice{
			Kind:    "error",
			Title:   constant.TitleGenerationError,
			Message: fmt.Sprintf(constant.MsgGenerationError, err.Error()),
		})
	}
}

// ServePreview writes the thumbnail of the artifact saved for a domain
func (h *Handler) ServePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	domain := chi.URLParam(r, constant.URLParamDomain)

	thumb, err := h.generator.Preview(ctx, domain)
	if err != nil {
		if errors.Is(err, qrgen.ErrPreviewNotFound) {
			http.NotFound(w, r)
			return
		}

		appLogger.CtxError(ctx, "Failed to load preview", appLogger.LoggerInfo{
			ContextFunction: constant.CtxServePreview,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeWindowPreview,
				Message: err.Error(),
				Type:    constant.ErrTypeWindow,
			},
			Data: map[string]interface{}{
				constant.DataDomain: domain,
			},
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(constant.HeaderContentType, constant.ContentTypePNG)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(thumb)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, input string, notice *Notice) {
	statusLine, previewSrc := h.window.snapshot()

	var buf bytes.Buffer
	err := windowTemplate.Execute(&buf, windowPage{
		Title:       constant.WindowTitle,
		Action:      constant.RouteGenerate,
		Input:       input,
		StatusLine:  statusLine,
		PreviewSrc:  previewSrc,
		PreviewSize: h.previewSize,
		Placeholder: constant.PreviewPlaceholder,
		Notice:      notice,
	})
	if err != nil {
		appLogger.CtxError(r.Context(), "Failed to render window", appLogger.LoggerInfo{
			ContextFunction: constant.CtxShowWindow,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeWindowRender,
				Message: err.Error(),
				Type:    constant.ErrTypeWindow,
			},
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(constant.HeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
