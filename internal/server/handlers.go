package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
	"github.com/shouni/gemini-poem-kit/pkg/generator"
	"github.com/shouni/gemini-poem-kit/pkg/imgutil"
)

// ImageFetcher はリモート画像を ImagePayload として取得します。
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (domain.ImagePayload, error)
}

// Options は Handler の動作設定です。
type Options struct {
	MaxUploadBytes int64
	SampleImages   []string
}

// Handler は詩生成 API の HTTP ハンドラー群です。
type Handler struct {
	generator      generator.PoemGenerator
	fetcher        ImageFetcher
	logger         zerolog.Logger
	maxUploadBytes int64
	samples        []string
}

const defaultMaxUploadBytes = 20 << 20

// NewHandler は依存関係を注入して Handler を初期化します。
func NewHandler(gen generator.PoemGenerator, fetcher ImageFetcher, logger zerolog.Logger, opts Options) (*Handler, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is required")
	}

	maxBytes := opts.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	samples := opts.SampleImages
	if len(samples) == 0 {
		samples = imgutil.SampleImages
	}

	return &Handler{
		generator:      gen,
		fetcher:        fetcher,
		logger:         logger,
		maxUploadBytes: maxBytes,
		samples:        samples,
	}, nil
}

type poemRequest struct {
	Image    *domain.ImagePayload `json:"image"`
	DataURL  string               `json:"dataUrl"`
	ImageURL string               `json:"imageUrl"`
	Options  domain.PoemOptions   `json:"options"`
}

type poemResponse struct {
	Poem      string `json:"poem"`
	RequestID string `json:"requestId"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

type optionsResponse struct {
	Modes    []domain.Mode      `json:"modes"`
	Forms    []domain.Form      `json:"forms"`
	Tones    []domain.Tone      `json:"tones"`
	Defaults domain.PoemOptions `json:"defaults"`
}

// errBadRequest は入力起因のエラーを表し、400 に変換されます。
var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// Health は死活監視用のエンドポイントです。
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// PoemOptions は選択可能なモード・詩形・トーンと既定値を返します。
func (h *Handler) PoemOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, optionsResponse{
		Modes:    domain.Modes(),
		Forms:    domain.Forms(),
		Tones:    domain.Tones(),
		Defaults: domain.DefaultPoemOptions(),
	})
}

// Samples はサンプル画像の URL 一覧を返します。
func (h *Handler) Samples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"images": h.samples})
}

// CreatePoem は JSON で受け取った画像と設定から詩を生成します。
func (h *Handler) CreatePoem(w http.ResponseWriter, r *http.Request) {
	// base64 は元のサイズの約 4/3 倍になる
	limit := h.maxUploadBytes*4/3 + 64<<10
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	dec.DisallowUnknownFields()

	var req poemRequest
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, r, badRequest("invalid request body: %v", err))
		return
	}

	image, err := h.resolveImage(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.generate(w, r, image, req.Options)
}

// UploadPoem は multipart/form-data の画像ファイルと設定から詩を生成します。
func (h *Handler) UploadPoem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.writeError(w, r, badRequest("invalid multipart form: %v", err))
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, r, badRequest("image file is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		h.writeError(w, r, badRequest("failed to read image: %v", err))
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		h.writeError(w, r, badRequest("image exceeds %d bytes", h.maxUploadBytes))
		return
	}

	image, err := imgutil.FromBytes(data)
	if err != nil {
		h.writeError(w, r, badRequest("%v", err))
		return
	}

	options, err := parseFormOptions(r)
	if err != nil {
		h.writeError(w, r, badRequest("%v", err))
		return
	}

	h.generate(w, r, image, options)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, image domain.ImagePayload, options domain.PoemOptions) {
	poem, err := h.generator.GeneratePoem(r.Context(), image, options)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, poemResponse{
		Poem:      poem,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

// resolveImage は image / dataUrl / imageUrl のうち指定された 1 つから画像を用意します。
func (h *Handler) resolveImage(ctx context.Context, req poemRequest) (domain.ImagePayload, error) {
	sources := 0
	if req.Image != nil {
		sources++
	}
	if req.DataURL != "" {
		sources++
	}
	if req.ImageURL != "" {
		sources++
	}
	if sources != 1 {
		return domain.ImagePayload{}, badRequest("exactly one of image, dataUrl or imageUrl is required")
	}

	switch {
	case req.Image != nil:
		return *req.Image, nil
	case req.DataURL != "":
		p, err := imgutil.ParseDataURL(req.DataURL)
		if err != nil {
			return domain.ImagePayload{}, badRequest("%v", err)
		}
		return p, nil
	default:
		p, err := h.fetcher.Fetch(ctx, req.ImageURL)
		if err != nil {
			return domain.ImagePayload{}, badRequest("image could not be loaded: %v", err)
		}
		return p, nil
	}
}

func parseFormOptions(r *http.Request) (domain.PoemOptions, error) {
	options := domain.DefaultPoemOptions()

	if v := r.FormValue("mode"); v != "" {
		m, err := domain.ParseMode(v)
		if err != nil {
			return options, err
		}
		options.Mode = m
	}
	if v := r.FormValue("form"); v != "" {
		f, err := domain.ParseForm(v)
		if err != nil {
			return options, err
		}
		options.Form = f
	}
	if v := r.FormValue("tone"); v != "" {
		t, err := domain.ParseTone(v)
		if err != nil {
			return options, err
		}
		options.Tone = t
	}
	options.CustomTopic = r.FormValue("customTopic")

	return options, nil
}

// statusFor はエラーの種類を HTTP ステータスに対応付けます。
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrUnknownOption),
		errors.Is(err, generator.ErrInvalidImage):
		return http.StatusBadRequest
	case generator.IsConfigurationError(err):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	case generator.IsGenerationError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	rid := RequestIDFromContext(r.Context())

	event := h.logger.Warn()
	if status >= http.StatusInternalServerError {
		event = h.logger.Error()
	}
	event.Err(err).Str("request_id", rid).Int("status", status).Msg("poem request failed")

	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: rid})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
