// Package handler provides the HTTP surface the host UI talks to.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snaplate/snaplate/internal/config"
	"github.com/snaplate/snaplate/internal/domain"
	"github.com/snaplate/snaplate/internal/translate"
)

// TranslateHandler serves translation requests from the host UI. Each
// request is one independent invocation of the translation core; the
// handler holds no per-request state.
type TranslateHandler struct {
	cfg        *config.Configuration
	translator *translate.Translator
	logger     *slog.Logger
}

// TranslateHandlerOption is a functional option for configuring TranslateHandler.
type TranslateHandlerOption func(*TranslateHandler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) TranslateHandlerOption {
	return func(h *TranslateHandler) {
		h.logger = logger
	}
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(cfg *config.Configuration, translator *translate.Translator, opts ...TranslateHandlerOption) *TranslateHandler {
	h := &TranslateHandler{
		cfg:        cfg,
		translator: translator,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// translateRequest is the host UI's inbound payload. Everything except the
// selected text is optional and falls back to the configured defaults.
type translateRequest struct {
	Text           string `json:"text" binding:"required"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
	TargetLanguage string `json:"target_language"`
	DisplayMode    string `json:"display_mode"`
}

// HandleTranslate handles POST /v1/translate.
//
// A classified translation failure is still a successful host interaction:
// the host renders the message either way, so the response carries it with
// status 200 in the same envelope. Only a malformed host request yields 400.
func (h *TranslateHandler) HandleTranslate(c *gin.Context) {
	var in translateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid request body: " + err.Error()},
		})
		return
	}

	req, mode, badField := h.resolveRequest(in)
	if badField != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid value for " + badField},
		})
		return
	}

	c.Set("provider", string(req.Provider))

	text, err := h.translator.Translate(c.Request.Context(), req)
	if err != nil {
		message := translate.Classify(req.Provider, err)
		h.logger.Debug("translation failed",
			slog.String("provider", string(req.Provider)),
			slog.String("message", message),
		)
		c.JSON(http.StatusOK, gin.H{
			"error": gin.H{"message": message},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text": text,
		"copy": mode == domain.ModeDisplayAndCopy,
	})
}

// resolveRequest merges the host's per-request overrides onto the
// configured defaults. Returns the offending field name when an override
// falls outside its closed enumeration.
func (h *TranslateHandler) resolveRequest(in translateRequest) (domain.Request, domain.DisplayMode, string) {
	provider := h.cfg.Provider
	if in.Provider != "" {
		provider = domain.Provider(in.Provider)
		if !provider.Valid() {
			return domain.Request{}, "", "provider"
		}
	}

	lang := h.cfg.TargetLanguage
	if in.TargetLanguage != "" {
		lang = domain.Language(in.TargetLanguage)
		if !domain.ValidLanguage(lang) {
			return domain.Request{}, "", "target_language"
		}
	}

	model := h.cfg.Model(provider)
	if in.Model != "" {
		model = domain.ModelName(in.Model)
		if !domain.ValidModel(provider, model) {
			return domain.Request{}, "", "model"
		}
	}

	mode := h.cfg.DisplayMode
	if in.DisplayMode != "" {
		mode = domain.DisplayMode(in.DisplayMode)
		if !mode.Valid() {
			return domain.Request{}, "", "display_mode"
		}
	}

	return domain.Request{
		Provider:       provider,
		Credential:     h.cfg.Credential(provider),
		Model:          model,
		TargetLanguage: lang,
		SourceText:     in.Text,
	}, mode, ""
}

// HandleProviders handles GET /v1/providers. Credentials are reported only
// as a configured/unconfigured flag, never echoed.
func (h *TranslateHandler) HandleProviders(c *gin.Context) {
	providers := make([]gin.H, 0, len(domain.Providers()))
	for _, p := range domain.Providers() {
		providers = append(providers, gin.H{
			"id":         string(p),
			"label":      p.Label(),
			"models":     domain.ModelsFor(p),
			"model":      h.cfg.Model(p),
			"configured": h.cfg.Credential(p) != "",
			"selected":   p == h.cfg.Provider,
		})
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// HandleLanguages handles GET /v1/languages.
func (h *TranslateHandler) HandleLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": domain.Languages(),
		"selected":  h.cfg.TargetLanguage,
	})
}

// HandleHealth handles GET /health.
func (h *TranslateHandler) HandleHealth(c *gin.Context) {
	configured := 0
	for _, p := range domain.Providers() {
		if h.cfg.Credential(p) != "" {
			configured++
		}
	}

	status := "healthy"
	if h.cfg.Credential(h.cfg.Provider) == "" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               status,
		"provider":             h.cfg.Provider,
		"configured_providers": configured,
	})
}

// Routes registers the handler's routes on a gin engine.
func (h *TranslateHandler) Routes(router *gin.Engine) {
	router.POST("/v1/translate", h.HandleTranslate)
	router.GET("/v1/providers", h.HandleProviders)
	router.GET("/v1/languages", h.HandleLanguages)
	router.GET("/health", h.HandleHealth)
}
