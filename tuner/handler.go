// Package tuner serves the live icon-tuning API: read and adjust icon
// parameters over HTTP, preview the resulting icon as a small PDF, and
// push change notifications to connected frontends over WebSocket.
package tuner

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"deploykit/builder"
	"deploykit/coords"
	"deploykit/icons"
	"deploykit/identifier"
	"deploykit/observability"
	"deploykit/scripting"
	"deploykit/writer"
)

// Preview page geometry: the icon fills a doubled canonical rect centered
// on a small page.
var previewRect = coords.Rect{X1: 25, Y1: 30, X2: 75, Y2: 90}

const (
	previewPageW = 100.0
	previewPageH = 120.0

	scriptTimeout = 10 * time.Second
)

// Handler owns the tuning endpoints.
type Handler struct {
	catalog *icons.Catalog
	store   *icons.Store
	images  *builder.ImageCache
	log     observability.Logger
	hub     *Hub
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithImages enables image rendering in previews.
func WithImages(cache *builder.ImageCache) HandlerOption {
	return func(h *Handler) { h.images = cache }
}

func WithLogger(log observability.Logger) HandlerOption {
	return func(h *Handler) { h.log = log }
}

func NewHandler(catalog *icons.Catalog, store *icons.Store, hub *Hub, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog: catalog,
		store:   store,
		hub:     hub,
		log:     observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes attaches all tuning endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/icons", h.listIcons)
	mux.HandleFunc("GET /api/v1/icons/{subject}", h.getIcon)
	mux.HandleFunc("PUT /api/v1/icons/{subject}", h.putIcon)
	mux.HandleFunc("DELETE /api/v1/icons/{subject}", h.deleteIcon)
	mux.HandleFunc("GET /api/v1/icons/{subject}/preview", h.preview)
	mux.HandleFunc("POST /api/v1/script", h.runScript)
}

func (h *Handler) listIcons(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"subjects": h.catalog.Subjects()})
}

func (h *Handler) getIcon(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")
	cfg, ok := h.catalog.Lookup(subject)
	if !ok {
		NotFound(w, "unknown device type")
		return
	}
	JSON(w, http.StatusOK, map[string]any{
		"subject":  subject,
		"category": cfg.Category,
		"params":   icons.Params(cfg),
	})
}

func (h *Handler) putIcon(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")
	if _, ok := h.catalog.Lookup(subject); !ok {
		NotFound(w, "unknown device type")
		return
	}

	var params map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	ov, _ := h.store.Get(subject)
	for name, value := range params {
		if err := ov.SetParam(name, value); err != nil {
			BadRequest(w, err.Error())
			return
		}
	}
	if err := h.store.Set(subject, ov); err != nil {
		ServerError(w, err)
		return
	}

	h.log.Info("icon override updated",
		observability.String("subject", subject),
		observability.Int("params", len(params)))
	h.hub.IconChanged(subject)

	cfg, _ := h.catalog.Lookup(subject)
	JSON(w, http.StatusOK, map[string]any{"subject": subject, "params": icons.Params(cfg)})
}

func (h *Handler) deleteIcon(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")
	if err := h.store.Delete(subject); err != nil {
		ServerError(w, err)
		return
	}
	h.hub.IconChanged(subject)
	JSON(w, http.StatusOK, map[string]string{"subject": subject})
}

// preview renders the subject as a one-page PDF, labeled with the first
// identifier its scheme would assign.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")
	cfg, ok := h.catalog.Lookup(subject)
	if !ok {
		NotFound(w, "unknown device type")
		return
	}

	label := ""
	if assigner, err := identifier.New(h.catalog.PrefixTable()); err == nil {
		label, _ = assigner.NextID(subject)
	}

	var img *builder.Image
	imgW, imgH := 0, 0
	if h.images != nil && cfg.ImagePath != "" && !cfg.NoImage {
		if loaded, err := h.images.Load(cfg.ImagePath, cfg.CircleColor); err == nil {
			img = &loaded
			imgW, imgH = loaded.Width, loaded.Height
		}
	}

	t, err := coords.FitRect(previewRect, builder.CanonW, builder.CanonH)
	if err != nil {
		ServerError(w, err)
		return
	}
	stream := builder.BuildAppearance(builder.Layout(cfg, label, imgW, imgH), t)

	doc := writer.NewDocument(previewPageW, previewPageH)
	var imgRef *writer.ObjectRef
	if img != nil {
		ref := doc.Add(writer.ImageXObject(*img))
		imgRef = &ref
	}
	doc.SetContent(stream)
	doc.SetResources(writer.IconResources(builder.FontName, imgRef))

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := doc.WriteTo(w); err != nil {
		h.log.Error("preview write failed", observability.Error("err", err))
	}
}

type scriptRequest struct {
	Script string `json:"script"`
}

// runScript executes a tuning script against the catalog. Each request
// gets its own engine; goja runtimes are not safe for concurrent use.
func (h *Handler) runScript(w http.ResponseWriter, r *http.Request) {
	var req scriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Script == "" {
		BadRequest(w, "body must be {\"script\": \"...\"}")
		return
	}

	engine := scripting.NewEngine()
	bridge := scripting.NewCatalogBridge(h.catalog, h.store, h.log)
	if err := engine.RegisterCatalog(bridge); err != nil {
		ServerError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), scriptTimeout)
	defer cancel()
	result, err := engine.Execute(ctx, req.Script)
	if err != nil {
		BadRequest(w, err.Error())
		return
	}

	h.hub.IconChanged("")
	JSON(w, http.StatusOK, map[string]any{"result": result})
}
