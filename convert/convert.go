// Package convert drives one document conversion: it walks annotations in
// order, assigns identifier labels, fits the canonical layout into each
// annotation rectangle and collects the resulting appearance streams.
package convert

import (
	"context"
	"fmt"
	"time"

	"deploykit/builder"
	"deploykit/coords"
	"deploykit/icons"
	"deploykit/identifier"
	"deploykit/observability"
)

// Annotation is one placement request, in the order it should receive a
// sequential identifier.
type Annotation struct {
	Subject string
	Rect    coords.Rect
}

// Rendered is the output for one annotation. Skipped is set when the
// subject has no icon configuration; such annotations produce no stream
// but do not fail the conversion.
type Rendered struct {
	Subject   string
	Label     string
	Rect      coords.Rect
	Transform coords.Transform
	Stream    []byte
	Image     *builder.Image
	Skipped   bool
}

// Converter owns the per-document assigner state. One Converter converts
// one document at a time; concurrent documents need separate instances.
type Converter struct {
	catalog  *icons.Catalog
	assigner *identifier.Assigner
	images   *builder.ImageCache
	log      observability.Logger
	tracer   observability.Tracer
}

// Option configures a Converter.
type Option func(*Converter)

// WithImages supplies a bitmap cache; without one, icons render without
// their device image.
func WithImages(cache *builder.ImageCache) Option {
	return func(c *Converter) { c.images = cache }
}

func WithLogger(log observability.Logger) Option {
	return func(c *Converter) { c.log = log }
}

func WithTracer(tracer observability.Tracer) Option {
	return func(c *Converter) { c.tracer = tracer }
}

// New builds a Converter over the catalog's prefix table. Invalid label
// configuration surfaces here rather than mid-document.
func New(catalog *icons.Catalog, opts ...Option) (*Converter, error) {
	table := catalog.PrefixTable()
	shared, err := identifier.Validate(table)
	if err != nil {
		return nil, fmt.Errorf("prefix table: %w", err)
	}
	assigner, err := identifier.New(table)
	if err != nil {
		return nil, fmt.Errorf("prefix table: %w", err)
	}
	c := &Converter{
		catalog:  catalog,
		assigner: assigner,
		log:      observability.NopLogger{},
		tracer:   observability.NopTracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	for key, devices := range shared {
		c.log.Warn("device types share an identifier pool",
			observability.String("prefix", key.Prefix),
			observability.Int("start", key.Start),
			observability.Int("devices", len(devices)))
	}
	return c, nil
}

// Convert processes a document's annotations in order. Identifier
// assignment depends on that order, so the pass is strictly sequential.
// A degenerate annotation rectangle aborts the whole document; labels
// assigned before the failure remain valid for a retry after the input is
// fixed because Convert resets the assigner on entry.
func (c *Converter) Convert(ctx context.Context, annots []Annotation) ([]Rendered, error) {
	ctx, span := c.tracer.StartSpan(ctx, "convert")
	defer span.Finish()
	start := time.Now()

	c.assigner.Reset()

	out := make([]Rendered, 0, len(annots))
	var assigned, skipped int
	for i, a := range annots {
		if err := ctx.Err(); err != nil {
			span.SetError(err)
			return nil, err
		}
		r, err := c.renderOne(a)
		if err != nil {
			span.SetError(err)
			return nil, fmt.Errorf("annotation %d (%s): %w", i, a.Subject, err)
		}
		if r.Skipped {
			skipped++
		} else if r.Label != "" {
			assigned++
		}
		out = append(out, r)
	}

	span.SetTag(observability.MetricAssignedCount, assigned)
	span.SetTag(observability.MetricSkippedCount, skipped)
	c.log.Info("document converted",
		observability.Int("annotations", len(annots)),
		observability.Int("assigned", assigned),
		observability.Int("skipped", skipped),
		observability.Float64(observability.MetricConvertTime, time.Since(start).Seconds()))
	return out, nil
}

func (c *Converter) renderOne(a Annotation) (Rendered, error) {
	cfg, ok := c.catalog.Lookup(a.Subject)
	if !ok {
		c.log.Debug("no icon config", observability.String("subject", a.Subject))
		return Rendered{Subject: a.Subject, Rect: a.Rect, Skipped: true}, nil
	}

	// Absent label scheme is not an error; the ID box renders empty.
	label, _ := c.assigner.NextID(a.Subject)

	t, err := coords.FitRect(a.Rect, builder.CanonW, builder.CanonH)
	if err != nil {
		return Rendered{}, err
	}

	var img *builder.Image
	imgW, imgH := 0, 0
	if c.images != nil && cfg.ImagePath != "" && !cfg.NoImage {
		loaded, err := c.images.Load(cfg.ImagePath, cfg.CircleColor)
		if err != nil {
			// A missing bitmap degrades to an imageless icon.
			c.log.Warn("icon image unavailable",
				observability.String("subject", a.Subject),
				observability.Error("err", err))
		} else {
			img = &loaded
			imgW, imgH = loaded.Width, loaded.Height
		}
	}

	params := builder.Layout(cfg, label, imgW, imgH)
	stream := builder.BuildAppearance(params, t)

	return Rendered{
		Subject:   a.Subject,
		Label:     label,
		Rect:      a.Rect,
		Transform: t,
		Stream:    stream,
		Image:     img,
	}, nil
}

// Compound renders one annotation as a compound component group centered
// on its rectangle, using the same label sequencing as Convert. It is the
// single-annotation analogue for viewers that regenerate appearances.
func (c *Converter) Compound(a Annotation) ([]builder.Component, string, error) {
	cfg, ok := c.catalog.Lookup(a.Subject)
	if !ok {
		return nil, "", nil
	}
	label, _ := c.assigner.NextID(a.Subject)

	imgW, imgH := 0, 0
	if c.images != nil && cfg.ImagePath != "" && !cfg.NoImage {
		if loaded, err := c.images.Load(cfg.ImagePath, cfg.CircleColor); err == nil {
			imgW, imgH = loaded.Width, loaded.Height
		}
	}
	return builder.Components(cfg, label, a.Rect.Center(), imgW, imgH), label, nil
}

// Reset clears identifier state so the Converter can start another
// document.
func (c *Converter) Reset() { c.assigner.Reset() }

// Snapshot exposes the current counter values for diagnostics.
func (c *Converter) Snapshot() map[identifier.CounterKey]int {
	return c.assigner.Snapshot()
}
