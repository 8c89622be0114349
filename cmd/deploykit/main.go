// Command deploykit converts deployment annotation listings into labeled
// icon PDFs, and serves the live icon-tuning API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"deploykit/builder"
	"deploykit/convert"
	"deploykit/coords"
	"deploykit/icons"
	"deploykit/observability"
	"deploykit/tuner"
	"deploykit/writer"
)

type options struct {
	inPath    string
	outPath   string
	imagesDir string
	overrides string
	verbose   bool

	serve bool
	port  int
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "deploykit: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: deploykit [flags]\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.inPath, "in", "", "Annotation listing (JSON) to convert")
	flag.StringVar(&opts.outPath, "out", "", "Output PDF path (omit to print labels only)")
	flag.StringVar(&opts.imagesDir, "images", "", "Directory with gear icon bitmaps")
	flag.StringVar(&opts.overrides, "overrides", "", "TOML override file layered on the builtin catalog")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	flag.BoolVar(&opts.serve, "serve", false, "Run the icon tuning server instead of converting")
	flag.IntVar(&opts.port, "port", 8377, "Tuning server port")
	flag.Parse()
	return opts
}

func run(opts options) error {
	catalog := icons.Default()

	var store *icons.Store
	if opts.overrides != "" || opts.serve {
		path := opts.overrides
		if path == "" {
			path = "overrides.toml"
		}
		store = icons.NewStore(path, logger(opts))
		if err := store.Load(); err != nil {
			return err
		}
		catalog = catalog.WithStore(store)
	}

	var images *builder.ImageCache
	if opts.imagesDir != "" {
		images = builder.NewImageCache(opts.imagesDir)
	}

	if opts.serve {
		hub := tuner.NewHub()
		handlerOpts := []tuner.HandlerOption{tuner.WithLogger(logger(opts))}
		if images != nil {
			handlerOpts = append(handlerOpts, tuner.WithImages(images))
		}
		handler := tuner.NewHandler(catalog, store, hub, handlerOpts...)
		srv := tuner.NewServer(handler, hub, opts.port)
		log.Printf("icon tuner listening on %s", srv.Addr())
		return srv.Start()
	}

	if opts.inPath == "" {
		return fmt.Errorf("nothing to do: pass -in <listing.json> or -serve")
	}
	return runConvert(opts, catalog, images)
}

type listing struct {
	Page struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"page"`
	Annotations []struct {
		Subject string     `json:"subject"`
		Rect    [4]float64 `json:"rect"`
	} `json:"annotations"`
}

func runConvert(opts options, catalog *icons.Catalog, images *builder.ImageCache) error {
	raw, err := os.ReadFile(opts.inPath)
	if err != nil {
		return err
	}
	var in listing
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("parse %s: %w", opts.inPath, err)
	}

	convOpts := []convert.Option{convert.WithLogger(logger(opts))}
	if images != nil {
		convOpts = append(convOpts, convert.WithImages(images))
	}
	conv, err := convert.New(catalog, convOpts...)
	if err != nil {
		return err
	}

	annots := make([]convert.Annotation, len(in.Annotations))
	for i, a := range in.Annotations {
		annots[i] = convert.Annotation{
			Subject: a.Subject,
			Rect:    coords.Rect{X1: a.Rect[0], Y1: a.Rect[1], X2: a.Rect[2], Y2: a.Rect[3]},
		}
	}

	rendered, err := conv.Convert(context.Background(), annots)
	if err != nil {
		return err
	}

	for _, r := range rendered {
		switch {
		case r.Skipped:
			fmt.Printf("%-40s (no icon config)\n", r.Subject)
		case r.Label == "":
			fmt.Printf("%-40s (no label scheme)\n", r.Subject)
		default:
			fmt.Printf("%-40s %s\n", r.Subject, r.Label)
		}
	}

	if opts.outPath == "" {
		return nil
	}
	return writePDF(opts.outPath, in.Page.Width, in.Page.Height, rendered)
}

// writePDF assembles one page invoking every rendered icon as its own Form
// XObject, so each icon carries its own font and image resources.
func writePDF(path string, width, height float64, rendered []convert.Rendered) error {
	if width <= 0 || height <= 0 {
		width, height = 612, 792
	}
	doc := writer.NewDocument(width, height)

	var content []byte
	pageXObjects := writer.NewDict()
	n := 0
	for _, r := range rendered {
		if r.Skipped {
			continue
		}
		var imgRef *writer.ObjectRef
		if r.Image != nil {
			ref := doc.Add(writer.ImageXObject(*r.Image))
			imgRef = &ref
		}
		form := writer.AppearanceXObject(r.Rect, r.Stream, writer.IconResources(builder.FontName, imgRef))
		ref := doc.Add(form)

		name := fmt.Sprintf("Icon%d", n)
		pageXObjects.Set(writer.Name(name), writer.Ref(ref))
		content = append(content, []byte(fmt.Sprintf("/%s Do\n", name))...)
		n++
	}

	res := writer.NewDict()
	res.Set("XObject", pageXObjects)
	doc.SetResources(res)
	doc.SetContent(content)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d icons)\n", path, n)
	return nil
}

func logger(opts options) observability.Logger {
	if opts.verbose {
		return stderrLogger{}
	}
	return observability.NopLogger{}
}

// stderrLogger is the CLI's plain-text logger.
type stderrLogger struct {
	fields []observability.Field
}

func (l stderrLogger) log(level, msg string, fields []observability.Field) {
	line := level + " " + msg
	for _, f := range append(l.fields, fields...) {
		line += fmt.Sprintf(" %s=%v", f.Key(), f.Value())
	}
	log.Print(line)
}

func (l stderrLogger) Debug(msg string, fields ...observability.Field) { l.log("DEBUG", msg, fields) }
func (l stderrLogger) Info(msg string, fields ...observability.Field)  { l.log("INFO", msg, fields) }
func (l stderrLogger) Warn(msg string, fields ...observability.Field)  { l.log("WARN", msg, fields) }
func (l stderrLogger) Error(msg string, fields ...observability.Field) { l.log("ERROR", msg, fields) }
func (l stderrLogger) With(fields ...observability.Field) observability.Logger {
	return stderrLogger{fields: append(l.fields, fields...)}
}
