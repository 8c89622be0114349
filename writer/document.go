package writer

import (
	"bytes"
	"fmt"
	"io"

	"deploykit/builder"
)

// AnnotationDict builds the annotation dictionary for one compound
// component, pointing its normal appearance at apRef.
func AnnotationDict(c builder.Component, apRef ObjectRef) *Dict {
	d := NewDict()
	d.Set("Type", Name("Annot"))
	d.Set("Subtype", Name(c.Subtype))
	d.Set("Rect", Reals(c.Rect.X1, c.Rect.Y1, c.Rect.X2, c.Rect.Y2))
	d.Set("F", Integer(4))

	ap := NewDict()
	ap.Set("N", Ref(apRef))
	d.Set("AP", ap)

	if c.Subtype == builder.SubtypeFreeText {
		d.Set("DA", String(c.DA))
		d.Set("Contents", String(c.Contents))
	}
	d.Set("C", Reals(c.Color...))
	if c.InteriorColor != nil {
		d.Set("IC", Reals(c.InteriorColor...))
	}
	bs := NewDict()
	bs.Set("W", Real(c.BorderWidth))
	d.Set("BS", bs)
	if c.RectDiff != 0 {
		rd := c.RectDiff
		d.Set("RD", Reals(rd, rd, rd, rd))
	}
	return d
}

// Document assembles a minimal single-page PDF. It exists for previews:
// the tuner and the command line render an icon into a page without
// needing a host document.
type Document struct {
	width, height float64

	objects     []Object
	content     []byte
	resources   *Dict
	annotations []ObjectRef
}

func NewDocument(width, height float64) *Document {
	return &Document{width: width, height: height}
}

// Add registers an indirect object and returns its reference. Object
// numbers start at 1 and follow insertion order.
func (d *Document) Add(o Object) ObjectRef {
	d.objects = append(d.objects, o)
	return ObjectRef{Num: len(d.objects)}
}

// SetContent sets the page content stream.
func (d *Document) SetContent(content []byte) { d.content = content }

// SetResources sets the page resource dictionary.
func (d *Document) SetResources(res *Dict) { d.resources = res }

// AddAnnotation appends an already-added annotation object to the page.
func (d *Document) AddAnnotation(ref ObjectRef) {
	d.annotations = append(d.annotations, ref)
}

// WriteTo serializes the document with a classic xref table.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	// Fixed objects follow the user objects.
	contentRef := ObjectRef{Num: len(d.objects) + 1}
	pageRef := ObjectRef{Num: len(d.objects) + 2}
	pagesRef := ObjectRef{Num: len(d.objects) + 3}
	catalogRef := ObjectRef{Num: len(d.objects) + 4}

	contentDict := NewDict()
	contentStream := &Stream{Dict: contentDict, Data: d.content}

	page := NewDict()
	page.Set("Type", Name("Page"))
	page.Set("Parent", Ref(pagesRef))
	page.Set("MediaBox", Reals(0, 0, d.width, d.height))
	page.Set("Contents", Ref(contentRef))
	if d.resources != nil {
		page.Set("Resources", d.resources)
	} else {
		page.Set("Resources", NewDict())
	}
	if len(d.annotations) > 0 {
		annots := make(Array, len(d.annotations))
		for i, ref := range d.annotations {
			annots[i] = Ref(ref)
		}
		page.Set("Annots", annots)
	}

	pages := NewDict()
	pages.Set("Type", Name("Pages"))
	pages.Set("Kids", Array{Ref(pageRef)})
	pages.Set("Count", Integer(1))

	catalog := NewDict()
	catalog.Set("Type", Name("Catalog"))
	catalog.Set("Pages", Ref(pagesRef))

	all := make([]Object, 0, len(d.objects)+4)
	all = append(all, d.objects...)
	all = append(all, contentStream, page, pages, catalog)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")

	offsets := make([]int, len(all))
	for i, obj := range all {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", i+1)
		buf.Write(Encode(obj))
		buf.WriteString("\nendobj\n")
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(all)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(all)+1, catalogRef.Num, xrefStart)

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
