package writer

import (
	"bytes"
	"compress/zlib"

	"deploykit/builder"
	"deploykit/coords"
	"deploykit/fonts"
)

// FormXObject wraps an appearance stream in a Form XObject. The BBox uses
// absolute coordinates and the Matrix translates content back to the form
// origin, so streams drawn in page space render correctly.
func FormXObject(bbox coords.Rect, content []byte, resources *Dict) *Stream {
	d := NewDict()
	d.Set("Type", Name("XObject"))
	d.Set("Subtype", Name("Form"))
	d.Set("FormType", Integer(1))
	d.Set("BBox", Reals(bbox.X1, bbox.Y1, bbox.X2, bbox.Y2))
	d.Set("Matrix", Array{Integer(1), Integer(0), Integer(0), Integer(1), Real(-bbox.X1), Real(-bbox.Y1)})
	if resources != nil {
		d.Set("Resources", resources)
	}
	return &Stream{Dict: d, Data: content}
}

// AppearanceXObject wraps an icon appearance stream whose content already
// starts at the BBox origin, as produced by builder.BuildAppearance.
func AppearanceXObject(bbox coords.Rect, content []byte, resources *Dict) *Stream {
	d := NewDict()
	d.Set("Type", Name("XObject"))
	d.Set("Subtype", Name("Form"))
	d.Set("FormType", Integer(1))
	d.Set("BBox", Reals(bbox.X1, bbox.Y1, bbox.X2, bbox.Y2))
	if resources != nil {
		d.Set("Resources", resources)
	}
	return &Stream{Dict: d, Data: content}
}

// ImageXObject builds a DeviceRGB image stream, flate-compressed.
func ImageXObject(img builder.Image) *Stream {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(img.RGB)
	zw.Close()

	d := NewDict()
	d.Set("Type", Name("XObject"))
	d.Set("Subtype", Name("Image"))
	d.Set("Width", Integer(img.Width))
	d.Set("Height", Integer(img.Height))
	d.Set("ColorSpace", Name("DeviceRGB"))
	d.Set("BitsPerComponent", Integer(8))
	d.Set("Filter", Name("FlateDecode"))
	return &Stream{Dict: d, Data: buf.Bytes()}
}

// FontDict describes the base-14 bold font every icon stream uses.
func FontDict() *Dict {
	f := NewDict()
	f.Set("Type", Name("Font"))
	f.Set("Subtype", Name("Type1"))
	f.Set("BaseFont", Name(fonts.HelveticaBold))
	return f
}

// IconResources assembles the resource dictionary for an appearance
// stream: the text font under fontName and, when imageRef is non-nil, the
// icon bitmap under builder.ImageName.
func IconResources(fontName string, imageRef *ObjectRef) *Dict {
	res := NewDict()
	fontTable := NewDict()
	fontTable.Set(Name(fontName), FontDict())
	res.Set("Font", fontTable)
	if imageRef != nil {
		xo := NewDict()
		xo.Set(Name(builder.ImageName), Ref(*imageRef))
		res.Set("XObject", xo)
	}
	return res
}
