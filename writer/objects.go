// Package writer is the raw-object layer under the icon builder: it
// serializes Form and Image XObjects, annotation dictionaries and whole
// single-page documents into PDF syntax.
package writer

import (
	"bytes"
	"fmt"
	"strconv"
)

// ObjectRef identifies an indirect object.
type ObjectRef struct {
	Num int
	Gen int
}

func (r ObjectRef) String() string {
	return fmt.Sprintf("%d %d R", r.Num, r.Gen)
}

// Object is anything that can be written in PDF object syntax.
type Object interface {
	writeTo(buf *bytes.Buffer)
}

// Name is a PDF name without the leading slash.
type Name string

func (n Name) writeTo(buf *bytes.Buffer) {
	buf.WriteByte('/')
	buf.WriteString(string(n))
}

// Integer is a PDF integer.
type Integer int64

func (i Integer) writeTo(buf *bytes.Buffer) {
	buf.WriteString(strconv.FormatInt(int64(i), 10))
}

// Real is a PDF real number, written with up to six decimals and trailing
// zeros trimmed so whole numbers stay compact.
type Real float64

func (r Real) writeTo(buf *bytes.Buffer) {
	s := strconv.FormatFloat(float64(r), 'f', 6, 64)
	s = trimZeros(s)
	buf.WriteString(s)
}

func trimZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

// String is a PDF literal string.
type String string

func (s String) writeTo(buf *bytes.Buffer) {
	buf.WriteByte('(')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
}

// Ref is an indirect reference used as a value.
type Ref ObjectRef

func (r Ref) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "%d %d R", r.Num, r.Gen)
}

// Array is an ordered list of objects.
type Array []Object

func (a Array) writeTo(buf *bytes.Buffer) {
	buf.WriteByte('[')
	for i, o := range a {
		if i > 0 {
			buf.WriteByte(' ')
		}
		o.writeTo(buf)
	}
	buf.WriteByte(']')
}

// Reals builds an Array from float values.
func Reals(vs ...float64) Array {
	a := make(Array, len(vs))
	for i, v := range vs {
		a[i] = Real(v)
	}
	return a
}

// Dict is a dictionary that preserves insertion order, keeping output
// deterministic.
type Dict struct {
	keys   []Name
	values map[Name]Object
}

func NewDict() *Dict {
	return &Dict{values: make(map[Name]Object)}
}

// Set adds or replaces an entry. First-set order is kept on replace.
func (d *Dict) Set(key Name, value Object) *Dict {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

func (d *Dict) Get(key Name) (Object, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *Dict) writeTo(buf *bytes.Buffer) {
	buf.WriteString("<< ")
	for _, k := range d.keys {
		k.writeTo(buf)
		buf.WriteByte(' ')
		d.values[k].writeTo(buf)
		buf.WriteByte(' ')
	}
	buf.WriteString(">>")
}

// Stream pairs a dictionary with raw stream data. The Length entry is
// filled in at write time.
type Stream struct {
	Dict *Dict
	Data []byte
}

func (s *Stream) writeTo(buf *bytes.Buffer) {
	s.Dict.Set("Length", Integer(len(s.Data)))
	s.Dict.writeTo(buf)
	buf.WriteString("\nstream\n")
	buf.Write(s.Data)
	buf.WriteString("\nendstream")
}

// Encode serializes any object to PDF syntax.
func Encode(o Object) []byte {
	var buf bytes.Buffer
	o.writeTo(&buf)
	return buf.Bytes()
}
