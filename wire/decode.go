package wire

import (
	"fmt"
	"math"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/tidwall/gjson"
)

// Decoder reads recognized keys out of a wire document. Absent keys
// yield nil, present keys with the wrong JSON type latch a DecodeError.
// Nested object decoders share the error slot of their root, so a
// single Err check at the end of a shape codec covers the whole tree.
type Decoder struct {
	doc gjson.Result
	at  string
	err *error
}

// NewDecoder parses a payload into a decoder rooted at the document.
// It fails when the payload is not a JSON object.
func NewDecoder(payload []byte) (*Decoder, error) {
	if !gjson.ValidBytes(payload) {
		return nil, &DecodeError{Reason: "payload is not valid JSON"}
	}
	doc := gjson.ParseBytes(payload)
	if !doc.IsObject() {
		return nil, &DecodeError{Reason: "payload is not a JSON object"}
	}
	var err error
	return &Decoder{doc: doc, err: &err}, nil
}

// Err returns the first decode failure recorded by this decoder or any
// nested decoder derived from it.
func (d *Decoder) Err() error {
	return *d.err
}

func (d *Decoder) path(key string) string {
	if d.at == "" {
		return key
	}
	return d.at + "." + key
}

func (d *Decoder) fail(path, reason string) {
	if *d.err == nil {
		*d.err = &DecodeError{Path: path, Reason: reason}
	}
}

func (d *Decoder) String(key string) *string {
	v := d.doc.Get(key)
	if !v.Exists() {
		return nil
	}
	if v.Type != gjson.String {
		d.fail(d.path(key), "expected a string")
		return nil
	}
	s := v.String()
	return &s
}

func (d *Decoder) Int64(key string) *int64 {
	v := d.doc.Get(key)
	if !v.Exists() {
		return nil
	}
	if v.Type != gjson.Number {
		d.fail(d.path(key), "expected a number")
		return nil
	}
	n := v.Int()
	return &n
}

func (d *Decoder) Bool(key string) *bool {
	v := d.doc.Get(key)
	if !v.Exists() {
		return nil
	}
	if !v.IsBool() {
		d.fail(d.path(key), "expected a boolean")
		return nil
	}
	b := v.Bool()
	return &b
}

// Time decodes an epoch-seconds timestamp. Integer and floating-point
// representations are both accepted.
func (d *Decoder) Time(key string) *strfmt.DateTime {
	v := d.doc.Get(key)
	if !v.Exists() {
		return nil
	}
	if v.Type != gjson.Number {
		d.fail(d.path(key), "expected an epoch-seconds timestamp")
		return nil
	}
	sec, frac := math.Modf(v.Float())
	t := strfmt.DateTime(time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC())
	return &t
}

// Object descends into a nested object field. It returns nil when the
// field is absent and latches an error when it is present but not an
// object.
func (d *Decoder) Object(key string) *Decoder {
	v := d.doc.Get(key)
	if !v.Exists() {
		return nil
	}
	if !v.IsObject() {
		d.fail(d.path(key), "expected an object")
		return nil
	}
	return &Decoder{doc: v, at: d.path(key), err: d.err}
}

// Objects decodes an array-of-objects field into one decoder per
// element.
func (d *Decoder) Objects(key string) []*Decoder {
	v := d.doc.Get(key)
	if !v.Exists() {
		return nil
	}
	if !v.IsArray() {
		d.fail(d.path(key), "expected an array")
		return nil
	}
	elements := v.Array()
	out := make([]*Decoder, 0, len(elements))
	for i, el := range elements {
		at := fmt.Sprintf("%s.%d", d.path(key), i)
		if !el.IsObject() {
			d.fail(at, "expected an object")
			continue
		}
		out = append(out, &Decoder{doc: el, at: at, err: d.err})
	}
	return out
}

// StringMap decodes a string-to-string object field.
func (d *Decoder) StringMap(key string) map[string]string {
	v := d.doc.Get(key)
	if !v.Exists() {
		return nil
	}
	if !v.IsObject() {
		d.fail(d.path(key), "expected an object")
		return nil
	}
	out := make(map[string]string)
	v.ForEach(func(k, val gjson.Result) bool {
		if val.Type != gjson.String {
			d.fail(d.path(key)+"."+k.String(), "expected a string")
			return false
		}
		out[k.String()] = val.String()
		return true
	})
	return out
}
