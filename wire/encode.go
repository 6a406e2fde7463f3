package wire

import (
	"time"

	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/tidwall/sjson"
)

// Document is a wire payload in its serialized form: a JSON object.
type Document []byte

// Map re-parses the document into a dynamic map. It is mostly useful
// for diagnostics and tests; the typed Decoder is the decode path.
func (d Document) Map() (map[string]any, error) {
	result := make(map[string]any)
	if err := json.Unmarshal(d, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Encoder builds a sparse wire document field by field. A nil pointer
// argument leaves the field absent; a pointer to a zero value encodes
// that zero value. The first failure latches and every later call
// becomes a no-op.
type Encoder struct {
	doc []byte
	err error
}

func NewEncoder() *Encoder {
	return &Encoder{doc: []byte(`{}`)}
}

func (e *Encoder) set(key string, value any) {
	if e.err != nil {
		return
	}
	e.doc, e.err = sjson.SetBytes(e.doc, key, value)
}

func (e *Encoder) String(key string, v *string) {
	if v != nil {
		e.set(key, *v)
	}
}

func (e *Encoder) Int64(key string, v *int64) {
	if v != nil {
		e.set(key, *v)
	}
}

func (e *Encoder) Bool(key string, v *bool) {
	if v != nil {
		e.set(key, *v)
	}
}

// Time encodes a timestamp as epoch seconds.
func (e *Encoder) Time(key string, v *strfmt.DateTime) {
	if v != nil {
		e.set(key, time.Time(*v).Unix())
	}
}

// StringMap encodes a string-to-string object. An empty or nil map is
// treated as absent.
func (e *Encoder) StringMap(key string, m map[string]string) {
	if len(m) == 0 || e.err != nil {
		return
	}
	raw, err := json.Marshal(m)
	if err != nil {
		e.err = err
		return
	}
	e.doc, e.err = sjson.SetRawBytes(e.doc, key, raw)
}

// Document returns the encoded payload, or the first error recorded
// while building it.
func (e *Encoder) Document() (Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	return Document(e.doc), nil
}
