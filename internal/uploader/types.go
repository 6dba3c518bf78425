package uploader

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-sod/imgvec/internal/byteutil"
	"github.com/go-sod/imgvec/pkg/math/vector"
)

const DefaultID = "test"

type Request struct {
	ID    string `json:"id"`
	Image string `json:"image"`
}

func NewRequest(id string, data []byte) Request {
	return Request{ID: id, Image: EncodeImage(data)}
}

// EncodeImage returns the padded standard base64 form of data.
func EncodeImage(data []byte) string {
	buf := byteutil.GetBytesBuf()
	defer byteutil.PutBytesBuf(buf)
	buf.Grow(base64.StdEncoding.EncodedLen(len(data)))
	enc := base64.NewEncoder(base64.StdEncoding, buf)
	_, _ = enc.Write(data)
	_ = enc.Close()
	return buf.String()
}

// Vector is the raw JSON value found under the "vector" key. Its shape is not
// checked when it is received.
type Vector json.RawMessage

// String renders arrays as "[a, b, c]" keeping every element's JSON text.
// Anything else is printed as compact JSON.
func (v Vector) String() string {
	raw := bytes.TrimSpace(v)
	if len(raw) > 0 && raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			parts := make([]string, len(items))
			for i := range items {
				parts[i] = Vector(items[i]).String()
			}
			return "[" + strings.Join(parts, ", ") + "]"
		}
	}
	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		return string(raw)
	}
	return out.String()
}

// Floats decodes the vector as a flat array of numbers.
func (v Vector) Floats() (vector.V, error) {
	var points []float64
	if err := json.Unmarshal(v, &points); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVector, err)
	}
	if points == nil {
		return nil, fmt.Errorf("%w: got %s", ErrMalformedVector, v.String())
	}
	return vector.New(points), nil
}
