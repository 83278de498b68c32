package adapter

import (
	"encoding/json"

	"github.com/gowebpki/jcs"
)

// JSON encodes payloads exchanged with the balance source and the notification outbox
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
	// Canonical marshals v into RFC 8785 canonical JSON so equal values give equal bytes
	Canonical(v interface{}) ([]byte, error)
}

type jsonCodec struct{}

// NewJSON returns the encoding/json backed codec
func NewJSON() JSON {
	return jsonCodec{}
}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Canonical(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jcs.Transform(raw)
}
