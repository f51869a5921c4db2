package wire

import (
	"encoding/json"
	"fmt"
)

// Kind tags the variant carried by an Outcome.
type Kind int

const (
	// KindData is a decoded JSON object or array.
	KindData Kind = iota + 1
	// KindAck is a successful JSON response with an empty body.
	KindAck
	// KindText is a successful non-JSON response.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindAck:
		return "ack"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Outcome is the successful result of a Call.
type Outcome struct {
	Kind       Kind
	Data       any // map[string]any or []any for KindData
	Raw        []byte
	Text       string
	StatusCode int
}

// Decode unmarshals the raw JSON body into v. Acks decode nothing.
func (o *Outcome) Decode(v any) error {
	if o.Kind != KindData {
		return fmt.Errorf("wire: cannot decode %s outcome", o.Kind)
	}
	return json.Unmarshal(o.Raw, v)
}
