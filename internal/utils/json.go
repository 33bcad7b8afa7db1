package utils

import (
	"bytes"
	"encoding/json"
)

// DecodeJSONStrict unmarshals data and rejects unknown fields.
func DecodeJSONStrict(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
