package diagram

import (
	"encoding/json"

	"github.com/brian-c/string-spacing-calculator/pkg/errors"
)

// RenderJSON encodes the diagram geometry.
func RenderJSON(d Diagram) ([]byte, error) {
	if d.Empty() {
		return nil, ErrEmpty
	}
	return json.MarshalIndent(d, "", "  ")
}

// ReadJSON decodes a diagram written by [RenderJSON].
func ReadJSON(data []byte) (Diagram, error) {
	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return Diagram{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode diagram")
	}
	return d, nil
}
