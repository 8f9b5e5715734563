package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the wrapped response shape some endpoints use. Endpoints are
// inconsistent: list endpoints may return either a bare array or
// {success, message, data}. Data is kept raw so the caller decides the
// concrete type.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// unwrap decodes raw into v, accepting both response shapes. If raw is an
// object carrying a "data" field, the field's content is decoded; otherwise
// raw is decoded directly. A payload matching neither shape yields
// ErrUnexpectedShape rather than a silently empty result.
func unwrap(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	if trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Data != nil {
			if err := json.Unmarshal(env.Data, v); err != nil {
				return fmt.Errorf("%w: data field: %v", ErrUnexpectedShape, err)
			}
			return nil
		}
	}

	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return nil
}
