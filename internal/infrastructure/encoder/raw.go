package encoder

import "fmt"

// rawCodec passes byte and string values through unchanged.
type rawCodec struct{}

func (rawCodec) Name() string { return "raw" }

func (rawCodec) Encode(v any) ([]byte, error) {
	switch val := v.(type) {
	case []byte:
		return append([]byte(nil), val...), nil
	case string:
		return []byte(val), nil
	default:
		return nil, fmt.Errorf("raw codec cannot encode %T", v)
	}
}

func (rawCodec) Decode(data []byte, v any) error {
	switch dst := v.(type) {
	case *[]byte:
		*dst = append([]byte(nil), data...)
	case *string:
		*dst = string(data)
	case *any:
		*dst = append([]byte(nil), data...)
	default:
		return fmt.Errorf("raw codec cannot decode into %T", v)
	}
	return nil
}
