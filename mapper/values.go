package mapper

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Render formats a data value as field text. Integral floats lose their
// decimal point, other floats use the shortest representation.
func Render(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return renderFloat(float64(val), 32)
	case float64:
		return renderFloat(val, 64)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func renderFloat(f float64, bitSize int) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', 0, bitSize)
	}

	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

// asObject accepts the object shapes produced by Extract and by the JSON
// and YAML decoders.
func asObject(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = item
		}

		return out, true
	default:
		return nil, false
	}
}

func asArray(v any) []any {
	switch val := v.(type) {
	case []any:
		return val
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}

		return out
	default:
		return nil
	}
}
