package enrich

import (
	"encoding/json"
	"strconv"
	"strings"
)

// toFloat coerces the loosely-typed numerics the upstream sends (numbers,
// numeric strings, json.Number) to float64. Anything unparseable is zero.
func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
