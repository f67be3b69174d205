package breeze

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// params collects query parameters for one API call. Values are encoded per
// the Breeze conventions: empty values are dropped entirely, keys ending in
// _json carry a JSON document, string slices are joined with "-", and a true
// boolean becomes "1".
type params map[string]any

func (p params) encode() (url.Values, error) {
	vals := url.Values{}
	for key, raw := range p {
		s, err := encodeParam(key, raw)
		if err != nil {
			return nil, fmt.Errorf("encoding parameter %s: %w", key, err)
		}
		if s == "" {
			continue
		}
		vals.Set(key, s)
	}
	return vals, nil
}

// encodeParam renders one parameter value. An empty result means the
// parameter is unset and should be omitted from the request.
func encodeParam(key string, val any) (string, error) {
	if val == nil {
		return "", nil
	}
	if s, ok := val.(string); ok {
		return s, nil
	}
	// Anything non-string under a *_json key is sent as a JSON document.
	if strings.HasSuffix(key, "_json") {
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	switch v := val.(type) {
	case bool:
		if v {
			return "1", nil
		}
		return "", nil
	case int:
		if v == 0 {
			return "", nil
		}
		return strconv.Itoa(v), nil
	case int64:
		if v == 0 {
			return "", nil
		}
		return strconv.FormatInt(v, 10), nil
	case []string:
		var parts []string
		for _, e := range v {
			if e != "" {
				parts = append(parts, e)
			}
		}
		return strings.Join(parts, "-"), nil
	default:
		return fmt.Sprint(v), nil
	}
}
