// Package lookup resolves contact names inside a previously exported JSON document.
package lookup

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

// FromDocument returns the number stored under name in an exported document.
//
// Policy:
// - body must be a JSON object, otherwise KindInvalidConfig.
// - a missing key or a non-string value is KindNotFound.
func FromDocument(body []byte, name string) (string, error) {
	doc, err := parseJSON(body)
	if err != nil {
		return "", &domain.OpError{
			Op:   "lookup.parse",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("export is not valid JSON: %w", err),
		}
	}
	if _, ok := doc.(map[string]any); !ok {
		return "", &domain.OpError{
			Op:   "lookup.parse",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("export is not a JSON object"),
		}
	}

	key := strings.TrimSpace(name)
	expr := Expr(key)

	val, getErr := jsonpath.Get(expr, doc)
	if getErr != nil {
		return "", &domain.OpError{
			Op:   "lookup.get",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("contact %q (%s): %w", key, expr, domain.ErrNotFound),
		}
	}

	s, ok := val.(string)
	if !ok {
		return "", &domain.OpError{
			Op:   "lookup.get",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("contact %q (%s): value is %T, not a string: %w", key, expr, val, domain.ErrNotFound),
		}
	}
	return s, nil
}

// Expr builds the JSONPath selecting name at the document root.
func Expr(name string) string {
	return "$[" + strconv.Quote(name) + "]"
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
