package calculation

import (
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/modproj/projector/internal/domain"
)

// Fingerprint returns a stable key for a configuration and strategy pair.
// Runs with the same fingerprint produce identical rows, so callers may memoize on it.
func Fingerprint(config *domain.Configuration, strategy domain.Strategy) (string, error) {
	payload, err := json.Marshal(struct {
		Strategy      domain.Strategy       `json:"strategy"`
		Configuration *domain.Configuration `json:"configuration"`
	}{strategy, config})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(payload), 16), nil
}
