package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Ownership feed variants. The draft-choices feed maps picks to entries and
// is stable once a draft has completed; the element-status feed reflects the
// live owner of each element and can disagree with choices mid-draft.
const (
	OwnershipChoices       = "choices"
	OwnershipElementStatus = "element-status"
)

type Config struct {
	LeagueID        int           `envconfig:"LEAGUE_ID" required:"true"`
	BaseURL         string        `envconfig:"BASE_URL" default:"https://draft.premierleague.com/api"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"600s"`
	OwnershipSource string        `envconfig:"OWNERSHIP_SOURCE" default:"choices"`

	// RawRoot enables an on-disk archive of every upstream payload.
	// Empty disables archiving.
	RawRoot string `envconfig:"RAW_ROOT"`

	// RefreshEvery keeps the cache warm by forcing a refetch on a fixed
	// cadence. Zero disables the background job.
	RefreshEvery time.Duration `envconfig:"REFRESH_EVERY"`
}

func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	switch c.OwnershipSource {
	case OwnershipChoices, OwnershipElementStatus:
	default:
		return nil, fmt.Errorf("OWNERSHIP_SOURCE must be %q or %q, got %q",
			OwnershipChoices, OwnershipElementStatus, c.OwnershipSource)
	}
	if c.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	return &c, nil
}
