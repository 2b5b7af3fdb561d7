package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/roster/pkg/profile"
)

// slotKey is the one storage slot the whole collection lives under.
const slotKey = "profiles"

// Persistence is the storage contract for the roster. The collection is
// serialized whole: there is no per-record write, so callers read, modify,
// and save the full sequence. Convention: the most recently added or
// edited profile sits at the front.
type Persistence interface {
	LoadAll(ctx context.Context) []profile.Profile
	SaveAll(ctx context.Context, profiles []profile.Profile) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 8 * 1024 * 1024, // photo payloads are data URLs, allow a few MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// LoadAll deserializes the stored collection. An absent or unparsable slot
// loads as an empty roster, never an error.
func (p *persistence) LoadAll(ctx context.Context) []profile.Profile {
	if err := ctx.Err(); err != nil {
		return []profile.Profile{}
	}
	val, err := p.d.Read(slotKey)
	if err != nil {
		return []profile.Profile{}
	}
	var all []profile.Profile
	if err := json.Unmarshal(val, &all); err != nil {
		fmt.Fprintf(os.Stderr, "store: malformed roster data, starting empty: %v\n", err)
		return []profile.Profile{}
	}
	if all == nil {
		all = []profile.Profile{}
	}
	return all
}

// SaveAll overwrites the slot with the given sequence in a single write.
func (p *persistence) SaveAll(ctx context.Context, profiles []profile.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if profiles == nil {
		profiles = []profile.Profile{}
	}
	data, err := json.Marshal(profiles)
	if err != nil {
		return err
	}
	return p.d.Write(slotKey, data)
}
