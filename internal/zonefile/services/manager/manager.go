// Package manager is the service layer tying the pipeline together: parse,
// validate, serialize, regenerate, and persist. It owns no policy of its
// own; each step delegates to the package that implements it.
package manager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/codec"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/common/log"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/generator"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/parser"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/validator"
)

// ErrInvalidZone is returned by Save when the zone fails validation.
// Persistence is a gate: only zones a resolver could serve are stored.
var ErrInvalidZone = errors.New("zone failed validation")

// ZoneCache memoizes parse results keyed by source text. Implementations
// must be safe for concurrent use.
type ZoneCache interface {
	Get(key string) (*domain.Zone, bool)
	Put(key string, z *domain.Zone)
	Len() int
	Purge()
	Stats() (hits, misses, evictions uint64)
}

// ZoneStore persists validated zones keyed by origin.
type ZoneStore interface {
	Save(z *domain.Zone) error
	Load(origin string) (*domain.Zone, error)
	Origins() ([]string, error)
	Close() error
}

// Options carries the manager's collaborators. Cache and Store are optional;
// a nil Cache disables memoization and a nil Store makes Save, Load, and
// Origins return an error. A nil Logger falls back to the global logger.
type Options struct {
	Cache  ZoneCache
	Store  ZoneStore
	Logger log.Logger
}

// Manager coordinates the zone-file pipeline. Safe for concurrent use as
// long as callers do not mutate zones it has handed out.
type Manager struct {
	parser *parser.Parser
	cache  ZoneCache
	store  ZoneStore
	logger log.Logger
}

// New assembles a manager from its options.
func New(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetLogger()
	}
	return &Manager{
		parser: parser.New(logger),
		cache:  opts.Cache,
		store:  opts.Store,
		logger: logger,
	}
}

// Parse turns zone-file text into a Zone, memoizing by source text when a
// cache is configured. Cached zones are shared; treat them as read-only.
func (m *Manager) Parse(text string) (*domain.Zone, error) {
	if m.cache != nil {
		if z, ok := m.cache.Get(text); ok {
			return z, nil
		}
	}

	z, err := m.parser.Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		m.cache.Put(text, z)
	}
	return z, nil
}

// Validate runs the full rule set against a parsed zone.
func (m *Manager) Validate(z *domain.Zone) validator.Report {
	return validator.Validate(z)
}

// Export serializes a zone's exchange form. With pretty set, JSON output is
// indented; other formats are unaffected.
func (m *Manager) Export(z *domain.Zone, format string, pretty bool) ([]byte, error) {
	if pretty {
		return codec.MarshalIndent(z, format)
	}
	return codec.Marshal(z, format)
}

// Import deserializes exchange-format bytes back into a Zone.
func (m *Manager) Import(data []byte, format string) (*domain.Zone, error) {
	return codec.Unmarshal(data, format)
}

// Generate renders a zone back into zone-file text.
func (m *Manager) Generate(z *domain.Zone) string {
	return generator.Generate(z)
}

// Save validates and persists a zone. Zones with validation errors are
// refused with ErrInvalidZone; warnings alone do not block persistence.
func (m *Manager) Save(z *domain.Zone) error {
	if m.store == nil {
		return errors.New("no zone store configured")
	}

	report := validator.Validate(z)
	if !report.OK {
		for _, d := range report.Diagnostics {
			if d.Severity == domain.SeverityError {
				m.logger.Error(map[string]any{
					"origin": z.Origin,
					"record": d.Record,
				}, d.Message)
			}
		}
		return fmt.Errorf("%w: %s", ErrInvalidZone, z.Origin)
	}

	if err := m.store.Save(z); err != nil {
		return fmt.Errorf("save zone %s: %w", z.Origin, err)
	}
	m.logger.Info(map[string]any{
		"origin":  z.Origin,
		"records": len(z.Records),
	}, "zone saved")
	return nil
}

// Load retrieves a previously saved zone by origin.
func (m *Manager) Load(origin string) (*domain.Zone, error) {
	if m.store == nil {
		return nil, errors.New("no zone store configured")
	}
	return m.store.Load(origin)
}

// Origins lists the origins of all saved zones.
func (m *Manager) Origins() ([]string, error) {
	if m.store == nil {
		return nil, errors.New("no zone store configured")
	}
	return m.store.Origins()
}
