package manager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/common/log"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
)

const validZone = `$ORIGIN example.com.
$TTL 3600
@    IN SOA ns1.example.com. admin.example.com. ( 2026083001 7200 3600 1209600 300 )
@    IN NS  ns1.example.com.
www  IN A   192.0.2.1
`

// fakeCache is a trivial ZoneCache tracking hits and puts.
type fakeCache struct {
	entries map[string]*domain.Zone
	hits    uint64
	misses  uint64
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*domain.Zone)}
}

func (c *fakeCache) Get(key string) (*domain.Zone, bool) {
	z, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return z, ok
}

func (c *fakeCache) Put(key string, z *domain.Zone) { c.entries[key] = z }
func (c *fakeCache) Len() int                       { return len(c.entries) }
func (c *fakeCache) Purge()                         { c.entries = make(map[string]*domain.Zone) }
func (c *fakeCache) Stats() (uint64, uint64, uint64) {
	return c.hits, c.misses, 0
}

// fakeStore is an in-memory ZoneStore.
type fakeStore struct {
	zones   map[string]*domain.Zone
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{zones: make(map[string]*domain.Zone)}
}

func (s *fakeStore) Save(z *domain.Zone) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.zones[z.Origin] = z
	return nil
}

func (s *fakeStore) Load(origin string) (*domain.Zone, error) {
	z, ok := s.zones[origin]
	if !ok {
		return nil, fmt.Errorf("no stored zone for origin %q", origin)
	}
	return z, nil
}

func (s *fakeStore) Origins() ([]string, error) {
	var out []string
	for origin := range s.zones {
		out = append(out, origin)
	}
	return out, nil
}

func (s *fakeStore) Close() error { return nil }

func newTestManager(cache ZoneCache, store ZoneStore) *Manager {
	return New(Options{Cache: cache, Store: store, Logger: log.NewNoopLogger()})
}

func TestManager_ParseMemoizes(t *testing.T) {
	cache := newFakeCache()
	m := newTestManager(cache, nil)

	first, err := m.Parse(validZone)
	require.NoError(t, err)
	require.Equal(t, "example.com.", first.Origin)

	second, err := m.Parse(validZone)
	require.NoError(t, err)
	require.Same(t, first, second, "second parse should come from the cache")

	hits, misses, _ := cache.Stats()
	require.Equal(t, uint64(1), hits)
	require.Equal(t, uint64(1), misses)
}

func TestManager_ParseWithoutCache(t *testing.T) {
	m := newTestManager(nil, nil)
	z, err := m.Parse(validZone)
	require.NoError(t, err)
	require.Len(t, z.Records, 3)
}

func TestManager_ValidateReportsProblems(t *testing.T) {
	m := newTestManager(nil, nil)
	z, err := m.Parse("$ORIGIN example.com.\n$TTL 3600\nwww IN A 192.0.2.1\n")
	require.NoError(t, err)

	report := m.Validate(z)
	require.False(t, report.OK)
}

func TestManager_ExportImportRoundTrip(t *testing.T) {
	m := newTestManager(nil, nil)
	z, err := m.Parse(validZone)
	require.NoError(t, err)

	for _, format := range []string{"json", "yaml", "toml"} {
		data, err := m.Export(z, format, false)
		require.NoError(t, err)

		got, err := m.Import(data, format)
		require.NoError(t, err)
		require.True(t, z.Equal(got), "%s round trip", format)
	}
}

func TestManager_GenerateRoundTrip(t *testing.T) {
	m := newTestManager(nil, nil)
	z, err := m.Parse(validZone)
	require.NoError(t, err)

	regenerated, err := m.Parse(m.Generate(z))
	require.NoError(t, err)
	require.True(t, z.Equal(regenerated))
}

func TestManager_SaveValidZone(t *testing.T) {
	store := newFakeStore()
	m := newTestManager(nil, store)

	z, err := m.Parse(validZone)
	require.NoError(t, err)
	require.NoError(t, m.Save(z))
	require.Contains(t, store.zones, "example.com.")
}

func TestManager_SaveRefusesInvalidZone(t *testing.T) {
	store := newFakeStore()
	m := newTestManager(nil, store)

	// no SOA, no NS
	z, err := m.Parse("$ORIGIN example.com.\n$TTL 3600\nwww IN A 192.0.2.1\n")
	require.NoError(t, err)

	err = m.Save(z)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidZone))
	require.Empty(t, store.zones)
}

func TestManager_SavePropagatesStoreError(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("disk full")
	m := newTestManager(nil, store)

	z, err := m.Parse(validZone)
	require.NoError(t, err)

	err = m.Save(z)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidZone)
}

func TestManager_StoreOperationsWithoutStore(t *testing.T) {
	m := newTestManager(nil, nil)

	z, err := m.Parse(validZone)
	require.NoError(t, err)

	require.Error(t, m.Save(z))
	_, err = m.Load("example.com.")
	require.Error(t, err)
	_, err = m.Origins()
	require.Error(t, err)
}

func TestManager_LoadAndOrigins(t *testing.T) {
	store := newFakeStore()
	m := newTestManager(nil, store)

	z, err := m.Parse(validZone)
	require.NoError(t, err)
	require.NoError(t, m.Save(z))

	got, err := m.Load("example.com.")
	require.NoError(t, err)
	require.True(t, z.Equal(got))

	origins, err := m.Origins()
	require.NoError(t, err)
	require.Equal(t, []string{"example.com."}, origins)
}
