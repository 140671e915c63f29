// Package zonestore persists validated zones in a Bolt database keyed by
// origin. Zones are stored in their JSON exchange form, so the on-disk
// format is the same one the codec speaks.
package zonestore

import (
	"encoding/binary"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/codec"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/common/clock"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/services/manager"
)

var (
	bucketZones = []byte("zones")
	bucketMeta  = []byte("meta")
)

// boltStore implements manager.ZoneStore using bbolt.
type boltStore struct {
	db    *bbolt.DB
	clock clock.Clock
}

// New opens (or creates) a Bolt database at path and ensures buckets exist.
// A nil clk uses the real clock.
func New(path string, clk clock.Clock) (manager.ZoneStore, error) {
	if clk == nil {
		clk = clock.RealClock{}
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketZones); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketMeta); err != nil {
			return err
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db, clock: clk}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

// Save stores the zone under its origin, replacing any previous version,
// and records the save time in the meta bucket.
func (s *boltStore) Save(z *domain.Zone) error {
	if z.Origin == "" {
		return fmt.Errorf("cannot store a zone without an origin")
	}
	data, err := codec.Marshal(z, codec.FormatJSON)
	if err != nil {
		return err
	}
	now := uint64(s.clock.Now().Unix())
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketZones).Put([]byte(z.Origin), data); err != nil {
			return err
		}
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, now)
		return tx.Bucket(bucketMeta).Put([]byte(z.Origin), buf)
	})
}

// Load retrieves a zone by origin. Unknown origins are an error.
func (s *boltStore) Load(origin string) (*domain.Zone, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketZones).Get([]byte(origin))
		if v == nil {
			return fmt.Errorf("no stored zone for origin %q", origin)
		}
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return codec.Unmarshal(data, codec.FormatJSON)
}

// Origins lists the origins of all stored zones in key order.
func (s *boltStore) Origins() ([]string, error) {
	var origins []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketZones).ForEach(func(k, _ []byte) error {
			origins = append(origins, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return origins, nil
}

// SavedAt returns when the zone for origin was last stored, if ever.
func (s *boltStore) SavedAt(origin string) (time.Time, bool) {
	var t time.Time
	var found bool
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketMeta).Get([]byte(origin)); len(v) == 8 {
			t = time.Unix(int64(binary.BigEndian.Uint64(v)), 0)
			found = true
		}
		return nil
	})
	return t, found
}

var _ manager.ZoneStore = (*boltStore)(nil)
