// Package store persists computed checksums in a buntdb database so runs
// of the checksum tool can record digests and later verify content against
// them. Keys are "algorithm:path", values lowercase hex digests.
package store

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tidwall/buntdb"

	chksum "github.com/chksum/go-chksum"
)

// ErrNotFound is returned by Get when no digest has been recorded for the
// path and algorithm.
var ErrNotFound = errors.New("no recorded checksum")

// Store is a checksum database. It is safe for concurrent use; buntdb
// serializes transactions internally.
type Store struct {
	db *buntdb.DB
}

// Open opens (creating if needed) a checksum database at path. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening checksum database")
	}
	return &Store{db: db}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(algo chksum.Algorithm, path string) string {
	return fmt.Sprintf("%s:%s", algo, path)
}

// Put records the hex digest of path under the given algorithm,
// overwriting any previous entry.
func (s *Store) Put(algo chksum.Algorithm, path string, hexDigest string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key(algo, path), hexDigest, nil)
		return err
	})
	return errors.Wrap(err, "recording checksum")
}

// Get returns the recorded hex digest for path under the given algorithm,
// or ErrNotFound.
func (s *Store) Get(algo chksum.Algorithm, path string) (string, error) {
	var digest string
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key(algo, path))
		if err != nil {
			return err
		}
		digest = v
		return nil
	})
	if err == buntdb.ErrNotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "reading checksum")
	}
	return digest, nil
}

// Verify compares a freshly computed hex digest against the recorded one.
// It reports whether they match; ErrNotFound when nothing was recorded.
func (s *Store) Verify(algo chksum.Algorithm, path string, hexDigest string) (bool, error) {
	recorded, err := s.Get(algo, path)
	if err != nil {
		return false, err
	}
	return recorded == hexDigest, nil
}

// Each calls fn for every recorded entry in key order.
func (s *Store) Each(fn func(key, hexDigest string) bool) error {
	return s.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("", func(k, v string) bool {
			return fn(k, v)
		})
	})
}
