package history

import (
	"context"
	"encoding/binary"
	"time"

	"eventpulse/internal/domain/repository"
	"eventpulse/internal/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	badgerKeyPrefix = "shown:"
	// claimRetries bounds retries of a Claim transaction that lost a write conflict
	claimRetries = 3
)

type badgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerStore wraps an open BadgerDB. Entries carry a TTL so that records
// expire on their own even when no prune runs.
func NewBadgerStore(db *badger.DB, ttl time.Duration) repository.ShownHistoryStore {
	return &badgerStore{db: db, ttl: ttl}
}

func badgerKey(userID uuid.UUID, trackingID string) []byte {
	return []byte(badgerKeyPrefix + userID.String() + ":" + trackingID)
}

func encodeTime(t time.Time) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))

	return buf
}

func decodeTime(val []byte) (time.Time, error) {
	if len(val) != 8 {
		return time.Time{}, errors.Errorf("corrupt history value of %d bytes", len(val))
	}

	return time.Unix(0, int64(binary.BigEndian.Uint64(val))).UTC(), nil
}

func readShownAt(item *badger.Item) (time.Time, error) {
	var shownAt time.Time
	err := item.Value(func(val []byte) error {
		var decodeErr error
		shownAt, decodeErr = decodeTime(val)

		return decodeErr
	})

	return shownAt, err
}

func (s *badgerStore) entry(userID uuid.UUID, trackingID string, shownAt time.Time) *badger.Entry {
	return badger.NewEntry(badgerKey(userID, trackingID), encodeTime(shownAt)).WithTTL(s.ttl)
}

func (s *badgerStore) Get(_ context.Context, userID uuid.UUID, trackingID string) (time.Time, bool, error) {
	var (
		shownAt time.Time
		found   bool
	)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(userID, trackingID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		shownAt, err = readShownAt(item)
		found = err == nil

		return err
	})
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "failed to read shown history")
	}

	return shownAt, found, nil
}

func (s *badgerStore) Put(_ context.Context, userID uuid.UUID, trackingID string, shownAt time.Time) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(s.entry(userID, trackingID, shownAt))
	})

	return errors.Wrap(err, "failed to write shown history")
}

// Claim runs read-check-write in one transaction; Badger's optimistic
// concurrency turns a concurrent claim of the same key into ErrConflict.
func (s *badgerStore) Claim(_ context.Context, userID uuid.UUID, trackingID string, shownAt, cutoff time.Time) (bool, error) {
	for range claimRetries {
		claimed := false
		err := s.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(badgerKey(userID, trackingID))
			switch {
			case errors.Is(err, badger.ErrKeyNotFound):
			case err != nil:
				return err
			default:
				prev, err := readShownAt(item)
				if err == nil && !prev.Before(cutoff) {
					return nil
				}
			}

			claimed = true

			return txn.SetEntry(s.entry(userID, trackingID, shownAt))
		})
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			return false, errors.Wrap(err, "failed to claim shown history")
		}

		return claimed, nil
	}

	// Every attempt collided with another writer, which therefore holds the record.
	return false, nil
}

func (s *badgerStore) PruneOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	var stale [][]byte

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgerKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			shownAt, err := readShownAt(item)
			if err != nil || shownAt.Before(cutoff) {
				stale = append(stale, item.KeyCopy(nil))
			}
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to scan shown history")
	}

	if len(stale) == 0 {
		return 0, nil
	}

	batch := s.db.NewWriteBatch()
	defer batch.Cancel()

	for _, key := range stale {
		if err := batch.Delete(key); err != nil {
			return 0, errors.Wrap(err, "failed to delete shown history")
		}
	}
	if err := batch.Flush(); err != nil {
		return 0, errors.Wrap(err, "failed to flush shown history prune")
	}

	return len(stale), nil
}
