package database

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// counterDocument is the stored shape of a counter.
type counterDocument struct {
	Count int64 `json:"count"`
}

// BoltCounterStore keeps counters as json documents in a boltdb bucket.
type BoltCounterStore struct {
	db         *bbolt.DB
	bucketName []byte
}

// NewBoltCounterStore creates new BoltCounterStore instance.
func NewBoltCounterStore(dbPath string, bucketName string) (*BoltCounterStore, error) {
	db, err := bbolt.Open(dbPath, 0666, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return err
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating database bucket: %w", err)
	}

	return &BoltCounterStore{
		db:         db,
		bucketName: []byte(bucketName),
	}, nil
}

// Increment adds 1 to the counter stored under key, creating it with 1 if absent.
// Read and write happen in one bolt write transaction, so concurrent increments are never lost.
func (s *BoltCounterStore) Increment(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var doc counterDocument
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		if data := b.Get([]byte(key)); data != nil {
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("unmarshalling counter: %w", err)
			}
		}
		doc.Count++

		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshalling counter: %w", err)
		}
		return b.Put([]byte(key), data)
	}); err != nil {
		return 0, fmt.Errorf("writing to db: %w", err)
	}

	return doc.Count, nil
}

// Count returns counter value stored under key. Returns 0 if there's no counter stored.
func (s *BoltCounterStore) Count(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var doc counterDocument
	if err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(s.bucketName).Get([]byte(key))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &doc)
	}); err != nil {
		return 0, fmt.Errorf("reading from db: %w", err)
	}

	return doc.Count, nil
}

// Close closes database.
func (s *BoltCounterStore) Close() error {
	return s.db.Close()
}
