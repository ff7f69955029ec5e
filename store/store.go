package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/realtransducer/record"
)

var (
	// ErrNotFound is returned by Get for an absent id.
	ErrNotFound = errors.New("store: record not found")

	// ErrPathRequired is returned by Open for a persistent store without a path.
	ErrPathRequired = errors.New("store: path is required for a persistent store")
)

const (
	keyPrefix = "rec/"
	idWidth   = 20
)

// Config configures Open.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in memory.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// Logger receives Badger's internal log. Nil disables it.
	Logger *slog.Logger
}

// DefaultConfig returns a persistent configuration with synchronous writes.
// Path must still be set.
func DefaultConfig() Config {
	return Config{SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Store is a record store backed by Badger.
type Store struct {
	db  *badger.DB
	seq atomic.Uint64
}

// Open opens or creates the store described by cfg.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, ErrPathRequired
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	s := &Store{db: db}
	if err = s.initSeq(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores rec under id, replacing any previous record.
func (s *Store) Put(ctx context.Context, id uint64, rec record.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := record.FormatText(rec)
	if err != nil {
		return fmt.Errorf("store: encode %d: %w", id, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(id), []byte(val))
	})
	if err != nil {
		return fmt.Errorf("store: put %d: %w", id, err)
	}
	s.bumpSeq(id)

	return nil
}

// Append stores rec under the next free id and returns it.
func (s *Store) Append(ctx context.Context, rec record.Record) (uint64, error) {
	id := s.seq.Add(1)
	if err := s.Put(ctx, id, rec); err != nil {
		return 0, err
	}

	return id, nil
}

// Get loads the record stored under id. Returns ErrNotFound if absent.
func (s *Store) Get(ctx context.Context, id uint64) (record.Record, error) {
	if err := ctx.Err(); err != nil {
		return record.Record{}, err
	}
	var rec record.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			rec, err = record.ParseText(string(val))
			return err
		})
	})
	if err != nil {
		return record.Record{}, fmt.Errorf("store: get %d: %w", id, err)
	}

	return rec, nil
}

// Iterate calls fn for every record in ascending id order. An error from fn
// stops the iteration and is returned.
func (s *Store) Iterate(ctx context.Context, fn func(id uint64, rec record.Record) error) error {
	prefix := []byte(keyPrefix)
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			id, err := parseKey(item.Key())
			if err != nil {
				return err
			}
			val, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("store: read %d: %w", id, err)
			}
			rec, err := record.ParseText(string(val))
			if err != nil {
				return fmt.Errorf("store: decode %d: %w", id, err)
			}
			if err = fn(id, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	prefix := []byte(keyPrefix)
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}

	return n, nil
}

// initSeq sets the sequence to the highest stored id.
func (s *Store) initSeq() error {
	prefix := []byte(keyPrefix)
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// "rec0" sorts right after every "rec/…" key
		it.Seek([]byte("rec0"))
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		id, err := parseKey(it.Item().Key())
		if err != nil {
			return err
		}
		s.seq.Store(id)
		return nil
	})
}

func (s *Store) bumpSeq(id uint64) {
	for {
		cur := s.seq.Load()
		if id <= cur || s.seq.CompareAndSwap(cur, id) {
			return
		}
	}
}

func key(id uint64) []byte {
	return fmt.Appendf(nil, "%s%0*d", keyPrefix, idWidth, id)
}

func parseKey(k []byte) (uint64, error) {
	id, err := strconv.ParseUint(string(k[len(keyPrefix):]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("store: malformed key %q", k)
	}

	return id, nil
}
