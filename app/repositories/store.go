package repositories

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// Store owns the badger database shared by the badger repositories.
type Store struct {
	db    *badger.DB
	mutex sync.Mutex
	path  string
}

// OpenStore opens the badger database at path. An in-memory database is used when
// inMemory is set, in which case path is ignored.
func OpenStore(path string, inMemory bool, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithNumVersionsToKeep(1)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	if logger != nil {
		opts = opts.WithLogger(badgerLogger{logger: logger.With("component", "badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", path, err)
	}
	return &Store{db: db, path: path}, nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *badger.DB {
	return s.db
}

// Blogs returns a blog repository backed by the store.
func (s *Store) Blogs() *BadgerBlogRepository {
	return NewBadgerBlogRepository(s.db)
}

// Posts returns a post repository backed by the store.
func (s *Store) Posts() *BadgerPostRepository {
	return NewBadgerPostRepository(s.db)
}

// Ping reports whether the database is still open.
func (s *Store) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return fmt.Errorf("badger at %q is closed", s.path)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

// Backup writes a full backup of the database to w.
func (s *Store) Backup(w io.Writer) (uint64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.db.Backup(w, 0)
}

// Restore loads a backup produced by Backup.
func (s *Store) Restore(r io.Reader) (err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic occurred during restore: %v", rec)
		}
	}()
	return s.db.Load(r, 16)
}

// Clear drops every key in the database.
func (s *Store) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.db.DropAll()
}

// badgerLogger routes badger's printf-style logging into slog.
type badgerLogger struct {
	logger *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
