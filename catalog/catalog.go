package catalog

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dgraph-io/badger/v3"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/homcount/graph"
)

// Sentinel errors.
var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("catalog: closed")

	// ErrReadOnly is returned by Store on a catalog opened read-only.
	ErrReadOnly = errors.New("catalog: read-only")

	// ErrCorruptValue indicates a stored value that is not an 8-byte count.
	ErrCorruptValue = errors.New("catalog: corrupt value")

	// ErrBadParam reports an unusable Options combination.
	ErrBadParam = errors.New("catalog: bad parameter")
)

// keyPrefix namespaces count entries inside the database.
var keyPrefix = []byte{0x00, 'h', 'c'}

// DefaultCacheSize is used when Options.CacheSize is zero.
const DefaultCacheSize = 1024

// Options configures Open.
type Options struct {
	// Path is the badger directory. Empty means an in-memory database.
	Path string

	// ReadOnly opens an existing database without write access.
	ReadOnly bool

	// CacheSize bounds the LRU front cache; 0 selects DefaultCacheSize and a
	// negative value disables the cache.
	CacheSize int

	// Logger receives open/close and miss diagnostics. Nil discards.
	Logger logrus.FieldLogger
}

// Catalog is a persistent map from (pattern, target) to homomorphism count.
// It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex // guards db against Close
	db       *badger.DB
	cache    *lru.Cache[[sha256.Size]byte, uint64]
	readOnly bool
	log      logrus.FieldLogger
}

// Open opens or creates the catalog described by opts.
func Open(opts Options) (*Catalog, error) {
	if opts.Path == "" && opts.ReadOnly {
		return nil, fmt.Errorf("%w: read-only catalog needs a path", ErrBadParam)
	}

	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false
	dbOpts.Logger = nil
	if opts.Path == "" {
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", opts.Path, err)
	}

	c := &Catalog{db: db, readOnly: opts.ReadOnly, log: opts.Logger}
	if c.log == nil {
		c.log = discardLogger()
	}

	size := opts.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	if size > 0 {
		if c.cache, err = lru.New[[sha256.Size]byte, uint64](size); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	c.log.WithFields(logrus.Fields{
		"path": opts.Path, "read_only": opts.ReadOnly, "cache": size,
	}).Debug("catalog: opened")
	return c, nil
}

// Lookup returns the stored count for (g, h). The boolean is false when the
// pair has never been stored.
func (c *Catalog) Lookup(g, h *graph.Graph) (uint64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return 0, false, ErrClosed
	}

	key := Key(g, h)
	if c.cache != nil {
		if n, ok := c.cache.Get(key); ok {
			return n, true, nil
		}
	}

	var count uint64
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(dbKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("%w: %d bytes", ErrCorruptValue, len(val))
			}
			count = binary.BigEndian.Uint64(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		c.log.WithField("key", fmt.Sprintf("%x", key[:6])).Trace("catalog: miss")
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	if c.cache != nil {
		c.cache.Add(key, count)
	}
	return count, true, nil
}

// Store records count for (g, h), replacing any earlier value.
func (c *Catalog) Store(g, h *graph.Graph, count uint64) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return ErrClosed
	}
	if c.readOnly {
		return ErrReadOnly
	}

	key := Key(g, h)
	var val [8]byte
	binary.BigEndian.PutUint64(val[:], count)
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(dbKey(key), val[:])
	})
	if err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.Add(key, count)
	}
	return nil
}

// Len returns the number of stored counts.
func (c *Catalog) Len() (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return 0, ErrClosed
	}

	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: keyPrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Close releases the database. Calling Close twice is a no-op.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	if c.cache != nil {
		c.cache.Purge()
	}
	c.log.Debug("catalog: closed")
	return err
}

// Key returns the digest identifying the pair (g, h). The encoding hashed is
// the vertex count of g, its sorted edges, then the same for h, every number
// as a uvarint.
func Key(g, h *graph.Graph) [sha256.Size]byte {
	d := sha256.New()
	buf := make([]byte, 0, 64)
	for _, x := range []*graph.Graph{g, h} {
		edges := x.Edges()
		buf = binary.AppendUvarint(buf[:0], uint64(x.VertexCount()))
		buf = binary.AppendUvarint(buf, uint64(len(edges)))
		d.Write(buf)
		for _, e := range edges {
			buf = binary.AppendUvarint(buf[:0], uint64(e.From))
			buf = binary.AppendUvarint(buf, uint64(e.To))
			d.Write(buf)
		}
	}

	var out [sha256.Size]byte
	d.Sum(out[:0])
	return out
}

func dbKey(k [sha256.Size]byte) []byte {
	return append(append(make([]byte, 0, len(keyPrefix)+len(k)), keyPrefix...), k[:]...)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
