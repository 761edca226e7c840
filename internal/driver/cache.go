package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"phix/internal/token"
)

// Bump when tokenPayload's layout changes: stale entries then miss
// instead of decoding garbage.
const cacheSchemaVersion uint16 = 1

// Cache stores tokenized files on disk keyed by the sha256 of their
// content. Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// tokenPayload — сериализованный продукт лексера для одного файла.
// Диагностики не кэшируются, поэтому класть сюда можно только файлы,
// отлексившиеся без замечаний.
type tokenPayload struct {
	Schema uint16
	Path   string
	Tokens []token.Token
}

// OpenCache initializes the disk cache at the standard location:
// $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "tokens" — чтобы чистка и будущие виды артефактов
	// не мешали друг другу.
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes the token slice under key. The write is atomic:
// encode to a temp file, then rename over the final path.
func (c *Cache) Put(key [32]byte, path string, toks []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "phix: failed to remove temp file: %v\n", rmErr)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&tokenPayload{Schema: cacheSchemaVersion, Path: path, Tokens: toks}); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get loads the token slice stored under key. A missing entry or a
// schema mismatch is a miss, not an error.
func (c *Cache) Get(key [32]byte) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return payload.Tokens, true, nil
}

// DropAll removes every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим: живые читатели не увидят
	// полустёртого состояния
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
