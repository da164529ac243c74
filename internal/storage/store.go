package storage

import (
	"encoding/json"
	"reflect"

	"github.com/peterbourgon/diskv/v3"
)

// Storage keys for the independently persisted state blobs. Each key maps
// to one JSON document; the card and dex blobs never reference each other.
const (
	KeyCollection  = "tcg-collection-v1"
	KeyDexStatus   = "living-dex-v1"
	KeyCollections = "collections-v1"
	KeySpeciesList = "pokemon-list-v1"
)

// Store is a durable key-value store for JSON blobs, backed by diskv.
type Store struct {
	d *diskv.Diskv
}

// Open creates a Store rooted at baseDir.
func Open(baseDir string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     baseDir,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// ReadJSON reads the blob under key into out, which must be a non-nil
// pointer. It never fails: a missing or corrupt blob leaves out untouched,
// so callers pass the zero default. Decoding goes through a scratch value
// so a blob that decodes partway cannot leave out half-populated.
func (s *Store) ReadJSON(key string, out interface{}) {
	data, err := s.d.Read(key)
	if err != nil {
		return
	}
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return
	}
	tmp := reflect.New(dst.Type().Elem())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return
	}
	dst.Elem().Set(tmp.Elem())
}

// WriteJSON persists value under key. diskv writes via temp file + rename,
// so a crash mid-write never leaves a torn blob behind.
func (s *Store) WriteJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.d.Write(key, data)
}

// Erase removes the blob under key. Missing keys are not an error.
func (s *Store) Erase(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}
