package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"golang.org/x/crypto/hkdf"
	"gopkg.in/yaml.v3"
)

const hkdfInfo = "hivectl secret store v1"

// FileStore is a Store over a yaml file of AES-GCM encrypted values. The
// file is shared between processes; an fsnotify watcher turns external
// writes into per-key Change notifications.
type FileStore struct {
	fs   afero.Fs
	path string
	aead cipher.AEAD

	mu       sync.Mutex
	snapshot map[string]string
	subs     []chan Change
	closed   bool

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewFileStore opens the store at path, deriving the value-encryption key
// from masterKey. The file is created empty if missing.
func NewFileStore(fs afero.Fs, path string, masterKey []byte) (*FileStore, error) {
	subKey := make([]byte, 32)
	kdf := hkdf.New(sha256.New, masterKey, nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(kdf, subKey); err != nil {
		return nil, fmt.Errorf("failed to derive store key: %w", err)
	}

	block, err := aes.NewCipher(subKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	s := &FileStore{
		fs:   fs,
		path: path,
		aead: aead,
		done: make(chan struct{}),
	}

	entries, err := s.readFile()
	if err != nil {
		return nil, err
	}
	s.snapshot = entries
	return s, nil
}

// EnableWatcher starts the cross-process change subscription. It only works
// on the OS filesystem; in-memory test filesystems rely on Reload.
func (s *FileStore) EnableWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.path), err)
	}
	s.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
					continue
				}
				if err := s.Reload(); err != nil {
					fmt.Printf("Warning: failed to reload secret store: %v\n", err)
				}
			case <-watcher.Errors:
			case <-s.done:
				return
			}
		}
	}()
	return nil
}

func (s *FileStore) readFile() (map[string]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, &StoreError{Op: "read", Cause: err}
	}
	entries := map[string]string{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, &StoreError{Op: "read", Cause: err}
	}
	return entries, nil
}

func (s *FileStore) writeFile(entries map[string]string) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return &StoreError{Op: "write", Cause: err}
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return &StoreError{Op: "write", Cause: err}
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return &StoreError{Op: "write", Cause: err}
	}
	return nil
}

func (s *FileStore) encrypt(value string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := randRead(nonce); err != nil {
		return "", err
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(value), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *FileStore) decrypt(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("corrupt secret value: %w", err)
	}
	if len(sealed) < s.aead.NonceSize() {
		return "", fmt.Errorf("corrupt secret value: too short")
	}
	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("corrupt secret value: %w", err)
	}
	return string(plaintext), nil
}

func (s *FileStore) Get(key string) (string, error) {
	entries, err := s.readFile()
	if err != nil {
		return "", err
	}
	encoded, ok := entries[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	value, err := s.decrypt(encoded)
	if err != nil {
		return "", &StoreError{Op: "get", Key: key, Cause: err}
	}
	return value, nil
}

func (s *FileStore) Set(key, value string) error {
	encoded, err := s.encrypt(value)
	if err != nil {
		return &StoreError{Op: "set", Key: key, Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readFile()
	if err != nil {
		return err
	}
	entries[key] = encoded
	if err := s.writeFile(entries); err != nil {
		return err
	}
	s.snapshot = entries
	s.notifyLocked(key)
	return nil
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readFile()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(entries, key)
	if err := s.writeFile(entries); err != nil {
		return err
	}
	s.snapshot = entries
	s.notifyLocked(key)
	return nil
}

// Reload re-reads the file and emits one Change per key whose stored value
// differs from the last observed snapshot.
func (s *FileStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readFile()
	if err != nil {
		return err
	}

	for key, encoded := range entries {
		if s.snapshot[key] != encoded {
			s.notifyLocked(key)
		}
	}
	for key := range s.snapshot {
		if _, ok := entries[key]; !ok {
			s.notifyLocked(key)
		}
	}
	s.snapshot = entries
	return nil
}

// Watch registers a change subscription. Notifications are dropped rather
// than blocking a slow consumer.
func (s *FileStore) Watch() <-chan Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Change, 16)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *FileStore) notifyLocked(key string) {
	for _, ch := range s.subs {
		select {
		case ch <- Change{Key: key}:
		default:
		}
	}
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	close(s.done)
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			return err
		}
	}
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
	return nil
}
