package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "hivectl"
	keyringField   = "secret-store"
)

var (
	keyringSet = keyring.Set
	keyringGet = keyring.Get
	randRead   = rand.Read
)

// MasterKey returns the 32-byte store key held in the OS keychain, creating
// a fresh random one on first use.
func MasterKey() ([]byte, error) {
	encoded, err := keyringGet(keyringService, keyringField)
	if err == nil {
		key, decodeErr := hex.DecodeString(encoded)
		if decodeErr != nil {
			return nil, fmt.Errorf("corrupt master key in keyring: %w", decodeErr)
		}
		return key, nil
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		return nil, &StoreError{Op: "keyring get", Cause: err}
	}

	key := make([]byte, 32)
	if _, err := randRead(key); err != nil {
		return nil, err
	}
	if err := keyringSet(keyringService, keyringField, hex.EncodeToString(key)); err != nil {
		return nil, &StoreError{Op: "keyring set", Cause: err}
	}
	return key, nil
}
