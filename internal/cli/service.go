package cli

import (
	"sync"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/vault"
)

var (
	svc     *vault.Service
	svcErr  error
	svcOnce sync.Once
)

// getService returns the shared vault service; the wordlists are loaded once
// per process.
func getService() (*vault.Service, error) {
	svcOnce.Do(func() {
		svc, svcErr = vault.New()
	})
	return svc, svcErr
}
