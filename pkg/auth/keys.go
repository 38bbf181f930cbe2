package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/blackvant/backend/pkg/clients"
	"go.uber.org/zap"
)

const (
	maxRetries      = 3
	retryInterval   = time.Second * 1
	refreshInterval = time.Hour
)

type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

// KeySet caches the identity provider's JWKS keys and refreshes them in the
// background.
type KeySet struct {
	url    string
	client clients.HTTPClientI

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

func NewKeySet(url string, client clients.HTTPClientI) *KeySet {
	return &KeySet{
		url:    url,
		client: client,
		keys:   make(map[string]*rsa.PublicKey),
	}
}

func (ks *KeySet) Start(ctx context.Context) {
	zap.L().Info("JWKS key refresher started")
	go ks.run(ctx)
}

func (ks *KeySet) run(ctx context.Context) {
	if err := ks.Refresh(ctx); err != nil {
		zap.L().Error("initial JWKS fetch failed", zap.Error(err))
	}

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping key refresher")
			return
		case <-ticker.C:
			if err := ks.Refresh(ctx); err != nil {
				zap.L().Error("JWKS refresh failed", zap.Error(err))
			}
		}
	}
}

// Refresh fetches the key set, retrying transient failures.
func (ks *KeySet) Refresh(ctx context.Context) error {
	var err error
	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, _, err = ks.client.Get(ks.url, nil)
			if err != nil || statusCode != http.StatusOK {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to fetch JWKS after %d retries: %w", maxRetries, err)
				}
				return fmt.Errorf("failed to fetch JWKS after %d retries: status %d", maxRetries, statusCode)
			}
			return ks.replace(respBody)
		}
	}
	return nil
}

func (ks *KeySet) replace(respBody []byte) error {
	var set jwks
	if err := json.Unmarshal(respBody, &set); err != nil {
		return fmt.Errorf("failed to parse JWKS body: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			zap.L().Warn("skipping unparsable JWKS key", zap.String("kid", k.Kid), zap.Error(err))
			continue
		}
		keys[k.Kid] = pub
	}

	ks.mu.Lock()
	ks.keys = keys
	ks.mu.Unlock()

	zap.L().Info("JWKS keys refreshed", zap.Int("count", len(keys)))
	return nil
}

func parseRSAKey(k jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("bad modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("bad exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}

func (ks *KeySet) Resolve(kid string) (*rsa.PublicKey, error) {
	ks.mu.RLock()
	key, ok := ks.keys[kid]
	ks.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown signing key: %s", kid)
	}
	return key, nil
}
