// Package google implements service account authentication against the
// Google OAuth token endpoint. The Sheets and Calendar clients share one
// TokenSource.
package google

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// TokenSource issues and caches OAuth access tokens for a service account.
// Safe for concurrent use.
type TokenSource struct {
	clientEmail string
	privateKey  *rsa.PrivateKey
	tokenURL    string
	scopes      []string
	httpClient  *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenSource creates a token source from the service account key file
// at keyPath (PEM encoded PKCS#8 or PKCS#1 RSA key).
func NewTokenSource(clientEmail, keyPath, tokenURL string, timeout time.Duration, scopes []string) (*TokenSource, error) {
	pemData, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read key file: %v", ErrInvalidKey, err)
	}

	key, err := parsePrivateKey(pemData)
	if err != nil {
		return nil, err
	}

	return &TokenSource{
		clientEmail: clientEmail,
		privateKey:  key,
		tokenURL:    tokenURL,
		scopes:      scopes,
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

func parsePrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKey)
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: key is not an RSA key", ErrInvalidKey)
		}
		return rsaKey, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: parse key: %v", ErrInvalidKey, err)
	}
	return key, nil
}

// Token returns a valid access token, refreshing it when the cached one is
// expired or about to expire.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Add(time.Minute).Before(s.expiry) {
		return s.token, nil
	}

	token, expiresIn, err := s.exchange(ctx)
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	return s.token, nil
}

func (s *TokenSource) exchange(ctx context.Context) (string, int64, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   s.clientEmail,
		"scope": strings.Join(s.scopes, " "),
		"aud":   s.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", 0, fmt.Errorf("%w: sign assertion: %v", ErrInternal, err)
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("%w: status %d: %s", ErrTokenExchange, resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", 0, fmt.Errorf("%w: decode response: %v", ErrTokenExchange, err)
	}
	if payload.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: empty access token", ErrTokenExchange)
	}
	return payload.AccessToken, payload.ExpiresIn, nil
}
