package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtopia/nft-assistant/internal/api/middleware"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemBytes)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := generateKeyPair(t)
	otherKey, _ := generateKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"", "k1", "k2"}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "intruder"})
	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		cfg         middleware.AuthConfig
		wantType    string
		wantSubject string
		wantErr     bool
	}{
		{name: "valid jwt", header: "Bearer " + valid, cfg: cfg, wantType: middleware.AUTH_TYPE_JWT, wantSubject: "operator"},
		{name: "expired jwt", header: "Bearer " + expired, cfg: cfg, wantErr: true},
		{name: "jwt signed by another key", header: "Bearer " + foreign, cfg: cfg, wantErr: true},
		{name: "hmac jwt", header: "Bearer " + hmac, cfg: cfg, wantErr: true},
		{name: "jwt without configured key", header: "Bearer " + valid, cfg: middleware.AuthConfig{}, wantErr: true},
		{name: "api key", header: "ApiKey k2", cfg: cfg, wantType: middleware.AUTH_TYPE_APIKEY},
		{name: "api key scheme is case insensitive", header: "apikey k1", cfg: cfg, wantType: middleware.AUTH_TYPE_APIKEY},
		{name: "wrong api key", header: "ApiKey k3", cfg: cfg, wantErr: true},
		{name: "empty api key", header: "ApiKey ", cfg: cfg, wantErr: true},
		{name: "no api keys configured", header: "ApiKey k1", cfg: middleware.AuthConfig{APIKeys: []string{""}}, wantErr: true},
		{name: "missing header", header: "", cfg: cfg, wantErr: true},
		{name: "no scheme", header: "k1", cfg: cfg, wantErr: true},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz", cfg: cfg, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := middleware.Authenticate(tt.header, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, result.AuthType)
			assert.Equal(t, tt.wantSubject, result.AuthSubject)
		})
	}
}

func TestAuth_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", middleware.Auth(middleware.AuthConfig{APIKeys: []string{"k1"}}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(middleware.AUTH_TYPE_KEY)))
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "ApiKey k1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, middleware.AUTH_TYPE_APIKEY, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
}
