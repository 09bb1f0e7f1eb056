package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "police-system/pkg/errors"
)

func clientDeTest(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestGetRenvoieLeCorpsBrut(t *testing.T) {
	c := clientDeTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/alertes", r.URL.Path)
		assert.Equal(t, "c-12", r.URL.Query().Get("commissariat_id"))
		w.Write([]byte(`{"data": {"alertes": []}}`))
	})

	q := url.Values{}
	q.Set("commissariat_id", "c-12")
	body, err := c.ListerAlertes(context.Background(), q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": {"alertes": []}}`, string(body))
}

func TestGetTraduitLesStatuts(t *testing.T) {
	cas := []struct {
		statut int
		attendu error
	}{
		{http.StatusUnauthorized, apperrors.ErrNonAutorise},
		{http.StatusForbidden, apperrors.ErrAccesRefuse},
		{http.StatusNotFound, apperrors.ErrIntrouvable},
	}
	for _, tc := range cas {
		c := clientDeTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.statut)
		})
		_, err := c.ListerAlertes(context.Background(), nil)
		assert.ErrorIs(t, err, tc.attendu)
	}
}

func TestGet429PorteLeRetryAfter(t *testing.T) {
	c := clientDeTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.ListerAlertes(context.Background(), nil)
	var limite *RateLimitError
	require.True(t, errors.As(err, &limite))
	assert.Equal(t, 7*time.Second, limite.RetryAfter)
}

func TestGet429SansEnTeteUtiliseLeDefaut(t *testing.T) {
	c := clientDeTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.ListerAlertes(context.Background(), nil)
	var limite *RateLimitError
	require.True(t, errors.As(err, &limite))
	assert.Equal(t, 5*time.Second, limite.RetryAfter)
}

func TestGet500ReprendLeMessageServeur(t *testing.T) {
	c := clientDeTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "maintenance en cours"}`))
	})

	_, err := c.ListerAlertes(context.Background(), nil)
	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Equal(t, "maintenance en cours", httpErr.Message)
}

func TestGetErreurReseau(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second, zap.NewNop())

	_, err := c.ListerAlertes(context.Background(), nil)
	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Equal(t, apperrors.ErrServeurDistant.Error(), httpErr.Message)
}
