package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"police-system/internal/synchro"
	"police-system/internal/upstream"
	"police-system/pkg/constants"
	apperrors "police-system/pkg/errors"
	"police-system/pkg/periode"
)

func TestExporterAlertes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/alertes", r.URL.Path)
		assert.Equal(t, "c-12", r.URL.Query().Get("commissariat_id"))
		// L'export récupère tout d'un coup, pas la page de l'écran.
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, strconv.Itoa(constants.LimiteExport), r.URL.Query().Get("limit"))

		w.Write([]byte(`{"data": {"alertes": [
			{"id": 1, "titre": "Vol signalé", "type": "vol", "niveau": "haute", "statut": "active", "localisation": "Marché central"},
			{"id": 2, "titre": "Tapage", "type": "nuisance", "niveau": "basse", "statut": "resolue", "localisation": "Quartier nord"}
		]}}`))
	}))
	defer srv.Close()

	s := NewReportService(upstream.NewClient(srv.URL, 2*time.Second, zap.NewNop()), zap.NewNop())

	rapport, err := s.Exporter(context.Background(), "alertes", "c-12", synchro.Params{Periode: periode.Tout, Page: 4})
	require.NoError(t, err)
	assert.Equal(t, "Alertes", rapport.Nom)
	assert.Len(t, rapport.EnTetes, 8)
	require.Len(t, rapport.Lignes, 2)
	assert.Equal(t, "Vol signalé", rapport.Lignes[0][1])
}

func TestExporterEntiteInconnue(t *testing.T) {
	s := NewReportService(upstream.NewClient("http://127.0.0.1:1", time.Second, zap.NewNop()), zap.NewNop())

	_, err := s.Exporter(context.Background(), "permis", "c-12", synchro.Params{Periode: periode.Tout})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestExporterPropageLErreurDistante(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewReportService(upstream.NewClient(srv.URL, 2*time.Second, zap.NewNop()), zap.NewNop())

	_, err := s.Exporter(context.Background(), "infractions", "c-12", synchro.Params{Periode: periode.Tout})
	assert.ErrorIs(t, err, apperrors.ErrAccesRefuse)
}
