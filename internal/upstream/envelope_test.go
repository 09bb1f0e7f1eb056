package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

var clesAlertes = []string{"alertes"}

func TestNormalizeEnvelopeCleNommeeAvecPagination(t *testing.T) {
	raw := json.RawMessage(`{"data": {"alertes": [{"id": 1}, {"id": 2}], "pagination": {"total": 42, "page": 2, "limit": 50}}}`)

	env := NormalizeEnvelope(raw, clesAlertes, 20)

	assert.Len(t, env.Items, 2)
	assert.Equal(t, uint64(42), env.Pagination.TotalCount)
	assert.Equal(t, 2, env.Pagination.Page)
	// La limite du backend est ignorée, celle du contrôleur fait foi et
	// total_pages est recalculé avec elle.
	assert.Equal(t, 20, env.Pagination.Limit)
	assert.Equal(t, 3, env.Pagination.TotalPages)
}

func TestNormalizeEnvelopeChampsFreres(t *testing.T) {
	raw := json.RawMessage(`{"data": {"objets": [{"id": 7}], "total": 21, "page": 3, "limit": 7}}`)

	env := NormalizeEnvelope(raw, []string{"objets"}, 20)

	assert.Len(t, env.Items, 1)
	assert.Equal(t, uint64(21), env.Pagination.TotalCount)
	assert.Equal(t, 3, env.Pagination.Page)
	assert.Equal(t, 2, env.Pagination.TotalPages)
}

func TestNormalizeEnvelopeTableauNu(t *testing.T) {
	raw := json.RawMessage(`[{"id": 1}, {"id": 2}, {"id": 3}]`)

	env := NormalizeEnvelope(raw, clesAlertes, 20)

	assert.Len(t, env.Items, 3)
	assert.Equal(t, uint64(3), env.Pagination.TotalCount)
	assert.Equal(t, 1, env.Pagination.Page)
	assert.Equal(t, 1, env.Pagination.TotalPages)
}

func TestNormalizeEnvelopeCleGenerique(t *testing.T) {
	raw := json.RawMessage(`{"data": {"data": [{"id": 9}], "pagination": {"total_count": 100, "page": 1, "limit": 20}}}`)

	env := NormalizeEnvelope(raw, clesAlertes, 20)

	assert.Len(t, env.Items, 1)
	assert.Equal(t, uint64(100), env.Pagination.TotalCount)
	assert.Equal(t, 5, env.Pagination.TotalPages)
}

func TestNormalizeEnvelopeDataListeDirecte(t *testing.T) {
	raw := json.RawMessage(`{"data": [{"id": 4}], "total": 1, "page": 1, "limit": 20}`)

	env := NormalizeEnvelope(raw, clesAlertes, 20)

	assert.Len(t, env.Items, 1)
	assert.Equal(t, uint64(1), env.Pagination.TotalCount)
}

func TestNormalizeEnvelopeSansPaginationSynthetise(t *testing.T) {
	raw := json.RawMessage(`{"data": {"alertes": [{"id": 1}, {"id": 2}]}}`)

	env := NormalizeEnvelope(raw, clesAlertes, 20)

	assert.Len(t, env.Items, 2)
	assert.Equal(t, uint64(2), env.Pagination.TotalCount)
	assert.Equal(t, 1, env.Pagination.Page)
}

func TestNormalizeEnvelopeFormeInconnue(t *testing.T) {
	for _, raw := range []string{``, `null`, `"texte"`, `{"autre": 1}`, `{pas du json`} {
		env := NormalizeEnvelope(json.RawMessage(raw), clesAlertes, 20)
		assert.NotNil(t, env.Items, raw)
		assert.Empty(t, env.Items, raw)
		assert.Equal(t, uint64(0), env.Pagination.TotalCount, raw)
	}
}

func TestUnwrapData(t *testing.T) {
	enveloppe := json.RawMessage(`{"data": {"total": 5}}`)
	assert.JSONEq(t, `{"total": 5}`, string(UnwrapData(enveloppe)))

	nu := json.RawMessage(`{"total": 5}`)
	assert.JSONEq(t, `{"total": 5}`, string(UnwrapData(nu)))

	// "data" non-objet : laissé tel quel.
	liste := json.RawMessage(`{"data": [1, 2]}`)
	assert.Equal(t, string(liste), string(UnwrapData(liste)))
}
