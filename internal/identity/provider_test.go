package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "police-system/pkg/errors"
)

func TestResolveCleDirecte(t *testing.T) {
	store := NewMemoireStore()
	store.Set("commissariat_id:s-1", "c-12")

	p := NewCacheProvider(store, zap.NewNop())
	id, err := p.ResolveCommissariatID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "c-12", id)
}

func TestResolveAncienneCle(t *testing.T) {
	store := NewMemoireStore()
	store.Set("commissariatId:s-1", "c-12")

	p := NewCacheProvider(store, zap.NewNop())
	id, err := p.ResolveCommissariatID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "c-12", id)
}

func TestResolveDepuisObjetSession(t *testing.T) {
	store := NewMemoireStore()
	store.Set("session:s-1", `{"utilisateur": {"nom": "A. Diallo"}, "commissariat": {"id": "c-12", "nom": "Commissariat Central"}}`)

	p := NewCacheProvider(store, zap.NewNop())
	id, err := p.ResolveCommissariatID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "c-12", id)
}

func TestResolveIdentifiantNumerique(t *testing.T) {
	// Les sessions anciennes encodent l'identifiant en nombre.
	store := NewMemoireStore()
	store.Set("session:s-1", `{"commissariat": {"id": 12}}`)

	p := NewCacheProvider(store, zap.NewNop())
	id, err := p.ResolveCommissariatID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "12", id)
}

func TestResolvePrioriteDeLaCleDirecte(t *testing.T) {
	store := NewMemoireStore()
	store.Set("commissariat_id:s-1", "c-direct")
	store.Set("commissariatId:s-1", "c-ancien")
	store.Set("session:s-1", `{"commissariat": {"id": "c-session"}}`)

	p := NewCacheProvider(store, zap.NewNop())
	id, err := p.ResolveCommissariatID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "c-direct", id)
}

func TestResolveSessionMalformeeToleree(t *testing.T) {
	cas := map[string]string{
		"json illisible":    `{pas du json`,
		"sans commissariat": `{"utilisateur": {}}`,
		"id absent":         `{"commissariat": {"nom": "Central"}}`,
	}
	for nom, valeur := range cas {
		store := NewMemoireStore()
		store.Set("session:s-1", valeur)

		p := NewCacheProvider(store, zap.NewNop())
		_, err := p.ResolveCommissariatID(context.Background(), "s-1")
		assert.ErrorIs(t, err, apperrors.ErrCommissariatIntrouvable, nom)
	}
}

func TestResolveAucuneDonnee(t *testing.T) {
	p := NewCacheProvider(NewMemoireStore(), zap.NewNop())

	_, err := p.ResolveCommissariatID(context.Background(), "s-1")
	assert.ErrorIs(t, err, apperrors.ErrCommissariatIntrouvable)

	_, err = p.ResolveCommissariatID(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrCommissariatIntrouvable)
}
