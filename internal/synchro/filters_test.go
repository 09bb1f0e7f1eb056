package synchro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"police-system/pkg/constants"
	"police-system/pkg/periode"
)

var maintenant = time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestAssemblerFiltresPorteeCommune(t *testing.T) {
	f := AssemblerFiltres(Params{Periode: periode.Jour, Page: 2}, "c-12", 20, maintenant)

	// Le périmètre (commissariat + plage) est identique des deux côtés.
	assert.Equal(t, "c-12", f.Liste.Get("commissariat_id"))
	assert.Equal(t, "c-12", f.Stats.Get("commissariat_id"))
	assert.Equal(t, "2023-03-15T00:00:00", f.Liste.Get("date_debut"))
	assert.Equal(t, "2023-03-15T23:59:59", f.Liste.Get("date_fin"))
	assert.Equal(t, f.Liste.Get("date_debut"), f.Stats.Get("date_debut"))
	assert.Equal(t, f.Liste.Get("date_fin"), f.Stats.Get("date_fin"))

	// La pagination et la recherche restent côté liste.
	assert.Equal(t, "2", f.Liste.Get("page"))
	assert.Equal(t, "20", f.Liste.Get("limit"))
	assert.Empty(t, f.Stats.Get("page"))
	assert.Empty(t, f.Stats.Get("limit"))
	assert.Equal(t, "jour", f.Stats.Get("periode"))
}

func TestAssemblerFiltresSentinellesIgnorees(t *testing.T) {
	f := AssemblerFiltres(Params{
		Periode: periode.Tout,
		Statut:  constants.TousLesStatuts,
		Type:    constants.TousLesTypes,
	}, "c-12", 20, maintenant)

	_, statutPresent := f.Liste["statut"]
	_, typePresent := f.Liste["type"]
	assert.False(t, statutPresent)
	assert.False(t, typePresent)
}

func TestAssemblerFiltresValeursReelles(t *testing.T) {
	f := AssemblerFiltres(Params{
		Periode:   periode.Tout,
		Statut:    constants.AlerteActive,
		Type:      "vol",
		Recherche: "  marché central  ",
	}, "c-12", 20, maintenant)

	assert.Equal(t, constants.AlerteActive, f.Liste.Get("statut"))
	assert.Equal(t, "vol", f.Liste.Get("type"))
	assert.Equal(t, "marché central", f.Liste.Get("recherche"))
}

func TestAssemblerFiltresPeriodeToutSansDates(t *testing.T) {
	f := AssemblerFiltres(Params{Periode: periode.Tout}, "c-12", 20, maintenant)

	_, debutPresent := f.Liste["date_debut"]
	_, finPresent := f.Liste["date_fin"]
	assert.False(t, debutPresent)
	assert.False(t, finPresent)
}

func TestAssemblerFiltresPageInvalideRameneeA1(t *testing.T) {
	f := AssemblerFiltres(Params{Periode: periode.Tout, Page: 0}, "c-12", 20, maintenant)
	assert.Equal(t, "1", f.Liste.Get("page"))
}

func TestAssemblerFiltresPersonnalisee(t *testing.T) {
	f := AssemblerFiltres(Params{
		Periode:       periode.Personnalise,
		Personnalisee: &periode.Personnalisee{Debut: "2023-01-10", Fin: "2023-02-20"},
	}, "c-12", 20, maintenant)

	assert.Equal(t, "2023-01-10T00:00:00", f.Liste.Get("date_debut"))
	assert.Equal(t, "2023-02-20T23:59:59", f.Liste.Get("date_fin"))
}
