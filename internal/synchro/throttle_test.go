package synchro

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"police-system/internal/upstream"
)

func TestThrottlerCoalesceLesDeclenchementsRapides(t *testing.T) {
	th := NewThrottler(100 * time.Millisecond)
	defer th.Close()

	var executions int64
	fn := func() error {
		atomic.AddInt64(&executions, 1)
		return nil
	}

	// Deux déclenchements pendant la fenêtre d'espacement : une seule
	// exécution, à l'échéance de la fenêtre, jamais à l'instant du second
	// déclenchement.
	th.Schedule(fn)
	time.Sleep(30 * time.Millisecond)
	th.Schedule(fn)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&executions), "rien avant l'échéance")

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&executions), "une seule exécution coalescée")
}

func TestThrottlerImmediatQuandEspacementEcoule(t *testing.T) {
	th := NewThrottler(30 * time.Millisecond)
	defer th.Close()

	var executions int64
	fn := func() error {
		atomic.AddInt64(&executions, 1)
		return nil
	}

	// Espacement déjà écoulé depuis la création : exécution sans délai
	// artificiel.
	time.Sleep(60 * time.Millisecond)
	th.Schedule(fn)
	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&executions))
}

func TestThrottlerUneSeuleRetentativeSur429(t *testing.T) {
	th := NewThrottler(10 * time.Millisecond)
	defer th.Close()

	var executions int64
	fn := func() error {
		atomic.AddInt64(&executions, 1)
		return &upstream.RateLimitError{RetryAfter: 30 * time.Millisecond}
	}

	th.Schedule(fn)
	time.Sleep(200 * time.Millisecond)
	// Exécution initiale + une seule nouvelle tentative, même si elle échoue
	// encore en 429.
	assert.Equal(t, int64(2), atomic.LoadInt64(&executions))
}

func TestThrottlerNouveauDeclenchementRouvreLeBudget429(t *testing.T) {
	th := NewThrottler(10 * time.Millisecond)
	defer th.Close()

	var executions int64
	fn := func() error {
		atomic.AddInt64(&executions, 1)
		return &upstream.RateLimitError{RetryAfter: 60 * time.Millisecond}
	}

	th.Schedule(fn)
	time.Sleep(30 * time.Millisecond) // première exécution faite, tentative armée

	// Un nouveau déclenchement remplace la tentative en attente et rouvre le
	// budget : l'exécution remplaçante a droit à sa propre nouvelle tentative.
	th.Schedule(fn)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int64(3), atomic.LoadInt64(&executions))
}

func TestThrottlerDiffereLeTravailRecuEnVol(t *testing.T) {
	th := NewThrottler(20 * time.Millisecond)
	defer th.Close()

	var executions int64
	bloque := make(chan struct{})
	lente := func() error {
		atomic.AddInt64(&executions, 1)
		<-bloque
		return nil
	}
	rapide := func() error {
		atomic.AddInt64(&executions, 1)
		return nil
	}

	th.Schedule(lente)
	time.Sleep(40 * time.Millisecond) // la lente est partie et bloque
	th.Schedule(rapide)               // reçu pendant le vol : différé, jamais parallèle
	assert.Equal(t, int64(1), atomic.LoadInt64(&executions))

	close(bloque)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int64(2), atomic.LoadInt64(&executions))
}

func TestThrottlerCloseAnnuleLeTravailDiffere(t *testing.T) {
	th := NewThrottler(50 * time.Millisecond)

	var executions int64
	fn := func() error {
		atomic.AddInt64(&executions, 1)
		return nil
	}

	th.Schedule(fn) // timer armé pour dans ~50ms
	th.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&executions))
}
