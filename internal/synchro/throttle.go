// Package synchro est le cœur de la passerelle : des contrôleurs de
// synchronisation par entité qui cadencent, assemblent, exécutent et
// réconcilient les requêtes vers le serveur central, puis publient des
// instantanés cohérents aux écrans.
package synchro

import (
	"errors"
	"sync"
	"time"

	"police-system/internal/upstream"
)

// Throttler garantit un espacement minimal entre deux exécutions et au plus
// une exécution en vol à la fois. Un déclenchement reçu pendant qu'un timer
// est déjà armé remplace le timer (seul le déclenchement le plus récent
// survit à l'attente) : les changements de filtre rapides ne produisent
// qu'une seule requête.
type Throttler struct {
	espacement time.Duration

	mu        sync.Mutex
	fn        func() error
	timer     *time.Timer
	derniere  time.Time
	enVol     bool
	enAttente bool
	retente   bool
	ferme     bool
}

func NewThrottler(espacement time.Duration) *Throttler {
	// L'horloge d'espacement démarre à la création : le tout premier
	// déclenchement est lui aussi cadencé, pas exécuté à l'instant zéro.
	return &Throttler{espacement: espacement, derniere: time.Now()}
}

// Schedule enregistre fn comme prochain travail et l'exécute dès que
// l'espacement le permet. Si l'espacement est déjà écoulé, l'exécution part
// immédiatement (sans délai artificiel). Un appel réentrant pendant une
// exécution est différé, jamais exécuté en parallèle.
func (t *Throttler) Schedule(fn func() error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ferme {
		return
	}
	t.fn = fn
	// Un nouveau déclenchement porte un budget de réessai 429 neuf, même
	// quand il remplace une nouvelle tentative en attente.
	t.retente = false
	if t.enVol {
		t.enAttente = true
		return
	}
	t.armer(t.espacement - time.Since(t.derniere))
}

// armer (re)programme l'exécution. mu doit être tenu.
func (t *Throttler) armer(attente time.Duration) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if attente <= 0 {
		attente = 0
	}
	t.timer = time.AfterFunc(attente, t.executer)
}

func (t *Throttler) executer() {
	t.mu.Lock()
	if t.ferme || t.enVol || t.fn == nil {
		t.mu.Unlock()
		return
	}
	fn := t.fn
	t.enVol = true
	t.enAttente = false
	t.timer = nil
	t.mu.Unlock()

	err := fn()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.enVol = false
	t.derniere = time.Now()
	if t.ferme {
		return
	}

	// HTTP 429 : une seule nouvelle tentative, après le délai annoncé par
	// le serveur.
	var limite *upstream.RateLimitError
	if errors.As(err, &limite) && !t.retente {
		t.retente = true
		t.armer(limite.RetryAfter)
		return
	}
	t.retente = false

	if t.enAttente {
		t.enAttente = false
		t.armer(t.espacement)
	}
}

// Close annule tout travail différé. Aucune exécution ne démarre après
// Close ; une exécution déjà en vol se termine sans replanification.
func (t *Throttler) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ferme = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
