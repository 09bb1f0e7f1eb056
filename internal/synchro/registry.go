package synchro

import (
	"sync"
	"time"
)

// Fermable est le seul contrat que le registre exige d'un contrôleur.
type Fermable interface {
	Close()
}

type entree struct {
	ctrl Fermable
	vu   time.Time
}

// Registry conserve un contrôleur par couple (entité, commissariat) et
// ferme ceux restés inactifs au-delà de la rétention. Un contrôleur fermé
// est reconstruit au prochain accès.
type Registry struct {
	mu        sync.Mutex
	entrees   map[string]*entree
	retention time.Duration
	stop      chan struct{}
	fermeOnce sync.Once
}

func NewRegistry(retention time.Duration) *Registry {
	r := &Registry{
		entrees:   make(map[string]*entree),
		retention: retention,
		stop:      make(chan struct{}),
	}
	go r.nettoyer()
	return r
}

// Obtenir renvoie le contrôleur de la clé, en le construisant au besoin.
func (r *Registry) Obtenir(cle string, construire func() Fermable) Fermable {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entrees[cle]; ok {
		e.vu = time.Now()
		return e.ctrl
	}
	ctrl := construire()
	r.entrees[cle] = &entree{ctrl: ctrl, vu: time.Now()}
	return ctrl
}

// nettoyer ferme périodiquement les contrôleurs inactifs.
func (r *Registry) nettoyer() {
	intervalle := r.retention / 2
	if intervalle < time.Minute {
		intervalle = time.Minute
	}
	ticker := time.NewTicker(intervalle)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			limite := time.Now().Add(-r.retention)
			r.mu.Lock()
			for cle, e := range r.entrees {
				if e.vu.Before(limite) {
					e.ctrl.Close()
					delete(r.entrees, cle)
				}
			}
			r.mu.Unlock()
		}
	}
}

// Close ferme tous les contrôleurs et arrête le nettoyage.
func (r *Registry) Close() {
	r.fermeOnce.Do(func() {
		close(r.stop)
		r.mu.Lock()
		defer r.mu.Unlock()
		for cle, e := range r.entrees {
			e.ctrl.Close()
			delete(r.entrees, cle)
		}
	})
}
