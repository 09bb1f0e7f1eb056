package synchro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "police-system/pkg/errors"
	"police-system/pkg/types"

	"police-system/internal/upstream"
)

// Config paramètre un contrôleur générique pour une entité donnée. Les
// quatre écrans (alertes, tableau de bord, objets perdus, objets retrouvés)
// ne diffèrent que par ces fonctions : un seul automate, des adaptateurs
// minces par entité.
type Config[T any, S any] struct {
	// Entite nomme le contrôleur dans les journaux.
	Entite string

	// Espacement minimal entre deux cycles (plus large pour le dashboard).
	Espacement time.Duration
	// Limite de pagination, fixe pour toute la vie du contrôleur.
	Limite int
	// Timeout d'un cycle complet (les appels parallèles inclus).
	Timeout time.Duration

	// Liste et Stats sont les deux appels parallèles d'un cycle. L'échec de
	// Stats est toléré (bascule sur le recalcul local) ; l'échec de Liste
	// fait échouer le cycle.
	Liste func(ctx context.Context, q url.Values) (json.RawMessage, error)
	Stats func(ctx context.Context, q url.Values) (json.RawMessage, error)

	// Graphique, optionnel (tableau de bord) : une récupération large pour
	// les courbes, exécutée seulement en page 1 pour que les changements de
	// page ne redéclenchent jamais ce travail plus lourd.
	Graphique func(ctx context.Context, q url.Values) (json.RawMessage, error)

	// ClesItems : clés candidates de la liste dans l'enveloppe backend.
	ClesItems []string

	// Reconcilier produit l'agrégat : statistiques serveur si exploitables,
	// sinon recalcul depuis items avec totalFallback comme dénominateur.
	// estimees vaut true sur le chemin de recalcul.
	Reconcilier func(stats json.RawMessage, items []T, totalFallback int) (agregat S, estimees bool)

	// Horloge, injectable pour les tests. time.Now par défaut.
	Horloge func() time.Time

	Logger *zap.Logger
}

// Snapshot est l'état publié aux écrans. Il est remplacé d'un bloc à chaque
// cycle terminé : jamais de résultat partiel (liste sans stats ou l'inverse).
type Snapshot[T any, S any] struct {
	Items          []T              `json:"items"`
	Graphique      []T              `json:"graphique,omitempty"`
	Stats          S                `json:"stats"`
	StatsEstimees  bool             `json:"stats_estimees"`
	Pagination     types.Pagination `json:"pagination"`
	Loading        bool             `json:"loading"`
	Erreur         string           `json:"erreur,omitempty"`
	CommissariatID string           `json:"commissariat_id"`
}

// Controller est l'automate de synchronisation d'une entité pour un
// commissariat : idle → loading → succès | erreur, l'erreur n'étant jamais
// terminale. L'état précédent complet reste visible pendant un chargement.
type Controller[T any, S any] struct {
	cfg            Config[T, S]
	commissariatID string
	throttler      *Throttler

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	params   Params
	snap     Snapshot[T, S]
	demandee uint64 // génération de la dernière demande
	servie   uint64 // génération du dernier commit
	retentee uint64 // génération dont la nouvelle tentative 429 est déjà promise
	commitCh chan struct{}
	ferme    bool
}

func NewController[T any, S any](cfg Config[T, S], commissariatID string) *Controller[T, S] {
	if cfg.Limite <= 0 {
		cfg.Limite = 20
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.Horloge == nil {
		cfg.Horloge = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	cfg.Logger = cfg.Logger.Named(cfg.Entite)

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller[T, S]{
		cfg:            cfg,
		commissariatID: commissariatID,
		throttler:      NewThrottler(cfg.Espacement),
		ctx:            ctx,
		cancel:         cancel,
		commitCh:       make(chan struct{}),
	}
	c.snap = Snapshot[T, S]{
		Items:          []T{},
		Loading:        true,
		Pagination:     types.NewPagination(0, 1, cfg.Limite),
		CommissariatID: commissariatID,
	}
	c.params = Params{Periode: "tout", Page: 1}
	return c
}

// Snapshot renvoie l'état courant (copie, lecture seule pour l'appelant).
func (c *Controller[T, S]) Snapshot() Snapshot[T, S] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Appliquer enregistre de nouveaux paramètres et programme un cycle. La
// génération renvoyée identifie la demande (voir AwaitRefresh).
func (c *Controller[T, S]) Appliquer(p Params) uint64 {
	c.mu.Lock()
	c.params = p
	c.demandee++
	cible := c.demandee
	c.mu.Unlock()
	c.throttler.Schedule(c.cycle)
	return cible
}

// Refetch relance un cycle avec les paramètres courants. C'est le
// déclencheur explicite des écrans (bouton « Rechercher ») : il force un
// nouveau cycle même quand aucune valeur n'a changé.
func (c *Controller[T, S]) Refetch() uint64 {
	c.mu.Lock()
	c.demandee++
	cible := c.demandee
	c.mu.Unlock()
	c.throttler.Schedule(c.cycle)
	return cible
}

// AwaitRefresh applique les paramètres, programme un cycle et attend que la
// demande soit servie (ou que ctx expire, auquel cas l'état courant est
// renvoyé avec Loading à vrai).
func (c *Controller[T, S]) AwaitRefresh(ctx context.Context, p Params) Snapshot[T, S] {
	cible := c.Appliquer(p)

	for {
		c.mu.Lock()
		if c.servie >= cible || c.ferme {
			snap := c.snap
			c.mu.Unlock()
			return snap
		}
		attente := c.commitCh
		c.mu.Unlock()

		select {
		case <-attente:
		case <-ctx.Done():
			return c.Snapshot()
		}
	}
}

// Close arrête le contrôleur : timers annulés, plus aucun commit ensuite.
func (c *Controller[T, S]) Close() {
	c.throttler.Close()
	c.cancel()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ferme {
		return
	}
	c.ferme = true
	close(c.commitCh)
}

// cycle est un cycle complet de synchronisation : assemblage des filtres,
// appels parallèles liste + stats (+ graphique en page 1), normalisation,
// réconciliation, commit atomique. Exécuté uniquement via le throttler.
func (c *Controller[T, S]) cycle() error {
	c.mu.Lock()
	if c.ferme {
		c.mu.Unlock()
		return nil
	}
	generation := c.demandee
	p := c.params
	c.snap.Loading = true
	c.snap.Erreur = ""
	c.mu.Unlock()

	filtres := AssemblerFiltres(p, c.commissariatID, c.cfg.Limite, c.cfg.Horloge())
	ctx, cancel := context.WithTimeout(c.ctx, c.cfg.Timeout)
	defer cancel()

	var rawListe, rawStats, rawGraphique json.RawMessage
	avecGraphique := c.cfg.Graphique != nil && p.Page <= 1

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := c.cfg.Liste(gctx, filtres.Liste)
		if err != nil {
			return err
		}
		rawListe = raw
		return nil
	})
	g.Go(func() error {
		// L'échec des stats ne doit jamais faire échouer la moitié liste.
		raw, err := c.cfg.Stats(gctx, filtres.Stats)
		if err != nil {
			c.cfg.Logger.Warn("stats indisponibles, recalcul local", zap.Error(err))
			return nil
		}
		rawStats = raw
		return nil
	})
	if avecGraphique {
		g.Go(func() error {
			raw, err := c.cfg.Graphique(gctx, filtres.Stats)
			if err != nil {
				c.cfg.Logger.Warn("données graphique indisponibles", zap.Error(err))
				return nil
			}
			rawGraphique = raw
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return c.commitErreur(generation, err)
	}

	enveloppe := upstream.NormalizeEnvelope(rawListe, c.cfg.ClesItems, c.cfg.Limite)
	items := DecoderItems[T](enveloppe.Items, c.cfg.Logger)
	totalFallback := DenominateurFallback(len(items), int(enveloppe.Pagination.TotalCount))
	agregat, estimees := c.cfg.Reconcilier(rawStats, items, totalFallback)

	var graphique []T
	if avecGraphique && len(rawGraphique) > 0 {
		envGraph := upstream.NormalizeEnvelope(rawGraphique, c.cfg.ClesItems, c.cfg.Limite)
		graphique = DecoderItems[T](envGraph.Items, c.cfg.Logger)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ferme || generation != c.demandee {
		// Réponse périmée : une demande plus récente est en route, son
		// cycle commitera. Ne jamais écraser avec un état obsolète.
		return nil
	}
	if graphique == nil {
		// Pages > 1 : la courbe de la page 1 reste affichée.
		graphique = c.snap.Graphique
	}
	c.snap = Snapshot[T, S]{
		Items:          items,
		Graphique:      graphique,
		Stats:          agregat,
		StatsEstimees:  estimees,
		Pagination:     enveloppe.Pagination,
		Loading:        false,
		CommissariatID: c.commissariatID,
	}
	c.commit(generation)
	return nil
}

// commitErreur publie un état d'erreur rendable : les données précédentes
// restent visibles, l'erreur n'est pas terminale.
func (c *Controller[T, S]) commitErreur(generation uint64, err error) error {
	var limite *upstream.RateLimitError
	estLimite := errors.As(err, &limite)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ferme || generation != c.demandee {
		return nil
	}

	// Un 429 n'est transitoire qu'une fois par génération : le throttler ne
	// replanifie qu'une seule tentative, promettre au-delà laisserait l'écran
	// en chargement pour toujours.
	transitoire := estLimite && c.retentee != generation
	if transitoire {
		c.retentee = generation
		c.snap.Erreur = fmt.Sprintf("Trop de requêtes. Nouvelle tentative dans %d secondes...",
			int(limite.RetryAfter.Seconds()))
		c.snap.Loading = true
		c.commit(generation)
		// Renvoyé au throttler, qui replanifie une seule tentative.
		return err
	}

	message := messageUtilisateur(err)
	if estLimite {
		// La tentative replanifiée a elle aussi été limitée : état final
		// rendable, sans promesse de réessai.
		message = "Trop de requêtes. Veuillez réessayer plus tard."
	} else {
		c.cfg.Logger.Error("échec du cycle de synchronisation", zap.Error(err))
	}
	c.snap.Erreur = message
	c.snap.Loading = false
	c.commit(generation)
	return nil
}

// commit enregistre la génération servie et réveille les attentes. mu tenu.
func (c *Controller[T, S]) commit(generation uint64) {
	c.servie = generation
	close(c.commitCh)
	c.commitCh = make(chan struct{})
}

// DecoderItems désérialise chaque élément ; un élément malformé est ignoré
// et journalisé, jamais propagé.
func DecoderItems[T any](bruts []json.RawMessage, logger *zap.Logger) []T {
	items := make([]T, 0, len(bruts))
	for _, brut := range bruts {
		var item T
		if err := json.Unmarshal(brut, &item); err != nil {
			logger.Warn("élément illisible ignoré", zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items
}

// messageUtilisateur extrait le message destiné à l'utilisateur selon la
// taxonomie : sentinelles et HttpError portent déjà leur formulation.
func messageUtilisateur(err error) string {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	if _, ok := apperrors.ErrorList[err]; ok {
		return err.Error()
	}
	return apperrors.ErrServeurDistant.Error()
}
