// pkg/constants/constants.go
package constants

import "time"

//============== FILTRES ==============

// Valeurs « sentinelles » affichées par le front pour signifier « aucun filtre ».
// Elles ne doivent jamais être transmises telles quelles au backend.
const (
	TousLesStatuts = "Tous les statuts"
	TousLesTypes   = "Tous les types"
	TousLesNiveaux = "Tous les niveaux"
)

//============== PAGINATION ==============

// La limite est fixée par le contrôleur et ne doit jamais être remplacée
// par une valeur renvoyée par le backend.
const (
	LimiteParPage = 20
	LimiteExport  = 100000
)

//============== CADENCE DES REQUÊTES ==============

// Espacement minimal entre deux requêtes d'un même contrôleur.
// Le tableau de bord effectue des agrégations plus lourdes côté backend,
// d'où un espacement plus large.
const (
	EspacementListe     = 500 * time.Millisecond
	EspacementDashboard = 1000 * time.Millisecond

	// Attente par défaut après un HTTP 429 sans en-tête retry-after.
	AttenteParDefaut429 = 5 * time.Second
)

//============== DATES ==============

// Les dates envoyées au backend portent toujours une heure explicite
// (00:00:00 / 23:59:59) pour éviter les décalages d'un jour.
const (
	FormatDateHeure = "2006-01-02T15:04:05"
	FormatDate      = "2006-01-02"
)

//============== CACHE KEYS ==============

// Clés de la couche session (Redis). Trois niveaux de résolution du
// commissariat, du plus récent au plus ancien.
const (
	// Clé directe. Format: commissariat_id:<sessionID> -> id
	CacheKeyCommissariatID = "commissariat_id:%s"

	// Ancienne clé, conservée pour les sessions ouvertes avant la migration.
	// Format: commissariatId:<sessionID> -> id
	CacheKeyCommissariatIDLegacy = "commissariatId:%s"

	// Objet session complet (JSON) dont on extrait commissariat.id.
	// Format: session:<sessionID> -> {"utilisateur":..., "commissariat":{"id":...}}
	CacheKeySession = "session:%s"
)

//============== STATUTS MÉTIER ==============

// Statuts des alertes de sécurité.
const (
	AlerteActive   = "active"
	AlerteResolue  = "resolue"
	AlerteArchivee = "archivee"
)

// Statuts des objets perdus.
const (
	ObjetEnRecherche = "en_recherche"
	ObjetRetrouve    = "retrouve"
	ObjetCloture     = "cloture"
)

// Statuts des objets retrouvés (en attente de restitution).
const (
	ObjetEnAttente = "en_attente"
	ObjetRestitue  = "restitue"
	ObjetTransfere = "transfere"
)

// Issue d'un contrôle routier.
const (
	ControleConforme       = "conforme"
	ControleAvecInfraction = "avec_infraction"
)

// Statuts de paiement d'une infraction (PV).
const (
	InfractionPayee     = "payee"
	InfractionContestee = "contestee"
	InfractionImpayee   = "impayee"
)
