package entities

import "time"

// Alerte est le modèle de vue d'une alerte de sécurité tel que renvoyé par
// le serveur central. La passerelle ne possède pas ces données : elle les
// relaie et les agrège.
type Alerte struct {
	ID           uint64     `json:"id"`
	Titre        string     `json:"titre"`
	Description  string     `json:"description"`
	Type         string     `json:"type"`
	Niveau       string     `json:"niveau"`
	Statut       string     `json:"statut"`
	Localisation string     `json:"localisation"`
	Commissariat string     `json:"commissariat_id"`
	CreatedAt    *time.Time `json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}
