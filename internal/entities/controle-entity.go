package entities

import "time"

// Controle : contrôle routier effectué par une patrouille.
type Controle struct {
	ID              uint64     `json:"id"`
	Lieu            string     `json:"lieu"`
	TypeControle    string     `json:"type_controle"`
	Issue           string     `json:"issue"`
	Agent           string     `json:"agent"`
	Immatriculation string     `json:"immatriculation"`
	Commissariat    string     `json:"commissariat_id"`
	CreatedAt       *time.Time `json:"created_at"`
}
