package entities

import "time"

// Infraction : procès-verbal (PV) dressé à l'issue d'un contrôle.
type Infraction struct {
	ID              uint64     `json:"id"`
	NumeroPV        string     `json:"numero_pv"`
	TypeInfraction  string     `json:"type_infraction"`
	Statut          string     `json:"statut"`
	Montant         float64    `json:"montant"`
	Immatriculation string     `json:"immatriculation"`
	Contrevenant    string     `json:"contrevenant"`
	Commissariat    string     `json:"commissariat_id"`
	CreatedAt       *time.Time `json:"created_at"`
	DatePaiement    *time.Time `json:"date_paiement,omitempty"`
}
