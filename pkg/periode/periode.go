// Package periode résout les clés de période symboliques du front
// (jour/semaine/mois/annee/tout/personnalise) en bornes de dates concrètes.
package periode

import (
	"time"

	"police-system/pkg/constants"
	apperrors "police-system/pkg/errors"
)

type Cle string

const (
	Jour         Cle = "jour"
	Semaine      Cle = "semaine"
	Mois         Cle = "mois"
	Annee        Cle = "annee"
	Tout         Cle = "tout"
	Personnalise Cle = "personnalise"
)

// Plage est une paire de bornes. Une borne zéro signifie « pas de filtre ».
type Plage struct {
	Debut time.Time
	Fin   time.Time
}

// Vide indique qu'aucun filtre de date ne doit être envoyé au backend.
func (p Plage) Vide() bool {
	return p.Debut.IsZero() && p.Fin.IsZero()
}

// Personnalisee porte les bornes saisies par l'utilisateur (format 2006-01-02).
type Personnalisee struct {
	Debut string
	Fin   string
}

// Resolve calcule la plage pour la clé donnée, ancrée sur l'instant courant.
func Resolve(cle Cle, custom *Personnalisee) Plage {
	return ResolveAt(cle, custom, time.Now())
}

// ResolveAt est la variante pure de Resolve : l'horloge est injectée.
// Toutes les branches non-personnalisées et non-« tout » ancrent la fin sur
// le jour calendaire courant à 23:59:59.
func ResolveAt(cle Cle, custom *Personnalisee, now time.Time) Plage {
	switch cle {
	case Jour:
		return Plage{Debut: debutDeJour(now), Fin: finDeJour(now)}
	case Semaine:
		// Semaine commençant le lundi.
		jour := int(now.Weekday())
		if jour == 0 {
			jour = 7
		}
		lundi := now.AddDate(0, 0, -(jour - 1))
		return Plage{Debut: debutDeJour(lundi), Fin: finDeJour(now)}
	case Mois:
		premier := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Plage{Debut: premier, Fin: finDeJour(now)}
	case Annee:
		premier := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Plage{Debut: premier, Fin: finDeJour(now)}
	case Personnalise:
		// Les deux bornes doivent être présentes, sinon aucun filtre n'est
		// appliqué (jamais de plage partielle envoyée au backend).
		if custom == nil || custom.Debut == "" || custom.Fin == "" {
			return Plage{}
		}
		debut, err1 := time.ParseInLocation(constants.FormatDate, custom.Debut, now.Location())
		fin, err2 := time.ParseInLocation(constants.FormatDate, custom.Fin, now.Location())
		if err1 != nil || err2 != nil {
			return Plage{}
		}
		return Plage{Debut: debutDeJour(debut), Fin: finDeJour(fin)}
	default:
		// « tout » et toute clé inconnue : pas de borne.
		return Plage{}
	}
}

// ValidatePersonnalisee rejette les plages inversées avant l'assemblage des
// filtres. Le résolveur lui-même reste permissif.
func ValidatePersonnalisee(custom *Personnalisee) error {
	if custom == nil || custom.Debut == "" || custom.Fin == "" {
		return nil
	}
	debut, err := time.Parse(constants.FormatDate, custom.Debut)
	if err != nil {
		return apperrors.ErrBadRequest
	}
	fin, err := time.Parse(constants.FormatDate, custom.Fin)
	if err != nil {
		return apperrors.ErrBadRequest
	}
	if debut.After(fin) {
		return apperrors.ErrPlageInversee
	}
	return nil
}

func debutDeJour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func finDeJour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
