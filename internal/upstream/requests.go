package upstream

import (
	"context"
	"encoding/json"
	"net/url"
)

// Points d'entrée du serveur central, un couple liste/stats par entité.
// Les corps bruts sont renvoyés tels quels : l'extraction de la forme
// canonique appartient au normaliseur.

func (c *Client) ListerAlertes(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/alertes", q)
}

func (c *Client) StatsAlertes(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/alertes/stats", q)
}

func (c *Client) ListerControles(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/controles", q)
}

func (c *Client) StatsControles(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/controles/stats", q)
}

func (c *Client) ListerInfractions(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/infractions", q)
}

func (c *Client) StatsInfractions(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/infractions/stats", q)
}

func (c *Client) ListerObjetsPerdus(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/objets-perdus", q)
}

func (c *Client) StatsObjetsPerdus(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/objets-perdus/stats", q)
}

func (c *Client) ListerObjetsRetrouves(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/objets-trouves", q)
}

func (c *Client) StatsObjetsRetrouves(ctx context.Context, q url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/api/objets-trouves/stats", q)
}
