// Package upstream encapsule l'API REST du serveur central. C'est la seule
// frontière réseau de la passerelle : toutes les erreurs HTTP y sont
// traduites en erreurs typées avec un message utilisateur.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"police-system/pkg/constants"
	apperrors "police-system/pkg/errors"
)

// Client est le façade HTTP vers le serveur central.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
		baseURL:    baseURL,
		logger:     logger.Named("upstream"),
	}
}

// RateLimitError signale un HTTP 429. Le throttler replanifie une seule
// nouvelle tentative après RetryAfter.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("trop de requêtes, nouvelle tentative dans %d secondes", int(e.RetryAfter.Seconds()))
}

// get exécute un GET et renvoie le corps brut. La forme de l'enveloppe est
// volontairement laissée au normaliseur (voir envelope.go).
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("création de la requête GET '%s': %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadGateway,
			apperrors.ErrServeurDistant.Error(), err,
			map[string]interface{}{"endpoint": endpoint})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadGateway,
			apperrors.ErrServeurDistant.Error(), err,
			map[string]interface{}{"endpoint": endpoint})
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}
	return nil, c.traduireStatut(resp, endpoint, body)
}

// traduireStatut applique la taxonomie d'erreurs : 401/403/404 distincts,
// 429 avec retry-after, 5xx générique avec le message serveur s'il existe.
func (c *Client) traduireStatut(resp *http.Response, endpoint string, body []byte) error {
	c.logger.Warn("réponse en erreur du serveur central",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
	)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.ErrNonAutorise
	case http.StatusForbidden:
		return apperrors.ErrAccesRefuse
	case http.StatusNotFound:
		return apperrors.ErrIntrouvable
	case http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: attenteRetryAfter(resp.Header.Get("Retry-After"))}
	}

	message := apperrors.ErrServeurDistant.Error()
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}
	return apperrors.NewHttpError(http.StatusBadGateway, message,
		fmt.Errorf("le serveur central a renvoyé le statut %s", resp.Status),
		map[string]interface{}{"endpoint": endpoint})
}

// attenteRetryAfter lit l'en-tête retry-after (secondes) ; 5s par défaut.
func attenteRetryAfter(header string) time.Duration {
	if header == "" {
		return constants.AttenteParDefaut429
	}
	secondes, err := strconv.Atoi(header)
	if err != nil || secondes <= 0 {
		return constants.AttenteParDefaut429
	}
	return time.Duration(secondes) * time.Second
}
