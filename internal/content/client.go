package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	model "github.com/BasileDS/royaume-backend/internal/models"
)

const defaultTimeout = 10 * time.Second

// Client est un client lecture seule du Directus qui héberge le contenu
// éditorial. Seule la collection level_thresholds intéresse ce backend.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Enveloppe de réponse Directus
type itemsResponse struct {
	Data []model.LevelThreshold `json:"data"`
}

// LevelThresholds récupère tous les paliers de niveau, triés par
// sort_order puis level, sans limite. Le résultat est re-trié par
// xp_required croissant : c'est l'ordre attendu par le calcul de niveau.
func (c *Client) LevelThresholds(ctx context.Context) ([]model.LevelThreshold, error) {
	query := url.Values{}
	query.Set("sort", "sort_order,level")
	query.Set("limit", "-1")

	endpoint := fmt.Sprintf("%s/items/level_thresholds?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("level_thresholds request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var payload itemsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode level_thresholds: %w", err)
	}

	thresholds := payload.Data
	sort.SliceStable(thresholds, func(i, j int) bool {
		return thresholds[i].XPRequired < thresholds[j].XPRequired
	})

	return thresholds, nil
}
