package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dimassfeb-09/sima-app-web/pkg/geo"
	"github.com/sirupsen/logrus"
)

// ErrNoRoute возвращается, когда сервис маршрутизации не нашел ни одного маршрута
var ErrNoRoute = errors.New("no route found")

// Client - клиент сервиса маршрутизации (OSRM-совместимый HTTP API)
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает новый клиент маршрутизации
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type routeResponse struct {
	Routes []struct {
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// FetchRoute запрашивает автомобильный маршрут от origin до dest и
// возвращает декодированную геометрию. Координаты передаются сервису
// в порядке "долгота,широта", запрашивается полная геометрия.
func (c *Client) FetchRoute(ctx context.Context, origin, dest geo.LatLng) ([]geo.LatLng, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%s,%s;%s,%s?overview=full",
		c.baseURL,
		formatCoord(origin.Longitude), formatCoord(origin.Latitude),
		formatCoord(dest.Longitude), formatCoord(dest.Latitude),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create route request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode route response: %w", err)
	}

	if len(body.Routes) == 0 {
		return nil, ErrNoRoute
	}

	points, err := geo.DecodePolyline(body.Routes[0].Geometry)
	if err != nil {
		return nil, fmt.Errorf("failed to decode route geometry: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"points": len(points),
	}).Debug("Route fetched and decoded")

	return points, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
