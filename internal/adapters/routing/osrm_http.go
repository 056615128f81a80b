package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"nightshift-routing-service/internal/domain"
)

// Wire format of the OSRM /route/v1 endpoint. Any payload that does not
// carry code "Ok" plus at least one route is treated as a failed call.
type osrmRouteResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// coordinatePath renders waypoints as the "lng,lat;lng,lat" path segment
// OSRM expects.
func coordinatePath(waypoints []domain.Coordinates) string {
	parts := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		parts = append(parts,
			strconv.FormatFloat(w.Lng, 'f', -1, 64)+","+strconv.FormatFloat(w.Lat, 'f', -1, 64))
	}
	return strings.Join(parts, ";")
}

// fetchRoute issues one routed query through the given client and decodes
// the first route of the response.
func (o *OSRMTravelProvider) fetchRoute(
	ctx context.Context,
	client *http.Client,
	waypoints []domain.Coordinates,
	query string,
) (*osrmRouteResponse, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%s?%s", o.baseURL, o.profile, coordinatePath(waypoints), query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("no route in response (code=%q)", decoded.Code)
	}

	return &decoded, nil
}
