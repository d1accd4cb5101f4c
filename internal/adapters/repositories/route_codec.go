package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"migros-delivery/internal/domain"
	"strconv"
	"strings"
)

var errEmptyRoute = errors.New("route is empty")

func encodeRoute(r domain.Route) (string, error) {
	if len(r) == 0 {
		return "", fmt.Errorf("encode route: %w", errEmptyRoute)
	}
	b, err := json.Marshal([]int(r))
	if err != nil {
		return "", fmt.Errorf("encode route: %w", err)
	}
	return string(b), nil
}

func decodeRoute(s string) (domain.Route, error) {
	var ids []int
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, fmt.Errorf("decode route %q: %w", s, err)
	}
	return domain.Route(ids), nil
}

// pgIntArray renders a route as a Postgres integer[] literal, e.g. {1,3,2,1}.
func pgIntArray(r domain.Route) (string, error) {
	if len(r) == 0 {
		return "", fmt.Errorf("encode route: %w", errEmptyRoute)
	}

	ids := make([]string, len(r))
	for i, id := range r {
		ids[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(ids, ",") + "}", nil
}
