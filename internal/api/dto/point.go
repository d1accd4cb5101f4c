package dto

type PointResponse struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Depot bool    `json:"depot"`
}

type ListPointsResponse struct {
	Points []PointResponse `json:"points"`
}
