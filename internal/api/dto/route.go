package dto

import "time"

type RouteResponse struct {
	Route       []int           `json:"route"`
	Distance    float64         `json:"distance"`
	Fingerprint string          `json:"fingerprint"`
	PlannedAt   time.Time       `json:"planned_at"`
	Points      []PointResponse `json:"points"`
}

type RunResponse struct {
	RunID       int64     `json:"run_id"`
	Fingerprint string    `json:"fingerprint"`
	Route       []int     `json:"route"`
	Distance    float64   `json:"distance"`
	PointCount  int       `json:"point_count"`
	PlannedAt   time.Time `json:"planned_at"`
}

type ListRunsResponse struct {
	Runs []RunResponse `json:"runs"`
}
