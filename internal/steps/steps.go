// Package steps computes the daily step progress shown on the counter screen.
package steps

import (
	"math"
	"strconv"
	"strings"
)

// DefaultObjective applies when the objective input is empty or not a positive number.
const DefaultObjective = 10000

// ParseObjective reads the objective text field.
func ParseObjective(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return DefaultObjective
	}
	return n
}

// Ring is the geometry of the circular progress indicator.
type Ring struct {
	Progress    int
	Limit       int
	Size        float64
	StrokeWidth float64
}

// NewRing uses the counter screen's 250 unit ring with a 20 unit stroke.
func NewRing(progress, limit int) Ring {
	return Ring{Progress: progress, Limit: limit, Size: 250, StrokeWidth: 20}
}

// Percent is progress/limit capped at 1.
func (r Ring) Percent() float64 {
	if r.Limit <= 0 {
		return 1
	}
	p := float64(r.Progress) / float64(r.Limit)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func (r Ring) Radius() float64 { return (r.Size - r.StrokeWidth) / 2 }

func (r Ring) Circumference() float64 { return 2 * math.Pi * r.Radius() }

// DashOffset is the undrawn part of the circumference.
func (r Ring) DashOffset() float64 { return r.Circumference() * (1 - r.Percent()) }

// Remaining steps to the objective, never negative.
func (r Ring) Remaining() int {
	if r.Progress >= r.Limit {
		return 0
	}
	return r.Limit - r.Progress
}

// Metric is one entry of the row under the ring.
type Metric struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Metrics returns the calorie, distance and time row. No sensor feeds these yet,
// so they read zero like the mobile screen.
func Metrics() []Metric {
	return []Metric{
		{Icon: "calories", Label: "Calories", Value: "0 cal"},
		{Icon: "distance", Label: "Distance", Value: "0 km"},
		{Icon: "time", Label: "Time", Value: "0 h"},
	}
}
