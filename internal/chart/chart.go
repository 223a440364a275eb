// Package chart converts status counts into pie-chart geometry. Angles are in
// degrees with 0 at the top, increasing clockwise.
package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/zefanya/apptrack/internal/kpi"
	"github.com/zefanya/apptrack/internal/types"
)

// Point is a cartesian coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Slice is one rendered pie segment.
type Slice struct {
	Status     types.Status `json:"status"`
	Label      string       `json:"label"`
	Color      string       `json:"color"`
	Count      int          `json:"count"`
	Percent    float64      `json:"percent"`
	StartAngle float64      `json:"startAngle"`
	EndAngle   float64      `json:"endAngle"`
	Path       string       `json:"path"`
}

// PolarToCartesian converts an angle on a circle into a point.
func PolarToCartesian(centerX, centerY, radius, angleDeg float64) Point {
	angleRad := (angleDeg - 90) * math.Pi / 180.0
	return Point{
		X: centerX + radius*math.Cos(angleRad),
		Y: centerY + radius*math.Sin(angleRad),
	}
}

// DescribeArc builds the SVG path for a filled pie slice between two angles.
// A full-circle end angle is capped just short of 360 so the arc does not
// degenerate into a zero-length path.
func DescribeArc(x, y, radius, startAngle, endAngle float64) string {
	if endAngle >= 360 {
		endAngle = 359.999
	}

	start := PolarToCartesian(x, y, radius, endAngle)
	end := PolarToCartesian(x, y, radius, startAngle)

	largeArcFlag := "0"
	if endAngle-startAngle > 180 {
		largeArcFlag = "1"
	}

	return strings.Join([]string{
		"M", fmtNum(start.X), fmtNum(start.Y),
		"A", fmtNum(radius), fmtNum(radius), "0", largeArcFlag, "0", fmtNum(end.X), fmtNum(end.Y),
		"L", fmtNum(x), fmtNum(y),
		"Z",
	}, " ")
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Percentages converts raw values into percentages of their sum, rounded to
// one decimal. A zero sum yields all zeros.
func Percentages(values []int) []float64 {
	total := 0
	for _, v := range values {
		total += v
	}

	out := make([]float64, len(values))
	if total == 0 {
		return out
	}
	for i, v := range values {
		out[i] = math.Round(float64(v)/float64(total)*1000) / 10
	}
	return out
}

// StatusSlices builds the status-distribution pie for the given applications.
// Statuses with no applications are omitted; slices follow display order.
func StatusSlices(apps []types.Application, centerX, centerY, radius float64) []Slice {
	counts := kpi.StatusCounts(apps)
	total := len(apps)
	if total == 0 {
		return nil
	}

	slices := make([]Slice, 0, len(types.Statuses))
	angle := 0.0
	for _, status := range types.Statuses {
		count := counts[status]
		if count == 0 {
			continue
		}
		span := float64(count) / float64(total) * 360
		info := types.StatusMap[status]
		slices = append(slices, Slice{
			Status:     status,
			Label:      info.Label,
			Color:      info.Color,
			Count:      count,
			Percent:    math.Round(float64(count)/float64(total)*1000) / 10,
			StartAngle: angle,
			EndAngle:   angle + span,
			Path:       DescribeArc(centerX, centerY, radius, angle, angle+span),
		})
		angle += span
	}
	return slices
}
