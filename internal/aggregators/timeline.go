package aggregators

import (
	"fmt"

	"log-dashboard/internal/models"
)

// Timeline converts the hourly buckets of a snapshot into chart points, one per hour of day.
func Timeline(snapshot *models.MetricsSnapshot) []models.TimelinePoint {
	points := make([]models.TimelinePoint, models.HoursPerDay)
	for hour := range points {
		points[hour] = models.TimelinePoint{Hour: fmt.Sprintf("%d:00", hour)}
		if snapshot != nil {
			points[hour].Requests = snapshot.HourlyRequests[hour]
			points[hour].Errors = snapshot.HourlyErrors[hour]
		}
	}
	return points
}
