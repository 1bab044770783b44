package aggregate

import "github.com/ridwaanhall/SpaceX/internal/models"

// Unknown - ключ группировки для отсутствующей классификации
const Unknown = "Unknown"

// Summarize считает сводку по сырым записям за один проход
func Summarize(records []map[string]any) models.UpcomingSummary {
	summary := models.UpcomingSummary{
		TotalLaunches:   len(records),
		Vehicles:        map[string]int{},
		LaunchSites:     map[string]int{},
		MissionStatuses: map[string]int{},
		MissionTypes:    map[string]int{},
	}

	for _, rec := range records {
		status := classification(rec, "missionStatus")
		missionType := classification(rec, "missionType")

		if status == "upcoming" {
			summary.UpcomingLaunches++
		}
		if missionType == "starlink" {
			summary.StarlinkMissions++
		}
		if flag(rec, "isLive") {
			summary.LiveLaunches++
		}
		if flag(rec, "isOngoing") {
			summary.OngoingLaunches++
		}

		summary.Vehicles[classification(rec, "vehicle")]++
		summary.LaunchSites[classification(rec, "launchSite")]++
		summary.MissionStatuses[status]++
		summary.MissionTypes[missionType]++
	}
	return summary
}

func classification(rec map[string]any, field string) string {
	if s, ok := rec[field].(string); ok {
		return s
	}
	return Unknown
}

func flag(rec map[string]any, field string) bool {
	b, ok := rec[field].(bool)
	return ok && b
}
