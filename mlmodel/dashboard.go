package mlmodel

import (
	"math"
	"sort"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

// DashboardStats aggregates the study history for the dashboard view.
func (m *Model) DashboardStats() (types.DashboardStats, error) {
	records, err := m.LoadRecords()
	if err != nil {
		return types.DashboardStats{}, err
	}

	stats := types.DashboardStats{SubjectsChart: []types.SubjectStat{}}
	hoursBySubject := map[string]float64{}
	var gradeSum float64

	for _, r := range records {
		stats.TotalHours += r.Hours
		stats.TotalSessions++
		gradeSum += r.Grade
		hoursBySubject[r.Subject] += r.Hours
	}
	if stats.TotalSessions > 0 {
		stats.AverageGrade = round1(gradeSum / float64(stats.TotalSessions))
	}
	stats.TotalHours = round1(stats.TotalHours)

	for subject, hours := range hoursBySubject {
		stats.SubjectsChart = append(stats.SubjectsChart, types.SubjectStat{
			Subject: subject,
			Hours:   round1(hours),
		})
	}
	sort.Slice(stats.SubjectsChart, func(i, j int) bool {
		return stats.SubjectsChart[i].Subject < stats.SubjectsChart[j].Subject
	})

	return stats, nil
}

// Subjects lists the distinct subjects seen in the history, sorted, for
// the feedback form's suggestions.
func (m *Model) Subjects() ([]string, error) {
	records, err := m.LoadRecords()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	subjects := []string{}
	for _, r := range records {
		if r.Subject == "" || seen[r.Subject] {
			continue
		}
		seen[r.Subject] = true
		subjects = append(subjects, r.Subject)
	}
	sort.Strings(subjects)
	return subjects, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
