package school

import "math"

// AveragePercent is the mean of score/maxScore percentages over the given
// grades, rounded to the nearest integer. 0 on an empty set — never a
// division error.
func AveragePercent(grades []Grade) int {
	var sum float64
	var count int
	for _, g := range grades {
		if g.MaxScore == 0 { // never divide by zero
			continue
		}
		sum += g.Score / g.MaxScore * 100
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count)))
}

// Percent is one grade's score as a rounded percentage, 0 when maxScore is 0.
func Percent(g Grade) int {
	if g.MaxScore == 0 {
		return 0
	}
	return int(math.Round(g.Score / g.MaxScore * 100))
}

// GPA maps the average percentage onto a 4-point scale, one decimal place
// (90% -> 3.6). 0 on an empty set.
func GPA(grades []Grade) float64 {
	return math.Round(float64(AveragePercent(grades))/25*10) / 10
}

// AttendanceRate is the share of "present" records, rounded to the nearest
// integer percentage. 0 on an empty set.
func AttendanceRate(records []Attendance) int {
	if len(records) == 0 {
		return 0
	}
	var present int
	for _, a := range records {
		if a.Status == AttendancePresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(records)) * 100))
}

// Recent returns the last n elements in insertion order. It deliberately does
// NOT sort by any date field: "most recent" means most recently inserted.
func Recent[T any](list []T, n int) []T {
	if n <= 0 || len(list) == 0 {
		return []T{}
	}
	if len(list) <= n {
		return list
	}
	return list[len(list)-n:]
}
