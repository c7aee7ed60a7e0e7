package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/niranjan-18-25/WorkOrbit/internal/review"
	"github.com/niranjan-18-25/WorkOrbit/internal/task"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"
)

const dateLayout = "2006-01-02"

// AverageRating is the arithmetic mean of overall ratings; an empty set
// averages to 0, never NaN.
func AverageRating(reviews []review.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.OverallRating
	}
	return sum / float64(len(reviews))
}

type Performer struct {
	EmployeeID    uint    `json:"employee_id"`
	Name          string  `json:"name"`
	AverageRating float64 `json:"average_rating"`
}

// TopPerformers groups reviews by employee, averages each group and
// returns the best `limit` employees. Ties keep the order in which an
// employee first appears in the review list (stable sort), which makes
// the ranking deterministic for a fixed input order.
func TopPerformers(reviews []review.Review, names map[uint]string, limit int) []Performer {
	sums := make(map[uint]float64)
	counts := make(map[uint]int)
	var order []uint

	for _, r := range reviews {
		if _, seen := counts[r.EmployeeID]; !seen {
			order = append(order, r.EmployeeID)
		}
		sums[r.EmployeeID] += r.OverallRating
		counts[r.EmployeeID]++
	}

	performers := make([]Performer, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = "Unknown"
		}
		performers = append(performers, Performer{
			EmployeeID:    id,
			Name:          name,
			AverageRating: sums[id] / float64(counts[id]),
		})
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].AverageRating > performers[j].AverageRating
	})

	if len(performers) > limit {
		performers = performers[:limit]
	}
	return performers
}

// RelativeTime renders a date as the label the activity feed shows.
// Dates that fail to parse degrade to "Unknown" instead of erroring.
func RelativeTime(date string, now time.Time) string {
	days, ok := relativeDays(date, now)
	if !ok {
		return "Unknown"
	}
	switch {
	case days < 1:
		return "Today"
	case days < 2:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	case days < 30:
		return fmt.Sprintf("%dw ago", days/7)
	default:
		return fmt.Sprintf("%dmo ago", days/30)
	}
}

func relativeDays(date string, now time.Time) (int, bool) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, false
	}
	return int(now.Sub(t).Hours() / 24), true
}

type ActivityItem struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Time     string `json:"time"`

	// days orders the merged feed; unparseable dates sort last.
	days int
}

const (
	ActivityEmployeeJoined = "employee_joined"
	ActivityTaskCompleted  = "task_completed"
	ActivityReviewAdded    = "review_added"
)

// BuildRecentActivity merges the two newest joiners, the two most
// recently completed tasks and the two newest reviews into one feed of
// at most five entries, most recent first.
func BuildRecentActivity(employees []user.User, tasks []task.Task, reviews []review.Review, now time.Time) []ActivityItem {
	var items []ActivityItem

	joined := append([]user.User(nil), employees...)
	sort.SliceStable(joined, func(i, j int) bool { return joined[i].JoiningDate > joined[j].JoiningDate })
	for _, e := range topN(joined, 2) {
		items = append(items, newActivity(
			ActivityEmployeeJoined,
			"New employee added",
			fmt.Sprintf("%s joined %s", e.Name, e.Department),
			e.JoiningDate,
			now,
		))
	}

	var done []task.Task
	for _, t := range tasks {
		if t.Status == task.StatusDone {
			done = append(done, t)
		}
	}
	sort.SliceStable(done, func(i, j int) bool { return done[i].Deadline > done[j].Deadline })
	names := employeeNames(employees)
	for _, t := range topN(done, 2) {
		items = append(items, newActivity(
			ActivityTaskCompleted,
			"Task completed",
			fmt.Sprintf("%s by %s", t.Title, nameOrUnknown(names, t.EmployeeID)),
			t.Deadline,
			now,
		))
	}

	recent := append([]review.Review(nil), reviews...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	for _, r := range topN(recent, 2) {
		items = append(items, newActivity(
			ActivityReviewAdded,
			"Performance review",
			fmt.Sprintf("%s rated %.1f/5.0", nameOrUnknown(names, r.EmployeeID), r.OverallRating),
			r.Date,
			now,
		))
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].days < items[j].days })
	return topN(items, 5)
}

func newActivity(kind, title, subtitle, date string, now time.Time) ActivityItem {
	days, ok := relativeDays(date, now)
	if !ok {
		days = math.MaxInt
	}
	return ActivityItem{
		Kind:     kind,
		Title:    title,
		Subtitle: subtitle,
		Time:     RelativeTime(date, now),
		days:     days,
	}
}

func employeeNames(employees []user.User) map[uint]string {
	names := make(map[uint]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names
}

// nameOrUnknown tolerates dangling employee references; the store does
// not enforce integrity.
func nameOrUnknown(names map[uint]string, id uint) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}

func topN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
