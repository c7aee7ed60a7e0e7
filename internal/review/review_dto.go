package review

// All rating fields are bounded to [0, 5] at the write boundary; nothing
// downstream clamps.
type CreateReviewRequest struct {
	EmployeeID    uint    `json:"employee_id" binding:"required"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	Quality       float64 `json:"quality" binding:"gte=0,lte=5"`
	Communication float64 `json:"communication" binding:"gte=0,lte=5"`
	Innovation    float64 `json:"innovation" binding:"gte=0,lte=5"`
	Timeliness    float64 `json:"timeliness" binding:"gte=0,lte=5"`
	Attendance    float64 `json:"attendance" binding:"gte=0,lte=5"`
	OverallRating float64 `json:"overall_rating" binding:"gte=0,lte=5"`
	Remarks       string  `json:"remarks"`
	ReviewedBy    string  `json:"reviewed_by" binding:"required"`
}

type ReviewResponse struct {
	ID            uint    `json:"id"`
	EmployeeID    uint    `json:"employee_id"`
	Date          string  `json:"date"`
	Quality       float64 `json:"quality"`
	Communication float64 `json:"communication"`
	Innovation    float64 `json:"innovation"`
	Timeliness    float64 `json:"timeliness"`
	Attendance    float64 `json:"attendance"`
	OverallRating float64 `json:"overall_rating"`
	Remarks       string  `json:"remarks,omitempty"`
	ReviewedBy    string  `json:"reviewed_by"`
}

func NewResponse(r Review) ReviewResponse {
	return ReviewResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Date:          r.Date,
		Quality:       r.Quality,
		Communication: r.Communication,
		Innovation:    r.Innovation,
		Timeliness:    r.Timeliness,
		Attendance:    r.Attendance,
		OverallRating: r.OverallRating,
		Remarks:       r.Remarks,
		ReviewedBy:    r.ReviewedBy,
	}
}
