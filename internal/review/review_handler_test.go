package review_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niranjan-18-25/WorkOrbit/internal/review"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeReviewService struct {
	createFn             func(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error)
	getByIDFn            func(ctx context.Context, id uint) (review.ReviewResponse, error)
	getAllFn             func(ctx context.Context) ([]review.ReviewResponse, error)
	getByEmployeeFn      func(ctx context.Context, employeeID uint) ([]review.ReviewResponse, error)
	averageForEmployeeFn func(ctx context.Context, employeeID uint) (float64, error)
}

func (f *fakeReviewService) Create(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeReviewService) GetByID(ctx context.Context, id uint) (review.ReviewResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeReviewService) GetAll(ctx context.Context) ([]review.ReviewResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeReviewService) GetByEmployee(ctx context.Context, employeeID uint) ([]review.ReviewResponse, error) {
	return f.getByEmployeeFn(ctx, employeeID)
}
func (f *fakeReviewService) AverageForEmployee(ctx context.Context, employeeID uint) (float64, error) {
	return f.averageForEmployeeFn(ctx, employeeID)
}

func TestReviewHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeReviewService{
			createFn: func(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error) {
				assert.Equal(t, 4.2, req.OverallRating)
				return review.ReviewResponse{ID: 21, EmployeeID: req.EmployeeID, OverallRating: req.OverallRating}, nil
			},
		}

		h := review.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":5,"date":"2026-08-15","quality":4.5,"communication":4,"innovation":3.5,"timeliness":5,"attendance":4,"overall_rating":4.2,"reviewed_by":"Admin User"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative rating out of range", func(t *testing.T) {
		h := review.NewHandler(&fakeReviewService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":5,"date":"2026-08-15","overall_rating":5.5,"reviewed_by":"Admin User"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestReviewHandler_GetMine(t *testing.T) {
	svc := &fakeReviewService{
		getByEmployeeFn: func(ctx context.Context, employeeID uint) ([]review.ReviewResponse, error) {
			assert.Equal(t, uint(5), employeeID)
			return []review.ReviewResponse{
				{ID: 2, EmployeeID: 5, OverallRating: 4.0, Date: "2026-08-20"},
				{ID: 1, EmployeeID: 5, OverallRating: 3.0, Date: "2026-07-01"},
			}, nil
		},
		averageForEmployeeFn: func(ctx context.Context, employeeID uint) (float64, error) {
			return 3.5, nil
		},
	}

	h := review.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/reviews/mine", nil)
	c.Set("user_id", uint(5))

	h.GetMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var data struct {
		Reviews       []review.ReviewResponse `json:"reviews"`
		AverageRating float64                 `json:"average_rating"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Reviews, 2)
	assert.Equal(t, 3.5, data.AverageRating)
}
