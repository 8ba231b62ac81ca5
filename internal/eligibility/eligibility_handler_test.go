package eligibility_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-paygrade/internal/eligibility"
	eligibilityerrors "go-paygrade/internal/eligibility/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	runScanFn func(ctx context.Context, companyID string) (eligibility.ScanResponse, error)
	getAllFn  func(ctx context.Context, companyID string, filter eligibility.ListFilter) ([]eligibility.EligibilityResponse, error)
	getByIDFn func(ctx context.Context, companyID, id string) (eligibility.EligibilityResponse, error)
}

func (f *fakeService) RunScan(ctx context.Context, companyID string) (eligibility.ScanResponse, error) {
	return f.runScanFn(ctx, companyID)
}
func (f *fakeService) GetAll(ctx context.Context, companyID string, filter eligibility.ListFilter) ([]eligibility.EligibilityResponse, error) {
	return f.getAllFn(ctx, companyID, filter)
}
func (f *fakeService) GetByID(ctx context.Context, companyID, id string) (eligibility.EligibilityResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}

func TestHandler_RunScan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()

	svc := &fakeService{
		runScanFn: func(ctx context.Context, cid string) (eligibility.ScanResponse, error) {
			assert.Equal(t, companyID, cid)
			return eligibility.ScanResponse{Scanned: 5, Created: 2, Skipped: 3}, nil
		},
	}
	h := eligibility.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Request = httptest.NewRequest(http.MethodPost, "/eligibilities/scan", nil)

	h.RunScan(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":2`)
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()

	t.Run("success with pagination", func(t *testing.T) {
		svc := &fakeService{
			getAllFn: func(ctx context.Context, cid string, filter eligibility.ListFilter) ([]eligibility.EligibilityResponse, error) {
				assert.Equal(t, eligibility.StatusPending, filter.Status)
				return []eligibility.EligibilityResponse{
					{ID: uuid.New().String()},
					{ID: uuid.New().String()},
					{ID: uuid.New().String()},
				}, nil
			},
		}
		h := eligibility.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)
		c.Request = httptest.NewRequest(http.MethodGet, "/eligibilities?status=PENDING&page=1&page_size=2", nil)

		h.GetAll(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"meta"`)
		assert.Contains(t, w.Body.String(), `"total":3`)
	})

	t.Run("negative case invalid status filter", func(t *testing.T) {
		svc := &fakeService{
			getAllFn: func(ctx context.Context, cid string, filter eligibility.ListFilter) ([]eligibility.EligibilityResponse, error) {
				return nil, eligibilityerrors.ErrInvalidStatusFilter
			},
		}
		h := eligibility.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)
		c.Request = httptest.NewRequest(http.MethodGet, "/eligibilities?status=DONE", nil)

		h.GetAll(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, cid, id string) (eligibility.EligibilityResponse, error) {
			return eligibility.EligibilityResponse{}, eligibilityerrors.ErrEligibilityNotFound
		},
	}
	h := eligibility.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/eligibilities/x", nil)

	h.GetById(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
