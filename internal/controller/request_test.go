package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequestService struct {
	request *entity.RequestOutputModel
	err     error

	gotCreate    *service.CreateRequestInput
	gotStatus    common.RequestStatus
	gotAdminId   string
	gotRequestId string
}

func (s *stubRequestService) CreateRequest(_ context.Context, input *service.CreateRequestInput) (*entity.RequestOutputModel, error) {
	s.gotCreate = input

	return s.request, s.err
}

func (s *stubRequestService) GetRequestById(_ context.Context, requestId string) (*entity.RequestOutputModel, error) {
	s.gotRequestId = requestId

	return s.request, s.err
}

func (s *stubRequestService) UpdateRequestStatus(_ context.Context, requestId string, newStatus common.RequestStatus, adminId string) (*entity.RequestOutputModel, error) {
	s.gotRequestId = requestId
	s.gotStatus = newStatus
	s.gotAdminId = adminId

	return s.request, s.err
}

func (s *stubRequestService) DeleteRequest(_ context.Context, requestId string) error {
	s.gotRequestId = requestId

	return s.err
}

func (s *stubRequestService) ListRequests(_ context.Context, filter *entity.RequestFilter) ([]entity.RequestOutputModel, error) {
	if s.request == nil {
		return []entity.RequestOutputModel{}, s.err
	}

	return []entity.RequestOutputModel{*s.request}, s.err
}

func (s *stubRequestService) GetRequestStats(_ context.Context) (*entity.RequestStats, error) {
	return &entity.RequestStats{}, s.err
}

func newRequestTestServer(stub *stubRequestService) *echo.Echo {
	handler := echo.New()
	SetupRoutesHandlers(handler, &service.Services{Request: stub})

	return handler
}

func TestPostRequestCreated(t *testing.T) {
	stub := &stubRequestService{request: &entity.RequestOutputModel{
		Id:     uuid.NewString(),
		Status: string(common.RequestPending),
	}}
	server := newRequestTestServer(stub)

	hospitalId := uuid.NewString()
	body := `{"hospitalId":"` + hospitalId + `","bloodType":"O-","unitsRequested":2,"urgency":"High"}`
	req := httptest.NewRequest(http.MethodPost, "/api/requests/new", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.gotCreate)
	assert.Equal(t, hospitalId, stub.gotCreate.HospitalId)
	assert.Equal(t, common.ONegative, stub.gotCreate.BloodType)
	assert.Equal(t, 2, stub.gotCreate.UnitsRequested)
}

func TestPostRequestRejectsBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown blood type", `{"hospitalId":"` + uuid.NewString() + `","bloodType":"X-","unitsRequested":2}`},
		{"missing units", `{"hospitalId":"` + uuid.NewString() + `","bloodType":"O-"}`},
		{"hospital id is not a uuid", `{"hospitalId":"central","bloodType":"O-","unitsRequested":2}`},
		{"bad required by date", `{"hospitalId":"` + uuid.NewString() + `","bloodType":"O-","unitsRequested":2,"requiredByDate":"next week"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubRequestService{}
			server := newRequestTestServer(stub)

			req := httptest.NewRequest(http.MethodPost, "/api/requests/new", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			server.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, stub.gotCreate, "invalid input should never reach the service")
		})
	}
}

func TestUpdateRequestStatusConflict(t *testing.T) {
	stub := &stubRequestService{err: service.ErrInvalidStatusTransition}
	server := newRequestTestServer(stub)

	requestId := uuid.NewString()
	body := `{"status":"Completed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/requests/"+requestId+"/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, requestId, stub.gotRequestId)
	assert.Equal(t, common.RequestCompleted, stub.gotStatus)
}

func TestUpdateRequestStatusPassesAdminThrough(t *testing.T) {
	stub := &stubRequestService{request: &entity.RequestOutputModel{Status: string(common.RequestApproved)}}
	server := newRequestTestServer(stub)

	adminId := uuid.NewString()
	body := `{"status":"Approved","adminId":"` + adminId + `"}`
	req := httptest.NewRequest(http.MethodPut, "/api/requests/"+uuid.NewString()+"/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, common.RequestApproved, stub.gotStatus)
	assert.Equal(t, adminId, stub.gotAdminId)
}

func TestGetRequestNotFound(t *testing.T) {
	stub := &stubRequestService{err: service.ErrRequestNotFound}
	server := newRequestTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/requests/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRequestsRejectsUnknownStatusFilter(t *testing.T) {
	stub := &stubRequestService{}
	server := newRequestTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/requests?status=Archived", nil)
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
