package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	membershipapp "github.com/gympro/backend/internal/application/membership"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/gympro/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, fechaInicio, fechaFin time.Time) *membership.Client {
	t.Helper()
	client, err := membership.NewClient(
		"Maria Fernandez", "1234567", "71234567", "maria@example.com",
		uuid.New(), "Mensual", fechaInicio, fechaFin,
	)
	require.NoError(t, err)
	return client
}

func admitRequest(t *testing.T, cinit string) *http.Request {
	t.Helper()
	body, err := json.Marshal(map[string]string{"ci_nit": cinit})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, "/check-ins", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCheckInHandler_Admit_Admitted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientRepo := new(MockClientRepository)
	checkInRepo := new(MockCheckInRepository)
	service := membershipapp.NewCheckInService(clientRepo, checkInRepo)
	h := NewCheckInHandler(service)

	now := time.Now()
	client := testClient(t, now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

	clientRepo.On("FindByCINIT", mock.Anything, "1234567").Return(client, nil)
	checkInRepo.On("Save", mock.Anything, mock.AnythingOfType("*membership.CheckIn")).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = admitRequest(t, "1234567")

	h.Admit(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "admitted", data["decision"])
	assert.NotNil(t, data["client"])
	assert.NotNil(t, data["check_in"])

	checkInRepo.AssertCalled(t, "Save", mock.Anything, mock.AnythingOfType("*membership.CheckIn"))
}

func TestCheckInHandler_Admit_RenewalRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientRepo := new(MockClientRepository)
	checkInRepo := new(MockCheckInRepository)
	service := membershipapp.NewCheckInService(clientRepo, checkInRepo)
	h := NewCheckInHandler(service)

	now := time.Now()
	client := testClient(t, now.AddDate(0, 0, -60), now.AddDate(0, 0, -30))
	require.Equal(t, membership.ClientStatusExpired, client.Status)

	clientRepo.On("FindByCINIT", mock.Anything, "1234567").Return(client, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = admitRequest(t, "1234567")

	h.Admit(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "renewal_required", data["decision"])
	assert.NotNil(t, data["client"])
	assert.Nil(t, data["check_in"])

	checkInRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCheckInHandler_Admit_StaleLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientRepo := new(MockClientRepository)
	checkInRepo := new(MockCheckInRepository)
	service := membershipapp.NewCheckInService(clientRepo, checkInRepo)
	h := NewCheckInHandler(service)

	// Window lapsed since the last write but the stored label still
	// says active. Admission follows the clock; the client row stays
	// untouched, so the attempt never issues more than one write.
	now := time.Now()
	client := testClient(t, now.AddDate(0, 0, -40), now.Add(time.Hour))
	client.FechaFin = now.Add(-time.Hour)
	require.Equal(t, membership.ClientStatusActive, client.Status)

	clientRepo.On("FindByCINIT", mock.Anything, "1234567").Return(client, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = admitRequest(t, "1234567")

	h.Admit(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "renewal_required", data["decision"])

	clientData := data["client"].(map[string]interface{})
	assert.Equal(t, string(membership.ClientStatusExpired), clientData["status"])

	clientRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	checkInRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCheckInHandler_Admit_Blocked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientRepo := new(MockClientRepository)
	checkInRepo := new(MockCheckInRepository)
	service := membershipapp.NewCheckInService(clientRepo, checkInRepo)
	h := NewCheckInHandler(service)

	now := time.Now()
	client := testClient(t, now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))
	require.NoError(t, client.Freeze())

	clientRepo.On("FindByCINIT", mock.Anything, "1234567").Return(client, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = admitRequest(t, "1234567")

	h.Admit(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "blocked", data["decision"])
	assert.Nil(t, data["check_in"])

	checkInRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCheckInHandler_Admit_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientRepo := new(MockClientRepository)
	checkInRepo := new(MockCheckInRepository)
	service := membershipapp.NewCheckInService(clientRepo, checkInRepo)
	h := NewCheckInHandler(service)

	clientRepo.On("FindByCINIT", mock.Anything, "9999999").Return(nil, shared.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = admitRequest(t, "9999999")

	h.Admit(c)

	// An unknown CI/NIT is a decision, not an error
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "not_found", data["decision"])
	assert.Nil(t, data["client"])
	assert.Nil(t, data["check_in"])
}

func TestCheckInHandler_Admit_MissingCINIT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientRepo := new(MockClientRepository)
	checkInRepo := new(MockCheckInRepository)
	service := membershipapp.NewCheckInService(clientRepo, checkInRepo)
	h := NewCheckInHandler(service)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = admitRequest(t, "")

	h.Admit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)

	clientRepo.AssertNotCalled(t, "FindByCINIT", mock.Anything, mock.Anything)
}

func TestCheckInHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientRepo := new(MockClientRepository)
	checkInRepo := new(MockCheckInRepository)
	service := membershipapp.NewCheckInService(clientRepo, checkInRepo)
	h := NewCheckInHandler(service)

	now := time.Now()
	client := testClient(t, now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))
	checkIns := []membership.CheckIn{*membership.NewCheckIn(client, now)}

	checkInRepo.On("FindBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(checkIns, nil)
	checkInRepo.On("CountBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/check-ins?page=1&page_size=20", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
}
