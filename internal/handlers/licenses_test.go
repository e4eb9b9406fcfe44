package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/handlers"
	"github.com/tecops/assetdesk/test/mocks"
)

func TestLicenseCreatePool(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	pool := &domain.LicensePool{ID: uuid.New(), SKU: "O365-E3", Total: 25}
	service.EXPECT().
		CreatePool(gomock.Any(), gomock.Any(), "alice").
		Return(pool, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/licenses", jsonBody(t, map[string]any{
		"sku":   "O365-E3",
		"total": 25,
		"actor": "alice",
	}))
	rec := httptest.NewRecorder()
	handler.CreatePool(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got domain.LicensePool
	decodeBody(t, rec, &got)
	assert.Equal(t, "O365-E3", got.SKU)
}

func TestLicenseCreatePoolDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	service.EXPECT().
		CreatePool(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.Conflictf("license pool with sku O365-E3 already exists"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/licenses", jsonBody(t, map[string]any{
		"sku":   "O365-E3",
		"total": 10,
	}))
	rec := httptest.NewRecorder()
	handler.CreatePool(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLicenseAllocate(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	poolID := uuid.New()
	assignment := domain.NewLicenseAssignment(poolID, "bob@corp.example", "", "alice")
	service.EXPECT().
		Allocate(gomock.Any(), poolID, "bob@corp.example", "", "alice").
		Return(assignment, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/licenses/"+poolID.String()+"/allocate",
		jsonBody(t, map[string]any{"user_upn": "bob@corp.example", "actor": "alice"}))
	req.SetPathValue("id", poolID.String())
	rec := httptest.NewRecorder()
	handler.Allocate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Assignment
	decodeBody(t, rec, &got)
	assert.Equal(t, domain.AssignmentLicense, got.Kind)
	assert.Equal(t, domain.AssignmentAssigned, got.Status)
}

func TestLicenseAllocateBadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/licenses/nope/allocate",
		jsonBody(t, map[string]any{}))
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	handler.Allocate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLicenseAllocateExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	poolID := uuid.New()
	service.EXPECT().
		Allocate(gomock.Any(), poolID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.Invalidf("license pool O365-E3 has no seats available"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/licenses/"+poolID.String()+"/allocate",
		jsonBody(t, map[string]any{"user_upn": "bob@corp.example"}))
	req.SetPathValue("id", poolID.String())
	rec := httptest.NewRecorder()
	handler.Allocate(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLicenseAllocateWriteConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	poolID := uuid.New()
	service.EXPECT().
		Allocate(gomock.Any(), poolID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrWriteConflict)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/licenses/"+poolID.String()+"/allocate",
		jsonBody(t, map[string]any{"user_upn": "bob@corp.example"}))
	req.SetPathValue("id", poolID.String())
	rec := httptest.NewRecorder()
	handler.Allocate(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReturnAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	assignmentID := uuid.New()
	returned := &domain.Assignment{ID: assignmentID, Kind: domain.AssignmentLicense, Status: domain.AssignmentReturned}
	service.EXPECT().
		Return(gomock.Any(), assignmentID, "system").
		Return(returned, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assignments/"+assignmentID.String()+"/return", nil)
	req.SetPathValue("id", assignmentID.String())
	rec := httptest.NewRecorder()
	handler.ReturnAssignment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReturnAssignmentTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	assignmentID := uuid.New()
	service.EXPECT().
		Return(gomock.Any(), assignmentID, gomock.Any()).
		Return(nil, domain.Invalidf("assignment %s is already returned", assignmentID))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assignments/"+assignmentID.String()+"/return", nil)
	req.SetPathValue("id", assignmentID.String())
	rec := httptest.NewRecorder()
	handler.ReturnAssignment(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAssignItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	itemID := uuid.New()
	assignment := domain.NewItemAssignment(itemID, "bob@corp.example", "", "alice")
	service.EXPECT().
		AssignItem(gomock.Any(), itemID, "bob@corp.example", "", "alice").
		Return(assignment, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assignments", jsonBody(t, map[string]any{
		"item_id":  itemID.String(),
		"user_upn": "bob@corp.example",
		"actor":    "alice",
	}))
	rec := httptest.NewRecorder()
	handler.AssignItem(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAssignItemMissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assignments",
		jsonBody(t, map[string]any{"user_upn": "bob@corp.example"}))
	rec := httptest.NewRecorder()
	handler.AssignItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignItemAlreadyAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	itemID := uuid.New()
	service.EXPECT().
		AssignItem(gomock.Any(), itemID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.Conflictf("item %s is already assigned", itemID))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assignments",
		jsonBody(t, map[string]any{"item_id": itemID.String()}))
	rec := httptest.NewRecorder()
	handler.AssignItem(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnassignByItemNotAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAllocationService(ctrl)
	handler := handlers.NewLicenseHandler(service, discardLogger())

	itemID := uuid.New()
	service.EXPECT().
		UnassignByItem(gomock.Any(), itemID, gomock.Any()).
		Return(nil, domain.Invalidf("no active assignment for item %s", itemID))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assignments/unassign",
		jsonBody(t, map[string]any{"item_id": itemID.String()}))
	rec := httptest.NewRecorder()
	handler.UnassignByItem(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
