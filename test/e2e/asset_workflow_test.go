//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tecops/assetdesk/internal/adapters/db"
	"github.com/tecops/assetdesk/internal/adapters/graph"
	redis_a "github.com/tecops/assetdesk/internal/adapters/redis_adapter"
	"github.com/tecops/assetdesk/internal/core/services"
	"github.com/tecops/assetdesk/internal/handlers"
	"github.com/tecops/assetdesk/test/helpers"
)

type AssetE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	directory *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *AssetE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.directory = s.startDirectoryStub()
	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *AssetE2ESuite) TearDownSuite() {
	s.server.Close()
	s.directory.Close()
}

func (s *AssetE2ESuite) TestInventoryLifecycle() {
	createReq := map[string]interface{}{
		"sku":      "LT-E2E-001",
		"name":     "E2E Test Laptop",
		"category": "device",
		"quantity": 1,
		"location": "Storage A",
		"actor":    "e2e",
	}

	resp := s.makeRequest("POST", "/inventory", createReq)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	itemID := created["id"].(string)
	s.NotEmpty(itemID)

	resp = s.makeRequest("GET", fmt.Sprintf("/inventory/%s", itemID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var retrieved map[string]interface{}
	s.decodeResponse(resp, &retrieved)
	s.Equal("E2E Test Laptop", retrieved["name"])

	patchReq := map[string]interface{}{
		"quantity": 2,
		"location": "Storage B",
	}
	resp = s.makeRequest("PATCH", fmt.Sprintf("/inventory/%s", itemID), patchReq)
	s.Equal(http.StatusOK, resp.StatusCode)

	var patched map[string]interface{}
	s.decodeResponse(resp, &patched)
	s.Equal(float64(2), patched["quantity"])
	s.Equal(float64(2), patched["version"])

	resp = s.makeRequest("GET", "/inventory?limit=10", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var listResponse map[string]interface{}
	s.decodeResponse(resp, &listResponse)
	items := listResponse["items"].([]interface{})
	s.GreaterOrEqual(len(items), 1)

	resp = s.makeRequest("DELETE", fmt.Sprintf("/inventory/%s", itemID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("GET", fmt.Sprintf("/inventory/%s", itemID), nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	// All four mutations must have left audit entries
	resp = s.makeRequest("GET", "/history?limit=10", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var history map[string]interface{}
	s.decodeResponse(resp, &history)
	s.GreaterOrEqual(history["total_count"].(float64), float64(3))
}

func (s *AssetE2ESuite) TestLicenseAllocationWorkflow() {
	poolReq := map[string]interface{}{
		"sku":          "E2E-POOL",
		"display_name": "E2E Test Pool",
		"total":        2,
		"actor":        "e2e",
	}

	resp := s.makeRequest("POST", "/licenses", poolReq)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var pool map[string]interface{}
	s.decodeResponse(resp, &pool)
	poolID := pool["id"].(string)

	// Duplicate SKU is rejected
	resp = s.makeRequest("POST", "/licenses", poolReq)
	s.Equal(http.StatusConflict, resp.StatusCode)

	// Drain the pool
	var assignmentIDs []string
	for i := 0; i < 2; i++ {
		allocReq := map[string]interface{}{
			"user_upn": fmt.Sprintf("user%d@example.com", i),
			"actor":    "e2e",
		}
		resp = s.makeRequest("POST", fmt.Sprintf("/licenses/%s/allocate", poolID), allocReq)
		s.Equal(http.StatusCreated, resp.StatusCode)

		var assignment map[string]interface{}
		s.decodeResponse(resp, &assignment)
		assignmentIDs = append(assignmentIDs, assignment["id"].(string))
	}

	// Third allocation exceeds capacity
	resp = s.makeRequest("POST", fmt.Sprintf("/licenses/%s/allocate", poolID), map[string]interface{}{
		"user_upn": "overflow@example.com",
		"actor":    "e2e",
	})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	// Returning a seat frees capacity
	resp = s.makeRequest("POST", fmt.Sprintf("/assignments/%s/return", assignmentIDs[0]), map[string]interface{}{
		"actor": "e2e",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// Double return is rejected
	resp = s.makeRequest("POST", fmt.Sprintf("/assignments/%s/return", assignmentIDs[0]), map[string]interface{}{
		"actor": "e2e",
	})
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	resp = s.makeRequest("POST", fmt.Sprintf("/licenses/%s/allocate", poolID), map[string]interface{}{
		"user_upn": "again@example.com",
		"actor":    "e2e",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *AssetE2ESuite) TestDeviceAssignmentWorkflow() {
	deviceReq := map[string]interface{}{
		"sku":         "LT-E2E-DEV",
		"name":        "E2E Assigned Laptop",
		"device_type": "Laptop",
		"company":     "Dell",
		"serial":      "E2E123456",
		"actor":       "e2e",
	}

	resp := s.makeRequest("POST", "/devices", deviceReq)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var device map[string]interface{}
	s.decodeResponse(resp, &device)
	itemID := device["item_id"].(string)
	s.Equal("in_stock", device["status"])

	assignReq := map[string]interface{}{
		"item_id":  itemID,
		"user_upn": "owner@example.com",
		"actor":    "e2e",
	}
	resp = s.makeRequest("POST", "/assignments", assignReq)
	s.Equal(http.StatusCreated, resp.StatusCode)

	// One active assignment per item
	resp = s.makeRequest("POST", "/assignments", assignReq)
	s.Equal(http.StatusConflict, resp.StatusCode)

	// Assigned devices can't be deleted
	deviceID := device["id"].(string)
	resp = s.makeRequest("DELETE", fmt.Sprintf("/devices/%s", deviceID), nil)
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp = s.makeRequest("POST", "/assignments/unassign", map[string]interface{}{
		"item_id": itemID,
		"actor":   "e2e",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.makeRequest("GET", fmt.Sprintf("/devices/%s", deviceID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &device)
	s.Equal("in_stock", device["status"])
}

func (s *AssetE2ESuite) TestDashboardSummary() {
	resp := s.makeRequest("GET", "/dashboard/summary", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var summary map[string]interface{}
	s.decodeResponse(resp, &summary)
	s.Equal(float64(2), summary["total"])
	s.Equal(float64(1), summary["corporate"])
	s.Equal(float64(1), summary["personal"])
}

func (s *AssetE2ESuite) TestDirectoryUsers() {
	resp := s.makeRequest("GET", "/users", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var users map[string]interface{}
	s.decodeResponse(resp, &users)
	s.Equal(float64(1), users["count"])
}

// Helper methods

func (s *AssetE2ESuite) startDirectoryStub() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/deviceManagement/managedDevices", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"value": []map[string]interface{}{
				{
					"id":              "dev-1",
					"ownerType":       "company",
					"complianceState": "compliant",
					"operatingSystem": "Windows",
					"osVersion":       "11.0",
				},
				{
					"id":                "dev-2",
					"ownerType":         "personal",
					"complianceState":   "noncompliant",
					"operatingSystem":   "iOS",
					"osVersion":         "17.4",
					"userPrincipalName": "owner@example.com",
				},
			},
		})
	})
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"value": []map[string]interface{}{
				{
					"id":                "u-1",
					"displayName":       "E2E User",
					"userPrincipalName": "owner@example.com",
				},
			},
		})
	})
	return httptest.NewServer(mux)
}

func (s *AssetE2ESuite) startTestServer() *httptest.Server {
	slogger := helpers.TestLogger()

	store := db.NewStore(s.testDB.Database, slogger)
	cache := redis_a.NewCache(s.testRedis.Client, slogger)
	directory := graph.NewClientWithHTTP(http.DefaultClient, s.directory.URL, 5*time.Second, slogger)

	inventoryService := services.NewInventoryService(store, slogger)
	allocationService := services.NewAllocationService(store, slogger)
	reconcileService := services.NewReconcileService(store, directory, cache, time.Minute, slogger)

	inventoryHandler := handlers.NewInventoryHandler(inventoryService, slogger)
	licenseHandler := handlers.NewLicenseHandler(allocationService, slogger)
	deviceHandler := handlers.NewDeviceHandler(allocationService, slogger)
	usersHandler := handlers.NewUsersHandler(reconcileService, slogger)
	dashboardHandler := handlers.NewDashboardHandler(reconcileService, nil, slogger)

	mux := http.NewServeMux()
	apiV1 := "/api/v1"

	mux.HandleFunc("GET "+apiV1+"/inventory", inventoryHandler.List)
	mux.HandleFunc("POST "+apiV1+"/inventory", inventoryHandler.Create)
	mux.HandleFunc("POST "+apiV1+"/inventory/bulk", inventoryHandler.BulkImport)
	mux.HandleFunc("GET "+apiV1+"/inventory/{id}", inventoryHandler.Get)
	mux.HandleFunc("PATCH "+apiV1+"/inventory/{id}", inventoryHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/inventory/{id}", inventoryHandler.Delete)
	mux.HandleFunc("GET "+apiV1+"/history", inventoryHandler.History)
	mux.HandleFunc("GET "+apiV1+"/licenses", licenseHandler.ListPools)
	mux.HandleFunc("POST "+apiV1+"/licenses", licenseHandler.CreatePool)
	mux.HandleFunc("POST "+apiV1+"/licenses/{id}/allocate", licenseHandler.Allocate)
	mux.HandleFunc("POST "+apiV1+"/assignments/{id}/return", licenseHandler.ReturnAssignment)
	mux.HandleFunc("POST "+apiV1+"/assignments", licenseHandler.AssignItem)
	mux.HandleFunc("POST "+apiV1+"/assignments/unassign", licenseHandler.UnassignByItem)
	mux.HandleFunc("GET "+apiV1+"/devices", deviceHandler.List)
	mux.HandleFunc("POST "+apiV1+"/devices", deviceHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/devices/{id}", deviceHandler.Get)
	mux.HandleFunc("PATCH "+apiV1+"/devices/{id}", deviceHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/devices/{id}", deviceHandler.Delete)
	mux.HandleFunc("GET "+apiV1+"/dashboard/summary", dashboardHandler.Summary)
	mux.HandleFunc("GET "+apiV1+"/dashboard/snapshots", dashboardHandler.ListSnapshots)
	mux.HandleFunc("GET "+apiV1+"/users", usersHandler.List)

	return httptest.NewServer(mux)
}

func (s *AssetE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *AssetE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestAssetE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(AssetE2ESuite))
}
