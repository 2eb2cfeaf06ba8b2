package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-backend/controllers"
	"ecommerce-backend/models"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock Allocator ---

type mockAllocator struct {
	gotEntries []models.AssignToBranchEntry
	result     *services.ServiceError
}

func (m *mockAllocator) AllocateToBranches(_ context.Context, entries []models.AssignToBranchEntry) *services.ServiceError {
	m.gotEntries = entries
	return m.result
}

func assignRouter(allocator services.Allocator) *gin.Engine {
	r := gin.New()
	pc := controllers.NewProductController(nil, allocator, nil)
	r.POST("/assignToBranch", pc.AssignToBranch)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBytes, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAssignToBranch_Success(t *testing.T) {
	allocator := &mockAllocator{}
	r := assignRouter(allocator)

	productID := primitive.NewObjectID().Hex()
	body := []models.AssignToBranchEntry{
		{BranchID: primitive.NewObjectID().Hex(), ProductID: productID, QuantityToAdd: 30},
		{BranchID: primitive.NewObjectID().Hex(), ProductID: productID, QuantityToAdd: 40},
	}

	w := postJSON(r, "/assignToBranch", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, allocator.gotEntries, 2)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Quantity updated successfully!", resp["message"])
}

func TestAssignToBranch_NonArrayBody(t *testing.T) {
	allocator := &mockAllocator{}
	r := assignRouter(allocator)

	w := postJSON(r, "/assignToBranch", map[string]interface{}{"branchId": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, allocator.gotEntries)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Request body must be a non-empty array.", resp["message"])
}

func TestAssignToBranch_ServiceErrorPassedThrough(t *testing.T) {
	allocator := &mockAllocator{
		result: services.NewServiceError(http.StatusBadRequest, services.InsufficientStockMessage(20)),
	}
	r := assignRouter(allocator)

	body := []models.AssignToBranchEntry{
		{BranchID: primitive.NewObjectID().Hex(), ProductID: primitive.NewObjectID().Hex(), QuantityToAdd: 25},
	}

	w := postJSON(r, "/assignToBranch", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Only 20 unit(s) available in stock. Please reduce the total quantity.", resp["message"])
}

func TestAssignToBranch_FractionalQuantityRejected(t *testing.T) {
	allocator := &mockAllocator{}
	r := assignRouter(allocator)

	body := []map[string]interface{}{
		{"branchId": primitive.NewObjectID().Hex(), "productId": primitive.NewObjectID().Hex(), "quantityToAdd": 2.5},
	}

	w := postJSON(r, "/assignToBranch", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, allocator.gotEntries)
}
