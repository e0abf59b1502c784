package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
)

// SetupTestRouter builds a router around a fresh in-memory recipe service
func SetupTestRouter(t *testing.T) (*gin.Engine, *service.RecipeService) {
	t.Helper()
	svc := service.NewRecipeService(database.NewMemoryRecipeStore())
	return NewTestRouter(svc), svc
}

// NewTestRouter mounts the recipe routes for the given service
func NewTestRouter(svc service.IRecipeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	NewRecipeHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

// PerformRequest sends body as JSON when it is not nil. A string body is sent verbatim.
func PerformRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, strings.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	router.ServeHTTP(w, req)
	return w
}
