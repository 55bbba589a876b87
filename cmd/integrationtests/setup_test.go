package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	catalog "marketplace/internal/catalogService"
	conversation "marketplace/internal/conversationService"
	"marketplace/internal/database"
	"marketplace/internal/models"
	"marketplace/internal/repository"
	"marketplace/internal/server"
	"marketplace/internal/storage"
)

// Seeded users; ids follow insert order.
const (
	aliceID uint = 1
	bobID   uint = 2
	carolID uint = 3
)

// SetupTestRouter wires the full stack against an in-memory database and a
// per-test upload directory.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	require.NoError(t, err)

	users := []models.User{{Username: "alice"}, {Username: "bob"}, {Username: "carol"}}
	require.NoError(t, db.Create(&users).Error)

	catalogRepo := repository.NewGormCatalogRepo(db)
	conversationRepo := repository.NewGormConversationRepo(db)
	files := storage.NewDiskStore(t.TempDir())

	catalogService := catalog.NewCatalogService(catalogRepo, files)
	conversationService := conversation.NewConversationService(conversationRepo, catalogRepo)

	return server.SetupRouter(catalogService, conversationService)
}

// ExecuteJSON performs a JSON request as userID (0 sends no identity header)
// and parses the response envelope.
func ExecuteJSON(t *testing.T, router *gin.Engine, method, url string, body any, userID uint) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatUint(uint64(userID), 10))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// ExecuteItemForm performs a multipart item submission as userID.
func ExecuteItemForm(t *testing.T, router *gin.Engine, method, url string, fields map[string]string, images map[string][]byte, userID uint) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for name, data := range images {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(data))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatUint(uint64(userID), 10))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// itemFields returns a valid submission for the first seeded category.
func itemFields(name string) map[string]string {
	return map[string]string{
		"condition":   models.ConditionUsedGood,
		"category_id": "1",
		"name":        name,
		"description": "integration test listing",
		"price":       "99.90",
		"location":    "Cairo, Egypt",
	}
}

// createItem lists an item as ownerID and returns its id.
func createItem(t *testing.T, router *gin.Engine, ownerID uint, name string, images map[string][]byte) uint {
	t.Helper()

	resp, w := ExecuteItemForm(t, router, "POST", "/items", itemFields(name), images, ownerID)
	require.Equal(t, 201, w.Code, "create item response: %v", resp)

	data := resp["data"].(map[string]any)
	return uint(data["id"].(float64))
}

// startConversation opens (or resumes) a thread on itemID as buyerID.
func startConversation(t *testing.T, router *gin.Engine, buyerID, itemID uint, content string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	url := fmt.Sprintf("/conversations/items/%d", itemID)
	return ExecuteJSON(t, router, "POST", url, map[string]string{"content": content}, buyerID)
}
