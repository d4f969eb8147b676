package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"spa-backend/config"
	"spa-backend/controllers"
	"spa-backend/models"
	"spa-backend/routes"
	"spa-backend/services"
	"spa-backend/utils"
)

const testAdminEmail = "admin@spa.local"
const testAdminPassword = "admin123"

var dbSeq int64

// setupServer builds a router backed by an in-memory database, with the
// working directory moved to a temp dir so uploads land in isolation.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	// t.Chdir needs go1.24; emulate it on the installed toolchain
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	// uniquely named shared-cache memory DB so the connection pool sees one
	// database but tests stay isolated from each other
	dsn := fmt.Sprintf("file:test-%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
		config.DB = nil
	})

	hash, err := utils.HashPassword(testAdminPassword)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{Email: testAdminEmail, Password: hash}).Error)

	bc := controllers.NewBookingController(services.NewBookingService(db))
	tc := controllers.NewTreatmentController(services.NewTreatmentService(db))
	cc := controllers.NewCustomerController(services.NewCustomerService(db))
	dc := controllers.NewDraftController(services.NewDraftService(db))

	return routes.SetupRouter(bc, tc, cc, dc)
}

func adminToken(t *testing.T) string {
	t.Helper()
	var admin models.Admin
	require.NoError(t, config.DB.Where("email = ?", testAdminEmail).First(&admin).Error)
	token, err := utils.GenerateToken(admin.ID, admin.Email)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// multipartBody assembles form fields plus optional file parts
// (part name -> filename -> content).
func multipartBody(t *testing.T, fields map[string]string, files map[string][2]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for part, f := range files {
		fw, err := mw.CreateFormFile(part, f[0])
		require.NoError(t, err)
		_, err = fw.Write([]byte(f[1]))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func doMultipart(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, files map[string][2]string, token string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fields, files)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
