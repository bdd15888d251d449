package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func downloadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/download/:filename", DownloadFile)
	return r
}

func TestDownloadFileRejectsPathTraversal(t *testing.T) {
	t.Setenv("UPLOAD_PATH", t.TempDir())
	gin.SetMode(gin.TestMode)

	// Drive the handler directly: the router would never deliver a
	// multi-segment value into :filename, but the guard must hold even if
	// routing changes.
	for _, filename := range []string{"../../etc/passwd", "dir/file.pdf", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/download/x", nil)
		c.Params = gin.Params{{Key: "filename", Value: filename}}
		DownloadFile(c)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%q: expected 400, got %d", filename, w.Code)
		}
	}
}

func TestDownloadFileMissingFile(t *testing.T) {
	t.Setenv("UPLOAD_PATH", t.TempDir())
	router := downloadRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/download/tidak-ada.pdf", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDownloadFileUsesDisplayName(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_PATH", dir)
	stored := "b7f1c2d3_1756720200.pdf"
	if err := os.WriteFile(filepath.Join(dir, stored), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	router := downloadRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/download/"+stored+"?name=proposal_penelitian.pdf", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "proposal_penelitian.pdf") {
		t.Fatalf("display name missing from disposition: %q", disposition)
	}
	if w.Body.String() != "%PDF-1.4" {
		t.Fatalf("file content mismatch")
	}
}
