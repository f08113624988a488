package importer_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marcingest/internal/httpx"
	"marcingest/internal/importer"
	"marcingest/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newRouter(f *fixture) http.Handler {
	r := chi.NewRouter()
	r.Use(httpx.InternalSecretMiddleware(testutil.TestSecret))
	importer.NewHTTPHandler(f.svc).Routes(r)
	return r
}

func TestHTTPHandler_Run(t *testing.T) {
	t.Run("runs the job", func(t *testing.T) {
		f := newFixture(t, importer.Config{})
		f.expectClaimAndSeed()
		f.expectOpen(strings.NewReader(""))
		f.repo.EXPECT().UpdateStatus(gomock.Any(), testutil.TestImportID, testutil.TestLibraryID, importer.StatusComplete).Return(nil)
		done := *claimedJob
		done.Status = importer.StatusComplete
		f.repo.EXPECT().GetJob(gomock.Any(), testutil.TestImportID).Return(&done, nil)

		w := httptest.NewRecorder()
		newRouter(f).ServeHTTP(w, testutil.NewInternalRequest(http.MethodPost, "/internal/jobs/marc-import", jobMsg, testutil.TestSecret))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "COMPLETE", data["status"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		f := newFixture(t, importer.Config{})

		w := httptest.NewRecorder()
		newRouter(f).ServeHTTP(w, testutil.NewInternalRequest(http.MethodPost, "/internal/jobs/marc-import", jobMsg, "nope"))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, "UNAUTHORIZED", resp.ErrorCode())
	})

	t.Run("invalid message", func(t *testing.T) {
		f := newFixture(t, importer.Config{})

		w := httptest.NewRecorder()
		body := map[string]string{"bucketName": "uploads"}
		newRouter(f).ServeHTTP(w, testutil.NewInternalRequest(http.MethodPost, "/internal/jobs/marc-import", body, testutil.TestSecret))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "INVALID_JOB_MESSAGE", resp.ErrorCode())
		details := resp.Body["error"].(map[string]interface{})["details"].([]interface{})
		assert.Len(t, details, 3)
	})

	t.Run("job failure", func(t *testing.T) {
		f := newFixture(t, importer.Config{})
		f.repo.EXPECT().ClaimJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		newRouter(f).ServeHTTP(w, testutil.NewInternalRequest(http.MethodPost, "/internal/jobs/marc-import", jobMsg, testutil.TestSecret))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, "IMPORT_FAILED", resp.ErrorCode())
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t, importer.Config{})
		f.repo.EXPECT().GetJob(gomock.Any(), testutil.TestImportID).Return(claimedJob, nil)

		w := httptest.NewRecorder()
		newRouter(f).ServeHTTP(w, testutil.NewInternalRequest(http.MethodGet, "/internal/jobs/marc-import/"+testutil.TestImportID, nil, testutil.TestSecret))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "PARSING", data["status"])
		assert.Equal(t, testutil.TestLibraryID, data["libraryId"])
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, importer.Config{})
		f.repo.EXPECT().GetJob(gomock.Any(), "missing").Return(nil, importer.ErrJobNotFound)

		w := httptest.NewRecorder()
		newRouter(f).ServeHTTP(w, testutil.NewInternalRequest(http.MethodGet, "/internal/jobs/marc-import/missing", nil, testutil.TestSecret))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "NOT_FOUND", resp.ErrorCode())
	})
}
