package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chenBenjamin97/court-analytics/pkg/report"
	"github.com/chenBenjamin97/court-analytics/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dirs struct {
	source, ready, reports string
}

//newTestRouter points every directory at a fresh temp dir and records analyzed names on the returned channel
func newTestRouter(t *testing.T) (*gin.Engine, dirs, chan string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	d := dirs{
		source:  filepath.Join(root, "source"),
		ready:   filepath.Join(root, "ready"),
		reports: filepath.Join(root, "reports"),
	}
	for _, dir := range []string{d.source, d.ready, d.reports} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	viper.Set("directory.source", d.source)
	viper.Set("directory.ready", d.ready)
	viper.Set("directory.reports", d.reports)
	viper.Set("video.prod_format", "mp4")
	viper.Set("frontend.static-files-path", root+"/")
	t.Cleanup(viper.Reset)

	analyzed := make(chan string, 1)
	r := NewRouter(func(srcVideoName string) error {
		analyzed <- srcVideoName
		return nil
	})

	return r, d, analyzed
}

func uploadRequest(t *testing.T, fileName string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("video", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/Upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	r, d, analyzed := newTestRouter(t)

	t.Run("accepted and analyzed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, uploadRequest(t, "final.avi", []byte("frames")))
		assert.Equal(t, http.StatusAccepted, rec.Code)

		select {
		case name := <-analyzed:
			assert.Equal(t, "final.avi", name)
		case <-time.After(2 * time.Second):
			t.Fatal("analyzer was not started")
		}

		data, err := os.ReadFile(filepath.Join(d.source, "final.avi"))
		require.NoError(t, err)
		assert.Equal(t, []byte("frames"), data)
	})

	t.Run("same base name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, uploadRequest(t, "final.mp4", []byte("other")))
		assert.Equal(t, http.StatusNotAcceptable, rec.Code)
		assert.NoFileExists(t, filepath.Join(d.source, "final.mp4"))
	})

	t.Run("not a video", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, uploadRequest(t, "notes.txt", []byte("text")))
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("missing form file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/Upload", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlay(t *testing.T) {
	r, d, _ := newTestRouter(t)
	require.NoError(t, os.WriteFile(filepath.Join(d.source, "final.avi"), []byte("source"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(d.ready, "final.mp4"), []byte("ready"), 0644))

	tests := []struct {
		name  string
		query string
		code  int
		body  string
	}{
		{"upload under its own name", "?name=final.avi&analyzed=false", http.StatusOK, "source"},
		{"analyzed output", "?name=final.avi&analyzed=true", http.StatusOK, "ready"},
		{"missing upload", "?name=final.mp4&analyzed=false", http.StatusNotFound, ""},
		{"missing output", "?name=semi.mp4&analyzed=true", http.StatusNotFound, ""},
		{"bad analyzed flag", "?name=final.avi&analyzed=yes", http.StatusNotAcceptable, ""},
		{"no name", "?analyzed=true", http.StatusNotAcceptable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/Play"+tt.query, nil))
			assert.Equal(t, tt.code, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestSummary(t *testing.T) {
	r, d, _ := newTestRouter(t)

	want := report.Summary{Frames: 120, Team1Control: 62.5, Team2Control: 37.5}
	require.NoError(t, report.SaveSummary(filepath.Join(d.reports, "final", utils.SummaryFileName), want))

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/Summary?name=final.avi", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var got report.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, want.Frames, got.Frames)
		assert.InDelta(t, want.Team1Control, got.Team1Control, 1e-9)
		assert.InDelta(t, want.Team2Control, got.Team2Control, 1e-9)
	})

	t.Run("not analyzed yet", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/Summary?name=semi.mp4", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
