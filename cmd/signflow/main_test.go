package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/signflow/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWorkspace = "0b9a3c5e-2f7d-4c1a-9e55-8d1f6b7a2c40"
	testEnvelope  = "6f1c2d3e-4a5b-4c6d-8e7f-90a1b2c3d4e5"
	testDocument  = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"

	successRender = `{"success":true,"data":{"renderId":"r1","signatures":[{"x":10,"y":20,"page":1,"data":{"type":"signature","email":"a@x.com","recipientFirstname":"A","recipientLastname":"X"}}]}}`
)

type fakeUpstreams struct {
	carbone *httptest.Server
	subnoto *httptest.Server

	renderBody string
	download   []byte

	renders    atomic.Int32
	uploads    atomic.Int32
	recipients atomic.Int32
	blocks     atomic.Int32
	sends      atomic.Int32
	lastBlocks []map[string]any
}

func newFakeUpstreams(t *testing.T, renderBody string, download []byte) *fakeUpstreams {
	t.Helper()
	f := &fakeUpstreams{renderBody: renderBody, download: download}

	carbone := chi.NewRouter()
	carbone.Post("/render/{templateId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tpl-1", chi.URLParam(r, "templateId"))
		assert.Equal(t, "Bearer carbone-key", r.Header.Get("Authorization"))
		f.renders.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(f.renderBody))
	})
	carbone.Get("/render/{renderId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "r1", chi.URLParam(r, "renderId"))
		w.Write(f.download)
	})
	f.carbone = httptest.NewServer(carbone)
	t.Cleanup(f.carbone.Close)

	signer := jwt.New("access", "secret", time.Minute)
	subnoto := chi.NewRouter()
	subnoto.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := signer.DecodeToken(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")); err != nil {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	subnoto.Post("/public/envelope/create-from-file", func(w http.ResponseWriter, r *http.Request) {
		f.uploads.Add(1)
		w.Write([]byte(`{"envelopeUuid":"` + testEnvelope + `","documentUuid":"` + testDocument + `"}`))
	})
	subnoto.Post("/public/envelope/add-recipients", func(w http.ResponseWriter, r *http.Request) {
		f.recipients.Add(1)
		w.Write([]byte(`{}`))
	})
	subnoto.Post("/public/envelope/add-blocks", func(w http.ResponseWriter, r *http.Request) {
		f.blocks.Add(1)
		var body struct {
			Blocks []map[string]any `json:"blocks"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.lastBlocks = body.Blocks
		w.Write([]byte(`{}`))
	})
	subnoto.Post("/public/envelope/send", func(w http.ResponseWriter, r *http.Request) {
		f.sends.Add(1)
		w.Write([]byte(`{}`))
	})
	f.subnoto = httptest.NewServer(subnoto)
	t.Cleanup(f.subnoto.Close)

	return f
}

func setEnv(t *testing.T, f *fakeUpstreams) {
	t.Helper()
	t.Setenv("CARBONE_API_KEY", "carbone-key")
	t.Setenv("CARBONE_API_URL", f.carbone.URL)
	t.Setenv("CARBONE_TEMPLATE_ID", "tpl-1")
	t.Setenv("SUBNOTO_API_BASE_URL", f.subnoto.URL)
	t.Setenv("SUBNOTO_ACCESS_KEY", "access")
	t.Setenv("SUBNOTO_SECRET_KEY", "secret")
	t.Setenv("SUBNOTO_WORKSPACE_UUID", testWorkspace)
	t.Setenv("PUSHGATEWAY_URL", "")
}

func TestRun_Success(t *testing.T) {
	f := newFakeUpstreams(t, successRender, []byte("%PDF-1.4 fake document"))
	setEnv(t, f)

	code := run(context.Background(), []string{"-config_folder", t.TempDir()})

	assert.Equal(t, 0, code)
	assert.EqualValues(t, 1, f.uploads.Load())
	assert.EqualValues(t, 1, f.recipients.Load())
	assert.EqualValues(t, 1, f.blocks.Load())
	assert.EqualValues(t, 1, f.sends.Load())
	require.Len(t, f.lastBlocks, 1)
	assert.Equal(t, "1", f.lastBlocks[0]["page"])
	assert.Equal(t, "a@x.com", f.lastBlocks[0]["recipientEmail"])
}

func TestRun_RenderFailureStopsBeforeUpload(t *testing.T) {
	f := newFakeUpstreams(t, `{"success":false,"error":"template not found"}`, nil)
	setEnv(t, f)

	code := run(context.Background(), []string{"-config_folder", t.TempDir()})

	assert.Equal(t, 1, code)
	assert.EqualValues(t, 0, f.uploads.Load())
	assert.EqualValues(t, 0, f.sends.Load())
}

func TestRun_InvalidPDFStopsBeforeUpload(t *testing.T) {
	f := newFakeUpstreams(t, successRender, []byte(`{"error":"expired"}`))
	setEnv(t, f)

	code := run(context.Background(), []string{"-config_folder", t.TempDir()})

	assert.Equal(t, 1, code)
	assert.EqualValues(t, 0, f.uploads.Load())
}

func TestRun_MissingConfigMakesNoCalls(t *testing.T) {
	f := newFakeUpstreams(t, successRender, []byte("%PDF-1.4"))
	setEnv(t, f)
	t.Setenv("CARBONE_API_KEY", "")

	code := run(context.Background(), []string{"-config_folder", t.TempDir()})

	assert.Equal(t, 1, code)
	assert.EqualValues(t, 0, f.renders.Load())
	assert.EqualValues(t, 0, f.uploads.Load())
}

func TestRun_BadFlags(t *testing.T) {
	assert.Equal(t, 1, run(context.Background(), []string{"-no-such-flag"}))
}

func TestRun_MissingContractFile(t *testing.T) {
	f := newFakeUpstreams(t, successRender, []byte("%PDF-1.4"))
	setEnv(t, f)

	code := run(context.Background(), []string{"-config_folder", t.TempDir(), "-contract", "/does/not/exist.yaml"})
	assert.Equal(t, 1, code)
	assert.EqualValues(t, 0, f.uploads.Load())
}
