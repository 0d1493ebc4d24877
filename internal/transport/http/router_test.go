package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports"
	"github.com/cartverify/prepay-gateway/internal/ports/mocks"
	rest "github.com/cartverify/prepay-gateway/internal/transport/http"
	"github.com/cartverify/prepay-gateway/internal/webhook"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestVerifyPrepayment_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	log := noopLogger{}

	body := `{"_embedded":{"fx:items":[]}}`
	verifier.EXPECT().
		VerifyPrepayment(gomock.Any(), []byte(body), "").
		Return(domain.Approved())

	h := rest.NewHandler(verifier, nil, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodPost, "/webhook/prepayment", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Details string `json:"details"`
		OK      bool   `json:"ok"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !got.OK || got.Details != " " {
		t.Fatalf("unexpected verdict body: %+v", got)
	}
}

func TestVerifyPrepayment_SignatureHeaderForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	log := noopLogger{}

	body := `{}`
	verifier.EXPECT().
		VerifyPrepayment(gomock.Any(), []byte(body), "deadbeef").
		Return(domain.Approved())

	h := rest.NewHandler(verifier, nil, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodPost, "/webhook/prepayment", strings.NewReader(body))
	req.Header.Set(webhook.SignatureHeader, "deadbeef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestVerifyPrepayment_RejectedStatusPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	log := noopLogger{}

	verifier.EXPECT().
		VerifyPrepayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Rejected("Invalid item"))

	h := rest.NewHandler(verifier, nil, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodPost, "/webhook/prepayment", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Details string `json:"details"`
		OK      bool   `json:"ok"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.OK || got.Details != "Invalid item" {
		t.Fatalf("unexpected verdict body: %+v", got)
	}
}

func TestVerifyPrepayment_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	log := noopLogger{}

	verifier.EXPECT().
		VerifyPrepayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Unavailable("Server credentials were not provided."))

	h := rest.NewHandler(verifier, nil, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodPost, "/webhook/prepayment", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListVerdicts_OK(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	verdicts := mocks.NewMockVerdictRepository(ctrl)
	log := noopLogger{}

	ret := []*ports.VerdictRecord{
		{RequestID: "rid-1", Provider: "orderdesk", StatusCode: 200},
		{RequestID: "rid-2", Provider: "orderdesk", StatusCode: 200},
	}
	verdicts.EXPECT().LastN(gomock.Any(), 20).Return(ret, nil)

	h := rest.NewHandler(verifier, verdicts, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodGet, "/verdicts", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*ports.VerdictRecord
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].RequestID != "rid-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListVerdicts_LimitClamped(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	verdicts := mocks.NewMockVerdictRepository(ctrl)
	log := noopLogger{}

	verdicts.EXPECT().LastN(gomock.Any(), 100).Return(nil, nil)

	h := rest.NewHandler(verifier, verdicts, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodGet, "/verdicts?limit=999", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListVerdicts_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	verdicts := mocks.NewMockVerdictRepository(ctrl)
	log := noopLogger{}

	verdicts.EXPECT().LastN(gomock.Any(), 20).Return(nil, errors.New("db error"))

	h := rest.NewHandler(verifier, verdicts, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodGet, "/verdicts", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListVerdicts_NotRegisteredWithoutRepo(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	log := noopLogger{}

	h := rest.NewHandler(verifier, nil, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodGet, "/verdicts", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPing(t *testing.T) {
	ctrl := gomock.NewController(t)

	verifier := mocks.NewMockPrepaymentVerifier(ctrl)
	log := noopLogger{}

	h := rest.NewHandler(verifier, nil, log, 0)
	r := rest.NewRouter(h, "")

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected ping response: %d %q", w.Code, w.Body.String())
	}
}
