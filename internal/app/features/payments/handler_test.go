package payments_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/features/payments"
	"github.com/dalemusser/adminconsole/internal/testutil"
	"go.uber.org/zap"
)

const apiPath = "/api/v1/admin/payments"

func newTestHandler(t *testing.T) (*payments.Handler, *testutil.FakeAPI, *testutil.ErrorMessages) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	ld, msgs := testutil.NewLoader(t, testutil.NewSessionManager(t))
	return payments.NewHandler(api.Client(t), ld, zap.NewNop()), api, msgs
}

func TestServeTable_ForwardsValidDate(t *testing.T) {
	h, api, _ := newTestHandler(t)
	api.Respond(apiPath, http.StatusOK, `{"success":true,"payments":[]}`)

	h.ServeTable(testutil.NewRecorder(), testutil.NewHTMXRequest("GET", "/payments/table?date=2024-06-30"))

	got, ok := api.Last(apiPath)
	if !ok {
		t.Fatal("payments endpoint not called")
	}
	if d := got.Query.Get("date"); d != "2024-06-30" {
		t.Errorf("date: got %q", d)
	}
}

func TestServeTable_DropsMalformedDate(t *testing.T) {
	h, api, _ := newTestHandler(t)
	api.Respond(apiPath, http.StatusOK, `{"success":true,"payments":[]}`)

	h.ServeTable(testutil.NewRecorder(), testutil.NewHTMXRequest("GET", "/payments/table?date=june"))

	got, ok := api.Last(apiPath)
	if !ok {
		t.Fatal("payments endpoint not called")
	}
	if _, has := got.Query["date"]; has {
		t.Errorf("malformed date forwarded: %v", got.Query)
	}
}

func TestServeTable_ErrorRendersInline(t *testing.T) {
	h, api, msgs := newTestHandler(t)
	api.Respond(apiPath, http.StatusOK, `not json`)

	rec := testutil.NewRecorder()
	h.ServeTable(rec, testutil.NewHTMXRequest("GET", "/payments/table"))

	if got := msgs.All(); len(got) != 1 || got[0] != "Error loading payments" {
		t.Errorf("messages: %v", got)
	}

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `<div class="load-error" role="alert">Error loading payments</div>`)
}

func TestServeTable_UnauthorizedEndsSession(t *testing.T) {
	h, api, _ := newTestHandler(t)
	api.Respond(apiPath, http.StatusUnauthorized, `{"success":false}`)

	rec := testutil.NewRecorder()
	h.ServeTable(rec, testutil.NewHTMXRequest("GET", "/payments/table"))

	rec.AssertHXRedirect(t, "/login?expired=1")
}

func TestBuildTable(t *testing.T) {
	if vm := payments.BuildTable(nil, "No payments found.", ""); vm.Empty != "No payments found." {
		t.Errorf("empty: %+v", vm)
	}

	var list adminapi.List[adminapi.Payment]
	payload := `[
		{"user":{"username":"bo"},"amount":1500,"currency":"NGN","paymentMethod":"bank_transfer","status":"failed","reference":"P-9"},
		{}
	]`
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	vm := payments.BuildTable(list, "No payments found.", "")
	if len(vm.Rows) != 2 {
		t.Fatalf("rows: got %d", len(vm.Rows))
	}

	full := vm.Rows[0]
	if full.Amount != "NGN 1,500.00" || full.Method != "bank transfer" || full.Status != "failed" || full.Email != "N/A" {
		t.Errorf("row: %+v", full)
	}
	bare := vm.Rows[1]
	if bare.Username != "N/A" || bare.Method != "N/A" || bare.Status != "pending" || bare.Amount != "$0.00" || bare.Reference != "N/A" {
		t.Errorf("defaults: %+v", bare)
	}
}
