package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AveiroDigital/studio-agenda/internal/config"
	"github.com/AveiroDigital/studio-agenda/internal/observability"
	"github.com/AveiroDigital/studio-agenda/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerPort:    "8080",
		JWTSecret:     "test-secret",
		LogLevel:      "info",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}

	st := store.New()
	st.Seed(cfg.AdminUsername, cfg.AdminPassword)

	r := gin.New()
	Register(r, st, cfg, zap.NewNop(), observability.NewMetrics())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
	return out
}

// ======================================================
// AUTH
// ======================================================

func TestLogin(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["success"] != true {
		t.Error("success should be true")
	}
	if body["token"] == nil || body["token"] == "" {
		t.Error("missing token")
	}
	if body["message"] != "Login realizado com sucesso" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "errada"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Usuário ou senha inválidos" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Dados inválidos" {
		t.Errorf("message = %v", body["message"])
	}
	if _, ok := body["errors"].([]any); !ok {
		t.Errorf("missing field errors: %v", body)
	}
}

func TestAuthMeRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/auth/me", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}

	login := decode(t, doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"}))
	token := login["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	user, ok := body["user"].(map[string]any)
	if !ok || user["username"] != "admin" {
		t.Errorf("unexpected body: %v", body)
	}
}

// ======================================================
// CLIENTES
// ======================================================

func createClient(t *testing.T, r *gin.Engine, email string) map[string]any {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/clients", gin.H{
		"name":  "Ana Souza",
		"phone": "11999990000",
		"email": email,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create client status = %d, body %s", rec.Code, rec.Body.String())
	}
	return decode(t, rec)["client"].(map[string]any)
}

func TestClientLifecycle(t *testing.T) {
	r := newTestRouter(t)

	client := createClient(t, r, "ana@x.com")
	id := client["id"].(string)
	if id == "" {
		t.Fatal("missing client id")
	}

	rec := doJSON(t, r, http.MethodGet, "/api/clients/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPut, "/api/clients/"+id, gin.H{"phone": "11888880000"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}
	updated := decode(t, rec)["client"].(map[string]any)
	if updated["phone"] != "11888880000" {
		t.Errorf("phone = %v", updated["phone"])
	}
	if updated["name"] != "Ana Souza" {
		t.Errorf("name changed: %v", updated["name"])
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/clients/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/clients/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", rec.Code)
	}
	if decode(t, rec)["message"] != "Cliente não encontrado" {
		t.Errorf("message = %v", decode(t, rec)["message"])
	}
}

func TestClientDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	createClient(t, r, "ana@x.com")
	rec := doJSON(t, r, http.MethodPost, "/api/clients", gin.H{
		"name":  "Outra Pessoa",
		"phone": "11777770000",
		"email": "ana@x.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["message"] != "E-mail já cadastrado no sistema" {
		t.Errorf("message = %v", decode(t, rec)["message"])
	}
}

func TestClientValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/clients", gin.H{"name": "Ana", "phone": "1", "email": "nao-e-email"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) == 0 {
		t.Fatalf("missing errors: %v", body)
	}
	first := errs[0].(map[string]any)
	if first["field"] != "email" {
		t.Errorf("field = %v", first["field"])
	}
}

func TestClientListIsArray(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/clients", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "[") {
		t.Errorf("expected bare array, got %s", rec.Body.String())
	}
}

// ======================================================
// SERVIÇOS
// ======================================================

func createService(t *testing.T, r *gin.Engine, name string, active bool) map[string]any {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"name":     name,
		"duration": "30",
		"price":    "50.00",
		"active":   fmt.Sprintf("%t", active),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create service status = %d, body %s", rec.Code, rec.Body.String())
	}
	return decode(t, rec)["service"].(map[string]any)
}

func TestServiceTextFields(t *testing.T) {
	r := newTestRouter(t)

	svc := createService(t, r, "Corte", true)
	if svc["price"] != "50" {
		t.Errorf("price = %v", svc["price"])
	}
	if svc["duration"] != "30" {
		t.Errorf("duration = %v", svc["duration"])
	}
	if svc["active"] != "true" {
		t.Errorf("active = %v", svc["active"])
	}
}

func TestServiceActiveListing(t *testing.T) {
	r := newTestRouter(t)

	createService(t, r, "Corte", true)
	createService(t, r, "Antigo", false)

	// o seed adiciona dois serviços ativos
	rec := doJSON(t, r, http.MethodGet, "/api/services/active", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	for _, svc := range list {
		if svc["active"] != "true" {
			t.Errorf("inactive service listed: %v", svc["name"])
		}
		if svc["name"] == "Antigo" {
			t.Error("inactive service should not appear")
		}
	}
	if len(list) != 3 {
		t.Errorf("active services = %d, want 3", len(list))
	}
}

// ======================================================
// AGENDAMENTOS
// ======================================================

func TestAppointmentConflictFlow(t *testing.T) {
	r := newTestRouter(t)

	client := createClient(t, r, "ana@x.com")
	svc := createService(t, r, "Corte", true)

	payload := gin.H{
		"client_id":  client["id"],
		"service_id": svc["id"],
		"date":       "2026-09-10",
		"time":       "14:00",
	}

	rec := doJSON(t, r, http.MethodPost, "/api/appointments", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	first := decode(t, rec)["appointment"].(map[string]any)
	if first["status"] != "pendente" {
		t.Errorf("status = %v", first["status"])
	}

	rec = doJSON(t, r, http.MethodPost, "/api/appointments", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("conflict status = %d", rec.Code)
	}
	if decode(t, rec)["message"] != "Já existe um agendamento neste horário" {
		t.Errorf("message = %v", decode(t, rec)["message"])
	}

	// cancelar o primeiro libera o horário
	id := first["id"].(string)
	rec = doJSON(t, r, http.MethodPut, "/api/appointments/"+id, gin.H{"status": "cancelado"})
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/api/appointments", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("recreate status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAppointmentInactiveService(t *testing.T) {
	r := newTestRouter(t)

	client := createClient(t, r, "ana@x.com")
	svc := createService(t, r, "Antigo", false)

	rec := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"client_id":  client["id"],
		"service_id": svc["id"],
		"date":       "2026-09-10",
		"time":       "14:00",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["message"] != "Serviço não está ativo" {
		t.Errorf("message = %v", decode(t, rec)["message"])
	}
}

func TestAppointmentUnknownReferences(t *testing.T) {
	r := newTestRouter(t)

	svc := createService(t, r, "Corte", true)

	rec := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"client_id":  "nao-existe",
		"service_id": svc["id"],
		"date":       "2026-09-10",
		"time":       "14:00",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["message"] != "Cliente não encontrado" {
		t.Errorf("message = %v", decode(t, rec)["message"])
	}
}

func TestAppointmentInvalidDateFormat(t *testing.T) {
	r := newTestRouter(t)

	client := createClient(t, r, "ana@x.com")
	svc := createService(t, r, "Corte", true)

	rec := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"client_id":  client["id"],
		"service_id": svc["id"],
		"date":       "10/09/2026",
		"time":       "14:00",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["message"] != "Dados inválidos" {
		t.Errorf("message = %v", decode(t, rec)["message"])
	}
}

func TestAppointmentListByDate(t *testing.T) {
	r := newTestRouter(t)

	client := createClient(t, r, "ana@x.com")
	svc := createService(t, r, "Corte", true)

	for _, at := range []string{"14:00", "15:00"} {
		rec := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
			"client_id":  client["id"],
			"service_id": svc["id"],
			"date":       "2026-09-10",
			"time":       at,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create status = %d", rec.Code)
		}
	}

	rec := doJSON(t, r, http.MethodGet, "/api/appointments/date/2026-09-10", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("appointments = %d, want 2", len(list))
	}
}

// ======================================================
// PRODUTOS
// ======================================================

func createProduct(t *testing.T, r *gin.Engine, name, category string, qty, minQty string) map[string]any {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/products", gin.H{
		"name":         name,
		"category":     category,
		"quantity":     qty,
		"min_quantity": minQty,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product status = %d, body %s", rec.Code, rec.Body.String())
	}
	return decode(t, rec)["product"].(map[string]any)
}

func TestProductFilters(t *testing.T) {
	r := newTestRouter(t)

	createProduct(t, r, "Shampoo", "venda", "2", "5")
	createProduct(t, r, "Toalha", "uso", "10", "5")

	rec := doJSON(t, r, http.MethodGet, "/api/products?category=venda", nil)
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0]["name"] != "Shampoo" {
		t.Errorf("category filter: %v", list)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/products?low_stock=true", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0]["name"] != "Shampoo" {
		t.Errorf("low stock filter: %v", list)
	}
}

func TestProductInvalidCategory(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/products", gin.H{
		"name":     "Shampoo",
		"category": "outra",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

// ======================================================
// FINANCEIRO
// ======================================================

func TestAccountsAndSummary(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/accounts-receivable", gin.H{
		"description": "Consulta",
		"amount":      "150.00",
		"due_date":    "2099-01-10",
		"status":      "pago",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create receivable status = %d, body %s", rec.Code, rec.Body.String())
	}
	acc := decode(t, rec)["account"].(map[string]any)
	if acc["amount"] != "150" {
		t.Errorf("amount = %v", acc["amount"])
	}

	rec = doJSON(t, r, http.MethodPost, "/api/accounts-payable", gin.H{
		"description": "Aluguel",
		"amount":      "100.00",
		"due_date":    "2099-02-01",
		"status":      "pago",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create payable status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/api/financial/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary status = %d", rec.Code)
	}
	summary := decode(t, rec)
	if summary["receivable_received"] != "150" {
		t.Errorf("receivable_received = %v", summary["receivable_received"])
	}
	if summary["balance"] != "50" {
		t.Errorf("balance = %v", summary["balance"])
	}
}

func TestAccountDefaultStatus(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/accounts-receivable", gin.H{
		"description": "Consulta",
		"amount":      "80.00",
		"due_date":    "2099-03-01",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	acc := decode(t, rec)["account"].(map[string]any)
	if acc["status"] != "pendente" {
		t.Errorf("status = %v", acc["status"])
	}
}

func TestAccountNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/accounts-payable/nao-existe", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["message"] != "Conta não encontrada" {
		t.Errorf("message = %v", decode(t, rec)["message"])
	}
}

// ======================================================
// INFRA
// ======================================================

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["status"] != "ok" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAuditLogsSecured(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/audit-logs", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d", rec.Code)
	}

	login := decode(t, doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"}))
	token := login["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status with token = %d, body %s", rec.Code, rec.Body.String())
	}
}
