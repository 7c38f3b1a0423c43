package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aitbenali/go-office-board/internal/service"
	"github.com/aitbenali/go-office-board/internal/store"
	"github.com/aitbenali/go-office-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock EmployeeService
// ─────────────────────────────────────────────

type mockEmployeeService struct {
	getAllFn func(ctx context.Context) ([]models.Employee, error)
	getFn    func(ctx context.Context, matricule string) (models.Employee, error)
	createFn func(ctx context.Context, employee models.Employee) error
	updateFn func(ctx context.Context, employee models.Employee) error
	deleteFn func(ctx context.Context, matricule string) error
}

func (m *mockEmployeeService) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockEmployeeService) GetEmployee(ctx context.Context, matricule string) (models.Employee, error) {
	if m.getFn != nil {
		return m.getFn(ctx, matricule)
	}
	return models.Employee{}, store.ErrEmployeeNotFound
}

func (m *mockEmployeeService) CreateEmployee(ctx context.Context, employee models.Employee) error {
	if m.createFn != nil {
		return m.createFn(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeService) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeService) DeleteEmployee(ctx context.Context, matricule string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, matricule)
	}
	return nil
}

func newHandlerWithEmployees(t *testing.T, svc service.EmployeeService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{EmployeeService: svc})
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestListEmployees_EmptyIsArray(t *testing.T) {
	h := newHandlerWithEmployees(t, &mockEmployeeService{})
	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	rec := httptest.NewRecorder()

	h.listEmployees(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// an empty listing must serialize as [], not null
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListEmployees_Success(t *testing.T) {
	svc := &mockEmployeeService{
		getAllFn: func(_ context.Context) ([]models.Employee, error) {
			return []models.Employee{
				{Matricule: "E001", Nom: "Benali", Affectation: "DSI", Emploi: "Ingenieur", Fonction: "Chef de projet"},
			}, nil
		},
	}

	h := newHandlerWithEmployees(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	rec := httptest.NewRecorder()

	h.listEmployees(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var employees []models.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "E001", employees[0].Matricule)
}

func TestGetEmployee_NotFound(t *testing.T) {
	h := newHandlerWithEmployees(t, &mockEmployeeService{})
	req := httptest.NewRequest(http.MethodGet, "/api/employees/E404", nil)
	req = withURLParam(req, "matricule", "E404")
	rec := httptest.NewRecorder()

	h.getEmployee(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddEmployee_Created(t *testing.T) {
	var created models.Employee
	svc := &mockEmployeeService{
		createFn: func(_ context.Context, employee models.Employee) error {
			created = employee
			return nil
		},
	}

	h := newHandlerWithEmployees(t, svc)
	body := `{"matricule":"E001","nom":"Benali","affectation":"DSI","emploi":"Ingenieur","fonction":"Chef de projet"}`
	req := httptest.NewRequest(http.MethodPost, "/api/employees/add", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.addEmployee(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "E001", created.Matricule)
	assert.Equal(t, "Benali", created.Nom)
}

func TestAddEmployee_Duplicate(t *testing.T) {
	svc := &mockEmployeeService{
		createFn: func(_ context.Context, _ models.Employee) error {
			return store.ErrEmployeeAlreadyExists
		},
	}

	h := newHandlerWithEmployees(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/employees/add", strings.NewReader(`{"matricule":"E001","nom":"Benali"}`))
	rec := httptest.NewRecorder()

	h.addEmployee(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddEmployee_InvalidData(t *testing.T) {
	svc := &mockEmployeeService{
		createFn: func(_ context.Context, _ models.Employee) error {
			return service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithEmployees(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/employees/add", strings.NewReader(`{"matricule":""}`))
	rec := httptest.NewRecorder()

	h.addEmployee(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEmployee_Success(t *testing.T) {
	var deleted string
	svc := &mockEmployeeService{
		deleteFn: func(_ context.Context, matricule string) error {
			deleted = matricule
			return nil
		},
	}

	h := newHandlerWithEmployees(t, svc)
	req := httptest.NewRequest(http.MethodDelete, "/api/employees/del/E001", nil)
	req = withURLParam(req, "matricule", "E001")
	rec := httptest.NewRecorder()

	h.deleteEmployee(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "E001", deleted)
}
