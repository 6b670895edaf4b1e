package auth

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wagepoint/wagepoint-api/internal/domain/auth"
	"github.com/wagepoint/wagepoint-api/internal/domain/employee"
	"github.com/wagepoint/wagepoint-api/internal/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee // keyed by email
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.Email] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	emp, ok := f.employees[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error             { return nil }

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func seedEmployee(t *testing.T, repo *fakeEmployeeRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.employees[email] = employee.Employee{
		ID:           "emp-1",
		FullName:     "Test Employee",
		Email:        email,
		PasswordHash: string(hash),
		Role:         employee.RoleEmployee,
		BasicSalary:  decimal.NewFromInt(160000),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	seedEmployee(t, repo, "alice@example.com", "password123")

	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	svc := NewAuthService(repo, jwtService)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	seedEmployee(t, repo, "alice@example.com", "password123")

	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	svc := NewAuthService(repo, jwtService)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}

	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	svc := NewAuthService(repo, jwtService)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	// Unknown email and wrong password are indistinguishable to callers
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	svc := NewAuthService(repo, jwtService)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}
