package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagepoint/wagepoint-api/internal/domain/attendance"
	"github.com/wagepoint/wagepoint-api/internal/domain/employee"
	"github.com/wagepoint/wagepoint-api/internal/domain/notification"
	"github.com/wagepoint/wagepoint-api/internal/domain/payroll"
)

const testSecret = "test-secret-key-for-jwt"

// fakePayrollRepo is an in-memory payroll.PayrollRepository enforcing the
// one-record-per-employee-per-period rule like the real unique index.
type fakePayrollRepo struct {
	records map[string]payroll.Record
	failFor map[string]error // employeeID -> forced Create error
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		records: make(map[string]payroll.Record),
		failFor: make(map[string]error),
	}
}

func periodKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s/%d-%d", employeeID, year, month)
}

func (f *fakePayrollRepo) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	if err, ok := f.failFor[rec.EmployeeID]; ok {
		return payroll.Record{}, err
	}
	key := periodKey(rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear)
	if _, ok := f.records[key]; ok {
		return payroll.Record{}, payroll.ErrPayrollRecordAlreadyExists
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.records[key] = rec
	return rec, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return payroll.Record{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	_, ok := f.records[periodKey(employeeID, month, year)]
	return ok, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, rec payroll.Record) error {
	key := periodKey(rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear)
	if _, ok := f.records[key]; !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	f.records[key] = rec
	return nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, id string) error {
	for key, rec := range f.records {
		if rec.ID == id {
			delete(f.records, key)
			return nil
		}
	}
	return payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Record, int64, error) {
	var out []payroll.Record
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) ListByEmployee(ctx context.Context, employeeID string, filter payroll.PayrollFilter) ([]payroll.Record, int64, error) {
	var out []payroll.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

// fakeEmployeeRepo backs the generation loop with a fixed roster.
type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
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
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error             { return nil }

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

// fakeAttendanceRepo serves pre-seeded attendance per employee.
type fakeAttendanceRepo struct {
	byEmployee map[string][]attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Attendance) error { return nil }

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return f.byEmployee[employeeID], int64(len(f.byEmployee[employeeID])), nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	return f.byEmployee[employeeID], nil
}

type noopNotificationService struct{}

func (noopNotificationService) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	return nil
}
func (noopNotificationService) GetNotifications(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	return &notification.NotificationListResponse{}, nil
}
func (noopNotificationService) GetUnreadCount(ctx context.Context, recipientID string) (int, error) {
	return 0, nil
}
func (noopNotificationService) MarkAsRead(ctx context.Context, recipientID string, req notification.MarkAsReadRequest) error {
	return nil
}
func (noopNotificationService) Stop() {}

func authContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte(testSecret), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func presentDays(count int, hoursPerDay float64) []attendance.Attendance {
	records := make([]attendance.Attendance, count)
	for i := range records {
		overtime := hoursPerDay - 8
		if overtime < 0 {
			overtime = 0
		}
		regular := hoursPerDay
		if regular > 8 {
			regular = 8
		}
		records[i] = attendance.Attendance{
			Status:        attendance.StatusPresent,
			TotalHours:    hoursPerDay,
			RegularHours:  regular,
			OvertimeHours: overtime,
		}
	}
	return records
}

func testEmployee(id, name string, salary int64) employee.Employee {
	return employee.Employee{
		ID:          id,
		FullName:    name,
		Email:       name + "@example.com",
		BasicSalary: decimal.NewFromInt(salary),
	}
}

func newTestService(
	payrollRepo *fakePayrollRepo,
	attRepo *fakeAttendanceRepo,
	empRepo *fakeEmployeeRepo,
) payroll.PayrollService {
	return NewPayrollService(payrollRepo, attRepo, empRepo, noopNotificationService{})
}

func TestPayrollService_GenerateForMonth_Success(t *testing.T) {
	payrollRepo := newFakePayrollRepo()
	attRepo := &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{
		"emp-1": presentDays(20, 8),
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "alice", 160000),
	}}
	svc := newTestService(payrollRepo, attRepo, empRepo)
	ctx := authContext(t, "admin-1", "admin")

	result, err := svc.GenerateForMonth(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2025})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 1, result.TotalEmployees)
	assert.Empty(t, result.Errors)

	rec, ok := payrollRepo.records[periodKey("emp-1", 7, 2025)]
	require.True(t, ok)
	assert.Equal(t, payroll.StatusProcessed, rec.Status)
	require.NotNil(t, rec.ProcessedBy)
	assert.Equal(t, "admin-1", *rec.ProcessedBy)
	assert.NotNil(t, rec.ProcessedDate)
	assert.True(t, rec.Breakdown.GrossPay.Equal(decimal.NewFromInt(160000)))
}

func TestPayrollService_GenerateForMonth_SkipsExistingPeriod(t *testing.T) {
	payrollRepo := newFakePayrollRepo()
	attRepo := &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "alice", 160000),
	}}
	svc := newTestService(payrollRepo, attRepo, empRepo)
	ctx := authContext(t, "admin-1", "admin")

	_, err := svc.GenerateForMonth(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2025})
	require.NoError(t, err)

	result, err := svc.GenerateForMonth(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2025})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "alice")
}

func TestPayrollService_GenerateForMonth_PartialFailure(t *testing.T) {
	payrollRepo := newFakePayrollRepo()
	payrollRepo.failFor["emp-2"] = errors.New("insert failed")
	attRepo := &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "alice", 160000),
		testEmployee("emp-2", "bob", 80000),
		testEmployee("emp-3", "carol", 90000),
	}}
	svc := newTestService(payrollRepo, attRepo, empRepo)
	ctx := authContext(t, "admin-1", "admin")

	result, err := svc.GenerateForMonth(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2025})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Generated)
	assert.Equal(t, 3, result.TotalEmployees)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "bob")
}

func TestPayrollService_GenerateForMonth_InvalidMonth(t *testing.T) {
	svc := newTestService(newFakePayrollRepo(), &fakeAttendanceRepo{}, &fakeEmployeeRepo{})
	ctx := authContext(t, "admin-1", "admin")

	_, err := svc.GenerateForMonth(ctx, payroll.GeneratePayrollRequest{Month: 13, Year: 2025})
	assert.Error(t, err)
}

func TestPayrollService_GetPayroll_OwnershipEnforced(t *testing.T) {
	payrollRepo := newFakePayrollRepo()
	attRepo := &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "alice", 160000),
	}}
	svc := newTestService(payrollRepo, attRepo, empRepo)

	_, err := svc.GenerateForMonth(authContext(t, "admin-1", "admin"),
		payroll.GeneratePayrollRequest{Month: 7, Year: 2025})
	require.NoError(t, err)

	rec := payrollRepo.records[periodKey("emp-1", 7, 2025)]

	// Owner reads their own record
	resp, err := svc.GetPayroll(authContext(t, "emp-1", "employee"), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, resp.ID)

	// Another employee gets not-found, never forbidden, to avoid leaking
	// the record's existence
	_, err = svc.GetPayroll(authContext(t, "emp-2", "employee"), rec.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)

	// Admin reads anyone's record
	_, err = svc.GetPayroll(authContext(t, "admin-1", "admin"), rec.ID)
	assert.NoError(t, err)
}

func TestPayrollService_UpdateStatus_PaidStampsDateOnce(t *testing.T) {
	payrollRepo := newFakePayrollRepo()
	attRepo := &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "alice", 160000),
	}}
	svc := newTestService(payrollRepo, attRepo, empRepo)
	ctx := authContext(t, "admin-1", "admin")

	_, err := svc.GenerateForMonth(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2025})
	require.NoError(t, err)
	rec := payrollRepo.records[periodKey("emp-1", 7, 2025)]

	first, err := svc.UpdateStatus(ctx, rec.ID, payroll.UpdateStatusRequest{Status: "Paid"})
	require.NoError(t, err)
	require.NotNil(t, first.PaidDate)

	time.Sleep(10 * time.Millisecond)

	second, err := svc.UpdateStatus(ctx, rec.ID, payroll.UpdateStatusRequest{Status: "Paid"})
	require.NoError(t, err)
	require.NotNil(t, second.PaidDate)
	assert.Equal(t, *first.PaidDate, *second.PaidDate)
}

func TestPayrollService_DeletePayroll_RejectsPaid(t *testing.T) {
	payrollRepo := newFakePayrollRepo()
	attRepo := &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "alice", 160000),
	}}
	svc := newTestService(payrollRepo, attRepo, empRepo)
	ctx := authContext(t, "admin-1", "admin")

	_, err := svc.GenerateForMonth(ctx, payroll.GeneratePayrollRequest{Month: 7, Year: 2025})
	require.NoError(t, err)
	rec := payrollRepo.records[periodKey("emp-1", 7, 2025)]

	_, err = svc.UpdateStatus(ctx, rec.ID, payroll.UpdateStatusRequest{Status: "Paid"})
	require.NoError(t, err)

	err = svc.DeletePayroll(ctx, rec.ID)
	assert.ErrorIs(t, err, payroll.ErrCannotDeletePaidRecord)

	// A Processed record for another period still deletes fine
	_, err = svc.GenerateForMonth(ctx, payroll.GeneratePayrollRequest{Month: 8, Year: 2025})
	require.NoError(t, err)
	other := payrollRepo.records[periodKey("emp-1", 8, 2025)]

	err = svc.DeletePayroll(ctx, other.ID)
	assert.NoError(t, err)
}

func TestPayrollService_CurrentMonthProjection(t *testing.T) {
	payrollRepo := newFakePayrollRepo()
	attRepo := &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{
		"emp-1": presentDays(10, 8),
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("emp-1", "alice", 160000),
	}}
	svc := newTestService(payrollRepo, attRepo, empRepo)
	ctx := authContext(t, "emp-1", "employee")

	resp, err := svc.CurrentMonthProjection(ctx)

	require.NoError(t, err)
	assert.Equal(t, 10, resp.Summary.DaysPresent)
	assert.InDelta(t, 80.0, resp.Summary.RegularHours, 0.001)
	// 80 regular hours at 1000/hr
	assert.True(t, resp.Breakdown.GrossPay.Equal(decimal.NewFromInt(80000)))
	// Full-month projection assumes the regular-hours baseline is reached
	assert.True(t, resp.ProjectedFull.GrossPay.Equal(decimal.NewFromInt(160000)))
	assert.True(t, resp.ProjectedFull.NetPay.LessThan(resp.ProjectedFull.GrossPay))
}
