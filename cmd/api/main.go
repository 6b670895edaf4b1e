package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wagepoint/wagepoint-api/internal/config"
	appHTTP "github.com/wagepoint/wagepoint-api/internal/handler/http"
	"github.com/wagepoint/wagepoint-api/internal/pkg/database"
	"github.com/wagepoint/wagepoint-api/internal/pkg/jwt"
	"github.com/wagepoint/wagepoint-api/internal/repository/postgresql"
	attendanceService "github.com/wagepoint/wagepoint-api/internal/service/attendance"
	authService "github.com/wagepoint/wagepoint-api/internal/service/auth"
	employeeService "github.com/wagepoint/wagepoint-api/internal/service/employee"
	leaveService "github.com/wagepoint/wagepoint-api/internal/service/leave"
	notificationService "github.com/wagepoint/wagepoint-api/internal/service/notification"
	payrollService "github.com/wagepoint/wagepoint-api/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	if err := database.RunMigrations(cfg.Database.MigrationsPath, cfg.MigrateURL()); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	notifSvc := notificationService.NewNotificationService(notificationRepo, notificationService.Config{})
	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, notifSvc)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo, notifSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notifSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			LogLevel:       parseLogLevel(cfg.App.LogLevel),
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		leaveHandler,
		notificationHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}

	// Drain queued notifications before the pool goes away
	notifSvc.Stop()
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
