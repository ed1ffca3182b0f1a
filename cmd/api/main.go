package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/config"
	appHTTP "github.com/workforcelab/hrms-backend-go/internal/handler/http"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/cache"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/jwt"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/qr"
	"github.com/workforcelab/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workforcelab/hrms-backend-go/internal/service/attendance"
	authService "github.com/workforcelab/hrms-backend-go/internal/service/auth"
	employeeService "github.com/workforcelab/hrms-backend-go/internal/service/employee"
	leaveService "github.com/workforcelab/hrms-backend-go/internal/service/leave"
	organizationService "github.com/workforcelab/hrms-backend-go/internal/service/organization"
	payrollService "github.com/workforcelab/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	appCache := cache.New(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	customFieldRepo := postgresql.NewCustomFieldRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveApplicationRepo := postgresql.NewLeaveApplicationRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	salaryConfigRepo := postgresql.NewSalaryConfigRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	qrService := qr.NewService(appCache)

	authSvc := authService.NewService(userRepo, jwtService)
	employeeSvc := employeeService.NewService(db, employeeRepo, userRepo, appCache)
	organizationSvc := organizationService.NewService(organizationRepo, branchRepo, departmentRepo, shiftRepo, customFieldRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo, organizationRepo, qrService)
	leaveSvc := leaveService.NewService(leaveApplicationRepo, leaveBalanceRepo, employeeRepo)
	payrollSvc := payrollService.NewService(salaryConfigRepo, employeeRepo, attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	organizationHandler := appHTTP.NewOrganizationHandler(organizationSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, cfg.App.CompanyName)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{FrontendURL: cfg.App.FrontendURL, Env: cfg.App.Env},
		jwtService,
		authHandler,
		employeeHandler,
		organizationHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error:", err)
	}
}
