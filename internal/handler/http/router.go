package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workforcelab/hrms-backend-go/internal/domain/user"
	"github.com/workforcelab/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler *AuthHandler,
	employeeHandler *EmployeeHandler,
	organizationHandler *OrganizationHandler,
	attendanceHandler *AttendanceHandler,
	leaveHandler *LeaveHandler,
	payrollHandler *PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
			r.Post("/security-questions/verify", authHandler.VerifySecurityAnswer)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", authHandler.Me)
				r.Post("/change-password", authHandler.ChangePassword)
				r.Post("/security-questions", authHandler.SetSecurityQuestions)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RolePlatformAdmin, user.RoleOrgAdmin, user.RoleHRAdmin))
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/organization", func(r chi.Router) {
				r.Get("/", organizationHandler.Get)
				r.Get("/branches", organizationHandler.ListBranches)
				r.Get("/departments", organizationHandler.ListDepartments)
				r.Get("/shifts", organizationHandler.ListShifts)
				r.Get("/custom-fields", organizationHandler.ListCustomFields)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RolePlatformAdmin, user.RoleOrgAdmin))
					r.Put("/", organizationHandler.Update)
					r.Put("/timing", organizationHandler.SaveTiming)

					r.Post("/branches", organizationHandler.CreateBranch)
					r.Put("/branches/{id}", organizationHandler.UpdateBranch)
					r.Delete("/branches/{id}", organizationHandler.DeleteBranch)

					r.Post("/departments", organizationHandler.CreateDepartment)
					r.Put("/departments/{id}", organizationHandler.UpdateDepartment)
					r.Delete("/departments/{id}", organizationHandler.DeleteDepartment)

					r.Post("/shifts", organizationHandler.CreateShift)
					r.Put("/shifts/{id}", organizationHandler.UpdateShift)
					r.Delete("/shifts/{id}", organizationHandler.DeleteShift)

					r.Post("/custom-fields", organizationHandler.CreateCustomField)
					r.Put("/custom-fields/{id}", organizationHandler.UpdateCustomField)
					r.Delete("/custom-fields/{id}", organizationHandler.DeleteCustomField)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)

				// Approvers
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RolePlatformAdmin, user.RoleOrgAdmin, user.RoleHRAdmin, user.RoleManager))
					r.Post("/{id}/decision", attendanceHandler.Decide)
					r.Post("/bulk-decision", attendanceHandler.BulkDecide)
					r.Post("/qr/{branchId}", attendanceHandler.MintQR)
				})

				r.Get("/qr/{token}/image", attendanceHandler.RenderQR)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/", leaveHandler.List)
				r.Get("/{id}", leaveHandler.Get)
				r.Get("/balance/{employeeId}", leaveHandler.Balance)

				// Approvers
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RolePlatformAdmin, user.RoleOrgAdmin, user.RoleHRAdmin, user.RoleManager))
					r.Post("/{id}/decision", leaveHandler.Decide)
					r.Post("/bulk-decision", leaveHandler.BulkDecide)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RolePlatformAdmin, user.RoleOrgAdmin, user.RoleHRAdmin))
					r.Put("/allocation", leaveHandler.SetAllocation)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RolePlatformAdmin, user.RoleOrgAdmin, user.RoleHRAdmin))
				r.Get("/config", payrollHandler.GetConfig)
				r.Put("/config", payrollHandler.SaveConfig)
				r.Post("/preview", payrollHandler.Preview)
				r.Get("/sheet", payrollHandler.Sheet)
				r.Get("/sheet/export", payrollHandler.Export)
			})
		})
	})

	return r
}
