package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	"github.com/HuongNguyenDev/beautycare-admin/internal/cache"
	"github.com/HuongNguyenDev/beautycare-admin/internal/config"
	"github.com/HuongNguyenDev/beautycare-admin/internal/counter"
	booking "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/handlers"
	infraRepo "github.com/HuongNguyenDev/beautycare-admin/internal/infra/repository"
	"github.com/HuongNguyenDev/beautycare-admin/internal/middleware"
	ucAppointment "github.com/HuongNguyenDev/beautycare-admin/internal/usecase/appointment"
	ucDiploma "github.com/HuongNguyenDev/beautycare-admin/internal/usecase/diploma"
	ucStats "github.com/HuongNguyenDev/beautycare-admin/internal/usecase/stats"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, c *cache.Cache, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	diplomaRepo := infraRepo.NewDiplomaGormRepository(db)

	auditLogger := audit.New(db, cfg.Timezone)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	counterDispatcher := counter.NewDispatcher(diplomaRepo)

	policy := booking.ParsePolicy(cfg.EligibilityPolicy)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		policy,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		bookingRepo,
		auditDispatcher,
		policy,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		bookingRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointmentsWithDetails(
		bookingRepo,
	)

	eligibleEmployeesUC := ucAppointment.NewListEligibleEmployees(
		bookingRepo,
		policy,
	)

	// ======================================================
	// USE CASES — DIPLOMAS / STATS
	// ======================================================
	createDiplomaUC := ucDiploma.NewCreateDiploma(
		diplomaRepo,
		auditDispatcher,
	)

	searchDiplomasUC := ucDiploma.NewSearchDiplomas(
		diplomaRepo,
		c,
	)

	lookupDiplomaUC := ucDiploma.NewLookupDiploma(
		diplomaRepo,
		counterDispatcher,
	)

	revenueReportUC := ucStats.NewRevenueReport(
		bookingRepo,
		c,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	employeeHandler := handlers.NewEmployeeHandler(db, auditDispatcher)
	reviewHandler := handlers.NewReviewHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		auditDispatcher,
		createAppointmentUC,
		rescheduleAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
		eligibleEmployeesUC,
	)

	diplomaBookHandler := handlers.NewDiplomaBookHandler(db, auditDispatcher)
	diplomaHandler := handlers.NewDiplomaHandler(db, auditDispatcher, createDiplomaUC)
	decisionHandler := handlers.NewDecisionHandler(db, auditDispatcher)

	statsHandler := handlers.NewStatsHandler(revenueReportUC)
	publicSearchHandler := handlers.NewPublicSearchHandler(searchDiplomasUC, lookupDiplomaUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC SEARCH
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/diplomas/search", publicSearchHandler.Search)
			publicAPI.GET("/diplomas/:id", publicSearchHandler.Lookup)
		}

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)
		api.GET("/services/:id/eligible-employees", appointmentHandler.EligibleEmployees)

		api.GET("/employees", employeeHandler.List)
		api.POST("/employees", employeeHandler.Create)
		api.PUT("/employees/:id", employeeHandler.Update)
		api.DELETE("/employees/:id", employeeHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

		// ------------------------------
		// REVIEWS
		// ------------------------------
		api.GET("/reviews", reviewHandler.List)
		api.POST("/reviews", reviewHandler.Create)
		api.PUT("/reviews/:id", reviewHandler.Update)
		api.DELETE("/reviews/:id", reviewHandler.Delete)

		// ------------------------------
		// DIPLOMA REGISTRY
		// ------------------------------
		api.GET("/diploma-books", diplomaBookHandler.List)
		api.POST("/diploma-books", diplomaBookHandler.Create)
		api.PUT("/diploma-books/:id", diplomaBookHandler.Update)
		api.DELETE("/diploma-books/:id", diplomaBookHandler.Delete)

		api.GET("/diplomas", diplomaHandler.List)
		api.POST("/diplomas", diplomaHandler.Create)
		api.PUT("/diplomas/:id", diplomaHandler.Update)
		api.DELETE("/diplomas/:id", diplomaHandler.Delete)

		api.GET("/graduation-decisions", decisionHandler.List)
		api.POST("/graduation-decisions", decisionHandler.Create)
		api.PUT("/graduation-decisions/:id", decisionHandler.Update)
		api.DELETE("/graduation-decisions/:id", decisionHandler.Delete)

		// ------------------------------
		// REPORTING
		// ------------------------------
		api.GET("/stats/revenue", statsHandler.Revenue)
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
