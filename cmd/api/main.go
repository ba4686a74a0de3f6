package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/config"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	appHTTP "github.com/cronos-hq/attendance-compliance-go/internal/handler/http"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/cache"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/cron"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/database"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/jwt"
	"github.com/cronos-hq/attendance-compliance-go/internal/repository/cached"
	"github.com/cronos-hq/attendance-compliance-go/internal/repository/postgresql"
	analyticsService "github.com/cronos-hq/attendance-compliance-go/internal/service/analytics"
	complianceService "github.com/cronos-hq/attendance-compliance-go/internal/service/compliance"
	reportService "github.com/cronos-hq/attendance-compliance-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	store := cache.NewStore(time.Minute)
	defer store.Close()

	punchRepo := cached.NewPunchRepository(
		postgresql.NewPunchRepository(db),
		store,
		cached.PunchCacheConfig{
			CurrentTTL:    cfg.Cache.CurrentTTL,
			HistoricalTTL: cfg.Cache.HistoricalTTL,
		},
	)
	employeeRepo := cached.NewEmployeeRepository(
		postgresql.NewEmployeeRepository(db),
		store,
		cfg.Cache.EmployeeTTL,
	)

	rulePolicy := compliance.RulePolicy{
		MinDaysPerMonth:     cfg.Policy.MinDaysPerMonth,
		MinHoursPerDay:      cfg.Policy.MinHoursPerDay,
		MinDaysMeetingHours: cfg.Policy.MinDaysMeetingHours,
		MaxRequiredWeeks:    cfg.Policy.MaxRequiredWeeks,
	}
	analyzerPolicy := compliance.AnalyzerPolicy{
		DailyHourTarget:   cfg.Policy.DailyHourTarget,
		CompliantDays:     cfg.Policy.CompliantDays,
		PartialDays:       cfg.Policy.PartialDays,
		HoursPartialRatio: cfg.Policy.HoursPartialRatio,
		MaxDaysPerWeek:    cfg.Policy.MaxDaysPerWeek,
	}

	complianceSvc := complianceService.NewComplianceService(punchRepo, rulePolicy)
	analyticsSvc := analyticsService.NewAnalyticsService(punchRepo, employeeRepo, analyzerPolicy)
	reportSvc := reportService.NewReportService(analyticsSvc)

	var jwtService jwt.Service
	if cfg.AuthEnabled() {
		jwtService = jwt.NewJWTService(cfg.Auth.Secret, cfg.Auth.TokenExpiration)
	}

	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	complianceHandler := appHTTP.NewComplianceHandler(complianceSvc, rulePolicy)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:        cfg.App.Env,
			JWTService: jwtService,
		},
		employeeHandler,
		complianceHandler,
		analyticsHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	refreshJob := cron.NewCacheRefreshJob(store, punchRepo, employeeRepo)
	scheduler.AddJob("cache-refresh", cfg.Cache.RefreshInterval, refreshJob.Run)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
