package main

import (
	"testing"

	"med_adherence_keep/internal/config"
	"med_adherence_keep/internal/middleware"
	"med_adherence_keep/internal/repository"
	"med_adherence_keep/internal/service"

	"github.com/stretchr/testify/assert"
)

// main と同じ形 (&config.Cfg) で依存関係が組み立てられることを確認する。
// config.Cfg は値なので、ポインタを取るコンストラクタには必ず & 付きで渡す。
func TestDependencyWiring(t *testing.T) {
	config.Cfg.Mailer.Type = "log"

	tenantRepo := repository.NewGormTenantRepository()
	tokenRepo := repository.NewGormTokenRepository()
	medicationRepo := repository.NewGormMedicationRepository()
	logRepo := repository.NewGormLogRepository()

	mailer := service.NewMailer(&config.Cfg)
	authService := service.NewAuthService(nil, tenantRepo, tokenRepo, mailer, &config.Cfg)
	medicationService := service.NewMedicationService(nil, medicationRepo)
	logService := service.NewLogService(nil, medicationRepo, logRepo)
	dashboardService := service.NewDashboardService(nil, medicationRepo, logRepo, mailer, &config.Cfg)
	jwtMiddleware := middleware.JWTAuthMiddleware(&config.Cfg)

	assert.NotNil(t, mailer)
	assert.NotNil(t, authService)
	assert.NotNil(t, medicationService)
	assert.NotNil(t, logService)
	assert.NotNil(t, dashboardService)
	assert.NotNil(t, jwtMiddleware)
}
