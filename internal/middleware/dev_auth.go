// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"med_adherence_keep/internal/model"
	"med_adherence_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevTenantContextMiddleware は開発時用ミドルウェアです。
// X-Tenant-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでのテナント存在チェックは行いません。
func DevTenantContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		tenantIDStr := r.Header.Get("X-Tenant-ID")
		if tenantIDStr == "" {
			// 開発時でも Tenant ID は必須とする (API利用のために)
			logger.Warn("[DEV AUTH] Failed: X-Tenant-ID header missing")
			webutil.RespondWithError(w, logger, http.StatusUnauthorized, "[DEV] Unauthorized: Missing X-Tenant-ID header")
			return
		}

		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Tenant-ID format", "value", tenantIDStr)
			webutil.RespondWithError(w, logger, http.StatusUnauthorized, "[DEV] Unauthorized: Invalid X-Tenant-ID format")
			return
		}

		ctx := context.WithValue(r.Context(), model.TenantIDKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
