package middleware

import (
	"context"
	"net/http"
	"strings"

	"deployment-ops/quartermaster/internal/common"
	"deployment-ops/quartermaster/internal/db/repositories"
)

type authContextKey string

const authDeploymentKey authContextKey = "auth_deployment_id"

// AuthMiddleware accepts either an active API key (X-API-Key header) or a
// presigned dashboard link token (Authorization: Bearer). Dashboard tokens
// grant read-only access scoped to one deployment.
func AuthMiddleware(keysRepo *repositories.KeysRepo, signer *common.URLSignerService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			switch {
			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}

				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}

				next.ServeHTTP(w, r)

			case strings.HasPrefix(authHeader, "Bearer "):
				tokenString := strings.TrimPrefix(authHeader, "Bearer ")

				token, err := signer.ValidateToken(r.Context(), tokenString)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid dashboard token", http.StatusUnauthorized)
					return
				}

				if r.Method != http.MethodGet {
					http.Error(w, "Forbidden. Dashboard tokens are read-only", http.StatusForbidden)
					return
				}

				// Burn the jti before serving so the link is single-use.
				signer.MarkTokenAsUsed(token.TokenID, token.ExpiresAt)

				ctx := context.WithValue(r.Context(), authDeploymentKey, token.DeploymentID)
				next.ServeHTTP(w, r.WithContext(ctx))

			default:
				http.Error(w, "Unauthorized. Missing credentials", http.StatusUnauthorized)
				return
			}
		})
	}
}

// AuthorizedDeployment returns the deployment scope of a dashboard token, or
// "" for full API-key access.
func AuthorizedDeployment(ctx context.Context) string {
	id, _ := ctx.Value(authDeploymentKey).(string)
	return id
}
