package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"streamtube/domain/dto"
	"streamtube/infrastructure/logger"
)

// Auth guards the /api group. A valid bearer token puts user_id and username
// into the request context for the handlers downstream.
func Auth(secretKey string) gin.HandlerFunc {
	unauthorized := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}

	return func(ctx *gin.Context) {
		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}
		parts := strings.Split(authorization, "Bearer ")
		if len(parts) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid {
			logger.GetLogger().WithField("error", err).Info("Rejected token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}
		username, _ := claims["username"].(string)

		ctx.Set("user_id", userID)
		ctx.Set("username", username)
		ctx.Next()
	}
}
