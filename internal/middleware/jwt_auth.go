package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// AccessTokenCookie is the name of the HTTP-only cookie carrying the JWT.
const AccessTokenCookie = "accessToken"

// JWTSecret returns the signing secret shared by token issuance and verification.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "supersecretjwtkey"
	}
	return secret
}

// JWTAuthMiddleware checks for a valid JWT and extracts user claims.
// The token is taken from the accessToken cookie, falling back to the
// Authorization header.
func JWTAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := ""

			if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
				tokenString = cookie.Value
			} else {
				authHeader := c.Request().Header.Get("Authorization")
				if authHeader == "" {
					return echo.NewHTTPError(http.StatusUnauthorized, "Not logged in!")
				}
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
				}
				tokenString = parts[1]
			}

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(JWTSecret()), nil
			})

			if err != nil {
				if err == jwt.ErrSignatureInvalid {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token signature")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid!")
			}

			if !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid!")
			}

			// Store user claims in context
			c.Set("user", claims)

			return next(c)
		}
	}
}
