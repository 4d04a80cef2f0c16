package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by BearerAuth
const (
	ContextSubject  = "subject"
	ContextUserRole = "userRole"
)

// BearerAuth validates HMAC signed JWT bearer tokens and stores the subject
// and role claims in the gin context for RequireRole
func BearerAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		// RFC 6750: Extract Bearer token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithAuthError(c, http.StatusUnauthorized, "authorization_required",
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_request",
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_token", "Bearer token is empty")
			return
		}

		claims, err := parseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_token", err.Error())
			return
		}

		role, err := extractRole(claims)
		if err != nil {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_token", err.Error())
			return
		}
		c.Set(ContextUserRole, role)

		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			c.Set(ContextSubject, sub)
		}

		c.Next()
	}
}

// respondWithAuthError responds with RFC 6750 compliant error format
func respondWithAuthError(c *gin.Context, status int, errorCode, description string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":             errorCode,
		"error_description": description,
	})
}

// parseJWTToken validates and parses a JWT token using HMAC signing method
func parseJWTToken(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens whose header switches the algorithm family
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	return claims, nil
}

// parseAndValidateJWT parses the JWT and performs strict time validation
func parseAndValidateJWT(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	claims, err := parseJWTToken(tokenString, jwtSecret)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp == nil {
		return nil, fmt.Errorf("token missing required 'exp' claim")
	}
	if exp.Before(now) {
		return nil, fmt.Errorf("token has expired")
	}

	nbf, err := claims.GetNotBefore()
	if err != nil {
		return nil, fmt.Errorf("invalid nbf claim: %w", err)
	}
	if nbf != nil && nbf.After(now) {
		return nil, fmt.Errorf("token not yet valid")
	}

	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now) {
		return nil, fmt.Errorf("token issued in the future")
	}

	return claims, nil
}

// extractRole extracts and validates the role from JWT claims
// All tokens must have an explicit role claim - no defaults are provided
func extractRole(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("token missing required 'role' claim")
	}

	allowedRoles := map[string]bool{
		"admin": true,
		"user":  true,
	}
	if !allowedRoles[role] {
		return "", fmt.Errorf("invalid role '%s'. Allowed roles: admin, user", role)
	}

	return role, nil
}
