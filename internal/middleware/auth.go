package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"thumbnail-backend/internal/config"
	"thumbnail-backend/internal/models"
)

const (
	SessionKey = "session"
	UserIDKey  = "user_id"
)

const notLoggedInMessage = "You are not logged in."

// Session is the authenticated caller attached to a request.
type Session struct {
	IsLoggedIn bool
	UserID     uuid.UUID
}

// SessionFrom returns the session stored by AuthMiddleware. ok is false when
// the request carries no logged in session.
func SessionFrom(c *gin.Context) (Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return Session{}, false
	}
	s, ok := v.(Session)
	if !ok || !s.IsLoggedIn || s.UserID == uuid.Nil {
		return Session{}, false
	}
	return s, true
}

// AuthMiddleware verifies the Supabase HS256 access token and stores the
// caller's Session. Every failure answers 401 with the same message.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c.GetHeader("Authorization"), cfg.SupabaseJWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   err.Error(),
				Message: notLoggedInMessage,
			})
			return
		}

		c.Set(SessionKey, Session{IsLoggedIn: true, UserID: userID})
		c.Set(UserIDKey, userID.String())
		c.Next()
	}
}

func authenticate(header, secret string) (uuid.UUID, error) {
	if header == "" {
		return uuid.Nil, errors.New("missing authorization header")
	}

	scheme, tokenString, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return uuid.Nil, errors.New("invalid authorization header format")
	}
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return uuid.Nil, errors.New("empty token")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if secret == "" {
			return nil, jwt.ErrSignatureInvalid
		}
		// Supabase signs access tokens with the project JWT secret.
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, errors.New("token has expired")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return uuid.Nil, errors.New("token signature is invalid")
		default:
			return uuid.Nil, errors.New("invalid token")
		}
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, errors.New("missing user id in token")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("user id in token is not a uuid")
	}
	return userID, nil
}
