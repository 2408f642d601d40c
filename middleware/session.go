package middleware

import (
	"fmt"
	"strings"
	"time"

	"lmsweb/config"
	"lmsweb/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookieName is the single cookie holding both the upstream API
// token and the user profile. Keeping them together means they survive
// reloads together and are cleared together on logout.
const SessionCookieName = "lms_session"

const sessionLocal = "session"

// IssueSession signs a session value carrying the upstream token and the
// user profile.
func IssueSession(session models.Session) (string, error) {
	claims := jwt.MapClaims{
		"apiToken": session.Token,
		"userId":   session.User.ID,
		"name":     session.User.Name,
		"email":    session.User.Email,
		"role":     session.User.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Duration(config.AppConfig.SessionTTL) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.SessionSecret))
}

// SetSessionCookie persists the signed session on the client.
func SetSessionCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   config.AppConfig.SessionTTL * 3600,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// ClearSessionCookie removes the session: token and profile leave together.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// SessionMiddleware requires a valid session, from the session cookie or a
// Bearer header, and stores it in the request context for handlers.
func SessionMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(SessionCookieName)
	if tokenString == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[len("Bearer "):]
		}
	}
	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue!", nil)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired session!", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["apiToken"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid session payload!", nil)
	}

	session := models.Session{
		Token: claimString(claims, "apiToken"),
		User: models.User{
			ID:    claimString(claims, "userId"),
			Name:  claimString(claims, "name"),
			Email: claimString(claims, "email"),
			Role:  claimString(claims, "role"),
		},
	}
	if session.Token == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid session payload!", nil)
	}

	c.Locals(sessionLocal, session)
	return c.Next()
}

// CurrentSession reads the session stored by SessionMiddleware.
func CurrentSession(c *fiber.Ctx) (models.Session, bool) {
	session, ok := c.Locals(sessionLocal).(models.Session)
	return session, ok
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
