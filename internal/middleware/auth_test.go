package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bizdocs_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret"

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(middleware.AuthConfig{
		JWTSecret:         testSecret,
		SessionCookieName: "session",
	}))
	suite.router.GET("/me", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func (suite *AuthMiddlewareTestSuite) do(req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func (suite *AuthMiddlewareTestSuite) TestBearerToken() {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(suite.T(), testSecret, jwt.SigningMethodHS256, validClaims()))

	w, body := suite.do(req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("user-123", body["user_id"])
}

func (suite *AuthMiddlewareTestSuite) TestSessionCookie() {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: signToken(suite.T(), testSecret, jwt.SigningMethodHS256, validClaims())})

	w, body := suite.do(req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("user-123", body["user_id"])
}

func (suite *AuthMiddlewareTestSuite) TestMissingToken() {
	w, body := suite.do(httptest.NewRequest(http.MethodGet, "/me", nil))
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(false, body["success"])
	suite.Equal("Authentication required", body["error"])
}

func (suite *AuthMiddlewareTestSuite) TestWrongSecret() {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(suite.T(), "other-secret", jwt.SigningMethodHS256, validClaims()))

	w, body := suite.do(req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid session", body["error"])
}

func (suite *AuthMiddlewareTestSuite) TestExpiredToken() {
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(suite.T(), testSecret, jwt.SigningMethodHS256, claims))

	w, body := suite.do(req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Session has expired", body["error"])
}

func (suite *AuthMiddlewareTestSuite) TestRejectsOtherAlgorithms() {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(suite.T(), testSecret, jwt.SigningMethodHS512, validClaims()))

	w, _ := suite.do(req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestMissingSubject() {
	claims := validClaims()
	claims.Subject = ""
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(suite.T(), testSecret, jwt.SigningMethodHS256, claims))

	w, _ := suite.do(req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestMalformedHeader() {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")

	w, _ := suite.do(req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
