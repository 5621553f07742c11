package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"fluxera.app/api/internal/http/handler"
	"fluxera.app/api/internal/http/middleware"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	session := &model.Session{ID: 9, UserID: 7, Token: "tok-123", ExpiresAt: time.Now().Add(time.Hour)}
	user := &model.User{ID: 7, Name: "Ada", Email: "ada@example.com"}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAuthService{}
		h := handler.NewAuthHandler(svc, "https://app.example.com", false)
		router.POST("/register", h.Register)
		router.POST("/login", h.Login)
		router.POST("/logout", h.Logout)
		router.GET("/callback", h.Callback)
		router.GET("/current", middleware.RequireAuth(svc), h.Current)
	})

	post := func(path string, body any) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Register", func() {
		It("returns 201 and sets the session cookie", func() {
			svc.registerFn = func(_ context.Context, name, email, _ string) (*model.User, *model.Session, error) {
				return &model.User{ID: 7, Name: name, Email: email}, session, nil
			}

			w := post("/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "long-enough"})

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp struct {
				Data struct {
					User  map[string]any `json:"user"`
					Token string         `json:"token"`
				} `json:"data"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Data.User["id"]).To(Equal("7"))
			Expect(resp.Data.Token).To(Equal("tok-123"))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "=tok-123"))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("Max-Age=2592000"))
		})

		It("returns 409 when the email is taken", func() {
			svc.registerFn = func(context.Context, string, string, string) (*model.User, *model.Session, error) {
				return nil, nil, service.ErrEmailTaken
			}

			w := post("/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "long-enough"})

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 400 for a short password", func() {
			w := post("/register", map[string]string{"name": "Ada", "email": "ada@example.com", "password": "short"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Login", func() {
		It("returns 401 on bad credentials", func() {
			svc.loginFn = func(context.Context, string, string) (*model.User, *model.Session, error) {
				return nil, nil, service.ErrInvalidCredentials
			}

			w := post("/login", map[string]string{"email": "ada@example.com", "password": "nope"})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 500 with a generic message on unexpected errors", func() {
			svc.loginFn = func(context.Context, string, string) (*model.User, *model.Session, error) {
				return nil, nil, errors.New("connection reset")
			}

			w := post("/login", map[string]string{"email": "ada@example.com", "password": "secret"})

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection reset"))
		})
	})

	Describe("Logout", func() {
		It("deletes the session named by the cookie", func() {
			var got string
			svc.logoutFn = func(_ context.Context, token string) error {
				got = token
				return nil
			}

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tok-123"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got).To(Equal("tok-123"))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("Max-Age=0"))
		})
	})

	Describe("Current", func() {
		It("returns 401 without a session", func() {
			req := httptest.NewRequest(http.MethodGet, "/current", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Unauthorized"}`))
		})

		It("accepts a bearer token", func() {
			svc.validateSessionFn = func(_ context.Context, token string) (*model.User, error) {
				if token == "tok-123" {
					return user, nil
				}
				return nil, service.ErrSessionExpired
			}

			req := httptest.NewRequest(http.MethodGet, "/current", nil)
			req.Header.Set("Authorization", "Bearer tok-123")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"data":{"id":"7","name":"Ada","email":"ada@example.com"}}`))
		})
	})

	Describe("Callback", func() {
		It("rejects a state that does not match the cookie", func() {
			req := httptest.NewRequest(http.MethodGet, "/callback?code=abc&state=forged", nil)
			req.AddCookie(&http.Cookie{Name: "fluxera_oauth_state", Value: "real"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
			Expect(w.Header().Get("Location")).To(Equal("https://app.example.com?auth_error=invalid_state"))
		})

		It("sets the session and redirects to the dashboard", func() {
			svc.handleCallbackFn = func(context.Context, string) (*model.User, *model.Session, error) {
				return user, session, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/callback?code=abc&state=s1", nil)
			req.AddCookie(&http.Cookie{Name: "fluxera_oauth_state", Value: "s1"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
			Expect(w.Header().Get("Location")).To(Equal("https://app.example.com/dashboard"))
			Expect(w.Header().Values("Set-Cookie")).To(ContainElement(ContainSubstring("fluxera_session=tok-123")))
		})
	})
})
