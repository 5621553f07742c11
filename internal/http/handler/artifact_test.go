package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"fluxera.app/api/common/markdown"
	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/docgen"
	"fluxera.app/api/internal/http/handler"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
	"fluxera.app/api/internal/source"
)

var _ = Describe("ArtifactHandler", func() {
	const base = "/api/artifacts/workspace-artifacts/100"

	var (
		router *gin.Engine
		svc    *mockArtifactService
	)

	BeforeEach(func() {
		router = newAuthedRouter()
		svc = &mockArtifactService{}
		h := handler.NewArtifactHandler(svc)
		g := router.Group("/api/artifacts/workspace-artifacts/:wsId")
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/:artifactId", h.Get)
		g.POST("/:artifactId/refresh", h.Refresh)
		g.POST("/:artifactId/documentation", h.GenerateDocumentation)
		g.POST("/:artifactId/documentation/chat", h.ChatDocumentation)
		g.GET("/:artifactId/documentation/blocks", h.DocumentationBlocks)
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Create", func() {
		It("passes the parsed ids to the service and wraps the result", func() {
			var got service.CreateArtifactInput
			svc.createFn = func(_ context.Context, userID, workspaceID int64, in service.CreateArtifactInput) (*model.Artifact, error) {
				Expect(userID).To(Equal(testUser.ID))
				Expect(workspaceID).To(Equal(int64(100)))
				got = in
				return &model.Artifact{ID: 400, WorkspaceID: 100, Name: in.Name, Data: json.RawMessage(`{"a":1}`)}, nil
			}

			w := do(http.MethodPost, base, map[string]string{
				"name":           "Orders",
				"technical_name": "orders",
				"source_api_id":  "300",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(got.SourceAPIID).To(Equal(int64(300)))
			var resp map[string]map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["data"]["id"]).To(Equal("400"))
			Expect(resp["data"]["data"]).To(Equal(map[string]any{"a": float64(1)}))
			Expect(resp["data"]["documentation_state"]).To(Equal("absent"))
		})

		It("maps a missing capability to 403", func() {
			svc.createFn = func(context.Context, int64, int64, service.CreateArtifactInput) (*model.Artifact, error) {
				return nil, access.ErrForbidden
			}

			w := do(http.MethodPost, base, map[string]string{"name": "a", "technical_name": "b", "source_api_id": "1"})

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Forbidden"}`))
		})

		It("maps an invalid source payload to 422", func() {
			svc.createFn = func(context.Context, int64, int64, service.CreateArtifactInput) (*model.Artifact, error) {
				return nil, source.ErrInvalidPayload
			}

			w := do(http.MethodPost, base, map[string]string{"name": "a", "technical_name": "b", "source_api_id": "1"})

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("returns 400 for a missing body field", func() {
			w := do(http.MethodPost, base, map[string]string{"name": "a"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	It("returns 400 for a malformed workspace id", func() {
		w := do(http.MethodGet, "/api/artifacts/workspace-artifacts/abc", nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("maps refresh without a source to 422", func() {
		svc.refreshFn = func(context.Context, int64, int64, int64) (*model.Artifact, error) {
			return nil, service.ErrNoSourceConfigured
		}

		w := do(http.MethodPost, base+"/400/refresh", nil)

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("maps unknown artifacts to 404", func() {
		svc.getFn = func(context.Context, int64, int64, int64) (*model.Artifact, error) {
			return nil, service.ErrArtifactNotFound
		}

		w := do(http.MethodGet, base+"/400", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"artifact not found"}`))
	})

	DescribeTable("documentation failures",
		func(err error, status int) {
			svc.generateFn = func(context.Context, int64, int64, int64) (*model.Artifact, error) {
				return nil, err
			}
			w := do(http.MethodPost, base+"/400/documentation", nil)
			Expect(w.Code).To(Equal(status))
		},
		Entry("timeout", &docgen.RetryError{Op: "generate", Attempts: 3, Last: docgen.ErrTimedOut}, http.StatusGatewayTimeout),
		Entry("failed run", &docgen.RetryError{Op: "generate", Attempts: 3, Last: &docgen.AssistantRunFailedError{Status: "failed"}}, http.StatusBadGateway),
		Entry("invalid response", docgen.ErrInvalidResponseFormat, http.StatusBadGateway),
		Entry("not configured", docgen.ErrDisabled, http.StatusServiceUnavailable),
	)

	It("forwards chat instructions", func() {
		svc.updateDocumentationFn = func(_ context.Context, _, _, _ int64, current, instruction string) (*model.Artifact, error) {
			Expect(current).To(Equal("old"))
			Expect(instruction).To(Equal("add examples"))
			doc := "new"
			return &model.Artifact{ID: 400, Documentation: &doc}, nil
		}

		w := do(http.MethodPost, base+"/400/documentation/chat", map[string]string{
			"current_documentation": "old",
			"instruction":           "add examples",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"documentation_state":"present"`))
	})

	It("returns documentation blocks", func() {
		svc.blocksFn = func(context.Context, int64, int64, int64) ([]markdown.Block, error) {
			return []markdown.Block{{Kind: markdown.BlockHeading, Level: 1, Text: "Orders"}}, nil
		}

		w := do(http.MethodGet, base+"/400/documentation/blocks", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"data":[{"kind":"heading","level":1,"text":"Orders"}]}`))
	})
})
