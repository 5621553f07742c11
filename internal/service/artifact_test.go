package service_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"fluxera.app/api/common/markdown"
	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/docgen"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
	"fluxera.app/api/internal/source"
	"fluxera.app/api/internal/store"
)

var _ = Describe("ArtifactService", func() {
	const (
		linkID     int64 = 300
		artifactID int64 = 400
		orphanID   int64 = 401
	)

	var (
		ctx       context.Context
		w         *world
		artifacts *mockArtifactStore
		links     *mockAPILinkStore
		features  *mockFeatureStore
		projects  *mockProjectStore
		fetcher   *mockFetcher
		docs      *mockGenerator
		svc       service.ArtifactService
	)

	BeforeEach(func() {
		ctx = context.Background()
		w = newWorld()
		links = &mockAPILinkStore{
			getByIDFn: func(_ context.Context, id int64) (*model.APILink, error) {
				if id != linkID {
					return nil, store.ErrNotFound
				}
				return &model.APILink{ID: linkID, WorkspaceID: workspaceID, Name: "Backend", URL: "https://api.example.com/export"}, nil
			},
		}
		stored := map[int64]*model.Artifact{
			artifactID: {
				ID:            artifactID,
				WorkspaceID:   workspaceID,
				Name:          "Orders",
				TechnicalName: "orders",
				Data:          json.RawMessage(`{"orders":[]}`),
				APIURL:        strPtr("https://api.example.com/export"),
				Documentation: strPtr("# Orders\n\n- one\n- two"),
			},
			orphanID: {
				ID:            orphanID,
				WorkspaceID:   workspaceID,
				Name:          "Manual",
				TechnicalName: "manual",
				Data:          json.RawMessage(`[]`),
			},
		}
		artifacts = &mockArtifactStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Artifact, error) {
				if a, ok := stored[id]; ok {
					copied := *a
					return &copied, nil
				}
				return nil, store.ErrNotFound
			},
		}
		features = &mockFeatureStore{}
		projects = &mockProjectStore{}
		fetcher = &mockFetcher{}
		docs = &mockGenerator{}
		svc = service.NewArtifactService(artifacts, links, features, projects, w.gate, fetcher, docs)
	})

	Describe("Create", func() {
		input := service.CreateArtifactInput{Name: "Orders", TechnicalName: "orders", SourceAPIID: linkID}

		It("fetches the payload from the linked api", func() {
			var gotBase, gotName string
			fetcher.fetchFn = func(_ context.Context, baseURL, technicalName string) (json.RawMessage, error) {
				gotBase, gotName = baseURL, technicalName
				return json.RawMessage(`{"orders":[1,2]}`), nil
			}

			artifact, err := svc.Create(ctx, editorID, workspaceID, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(gotBase).To(Equal("https://api.example.com/export"))
			Expect(gotName).To(Equal("orders"))
			Expect(string(artifact.Data)).To(Equal(`{"orders":[1,2]}`))
			Expect(*artifact.APIURL).To(Equal("https://api.example.com/export"))
		})

		It("forbids a role without artifact:post while the owner succeeds", func() {
			_, err := svc.Create(ctx, viewerID, workspaceID, input)
			Expect(err).To(MatchError(access.ErrForbidden))
			Expect(fetcher.calls).To(Equal(0))

			_, err = svc.Create(ctx, ownerID, workspaceID, input)
			Expect(err).NotTo(HaveOccurred())
		})

		It("does not persist when the source returns an invalid payload", func() {
			fetcher.fetchFn = func(context.Context, string, string) (json.RawMessage, error) {
				return nil, source.ErrInvalidPayload
			}

			_, err := svc.Create(ctx, ownerID, workspaceID, input)

			Expect(err).To(MatchError(source.ErrInvalidPayload))
			Expect(artifacts.createCalls).To(Equal(0))
		})

		It("validates names and the source link", func() {
			_, err := svc.Create(ctx, ownerID, workspaceID, service.CreateArtifactInput{Name: "x", SourceAPIID: linkID})
			Expect(err).To(MatchError(service.ErrTechnicalNameRequired))

			_, err = svc.Create(ctx, ownerID, workspaceID, service.CreateArtifactInput{Name: "x", TechnicalName: "x", SourceAPIID: 1})
			Expect(err).To(MatchError(service.ErrAPILinkNotFound))
		})
	})

	Describe("Refresh", func() {
		It("fails without fetching when no source is stored", func() {
			_, err := svc.Refresh(ctx, ownerID, workspaceID, orphanID)

			Expect(err).To(MatchError(service.ErrNoSourceConfigured))
			Expect(fetcher.calls).To(Equal(0))
		})

		It("replaces the data only", func() {
			var saved json.RawMessage
			artifacts.updateDataFn = func(_ context.Context, id int64, data json.RawMessage) (*model.Artifact, error) {
				saved = data
				return &model.Artifact{ID: id, Data: data}, nil
			}

			_, err := svc.Refresh(ctx, editorID, workspaceID, artifactID)

			Expect(err).NotTo(HaveOccurred())
			Expect(string(saved)).To(Equal(`{"ok":true}`))
		})

		It("leaves stored data alone when the fetch fails", func() {
			fetcher.fetchFn = func(context.Context, string, string) (json.RawMessage, error) {
				return nil, source.ErrExternalFetchFailed
			}
			artifacts.updateDataFn = func(context.Context, int64, json.RawMessage) (*model.Artifact, error) {
				Fail("data must not be written")
				return nil, nil
			}

			_, err := svc.Refresh(ctx, ownerID, workspaceID, artifactID)

			Expect(err).To(MatchError(source.ErrExternalFetchFailed))
		})
	})

	Describe("Get", func() {
		It("hides artifacts from other workspaces", func() {
			artifacts.getByIDFn = func(_ context.Context, id int64) (*model.Artifact, error) {
				return &model.Artifact{ID: id, WorkspaceID: 999}, nil
			}

			_, err := svc.Get(ctx, ownerID, workspaceID, artifactID)

			Expect(err).To(MatchError(service.ErrArtifactNotFound))
		})

		It("lets visitors read", func() {
			artifact, err := svc.Get(ctx, visitorID, workspaceID, artifactID)

			Expect(err).NotTo(HaveOccurred())
			Expect(artifact.Name).To(Equal("Orders"))
		})
	})

	Describe("GenerateDocumentation", func() {
		It("stores the generated text", func() {
			doc, err := svc.GenerateDocumentation(ctx, ownerID, workspaceID, artifactID)

			Expect(err).NotTo(HaveOccurred())
			Expect(*doc.Documentation).To(Equal("OVERVIEW\n- generated"))
		})

		It("keeps the previous documentation when generation fails", func() {
			docs.generateFn = func(context.Context, json.RawMessage, string) (string, error) {
				return "", docgen.ErrTimedOut
			}
			artifacts.updateDocumentationFn = func(context.Context, int64, string) (*model.Artifact, error) {
				Fail("documentation must not be written")
				return nil, nil
			}

			_, err := svc.GenerateDocumentation(ctx, ownerID, workspaceID, artifactID)

			Expect(err).To(MatchError(docgen.ErrTimedOut))
		})

		It("requires artifact:put", func() {
			_, err := svc.GenerateDocumentation(ctx, visitorID, workspaceID, artifactID)
			Expect(err).To(MatchError(access.ErrForbidden))
		})
	})

	Describe("UpdateDocumentation", func() {
		It("falls back to the stored documentation", func() {
			var gotCurrent, gotInstruction string
			docs.updateFn = func(_ context.Context, _ json.RawMessage, _, current, instruction string) (string, error) {
				gotCurrent, gotInstruction = current, instruction
				return "rewritten", nil
			}

			doc, err := svc.UpdateDocumentation(ctx, editorID, workspaceID, artifactID, "", "  shorten it ")

			Expect(err).NotTo(HaveOccurred())
			Expect(gotCurrent).To(Equal("# Orders\n\n- one\n- two"))
			Expect(gotInstruction).To(Equal("shorten it"))
			Expect(*doc.Documentation).To(Equal("rewritten"))
		})

		It("requires an instruction", func() {
			_, err := svc.UpdateDocumentation(ctx, ownerID, workspaceID, artifactID, "doc", " ")
			Expect(err).To(MatchError(service.ErrInstructionRequired))
		})
	})

	Describe("DocumentationBlocks", func() {
		It("parses stored markdown", func() {
			blocks, err := svc.DocumentationBlocks(ctx, visitorID, workspaceID, artifactID)

			Expect(err).NotTo(HaveOccurred())
			Expect(blocks).To(HaveLen(2))
			Expect(blocks[0].Kind).To(Equal(markdown.BlockHeading))
			Expect(blocks[1].Items).To(Equal([]string{"one", "two"}))
		})

		It("returns no blocks for undocumented artifacts", func() {
			blocks, err := svc.DocumentationBlocks(ctx, ownerID, workspaceID, orphanID)

			Expect(err).NotTo(HaveOccurred())
			Expect(blocks).To(BeEmpty())
		})
	})
})
