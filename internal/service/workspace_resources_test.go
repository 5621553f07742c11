package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
	"fluxera.app/api/internal/store"
)

var _ = Describe("Workspace resources", func() {
	const projectID int64 = 500

	var (
		ctx      context.Context
		w        *world
		projects *mockProjectStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		w = newWorld()
		projects = &mockProjectStore{
			getByIDFn: func(_ context.Context, id int64) (*model.Project, error) {
				if id != projectID {
					return nil, store.ErrNotFound
				}
				return &model.Project{ID: projectID, WorkspaceID: workspaceID, Title: "Launch"}, nil
			},
		}
	})

	Describe("ProjectService", func() {
		var svc service.ProjectService

		BeforeEach(func() {
			svc = service.NewProjectService(projects, w.gate)
		})

		It("creates with project:post and rejects blank titles", func() {
			project, err := svc.Create(ctx, editorID, workspaceID, service.ProjectInput{Title: " Beta "})
			Expect(err).NotTo(HaveOccurred())
			Expect(project.Title).To(Equal("Beta"))

			_, err = svc.Create(ctx, editorID, workspaceID, service.ProjectInput{Title: ""})
			Expect(err).To(MatchError(service.ErrTitleRequired))
		})

		It("forbids updates without project:put", func() {
			_, err := svc.Update(ctx, editorID, workspaceID, projectID, service.ProjectInput{Title: "x"})
			Expect(err).To(MatchError(access.ErrForbidden))
		})

		It("lets the owner close a project", func() {
			project, err := svc.Update(ctx, ownerID, workspaceID, projectID, service.ProjectInput{Title: "Launch", Closed: true})

			Expect(err).NotTo(HaveOccurred())
			Expect(project.Closed).To(BeTrue())
		})

		It("hides strangers behind forbidden and unknown projects behind not found", func() {
			_, err := svc.List(ctx, strangerID, workspaceID)
			Expect(err).To(MatchError(access.ErrForbidden))

			_, err = svc.Get(ctx, visitorID, workspaceID, 1)
			Expect(err).To(MatchError(service.ErrProjectNotFound))
			Expect(errors.Is(err, service.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("FeatureService", func() {
		var (
			features *mockFeatureStore
			svc      service.FeatureService
		)

		BeforeEach(func() {
			features = &mockFeatureStore{}
			svc = service.NewFeatureService(features, projects, w.gate)
		})

		It("needs task:post", func() {
			_, err := svc.Create(ctx, editorID, workspaceID, projectID, "As a user I want reports")
			Expect(err).To(MatchError(access.ErrForbidden))

			feature, err := svc.Create(ctx, ownerID, workspaceID, projectID, "As a user I want reports")
			Expect(err).NotTo(HaveOccurred())
			Expect(feature.ProjectID).To(Equal(projectID))
		})

		It("requires a user story", func() {
			_, err := svc.Create(ctx, ownerID, workspaceID, projectID, "  ")
			Expect(err).To(MatchError(service.ErrUserStoryRequired))
		})

		It("rejects projects outside the workspace", func() {
			_, err := svc.List(ctx, ownerID, workspaceID, 1)
			Expect(err).To(MatchError(service.ErrProjectNotFound))
		})
	})

	Describe("RoleService", func() {
		var svc service.RoleService

		BeforeEach(func() {
			svc = service.NewRoleService(w.roles, w.gate)
		})

		It("lets members list roles", func() {
			w.roles.listByWorkspaceFn = func(context.Context, int64) ([]model.Role, error) {
				return []model.Role{{ID: editorRole}}, nil
			}

			roles, err := svc.List(ctx, visitorID, workspaceID)

			Expect(err).NotTo(HaveOccurred())
			Expect(roles).To(HaveLen(1))
		})

		It("requires manage to create roles", func() {
			_, err := svc.Create(ctx, editorID, workspaceID, service.RoleInput{Name: "QA"})
			Expect(err).To(MatchError(access.ErrForbidden))

			role, err := svc.Create(ctx, ownerID, workspaceID, service.RoleInput{Name: "QA"})
			Expect(err).NotTo(HaveOccurred())
			Expect(role.Capabilities).NotTo(BeNil())
		})

		It("rejects roles from other workspaces", func() {
			w.roles.getByIDFn = func(_ context.Context, id int64) (*model.Role, error) {
				return &model.Role{ID: id, WorkspaceID: 999}, nil
			}

			Expect(svc.Delete(ctx, ownerID, workspaceID, 77)).To(MatchError(service.ErrRoleNotFound))
		})
	})

	Describe("APILinkService", func() {
		var (
			links *mockAPILinkStore
			svc   service.APILinkService
		)

		BeforeEach(func() {
			links = &mockAPILinkStore{}
			svc = service.NewAPILinkService(links, w.gate)
		})

		It("validates the url", func() {
			_, err := svc.Create(ctx, ownerID, workspaceID, service.APILinkInput{Name: "api", URL: "ftp://files"})
			Expect(err).To(MatchError(service.ErrInvalidURL))

			_, err = svc.Create(ctx, ownerID, workspaceID, service.APILinkInput{Name: "api", URL: "/relative"})
			Expect(err).To(MatchError(service.ErrInvalidURL))

			link, err := svc.Create(ctx, ownerID, workspaceID, service.APILinkInput{Name: " api ", URL: "https://api.example.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(link.Name).To(Equal("api"))
		})

		It("requires manage to change links", func() {
			_, err := svc.Create(ctx, editorID, workspaceID, service.APILinkInput{Name: "api", URL: "https://api.example.com"})
			Expect(err).To(MatchError(access.ErrForbidden))
		})
	})
})
