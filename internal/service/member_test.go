package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"fluxera.app/api/internal/access"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
	"fluxera.app/api/internal/store"
)

var _ = Describe("MemberService", func() {
	var (
		ctx   context.Context
		w     *world
		users *mockUserStore
		svc   service.MemberService
	)

	BeforeEach(func() {
		ctx = context.Background()
		w = newWorld()
		users = &mockUserStore{
			getByIDFn: func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Name: "user"}, nil
			},
			getByEmailFn: func(_ context.Context, email string) (*model.User, error) {
				if email == "new@example.com" {
					return &model.User{ID: 50, Email: email}, nil
				}
				if email == "owner@example.com" {
					return &model.User{ID: ownerID, Email: email}, nil
				}
				return nil, store.ErrNotFound
			},
		}
		svc = service.NewMemberService(w.members, users, w.roles, w.gate)
	})

	Describe("List", func() {
		It("joins users and roles", func() {
			w.members.listByWorkspaceFn = func(context.Context, int64) ([]model.WorkspaceMember, error) {
				return []model.WorkspaceMember{
					{ID: 200, WorkspaceID: workspaceID, UserID: editorID, RoleID: int64Ptr(editorRole)},
					{ID: 202, WorkspaceID: workspaceID, UserID: visitorID},
				}, nil
			}
			w.roles.listByWorkspaceFn = func(context.Context, int64) ([]model.Role, error) {
				return []model.Role{{ID: editorRole, WorkspaceID: workspaceID, Name: "Editor"}}, nil
			}

			list, err := svc.List(ctx, visitorID, workspaceID)

			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
			Expect(list[0].User.ID).To(Equal(editorID))
			Expect(list[0].Role).NotTo(BeNil())
			Expect(list[0].Role.Name).To(Equal("Editor"))
			Expect(list[1].Role).To(BeNil())
		})

		It("hides the list from strangers", func() {
			_, err := svc.List(ctx, strangerID, workspaceID)
			Expect(err).To(MatchError(access.ErrForbidden))
		})
	})

	Describe("AddByEmail", func() {
		It("adds an existing user with a role", func() {
			member, err := svc.AddByEmail(ctx, ownerID, workspaceID, "New@Example.com", int64Ptr(editorRole))

			Expect(err).NotTo(HaveOccurred())
			Expect(member.UserID).To(Equal(int64(50)))
			Expect(*member.RoleID).To(Equal(editorRole))
		})

		It("reports a duplicate membership as a conflict", func() {
			w.members.createFn = func(context.Context, *model.WorkspaceMember) error {
				return store.ErrDuplicate
			}

			_, err := svc.AddByEmail(ctx, ownerID, workspaceID, "new@example.com", nil)

			Expect(err).To(MatchError(service.ErrAlreadyMember))
		})

		It("refuses to add the owner", func() {
			_, err := svc.AddByEmail(ctx, ownerID, workspaceID, "owner@example.com", nil)
			Expect(err).To(MatchError(service.ErrAlreadyMember))
		})

		It("rejects unknown users and foreign roles", func() {
			_, err := svc.AddByEmail(ctx, ownerID, workspaceID, "ghost@example.com", nil)
			Expect(err).To(MatchError(service.ErrUserNotFound))

			_, err = svc.AddByEmail(ctx, ownerID, workspaceID, "new@example.com", int64Ptr(999))
			Expect(err).To(MatchError(service.ErrRoleNotFound))
		})
	})

	Describe("Join", func() {
		It("adds the caller as a visitor", func() {
			code := service.EncodeInvite(workspaceID, time.Now())

			member, err := svc.Join(ctx, strangerID, workspaceID, code)

			Expect(err).NotTo(HaveOccurred())
			Expect(member.UserID).To(Equal(strangerID))
			Expect(member.IsVisitor()).To(BeTrue())
		})

		It("rejects expired invites", func() {
			code := service.EncodeInvite(workspaceID, time.Now().Add(-3*time.Hour))

			_, err := svc.Join(ctx, strangerID, workspaceID, code)

			Expect(err).To(MatchError(service.ErrInviteExpired))
			Expect(w.members.createCalls).To(Equal(0))
		})

		It("rejects invites for another workspace", func() {
			code := service.EncodeInvite(777, time.Now())

			_, err := svc.Join(ctx, strangerID, workspaceID, code)

			Expect(err).To(MatchError(service.ErrInvalidInvite))
		})

		It("rejects users who already belong", func() {
			code := service.EncodeInvite(workspaceID, time.Now())

			_, err := svc.Join(ctx, editorID, workspaceID, code)

			Expect(err).To(MatchError(service.ErrAlreadyMember))
		})
	})

	Describe("Remove", func() {
		It("lets a member leave", func() {
			Expect(svc.Remove(ctx, visitorID, workspaceID, 202)).To(Succeed())
		})

		It("forbids removing someone else without manage", func() {
			Expect(svc.Remove(ctx, visitorID, workspaceID, 200)).To(MatchError(access.ErrForbidden))
		})

		It("lets the owner remove anyone", func() {
			Expect(svc.Remove(ctx, ownerID, workspaceID, 201)).To(Succeed())
		})
	})

	Describe("UpdateRole", func() {
		It("demotes a member to visitor", func() {
			member, err := svc.UpdateRole(ctx, ownerID, workspaceID, 200, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(member.IsVisitor()).To(BeTrue())
		})

		It("reports unknown members", func() {
			_, err := svc.UpdateRole(ctx, ownerID, workspaceID, 999, nil)
			Expect(err).To(MatchError(service.ErrMemberNotFound))
		})
	})
})
