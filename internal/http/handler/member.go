package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/dto"
	"fluxera.app/api/internal/model"
	"fluxera.app/api/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) List(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	members, err := h.memberService.List(c.Request.Context(), currentUser(c).ID, wsID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToMemberResponses(members))
}

// Create adds a member by email, or lets the caller join with an invite code.
func (h *MemberHandler) Create(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid member request")
		return
	}

	var (
		member *model.WorkspaceMember
		err    error
	)
	switch {
	case strings.TrimSpace(req.Invite) != "":
		member, err = h.memberService.Join(c.Request.Context(), currentUser(c).ID, wsID, req.Invite)
	case strings.TrimSpace(req.Email) != "":
		member, err = h.memberService.AddByEmail(c.Request.Context(), currentUser(c).ID, wsID, req.Email, req.RoleID)
	default:
		respondBadRequest(c, "email or invite is required")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto.ToMemberResponse(member))
}

func (h *MemberHandler) Update(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid member request")
		return
	}

	member, err := h.memberService.UpdateRole(c.Request.Context(), currentUser(c).ID, wsID, memberID, req.RoleID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToMemberResponse(member))
}

func (h *MemberHandler) Delete(c *gin.Context) {
	wsID, ok := pathID(c, "wsId")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	if err := h.memberService.Remove(c.Request.Context(), currentUser(c).ID, wsID, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
