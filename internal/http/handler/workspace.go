package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"fluxera.app/api/internal/http/dto"
	"fluxera.app/api/internal/service"
)

const maxImageBytes = 5 << 20

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) ListMine(c *gin.Context) {
	workspaces, err := h.workspaceService.ListMine(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToWorkspaceResponses(workspaces))
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	wsID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ws, err := h.workspaceService.Get(c.Request.Context(), currentUser(c).ID, wsID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	var form dto.CreateWorkspaceForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c, "title is required")
		return
	}
	image, err := readImage(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ws, err := h.workspaceService.Create(c.Request.Context(), currentUser(c).ID, form.Title, image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	wsID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form dto.UpdateWorkspaceForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c, "invalid workspace form")
		return
	}
	image, err := readImage(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ws, err := h.workspaceService.Update(c.Request.Context(), currentUser(c).ID, wsID, service.UpdateWorkspaceInput{
		Title:    form.Title,
		Image:    image,
		OldImage: form.OldImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	wsID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.workspaceService.Delete(c.Request.Context(), currentUser(c).ID, wsID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) CreateInvite(c *gin.Context) {
	wsID, ok := pathID(c, "id")
	if !ok {
		return
	}
	link, err := h.workspaceService.CreateInviteLink(c.Request.Context(), currentUser(c).ID, wsID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, dto.ToInviteLinkResponse(link))
}

// readImage returns the optional "image" file part, or nil when absent.
func readImage(c *gin.Context) (*service.ImageUpload, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid image upload")
	}
	if header.Size > maxImageBytes {
		return nil, fmt.Errorf("image must be at most %d MB", maxImageBytes>>20)
	}
	return readFileHeader(header)
}

func readFileHeader(header *multipart.FileHeader) (*service.ImageUpload, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("invalid image upload")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("invalid image upload")
	}
	return &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
