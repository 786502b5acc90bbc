package v1

import (
	"io"
	"net/http"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize bounds photo and pokemon image uploads
const MaxUploadSize = 10 << 20

// ProfileHandler defines the interface for handling profile-related operations
type ProfileHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	UploadPhoto(ctx *gin.Context)
}

type profileHandler struct {
	profileService profiles.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService profiles.ProfileService) ProfileHandler {
	return &profileHandler{profileService: profileService}
}

// readFormFile returns name and content of the multipart file in field
func readFormFile(ctx *gin.Context, field string) (string, []byte, bool) {
	if ctx.Request.Body != nil {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxUploadSize)
	}

	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, "missing form file "+field)
		return "", nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, "unable to open form file "+field)
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, "unable to read form file "+field)
		return "", nil, false
	}
	return fileHeader.Filename, data, true
}

// List returns profiles filtered by optional query parameters
func (handler *profileHandler) List(ctx *gin.Context) {
	var req ProfileListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	profileList, err := handler.profileService.List(ctx, req.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]ProfileResponse, 0, len(profileList))
	for _, profile := range profileList {
		listResponse = append(listResponse, NewProfileResponse(profile))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID returns a single profile
func (handler *profileHandler) GetByID(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	profile, err := handler.profileService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProfileResponse(profile))
}

// UpdateByID applies a partial update to a profile of the current account
func (handler *profileHandler) UpdateByID(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	profile, err := handler.profileService.UpdateByID(ctx, currentAccount(ctx).ID, id, req.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProfileResponse(profile))
}

// UploadPhoto stores the multipart "photo" file as profile photo
func (handler *profileHandler) UploadPhoto(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	fileName, data, ok := readFormFile(ctx, "photo")
	if !ok {
		return
	}

	profile, err := handler.profileService.UploadPhoto(ctx, currentAccount(ctx).ID, id, fileName, data)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProfileResponse(profile))
}
