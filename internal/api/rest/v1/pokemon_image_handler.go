package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"

	"github.com/gin-gonic/gin"
)

// PokemonImageHandler defines the interface for handling pokemon image operations
type PokemonImageHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	RecordPrediction(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type pokemonImageHandler struct {
	pokemonImageService pokemonimages.PokemonImageService
}

// NewPokemonImageHandler creates a new PokemonImageHandler
func NewPokemonImageHandler(pokemonImageService pokemonimages.PokemonImageService) PokemonImageHandler {
	return &pokemonImageHandler{pokemonImageService: pokemonImageService}
}

// List returns pokemon images filtered by optional query parameters
func (handler *pokemonImageHandler) List(ctx *gin.Context) {
	var req PokemonImageListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	imageList, err := handler.pokemonImageService.List(ctx, req.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]PokemonImageResponse, 0, len(imageList))
	for _, image := range imageList {
		listResponse = append(listResponse, NewPokemonImageResponse(image))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID returns a single pokemon image record
func (handler *pokemonImageHandler) GetByID(ctx *gin.Context) {
	image, err := handler.pokemonImageService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPokemonImageResponse(image))
}

// Create accepts either a JSON body or a multipart form with an optional "image" file
func (handler *pokemonImageHandler) Create(ctx *gin.Context) {
	var req PokemonImageCreateRequest
	input := &pokemonimages.PokemonImageCreate{}

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxUploadSize)
		if err := ctx.ShouldBind(&req); err != nil {
			abortWithMessage(ctx, http.StatusBadRequest, "invalid form data")
			return
		}
		if _, err := ctx.FormFile("image"); err == nil {
			fileName, data, ok := readFormFile(ctx, "image")
			if !ok {
				return
			}
			input.Image = &pokemonimages.ImageUpload{FileName: fileName, Data: data}
		}
	} else if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	input.Name = req.Name
	input.Nickname = req.Nickname

	image, err := handler.pokemonImageService.Create(ctx, currentAccount(ctx).ID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewPokemonImageResponse(image))
}

// DownloadByID streams the stored image file
func (handler *pokemonImageHandler) DownloadByID(ctx *gin.Context) {
	image, data, err := handler.pokemonImageService.Download(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx.Header("Content-Disposition", "attachment; filename="+image.FileName)
	ctx.Header("Content-Length", strconv.Itoa(len(data)))
	ctx.Data(http.StatusOK, contentType, data)
}

// UpdateByID renames a pokemon image of the current account
func (handler *pokemonImageHandler) UpdateByID(ctx *gin.Context) {
	var req NicknameUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	image, err := handler.pokemonImageService.UpdateNickname(ctx, currentAccount(ctx).ID, ctx.Param("id"), req.Nickname)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPokemonImageResponse(image))
}

// RecordPrediction counts a correct or wrong guess
func (handler *pokemonImageHandler) RecordPrediction(ctx *gin.Context) {
	var req PredictionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	image, err := handler.pokemonImageService.RecordPrediction(ctx, ctx.Param("id"), req.Outcome)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPokemonImageResponse(image))
}

// DeleteByID removes a pokemon image of the current account
func (handler *pokemonImageHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := handler.pokemonImageService.Delete(ctx, currentAccount(ctx).ID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "deleted pokemon image with id " + id})
}
