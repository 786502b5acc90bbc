package v1

import (
	"net/http"
	"strconv"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// AccountHandler defines the interface for handling account-related operations
type AccountHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type accountHandler struct {
	accountService accounts.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService accounts.AccountService) AccountHandler {
	return &accountHandler{accountService: accountService}
}

// paramID parses the numeric :id path parameter, answering 400 when it is not one
func paramID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		abortWithMessage(ctx, http.StatusBadRequest, "invalid id "+ctx.Param("id"))
		return 0, false
	}
	return uint(id), true
}

// List returns every account without secrets
func (handler *accountHandler) List(ctx *gin.Context) {
	accountList, err := handler.accountService.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]AccountResponse, 0, len(accountList))
	for _, account := range accountList {
		listResponse = append(listResponse, NewAccountResponse(account))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID returns the current account with a fresh access token
func (handler *accountHandler) GetByID(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	session, err := handler.accountService.GetCurrent(ctx, currentAccount(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewAuthorizedAccountResponse(session))
}

// UpdateByID changes username, email or password of the current account
func (handler *accountHandler) UpdateByID(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req AccountUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	session, err := handler.accountService.Update(ctx, currentAccount(ctx), id, req.ToDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewAuthorizedAccountResponse(session))
}

// DeleteByID removes the current account with its profile and pokemon images
func (handler *accountHandler) DeleteByID(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := handler.accountService.Delete(ctx, currentAccount(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, DeletionResponse{IsDeleted: true})
}
