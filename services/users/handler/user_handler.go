package handler

import (
	"fmt"
	"net/http"

	"collectibles-auction/internal/auction"
	"collectibles-auction/internal/auctionerrors"
	model "collectibles-auction/internal/models"
	"collectibles-auction/internal/repository"
	"collectibles-auction/services/bidding/helpers"
	"collectibles-auction/utils"

	"github.com/gin-gonic/gin"
)

// ItemLookup resolves item ids from the bidder index to catalog items
type ItemLookup interface {
	Get(itemID string) (*auction.Item, error)
}

type UserHandler struct {
	store   *repository.UserStore
	catalog ItemLookup
}

func NewUserHandler(store *repository.UserStore, catalog ItemLookup) *UserHandler {
	return &UserHandler{store: store, catalog: catalog}
}

// ListUsersHandler handles GET /users
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.store.List(), "users retrieved successfully")
}

// GetUserHandler handles GET /users/:user_id
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.store.Get(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// CreateUserHandler handles POST /users/:user_id
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user := model.User{UserID: c.Param("user_id"), Name: req.Name, Email: req.Email}
	if err := h.store.Create(user); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user created successfully")
	helpers.LogSuccess("CreateUserHandler", "user created successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// UpdateUserHandler handles PUT /users/:user_id
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}

	user := model.User{UserID: c.Param("user_id"), Name: req.Name, Email: req.Email}
	if err := h.store.Update(user); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user updated successfully")
}

// DeleteUserHandler handles DELETE /users/:user_id
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	if err := h.store.Delete(userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "user deleted successfully")
}

// UserExistsHandler handles OPTIONS /users/:user_id
func (h *UserHandler) UserExistsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	if !h.store.Exists(userID) {
		err := auctionerrors.NewFieldError(auctionerrors.ErrNotFound,
			"userId", fmt.Sprintf("user %s not found", userID))
		utils.JSONError(c, http.StatusNotFound, err, "resource not found")
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "user exists")
}

// BidderItemsHandler handles GET /bidders/:bidder_name/items, listing the
// items the bidder has bid on. Items removed from the catalog since the
// bid are skipped.
func (h *UserHandler) BidderItemsHandler(c *gin.Context) {
	bidderName := c.Param("bidder_name")

	itemIDs := h.store.ItemsBidBy(bidderName)
	itemIDsFound := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		if _, err := h.catalog.Get(id); err == nil {
			itemIDsFound = append(itemIDsFound, id)
		}
	}

	utils.JSONResponse(c, http.StatusOK, itemIDsFound, "items retrieved successfully")
	helpers.LogSuccess("BidderItemsHandler", "items retrieved successfully", map[string]any{
		"bidder": bidderName,
		"count":  len(itemIDsFound),
	})
}

type userRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}
