package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/services"
)

// GroupHandler handles expense-group and friend requests.
type GroupHandler struct {
	groupService services.GroupServicer
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupService services.GroupServicer) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroupRequest represents the request payload for creating a group
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Desc string `json:"desc" binding:"max=1024"`
}

// AddMemberRequest represents the request payload for adding a group member
type AddMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// AddFriendRequest represents the request payload for adding a friend
type AddFriendRequest struct {
	FriendID uint `json:"friend_id" binding:"required"`
}

// CreateGroup creates a new expense group owned by the caller
// @Summary     Create an expense group
// @Tags        group
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGroupRequest true "Group details"
// @Success     201 {object} map[string]interface{} "Group created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /group [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), userID, req.Name, req.Desc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": group})
}

// GetGroups lists the groups the caller owns or belongs to
// @Summary     Get the caller's expense groups
// @Tags        group
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Groups"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /group [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groups, err := h.groupService.GetGroups(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetGroupByID retrieves one of the caller's groups
// @Summary     Get an expense group by ID
// @Tags        group
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Group ID"
// @Success     200 {object} map[string]interface{} "Group"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a member"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /group/{id} [get]
func (h *GroupHandler) GetGroupByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	group, err := h.groupService.GetGroupByID(c.Request.Context(), userID, groupID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": group})
}

// AddMember adds a user to a group owned by the caller
// @Summary     Add a member to an expense group
// @Tags        group
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Group ID"
// @Param       request body AddMemberRequest true "Member details"
// @Success     201 {object} map[string]interface{} "Member added"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Only the owner can add members"
// @Failure     404 {object} ErrorResponse "Group or user not found"
// @Failure     409 {object} ErrorResponse "Already a member"
// @Router      /group/{id}/member [post]
func (h *GroupHandler) AddMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.groupService.AddMember(c.Request.Context(), userID, groupID, req.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// GetMembers lists the members of one of the caller's groups
// @Summary     Get the members of an expense group
// @Tags        group
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Group ID"
// @Success     200 {object} map[string]interface{} "Members"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a member"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /group/{id}/members [get]
func (h *GroupHandler) GetMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	members, err := h.groupService.GetMembers(c.Request.Context(), userID, groupID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// AddFriend links another user as a friend of the caller
// @Summary     Add a friend
// @Tags        friend
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddFriendRequest true "Friend details"
// @Success     201 {object} map[string]interface{} "Friend added"
// @Failure     400 {object} ErrorResponse "Cannot add yourself"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     409 {object} ErrorResponse "Already friends"
// @Router      /friend [post]
func (h *GroupHandler) AddFriend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	friend, err := h.groupService.AddFriend(c.Request.Context(), userID, req.FriendID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"friend": friend})
}

// GetFriends lists the caller's friends
// @Summary     Get the caller's friends
// @Tags        friend
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Friends"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /friends [get]
func (h *GroupHandler) GetFriends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	friends, err := h.groupService.GetFriends(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}
