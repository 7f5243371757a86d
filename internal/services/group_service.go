package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/models"
	"github.com/rekib0023/expense-sharing-backend/internal/repository"
)

// groupService handles expense groups, group membership, and friends.
type groupService struct {
	groups  *repository.Repository[models.ExpenseGroup]
	members *repository.Repository[models.ExpenseGroupUser]
	friends *repository.Repository[models.Friend]
	users   UserServicer
}

// NewGroupService creates a new GroupServicer.
func NewGroupService(db *gorm.DB, users UserServicer) GroupServicer {
	return &groupService{
		groups:  repository.New[models.ExpenseGroup](db),
		members: repository.New[models.ExpenseGroupUser](db),
		friends: repository.New[models.Friend](db),
		users:   users,
	}
}

// CreateGroup creates a group owned by the caller. The owner is also
// recorded as a member.
func (s *groupService) CreateGroup(ctx context.Context, ownerID uint, name, desc string) (*models.ExpenseGroup, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "group name is required")
	}

	group := &models.ExpenseGroup{Name: name, Desc: desc, OwnerID: ownerID}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}

	member := &models.ExpenseGroupUser{UserID: ownerID, GroupID: group.ID}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	return group, nil
}

// GetGroups retrieves the groups the caller owns or belongs to.
func (s *groupService) GetGroups(ctx context.Context, userID uint) ([]models.ExpenseGroup, error) {
	var groups []models.ExpenseGroup
	err := s.groups.DB(ctx).
		Joins("JOIN expense_group_users ON expense_group_users.group_id = expense_groups.id").
		Where("expense_group_users.user_id = ?", userID).
		Find(&groups).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if groups == nil {
		groups = []models.ExpenseGroup{}
	}
	return groups, nil
}

// GetGroupByID retrieves a group the caller owns or belongs to.
func (s *groupService) GetGroupByID(ctx context.Context, userID, groupID uint) (*models.ExpenseGroup, error) {
	group, err := s.groups.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.ErrGroupNotFound
	}
	if group.OwnerID != userID {
		membership, err := s.members.GetBy(ctx, "group_id = ? AND user_id = ?", groupID, userID)
		if err != nil {
			return nil, err
		}
		if membership == nil {
			return nil, apperrors.ErrForbidden
		}
	}
	return group, nil
}

// AddMember adds a user to a group. Only the owner may add members, and
// membership is unique per (user, group).
func (s *groupService) AddMember(ctx context.Context, callerID, groupID, userID uint) (*models.ExpenseGroupUser, error) {
	group, err := s.GetGroupByID(ctx, callerID, groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != callerID {
		return nil, apperrors.ErrForbidden
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := s.members.GetBy(ctx, "group_id = ? AND user_id = ?", groupID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateMember
	}

	member := &models.ExpenseGroupUser{UserID: userID, GroupID: groupID}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetMembers retrieves the membership rows of a group the caller can see.
func (s *groupService) GetMembers(ctx context.Context, callerID, groupID uint) ([]models.ExpenseGroupUser, error) {
	if _, err := s.GetGroupByID(ctx, callerID, groupID); err != nil {
		return nil, err
	}

	var members []models.ExpenseGroupUser
	err := s.members.DB(ctx).
		Preload("User").
		Where("group_id = ?", groupID).
		Find(&members).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if members == nil {
		members = []models.ExpenseGroupUser{}
	}
	return members, nil
}

// AddFriend links another user as a friend of the caller. Self-friending
// and duplicate edges are rejected; the reverse edge is not created.
func (s *groupService) AddFriend(ctx context.Context, userID, friendID uint) (*models.Friend, error) {
	if userID == friendID {
		return nil, apperrors.ErrSelfFriend
	}
	if _, err := s.users.GetUserByID(ctx, friendID); err != nil {
		return nil, err
	}

	existing, err := s.friends.GetBy(ctx, "user_id = ? AND friend_id = ?", userID, friendID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateFriend
	}

	friend := &models.Friend{UserID: userID, FriendID: friendID}
	if err := s.friends.Create(ctx, friend); err != nil {
		return nil, err
	}
	return friend, nil
}

// GetFriends retrieves the caller's friends.
func (s *groupService) GetFriends(ctx context.Context, userID uint) ([]models.Friend, error) {
	var friends []models.Friend
	err := s.friends.DB(ctx).
		Preload("FriendUser").
		Where("user_id = ?", userID).
		Find(&friends).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if friends == nil {
		friends = []models.Friend{}
	}
	return friends, nil
}
