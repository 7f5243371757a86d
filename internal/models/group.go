package models

// ExpenseGroup represents a named group of users sharing expenses
type ExpenseGroup struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	Desc    string `gorm:"column:description;not null" json:"desc"`
	OwnerID uint   `gorm:"not null" json:"owner_id"`

	Owner   *User              `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members []ExpenseGroupUser `gorm:"foreignKey:GroupID" json:"members,omitempty"`
}

// ExpenseGroupUser links a user to an expense group. Membership is unique
// per (user, group) pair.
type ExpenseGroupUser struct {
	Base
	UserID  uint `gorm:"not null;uniqueIndex:idx_group_member" json:"user_id"`
	GroupID uint `gorm:"not null;uniqueIndex:idx_group_member" json:"group_id"`

	User  *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Group *ExpenseGroup `gorm:"foreignKey:GroupID" json:"-"`
}

// Friend is a self-referential link between two users. Friendship is unique
// per (user, friend) pair; the reverse edge is a separate row.
type Friend struct {
	Base
	UserID   uint `gorm:"not null;uniqueIndex:idx_user_friend" json:"user_id"`
	FriendID uint `gorm:"not null;uniqueIndex:idx_user_friend" json:"friend_id"`

	User       *User `gorm:"foreignKey:UserID" json:"-"`
	FriendUser *User `gorm:"foreignKey:FriendID" json:"friend,omitempty"`
}
