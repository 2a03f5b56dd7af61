package models

// Author is the denormalized author snapshot copied into posts, comments and
// articles at creation time. It is deliberately NOT kept in sync with the
// users table: a nickname or avatar change does not rewrite old content.
type Author struct {
	UID      uint   `gorm:"column:author_uid;index" json:"uid"`
	Nickname string `gorm:"column:author_nickname;not null" json:"nickname"`
	Avatar   string `gorm:"column:author_avatar" json:"avatar,omitempty"`
}

// Snapshot captures the current identity of a user.
func Snapshot(u *User) Author {
	return Author{
		UID:      u.ID,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}
