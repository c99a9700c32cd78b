// comment.go - Comments on questions and projects

package models // Declares the package name

// Comment belongs to either a Question or a Project. EntityID is not a
// foreign key; the two parents live in different tables.
type Comment struct {
	Base
	UserID      string `gorm:"size:36;not null;index" json:"userId"`
	EntityID    string `gorm:"size:36;not null;index" json:"entityId"`
	UserName    string `gorm:"not null" json:"userName"`
	UserSurname string `gorm:"not null" json:"userSurname"`
	Text        string `gorm:"not null" json:"text"`
}

func (c *Comment) OwnerID() string { return c.UserID }

// All lists every model the schema migration manages.
func All() []interface{} {
	return []interface{}{&User{}, &Question{}, &Project{}, &Comment{}}
}
