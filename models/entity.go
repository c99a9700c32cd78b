// entity.go - Questions and projects, the two commentable entities

package models // Declares the package name

// Authorship is denormalized from the owning user at creation time.
type Authorship struct {
	UserID      string `gorm:"size:36;not null;index" json:"userId"`
	UserName    string `gorm:"not null" json:"userName"`
	UserSurname string `gorm:"not null" json:"userSurname"`
	School      string `gorm:"not null;index" json:"school"`
	Programme   string `gorm:"not null;index" json:"programme"`
}

// AuthoredBy copies the owner fields from u.
func AuthoredBy(u *User) Authorship {
	return Authorship{
		UserID:      u.ID,
		UserName:    u.Name,
		UserSurname: u.Surname,
		School:      u.School,
		Programme:   u.Programme,
	}
}

type Question struct {
	Base
	Authorship
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	IsPublic    bool   `gorm:"not null" json:"isPublic"`
}

type Project struct {
	Base
	Authorship
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	DemoURL     string `gorm:"column:demo_url;not null" json:"demoUrl"`
	OtherURL    string `gorm:"column:other_url" json:"otherUrl"`
}

// OwnerID lets the ownership policy treat both kinds alike.
func (q *Question) OwnerID() string { return q.UserID }
func (p *Project) OwnerID() string  { return p.UserID }
