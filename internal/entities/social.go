package entities

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:uniq_review_user_book" json:"user_id"`
	BookID    uint      `gorm:"uniqueIndex:uniq_review_user_book" json:"book_id"`
	Rate      int       `gorm:"check:rate >= 1 AND rate <= 5" json:"rate"`
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	Likes     []Like    `gorm:"foreignKey:ReviewID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeCount is the number of loaded likes on the review.
func (r *Review) LikeCount() int {
	return len(r.Likes)
}

type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:uniq_like_user_review" json:"user_id"`
	ReviewID  uint      `gorm:"uniqueIndex:uniq_like_user_review" json:"review_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Review    Review    `gorm:"foreignKey:ReviewID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:uniq_favorite_user_book" json:"user_id"`
	BookID    uint      `gorm:"uniqueIndex:uniq_favorite_user_book" json:"book_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type ReadingProgress struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:uniq_progress_user_book_chapter" json:"user_id"`
	BookID     uint      `gorm:"uniqueIndex:uniq_progress_user_book_chapter" json:"book_id"`
	ChapterID  uint      `gorm:"uniqueIndex:uniq_progress_user_book_chapter" json:"chapter_id"`
	Percentage uint      `gorm:"check:percentage <= 100" json:"percentage"`
	User       User      `gorm:"foreignKey:UserID" json:"-"`
	Book       Book      `gorm:"foreignKey:BookID" json:"-"`
	Chapter    Chapter   `gorm:"foreignKey:ChapterID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsComplete reports whether the chapter has been read to the very end.
// 99% is not complete.
func (p *ReadingProgress) IsComplete() bool {
	return p.Percentage == 100
}

func (Review) TableName() string {
	return "reviews"
}

func (Like) TableName() string {
	return "likes"
}

func (Favorite) TableName() string {
	return "favorites"
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}
