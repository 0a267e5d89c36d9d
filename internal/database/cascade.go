package database

import (
	"gorm.io/gorm"

	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/errs"
)

// The helpers below implement the delete paths shared between repositories.
// Each consults the deletion-policy table before touching dependent rows and
// is meant to run inside a single transaction, so a delete either fully
// cascades or has no effect.

// DeleteAuthor removes an author. The authors→books relationship is
// PROTECTed: the delete is refused while any book references the author.
func DeleteAuthor(tx *gorm.DB, authorID uint) error {
	if PolicyFor("authors", "books") == Protect {
		var count int64
		if err := tx.Model(&entities.Book{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.Protected("author", "books")
		}
	}

	res := tx.Delete(&entities.Author{}, authorID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("author")
	}
	return nil
}

// CascadeDeleteBook removes a book together with its chapters, reviews (and
// their likes), favorites, reading progress and genre links.
func CascadeDeleteBook(tx *gorm.DB, bookID uint) error {
	for _, child := range []string{"chapters", "reviews", "favorites", "reading_progress", "book_genres"} {
		if PolicyFor("books", child) != Cascade {
			return errs.Protected("book", child)
		}
	}

	var reviewIDs []uint
	if err := tx.Model(&entities.Review{}).Where("book_id = ?", bookID).Pluck("id", &reviewIDs).Error; err != nil {
		return err
	}
	if len(reviewIDs) > 0 {
		if err := tx.Where("review_id IN ?", reviewIDs).Delete(&entities.Like{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("book_id = ?", bookID).Delete(&entities.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where("book_id = ?", bookID).Delete(&entities.ReadingProgress{}).Error; err != nil {
		return err
	}
	if err := tx.Where("book_id = ?", bookID).Delete(&entities.Favorite{}).Error; err != nil {
		return err
	}
	if err := tx.Where("book_id = ?", bookID).Delete(&entities.Chapter{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM book_genres WHERE book_id = ?", bookID).Error; err != nil {
		return err
	}

	res := tx.Delete(&entities.Book{}, bookID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("book")
	}
	return nil
}

// CascadeDeleteChapter removes a chapter and any reading progress rows
// pointing at it.
func CascadeDeleteChapter(tx *gorm.DB, chapterID uint) error {
	if PolicyFor("chapters", "reading_progress") != Cascade {
		return errs.Protected("chapter", "reading_progress")
	}

	if err := tx.Where("chapter_id = ?", chapterID).Delete(&entities.ReadingProgress{}).Error; err != nil {
		return err
	}

	res := tx.Delete(&entities.Chapter{}, chapterID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("chapter")
	}
	return nil
}

// CascadeDeleteReview removes a review and its likes.
func CascadeDeleteReview(tx *gorm.DB, reviewID uint) error {
	if PolicyFor("reviews", "likes") != Cascade {
		return errs.Protected("review", "likes")
	}

	if err := tx.Where("review_id = ?", reviewID).Delete(&entities.Like{}).Error; err != nil {
		return err
	}

	res := tx.Delete(&entities.Review{}, reviewID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("review")
	}
	return nil
}

// CascadeDeleteUser removes a user, the books they uploaded (each with its
// own cascade) and every review, like, favorite and progress row they own.
func CascadeDeleteUser(tx *gorm.DB, userID uint) error {
	for _, child := range []string{"books", "reviews", "likes", "favorites", "reading_progress"} {
		if PolicyFor("users", child) != Cascade {
			return errs.Protected("user", child)
		}
	}

	var bookIDs []uint
	if err := tx.Model(&entities.Book{}).Where("upload_by_id = ?", userID).Pluck("id", &bookIDs).Error; err != nil {
		return err
	}
	for _, bookID := range bookIDs {
		if err := CascadeDeleteBook(tx, bookID); err != nil {
			return err
		}
	}

	var reviewIDs []uint
	if err := tx.Model(&entities.Review{}).Where("user_id = ?", userID).Pluck("id", &reviewIDs).Error; err != nil {
		return err
	}
	for _, reviewID := range reviewIDs {
		if err := CascadeDeleteReview(tx, reviewID); err != nil {
			return err
		}
	}

	if err := tx.Where("user_id = ?", userID).Delete(&entities.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&entities.Favorite{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&entities.ReadingProgress{}).Error; err != nil {
		return err
	}

	res := tx.Delete(&entities.User{}, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("user")
	}
	return nil
}
