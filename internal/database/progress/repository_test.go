package progress

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/errs"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_progress_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

type fixture struct {
	user    *entities.User
	book    *entities.Book
	chapter *entities.Chapter
}

func createFixture(t *testing.T, db *gorm.DB) fixture {
	user := &entities.User{Username: "reader", Email: "reader@example.com"}
	require.NoError(t, db.Create(user).Error)
	author := &entities.Author{FirstName: "Some", LastName: "Author"}
	require.NoError(t, db.Create(author).Error)
	book := &entities.Book{
		Title:      "Dune",
		AuthorID:   author.ID,
		UploadByID: user.ID,
		BookType:   entities.BookTypeEBook,
		FileFormat: entities.FileFormatEPUB,
	}
	require.NoError(t, db.Create(book).Error)
	chapter := &entities.Chapter{BookID: book.ID, Number: 1, Content: "book/chapters/one.epub"}
	require.NoError(t, db.Create(chapter).Error)
	return fixture{user: user, book: book, chapter: chapter}
}

func TestRepository_CreateAndGet(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixture(t, db)
	p := &entities.ReadingProgress{
		UserID:     f.user.ID,
		BookID:     f.book.ID,
		ChapterID:  f.chapter.ID,
		Percentage: 40,
	}
	require.NoError(t, repo.Create(p))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(40), got.Percentage)
	assert.False(t, got.IsComplete())
	assert.Equal(t, "Dune", got.Book.Title)
	assert.Equal(t, uint(1), got.Chapter.Number)
}

func TestRepository_Create_DuplicateTriple(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixture(t, db)
	first := &entities.ReadingProgress{UserID: f.user.ID, BookID: f.book.ID, ChapterID: f.chapter.ID, Percentage: 10}
	require.NoError(t, repo.Create(first))

	second := &entities.ReadingProgress{UserID: f.user.ID, BookID: f.book.ID, ChapterID: f.chapter.ID, Percentage: 20}
	err := repo.Create(second)

	assert.True(t, errors.Is(err, errs.ErrDuplicate))
}

func TestRepository_Create_DifferentChapters(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixture(t, db)
	second := &entities.Chapter{BookID: f.book.ID, Number: 2, Content: "book/chapters/two.epub"}
	require.NoError(t, db.Create(second).Error)

	require.NoError(t, repo.Create(&entities.ReadingProgress{
		UserID: f.user.ID, BookID: f.book.ID, ChapterID: f.chapter.ID, Percentage: 100,
	}))
	require.NoError(t, repo.Create(&entities.ReadingProgress{
		UserID: f.user.ID, BookID: f.book.ID, ChapterID: second.ID, Percentage: 25,
	}))

	list, err := repo.ListForUser(f.user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRepository_ListInProgress_ExcludesComplete(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	f := createFixture(t, db)
	second := &entities.Chapter{BookID: f.book.ID, Number: 2, Content: "book/chapters/two.epub"}
	require.NoError(t, db.Create(second).Error)

	require.NoError(t, repo.Create(&entities.ReadingProgress{
		UserID: f.user.ID, BookID: f.book.ID, ChapterID: f.chapter.ID, Percentage: 100,
	}))
	require.NoError(t, repo.Create(&entities.ReadingProgress{
		UserID: f.user.ID, BookID: f.book.ID, ChapterID: second.ID, Percentage: 99,
	}))

	list, err := repo.ListInProgress(f.user.ID)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(99), list[0].Percentage)
	assert.False(t, list[0].IsComplete())
}
