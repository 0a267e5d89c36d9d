package entities

import (
	"strings"
	"time"
)

// BookType distinguishes e-books from audiobooks.
type BookType string

const (
	BookTypeEBook     BookType = "EBOOK"
	BookTypeAudiobook BookType = "AUDIOBOOK"
)

// FileFormat is the declared format of a book's content files.
type FileFormat string

const (
	// E-book formats
	FileFormatPDF  FileFormat = "PDF"
	FileFormatEPUB FileFormat = "EPUB"
	FileFormatMOBI FileFormat = "MOBI"
	FileFormatAZW  FileFormat = "AZW"
	FileFormatTXT  FileFormat = "TXT"
	FileFormatDOCX FileFormat = "DOCX"
	FileFormatRTF  FileFormat = "RTF"
	FileFormatHTML FileFormat = "HTML"

	// Audio formats
	FileFormatMP3  FileFormat = "MP3"
	FileFormatAAC  FileFormat = "AAC"
	FileFormatM4A  FileFormat = "M4A"
	FileFormatWAV  FileFormat = "WAV"
	FileFormatFLAC FileFormat = "FLAC"
	FileFormatOGG  FileFormat = "OGG"
	FileFormatWMA  FileFormat = "WMA"
)

// BookTypes lists every valid book type.
var BookTypes = []BookType{BookTypeEBook, BookTypeAudiobook}

// FileFormats lists every valid file format.
var FileFormats = []FileFormat{
	FileFormatPDF, FileFormatEPUB, FileFormatMOBI, FileFormatAZW,
	FileFormatTXT, FileFormatDOCX, FileFormatRTF, FileFormatHTML,
	FileFormatMP3, FileFormatAAC, FileFormatM4A, FileFormatWAV,
	FileFormatFLAC, FileFormatOGG, FileFormatWMA,
}

// Extension returns the filename extension a content file must carry for
// this format, lower-cased and dot-prefixed (e.g. ".epub").
func (f FileFormat) Extension() string {
	return "." + strings.ToLower(string(f))
}

type Author struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Portrait   string     `gorm:"size:1024;default:'default/avatar.png'" json:"portrait,omitempty"`
	FirstName  string     `gorm:"size:63" json:"first_name"`
	MiddleName string     `gorm:"size:63" json:"middle_name,omitempty"`
	LastName   string     `gorm:"size:63" json:"last_name"`
	Bio        string     `gorm:"type:text" json:"bio,omitempty"`
	BirthDate  *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	DeathDate  *time.Time `gorm:"type:date" json:"death_date,omitempty"`
	Books      []Book     `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsAlive reports whether the author has no recorded death date.
func (a *Author) IsAlive() bool {
	return a.DeathDate == nil
}

// Age returns the author's age in whole years, at the death date if present
// or today otherwise. Returns nil when the birth date is unknown.
func (a *Author) Age() *int {
	return a.AgeOn(time.Now())
}

// AgeOn computes the age as of the given date (or the death date, if that
// comes first). A year only counts as complete once the birthday's month and
// day have been reached.
func (a *Author) AgeOn(now time.Time) *int {
	if a.BirthDate == nil {
		return nil
	}
	end := now
	if a.DeathDate != nil {
		end = *a.DeathDate
	}
	birth := *a.BirthDate
	years := end.Year() - birth.Year()
	if end.Month() < birth.Month() || (end.Month() == birth.Month() && end.Day() < birth.Day()) {
		years--
	}
	return &years
}

// FullName joins the name parts, skipping an absent middle name.
func (a *Author) FullName() string {
	parts := []string{a.FirstName}
	if a.MiddleName != "" {
		parts = append(parts, a.MiddleName)
	}
	parts = append(parts, a.LastName)
	return strings.Join(parts, " ")
}

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:63" json:"name"`
	Thumbnail string    `gorm:"size:1024;default:'default/genre.png'" json:"thumbnail,omitempty"`
	Books     []Book    `gorm:"many2many:book_genres;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Book struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"index;size:127" json:"title"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	CoverImage    string     `gorm:"size:1024" json:"cover_image"`
	PublishedDate *time.Time `gorm:"type:date" json:"published_date,omitempty"`
	AuthorID      uint       `gorm:"index" json:"author_id"`
	UploadByID    uint       `gorm:"index" json:"upload_by_id"`
	BookType      BookType   `gorm:"size:10;default:'EBOOK'" json:"book_type"`
	FileFormat    FileFormat `gorm:"size:4" json:"file_format"`

	Author   Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	UploadBy User      `gorm:"foreignKey:UploadByID" json:"-"`
	Genres   []Genre   `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	Chapters []Chapter `gorm:"foreignKey:BookID" json:"chapters,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:BookID" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Rate is the arithmetic mean of the loaded reviews' rates, or 0.0 when the
// book has none. A missing rating renders as zero, never as an error.
func (b *Book) Rate() float64 {
	return AverageRate(b.Reviews)
}

// AverageRate computes the mean rate over a set of reviews, 0.0 when empty.
func AverageRate(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0.0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rate
	}
	return float64(sum) / float64(len(reviews))
}

type Chapter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    uint      `gorm:"uniqueIndex:uniq_chapter_book_number" json:"book_id"`
	Title     string    `gorm:"size:127" json:"title,omitempty"`
	Number    uint      `gorm:"uniqueIndex:uniq_chapter_book_number" json:"number"`
	Content   string    `gorm:"size:1024" json:"content"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (Genre) TableName() string {
	return "genres"
}

func (Book) TableName() string {
	return "books"
}

func (Chapter) TableName() string {
	return "chapters"
}
