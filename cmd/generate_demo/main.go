// Command generate_demo creates a demo database with a sample catalogue of
// public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/library"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	lib := library.New(db.DB)

	reader := &entities.User{Username: "demo", Email: "demo@example.com", FirstName: "Demo", LastName: "Reader"}
	if err := db.DB.Create(reader).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	genres := createGenres(lib, reader.ID)

	for _, cfg := range getPublicDomainBooks() {
		author, err := lib.Authors.Create(cfg.Author, reader.ID)
		if err != nil {
			log.Printf("Failed to save author %s %s: %v", cfg.Author.FirstName, cfg.Author.LastName, err)
			continue
		}

		cfg.Book.AuthorID = author.ID
		for _, name := range cfg.GenreNames {
			if genre, ok := genres[name]; ok {
				cfg.Book.GenreIDs = append(cfg.Book.GenreIDs, genre.ID)
			}
		}

		book, err := lib.Books.Create(cfg.Book, reader.ID)
		if err != nil {
			log.Printf("Failed to save book %s: %v", cfg.Book.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s %s", book.Title, author.FirstName, author.LastName)

		for i, title := range cfg.ChapterTitles {
			_, err := lib.Chapters.Create(book.ID, library.ChapterPayload{
				Title:   title,
				Number:  i + 1,
				Content: "chapter" + book.FileFormat.Extension(),
			}, reader.ID)
			if err != nil {
				log.Printf("Failed to save chapter %q of %s: %v", title, book.Title, err)
			}
		}

		if cfg.Rate > 0 {
			if _, err := lib.Reviews.Create(book.ID, library.ReviewPayload{
				Rate:    cfg.Rate,
				Comment: cfg.Comment,
			}, reader.ID); err != nil {
				log.Printf("Failed to review %s: %v", book.Title, err)
			}
		}
	}

	log.Println("Demo database generated successfully!")
}

func createGenres(lib *library.Library, actor uint) map[string]*entities.Genre {
	names := []string{
		"Philosophy",
		"Fiction",
		"Classic",
		"Science",
	}

	genres := make(map[string]*entities.Genre)
	for _, name := range names {
		genre, err := lib.Genres.Create(library.GenrePayload{Name: name}, actor)
		if err != nil {
			log.Printf("Failed to create genre %s: %v", name, err)
			continue
		}
		genres[name] = genre
	}
	return genres
}

// BookConfig holds a book, its author and the genre names for deferred
// genre assignment.
type BookConfig struct {
	Author        library.AuthorPayload
	Book          library.BookPayload
	GenreNames    []string
	ChapterTitles []string
	Rate          int
	Comment       string
}

func date(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func getPublicDomainBooks() []BookConfig {
	return []BookConfig{
		{
			Author: library.AuthorPayload{
				FirstName: "Jane",
				LastName:  "Austen",
				Bio:       "English novelist known for her sharp social commentary.",
				BirthDate: date(1775, 12, 16),
				DeathDate: date(1817, 7, 18),
			},
			Book: library.BookPayload{
				Title:         "Pride and Prejudice",
				Description:   "A story of manners, upbringing and marriage in Regency England.",
				PublishedDate: date(1813, 1, 28),
				BookType:      entities.BookTypeEBook,
				FileFormat:    entities.FileFormatEPUB,
			},
			GenreNames:    []string{"Fiction", "Classic"},
			ChapterTitles: []string{"A Single Man of Good Fortune", "The Netherfield Ball"},
			Rate:          5,
			Comment:       "A timeless classic.",
		},
		{
			Author: library.AuthorPayload{
				FirstName: "Mary",
				LastName:  "Shelley",
				Bio:       "English novelist who wrote the first true science fiction novel.",
				BirthDate: date(1797, 8, 30),
				DeathDate: date(1851, 2, 1),
			},
			Book: library.BookPayload{
				Title:         "Frankenstein",
				Description:   "A young scientist creates a sapient creature in an unorthodox experiment.",
				PublishedDate: date(1818, 1, 1),
				BookType:      entities.BookTypeEBook,
				FileFormat:    entities.FileFormatEPUB,
			},
			GenreNames:    []string{"Fiction", "Classic", "Science"},
			ChapterTitles: []string{"Letters", "The Creation"},
			Rate:          4,
			Comment:       "Still unsettling two centuries later.",
		},
		{
			Author: library.AuthorPayload{
				FirstName: "Leo",
				LastName:  "Tolstoy",
				Bio:       "Russian author regarded as one of the greatest novelists of all time.",
				BirthDate: date(1828, 9, 9),
				DeathDate: date(1910, 11, 20),
			},
			Book: library.BookPayload{
				Title:         "War and Peace",
				Description:   "The French invasion of Russia seen through five aristocratic families.",
				PublishedDate: date(1869, 1, 1),
				BookType:      entities.BookTypeAudiobook,
				FileFormat:    entities.FileFormatMP3,
			},
			GenreNames:    []string{"Fiction", "Classic"},
			ChapterTitles: []string{"Anna Pavlovna's Soiree"},
			Rate:          5,
			Comment:       "Patience and time.",
		},
		{
			Author: library.AuthorPayload{
				FirstName:  "Fyodor",
				MiddleName: "Mikhailovich",
				LastName:   "Dostoevsky",
				Bio:        "Russian novelist exploring the human condition in troubled Russia.",
				BirthDate:  date(1821, 11, 11),
				DeathDate:  date(1881, 2, 9),
			},
			Book: library.BookPayload{
				Title:         "Crime and Punishment",
				Description:   "A destitute student plans the murder of an unscrupulous pawnbroker.",
				PublishedDate: date(1866, 1, 1),
				BookType:      entities.BookTypeEBook,
				FileFormat:    entities.FileFormatMOBI,
			},
			GenreNames:    []string{"Fiction", "Classic"},
			ChapterTitles: []string{"The Garret", "The Confession"},
			Rate:          5,
			Comment:       "To go wrong in one's own way is better than to go right in someone else's.",
		},
		{
			Author: library.AuthorPayload{
				FirstName: "Charles",
				LastName:  "Darwin",
				Bio:       "English naturalist, the father of evolutionary biology.",
				BirthDate: date(1809, 2, 12),
				DeathDate: date(1882, 4, 19),
			},
			Book: library.BookPayload{
				Title:         "On the Origin of Species",
				Description:   "The foundational work of evolutionary biology.",
				PublishedDate: date(1859, 11, 24),
				BookType:      entities.BookTypeEBook,
				FileFormat:    entities.FileFormatPDF,
			},
			GenreNames:    []string{"Science", "Classic"},
			ChapterTitles: []string{"Variation Under Domestication", "Natural Selection"},
			Rate:          4,
			Comment:       "There is grandeur in this view of life.",
		},
		{
			Author: library.AuthorPayload{
				FirstName: "Oscar",
				LastName:  "Wilde",
				Bio:       "Irish poet and playwright, famous for his wit.",
				BirthDate: date(1854, 10, 16),
				DeathDate: date(1900, 11, 30),
			},
			Book: library.BookPayload{
				Title:         "The Picture of Dorian Gray",
				Description:   "A man stays young while his portrait ages in his place.",
				PublishedDate: date(1890, 7, 1),
				BookType:      entities.BookTypeEBook,
				FileFormat:    entities.FileFormatEPUB,
			},
			GenreNames:    []string{"Fiction", "Classic"},
			ChapterTitles: []string{"The Studio", "The Portrait"},
			Rate:          4,
			Comment:       "To define is to limit.",
		},
	}
}
