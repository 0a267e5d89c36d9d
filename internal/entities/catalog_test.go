package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestAuthor_AgeOn_BeforeBirthday(t *testing.T) {
	author := &Author{BirthDate: date(2000, time.June, 15)}

	age := author.AgeOn(time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, age)
	assert.Equal(t, 23, *age)
}

func TestAuthor_AgeOn_OnBirthday(t *testing.T) {
	author := &Author{BirthDate: date(2000, time.June, 15)}

	age := author.AgeOn(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, age)
	assert.Equal(t, 24, *age)
}

func TestAuthor_AgeOn_EarlierMonth(t *testing.T) {
	author := &Author{BirthDate: date(1980, time.December, 1)}

	age := author.AgeOn(time.Date(2020, time.March, 20, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, age)
	assert.Equal(t, 39, *age)
}

func TestAuthor_AgeOn_UsesDeathDate(t *testing.T) {
	author := &Author{
		BirthDate: date(1900, time.January, 10),
		DeathDate: date(1970, time.January, 9),
	}

	// Died the day before the 70th birthday.
	age := author.AgeOn(time.Now())

	require.NotNil(t, age)
	assert.Equal(t, 69, *age)
}

func TestAuthor_AgeOn_NoBirthDate(t *testing.T) {
	author := &Author{}

	assert.Nil(t, author.AgeOn(time.Now()))
	assert.Nil(t, author.Age())
}

func TestAuthor_IsAlive(t *testing.T) {
	assert.True(t, (&Author{}).IsAlive())
	assert.False(t, (&Author{DeathDate: date(1999, time.May, 2)}).IsAlive())
}

func TestAuthor_FullName(t *testing.T) {
	assert.Equal(t, "Ursula K. Le Guin", (&Author{
		FirstName:  "Ursula",
		MiddleName: "K.",
		LastName:   "Le Guin",
	}).FullName())

	assert.Equal(t, "Frank Herbert", (&Author{
		FirstName: "Frank",
		LastName:  "Herbert",
	}).FullName())
}

func TestBook_Rate_NoReviews(t *testing.T) {
	book := &Book{}

	assert.Equal(t, 0.0, book.Rate())
}

func TestBook_Rate_Average(t *testing.T) {
	book := &Book{Reviews: []Review{{Rate: 3}, {Rate: 4}, {Rate: 5}}}

	assert.Equal(t, 4.0, book.Rate())
}

func TestAverageRate_NonIntegerMean(t *testing.T) {
	assert.InDelta(t, 3.5, AverageRate([]Review{{Rate: 3}, {Rate: 4}}), 1e-9)
}

func TestFileFormat_Extension(t *testing.T) {
	assert.Equal(t, ".epub", FileFormatEPUB.Extension())
	assert.Equal(t, ".mp3", FileFormatMP3.Extension())
}

func TestFileFormats_CoverEbookAndAudio(t *testing.T) {
	assert.Len(t, FileFormats, 15)
}
