package models

import "time"

// Book is the catalogue entry for one title. Text content is stored
// separately in fixed-order chunks (see [BookContent]).
type Book struct {
	// ID is the internal unique identifier of the book.
	ID int64 `json:"id"`

	// Title of the book. Never empty.
	Title string `json:"title"`

	// Author of the book.
	Author string `json:"author"`

	// Category is a free-form shelf label (e.g. "Fiction").
	Category string `json:"category"`

	// CoverImage is the opaque stored reference to the cover picture.
	// URL construction happens at the HTTP boundary.
	CoverImage string `json:"-"`

	// PDFFile is the opaque stored reference to the source document,
	// if one was uploaded. May be empty.
	PDFFile string `json:"-"`

	// TotalChunks is the declared number of text chunks the book was
	// split into at ingestion time.
	TotalChunks int `json:"total_chunks"`

	// ActualChunks is the number of chunk rows currently present.
	// A book is complete when ActualChunks == TotalChunks > 0.
	ActualChunks int `json:"actual_chunks"`

	// CreatedAt is the catalogue insertion timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Complete reports whether every declared chunk of the book is present.
func (b Book) Complete() bool {
	return b.TotalChunks > 0 && b.ActualChunks == b.TotalChunks
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookContent is one ordered chunk of a book's text.
type BookContent struct {
	// ID is the internal unique identifier of the chunk row.
	ID int64 `json:"id"`

	// BookID identifies the owning book.
	BookID int64 `json:"book_id"`

	// ChunkNumber is the 1-based position of the chunk within the book.
	ChunkNumber int `json:"chunk_number"`

	// Content is the chunk text.
	Content string `json:"content"`

	// BookTitle and BookAuthor are denormalized from the books table for
	// the reader screen; populated by the content queries only.
	BookTitle  string `json:"book_title"`
	BookAuthor string `json:"book_author"`
}

// TableName returns the name of the database table
// associated with the BookContent model.
func (c BookContent) TableName() string {
	return "book_contents"
}
