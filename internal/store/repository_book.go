package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository]
// over the "books" and "book_contents" tables.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// ListBooks returns the whole catalogue, newest first, with the actual
// chunk count aggregated per book so callers can report completeness.
func (r *bookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBooksWithChunkCounts)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error: book list query failed")
		if r.db.Retryable(err) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.CoverImage, &b.PDFFile, &b.TotalChunks, &b.CreatedAt, &b.ActualChunks); err != nil {
			log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error: scanning book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// FindContent retrieves one chunk of one book, joined with the book's title
// and author. Returns [ErrBookContentNotFound] when the book or chunk does
// not exist.
func (r *bookRepository) FindContent(ctx context.Context, bookID int64, chunkNumber int) (models.BookContent, error) {
	log := logger.FromContext(ctx)

	var content models.BookContent
	row := r.db.QueryRowContext(ctx, findBookContent, bookID, chunkNumber)

	if err := row.Scan(&content.ID, &content.BookID, &content.ChunkNumber, &content.Content, &content.BookTitle, &content.BookAuthor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookContent{}, ErrBookContentNotFound
		}

		log.Err(err).Str("func", "*bookRepository.FindContent").Msg("error: content lookup failed")
		if r.db.Retryable(err) {
			return models.BookContent{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return models.BookContent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return content, nil
}

// ListContents retrieves every chunk of one book in reading order.
// Returns [ErrBookContentNotFound] when the book has no content at all.
func (r *bookRepository) ListContents(ctx context.Context, bookID int64) ([]models.BookContent, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBookContents, bookID)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListContents").Msg("error: content list query failed")
		if r.db.Retryable(err) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	contents := make([]models.BookContent, 0)
	for rows.Next() {
		var c models.BookContent
		if err := rows.Scan(&c.ID, &c.BookID, &c.ChunkNumber, &c.Content, &c.BookTitle, &c.BookAuthor); err != nil {
			log.Err(err).Str("func", "*bookRepository.ListContents").Msg("error: scanning content row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contents = append(contents, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(contents) == 0 {
		return nil, ErrBookContentNotFound
	}

	return contents, nil
}
