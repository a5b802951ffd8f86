package service

import (
	"context"
	"fmt"

	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/store"
	"github.com/jovanamartatilova/librareads/models"
)

// libraryService is the concrete implementation of LibraryService over the
// book repository. The catalogue is read-only through this surface; content
// ingestion happens out of band.
type libraryService struct {
	bookRepository store.BookRepository

	logger *logger.Logger
}

// NewLibraryService constructs a LibraryService wired to the given
// BookRepository.
func NewLibraryService(bookRepository store.BookRepository, logger *logger.Logger) LibraryService {
	return &libraryService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// ListBooks returns the whole catalogue, newest first.
func (s *libraryService) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	books, err := s.bookRepository.ListBooks(ctx)
	if err != nil {
		log.Err(err).Msg("book list failed")
		return nil, fmt.Errorf("book list failed: %w", err)
	}

	return books, nil
}

// GetBookContent returns a single chunk of a book's text.
// Chunk numbers below one are rejected before touching storage.
func (s *libraryService) GetBookContent(ctx context.Context, bookID int64, chunkNumber int) (models.BookContent, error) {
	log := logger.FromContext(ctx)

	if bookID <= 0 || chunkNumber < 1 {
		return models.BookContent{}, ErrInvalidDataProvided
	}

	content, err := s.bookRepository.FindContent(ctx, bookID, chunkNumber)
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Int("chunk", chunkNumber).Msg("content lookup failed")
		return models.BookContent{}, fmt.Errorf("content lookup failed: %w", err)
	}

	return content, nil
}

// GetBookContents returns every chunk of a book in reading order.
func (s *libraryService) GetBookContents(ctx context.Context, bookID int64) ([]models.BookContent, error) {
	log := logger.FromContext(ctx)

	if bookID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	contents, err := s.bookRepository.ListContents(ctx, bookID)
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("content list failed")
		return nil, fmt.Errorf("content list failed: %w", err)
	}

	return contents, nil
}
