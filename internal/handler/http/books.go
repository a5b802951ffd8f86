package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/service"
	"github.com/jovanamartatilova/librareads/internal/utils"
	"github.com/jovanamartatilova/librareads/models"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	books, err := h.services.LibraryService.ListBooks(ctx)
	if err != nil {
		log.Err(err).Msg("book list failed")
		writeError(w, err)
		return
	}

	resp := models.BookListResponse{
		Status:     "success",
		Books:      make([]models.BookResponse, 0, len(books)),
		TotalCount: len(books),
	}
	if len(books) == 0 {
		resp.Message = "the catalogue is empty"
	}
	for _, b := range books {
		resp.Books = append(resp.Books, h.bookResponse(b))
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// getBookContents serves both content operations. Without a query parameter
// it returns every chunk of the book in reading order; with ?chunk=N it
// returns that single chunk.
func (h *Handler) getBookContents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID, err := strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid book id in path")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	if chunkParam := r.URL.Query().Get("chunk"); chunkParam != "" {
		chunkNumber, err := strconv.Atoi(chunkParam)
		if err != nil {
			log.Err(err).Msg("invalid chunk number in query")
			writeError(w, service.ErrInvalidDataProvided)
			return
		}

		content, err := h.services.LibraryService.GetBookContent(ctx, bookID, chunkNumber)
		if err != nil {
			log.Err(err).Int64("book_id", bookID).Int("chunk", chunkNumber).Msg("content lookup failed")
			writeError(w, err)
			return
		}

		utils.WriteJSON(w, models.BookContentResponse{
			Status:      "success",
			Data:        content,
			TotalChunks: 1,
		}, http.StatusOK)
		return
	}

	contents, err := h.services.LibraryService.GetBookContents(ctx, bookID)
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("content list failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.BookContentResponse{
		Status:      "success",
		Data:        contents,
		TotalChunks: len(contents),
	}, http.StatusOK)
}

func (h *Handler) bookResponse(b models.Book) models.BookResponse {
	return models.BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Category:      b.Category,
		CoverImageURL: h.assetURL(b.CoverImage),
		PDFFileURL:    h.assetURL(b.PDFFile),
		TotalChunks:   b.TotalChunks,
		ActualChunks:  b.ActualChunks,
		IsComplete:    b.Complete(),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
