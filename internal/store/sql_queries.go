package store

const (
	createUser = `INSERT INTO users (username, email, password_hash, profile_picture)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password_hash, profile_picture, created_at;`

	findUserByUsername = `SELECT id, username, email, password_hash, profile_picture, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT id, username, email, password_hash, profile_picture, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, profile_picture, created_at
    FROM users
    WHERE id = $1;`

	updateUserPasswordHash = `UPDATE users
    SET password_hash = $1
    WHERE id = $2;`

	deleteResetTokensForUser = `DELETE FROM reset_tokens
    WHERE user_id = $1;`

	insertResetToken = `INSERT INTO reset_tokens (user_id, token, expires_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, token, expires_at, created_at;`

	findResetTokenByToken = `SELECT id, user_id, token, expires_at, created_at
    FROM reset_tokens
    WHERE token = $1;`

	deleteResetTokenByToken = `DELETE FROM reset_tokens
    WHERE token = $1;`

	listBooksWithChunkCounts = `SELECT
        b.id, b.title, b.author, b.category, b.cover_image, b.pdf_file,
        b.total_chunks, b.created_at, COUNT(bc.id) AS actual_chunks
    FROM books b
    LEFT JOIN book_contents bc ON b.id = bc.book_id
    GROUP BY b.id
    ORDER BY b.created_at DESC;`

	findBookContent = `SELECT bc.id, bc.book_id, bc.chunk_number, bc.content, b.title, b.author
    FROM book_contents bc
    JOIN books b ON bc.book_id = b.id
    WHERE bc.book_id = $1 AND bc.chunk_number = $2;`

	listBookContents = `SELECT bc.id, bc.book_id, bc.chunk_number, bc.content, b.title, b.author
    FROM book_contents bc
    JOIN books b ON bc.book_id = b.id
    WHERE bc.book_id = $1
    ORDER BY bc.chunk_number ASC;`
)
