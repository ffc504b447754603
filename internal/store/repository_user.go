package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. An empty PasswordHash is
// stored as NULL so Google-handoff accounts carry no credential at all.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, nullableString(user.PasswordHash), user.Name,
		nullableString(user.PhoneOrInsta), user.Gender, user.Location, user.MBTI)

	var created models.User
	var password, phoneOrInsta sql.NullString
	err := row.Scan(&created.UserID, &created.Username, &password, &created.Name,
		&phoneOrInsta, &created.Gender, &created.Location, &created.MBTI, &created.CreatedAt)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created.PasswordHash = password.String
	created.PhoneOrInsta = phoneOrInsta.String

	return created, nil
}

// FindUserByUsername retrieves the user record whose username matches the
// given key. Every login flow (credential and Google) funnels through here.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var password, phoneOrInsta sql.NullString
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	err := row.Scan(&foundUser.UserID, &foundUser.Username, &password, &foundUser.Name,
		&phoneOrInsta, &foundUser.Gender, &foundUser.Location, &foundUser.MBTI, &foundUser.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundUser.PasswordHash = password.String
	foundUser.PhoneOrInsta = phoneOrInsta.String

	return foundUser, nil
}

// nullableString maps an empty string to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
