package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. It manages directory listings in the "contacts" table.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact persists a new directory listing and returns it with
// server-assigned fields (ContactID, CreatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUnknownUser], meaning
//     the listing references a user_id that does not exist.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContact,
		contact.UserID, contact.Intro, contact.ContactValue,
		nullableString(contact.Location), nullableString(contact.MBTI), contact.Gender)

	var created models.Contact
	var location, mbti sql.NullString
	err := row.Scan(&created.ContactID, &created.UserID, &created.Intro, &created.ContactValue,
		&location, &mbti, &created.Gender, &created.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			log.Err(err).Int64("user_id", contact.UserID).Msg("contact references unknown user")
			return models.Contact{}, ErrUnknownUser
		}

		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error: insert failed")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created.Location = location.String
	created.MBTI = mbti.String

	return created, nil
}

// ListContacts returns every listing matching the given filter, ordered by
// created_at ascending. An empty filter returns the whole directory; there
// is no pagination.
func (r *contactRepository) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var contact models.Contact
		var location, mbti sql.NullString

		if err := rows.Scan(&contact.ContactID, &contact.UserID, &contact.Intro, &contact.ContactValue,
			&location, &mbti, &contact.Gender, &contact.CreatedAt); err != nil {
			log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		contact.Location = location.String
		contact.MBTI = mbti.String
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// DeleteContact removes the listing with the given id. Deleting an id that
// does not exist is not an error: the operation is idempotent and the
// affected-rows count is intentionally ignored.
func (r *contactRepository) DeleteContact(ctx context.Context, contactID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteContact, contactID); err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
