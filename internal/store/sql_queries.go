package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jiminoh-dev/linkup/models"
)

const (
	createUser = `INSERT INTO users (username, password, name, phone_or_insta, gender, location, mbti)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, username, password, name, phone_or_insta, gender, location, mbti, created_at;`

	findUserByUsername = `SELECT id, username, password, name, phone_or_insta, gender, location, mbti, created_at
    FROM users
    WHERE username = $1;`

	createContact = `INSERT INTO contacts (user_id, intro, contact_value, location, mbti, gender)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, user_id, intro, contact_value, location, mbti, gender, created_at;`

	deleteContact = `DELETE FROM contacts WHERE id = $1;`
)

// buildListContactsQuery assembles the filtered directory listing query.
// Optional predicates are attached through squirrel so they always combine
// with AND and stay parameterised; the ordering invariant (created_at ASC,
// oldest first) is fixed here and nowhere else.
func buildListContactsQuery(filter models.ContactFilter) (string, []any, error) {
	builder := sq.
		Select("id", "user_id", "intro", "contact_value", "location", "mbti", "gender", "created_at").
		From("contacts").
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at ASC")

	if filter.Location != "" {
		builder = builder.Where(sq.Eq{"location": filter.Location})
	}

	if filter.ExcludeGender != "" {
		builder = builder.Where(sq.NotEq{"gender": filter.ExcludeGender})
	}

	return builder.ToSql()
}
