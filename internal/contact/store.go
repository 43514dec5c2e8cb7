package contact

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Store provides database operations for contact submissions
type Store struct {
	db *sql.DB
}

// NewStore creates a new contact store
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const submissionColumns = `id, name, email, COALESCE(phone, ''), COALESCE(company, ''),
	subject, message, subscribe_to_newsletter, agree_to_privacy_policy,
	status, COALESCE(admin_note, ''), submitted_at`

// Create inserts a validated submission as a new record. Status defaults to
// NEW and submitted_at is set server-side; the caller's values for both are
// ignored.
func (s *Store) Create(ctx context.Context, sub *Submission) error {
	sub.Status = StatusNew
	sub.SubmittedAt = time.Now().UTC()

	query := `INSERT INTO contact_submissions (name, email, phone, company, subject, message,
		subscribe_to_newsletter, agree_to_privacy_policy, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	return s.db.QueryRowContext(ctx, query, sub.Name, sub.Email,
		nullIfEmpty(sub.Phone), nullIfEmpty(sub.Company), sub.Subject, sub.Message,
		sub.SubscribeToNewsletter, sub.AgreeToPrivacyPolicy, sub.Status, sub.SubmittedAt,
	).Scan(&sub.ID)
}

// Get retrieves a submission by ID. Returns (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, id int64) (*Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM contact_submissions WHERE id = $1`

	sub := &Submission{}
	err := scanSubmission(s.db.QueryRowContext(ctx, query, id), sub)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return sub, err
}

// List returns one page of submissions ordered by submission time descending,
// plus the total count matching the filters. Free-text search is a
// case-insensitive substring match over name/email/subject/message.
// Out-of-range pages yield an empty slice without error.
func (s *Store) List(ctx context.Context, params ListParams) ([]Submission, int64, error) {
	var conds []string
	var args []interface{}

	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR subject ILIKE $%d OR message ILIKE $%d)", n, n, n, n))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM contact_submissions` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting submissions: %w", err)
	}

	args = append(args, params.Limit, params.Offset())
	query := fmt.Sprintf(`SELECT %s FROM contact_submissions%s ORDER BY submitted_at DESC LIMIT $%d OFFSET $%d`,
		submissionColumns, where, len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	subs := []Submission{}
	for rows.Next() {
		var sub Submission
		if err := scanSubmission(rows, &sub); err != nil {
			return nil, 0, err
		}
		subs = append(subs, sub)
	}
	return subs, total, rows.Err()
}

// Update applies a partial moderation update; nil fields keep their stored
// values. Returns (nil, nil) when the submission does not exist.
func (s *Store) Update(ctx context.Context, id int64, params UpdateParams) (*Submission, error) {
	query := `UPDATE contact_submissions
		SET status = COALESCE($2, status), admin_note = COALESCE($3, admin_note)
		WHERE id = $1
		RETURNING ` + submissionColumns

	sub := &Submission{}
	err := scanSubmission(s.db.QueryRowContext(ctx, query, id, params.Status, params.AdminNote), sub)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return sub, err
}

// All returns every submission ordered by submission time descending.
// Used by the CSV export, which materializes the full result set.
func (s *Store) All(ctx context.Context) ([]Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM contact_submissions ORDER BY submitted_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("exporting submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		if err := scanSubmission(rows, &sub); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row rowScanner, sub *Submission) error {
	return row.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Company,
		&sub.Subject, &sub.Message, &sub.SubscribeToNewsletter, &sub.AgreeToPrivacyPolicy,
		&sub.Status, &sub.AdminNote, &sub.SubmittedAt)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a search term like "50%"
// matches literally instead of as a wildcard. Backslash is Postgres's
// default LIKE escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
