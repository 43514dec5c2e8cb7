package content

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Store provides database reads for content records
type Store struct {
	db *sql.DB
}

// NewStore creates a new content store
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Fetch returns all records of the named resource. Used by the two-tier
// source; resource names come from the Resources whitelist.
func (s *Store) Fetch(ctx context.Context, resource string) (interface{}, error) {
	switch resource {
	case "features":
		return s.Features(ctx)
	case "pricing":
		return s.PricingPlans(ctx)
	case "stats":
		return s.Stats(ctx)
	case "techstack":
		return s.TechStack(ctx)
	case "values":
		return s.Values(ctx)
	case "team":
		return s.TeamMembers(ctx)
	case "testimonials":
		return s.Testimonials(ctx)
	case "podcasts":
		return s.Podcasts(ctx)
	case "portfolio":
		return s.Portfolio(ctx)
	}
	return nil, fmt.Errorf("unknown content resource %q", resource)
}

// Features returns all feature cards ordered by id.
func (s *Store) Features(ctx context.Context) ([]Feature, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description, COALESCE(icon, '') FROM features ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Feature{}
	for rows.Next() {
		var f Feature
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Icon); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// PricingPlans returns all pricing tiers ordered by id.
func (s *Store) PricingPlans(ctx context.Context) ([]PricingPlan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, price, description, features, popular FROM pricing_plans ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []PricingPlan{}
	for rows.Next() {
		var p PricingPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, pq.Array(&p.Features), &p.Popular); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Stats returns all headline stats ordered by id.
func (s *Store) Stats(ctx context.Context) ([]Stat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, icon, value, label FROM stats ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Stat{}
	for rows.Next() {
		var st Stat
		if err := rows.Scan(&st.ID, &st.Icon, &st.Value, &st.Label); err != nil {
			return nil, err
		}
		items = append(items, st)
	}
	return items, rows.Err()
}

// TechStack returns all tech-stack entries ordered by id.
func (s *Store) TechStack(ctx context.Context) ([]TechStackItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, icon, COALESCE(category, ''), COALESCE(description, '') FROM tech_stack ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []TechStackItem{}
	for rows.Next() {
		var ti TechStackItem
		if err := rows.Scan(&ti.ID, &ti.Name, &ti.Icon, &ti.Category, &ti.Description); err != nil {
			return nil, err
		}
		items = append(items, ti)
	}
	return items, rows.Err()
}

// Values returns all company values ordered by id.
func (s *Store) Values(ctx context.Context) ([]CompanyValue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, COALESCE(icon, '') FROM company_values ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []CompanyValue{}
	for rows.Next() {
		var v CompanyValue
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Icon); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

// TeamMembers returns all staff profiles ordered by id.
func (s *Store) TeamMembers(ctx context.Context) ([]TeamMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, COALESCE(bio, ''), COALESCE(image_url, '') FROM team_members ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []TeamMember{}
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Testimonials returns all customer quotes, newest first.
func (s *Store) Testimonials(ctx context.Context) ([]Testimonial, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, author, COALESCE(company, ''), content, COALESCE(rating, 0), published_at
		FROM testimonials ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Testimonial{}
	for rows.Next() {
		var tm Testimonial
		if err := rows.Scan(&tm.ID, &tm.Author, &tm.Company, &tm.Content, &tm.Rating, &tm.PublishedAt); err != nil {
			return nil, err
		}
		items = append(items, tm)
	}
	return items, rows.Err()
}

// BlogPosts returns one page of published posts, newest first, without the
// full body, plus the total post count for pagination math.
func (s *Store) BlogPosts(ctx context.Context, limit, offset int) ([]BlogPost, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, COALESCE(excerpt, ''), COALESCE(author, ''), COALESCE(image_url, ''), published_at
		FROM blog_posts ORDER BY published_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []BlogPost{}
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Author, &p.ImageURL, &p.PublishedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

// BlogPost returns a single post with its full body. Returns (nil, nil)
// when absent.
func (s *Store) BlogPost(ctx context.Context, id int64) (*BlogPost, error) {
	query := `SELECT id, title, COALESCE(excerpt, ''), COALESCE(content, ''), COALESCE(author, ''),
		COALESCE(image_url, ''), published_at FROM blog_posts WHERE id = $1`

	p := &BlogPost{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Author, &p.ImageURL, &p.PublishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// Podcasts returns all episodes, newest first.
func (s *Store) Podcasts(ctx context.Context) ([]Podcast, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(audio_url, ''), published_at
		FROM podcasts ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Podcast{}
	for rows.Next() {
		var p Podcast
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.AudioURL, &p.PublishedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Portfolio returns all showcased projects ordered by id.
func (s *Store) Portfolio(ctx context.Context) ([]PortfolioItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(image_url, ''), COALESCE(link, ''), COALESCE(category, '')
		FROM portfolio_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []PortfolioItem{}
	for rows.Next() {
		var p PortfolioItem
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Link, &p.Category); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// ContactInfo returns the single public contact-details row.
func (s *Store) ContactInfo(ctx context.Context) (*ContactInfo, error) {
	info := &ContactInfo{}
	err := s.db.QueryRowContext(ctx,
		`SELECT email, COALESCE(phone, ''), COALESCE(address, '') FROM contact_info LIMIT 1`).
		Scan(&info.Email, &info.Phone, &info.Address)
	if err != nil {
		return nil, err
	}
	return info, nil
}
