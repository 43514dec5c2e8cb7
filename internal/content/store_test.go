package content

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFeatures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, description, .* FROM features ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "icon"}).
			AddRow(int64(1), "Fast builds", "Ship in days", "bolt").
			AddRow(int64(2), "Support", "24/7 team", ""))

	store := NewStore(db)
	features, err := store.Features(context.Background())
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "Fast builds", features[0].Title)
	assert.Empty(t, features[1].Icon)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorePricingPlansScansFeatureArray(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, price, description, features, popular FROM pricing_plans ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "features", "popular"}).
			AddRow(int64(1), "Starter", "$99/mo", "For small teams",
				pq.StringArray{"1 project", "Email support"}, false))

	store := NewStore(db)
	plans, err := store.PricingPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, []string{"1 project", "Email support"}, plans[0].Features)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreBlogPostNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM blog_posts WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "excerpt", "content", "author", "image_url", "published_at"}))

	store := NewStore(db)
	post, err := store.BlogPost(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreFetchDispatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, icon, value, label FROM stats ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "icon", "value", "label"}).
			AddRow(int64(1), "users", "500+", "Happy clients"))

	store := NewStore(db)
	data, err := store.Fetch(context.Background(), "stats")
	require.NoError(t, err)

	stats, ok := data.([]Stat)
	require.True(t, ok)
	require.Len(t, stats, 1)
	assert.Equal(t, "500+", stats[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreFetchUnknownResource(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewStore(db).Fetch(context.Background(), "secrets")
	assert.Error(t, err)
}

func TestStoreTestimonialsOrderedByPublishedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM testimonials ORDER BY published_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author", "company", "content", "rating", "published_at"}).
			AddRow(int64(2), "Amai N", "Acme", "Great team", 5, newer).
			AddRow(int64(1), "Tendai C", "", "Solid work", 4, older))

	store := NewStore(db)
	items, err := store.Testimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].PublishedAt.After(items[1].PublishedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreBlogPostsPaged(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery("SELECT id, title, .* FROM blog_posts ORDER BY published_at DESC LIMIT \\$1 OFFSET \\$2").
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "excerpt", "author", "image_url", "published_at"}).
			AddRow(int64(11), "Post 11", "", "", "", time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC)).
			AddRow(int64(12), "Post 12", "", "", "", time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)))

	posts, total, err := NewStore(db).BlogPosts(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, posts, 2)
	assert.Equal(t, "Post 11", posts[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
