package content

import (
	"context"

	"github.com/baobabstack/website-api/internal/pkg/logger"
)

// Fetcher is the primary (database) tier of the content source.
type Fetcher interface {
	Fetch(ctx context.Context, resource string) (interface{}, error)
	BlogPosts(ctx context.Context, limit, offset int) ([]BlogPost, int64, error)
	BlogPost(ctx context.Context, id int64) (*BlogPost, error)
	ContactInfo(ctx context.Context) (*ContactInfo, error)
}

// Source is a two-tier content reader: the primary store, with the bundled
// snapshot as fallback when the store errors. Any storage error selects the
// snapshot; callers are told which tier served them so staleness is never
// silent.
type Source struct {
	store Fetcher
	snap  *Snapshot
}

// NewSource creates a content source over the given store and snapshot.
func NewSource(store Fetcher, snap *Snapshot) *Source {
	return &Source{store: store, snap: snap}
}

// Fetch returns the named resource's records and whether the snapshot tier
// served them.
func (s *Source) Fetch(ctx context.Context, resource string) (interface{}, bool) {
	data, err := s.store.Fetch(ctx, resource)
	if err != nil {
		logger.Warn("content store unavailable; serving static fallback",
			"resource", resource, "error", err)
		return s.snap.Load(resource), true
	}
	return data, false
}

// BlogPosts returns one limit/offset page of posts, the total post count,
// and whether the snapshot tier served them.
func (s *Source) BlogPosts(ctx context.Context, limit, offset int) ([]BlogPost, int64, bool) {
	posts, total, err := s.store.BlogPosts(ctx, limit, offset)
	if err != nil {
		logger.Warn("content store unavailable; serving static fallback",
			"resource", "blog", "error", err)
		snapPosts, snapTotal := s.snap.LoadBlogPage(limit, offset)
		return snapPosts, int64(snapTotal), true
	}
	return posts, total, false
}

// BlogPost returns the post with the given id and whether the snapshot tier
// served it. A nil post means no such post exists in the tier consulted.
func (s *Source) BlogPost(ctx context.Context, id int64) (*BlogPost, bool) {
	post, err := s.store.BlogPost(ctx, id)
	if err != nil {
		logger.Warn("content store unavailable; serving static fallback",
			"resource", "blog", "id", id, "error", err)
		return s.snap.LoadBlogPost(id), true
	}
	return post, false
}

// ContactInfo returns the public contact details and whether the snapshot
// tier served them.
func (s *Source) ContactInfo(ctx context.Context) (*ContactInfo, bool) {
	info, err := s.store.ContactInfo(ctx)
	if err != nil {
		logger.Warn("content store unavailable; serving static fallback",
			"resource", "contact-info", "error", err)
		snapInfo, snapErr := s.snap.LoadContactInfo()
		if snapErr != nil {
			logger.Error("contact-info snapshot unavailable", "error", snapErr)
			return &ContactInfo{}, true
		}
		return snapInfo, true
	}
	return info, false
}
