package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot serves bundled static JSON files shaped identically to the live
// responses ({"data": [...]}), used when the database is unreachable.
type Snapshot struct {
	dir string
}

// NewSnapshot creates a snapshot source rooted at dir.
func NewSnapshot(dir string) *Snapshot {
	return &Snapshot{dir: dir}
}

type snapshotFile struct {
	Data json.RawMessage `json:"data"`
}

// Load reads the bundled snapshot for the named resource. A missing or
// malformed file degrades to an empty list rather than an error, mirroring
// the live endpoints' availability-over-freshness posture.
func (s *Snapshot) Load(resource string) json.RawMessage {
	path := filepath.Join(s.dir, resource+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return json.RawMessage("[]")
	}

	var f snapshotFile
	if err := json.Unmarshal(raw, &f); err != nil || f.Data == nil {
		return json.RawMessage("[]")
	}
	return f.Data
}

// LoadBlogPage returns one limit/offset slice of the bundled blog snapshot
// plus the total post count. An out-of-range offset yields an empty list.
func (s *Snapshot) LoadBlogPage(limit, offset int) ([]BlogPost, int) {
	var posts []BlogPost
	if err := json.Unmarshal(s.Load("blog"), &posts); err != nil {
		return []BlogPost{}, 0
	}
	total := len(posts)
	if offset >= total {
		return []BlogPost{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return posts[offset:end], total
}

// LoadBlogPost searches the bundled blog snapshot for the post with the
// given id. Returns nil when the snapshot is missing or has no such post.
func (s *Snapshot) LoadBlogPost(id int64) *BlogPost {
	var posts []BlogPost
	if err := json.Unmarshal(s.Load("blog"), &posts); err != nil {
		return nil
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i]
		}
	}
	return nil
}

// LoadContactInfo reads the bundled contact-info snapshot, which holds a
// single object rather than a list.
func (s *Snapshot) LoadContactInfo() (*ContactInfo, error) {
	path := filepath.Join(s.dir, "contact-info.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contact-info snapshot: %w", err)
	}

	var f struct {
		Data ContactInfo `json:"data"`
	}
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing contact-info snapshot: %w", err)
	}
	return &f.Data, nil
}
