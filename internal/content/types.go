// Package content serves the read-only marketing content: database-backed
// records with bundled static-JSON fallbacks for when the database is
// unreachable.
package content

import "time"

// Feature is a product feature card.
type Feature struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// PricingPlan is a pricing tier.
type PricingPlan struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular,omitempty"`
}

// Stat is a headline company statistic.
type Stat struct {
	ID    int64  `json:"id"`
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// TechStackItem is a technology the company advertises working with.
type TechStackItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// CompanyValue is an "our values" entry.
type CompanyValue struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// TeamMember is a staff profile.
type TeamMember struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID          int64     `json:"id"`
	Author      string    `json:"author"`
	Company     string    `json:"company,omitempty"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content,omitempty"`
	Author      string    `json:"author,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Podcast is a published podcast episode.
type Podcast struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AudioURL    string    `json:"audioUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// PortfolioItem is a showcased past project.
type PortfolioItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Link        string `json:"link,omitempty"`
	Category    string `json:"category,omitempty"`
}

// ContactInfo is the company's public contact details.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Resources lists every list-shaped content resource served under /content.
var Resources = []string{
	"blog", "team", "pricing", "testimonials", "features",
	"techstack", "values", "stats", "podcasts", "portfolio",
}

// ValidResource reports whether name is a served content resource.
func ValidResource(name string) bool {
	for _, r := range Resources {
		if r == name {
			return true
		}
	}
	return false
}
