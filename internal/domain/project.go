package domain

import (
	"time"

	"github.com/lib/pq"
)

// Project is a portfolio entry shown on the public site. Column names are
// snake_case in the store and camelCase on the wire; the db tags are the
// single place that mapping lives.
type Project struct {
	ID           int64          `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	Image        string         `db:"image" json:"image"`
	SubImages    pq.StringArray `db:"sub_images" json:"subImages"`
	Technologies pq.StringArray `db:"technologies" json:"technologies"`
	GithubURL    string         `db:"github_url" json:"githubUrl"`
	LiveURL      string         `db:"live_url" json:"liveUrl"`
	Category     string         `db:"category" json:"category"`
	CreatedAt    time.Time      `db:"created_at" json:"-"`
}

// ProjectFields carries the mutable subset of a project used by create and
// update operations.
type ProjectFields struct {
	Title        string
	Description  string
	Image        string
	SubImages    []string
	Technologies []string
	GithubURL    string
	LiveURL      string
	Category     string
}
