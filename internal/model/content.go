// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Content statuses. Each entity type has its own notion of "visible".
const (
	JobStatusOpen       = "open"
	JobStatusClosed     = "closed"
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	EntityStatusActive  = "active"
)

// Job is a render-safe careers listing.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Technologies []string `json:"technologies"`
	Salary       string   `json:"salary"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// BlogPost is a render-safe blog article. Content holds the authored
// markdown; HTML holds the rendered, sanitized form.
type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	HTML        string   `json:"html"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Status      string   `json:"status"`
	PublishedAt string   `json:"publishedAt"`
	CreatedAt   string   `json:"createdAt"`
}

// Service is a render-safe service offering.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Status      string   `json:"status"`
	Order       int      `json:"order"`
}

// Venture is a render-safe portfolio company entry.
type Venture struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Industry         string   `json:"industry"`
	Stage            string   `json:"stage"`
	Website          string   `json:"website"`
	Logo             string   `json:"logo"`
	Growth           string   `json:"growth"`
	TeamSize         string   `json:"teamSize"`
	Technologies     []string `json:"technologies"`
	FoundedYear      string   `json:"foundedYear"`
	Status           string   `json:"status"`
}

// CaseStudy is a render-safe client engagement write-up.
type CaseStudy struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Client         string   `json:"client"`
	Industry       string   `json:"industry"`
	Challenge      string   `json:"challenge"`
	Solution       string   `json:"solution"`
	Results        []string `json:"results"`
	Technologies   []string `json:"technologies"`
	Gallery        []string `json:"gallery"`
	Image          string   `json:"image"`
	CompletionDate string   `json:"completionDate,omitempty"`
	Status         string   `json:"status"`
}

// TeamMember is a render-safe staff profile.
type TeamMember struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Position string   `json:"position"`
	Bio      string   `json:"bio"`
	Image    string   `json:"image"`
	Skills   []string `json:"skills"`
	LinkedIn string   `json:"linkedin"`
	Twitter  string   `json:"twitter"`
	Status   string   `json:"status"`
	Order    int      `json:"order"`
}

// PressRelease is a render-safe press/news item.
type PressRelease struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Status      string `json:"status"`
}

// MediaAsset is a render-safe uploaded media record.
type MediaAsset struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	FileName     string `json:"fileName"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Alt          string `json:"alt"`
	UploadedAt   string `json:"uploadedAt"`
}
