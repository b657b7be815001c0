package adzuna

import (
	"net/http"
	"time"
)

// Config defines Adzuna API client settings.
type Config struct {
	AppID      string
	AppKey     string
	Country    string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries the Adzuna job search API.
type Client struct {
	appID      string
	appKey     string
	country    string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

// SearchParams describe a job search request.
type SearchParams struct {
	Location string
	Remote   *bool
}

type searchResponse struct {
	Count   int       `json:"count"`
	Results []posting `json:"results"`
	Pages   int       `json:"pages"`
}

type posting struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Company     companySummary  `json:"company"`
	Location    locationSummary `json:"location"`
	Description string          `json:"description"`
	Created     string          `json:"created"`
	RedirectURL string          `json:"redirect_url"`
	Contract    string          `json:"contract_time"`
	Category    struct {
		Label string `json:"label"`
	} `json:"category"`
}

type companySummary struct {
	DisplayName string `json:"display_name"`
}

type locationSummary struct {
	DisplayName string `json:"display_name"`
}

// Posting is a normalized Adzuna job posting.
type Posting struct {
	ID          string
	Title       string
	CompanyName string
	Location    string
	URL         string
	Description string
	Category    string
	Remote      bool
	PostedAt    time.Time
	FetchedAt   time.Time
}
