package models

import (
	"github.com/pkg/errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxPage bounds the page number so that offsets never overflow.
	MaxPage = 1_000_000
	// MaxSearchQueryLength is measured in runes.
	MaxSearchQueryLength = 256
)

// RawCriteria is the listing request as received, e.g. from URL query parameters.
type RawCriteria struct {
	Page     string
	Role     string
	Location string
	Industry string
	Query    string
}

// Criteria is a normalized discovery request. Zero values mean "no filter".
type Criteria struct {
	RoleCategory RoleCategory
	City         City
	Industry     Industry
	SearchQuery  string
	Page         int
}

// NewCriteria normalizes raw input. Malformed values degrade to "no filter" and the
// page to 1; it never fails.
func NewCriteria(raw RawCriteria) Criteria {
	page, err := strconv.Atoi(strings.TrimSpace(raw.Page))
	switch {
	case err == nil:
	case errors.Is(err, strconv.ErrRange) && page > 0:
		// Atoi saturates, so the sign survives an overflow.
		page = MaxPage
	default:
		page = 1
	}

	criteria := Criteria{
		RoleCategory: RoleCategory(raw.Role),
		City:         City(raw.Location),
		Industry:     Industry(raw.Industry),
		SearchQuery:  raw.Query,
		Page:         page,
	}
	return criteria.Normalize()
}

// Normalize applies the same rules as NewCriteria to an already typed value.
func (c Criteria) Normalize() Criteria {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.Page > MaxPage {
		c.Page = MaxPage
	}

	c.RoleCategory, _ = ParseRoleCategory(string(c.RoleCategory))
	c.City, _ = ParseCity(string(c.City))
	c.Industry, _ = ParseIndustry(string(c.Industry))

	c.SearchQuery = strings.TrimSpace(c.SearchQuery)
	if utf8.RuneCountInString(c.SearchQuery) > MaxSearchQueryLength {
		c.SearchQuery = strings.TrimSpace(string([]rune(c.SearchQuery)[:MaxSearchQueryLength]))
	}
	return c
}

func (c Criteria) HasActiveFilters() bool {
	return c.RoleCategory != "" || c.City != "" || c.Industry != "" || c.SearchQuery != ""
}
