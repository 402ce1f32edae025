package seo

import (
	"encoding/json"
	"strings"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns an EducationalOrganization schema with an optional contact email.
func Organization(name, url, email string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "EducationalOrganization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if email != "" {
		m["email"] = email
	}
	return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// CourseItem is the subset of a course card published as structured data.
type CourseItem struct {
	ID          string
	Name        string
	Description string
}

// Course returns a schema.org Course provided by the named organization.
func Course(it CourseItem, baseURL, provider string) map[string]any {
	m := map[string]any{
		"@type":       "Course",
		"name":        it.Name,
		"description": it.Description,
		"provider": map[string]any{
			"@type": "Organization",
			"name":  provider,
		},
	}
	if baseURL != "" && it.ID != "" {
		m["url"] = strings.TrimRight(baseURL, "/") + "/#" + it.ID
	}
	return m
}

// CourseList wraps courses in an ItemList.
func CourseList(items []CourseItem, baseURL, provider string) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     Course(it, baseURL, provider),
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"itemListElement": el,
	}
}
