package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseListPositionsAndURLs(t *testing.T) {
	doc := CourseList([]CourseItem{
		{ID: "l2", Name: "Level 2 First Aid", Description: "Core skills"},
		{ID: "l3", Name: "Level 3 First Aid"},
	}, "https://example.test/", "SecuriWise Training")

	var got struct {
		Type  string `json:"@type"`
		Items []struct {
			Position int `json:"position"`
			Item     struct {
				Type     string `json:"@type"`
				Name     string `json:"name"`
				URL      string `json:"url"`
				Provider struct {
					Name string `json:"name"`
				} `json:"provider"`
			} `json:"item"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(JSON(doc)), &got))
	assert.Equal(t, "ItemList", got.Type)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.Items[1].Position)
	assert.Equal(t, "Course", got.Items[0].Item.Type)
	assert.Equal(t, "https://example.test/#l2", got.Items[0].Item.URL)
	assert.Equal(t, "SecuriWise Training", got.Items[0].Item.Provider.Name)
}

func TestOrganizationOmitsEmptyFields(t *testing.T) {
	m := Organization("SecuriWise Training", "", "")
	_, hasURL := m["url"]
	_, hasEmail := m["email"]
	assert.False(t, hasURL)
	assert.False(t, hasEmail)
	assert.Equal(t, "EducationalOrganization", m["@type"])
}

func TestJSONReturnsEmptyOnError(t *testing.T) {
	assert.Equal(t, "", JSON(map[string]any{"bad": make(chan int)}))
}
