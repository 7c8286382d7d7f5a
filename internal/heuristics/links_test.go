package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLinks_ProfileCategories(t *testing.T) {
	urls := []string{
		"https://github.com/jane",
		"https://www.linkedin.com/in/jane",
		"https://leetcode.com/jane",
		"https://auth.geeksforgeeks.org/user/jane",
		"https://jane-portfolio.dev",
	}

	result := ClassifyLinks(urls, DefaultProjectNames)

	assert.Equal(t, "https://github.com/jane", result.Profiles["github"])
	assert.Equal(t, "https://www.linkedin.com/in/jane", result.Profiles["linkedin"])
	assert.Equal(t, "https://leetcode.com/jane", result.Profiles["leetcode"])
	assert.Equal(t, "https://auth.geeksforgeeks.org/user/jane", result.Profiles["gfg"])
	assert.Equal(t, "https://jane-portfolio.dev", result.Profiles["portfolio"])
	assert.Empty(t, result.Projects)
}

func TestClassifyLinks_FirstRuleWins(t *testing.T) {
	// Contains both github.com and a portfolio keyword; github is tested first.
	result := ClassifyLinks([]string{"https://github.com/jane/portfolio"}, nil)

	assert.Equal(t, "https://github.com/jane/portfolio", result.Profiles["github"])
	assert.NotContains(t, result.Profiles, "portfolio")
}

func TestClassifyLinks_ProjectBuckets(t *testing.T) {
	urls := []string{
		"https://gitlab.com/jane/workify-demo",
		"https://schoolmanagement.example.com",
	}

	result := ClassifyLinks(urls, DefaultProjectNames)

	require.Contains(t, result.Projects, "workify")
	assert.Equal(t, "https://gitlab.com/jane/workify-demo", result.Projects["workify"].Live)
	require.Contains(t, result.Projects, "school management")
	assert.Equal(t, "https://schoolmanagement.example.com", result.Projects["school management"].Live)
}

func TestClassifyLinks_GithubProjectURLWinsProfileSlot(t *testing.T) {
	// A github.com URL always lands in the github profile slot, even when
	// it names a known project: the profile rules run first.
	result := ClassifyLinks([]string{"https://github.com/jane/workify"}, DefaultProjectNames)

	assert.Equal(t, "https://github.com/jane/workify", result.Profiles["github"])
	assert.Empty(t, result.Projects)
}

func TestClassifyLinks_UnmatchedDroppedSilently(t *testing.T) {
	result := ClassifyLinks([]string{"https://example.com/nothing"}, DefaultProjectNames)

	assert.True(t, result.Empty())
}

func TestClassifyLinks_DuplicateSlotLastWriteWins(t *testing.T) {
	urls := []string{
		"https://github.com/jane/old",
		"https://github.com/jane/new",
	}

	result := ClassifyLinks(urls, nil)

	assert.Equal(t, "https://github.com/jane/new", result.Profiles["github"])
}

func TestClassifyLinks_Deterministic(t *testing.T) {
	urls := []string{
		"https://github.com/jane",
		"https://linkedin.com/in/jane",
		"https://workify.example.com",
		"https://example.com/dropped",
	}

	first := ClassifyLinks(urls, DefaultProjectNames)
	second := ClassifyLinks(urls, DefaultProjectNames)

	assert.Equal(t, first, second)
}

func TestClassifyLinks_EmptyInput(t *testing.T) {
	result := ClassifyLinks(nil, DefaultProjectNames)

	assert.True(t, result.Empty())
	assert.NotNil(t, result.Profiles)
	assert.NotNil(t, result.Projects)
}
