package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelReplyValidJSON(t *testing.T) {
	raw := `{"matchPercent":55,"missingKeywords":["React","AWS","CI/CD"],"suggestions":"• Learn React","summary":"Solid generalist."}`

	res := ParseModelReply(raw)

	assert.Equal(t, 55, res.MatchPercent)
	assert.Equal(t, []string{"React", "AWS", "CI/CD"}, res.MissingKeywords)
	assert.Equal(t, "• Learn React", res.Suggestions)
	assert.Equal(t, "Solid generalist.", res.Summary)
}

func TestParseModelReplyFencedEqualsBare(t *testing.T) {
	bare := `{"matchPercent":72,"missingKeywords":["Go"],"suggestions":"• Ship more","summary":"Promising."}`
	cases := []string{
		"```json\n" + bare + "\n```",
		"```\n" + bare + "\n```",
		"  \n```json\n" + bare + "\n```\n  ",
		bare,
	}

	want := ParseModelReply(bare)
	for _, raw := range cases {
		assert.Equal(t, want, ParseModelReply(raw))
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	raw := "```json\n{\"matchPercent\":1}\n```"
	once := StripFences(raw)
	assert.Equal(t, once, StripFences(once))
}

func TestParseModelReplyMalformed(t *testing.T) {
	cases := []string{
		"",
		"sorry, I cannot help with that",
		"{not json at all",
		"```json\nstill not json\n```",
	}
	for _, raw := range cases {
		res := ParseModelReply(raw)
		require.Equal(t, FallbackResult(), res, "input: %q", raw)
		require.NotNil(t, res.MissingKeywords)
	}
}

func TestParseModelReplyWrongFieldTypes(t *testing.T) {
	raw := `{"matchPercent":"ninety","missingKeywords":"React","suggestions":42,"summary":null}`

	res := ParseModelReply(raw)

	assert.Equal(t, 0, res.MatchPercent)
	assert.Equal(t, []string{}, res.MissingKeywords)
	assert.Equal(t, "No suggestions available", res.Suggestions)
	assert.Equal(t, "No summary available", res.Summary)
}

func TestParseModelReplyMissingFields(t *testing.T) {
	res := ParseModelReply(`{"matchPercent":88}`)

	assert.Equal(t, 88, res.MatchPercent)
	assert.Equal(t, []string{}, res.MissingKeywords)
	assert.Equal(t, "No suggestions available", res.Suggestions)
	assert.Equal(t, "No summary available", res.Summary)
}

func TestParseModelReplyKeepsNonStringKeywordsOut(t *testing.T) {
	res := ParseModelReply(`{"matchPercent":10,"missingKeywords":["Go",7,true,"AWS"]}`)

	assert.Equal(t, []string{"Go", "AWS"}, res.MissingKeywords)
}

func TestParseModelReplyDoesNotClamp(t *testing.T) {
	// Out-of-range numbers are stored as-is.
	res := ParseModelReply(`{"matchPercent":150}`)
	assert.Equal(t, 150, res.MatchPercent)

	res = ParseModelReply(`{"matchPercent":55.7}`)
	assert.Equal(t, 55, res.MatchPercent)
}
