package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conformingRecord() map[string]any {
	return map[string]any{
		"personal_info": map[string]any{
			"full_name": "Jane Doe",
			"location":  "Austin, TX",
			"contact": map[string]any{
				"phone": "",
				"email": "jane@x.com",
				"professional_links": map[string]any{
					"github": "", "leetcode": "", "linkedin": "", "gfg": "",
					"portfolio": "", "codechef": "", "hackerrank": "", "website": "",
				},
			},
		},
		"education":                   nil,
		"skills":                      map[string]any{"programming_languages": []string{"Go"}},
		"experience":                  []any{},
		"projects":                    nil,
		"achievements":                []string{},
		"positions_of_responsibility": nil,
	}
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return body
}

func TestValidateResumeRecord_Conforming(t *testing.T) {
	assert.NoError(t, ValidateResumeRecord(marshal(t, conformingRecord())))
}

func TestValidateResumeRecord_NullSectionsAllowed(t *testing.T) {
	record := conformingRecord()
	record["education"] = nil
	record["projects"] = nil

	assert.NoError(t, ValidateResumeRecord(marshal(t, record)))
}

func TestValidateResumeRecord_MissingSection(t *testing.T) {
	record := conformingRecord()
	delete(record, "skills")

	err := ValidateResumeRecord(marshal(t, record))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "skills")
}

func TestValidateResumeRecord_WrongType(t *testing.T) {
	record := conformingRecord()
	record["achievements"] = "not a list"

	err := ValidateResumeRecord(marshal(t, record))
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateResumeRecord_NotJSON(t *testing.T) {
	err := ValidateResumeRecord([]byte("not json"))
	require.Error(t, err)

	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve)
}
