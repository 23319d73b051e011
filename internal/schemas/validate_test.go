package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeRecord_MinimalRecord(t *testing.T) {
	assert.NoError(t, ValidateResumeRecord([]byte(`{}`)))
}

func TestValidateResumeRecord_FullRecord(t *testing.T) {
	payload := `{
		"name": "Jane Doe",
		"title": "Python Developer",
		"email": "jane@example.com",
		"skills": ["Python", "Go"],
		"experience": [
			{"title": "Software Engineer", "company": "ABC Pvt Ltd", "start_date": "2020", "end_date": "2021"}
		],
		"education": [
			{"degree": "BS Computer Science", "university": "Sukkur IBA University", "cgpa": "3.5"}
		],
		"projects": [
			{"title": "Inventory Tracker", "budget": "$5000"}
		],
		"certificates": [
			{"title": "Python Fundamentals", "organization": "Coursera", "date": "2021"}
		],
		"languages": ["English"],
		"interests": ["Chess"]
	}`
	assert.NoError(t, ValidateResumeRecord([]byte(payload)))
}

func TestValidateResumeRecord_ExperienceMissingCompany(t *testing.T) {
	payload := `{"experience": [{"title": "Software Engineer"}]}`

	err := ValidateResumeRecord([]byte(payload))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "company")
}

func TestValidateResumeRecord_UnknownField(t *testing.T) {
	err := ValidateResumeRecord([]byte(`{"nickname": "JD"}`))
	assert.Error(t, err)
}

func TestValidateResumeRecord_WrongType(t *testing.T) {
	err := ValidateResumeRecord([]byte(`{"skills": "Python"}`))
	assert.Error(t, err)
}

func TestValidateResumeRecord_MalformedJSON(t *testing.T) {
	err := ValidateResumeRecord([]byte(`{"name":`))
	assert.Error(t, err)
}
