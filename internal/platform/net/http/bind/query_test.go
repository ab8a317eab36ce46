package bind

import (
	"net/http/httptest"
	"testing"

	perr "trendboard/internal/platform/errors"
)

type listQuery struct {
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Category string `query:"category" validate:"omitempty,oneof=all python typescript javascript jupyter vue"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"pageSize" validate:"omitempty,min=1,max=100"`
	Exact    *string
	Language *string `query:"language"`
}

func TestParseQuery_Defaults(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/x", nil)
	got, err := ParseQuery[listQuery](r)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if got.Page != 0 || got.PageSize != 0 || got.Date != "" {
		t.Errorf("absent params should stay zero, got %+v", got)
	}
	if got.Language != nil {
		t.Error("absent pointer param should stay nil")
	}
}

func TestParseQuery_Values(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/x?date=2024-06-17&category=python&page=2&pageSize=50&language=", nil)
	got, err := ParseQuery[listQuery](r)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if got.Date != "2024-06-17" || got.Category != "python" || got.Page != 2 || got.PageSize != 50 {
		t.Errorf("parsed = %+v", got)
	}
	if got.Language == nil || *got.Language != "" {
		t.Error("present-but-empty pointer param should be non-nil empty")
	}
}

func TestParseQuery_BadInt(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/x?page=abc", nil)
	_, err := ParseQuery[listQuery](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Errorf("code = %v, want validation", perr.CodeOf(err))
	}
}

func TestParseQuery_ValidatorRejects(t *testing.T) {
	t.Parallel()

	cases := []string{
		"/x?pageSize=101",
		"/x?category=rust",
		"/x?date=17-06-2024",
	}
	for _, url := range cases {
		r := httptest.NewRequest("GET", url, nil)
		if _, err := ParseQuery[listQuery](r); !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Errorf("%s: code = %v, want validation", url, perr.CodeOf(err))
		}
	}
}
