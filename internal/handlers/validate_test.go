package handlers

import (
	"strings"
	"testing"
)

func TestValidateTemplate(t *testing.T) {
	valid := &templateRequest{
		Title: "Product Brief",
		Sections: []sectionRequest{
			{Level: 1, Title: "Overview", OrderIndex: 1},
			{Level: 6, Title: "Appendix", OrderIndex: 2},
		},
	}
	if msg := validateTemplate(valid); msg != "" {
		t.Errorf("valid template rejected: %s", msg)
	}

	tests := []struct {
		name string
		in   templateRequest
	}{
		{"empty title", templateRequest{Title: "   "}},
		{"title too long", templateRequest{Title: strings.Repeat("x", 301)}},
		{"section title empty", templateRequest{
			Title:    "T",
			Sections: []sectionRequest{{Level: 1, Title: " "}},
		}},
		{"level zero", templateRequest{
			Title:    "T",
			Sections: []sectionRequest{{Level: 0, Title: "S"}},
		}},
		{"level seven", templateRequest{
			Title:    "T",
			Sections: []sectionRequest{{Level: 7, Title: "S"}},
		}},
		{"placeholder too long", templateRequest{
			Title:    "T",
			Sections: []sectionRequest{{Level: 1, Title: "S", Placeholder: strings.Repeat("p", 10_001)}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := validateTemplate(&tt.in); msg == "" {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidatePrompt(t *testing.T) {
	valid := &promptRequest{
		Title:    "My Prompt",
		Contents: []contentRequest{{Content: "short"}},
	}
	if msg := validatePrompt(valid); msg != "" {
		t.Errorf("valid prompt rejected: %s", msg)
	}

	if msg := validatePrompt(&promptRequest{Title: ""}); msg == "" {
		t.Error("empty title should be rejected")
	}
	if msg := validatePrompt(&promptRequest{Title: strings.Repeat("x", 301)}); msg == "" {
		t.Error("overlong title should be rejected")
	}
	long := &promptRequest{
		Title:    "T",
		Contents: []contentRequest{{Content: strings.Repeat("c", 100_001)}},
	}
	if msg := validatePrompt(long); msg == "" {
		t.Error("overlong content should be rejected")
	}
}
