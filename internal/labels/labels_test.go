package labels

import "testing"

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"firstName":           "First Name",
		"gradYearSelect":      "Grad Year Select",
		"has_rn":              "Has RN",
		"gpaSelect":           "GPA Select",
		"stateAbbr":           "State Abbr.",
		"militaryFieldGroup":  "Military Field Group",
		"level-of-education":  "Level Of Education",
		"inProgress2Bachelor": "In Progress 2 Bachelor",
	}

	for input, want := range cases {
		if got := Humanize(input); got != want {
			t.Fatalf("Humanize(%q): want %q got %q", input, want, got)
		}
	}
}
