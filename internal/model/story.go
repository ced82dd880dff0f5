package model

// StoryBlank is one photographable prompt slot in the generated story
type StoryBlank struct {
	Index    int
	Theme    string // what to photograph, e.g. "A mysterious red object"
	Criteria string // what the judge looks for
}

// Story is a generated template with positional {0}, {1}, ... placeholders
// and one blank definition per placeholder
type Story struct {
	Template string
	Blanks   []StoryBlank
}
