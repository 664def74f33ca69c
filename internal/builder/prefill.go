package builder

import "github.com/google/uuid"

// prefill holds the named starter forms offered on the home screen. Question
// ids are assigned fresh each time a draft is built from one, so two drafts
// from the same template never share identities.
var prefill = map[string]Definition{
	"event": {
		Title:       "Event Registration Form",
		Description: "Register for our upcoming event",
		Questions: []Question{
			{Type: TypeShort, Text: "Full Name"},
			{Type: TypeShort, Text: "Email Address"},
			{Type: TypeMCQ, Text: "Which session are you most interested in?", Options: []string{"Morning Session", "Afternoon Session", "Evening Session"}},
			{Type: TypeCheckbox, Text: "Dietary Requirements", Options: []string{"Vegetarian", "Vegan", "Gluten-free", "No restrictions"}},
		},
	},
	"feedback": {
		Title:       "Customer Feedback Form",
		Description: "Help us improve our services",
		Questions: []Question{
			{Type: TypeRating, Text: "How satisfied are you with our service?", Scale: 5},
			{Type: TypeMCQ, Text: "How did you hear about us?", Options: []string{"Social Media", "Friend Referral", "Google Search", "Advertisement"}},
			{Type: TypeLong, Text: "What can we improve?"},
			{Type: TypeCheckbox, Text: "Which features do you use most?", Options: []string{"Dashboard", "Reports", "Integrations", "Mobile App"}},
		},
	},
	"job": {
		Title:       "Job Application Form",
		Description: "Apply for a position at our company",
		Questions: []Question{
			{Type: TypeShort, Text: "Full Name"},
			{Type: TypeShort, Text: "Email Address"},
			{Type: TypeShort, Text: "Phone Number"},
			{Type: TypeDropdown, Text: "Position Applied For", Options: []string{"Software Engineer", "Product Manager", "Designer", "Marketing Specialist"}},
			{Type: TypeFile, Text: "Upload Resume"},
			{Type: TypeLong, Text: "Why do you want to work with us?"},
		},
	},
	"contact": {
		Title:       "Contact Us",
		Description: "Get in touch with us",
		Questions: []Question{
			{Type: TypeShort, Text: "Name"},
			{Type: TypeShort, Text: "Email"},
			{Type: TypeShort, Text: "Subject"},
			{Type: TypeLong, Text: "Message"},
		},
	},
	"registration": {
		Title:       "Registration Form",
		Description: "Register for an event or program",
		Questions: []Question{
			{Type: TypeShort, Text: "Full Name"},
			{Type: TypeShort, Text: "Email"},
			{Type: TypeShort, Text: "Phone Number"},
			{Type: TypeDropdown, Text: "Select Event", Options: []string{"Workshop", "Seminar", "Webinar"}},
			{Type: TypeDate, Text: "Preferred Date"},
			{Type: TypeLong, Text: "Additional Comments"},
		},
	},
	"survey": {
		Title:       "Knowledge Quiz",
		Description: "Test your knowledge",
		Questions: []Question{
			{Type: TypeMCQ, Text: "What is your favorite programming language?", Options: []string{"JavaScript", "Python", "Java", "C++"}},
			{Type: TypeRating, Text: "How would you rate your coding skills?", Scale: 5},
			{Type: TypeCheckbox, Text: "Which frameworks have you used?", Options: []string{"React", "Vue", "Angular", "Svelte"}},
		},
	},
}

// TemplateNames returns the names of the starter templates.
func TemplateNames() []string {
	names := make([]string, 0, len(prefill))
	for name := range prefill {
		names = append(names, name)
	}
	return names
}

// NewDraftFromTemplate builds an unbound draft prefilled from a named starter
// template. The second return is false for an unknown name.
func NewDraftFromTemplate(name string) (*Draft, bool) {
	def, ok := prefill[name]
	if !ok {
		return nil, false
	}
	questions := make([]Question, len(def.Questions))
	for i, q := range def.Questions {
		q.ID = uuid.NewString()
		if len(q.Options) > 0 {
			q.Options = append([]string(nil), q.Options...)
		}
		questions[i] = q
	}
	return &Draft{Definition: Definition{
		Title:       def.Title,
		Description: def.Description,
		Theme:       DefaultThemeID,
		Questions:   questions,
	}}, true
}
