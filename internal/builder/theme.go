package builder

// Theme is a named pair of display colors applied to a form's presentation.
type Theme struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

const DefaultThemeID = "default"

var themes = []Theme{
	{ID: "default", Name: "Default", Primary: "#3B82F6", Secondary: "#EFF6FF"},
	{ID: "purple", Name: "Purple", Primary: "#8B5CF6", Secondary: "#F3E8FF"},
	{ID: "green", Name: "Green", Primary: "#10B981", Secondary: "#ECFDF5"},
	{ID: "orange", Name: "Orange", Primary: "#F59E0B", Secondary: "#FFFBEB"},
}

// Themes returns the fixed theme palette, in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ThemeByID resolves a theme identifier, falling back to the default theme for
// unknown or empty ids.
func ThemeByID(id string) Theme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}
