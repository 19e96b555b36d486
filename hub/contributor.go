package hub

// Creator is a name entry (1XX/7XX) on a bibliographic record.
type Creator struct {
	// Name is the display form ("Dagfinn Bakke").
	Name string `json:"name"`
	// NormalizedName is the heading as cataloged ("Bakke, Dagfinn").
	NormalizedName string `json:"normalizedName,omitempty"`
	Role           string `json:"role,omitempty"`
	ID             string `json:"id,omitempty"`
	Vocabulary     string `json:"vocabulary,omitempty"`
	Dates          string `json:"dates,omitempty"`
}

// DisplayName returns the best available display name for the creator.
func DisplayName(c Creator) string {
	if c.Name != "" {
		return c.Name
	}
	return c.NormalizedName
}

// CreatorsByRole returns the creators whose role is one of roles.
func CreatorsByRole(creators []Creator, roles ...string) []Creator {
	var out []Creator
	for _, c := range creators {
		for _, r := range roles {
			if c.Role == r {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
