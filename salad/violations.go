package salad

// Violations accumulated while preparing a salad.
// Calories is the overage above the constraint, Allergies the violated
// restriction labels, Availability the missing quantity per ingredient
// that could not be sourced from the pantry.
type Violations struct {
	Calories     int
	Allergies    []string
	Availability map[string]int
}

func NewViolations() *Violations {
	return &Violations{
		Allergies:    make([]string, 0),
		Availability: make(map[string]int),
	}
}

// Count of distinct violations: at most one for calories, one per allergy
// label, one per unavailable ingredient
func (v *Violations) Count() int {
	count := len(v.Allergies) + len(v.Availability)
	if v.Calories > 0 {
		count += 1
	}
	return count
}

// addAllergy records the label once, reporting whether it was new
func (v *Violations) addAllergy(label string) bool {
	for _, a := range v.Allergies {
		if a == label {
			return false
		}
	}
	v.Allergies = append(v.Allergies, label)
	return true
}

// Clone snapshots the violations at the end of an episode
func (v *Violations) Clone() *Violations {
	out := NewViolations()
	out.Calories = v.Calories
	out.Allergies = append(out.Allergies, v.Allergies...)
	for name, missing := range v.Availability {
		out.Availability[name] = missing
	}
	return out
}
