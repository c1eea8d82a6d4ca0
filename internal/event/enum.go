package event

type Category string

const (
	CategoryExercise Category = "exercise"
	CategoryEating   Category = "eating"
	CategoryWork     Category = "work"
	CategoryRelax    Category = "relax"
	CategoryFamily   Category = "family"
	CategorySocial   Category = "social"
)

var Categories = []Category{
	CategoryExercise,
	CategoryEating,
	CategoryWork,
	CategoryRelax,
	CategoryFamily,
	CategorySocial,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var categoryColors = map[Category]string{
	CategoryExercise: "#FF5733",
	CategoryEating:   "#33FF57",
	CategoryWork:     "#3357FF",
	CategoryRelax:    "#57FF33",
	CategoryFamily:   "#FF33F5",
	CategorySocial:   "#33FFF5",
}

// Color returns the display color for the category, with a neutral fallback
// for unknown values.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return "#CCCCCC"
}
