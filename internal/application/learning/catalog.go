package learning

// Course is one curriculum category with its ordered lesson titles. Lesson
// bodies are rendered by the frontend and are not part of this service.
type Course struct {
	Category string   `json:"category"`
	Lessons  []string `json:"lessons"`
}

// catalog is the embedded stock-market curriculum.
var catalog = []Course{
	{
		Category: "Basics",
		Lessons: []string{
			"What is Stock Market?",
			"Stock Market Basics",
			"How to Start Investing",
		},
	},
	{
		Category: "Intermediate",
		Lessons: []string{
			"Technical Analysis Basics",
			"Fundamental Analysis",
		},
	},
	{
		Category: "Advanced",
		Lessons: []string{
			"Options Trading Strategies",
			"Risk Management Mastery",
		},
	},
	{
		Category: "Psychology",
		Lessons: []string{
			"Trading Psychology",
		},
	},
	{
		Category: "Strategies",
		Lessons: []string{
			"Day Trading Strategies",
		},
	},
}

// Catalog returns the full curriculum.
func Catalog() []Course {
	out := make([]Course, len(catalog))
	copy(out, catalog)
	return out
}

func lessonExists(category, lesson string) bool {
	for _, c := range catalog {
		if c.Category != category {
			continue
		}
		for _, l := range c.Lessons {
			if l == lesson {
				return true
			}
		}
	}
	return false
}

func totalLessons() int {
	n := 0
	for _, c := range catalog {
		n += len(c.Lessons)
	}
	return n
}
