package views

// TeamMember is static roster configuration for the team view. Members are
// not persisted and never derived from the task collection.
type TeamMember struct {
	ID             int
	Name           string
	Role           string
	Email          string
	Expertise      []string
	TasksCompleted int
	TasksTotal     int
	ActiveProjects int
}

func TeamMembers() []TeamMember {
	return []TeamMember{
		{
			ID:             1,
			Name:           "Muhammad Raihan",
			Role:           "Team Lead",
			Email:          "raihan@company.com",
			Expertise:      []string{"Frontend", "UI/UX", "React"},
			TasksCompleted: 15,
			TasksTotal:     20,
			ActiveProjects: 3,
		},
		{
			ID:             2,
			Name:           "Harry Mardika",
			Role:           "Senior Developer",
			Email:          "michael.c@company.com",
			Expertise:      []string{"Backend", "Database", "API"},
			TasksCompleted: 12,
			TasksTotal:     18,
			ActiveProjects: 4,
		},
		{
			ID:             3,
			Name:           "Mikail Thoriq",
			Role:           "UX Designer",
			Email:          "emily.r@company.com",
			Expertise:      []string{"Design", "Prototyping", "User Research"},
			TasksCompleted: 8,
			TasksTotal:     12,
			ActiveProjects: 2,
		},
	}
}
