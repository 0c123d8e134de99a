package domain

// Seed returns the set of activities the service starts with. The registry
// resets to this set on every process restart; there is no persistence.
func Seed() Registry {
	return Registry{
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in inter-school matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "ryan@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Practice basketball skills and participate in friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "sarah@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore various art techniques including painting, drawing, and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"lily@mergington.edu", "ava@mergington.edu"},
		},
		"Theater Group": {
			Description:     "Perform in plays, learn acting techniques, and stage production",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"noah@mergington.edu", "mia@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ethan@mergington.edu", "isabella@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Prepare for and compete in science competitions and experiments",
			Schedule:        "Fridays, 3:30 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu", "charlotte@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
