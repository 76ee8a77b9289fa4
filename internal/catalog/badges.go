package catalog

var allBadges = []Badge{
	{
		ID:                   1,
		Name:                 "Code Master",
		Icon:                 "zap",
		Description:          "Complete core technical set: Website, Debugging, API",
		RequiredChallengeIDs: []int{1, 2, 3},
	},
	{
		ID:                   2,
		Name:                 "Problem Solver",
		Icon:                 "puzzle",
		Description:          "Complete analytical tasks: Case Study, UI/UX, Data Viz",
		RequiredChallengeIDs: []int{4, 16, 17},
	},
	{
		ID:                   3,
		Name:                 "Quick Learner",
		Icon:                 "rocket",
		Description:          "Complete foundational quizzes in Medical, Style, Market",
		RequiredChallengeIDs: []int{5, 11, 8},
	},
	{
		ID:                   4,
		Name:                 "Team Player",
		Icon:                 "users",
		Description:          "Complete collaborative projects: Health Campaign, Runway, Public Speaking",
		RequiredChallengeIDs: []int{6, 12, 19},
	},
	{
		ID:                   5,
		Name:                 "Creative Mind",
		Icon:                 "palette",
		Description:          "Complete Arts set: Artwork, Illustration, Animation",
		RequiredChallengeIDs: []int{13, 14, 15},
	},
	{
		ID:                   6,
		Name:                 "Leader in Making",
		Icon:                 "crown",
		Description:          "Complete Business set: Pitch, Plan, Ethics Case",
		RequiredChallengeIDs: []int{7, 9, 18},
	},
}
