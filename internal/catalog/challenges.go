package catalog

var allChallenges = []Challenge{
	{
		ID:          1,
		Title:       "Build Your First Website",
		Points:      100,
		Type:        TypeSimulation,
		Difficulty:  DifficultyBeginner,
		Category:    CategoryTech,
		Description: "Create a simple portfolio website using HTML and CSS",
	},
	{
		ID:          2,
		Title:       "Debug a Real App",
		Points:      150,
		Type:        TypePractical,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryTech,
		Description: "Fix bugs in a real application and learn debugging techniques",
	},
	{
		ID:          3,
		Title:       "Create an API",
		Points:      200,
		Type:        TypeProject,
		Difficulty:  DifficultyAdvanced,
		Category:    CategoryTech,
		Description: "Build a REST API that manages a list of tasks",
	},
	{
		ID:          4,
		Title:       "Patient Case Study",
		Points:      100,
		Type:        TypeSimulation,
		Difficulty:  DifficultyBeginner,
		Category:    CategoryHealth,
		Description: "Analyze a patient case and recommend treatment",
	},
	{
		ID:          5,
		Title:       "Medical Quiz Challenge",
		Points:      120,
		Type:        TypeQuiz,
		Difficulty:  DifficultyBeginner,
		Category:    CategoryHealth,
		Description: "Test your medical knowledge",
	},
	{
		ID:          6,
		Title:       "Health Campaign Design",
		Points:      150,
		Type:        TypeProject,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryHealth,
		Description: "Design a community health awareness campaign",
	},
	{
		ID:          7,
		Title:       "Startup Pitch Challenge",
		Points:      150,
		Type:        TypeSimulation,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryBusiness,
		Description: "Create and pitch a business idea to investors",
	},
	{
		ID:          8,
		Title:       "Market Analysis",
		Points:      120,
		Type:        TypePractical,
		Difficulty:  DifficultyBeginner,
		Category:    CategoryBusiness,
		Description: "Analyze market trends for a new product",
	},
	{
		ID:          9,
		Title:       "Business Plan Competition",
		Points:      200,
		Type:        TypeProject,
		Difficulty:  DifficultyAdvanced,
		Category:    CategoryBusiness,
		Description: "Develop a comprehensive business plan for a new startup idea.",
	},
	{
		ID:          10,
		Title:       "Design Your Collection",
		Points:      130,
		Type:        TypeProject,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryDesign,
		Description: "Design a 5-piece fashion collection",
	},
	{
		ID:          11,
		Title:       "Style Quiz Challenge",
		Points:      100,
		Type:        TypeQuiz,
		Difficulty:  DifficultyBeginner,
		Category:    CategoryDesign,
		Description: "Test your fashion design knowledge",
	},
	{
		ID:          12,
		Title:       "Runway Show Planning",
		Points:      180,
		Type:        TypePractical,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryDesign,
		Description: "Plan and coordinate a fashion runway event.",
	},
	{
		ID:          13,
		Title:       "Create an Artwork",
		Points:      140,
		Type:        TypeProject,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryArts,
		Description: "Create digital art inspired by a theme",
	},
	{
		ID:          14,
		Title:       "Story Illustration Challenge",
		Points:      160,
		Type:        TypePractical,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryArts,
		Description: "Illustrate a key scene from a given short story.",
	},
	{
		ID:          15,
		Title:       "Animation Mini-Project",
		Points:      170,
		Type:        TypeProject,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryArts,
		Description: "Create a brief 2D animation sequence based on a character design.",
	},
	{
		ID:          16,
		Title:       "UI/UX Audit",
		Points:      180,
		Type:        TypePractical,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryDesign,
		Description: "Perform a usability audit on a popular mobile app",
	},
	{
		ID:          17,
		Title:       "Data Visualization",
		Points:      200,
		Type:        TypeProject,
		Difficulty:  DifficultyAdvanced,
		Category:    CategoryTech,
		Description: "Turn raw complex data into an interactive dashboard",
	},
	{
		ID:          18,
		Title:       "Ethical Leadership Case",
		Points:      110,
		Type:        TypeSimulation,
		Difficulty:  DifficultyBeginner,
		Category:    CategoryBusiness,
		Description: "Solve a complex ethical dilemma in a corporate setting",
	},
	{
		ID:          19,
		Title:       "Public Speaking Simulator",
		Points:      140,
		Type:        TypeSimulation,
		Difficulty:  DifficultyIntermediate,
		Category:    CategoryBusiness,
		Description: "Deliver a 5-minute pitch in a virtual room",
	},
}
