package catalog

// physicsMathematicsTrack backs the gap analyzer for the pcm and pcmb
// stream families.
var physicsMathematicsTrack = CareerTrack{
	Name: "Physics & Mathematics",
	ATSKeywords: []string{
		"Quantitative Analysis", "Statistical Modeling", "Calculus",
		"Thermodynamics", "Python", "MATLAB", "Data Visualization",
		"Quantum Mechanics", "Electromagnetism", "Linear Algebra",
		"Differential Equations", "Numerical Methods", "Computational Physics",
		"Statistical Mechanics", "Optics", "Astrophysics", "Particle Physics",
		"Machine Learning", "Big Data", "Simulation", "Modeling",
	},
	SkillGroups: []SkillGroup{
		{
			Category: "Mathematical Foundations",
			Skills: []WeightedSkill{
				{Name: "Calculus", Importance: 10},
				{Name: "Linear Algebra", Importance: 9},
				{Name: "Differential Equations", Importance: 9},
				{Name: "Probability & Statistics", Importance: 8},
				{Name: "Complex Analysis", Importance: 7},
			},
		},
		{
			Category: "Physics Concepts",
			Skills: []WeightedSkill{
				{Name: "Quantum Mechanics", Importance: 9},
				{Name: "Thermodynamics", Importance: 8},
				{Name: "Electromagnetism", Importance: 8},
				{Name: "Statistical Mechanics", Importance: 7},
				{Name: "Optics", Importance: 6},
			},
		},
		{
			Category: "Computational Skills",
			Skills: []WeightedSkill{
				{Name: "Python", Importance: 10},
				{Name: "MATLAB", Importance: 8},
				{Name: "R", Importance: 7},
				{Name: "C++", Importance: 7},
				{Name: "Julia", Importance: 6},
			},
		},
		{
			Category: "Data Science",
			Skills: []WeightedSkill{
				{Name: "Machine Learning", Importance: 9},
				{Name: "Data Visualization", Importance: 8},
				{Name: "Big Data Technologies", Importance: 7},
				{Name: "SQL", Importance: 7},
				{Name: "Deep Learning", Importance: 8},
			},
		},
	},
	Paths: []CareerPath{
		{
			Title:           "Data Scientist",
			RequiredSkills:  []string{"Python", "Statistics", "Machine Learning", "Data Visualization", "SQL"},
			GapRequirements: []string{"Machine Learning", "SQL", "Big Data Tools", "Deep Learning", "NLP"},
			Salary:          SalaryRange{Entry: 85000, Mid: 120000, Senior: 180000},
			GrowthRate:      0.35,
			Companies:       []string{"Google", "Amazon", "Microsoft", "Meta", "Apple", "Netflix", "Tesla"},
		},
		{
			Title:           "Aerospace Engineer",
			RequiredSkills:  []string{"Physics", "Mathematics", "CAD", "Simulation", "Programming"},
			GapRequirements: []string{"CAD Software", "Structural Analysis", "Fluid Dynamics", "Materials Science"},
			Salary:          SalaryRange{Entry: 75000, Mid: 110000, Senior: 160000},
			GrowthRate:      0.12,
			Companies:       []string{"NASA", "SpaceX", "Boeing", "Lockheed Martin", "Airbus", "Blue Origin"},
		},
		{
			Title:           "Quantitative Analyst (Finance)",
			RequiredSkills:  []string{"Mathematics", "Statistics", "Programming", "Finance", "Machine Learning"},
			GapRequirements: []string{"Stochastic Calculus", "Financial Modeling", "C++", "Risk Management"},
			Salary:          SalaryRange{Entry: 120000, Mid: 200000, Senior: 350000},
			GrowthRate:      0.25,
			Companies:       []string{"Goldman Sachs", "JP Morgan", "Morgan Stanley", "Citadel", "Renaissance Technologies"},
		},
		{
			Title:           "Research Physicist",
			RequiredSkills:  []string{"Physics", "Mathematics", "Programming", "Research Methods", "Statistics"},
			GapRequirements: []string{"Experimental Design", "Data Analysis", "Publication", "Grant Writing"},
			Salary:          SalaryRange{Entry: 60000, Mid: 90000, Senior: 130000},
			GrowthRate:      0.08,
			Companies:       []string{"MIT", "Stanford", "Berkeley", "Caltech", "Fermilab", "CERN", "NASA"},
		},
		{
			Title:           "Machine Learning Engineer",
			RequiredSkills:  []string{"Python", "Machine Learning", "Deep Learning", "Cloud Computing", "Mathematics"},
			GapRequirements: []string{"Deep Learning", "Cloud Platforms", "MLOps", "Computer Vision"},
			Salary:          SalaryRange{Entry: 95000, Mid: 140000, Senior: 200000},
			GrowthRate:      0.40,
			Companies:       []string{"Google", "OpenAI", "Anthropic", "Meta", "Apple", "Microsoft", "Amazon"},
		},
	},
}

// biologyChemistryTrack backs the gap analyzer for the pcb stream family.
var biologyChemistryTrack = CareerTrack{
	Name: "Biology & Chemistry",
	ATSKeywords: []string{
		"Molecular Biology", "Organic Synthesis", "HPLC",
		"Biochemistry", "Clinical Trials", "CRISPR", "Lab Safety",
		"Genetics", "Cell Culture", "PCR", "Sequencing", "Protein Analysis",
		"Drug Discovery", "Toxicology", "Pharmacology", "Analytical Chemistry",
		"Bioinformatics", "Structural Biology", "Immunology", "Microbiology",
		"Environmental Science", "Quality Control", "GMP", "Regulatory Affairs",
	},
	SkillGroups: []SkillGroup{
		{
			Category: "Molecular Biology",
			Skills: []WeightedSkill{
				{Name: "PCR Techniques", Importance: 10},
				{Name: "DNA Sequencing", Importance: 9},
				{Name: "CRISPR/Cas9", Importance: 9},
				{Name: "Protein Analysis", Importance: 8},
				{Name: "Cell Culture", Importance: 8},
			},
		},
		{
			Category: "Chemistry Techniques",
			Skills: []WeightedSkill{
				{Name: "HPLC", Importance: 9},
				{Name: "GC-MS", Importance: 8},
				{Name: "NMR Spectroscopy", Importance: 8},
				{Name: "Organic Synthesis", Importance: 7},
				{Name: "Analytical Chemistry", Importance: 9},
			},
		},
		{
			Category: "Bioinformatics",
			Skills: []WeightedSkill{
				{Name: "Sequence Analysis", Importance: 9},
				{Name: "Database Management", Importance: 8},
				{Name: "Computational Biology", Importance: 8},
				{Name: "Statistical Genetics", Importance: 7},
				{Name: "Machine Learning for Biology", Importance: 8},
			},
		},
		{
			Category: "Clinical Research",
			Skills: []WeightedSkill{
				{Name: "Clinical Trial Design", Importance: 9},
				{Name: "GCP Guidelines", Importance: 10},
				{Name: "Regulatory Affairs", Importance: 8},
				{Name: "Medical Writing", Importance: 7},
				{Name: "Data Management", Importance: 8},
			},
		},
	},
	Paths: []CareerPath{
		{
			Title:           "Biotechnologist",
			RequiredSkills:  []string{"Molecular Biology", "Cell Culture", "Bioinformatics", "Protein Analysis", "Lab Techniques"},
			GapRequirements: []string{"Recombinant DNA Technology", "Bioinformatics", "Cell Culture", "Protein Engineering"},
			Salary:          SalaryRange{Entry: 70000, Mid: 95000, Senior: 130000},
			GrowthRate:      0.28,
			Companies:       []string{"Genentech", "Amgen", "Regeneron", "Moderna", "BioNTech", "Pfizer", "Novartis"},
		},
		{
			Title:           "Pharmacologist",
			RequiredSkills:  []string{"Pharmacology", "Biochemistry", "Statistics", "Regulatory Knowledge", "Research Methods"},
			GapRequirements: []string{"Toxicology", "Regulatory Affairs", "Pharmacokinetics", "Drug Development"},
			Salary:          SalaryRange{Entry: 75000, Mid: 105000, Senior: 145000},
			GrowthRate:      0.22,
			Companies:       []string{"Pfizer", "Johnson & Johnson", "Merck", "Roche", "Novartis", "Eli Lilly", "Bristol Myers Squibb"},
		},
		{
			Title:           "Environmental Chemist",
			RequiredSkills:  []string{"Chemistry", "Environmental Science", "Analytical Techniques", "Data Analysis", "Regulations"},
			GapRequirements: []string{"Analytical Instrumentation", "GIS", "Waste Management Protocols", "Environmental Regulations"},
			Salary:          SalaryRange{Entry: 65000, Mid: 85000, Senior: 115000},
			GrowthRate:      0.15,
			Companies:       []string{"EPA", "Environmental consulting firms", "Waste management companies", "Industrial labs"},
		},
		{
			Title:           "Bioinformatics Scientist",
			RequiredSkills:  []string{"Bioinformatics", "Programming", "Statistics", "Molecular Biology", "Data Analysis"},
			GapRequirements: []string{"Computational Biology", "Machine Learning", "Database Management", "Statistical Genetics"},
			Salary:          SalaryRange{Entry: 85000, Mid: 115000, Senior: 155000},
			GrowthRate:      0.35,
			Companies:       []string{"Illumina", "Thermo Fisher", "23andMe", "Ancestry", "Broad Institute", "NCBI"},
		},
		{
			Title:           "Clinical Research Associate",
			RequiredSkills:  []string{"Clinical Research", "Regulatory Knowledge", "Data Management", "Medical Terminology", "Communication"},
			GapRequirements: []string{"GCP Guidelines", "Clinical Trial Management", "Regulatory Compliance", "Medical Writing"},
			Salary:          SalaryRange{Entry: 68000, Mid: 88000, Senior: 120000},
			GrowthRate:      0.25,
			Companies:       []string{"Parexel", "PPD", "Covance", "IQVIA", "Pharmaceutical companies", "Clinical research organizations"},
		},
	},
}
