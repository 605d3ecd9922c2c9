package catalog

// engineeringStream covers the physics/mathematics/computing family (the
// "PCM" stream in product terms).
var engineeringStream = Stream{
	ID:    "pcm",
	Title: "Engineering & Physical Sciences",
	Keywords: []string{
		// Mathematics
		"Calculus", "Linear Algebra", "Differential Equations", "Statistics", "Probability",
		"Discrete Mathematics", "Numerical Methods", "Optimization", "Graph Theory",
		"Complex Analysis", "Real Analysis", "Abstract Algebra", "Topology", "Geometry",
		"Number Theory", "Mathematical Modeling",

		// Physics
		"Quantum Mechanics", "Electromagnetism", "Thermodynamics", "Statistical Mechanics",
		"Classical Mechanics", "Optics", "Astrophysics", "Particle Physics", "Condensed Matter",
		"Nuclear Physics", "Acoustics", "Fluid Dynamics", "Solid State Physics", "Plasma Physics",
		"Computational Physics",

		// Computer science
		"Python", "MATLAB", "C++", "Java", "R", "Julia", "Mathematica", "Maple",
		"TensorFlow", "PyTorch", "Scikit-learn", "NumPy", "SciPy", "Pandas",
		"Data Structures", "Algorithms", "Machine Learning", "Deep Learning", "Computer Vision",
		"Natural Language Processing", "Data Science", "Artificial Intelligence", "Big Data",
		"Cloud Computing", "Docker", "Kubernetes", "Git", "Linux", "Unix", "Shell Scripting",

		// Engineering
		"SolidWorks", "AutoCAD", "ANSYS", "COMSOL", "LabVIEW", "Simulink", "CATIA",
		"Finite Element Analysis", "Computational Fluid Dynamics", "Computer-Aided Design",
		"Computer-Aided Manufacturing", "Rapid Prototyping", "3D Printing", "CNC Machining",
		"Robotics", "Control Systems", "Signal Processing", "Image Processing", "Embedded Systems",
		"Microcontrollers", "Circuit Design", "VLSI", "FPGA", "Verilog", "VHDL",
	},
	Tools: []string{
		"Python", "MATLAB", "R", "Julia", "Mathematica", "Maple", "C++", "Java",
		"TensorFlow", "PyTorch", "Scikit-learn", "NumPy", "SciPy", "Pandas", "Jupyter",
		"SolidWorks", "AutoCAD", "ANSYS", "COMSOL", "LabVIEW", "Simulink", "CATIA",
		"Git", "Docker", "Kubernetes", "AWS", "GCP", "Azure", "Linux", "Unix",
	},
	Certifications: []string{
		"AWS Certified Machine Learning",
		"Google Cloud ML Engineer",
		"Microsoft Certified: Azure Data Scientist",
		"Certified Analytics Professional",
		"TensorFlow Developer Certificate",
		"Professional Engineer (PE)",
		"Certified Computing Professional",
		"Quantitative Finance Certification",
		"CFA Charter",
		"FRM Certification",
	},
	EducationPaths: []string{
		"PhD in Physics/Engineering",
		"Master of Science in Data Science",
		"Master of Engineering",
		"Bachelor of Science in Engineering",
		"Bachelor of Science in Physics/Mathematics",
		"Online Specializations (Coursera, edX)",
	},
	IndustryFocus: []string{
		"Technology",
		"Finance",
		"Aerospace & Defense",
		"Research & Development",
		"Consulting",
		"Energy",
		"Manufacturing",
		"Healthcare Technology",
	},
	Roles: []Role{
		{
			Title:          "Quantum Computing Researcher",
			MatchThreshold: 85,
			Portals: []string{
				"https://quantum-computing.ibm.com/jobs",
				"https://physics_today.org/jobs",
				"https://aps.org/careers",
				"https://quantum-jobs.org",
				"https://linkedin.com/jobs/quantum-computing",
			},
			GapSkills:  []string{"Qiskit", "Linear Algebra", "Complex Analysis", "Quantum Algorithms", "Error Correction"},
			Salary:     SalaryRange{Entry: 120000, Mid: 180000, Senior: 250000},
			GrowthRate: 0.35,
			Companies:  []string{"IBM", "Google", "Microsoft", "Amazon", "Intel", "Honeywell", "Rigetti", "IonQ"},
		},
		{
			Title:          "Data Scientist (Quantitative)",
			MatchThreshold: 70,
			Portals: []string{
				"https://kaggle.com/jobs",
				"https://dice.com",
				"https://hired.com",
				"https://levels.fyi",
				"https://angel.co/jobs",
			},
			GapSkills:  []string{"Statistical Modeling", "SQL", "Pandas", "Machine Learning", "Data Visualization"},
			Salary:     SalaryRange{Entry: 95000, Mid: 140000, Senior: 200000},
			GrowthRate: 0.25,
			Companies:  []string{"Google", "Meta", "Amazon", "Netflix", "Spotify", "Airbnb", "Uber", "LinkedIn"},
		},
		{
			Title:          "Aerospace Engineer",
			MatchThreshold: 75,
			Portals: []string{
				"https://aiaa.org/careers",
				"https://aviationweek.com/jobs",
				"https://spacecareers.org",
				"https://nasa.gov/careers",
				"https://spacex.com/careers",
			},
			GapSkills:  []string{"Aerodynamics", "Propulsion", "Structural Analysis", "CFD", "Materials Science"},
			Salary:     SalaryRange{Entry: 85000, Mid: 120000, Senior: 160000},
			GrowthRate: 0.12,
			Companies:  []string{"NASA", "SpaceX", "Boeing", "Lockheed Martin", "Airbus", "Northrop Grumman", "Blue Origin"},
		},
		{
			Title:          "Quantitative Analyst (Finance)",
			MatchThreshold: 80,
			Portals: []string{
				"https://quantnet.com/jobs",
				"https://efinancialcareers.com",
				"https://linkedin.com/jobs/quantitative-analyst",
				"https://glassdoor.com/quant-jobs",
			},
			GapSkills:  []string{"Stochastic Calculus", "Financial Modeling", "C++", "Risk Management", "Options Pricing"},
			Salary:     SalaryRange{Entry: 130000, Mid: 200000, Senior: 350000},
			GrowthRate: 0.20,
			Companies:  []string{"Goldman Sachs", "JP Morgan", "Morgan Stanley", "Citadel", "Renaissance Technologies", "Two Sigma"},
		},
		{
			Title:          "Machine Learning Engineer",
			MatchThreshold: 72,
			Portals: []string{
				"https://mljobs.com",
				"https://ai-jobs.net",
				"https://builtin.com/jobs",
				"https://indeed.com/machine-learning-jobs",
			},
			GapSkills:  []string{"Deep Learning", "MLOps", "Cloud Platforms", "Computer Vision", "NLP"},
			Salary:     SalaryRange{Entry: 105000, Mid: 155000, Senior: 220000},
			GrowthRate: 0.40,
			Companies:  []string{"OpenAI", "Anthropic", "Google", "Meta", "Apple", "Microsoft", "Amazon"},
		},
	},
}
