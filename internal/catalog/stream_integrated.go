package catalog

// integratedStream covers interdisciplinary science and advanced technology
// (the "PCMB" stream in product terms). The keyword list intentionally
// overlaps both other streams.
var integratedStream = Stream{
	ID:    "pcmb",
	Title: "Integrated Sciences & Advanced Technologies",
	Keywords: []string{
		// Interdisciplinary science
		"Computational Biology", "Biophysics", "Chemical Physics", "Mathematical Biology",
		"Quantum Biology", "Systems Biology", "Bioinformatics", "Chemical Biology",
		"Physical Chemistry", "Biophysical Chemistry", "Mathematical Modeling",
		"Statistical Mechanics", "Molecular Dynamics", "Quantum Chemistry",
		"Structural Biology", "Computational Chemistry", "Drug Design", "Molecular Modeling",
		"Genomics", "Proteomics", "Metabolomics",
		"Synthetic Biology", "Protein Engineering", "Enzyme Engineering", "Metabolic Engineering",
		"Nanotechnology", "Nanomedicine", "Nanobiotechnology", "Quantum Dots",
		"Medical Physics", "Radiation Biology", "Radiation Chemistry", "Nuclear Medicine",
		"Imaging Physics", "Medical Imaging", "MRI Physics", "CT Physics", "PET Physics",
		"Laser Physics", "Optical Physics", "Biophotonics", "Medical Lasers",
		"Computational Neuroscience", "Neurophysics", "Brain Modeling", "Neural Networks",
		"Artificial Intelligence in Biology", "Machine Learning in Chemistry",
		"Data Science in Biology", "Big Data in Healthcare", "Health Informatics",
		"Clinical Informatics", "Biomedical Data Science", "Computational Medicine",
		"Precision Medicine", "Personalized Medicine", "Pharmacogenomics",

		// Advanced computational skills
		"Machine Learning", "Deep Learning", "Artificial Intelligence",
		"Data Science", "Big Data Analytics", "Cloud Computing", "High-Performance Computing",
		"Parallel Computing", "Distributed Computing", "GPU Computing", "Quantum Computing",
		"Statistical Analysis", "Computational Modeling",
		"Simulation", "Numerical Methods", "Optimization Algorithms", "Graph Theory",
		"Network Analysis", "Complex Systems", "Chaos Theory", "Fractal Geometry",
		"Information Theory", "Control Theory", "Signal Processing", "Image Processing",
		"Pattern Recognition", "Computer Vision", "Natural Language Processing",
		"Database Systems", "Data Mining", "Knowledge Discovery", "Expert Systems",
		"Decision Support Systems", "Knowledge Engineering",

		// Laboratory and research techniques
		"Advanced Microscopy", "Super-Resolution Microscopy", "Cryo-EM", "X-Ray Crystallography",
		"NMR Spectroscopy", "Mass Spectrometry", "Chromatography", "Spectroscopy",
		"Laser Spectroscopy", "Ultrafast Spectroscopy", "Single-Molecule Spectroscopy",
		"Flow Cytometry", "Cell Sorting", "Laser Capture Microdissection", "Microfluidics",
		"Lab-on-a-Chip", "Organ-on-a-Chip", "Tissue Engineering", "3D Bioprinting",
		"Gene Editing", "CRISPR-Cas9", "Gene Synthesis",
		"Directed Evolution", "Rational Design", "High-Throughput Screening",
		"Combinatorial Chemistry", "Parallel Synthesis", "Automated Synthesis",
		"Robotics", "Automation", "Artificial Intelligence in Research",
	},
	Tools: []string{
		"Gaussian", "VASP", "LAMMPS", "GROMACS", "AMBER", "CHARMM", "NAMD", "Schrödinger Suite",
		"BLAST", "ClustalW", "PhyML", "MEGA", "RaxML", "MrBayes", "BEAST",
		"TensorFlow", "PyTorch", "Scikit-learn", "Keras", "XGBoost", "LightGBM",
		"R", "Python", "MATLAB", "Julia", "SAS", "SPSS", "Stata",
		"VMD", "PyMOL", "Chimera", "UCSF ChimeraX", "Jmol",
		"MPI", "OpenMP", "CUDA", "OpenCL", "SLURM", "PBS",
		"Cryo-EM", "X-Ray Crystallography", "NMR", "Mass Spectrometry", "Super-Resolution Microscopy",
		"MRI", "CT", "PET", "SPECT", "Ultrasound", "Linear Accelerators",
	},
	Certifications: []string{
		"Certified Clinical Physicist (ABR)",
		"Certified Health Physicist (ABHP)",
		"Certified Bioinformatics Professional (ASCP)",
		"Certified Clinical Research Professional (CCRP)",
		"Certified Quality Auditor (ASQ)",
		"Certified Data Scientist (INFORMS)",
		"AWS Certified Machine Learning",
		"Google Cloud Professional Data Engineer",
		"Microsoft Certified: Azure Data Scientist",
		"Certified Computational Chemist",
		"Certified Medical Physicist",
		"Certified Radiation Safety Officer",
	},
	EducationPaths: []string{
		"PhD in Computational Biology/Biochemistry",
		"PhD in Biophysics/Medical Physics",
		"PhD in Computational Chemistry/Physics",
		"MD/PhD Combined Programs",
		"Master of Science in Computational Biology",
		"Master of Science in Medical Physics",
		"Master of Science in Bioinformatics",
		"Bachelor of Science in Physics/Chemistry/Biology",
		"Combined BS/MS Programs",
		"Professional Science Master's (PSM) Programs",
	},
	IndustryFocus: []string{
		"Pharmaceuticals",
		"Biotechnology",
		"Medical Technology",
		"Healthcare IT",
		"Research Institutions",
		"Government Laboratories",
		"Academic Research",
		"Technology Companies",
		"Consulting",
		"Finance (Quantitative)",
		"Energy",
		"Environmental Science",
		"Agriculture",
		"Food Science",
		"Materials Science",
	},
	Roles: []Role{
		{
			Title:          "Computational Biophysicist",
			MatchThreshold: 85,
			Portals: []string{
				"https://biophysics.org/careers",
				"https://naturecareers.com/biophysics",
				"https://acs.org/careers/computational",
				"https://iscb.org/careers",
				"https://linkedin.com/jobs/computational-biology",
			},
			GapSkills:  []string{"Molecular Dynamics", "Quantum Chemistry", "Statistical Mechanics", "High-Performance Computing", "Structural Biology"},
			Salary:     SalaryRange{Entry: 110000, Mid: 160000, Senior: 220000},
			GrowthRate: 0.32,
			Companies:  []string{"Genentech", "Pfizer", "Novartis", "Google", "Microsoft Research", "IBM Research", "Broad Institute", "MIT"},
		},
		{
			Title:          "Medical Physicist",
			MatchThreshold: 80,
			Portals: []string{
				"https://aapm.org/careers",
				"https://comp.org/careers",
				"https://medicalphysics.org/jobs",
				"https://radiology.org/careers",
				"https://linkedin.com/jobs/medical-physics",
			},
			GapSkills:  []string{"Radiation Physics", "Medical Imaging", "Dosimetry", "Treatment Planning", "Quality Assurance"},
			Salary:     SalaryRange{Entry: 120000, Mid: 180000, Senior: 250000},
			GrowthRate: 0.18,
			Companies:  []string{"Mayo Clinic", "MD Anderson", "Memorial Sloan Kettering", "Varian Medical Systems", "Elekta", "Siemens Healthineers", "GE Healthcare"},
		},
		{
			Title:          "Quantum Chemist",
			MatchThreshold: 82,
			Portals: []string{
				"https://chemistryjobs.com/quantum",
				"https://acs.org/careers/computational",
				"https://rsc.org/careers",
				"https://naturecareers.com/chemistry",
			},
			GapSkills:  []string{"Quantum Chemistry", "Molecular Modeling", "Computational Chemistry", "DFT", "Ab Initio Methods"},
			Salary:     SalaryRange{Entry: 95000, Mid: 140000, Senior: 190000},
			GrowthRate: 0.25,
			Companies:  []string{"Schrodinger", "Dassault Systèmes", "BASF", "Dow", "ExxonMobil", "Pfizer", "Merck"},
		},
		{
			Title:          "Bioinformatics Engineer",
			MatchThreshold: 78,
			Portals: []string{
				"https://bioinformatics.org/jobs",
				"https://genomicsjobs.com",
				"https://naturecareers.com/bioinformatics",
				"https://iscb.org/careers",
			},
			GapSkills:  []string{"Genomics", "Proteomics", "Machine Learning", "Pipeline Development", "Cloud Computing"},
			Salary:     SalaryRange{Entry: 90000, Mid: 130000, Senior: 180000},
			GrowthRate: 0.35,
			Companies:  []string{"Illumina", "Thermo Fisher", "23andMe", "Ancestry", "Broad Institute", "Google", "Microsoft", "Amazon"},
		},
		{
			Title:          "Pharmaceutical Data Scientist",
			MatchThreshold: 75,
			Portals: []string{
				"https://pharma-jobs.com/data-science",
				"https://efinancialcareers.com/pharma",
				"https://linkedin.com/jobs/pharmaceutical-data-scientist",
			},
			GapSkills:  []string{"Pharmaceutical Analytics", "Clinical Trial Analysis", "Regulatory Compliance", "Statistical Programming", "Drug Development"},
			Salary:     SalaryRange{Entry: 100000, Mid: 150000, Senior: 210000},
			GrowthRate: 0.28,
			Companies:  []string{"Pfizer", "Johnson & Johnson", "Roche", "Novartis", "Merck", "AstraZeneca", "Bristol Myers Squibb"},
		},
		{
			Title:          "Neurotechnology Engineer",
			MatchThreshold: 83,
			Portals: []string{
				"https://neurotechjobs.com",
				"https://brainjobs.org",
				"https://naturecareers.com/neuroscience",
				"https://sfn.org/careers",
			},
			GapSkills:  []string{"Neuroscience", "Signal Processing", "Machine Learning", "Brain-Computer Interface", "Neural Engineering"},
			Salary:     SalaryRange{Entry: 105000, Mid: 155000, Senior: 220000},
			GrowthRate: 0.40,
			Companies:  []string{"Neuralink", "Kernel", "BrainCo", "Emotiv", "MindMaze", "NeuroSky", "Google", "Facebook Reality Labs"},
		},
	},
}
