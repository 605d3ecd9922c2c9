package catalog

// lifeSciencesStream covers the chemistry/biology/medical family (the "PCB"
// stream in product terms).
var lifeSciencesStream = Stream{
	ID:    "pcb",
	Title: "Medical & Life Sciences",
	Keywords: []string{
		// Biology
		"Molecular Biology", "Genetics", "Cell Biology", "Microbiology", "Biochemistry",
		"Physiology", "Anatomy", "Ecology", "Evolution", "Immunology", "Neuroscience",
		"Developmental Biology", "Structural Biology", "Systems Biology", "Synthetic Biology",
		"Computational Biology", "Bioinformatics", "Genomics", "Proteomics", "Metabolomics",
		"Transcriptomics", "Epigenetics", "Stem Cell Biology", "Virology", "Bacteriology",
		"Mycology", "Parasitology", "Pharmacology", "Toxicology", "Pathology",

		// Chemistry
		"Organic Chemistry", "Inorganic Chemistry", "Analytical Chemistry", "Physical Chemistry",
		"Biochemistry", "Medicinal Chemistry", "Polymer Chemistry", "Environmental Chemistry",
		"Food Chemistry", "Agricultural Chemistry", "Forensic Chemistry", "Materials Chemistry",
		"Nanotechnology", "Catalysis", "Spectroscopy", "Chromatography", "Electrochemistry",
		"Thermochemistry", "Kinetics", "Equilibrium", "Acid-Base Chemistry", "Organic Synthesis",

		// Laboratory techniques
		"PCR", "DNA Sequencing", "RNA Sequencing", "Gene Cloning", "Protein Purification",
		"Cell Culture", "Tissue Culture", "Microscopy", "Electrophoresis", "Chromatography",
		"Spectroscopy", "Mass Spectrometry", "NMR Spectroscopy", "X-Ray Crystallography",
		"Flow Cytometry", "ELISA", "Western Blot", "Southern Blot", "Northern Blot",
		"Gel Electrophoresis", "HPLC", "GC", "LC-MS", "GC-MS", "FTIR", "UV-Vis",
		"Atomic Absorption", "ICP-MS", "XRF", "SEM", "TEM", "AFM", "Confocal Microscopy",
		"Fluorescence Microscopy", "Electron Microscopy", "Light Microscopy",

		// Medical and clinical
		"Clinical Research", "Clinical Trials", "Drug Development", "Pharmaceutical Development",
		"Regulatory Affairs", "Quality Assurance", "Quality Control", "GMP", "GLP", "GCP",
		"Medical Devices", "Diagnostics", "Therapeutics", "Biologics", "Vaccines",
		"Antibiotics", "Gene Therapy", "Cell Therapy", "Stem Cell Therapy", "Precision Medicine",
		"Personalized Medicine", "Biomarkers", "Pharmacogenomics", "Clinical Laboratory",
		"Pathology", "Histology", "Cytology", "Hematology", "Clinical Chemistry",

		// Research and analysis
		"Statistical Analysis", "Data Analysis", "Bioinformatics", "Computational Biology",
		"Systems Biology", "Network Biology", "Structural Biology", "Molecular Modeling",
		"Drug Design", "Structure-Activity Relationship", "Quantitative Structure-Activity Relationship",
		"Molecular Docking", "Virtual Screening", "High-Throughput Screening", "Assay Development",
		"Validation", "Method Development", "Method Validation", "Standard Operating Procedures",
	},
	Tools: []string{
		"PCR Machines", "DNA Sequencers", "Mass Spectrometers", "HPLC Systems", "GC Systems",
		"NMR Spectrometers", "Electron Microscopes", "Flow Cytometers", "Cell Counters",
		"Incubators", "Autoclaves", "Centrifuges", "Spectrophotometers", "Fluorometers",
		"Thermal Cyclers", "Gel Electrophoresis Systems", "Western Blot Equipment",
		"Chromatography Software", "Bioinformatics Tools", "Statistical Software",
		"Laboratory Information Management Systems (LIMS)", "Electronic Lab Notebooks",
	},
	Certifications: []string{
		"Certified Clinical Research Associate (CCRA)",
		"Certified Clinical Research Professional (CCRP)",
		"Certified Biotechnology Professional",
		"ASQ Certified Quality Auditor",
		"GLP Certification",
		"GMP Certification",
		"Hazardous Materials Handling",
		"Medical Laboratory Scientist (MLS)",
		"Clinical Laboratory Scientist (CLS)",
		"Certified Toxicologist",
		"Environmental Health and Safety (EHS) Certification",
	},
	EducationPaths: []string{
		"PhD in Molecular Biology/Biochemistry",
		"Master of Science in Biotechnology",
		"Master of Science in Pharmacology",
		"Bachelor of Science in Biology/Chemistry",
		"Bachelor of Science in Biochemistry",
		"Medical Laboratory Science Program",
		"Clinical Research Certification Programs",
		"Regulatory Affairs Certification",
	},
	IndustryFocus: []string{
		"Pharmaceuticals",
		"Biotechnology",
		"Medical Devices",
		"Healthcare",
		"Environmental Services",
		"Food and Beverage",
		"Agriculture",
		"Cosmetics",
		"Government Research",
		"Academic Research",
		"Clinical Research Organizations",
		"Contract Research Organizations",
	},
	Roles: []Role{
		{
			Title:          "Biomedical Engineer",
			MatchThreshold: 80,
			Portals: []string{
				"https://biospace.com/jobs",
				"https://naturecareers.com",
				"https://sciencecareers.org",
				"https://bmescareers.org",
				"https://linkedin.com/jobs/biomedical-engineering",
			},
			GapSkills:  []string{"Medical Imaging", "Prosthetics Design", "FDA Regulations", "Biomaterials", "Tissue Engineering"},
			Salary:     SalaryRange{Entry: 75000, Mid: 110000, Senior: 150000},
			GrowthRate: 0.18,
			Companies:  []string{"Medtronic", "Boston Scientific", "Johnson & Johnson", "GE Healthcare", "Siemens Healthineers", "Philips", "Stryker"},
		},
		{
			Title:          "Clinical Research Associate",
			MatchThreshold: 65,
			Portals: []string{
				"https://sciencecareers.org",
				"https://clinicalresearchjobs.com",
				"https://crajobs.org",
				"https://indeed.com/clinical-research-jobs",
				"https://glassdoor.com/clinical-research-jobs",
			},
			GapSkills:  []string{"GCP Guidelines", "Clinical Trials Management", "Pharmacovigilance", "Regulatory Compliance", "Medical Writing"},
			Salary:     SalaryRange{Entry: 68000, Mid: 88000, Senior: 120000},
			GrowthRate: 0.15,
			Companies:  []string{"Parexel", "PPD", "Covance", "IQVIA", "PRA Health Sciences", "Charles River Laboratories", "Labcorp"},
		},
		{
			Title:          "Biotechnologist",
			MatchThreshold: 75,
			Portals: []string{
				"https://biotech-careers.org",
				"https://geneticengineeringjobs.com",
				"https://biojobs.com",
				"https://naturecareers.com/biotechnology",
			},
			GapSkills:  []string{"Recombinant DNA Technology", "Protein Engineering", "Cell Culture", "Downstream Processing", "Process Development"},
			Salary:     SalaryRange{Entry: 70000, Mid: 95000, Senior: 130000},
			GrowthRate: 0.28,
			Companies:  []string{"Genentech", "Amgen", "Regeneron", "Moderna", "BioNTech", "Pfizer", "Novartis", "Roche"},
		},
		{
			Title:          "Pharmacologist",
			MatchThreshold: 78,
			Portals: []string{
				"https://pharmacologyjobs.com",
				"https://pharma-jobs.com",
				"https://asp.org/careers",
				"https://naturecareers.com/pharmacology",
			},
			GapSkills:  []string{"Toxicology", "Regulatory Affairs", "Pharmacokinetics", "Drug Development", "Preclinical Studies"},
			Salary:     SalaryRange{Entry: 75000, Mid: 105000, Senior: 145000},
			GrowthRate: 0.22,
			Companies:  []string{"Pfizer", "Johnson & Johnson", "Merck", "Roche", "Novartis", "Eli Lilly", "Bristol Myers Squibb", "AstraZeneca"},
		},
		{
			Title:          "Environmental Chemist",
			MatchThreshold: 70,
			Portals: []string{
				"https://environmentaljobs.com",
				"https://chemistryjobs.com/environmental",
				"https://acs.org/careers",
				"https://epa.gov/careers",
			},
			GapSkills:  []string{"Analytical Instrumentation", "Environmental Regulations", "Waste Management", "Water Quality Analysis", "Air Quality Monitoring"},
			Salary:     SalaryRange{Entry: 65000, Mid: 85000, Senior: 115000},
			GrowthRate: 0.15,
			Companies:  []string{"EPA", "Environmental consulting firms", "Waste management companies", "Industrial laboratories", "Government agencies"},
		},
		{
			Title:          "Bioinformatics Scientist",
			MatchThreshold: 82,
			Portals: []string{
				"https://bioinformatics.org/jobs",
				"https://genomicsjobs.com",
				"https://naturecareers.com/bioinformatics",
				"https://iscb.org/careers",
			},
			GapSkills:  []string{"Computational Biology", "Machine Learning", "Database Management", "Statistical Genetics", "Pipeline Development"},
			Salary:     SalaryRange{Entry: 85000, Mid: 115000, Senior: 155000},
			GrowthRate: 0.35,
			Companies:  []string{"Illumina", "Thermo Fisher Scientific", "23andMe", "Ancestry", "Broad Institute", "NCBI", "Genentech"},
		},
	},
}
