package taxonomy

// baseVerbs are strong action verbs shared across all roles.
var baseVerbs = []string{
	"achieved", "built", "created", "delivered", "designed", "developed",
	"directed", "drove", "established", "improved", "increased", "launched",
	"led", "managed", "optimized", "reduced", "scaled", "streamlined",
}

// defaultRoles returns the embedded role tables. A JSON taxonomy file can
// replace these at startup (see LoadFile).
func defaultRoles() map[string]roleEntry {
	return map[string]roleEntry{
		"software-engineer": {
			Keywords: []string{
				"python", "java", "go", "javascript", "typescript", "sql",
				"aws", "docker", "kubernetes", "microservices", "ci/cd",
				"rest", "api", "git", "testing", "agile", "distributed systems",
			},
			StrongVerbs: append([]string{
				"architected", "automated", "debugged", "deployed",
				"engineered", "implemented", "integrated", "migrated",
				"refactored", "shipped",
			}, baseVerbs...),
			MetricHints: []string{"latency", "throughput", "uptime", "requests", "users"},
		},
		"data-scientist": {
			Keywords: []string{
				"python", "r", "sql", "machine learning", "deep learning",
				"statistics", "pandas", "numpy", "tensorflow", "pytorch",
				"nlp", "a/b testing", "data visualization", "etl", "spark",
			},
			StrongVerbs: append([]string{
				"analyzed", "forecasted", "modeled", "predicted",
				"quantified", "trained", "validated", "visualized",
			}, baseVerbs...),
			MetricHints: []string{"accuracy", "precision", "recall", "auc", "lift"},
		},
		"product-manager": {
			Keywords: []string{
				"roadmap", "stakeholders", "user research", "a/b testing",
				"metrics", "kpi", "agile", "scrum", "go-to-market",
				"prioritization", "product strategy", "analytics", "okr",
			},
			StrongVerbs: append([]string{
				"aligned", "defined", "evangelized", "negotiated",
				"prioritized", "researched", "shipped", "validated",
			}, baseVerbs...),
			MetricHints: []string{"revenue", "retention", "adoption", "conversion", "nps"},
		},
		"devops-engineer": {
			Keywords: []string{
				"kubernetes", "docker", "terraform", "ansible", "aws", "gcp",
				"azure", "ci/cd", "jenkins", "monitoring", "prometheus",
				"linux", "automation", "infrastructure as code", "sre",
			},
			StrongVerbs: append([]string{
				"automated", "containerized", "deployed", "hardened",
				"monitored", "orchestrated", "provisioned", "secured",
			}, baseVerbs...),
			MetricHints: []string{"uptime", "mttr", "deploy frequency", "cost"},
		},
		"marketing-manager": {
			Keywords: []string{
				"seo", "sem", "content marketing", "email marketing",
				"social media", "analytics", "campaigns", "brand",
				"conversion", "crm", "marketing automation", "copywriting",
			},
			StrongVerbs: append([]string{
				"amplified", "branded", "campaigned", "converted",
				"grew", "positioned", "promoted", "targeted",
			}, baseVerbs...),
			MetricHints: []string{"ctr", "cac", "roi", "impressions", "leads"},
		},
		GenericRole: {
			Keywords: []string{
				"communication", "leadership", "teamwork", "project management",
				"problem solving", "analysis", "planning", "reporting",
			},
			StrongVerbs: baseVerbs,
			MetricHints: []string{"revenue", "cost", "time", "team"},
		},
	}
}
