package taxonomy

// defaultRelations is the built-in relation table, grouped by technology
// family. Maintaining it is a content task: edit the data (or ship a JSON
// replacement via LoadFile), not the matching code.
var defaultRelations = map[string][]string{
	// Frontend
	"react":      {"react.js", "reactjs", "next.js", "nextjs", "redux", "react native", "jsx"},
	"angular":    {"angularjs", "angular.js", "rxjs", "ngrx"},
	"vue":        {"vue.js", "vuejs", "nuxt", "nuxt.js", "vuex", "pinia"},
	"svelte":     {"sveltekit", "svelte.js"},
	"javascript": {"js", "es6", "ecmascript", "typescript", "node.js"},
	"typescript": {"ts", "javascript"},
	"html":       {"html5", "markup"},
	"css":        {"css3", "sass", "scss", "less", "tailwind", "tailwindcss", "bootstrap"},

	// Backend
	"node.js": {"node", "nodejs", "express", "express.js", "nestjs", "fastify", "koa"},
	"express": {"express.js", "node.js"},
	"python":  {"django", "flask", "fastapi", "pandas", "numpy"},
	"django":  {"django rest framework", "drf", "python"},
	"flask":   {"python"},
	"java":    {"spring", "spring boot", "hibernate", "maven", "gradle"},
	"spring":  {"spring boot", "spring mvc", "java"},
	"go":      {"golang", "gin", "echo", "fiber"},
	"c#":      {".net", "dotnet", "asp.net", "entity framework"},
	"php":     {"laravel", "symfony", "composer"},
	"ruby":    {"rails", "ruby on rails"},
	"rust":    {"cargo", "actix", "tokio"},

	// Databases
	"mongodb":       {"mongo", "mongoose", "nosql"},
	"postgresql":    {"postgres", "psql", "sql"},
	"mysql":         {"mariadb", "sql"},
	"sql":           {"mysql", "postgresql", "sqlite", "database"},
	"redis":         {"caching", "in-memory store"},
	"elasticsearch": {"elastic", "opensearch", "full-text search"},

	// Cloud / DevOps
	"aws":        {"amazon web services", "ec2", "s3", "lambda", "dynamodb", "cloudfront"},
	"azure":      {"microsoft azure", "azure functions"},
	"gcp":        {"google cloud", "google cloud platform", "bigquery"},
	"docker":     {"kubernetes", "containers", "containerization", "docker compose"},
	"kubernetes": {"k8s", "helm", "container orchestration"},
	"ci/cd":      {"jenkins", "github actions", "gitlab ci", "circleci", "continuous integration"},
	"terraform":  {"infrastructure as code", "iac", "pulumi"},
	"linux":      {"unix", "bash", "shell scripting"},
	"git":        {"github", "gitlab", "bitbucket", "version control"},

	// Mobile
	"react native": {"react", "expo"},
	"flutter":      {"dart"},
	"android":      {"kotlin", "java", "jetpack compose"},
	"ios":          {"swift", "objective-c", "swiftui"},

	// Misc
	"graphql":          {"apollo", "relay"},
	"rest api":         {"rest", "restful", "api design"},
	"machine learning": {"ml", "deep learning", "tensorflow", "pytorch", "scikit-learn"},
	"tensorflow":       {"keras", "machine learning"},
	"pytorch":          {"torch", "machine learning"},
	"data science":     {"pandas", "numpy", "jupyter", "data analysis"},
}
