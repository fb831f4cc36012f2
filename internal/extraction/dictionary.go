package extraction

// knownSkills is the technical skill dictionary scanned against resume text.
// Entries are stored lower-case; display formatting happens at match time.
var knownSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "cpp", "c++", "csharp", "c#",
	"ruby", "php", "swift", "kotlin", "go", "golang", "rust", "scala", "r", "matlab",
	"groovy", "perl", "powershell", "bash", "shell", "dart", "julia", "haskell",
	"c", "objective-c", "lua", "elixir",

	// Web frameworks and libraries
	"django", "flask", "fastapi", "spring", "spring boot", "react", "angular",
	"vue", "vue.js", "express", "express.js", "node.js", "nodejs", "asp.net", "rails",
	"laravel", "symfony", "gin", "echo", "next.js", "nuxt.js",
	"svelte", "gatsby", "redux", "jquery", "bootstrap", "tailwind",

	// Databases and storage
	"sql", "mysql", "postgresql", "oracle", "mongodb", "cassandra", "redis",
	"elasticsearch", "firebase", "dynamodb", "mariadb", "sqlite", "neo4j",
	"couchdb", "influxdb", "postgres", "sqlserver", "mssql",
	"memcached", "cockroachdb", "timescaledb", "clickhouse", "supabase",

	// Cloud and devops
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"jenkins", "gitlab", "github actions", "terraform", "ansible", "helm",
	"ci/cd", "devops", "microservices", "serverless", "lambda",
	"cloudformation", "pulumi", "vagrant", "packer", "consul", "vault",
	"prometheus", "grafana", "datadog", "splunk", "circleci",

	// Data, analytics, ML
	"machine learning", "ml", "deep learning", "nlp", "computer vision",
	"tensorflow", "keras", "pytorch", "scikit-learn", "sklearn", "pandas",
	"numpy", "spark", "pyspark", "hadoop", "hive", "kafka", "airflow",
	"tableau", "power bi", "looker", "data science", "analytics", "big data",
	"etl", "data pipeline", "data engineering",
	"neural networks", "cnn", "rnn", "lstm", "transformers", "bert",
	"opencv", "xgboost", "lightgbm", "matplotlib", "seaborn", "mlflow",

	// APIs and messaging
	"rest api", "rest", "restful", "graphql", "soap", "websocket", "grpc",
	"amqp", "mqtt", "rabbitmq", "activemq", "zeromq", "api gateway",
	"api", "webhook", "http", "https", "tcp/ip", "udp",

	// Version control
	"git", "github", "bitbucket", "svn", "mercurial", "version control",

	// Testing and QA
	"junit", "pytest", "unittest", "selenium", "testng", "mocha", "jest",
	"cypress", "postman", "qa", "quality assurance", "testing",
	"unit testing", "integration testing", "e2e testing", "test automation",
	"cucumber", "jmeter", "gatling", "locust", "load testing",

	// Mobile
	"ios", "android", "react native", "flutter", "xamarin", "ionic",
	"swift ui", "jetpack compose", "mobile development",

	// Frontend
	"html", "html5", "css", "css3", "sass", "scss", "less",
	"webpack", "gulp", "vite", "babel", "es6", "dom", "ajax",

	// Backend and architecture
	"monolith", "soa", "event-driven", "cqrs", "api design", "system design",
	"distributed systems", "scalability", "load balancing", "caching",
	"message queue", "pub/sub",

	// Security
	"oauth", "jwt", "saml", "ssl", "tls", "encryption", "authentication",
	"authorization", "security", "penetration testing", "owasp", "xss",
	"csrf", "sql injection", "cryptography", "iam",

	// Methodologies
	"agile", "scrum", "kanban", "lean", "sre", "tdd", "bdd", "ddd",
	"continuous integration", "continuous delivery", "continuous deployment",

	// Tooling and platforms
	"jira", "confluence", "figma", "sketch", "linear", "notion",

	// Build and packaging
	"npm", "yarn", "pip", "maven", "gradle", "make", "cmake",
	"bazel", "cargo", "composer", "nuget",

	// Operating systems
	"linux", "unix", "windows", "macos", "ubuntu", "centos", "debian",
	"alpine", "freebsd",

	// Containers and orchestration
	"docker compose", "podman", "openshift", "rancher", "nomad",
	"ecs", "eks", "aks", "gke",

	// Networking
	"dns", "dhcp", "vpn", "load balancer", "cdn", "nginx",
	"apache", "haproxy", "traefik", "envoy", "istio", "linkerd",
}
