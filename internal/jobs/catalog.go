// Package jobs holds the fixed catalog of intern role descriptions a resume
// can be checked against. The catalog never changes at runtime; the custom
// entry is always present and always empty, signalling that the caller must
// supply free text instead.
package jobs

// CustomRole is the catalog entry that carries no text of its own.
const CustomRole = "Custom Job Description"

var roleOrder = []string{
	"Cloud / DevOps Intern (AWS Focused)",
	"GenAI Intern",
	"UI/UX Design",
	"Full-Stack Development Intern",
	CustomRole,
}

var descriptions = map[string]string{
	"Cloud / DevOps Intern (AWS Focused)": `
About the Role:
Help HR-Tek optimize cloud usage and deploy products on AWS.

Responsibilities:
- Deploy environments on AWS
- Configure autoscaling & monitoring
- Work on CI/CD pipelines
- Optimize AWS credits

Skills: AWS, EC2, S3, RDS, IAM, Terraform, Linux
`,

	"GenAI Intern": `
About the Role:
Build AI-driven HR advisory tools.

Responsibilities:
- Build HR chatbots
- Work with LLMs
- Create roadmap & recommendation engines

Skills: Python, LangChain, OpenAI APIs, NLP, REST APIs
`,

	"UI/UX Design": `
Responsibilities:
- Create wireframes & prototypes
- Conduct usability testing
- Improve dashboards

Skills: Figma, UX Research
`,

	"Full-Stack Development Intern": `
Responsibilities:
- React frontend development
- Backend APIs
- Debug & scale product

Skills: React, Node.js, Python, REST APIs
`,

	CustomRole: "",
}

// Roles returns the catalog role names in their fixed display order.
func Roles() []string {
	out := make([]string, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// Description looks up the job description text for a role name.
func Description(name string) (string, bool) {
	text, ok := descriptions[name]
	return text, ok
}

// IsCustom reports whether the role requires user-supplied text.
func IsCustom(name string) bool {
	return name == CustomRole
}
