package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCompatibilityPrompt creates the fixed ATS evaluation prompt. The
// response contract (compatibilityScore plus two feedback lists) is what the
// analyzer's normalization chain parses.
func (pb *PromptBuilder) BuildCompatibilityPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an advanced, enterprise-grade Applicant Tracking System (ATS) used by top technology companies.
Your goal is to evaluate the resume against the job description with high strictness and accuracy.

**Analysis Rules:**
1. **Strict Keyword Matching**: Check for specific technical skills (e.g., Python, AWS, React) mentioned in the Job Description. Missing critical skills should lower the score.
2. **Contextual Analysis**: Do not just look for keywords; ensure the candidate has *experience* using them (e.g., "Used Python for data analysis" is better than just listing "Python").
3. **Scoring Logic**:
   - 90-100%%: Perfect match, exceeds requirements (Topper/Ideal Candidate).
   - 75-89%%: Strong match, fits most requirements.
   - 50-74%%: Average match, gaps in critical skills.
   - <50%%: Poor match, missing major requirements.

**Output Requirement:**
Return a valid JSON object with detailed feedback:
{
  "compatibilityScore": <integer 0-100>,
  "strengths": [
    "<Technical Skill Match: e.g., 'Strong proficiency in AWS and Terraform as required'>",
    "<Experience Match: e.g., 'Relevant internship experience in Cloud DevOps'>",
    "<Soft Skill/Formatting: e.g., 'Clear project descriptions and quantified achievements'>"
  ],
  "areasForImprovement": [
    "<Missing Skill: e.g., 'Missing explicit mention of CI/CD pipelines (Jenkins/GitLab)'>",
    "<Experience Gap: e.g., 'No prior experience with containerization (Docker/Kubernetes) which is a key requirement'>",
    "<Formatting/Detail: e.g., 'Project sections lack metrics or outcomes'>"
  ]
}

**Data for Analysis:**
RESUME:
%s

JOB DESCRIPTION:
%s
`, resumeText, jobDescription)
}
