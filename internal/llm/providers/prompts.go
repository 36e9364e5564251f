package providers

import (
	"encoding/json"
	"fmt"

	"resumelens/pkg/models"
)

// buildProfileExtractionPrompt creates the prompt for extracting a
// structured profile from raw resume text
func buildProfileExtractionPrompt(text string) string {
	return fmt.Sprintf(`You are a resume parser. Extract structured information from the provided resume text and return it as a JSON object.

Return a valid JSON object with exactly these fields:

{
  "name": "string - The candidate's full name",
  "email": "string - The candidate's email address",
  "phone": "string - The candidate's phone number",
  "address": "string - The candidate's location (city, state or city, country)",
  "summary": "string - Professional summary or objective",
  "experience": [{
    "company": "string - Employer name",
    "position": "string - Job title",
    "duration": "string - Date range as written (e.g. '2020 - Present')",
    "responsibilities": ["array of strings - duties and achievements"]
  }],
  "education": [{
    "institution": "string - School or university name",
    "degree": "string - Degree earned",
    "dates": "string - Attendance dates",
    "gpa": "string - GPA if stated"
  }],
  "skills": {
    "technical": ["array of strings - technologies, tools, languages"],
    "soft": ["array of strings - interpersonal skills"]
  },
  "projects": [{"name": "string", "description": "string", "technologies": ["array of strings"]}],
  "certifications": [{"name": "string", "issuer": "string", "date": "string"}],
  "languages": [{"language": "string", "proficiency": "string"}],
  "interests": ["array of strings"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. If information is not found, use empty string "" for strings and empty array [] for arrays
3. Never invent information that is not present in the resume
4. Preserve the candidate's own wording for responsibilities and summaries
5. Decode obfuscated contact details (e.g. "name [at] domain [dot] com")

RESUME TEXT:
%s`, text)
}

// buildEvaluationPrompt creates the prompt for scoring a profile
func buildEvaluationPrompt(profile *models.ExtractedProfile) string {
	profileJSON, _ := json.Marshal(profile)
	return fmt.Sprintf(`You are a professional resume reviewer. Evaluate the following structured resume profile and return your assessment as a JSON object.

Score each dimension within its maximum: ats (max %d), keyword (max %d), content (max %d), relevance (max %d). The overall_score must equal the sum of the four.

Return a valid JSON object with exactly these fields:

{
  "overall_score": number,
  "scores": {
    "ats": number - ATS compatibility,
    "keyword": number - keyword optimization,
    "content": number - content quality,
    "relevance": number - relevance to the apparent target role
  },
  "strengths": ["array of strings"],
  "weaknesses": ["array of strings"],
  "improvements": ["array of strings - specific, actionable suggestions"],
  "industry_specific": ["array of strings - advice for the candidate's apparent industry"],
  "keyword_matches": ["array of strings - strong keywords found in the resume"],
  "personalization": "string - one paragraph addressed to this candidate"
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Ground every strength and weakness in the profile content
3. Keep each list item to one sentence

PROFILE:
%s`, models.MaxATSScore, models.MaxKeywordScore, models.MaxContentScore, models.MaxRelevanceScore, profileJSON)
}

// buildJobMatchPrompt creates the prompt for matching a profile to a job
func buildJobMatchPrompt(profile *models.ExtractedProfile, jobDescription string) string {
	profileJSON, _ := json.Marshal(profile)
	return fmt.Sprintf(`You are a recruiting assistant. Compare the candidate profile against the job description and return the match as a JSON object.

Return a valid JSON object with exactly these fields:

{
  "match_percentage": number - 0 to 100,
  "matched": ["array of strings - job requirements the candidate covers"],
  "missing": ["array of strings - job requirements the candidate lacks"],
  "total_job_keywords": number - how many distinct requirements the job lists,
  "recommendations": ["array of strings - at least 3 concrete suggestions"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Only list a keyword as matched when the profile genuinely evidences it
3. Keep missing to the 10 most important gaps

CANDIDATE PROFILE:
%s

JOB DESCRIPTION:
%s`, profileJSON, jobDescription)
}
