package models

import "time"

// Role values as the backend reports them.
const (
	RoleCandidate = "CANDIDATE"
	RoleEmployer  = "EMPLOYER"
)

// User is the authenticated account attached to the session.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// Skill as attached to jobs and candidate profiles.
type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DisclosureQuestion is an employer-defined question an applicant must answer.
type DisclosureQuestion struct {
	ID           int      `json:"id"`
	QuestionText string   `json:"questionText"`
	QuestionType string   `json:"questionType"` // TEXT, BOOLEAN, MULTIPLE_CHOICE
	IsRequired   bool     `json:"isRequired"`
	Options      []string `json:"options,omitempty"`
}

// Job is a server-owned posting. LogoDataURL is derived client-side from the
// base64 payload and never sent back.
type Job struct {
	ID                  int                  `json:"id"`
	JobID               string               `json:"jobId"`
	Title               string               `json:"title"`
	CompanyName         string               `json:"companyName"`
	CompanyID           int                  `json:"companyId"`
	Location            string               `json:"location"`
	JobType             string               `json:"jobType"`
	ExperienceLevel     string               `json:"experienceLevel"`
	Description         string               `json:"description"`
	Requirements        string               `json:"requirements"`
	Responsibilities    string               `json:"responsibilities"`
	SalaryRange         string               `json:"salaryRange"`
	ApplicationDeadline string               `json:"applicationDeadline"`
	Status              string               `json:"status"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
	Skills              []Skill              `json:"skills"`
	DisclosureQuestions []DisclosureQuestion `json:"disclosureQuestions"`
	LogoFileID          string               `json:"logoFileId,omitempty"`
	LogoBase64          string               `json:"logoBase64,omitempty"`
	LogoContentType     string               `json:"logoContentType,omitempty"`

	LogoDataURL string `json:"-"`
}

// PageResponse is the backend's page envelope.
type PageResponse[T any] struct {
	Content       []T  `json:"content"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Number        int  `json:"number"`
	Size          int  `json:"size"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

// LoginRequest is the credential payload for /api/auth/login. TermsAccepted
// is always sent; it is set on the retry after the server demanded acceptance
// of updated terms.
type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// JwtResponse is returned by login and both registration endpoints. A response
// may carry a session (token+user), an error message, or a terms-acceptance
// flag instead.
type JwtResponse struct {
	Token                   string `json:"token,omitempty"`
	TokenType               string `json:"tokenType,omitempty"`
	User                    *User  `json:"user,omitempty"`
	Error                   string `json:"error,omitempty"`
	Message                 string `json:"message,omitempty"`
	RequiresTermsAcceptance bool   `json:"requiresTermsAcceptance,omitempty"`
}

// EmailUpdateRequest for /api/auth/update-email.
type EmailUpdateRequest struct {
	NewEmail        string `json:"newEmail"`
	CurrentPassword string `json:"currentPassword"`
}

// PasswordUpdateRequest for /api/auth/update-password.
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CandidateRegistration for /api/candidate/register.
type CandidateRegistration struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone,omitempty"`
	AcceptedTerms bool   `json:"acceptedTerms"`
}

// EmployerRegistration for /api/employer/register.
type EmployerRegistration struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	CompanyName   string `json:"companyName"`
	AcceptedTerms bool   `json:"acceptedTerms"`
}

// CandidateProfile mirrors the candidate profile DTO.
type CandidateProfile struct {
	ID              int       `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Headline        string    `json:"headline"`
	Summary         string    `json:"summary"`
	ExperienceYears int       `json:"experienceYears"`
	ResumeFileID    string    `json:"resumeFileId"`
	ResumeFileName  string    `json:"resumeFileName"`
	Skills          []Skill   `json:"skills"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CandidateProfileUpdate is the writable subset of the candidate profile.
type CandidateProfileUpdate struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Phone           string   `json:"phone,omitempty"`
	Headline        string   `json:"headline,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	ExperienceYears int      `json:"experienceYears,omitempty"`
	Skills          []string `json:"skills,omitempty"`
}

// EmployerProfile mirrors the employer profile DTO.
type EmployerProfile struct {
	ID                 int    `json:"id"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	CompanyWebsite     string `json:"companyWebsite"`
	LogoFileID         string `json:"logoFileId"`
}

// EmployerProfileUpdate is the writable subset of the employer profile.
type EmployerProfileUpdate struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
}

// Application status vocabulary used by the dashboards and the employer
// review flow.
const (
	StatusApplied     = "APPLIED"
	StatusUnderReview = "UNDER_REVIEW"
	StatusShortlisted = "SHORTLISTED"
	StatusRejected    = "REJECTED"
	StatusHired       = "HIRED"
)

// DisclosureAnswer pairs a question with the applicant's answer.
type DisclosureAnswer struct {
	QuestionID   int    `json:"questionId"`
	QuestionText string `json:"questionText,omitempty"`
	AnswerText   string `json:"answerText"`
}

// ApplicationSubmission is the applicationData JSON part of the multipart
// apply request.
type ApplicationSubmission struct {
	JobID                int                `json:"jobId"`
	UseExistingResume    bool               `json:"useExistingResume"`
	VoluntaryDisclosures string             `json:"voluntaryDisclosures,omitempty"`
	DisclosureAnswers    []DisclosureAnswer `json:"disclosureAnswers,omitempty"`
}

// JobApplication is an application as the server reports it.
type JobApplication struct {
	ID                   int                `json:"id"`
	JobID                int                `json:"jobId"`
	JobName              string             `json:"jobName"`
	CompanyName          string             `json:"companyName"`
	CandidateID          int                `json:"candidateId"`
	CandidateName        string             `json:"candidateName"`
	ResumeFileID         string             `json:"resumeFileId"`
	ResumeFileName       string             `json:"resumeFileName"`
	CoverLetterFileID    string             `json:"coverLetterFileId"`
	CoverLetterFileName  string             `json:"coverLetterFileName"`
	Status               string             `json:"status"`
	VoluntaryDisclosures string             `json:"voluntaryDisclosures"`
	DisclosureAnswers    []DisclosureAnswer `json:"disclosureAnswers"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// JobDisclosureQuestions is the full disclosure DTO for a job.
type JobDisclosureQuestions struct {
	JobID               string               `json:"jobId"`
	JobTitle            string               `json:"jobTitle"`
	DisclosureQuestions []DisclosureQuestion `json:"disclosureQuestions"`
}

// JobCreate is the employer job-creation payload. Skills are a canonical
// ordered list of strings, normalized once at the form boundary.
type JobCreate struct {
	Title               string               `json:"title"`
	Location            string               `json:"location"`
	JobType             string               `json:"jobType"`
	ExperienceLevel     string               `json:"experienceLevel,omitempty"`
	Description         string               `json:"description"`
	Requirements        string               `json:"requirements,omitempty"`
	Responsibilities    string               `json:"responsibilities,omitempty"`
	SalaryRange         string               `json:"salaryRange,omitempty"`
	Skills              []string             `json:"skills,omitempty"`
	ApplicationDeadline string               `json:"applicationDeadline,omitempty"`
	DisclosureQuestions []DisclosureQuestion `json:"disclosureQuestions,omitempty"`
}

// SavedJob is a bookmark entry from /api/saved-jobs.
type SavedJob struct {
	ID              int       `json:"id"`
	CandidateID     int       `json:"candidateId"`
	JobID           string    `json:"jobId"`
	JobTitle        string    `json:"jobTitle"`
	CompanyName     string    `json:"companyName"`
	SavedAt         time.Time `json:"savedAt"`
	LogoFileID      string    `json:"logoFileId"`
	LogoBase64      string    `json:"logoBase64"`
	LogoContentType string    `json:"logoContentType"`
	LogoFileName    string    `json:"logoFileName"`
}

// ApplicationSummary is one row of the dashboard's recent-application list.
type ApplicationSummary struct {
	ID          int       `json:"id"`
	JobTitle    string    `json:"jobTitle"`
	CompanyName string    `json:"companyName"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"appliedAt"`
}

// CandidateDashboardStats from /api/candidate/dashboard.
type CandidateDashboardStats struct {
	TotalApplications      int                  `json:"totalApplications"`
	ApplicationsByStatus   map[string]int       `json:"applicationsByStatus"`
	RecentApplications     []ApplicationSummary `json:"recentApplications"`
	ApplicationTrendByDate map[string]int       `json:"applicationTrendByDate"`
}

// JobStats is one entry of the employer dashboard's top-jobs list.
type JobStats struct {
	JobID            string `json:"jobId"`
	Title            string `json:"title"`
	ApplicationCount int    `json:"applicationCount"`
}

// EmployerDashboardStats from /api/employer/dashboard.
type EmployerDashboardStats struct {
	TotalJobs                     int            `json:"totalJobs"`
	OpenJobs                      int            `json:"openJobs"`
	ClosedJobs                    int            `json:"closedJobs"`
	TotalApplications             int            `json:"totalApplications"`
	NewApplications               int            `json:"newApplications"`
	ShortlistedApplications       int            `json:"shortlistedApplications"`
	RejectedApplications          int            `json:"rejectedApplications"`
	ApplicationTrend              map[string]int `json:"applicationTrend"`
	TopJobs                       []JobStats     `json:"topJobs"`
	ApplicationStatusDistribution map[string]int `json:"applicationStatusDistribution"`
	JobTypeDistribution           map[string]int `json:"jobTypeDistribution"`
}
