package models

// Request bodies carry `validate` tags checked client-side before a call is
// made; the constraints mirror the ones the backend enforces.

type AuthenticationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthenticationResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// UpdateUserRequest is what the profile form collects before it is turned
// into a ProfilePatch.
type UpdateUserRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
}

// Patch converts the full form into a patch touching both names.
func (r UpdateUserRequest) Patch() ProfilePatch {
	first, last := r.Firstname, r.Lastname
	return ProfilePatch{Firstname: &first, Lastname: &last}
}

type CreateUniversityRequest struct {
	Name        string `json:"name" validate:"required"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city" validate:"required"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL     string `json:"logoUrl,omitempty" validate:"omitempty,url"`
}

// UpdateUniversityRequest is the PUT body; empty fields are left unchanged by
// the backend.
type UpdateUniversityRequest struct {
	Name        string `json:"name,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL     string `json:"logoUrl,omitempty" validate:"omitempty,url"`
}

// ReviewStatus describes the author's relation to the university.
type ReviewStatus string

const (
	ReviewStatusStudent   ReviewStatus = "STUDENT"
	ReviewStatusGraduate  ReviewStatus = "GRADUATE"
	ReviewStatusApplicant ReviewStatus = "APPLICANT"
)

type CreateReviewRequest struct {
	UniversityID  int64        `json:"universityId" validate:"required,gt=0"`
	Text          string       `json:"text" validate:"required"`
	Rating        int          `json:"rating" validate:"min=1,max=5"`
	Facilities    int          `json:"facilities" validate:"min=1,max=5"`
	Opportunities int          `json:"opportunities" validate:"min=1,max=5"`
	Location      int          `json:"location" validate:"min=1,max=5"`
	Internet      int          `json:"internet" validate:"min=1,max=5"`
	Food          int          `json:"food" validate:"min=1,max=5"`
	Difficulty    int          `json:"difficulty" validate:"min=1,max=5"`
	Status        ReviewStatus `json:"status" validate:"required,oneof=STUDENT GRADUATE APPLICANT"`
	Tags          []string     `json:"tags"`
}
