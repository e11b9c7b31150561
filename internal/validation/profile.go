package validation

// ProfileInput is the raw field bag of a profile submission.
type ProfileInput struct {
	Handle    string
	Status    string
	Skills    string
	Website   string
	Youtube   string
	Twitter   string
	Facebook  string
	Linkedin  string
	Instagram string
}

// ValidateProfileInput checks a profile submission.
// Handle must be 6-40 characters; the error text says "2 to 40" and is kept
// verbatim because existing clients string-match it.
func ValidateProfileInput(in ProfileInput) Result {
	errs := map[string]string{}

	if !lengthBetween(in.Handle, 6, 40) {
		errs["handle"] = "Handle needs to be between 2 and 40 characters"
	}
	if isEmpty(in.Handle) {
		errs["handle"] = "Profile handle is required"
	}
	if isEmpty(in.Status) {
		errs["status"] = "Profile status is required"
	}
	if isEmpty(in.Skills) {
		errs["skills"] = "Profile skills is required"
	}

	requireURL(errs, "website", in.Website)
	requireURL(errs, "youtube", in.Youtube)
	requireURL(errs, "twitter", in.Twitter)
	requireURL(errs, "facebook", in.Facebook)
	requireURL(errs, "linkedin", in.Linkedin)
	requireURL(errs, "instagram", in.Instagram)

	return newResult(errs)
}

// ExperienceInput is the raw field bag of an experience submission.
type ExperienceInput struct {
	Title   string
	Company string
	From    string
}

// ValidateExperienceInput checks an experience submission.
func ValidateExperienceInput(in ExperienceInput) Result {
	errs := map[string]string{}

	if isEmpty(in.Title) {
		errs["title"] = "Job title is required"
	}
	if isEmpty(in.Company) {
		errs["company"] = "Company is required"
	}
	if isEmpty(in.From) {
		errs["from"] = "From date field is required"
	}

	return newResult(errs)
}

// EducationInput is the raw field bag of an education submission.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
}

// ValidateEducationInput checks an education submission.
func ValidateEducationInput(in EducationInput) Result {
	errs := map[string]string{}

	if isEmpty(in.School) {
		errs["school"] = "School is required"
	}
	if isEmpty(in.Degree) {
		errs["degree"] = "Degree is required"
	}
	if isEmpty(in.FieldOfStudy) {
		errs["fieldofstudy"] = "Field of study is required"
	}
	if isEmpty(in.From) {
		errs["from"] = "From date field is required"
	}

	return newResult(errs)
}
