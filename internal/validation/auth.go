package validation

// RegisterInput is the raw field bag of a registration submission.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Password2 string
}

// ValidateRegisterInput checks a registration submission.
func ValidateRegisterInput(in RegisterInput) Result {
	errs := map[string]string{}

	if !lengthBetween(in.Name, 2, 30) {
		errs["name"] = "Name must be between 2 and 30 characters"
	}
	if isEmpty(in.Name) {
		errs["name"] = "Name field is required"
	}

	if !IsEmail(in.Email) {
		errs["email"] = "Email is invalid"
	}
	if isEmpty(in.Email) {
		errs["email"] = "Email field is required"
	}

	if !lengthBetween(in.Password, 6, 30) {
		errs["password"] = "Password must be at least 6 characters"
	}
	if isEmpty(in.Password) {
		errs["password"] = "Password field is required"
	}

	if in.Password2 != in.Password {
		errs["password2"] = "Passwords must match"
	}
	if isEmpty(in.Password2) {
		errs["password2"] = "Confirm Password field is required"
	}

	return newResult(errs)
}

// LoginInput is the raw field bag of a login submission.
type LoginInput struct {
	Email    string
	Password string
}

// ValidateLoginInput checks a login submission.
func ValidateLoginInput(in LoginInput) Result {
	errs := map[string]string{}

	if !IsEmail(in.Email) {
		errs["email"] = "Email is invalid"
	}
	if isEmpty(in.Email) {
		errs["email"] = "Email field is required"
	}
	if isEmpty(in.Password) {
		errs["password"] = "Password field is required"
	}

	return newResult(errs)
}
