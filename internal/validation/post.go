package validation

// PostInput is the raw field bag of a post or comment submission; comments
// share the post rules.
type PostInput struct {
	Text string
}

// ValidatePostInput checks a post submission.
func ValidatePostInput(in PostInput) Result {
	errs := map[string]string{}

	if !lengthBetween(in.Text, 10, 300) {
		errs["text"] = "Post must be between 10 and 300 characters"
	}
	if isEmpty(in.Text) {
		errs["text"] = "Text field is required"
	}

	return newResult(errs)
}

// ValidateCommentInput checks a comment submission.
func ValidateCommentInput(in PostInput) Result {
	return ValidatePostInput(in)
}
