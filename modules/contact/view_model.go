package contact

// Form status types.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// FormStatus is the banner shown above the form.
type FormStatus struct {
	Type    string
	Message string
}

// FormState is the view model of every contact response. OldInput is
// cleared after a successful send and holds the sanitized values otherwise.
type FormState struct {
	StatusCode int
	FormStatus *FormStatus
	OldInput   Submission
}

// EmptyForm is the state of a freshly loaded contact page.
func EmptyForm() FormState {
	return FormState{StatusCode: 200}
}

// ContactPageParams contains data for rendering the full contact page.
type ContactPageParams struct {
	Form FormState
}

// ContactFormParams contains data for rendering the #contact-form fragment.
type ContactFormParams struct {
	Form FormState
}
