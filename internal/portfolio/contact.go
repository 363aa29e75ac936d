package portfolio

import (
	"strings"

	"github.com/ensigniasec/portfolio/internal/validate"
)

// ClassifyEmail maps the raw field value to its validity class.
func ClassifyEmail(addr string) EmailState {
	if strings.TrimSpace(addr) == "" {
		return EmailEmpty
	}
	if validate.Email(addr) {
		return EmailValid
	}
	return EmailInvalid
}

// updateField writes one field. Any edit cancels an in-progress press gesture.
func (s *State) updateField(f Field, v string) {
	if s.Submit == Submitted {
		return
	}
	s.Form.set(f, v)
	if f == EmailAddress {
		s.Email = ClassifyEmail(v)
	}
	s.Submit = Unsubmitted
}

func (s *State) submitHover() {
	if s.Submit != Submitted {
		s.Submit = Hovered
	}
}

func (s *State) submitLeave() {
	if s.Submit != Submitted {
		s.Submit = Unsubmitted
	}
}

func (s *State) submitPress() {
	if s.Submit == Submitted {
		return
	}
	switch s.Email {
	case EmailEmpty:
		s.InvalidSubmission = false
	case EmailInvalid:
		s.InvalidSubmission = true
	case EmailValid:
		s.Submit = Pressed
	}
}

func (s *State) submitRelease() []Effect {
	if s.Submit == Submitted {
		return nil
	}
	if s.Email != EmailValid {
		s.Submit = Unsubmitted
		return nil
	}
	payload := s.Form
	s.Submit = Submitted
	s.InvalidSubmission = false
	s.Form = ContactForm{}
	s.Email = EmailEmpty
	return []Effect{SubmitEffect{Payload: payload}}
}
