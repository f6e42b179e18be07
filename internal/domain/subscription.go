package domain

import "github.com/webthingsio/mailchimp-proxy/pkg/email"

// Subscription is a request to put an address into the given subscription state.
type Subscription struct {
	Email     string
	Subscribe bool
}

// Status returns the list member status the subscription asks for.
func (s Subscription) Status() email.MemberStatus {
	return StatusFor(s.Subscribe)
}

func (s Subscription) Validate() error {
	if s.Email == "" {
		return ErrInvalidEmail
	}
	return nil
}

func StatusFor(subscribe bool) email.MemberStatus {
	if subscribe {
		return email.StatusSubscribed
	}
	return email.StatusUnsubscribed
}
