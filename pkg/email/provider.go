package email

import (
	"context"
	"errors"
)

var ErrEmptyListID = errors.New("empty list id")

type MemberStatus string

const (
	StatusSubscribed    MemberStatus = "subscribed"
	StatusUnsubscribed  MemberStatus = "unsubscribed"
	StatusCleaned       MemberStatus = "cleaned"
	StatusPending       MemberStatus = "pending"
	StatusTransactional MemberStatus = "transactional"
	StatusArchived      MemberStatus = "archived"
)

// Member is a list member as reported by the provider. ID is the subscriber hash.
type Member struct {
	ID     string
	Status MemberStatus
}

// Provider is a mailing-list backend that stores list membership.
type Provider interface {
	// FindMember returns the first member whose address exactly matches email,
	// or nil when there is none.
	FindMember(ctx context.Context, listID string, email string) (*Member, error)
	UpdateMemberStatus(ctx context.Context, listID string, memberID string, status MemberStatus) error
	AddMember(ctx context.Context, input AddEmailInput) error
}

type AddEmailInput struct {
	Email     string
	ListID    string
	Status    MemberStatus
	Variables map[string]string
}

func (i AddEmailInput) Validate() error {
	if i.Email == "" {
		return errors.New("empty email")
	}

	if i.ListID == "" {
		return ErrEmptyListID
	}

	return nil
}
