package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/webthingsio/mailchimp-proxy/internal/domain"
	"github.com/webthingsio/mailchimp-proxy/pkg/email"
	"github.com/webthingsio/mailchimp-proxy/pkg/logger"
)

// Outcome describes which write, if any, a subscription caused.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

type newsletterService struct {
	provider email.Provider
	listID   string
}

func newNewsletterService(provider email.Provider, listID string) *newsletterService {
	return &newsletterService{
		provider: provider,
		listID:   listID,
	}
}

// Subscribe puts the address into the requested state on the list: the member is
// updated when its status differs, created when absent and left alone otherwise.
// Lookup and write are separate calls, so concurrent requests for one address may race.
func (s *newsletterService) Subscribe(ctx context.Context, sub domain.Subscription) (Outcome, error) {
	if err := sub.Validate(); err != nil {
		return OutcomeNone, err
	}

	status := sub.Status()

	member, err := s.provider.FindMember(ctx, s.listID, sub.Email)
	if err != nil {
		return OutcomeNone, upstream(err, "find member failed")
	}

	if member == nil {
		err = s.provider.AddMember(ctx, email.AddEmailInput{
			Email:     sub.Email,
			ListID:    s.listID,
			Status:    status,
			Variables: map[string]string{},
		})
		if err != nil {
			return OutcomeNone, upstream(err, "add member failed")
		}

		logger.Debug("list member created", zap.String("status", string(status)))
		return OutcomeCreated, nil
	}

	if member.Status == status {
		return OutcomeUnchanged, nil
	}

	if err := s.provider.UpdateMemberStatus(ctx, s.listID, member.ID, status); err != nil {
		return OutcomeNone, upstream(err, "update member status failed")
	}

	logger.Debug("list member updated",
		zap.String("member_id", member.ID),
		zap.String("from", string(member.Status)),
		zap.String("to", string(status)),
	)
	return OutcomeUpdated, nil
}

// upstream keeps the provider error in the chain while classifying it as ErrUpstream.
func upstream(err error, msg string) error {
	return &upstreamError{cause: errors.Wrap(err, msg)}
}

type upstreamError struct {
	cause error
}

func (e *upstreamError) Error() string {
	return e.cause.Error()
}

func (e *upstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.cause}
}
