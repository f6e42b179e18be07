package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/webthingsio/mailchimp-proxy/internal/domain"
	"github.com/webthingsio/mailchimp-proxy/pkg/email"
	mock_email "github.com/webthingsio/mailchimp-proxy/pkg/email/mock"
)

const testListID = "list1"

func newTestService(provider email.Provider) *newsletterService {
	return newNewsletterService(provider, testListID)
}

func TestSubscribe_CreatesWhenNoMatch(t *testing.T) {
	tests := []struct {
		name      string
		subscribe bool
		status    email.MemberStatus
	}{
		{name: "subscribe", subscribe: true, status: email.StatusSubscribed},
		{name: "unsubscribe", subscribe: false, status: email.StatusUnsubscribed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(mock_email.EmailProvider)
			provider.On("FindMember", mock.Anything, testListID, "a@example.com").Return(nil, nil).Once()
			provider.On("AddMember", mock.Anything, email.AddEmailInput{
				Email:     "a@example.com",
				ListID:    testListID,
				Status:    tt.status,
				Variables: map[string]string{},
			}).Return(nil).Once()

			outcome, err := newTestService(provider).Subscribe(context.Background(), domain.Subscription{
				Email:     "a@example.com",
				Subscribe: tt.subscribe,
			})
			require.NoError(t, err)
			assert.Equal(t, OutcomeCreated, outcome)

			provider.AssertExpectations(t)
			provider.AssertNotCalled(t, "UpdateMemberStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubscribe_UnchangedWhenStatusMatches(t *testing.T) {
	provider := new(mock_email.EmailProvider)
	provider.On("FindMember", mock.Anything, testListID, "a@example.com").
		Return(&email.Member{ID: "hash1", Status: email.StatusSubscribed}, nil).Once()

	outcome, err := newTestService(provider).Subscribe(context.Background(), domain.Subscription{
		Email:     "a@example.com",
		Subscribe: true,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, outcome)

	provider.AssertExpectations(t)
	provider.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
	provider.AssertNotCalled(t, "UpdateMemberStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribe_UpdatesWhenStatusDiffers(t *testing.T) {
	tests := []struct {
		name      string
		current   email.MemberStatus
		subscribe bool
		want      email.MemberStatus
	}{
		{name: "resubscribe", current: email.StatusUnsubscribed, subscribe: true, want: email.StatusSubscribed},
		{name: "unsubscribe", current: email.StatusSubscribed, subscribe: false, want: email.StatusUnsubscribed},
		{name: "cleaned member", current: email.StatusCleaned, subscribe: true, want: email.StatusSubscribed},
		{name: "pending member", current: email.StatusPending, subscribe: false, want: email.StatusUnsubscribed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(mock_email.EmailProvider)
			provider.On("FindMember", mock.Anything, testListID, "a@example.com").
				Return(&email.Member{ID: "hash1", Status: tt.current}, nil).Once()
			provider.On("UpdateMemberStatus", mock.Anything, testListID, "hash1", tt.want).Return(nil).Once()

			outcome, err := newTestService(provider).Subscribe(context.Background(), domain.Subscription{
				Email:     "a@example.com",
				Subscribe: tt.subscribe,
			})
			require.NoError(t, err)
			assert.Equal(t, OutcomeUpdated, outcome)

			provider.AssertExpectations(t)
			provider.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
		})
	}
}

func TestSubscribe_LookupErrorSkipsWrite(t *testing.T) {
	cause := errors.New("connection refused")
	provider := new(mock_email.EmailProvider)
	provider.On("FindMember", mock.Anything, testListID, "a@example.com").Return(nil, cause).Once()

	outcome, err := newTestService(provider).Subscribe(context.Background(), domain.Subscription{
		Email:     "a@example.com",
		Subscribe: true,
	})
	require.Error(t, err)
	assert.Equal(t, OutcomeNone, outcome)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)

	provider.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
	provider.AssertNotCalled(t, "UpdateMemberStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribe_WriteErrors(t *testing.T) {
	cause := errors.New("api key invalid")

	t.Run("create", func(t *testing.T) {
		provider := new(mock_email.EmailProvider)
		provider.On("FindMember", mock.Anything, testListID, "a@example.com").Return(nil, nil).Once()
		provider.On("AddMember", mock.Anything, mock.Anything).Return(cause).Once()

		_, err := newTestService(provider).Subscribe(context.Background(), domain.Subscription{Email: "a@example.com"})
		assert.ErrorIs(t, err, ErrUpstream)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "add member failed")
	})

	t.Run("update", func(t *testing.T) {
		provider := new(mock_email.EmailProvider)
		provider.On("FindMember", mock.Anything, testListID, "a@example.com").
			Return(&email.Member{ID: "hash1", Status: email.StatusSubscribed}, nil).Once()
		provider.On("UpdateMemberStatus", mock.Anything, testListID, "hash1", email.StatusUnsubscribed).Return(cause).Once()

		_, err := newTestService(provider).Subscribe(context.Background(), domain.Subscription{Email: "a@example.com"})
		assert.ErrorIs(t, err, ErrUpstream)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "update member status failed")
	})
}

func TestSubscribe_EmptyEmail(t *testing.T) {
	provider := new(mock_email.EmailProvider)

	_, err := newTestService(provider).Subscribe(context.Background(), domain.Subscription{Subscribe: true})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.NotErrorIs(t, err, ErrUpstream)

	provider.AssertNotCalled(t, "FindMember", mock.Anything, mock.Anything, mock.Anything)
}
