package mock_email

import (
	"context"

	"github.com/webthingsio/mailchimp-proxy/pkg/email"

	"github.com/stretchr/testify/mock"
)

type EmailProvider struct {
	mock.Mock
}

func (m *EmailProvider) FindMember(ctx context.Context, listID string, address string) (*email.Member, error) {
	args := m.Called(ctx, listID, address)

	member, _ := args.Get(0).(*email.Member)
	return member, args.Error(1)
}

func (m *EmailProvider) UpdateMemberStatus(ctx context.Context, listID string, memberID string, status email.MemberStatus) error {
	args := m.Called(ctx, listID, memberID, status)

	return args.Error(0)
}

func (m *EmailProvider) AddMember(ctx context.Context, inp email.AddEmailInput) error {
	args := m.Called(ctx, inp)

	return args.Error(0)
}
