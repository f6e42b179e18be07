package mailchimp

import (
	"context"

	"github.com/webthingsio/mailchimp-proxy/pkg/email"
	"github.com/webthingsio/mailchimp-proxy/pkg/hash"
)

var _ email.Provider = (*Client)(nil)

// FindMember looks the address up among the exact matches of the list, fetching only id and status.
func (c *Client) FindMember(ctx context.Context, listID string, address string) (*email.Member, error) {
	if listID == "" {
		return nil, email.ErrEmptyListID
	}

	resp, err := c.SearchMembers(ctx, SearchMembersParams{
		Query:  address,
		ListID: listID,
		Fields: []string{FieldExactMatchID, FieldExactMatchStatus},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.ExactMatches.Members) == 0 {
		return nil, nil
	}

	m := resp.ExactMatches.Members[0]
	id := m.ID
	if id == "" {
		id = hash.SubscriberHash(address)
	}

	return &email.Member{
		ID:     id,
		Status: email.MemberStatus(m.Status),
	}, nil
}

func (c *Client) UpdateMemberStatus(ctx context.Context, listID string, memberID string, status email.MemberStatus) error {
	_, err := c.UpdateMember(ctx, listID, memberID, UpdateMemberRequest{Status: string(status)})
	return err
}

func (c *Client) AddMember(ctx context.Context, input email.AddEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	mergeFields := make(map[string]string, len(input.Variables))
	for k, v := range input.Variables {
		mergeFields[k] = v
	}

	_, err := c.CreateMember(ctx, input.ListID, CreateMemberRequest{
		EmailAddress: input.Email,
		Status:       string(input.Status),
		MergeFields:  mergeFields,
	})
	return err
}
