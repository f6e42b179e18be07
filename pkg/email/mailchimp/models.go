package mailchimp

// Field projections accepted by the search-members endpoint.
const (
	FieldExactMatchID     = "exact_matches.members.id"
	FieldExactMatchStatus = "exact_matches.members.status"
)

type SearchMembersParams struct {
	Query  string
	ListID string
	Fields []string
}

// SearchMembersResponse is the body of GET /search-members.
type SearchMembersResponse struct {
	ExactMatches MemberCollection `json:"exact_matches"`
	FullSearch   MemberCollection `json:"full_search"`
}

type MemberCollection struct {
	Members    []MemberResponse `json:"members"`
	TotalItems int              `json:"total_items"`
}

// MemberResponse is a list member. ID is the MD5 subscriber hash of the lowercased address.
type MemberResponse struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address,omitempty"`
	Status       string `json:"status"`
	ListID       string `json:"list_id,omitempty"`
}

type CreateMemberRequest struct {
	EmailAddress string            `json:"email_address"`
	Status       string            `json:"status"`
	MergeFields  map[string]string `json:"merge_fields"`
}

type UpdateMemberRequest struct {
	Status string `json:"status"`
}

type pingResponse struct {
	HealthStatus string `json:"health_status"`
}
