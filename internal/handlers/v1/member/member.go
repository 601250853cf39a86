package member

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// Member is the API response model for a business membership.
type Member struct {
	ID         string `json:"id" doc:"Membership UUID"`
	UserID     string `json:"user_id" doc:"Member user UUID"`
	Username   string `json:"username" doc:"Member username"`
	FullName   string `json:"full_name" doc:"Member full name"`
	BusinessID string `json:"business_id" doc:"Business UUID"`
	Role       string `json:"role" enum:"ADMIN,EDITOR,VIEWER" doc:"Granted role"`
	JoinedAt   string `json:"joined_at" doc:"RFC3339 time the member was added"`
}

func newMember(m *service.Member) Member {
	return Member{
		ID:         m.ID.String(),
		UserID:     m.UserID.String(),
		Username:   m.Username,
		FullName:   m.FullName,
		BusinessID: m.BusinessID.String(),
		Role:       string(m.Role),
		JoinedAt:   httperr.Timestamp(m.JoinedAt),
	}
}

type ListMembersInput struct {
	Business string `query:"business" doc:"Only members of this business"`
}

type ListMembersOutput struct {
	Body struct {
		Members []Member `json:"members" doc:"Members of the caller's businesses"`
	}
}

type CreateMemberBody struct {
	UserID     string `json:"user_id" required:"true" doc:"User UUID to add"`
	BusinessID string `json:"business_id" required:"true" doc:"Business UUID"`
	Role       string `json:"role,omitempty" doc:"ADMIN, EDITOR or VIEWER; VIEWER when omitted"`
}

type CreateMemberInput struct {
	Body CreateMemberBody
}

type UpdateMemberInput struct {
	ID   string `path:"id" doc:"Membership UUID"`
	Body struct {
		Role string `json:"role" required:"true" doc:"ADMIN, EDITOR or VIEWER"`
	}
}

type MemberIDInput struct {
	ID string `path:"id" doc:"Membership UUID"`
}

type MemberOutput struct {
	Body Member
}

type memberService interface {
	List(ctx context.Context, actor uuid.UUID, businessID uuid.NullUUID) ([]*service.Member, error)
	Create(ctx context.Context, actor uuid.UUID, input service.MemberInput) (*service.Member, error)
	UpdateRole(ctx context.Context, actor, id uuid.UUID, roleName string) (*service.Member, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
}

// Handler serves /v1/members. Every operation is limited to the business owner.
type Handler struct {
	MemberService memberService
}

func NewHandler(svc memberService) *Handler {
	return &Handler{MemberService: svc}
}

func (h *Handler) Register(api huma.API) {
	tags := []string{"Members"}
	huma.Register(api, huma.Operation{
		OperationID: "list-members",
		Method:      http.MethodGet,
		Path:        "/v1/members",
		Summary:     "List members",
		Tags:        tags,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "create-member",
		Method:        http.MethodPost,
		Path:          "/v1/members",
		Summary:       "Add member",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-member",
		Method:      http.MethodPatch,
		Path:        "/v1/members/{id}",
		Summary:     "Change member role",
		Tags:        tags,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-member",
		Method:        http.MethodDelete,
		Path:          "/v1/members/{id}",
		Summary:       "Remove member",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) list(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseOptionalID("business", input.Business)
	if err != nil {
		return nil, err
	}

	members, err := h.MemberService.List(ctx, actor, businessID)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to list members")
	}

	out := &ListMembersOutput{}
	out.Body.Members = make([]Member, len(members))
	for i, m := range members {
		out.Body.Members[i] = newMember(m)
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *CreateMemberInput) (*MemberOutput, error) {
	actor, err := httperr.Actor(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := httperr.ParseID("user_id", input.Body.UserID)
	if err != nil {
		return nil, err
	}
	businessID, err := httperr.ParseID("business_id", input.Body.BusinessID)
	if err != nil {
		return nil, err
	}

	created, err := h.MemberService.Create(ctx, actor, service.MemberInput{
		UserID:     userID,
		BusinessID: businessID,
		Role:       input.Body.Role,
	})
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to add member")
	}
	return &MemberOutput{Body: newMember(created)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateMemberInput) (*MemberOutput, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	updated, err := h.MemberService.UpdateRole(ctx, actor, id, input.Body.Role)
	if err != nil {
		return nil, httperr.From(ctx, err, "failed to update member")
	}
	return &MemberOutput{Body: newMember(updated)}, nil
}

func (h *Handler) delete(ctx context.Context, input *MemberIDInput) (*struct{}, error) {
	actor, id, err := httperr.Target(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.MemberService.Delete(ctx, actor, id); err != nil {
		return nil, httperr.From(ctx, err, "failed to remove member")
	}
	return nil, nil
}
