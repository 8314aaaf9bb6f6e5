package members

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/dto"
	"github.com/GlebRadaev/sacco/internal/handlers/common"
	"github.com/GlebRadaev/sacco/internal/service/memberservice"
	"github.com/GlebRadaev/sacco/pkg/utils"
)

//go:generate mockgen -source=members.go -destination=mock_service.go -package=members

type Service interface {
	GetMember(ctx context.Context, actor domain.Actor, userID int) (*domain.User, error)
	ListMembers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	ChangeRole(ctx context.Context, actor domain.Actor, userID int, role domain.Role) (*domain.User, error)
	DeleteMember(ctx context.Context, actor domain.Actor, userID int) error
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Me godoc
//
//	@Summary	Current user profile
//	@Tags		Members
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/user/me [get]
func (h *MemberHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor := common.Actor(r)
	user, err := h.memberService.GetMember(r.Context(), actor, actor.UserID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(*user))
}

// ListMembers godoc
//
//	@Summary	List all users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.UserResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/members [get]
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	users, err := h.memberService.ListMembers(r.Context(), common.Actor(r))
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	response := make([]dto.UserResponseDTO, len(users))
	for i, u := range users {
		response[i] = dto.NewUserResponse(u)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ChangeRole godoc
//
//	@Summary	Change a user's role
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		userID	path		int							true	"User ID"
//	@Param		request	body		dto.ChangeRoleRequestDTO	true	"New role"
//	@Success	200		{object}	dto.UserResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request"
//	@Failure	403		{object}	utils.Response	"Admin role required"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	422		{object}	utils.Response	"Unsupported role"
//	@Router		/api/admin/members/{userID}/role [patch]
func (h *MemberHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "userID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	var req dto.ChangeRoleRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	user, err := h.memberService.ChangeRole(r.Context(), common.Actor(r), userID, role)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(*user))
}

// DeleteMember godoc
//
//	@Summary		Delete a user
//	@Description	Removes the user together with savings, loans and budget data
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			userID	path	int	true	"User ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"Admins cannot delete themselves"
//	@Router			/api/admin/members/{userID} [delete]
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "userID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	err = h.memberService.DeleteMember(r.Context(), common.Actor(r), userID)
	if errors.Is(err, memberservice.ErrSelfDelete) {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
