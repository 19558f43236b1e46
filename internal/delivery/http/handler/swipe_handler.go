package handler

import (
	"jobswipe/internal/delivery/http/dto"
	"jobswipe/internal/delivery/http/middleware"
	"jobswipe/internal/pkg/jwt"
	"jobswipe/internal/pkg/response"
	"jobswipe/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SwipeHandler struct {
	uc usecase.SwipeUsecase
}

type likeVacancyRequest struct {
	VacancyID string `json:"vacancy_id"`
}

type likeCandidateRequest struct {
	CandidateID string `json:"candidate_id"`
}

func NewSwipeHandler(uc usecase.SwipeUsecase) *SwipeHandler {
	return &SwipeHandler{uc: uc}
}

func (h *SwipeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	cand := r.Group("/candidate", middleware.RequireRole(jwt.RoleCandidate))
	cand.Post("/likes", h.LikeVacancy)
	cand.Get("/likes", h.ListCandidateLikes)
	cand.Delete("/likes/:vacancy_id", h.WithdrawVacancyLike)

	emp := r.Group("/employer", middleware.RequireRole(jwt.RoleEmployer))
	emp.Post("/vacancies/:vacancy_id/likes", h.LikeCandidate)
	emp.Get("/likes", h.ListEmployerLikes)
	emp.Delete("/vacancies/:vacancy_id/likes/:candidate_id", h.WithdrawCandidateLike)
}

func (h *SwipeHandler) LikeVacancy(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req likeVacancyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.LikeVacancy(c.Context(), actor.ID, req.VacancyID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return writeLikeResult(c, res)
}

func (h *SwipeHandler) LikeCandidate(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req likeCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.LikeCandidate(c.Context(), actor.ID, c.Params("vacancy_id"), req.CandidateID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return writeLikeResult(c, res)
}

func (h *SwipeHandler) ListCandidateLikes(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	ids, err := h.uc.ListCandidateLikes(c.Context(), actor.ID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CandidateLikesResponse{VacancyIDs: ids})
}

func (h *SwipeHandler) ListEmployerLikes(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListEmployerLikes(c.Context(), actor.ID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployerLikeListResponse(items))
}

func (h *SwipeHandler) WithdrawVacancyLike(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.WithdrawVacancyLike(c.Context(), actor.ID, c.Params("vacancy_id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SwipeHandler) WithdrawCandidateLike(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.WithdrawCandidateLike(c.Context(), actor.ID, c.Params("vacancy_id"), c.Params("candidate_id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func writeLikeResult(c fiber.Ctx, res usecase.LikeResult) error {
	out := dto.LikeResponse{
		LikeCreated:  res.LikeCreated,
		Matched:      res.Match != nil,
		MatchCreated: res.MatchCreated,
	}
	if res.Match != nil {
		m := dto.NewMatchResponse(*res.Match)
		out.Match = &m
	}

	status := fiber.StatusOK
	if res.LikeCreated {
		status = fiber.StatusCreated
	}
	msg := response.DefaultMessage(status)
	if res.MatchCreated {
		msg = response.MessageMatched
	}
	return response.Success(c, status, msg, out)
}
