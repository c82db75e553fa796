package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/internal/model"
	"github.com/samplefinder/backend/internal/repository"
	"github.com/samplefinder/backend/pkg/errorx"
	"github.com/samplefinder/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

type TriviaDomain interface {
	GetActive(ctx context.Context, req *model.GetActiveTriviaRequest) (*model.GetActiveTriviaResponse, error)
	SubmitAnswer(ctx context.Context, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error)
	Dismiss(ctx context.Context, req *model.DismissTriviaRequest) (*model.DismissTriviaResponse, error)
}

type triviaDomain struct {
	triviaRepo   repository.TriviaQuestionRepository
	responseRepo repository.TriviaResponseRepository
	userRepo     repository.UserProfileRepository
}

func NewTriviaDomain(
	triviaRepo repository.TriviaQuestionRepository,
	responseRepo repository.TriviaResponseRepository,
	userRepo repository.UserProfileRepository,
) TriviaDomain {
	return &triviaDomain{
		triviaRepo:   triviaRepo,
		responseRepo: responseRepo,
		userRepo:     userRepo,
	}
}

// GetActive lists questions still eligible for the user: inside their active
// window, not yet answered by the user, not yet skipped by the user. The
// correct-answer index never leaves this layer.
func (d *triviaDomain) GetActive(
	ctx context.Context, req *model.GetActiveTriviaRequest,
) (*model.GetActiveTriviaResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "User id is required")
	}

	configs := xcontext.Configs(ctx).Mobile

	var questions []entity.TriviaQuestion
	var responses []entity.TriviaResponse

	// The two fetches have no ordering dependency.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		questions, err = d.triviaRepo.GetActive(egCtx, time.Now(), configs.MaxTriviaFetch)
		return err
	})
	eg.Go(func() error {
		var err error
		responses, err = d.responseRepo.GetByUserID(egCtx, req.UserID, configs.MaxResponseFetch)
		return err
	})

	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load active trivia: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot load trivia right now")
	}

	answered := map[string]bool{}
	for _, response := range responses {
		answered[response.TriviaID] = true
	}

	eligible := []model.TriviaQuestion{}
	for _, question := range questions {
		if answered[question.ID] {
			continue
		}

		if slices.Contains(question.SkippedUsers, req.UserID) {
			continue
		}

		eligible = append(eligible, model.TriviaQuestion{
			ID:        question.ID,
			Question:  question.Question,
			Answers:   question.Answers,
			Points:    question.Points,
			StartDate: question.StartDate,
			EndDate:   question.EndDate,
			Client:    clientInfo(question.ClientRef()),
		})
	}

	return &model.GetActiveTriviaResponse{Trivia: eligible, Count: len(eligible)}, nil
}

func (d *triviaDomain) SubmitAnswer(
	ctx context.Context, req *model.SubmitAnswerRequest,
) (*model.SubmitAnswerResponse, error) {
	if req.UserID == "" || req.TriviaID == "" {
		return nil, errorx.New(errorx.BadRequest, "User id and trivia id are required")
	}

	if req.AnswerIndex == nil || *req.AnswerIndex < 0 {
		return nil, errorx.New(errorx.BadRequest, "Answer index must be a non-negative number")
	}

	question, err := d.triviaRepo.GetByID(ctx, req.TriviaID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errorx.New(errorx.NotFound, "Not found trivia question")
		}

		xcontext.Logger(ctx).Errorf("Cannot get trivia question: %v", err)
		return nil, errorx.Unknown
	}

	if !question.ActiveAt(time.Now()) {
		return nil, errorx.New(errorx.PreconditionFailed, "This question is not currently active")
	}

	user, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errorx.New(errorx.NotFound, "Not found user profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user profile: %v", err)
		return nil, errorx.Unknown
	}

	// Pre-write existence check. Two near-simultaneous submissions can still
	// both pass; the store offers no conditional write to close the race.
	_, err = d.responseRepo.GetByUserAndTrivia(ctx, req.UserID, req.TriviaID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You have already answered this question")
	}

	if !repository.IsNotFound(err) {
		xcontext.Logger(ctx).Errorf("Cannot check for a prior response: %v", err)
		return nil, errorx.Unknown
	}

	if *req.AnswerIndex >= len(question.Answers) {
		return nil, errorx.New(errorx.BadRequest,
			"Answer index must be between 0 and %d", len(question.Answers)-1)
	}

	isCorrect := *req.AnswerIndex == question.CorrectIndex

	err = d.responseRepo.Create(ctx, &entity.TriviaResponse{
		TriviaID:    req.TriviaID,
		UserID:      req.UserID,
		Answer:      question.Answers[*req.AnswerIndex],
		AnswerIndex: *req.AnswerIndex,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create trivia response: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot record your answer right now")
	}

	if !isCorrect {
		return &model.SubmitAnswerResponse{
			IsCorrect:     false,
			PointsAwarded: 0,
			Message:       "Sorry, that is not the right answer",
		}, nil
	}

	// Read-then-write with no compare-and-swap. Concurrent correct answers
	// for different questions by the same user can lose an update.
	if err := d.userRepo.UpdatePoints(ctx, user.ID, user.Points+question.Points); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot award points to user %s: %v", user.ID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot award points right now")
	}

	return &model.SubmitAnswerResponse{
		IsCorrect:     true,
		PointsAwarded: question.Points,
		Message:       fmt.Sprintf("Correct! You earned %d points", question.Points),
	}, nil
}

// Dismiss marks the question as skipped for the user. Dismissing twice is a
// no-op; the second call writes nothing.
func (d *triviaDomain) Dismiss(
	ctx context.Context, req *model.DismissTriviaRequest,
) (*model.DismissTriviaResponse, error) {
	if req.UserID == "" || req.TriviaID == "" {
		return nil, errorx.New(errorx.BadRequest, "User id and trivia id are required")
	}

	if _, err := d.userRepo.GetByID(ctx, req.UserID); err != nil {
		if repository.IsNotFound(err) {
			return nil, errorx.New(errorx.NotFound, "Not found user profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user profile: %v", err)
		return nil, errorx.Unknown
	}

	question, err := d.triviaRepo.GetByID(ctx, req.TriviaID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errorx.New(errorx.NotFound, "Not found trivia question")
		}

		xcontext.Logger(ctx).Errorf("Cannot get trivia question: %v", err)
		return nil, errorx.Unknown
	}

	if slices.Contains(question.SkippedUsers, req.UserID) {
		return &model.DismissTriviaResponse{}, nil
	}

	skippedUsers := append(question.SkippedUsers, req.UserID)
	skips := question.Skips
	if skips != nil {
		next := *skips + 1
		skips = &next
	}

	if err := d.triviaRepo.UpdateSkips(ctx, question.ID, skippedUsers, skips); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update the skip set: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot dismiss this question right now")
	}

	return &model.DismissTriviaResponse{}, nil
}

func clientInfo(ref entity.ClientRef) *model.ClientInfo {
	if ref.Empty() {
		return nil
	}

	if ref.Embedded != nil {
		return &model.ClientInfo{
			ID:   ref.Embedded.ID,
			Name: ref.Embedded.Name,
			Logo: ref.Embedded.Logo,
		}
	}

	return &model.ClientInfo{ID: ref.ID}
}
