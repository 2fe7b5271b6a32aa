package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/unicode/norm"

	"github.com/olprod/olprod-backend/domain"
	"github.com/olprod/olprod-backend/internal/logger"
)

type releaseUsecase struct {
	repo    domain.ReleaseRepository
	timeout time.Duration
}

func NewReleaseUsecase(repo domain.ReleaseRepository, timeout time.Duration) domain.ReleaseUsecase {
	return &releaseUsecase{
		repo:    repo,
		timeout: timeout,
	}
}

func parseOwnerID(userID string) (primitive.ObjectID, error) {
	if userID == "" {
		return primitive.NilObjectID, domain.NewValidationError("userId is required")
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError("invalid userId format")
	}
	return id, nil
}

func parseReleaseID(releaseID string) (primitive.ObjectID, error) {
	if releaseID == "" {
		return primitive.NilObjectID, domain.NewValidationError("releaseId is required")
	}
	id, err := primitive.ObjectIDFromHex(releaseID)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError("invalid releaseId format")
	}
	return id, nil
}

func (uc *releaseUsecase) Create(ctx context.Context, req *domain.CreateReleaseRequest) (*domain.ReleaseSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	owner, err := parseOwnerID(req.UserID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	genre := strings.TrimSpace(req.Genre)
	if title == "" || genre == "" {
		return nil, domain.NewValidationError("title and genre are required")
	}

	release := &domain.Release{
		UserID:       owner,
		Title:        norm.NFC.String(title),
		Genre:        norm.NFC.String(genre),
		Description:  strings.TrimSpace(req.Description),
		MusicAuthor:  strings.TrimSpace(req.MusicAuthor),
		LyricsAuthor: strings.TrimSpace(req.LyricsAuthor),
		AudioURL:     req.AudioURL,
		CoverURL:     req.CoverURL,
	}

	if req.ReleaseDate != "" {
		date, err := time.Parse("2006-01-02", req.ReleaseDate)
		if err != nil {
			return nil, domain.NewValidationError("releaseDate must be formatted as YYYY-MM-DD")
		}
		utc := date.UTC()
		release.ReleaseDate = &utc
	}

	if err := uc.repo.Create(ctx, release); err != nil {
		return nil, err
	}

	logger.Info(logger.EventReleaseCreated, "release created", logger.Fields(
		"release_id", release.ID.Hex(),
		"user_id", owner.Hex(),
	))

	summary := release.Summary()
	return &summary, nil
}

func (uc *releaseUsecase) List(ctx context.Context, userID string) ([]domain.ReleaseSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	owner, err := parseOwnerID(userID)
	if err != nil {
		return nil, err
	}

	releases, err := uc.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ReleaseSummary, 0, len(releases))
	for i := range releases {
		summaries = append(summaries, releases[i].Summary())
	}
	return summaries, nil
}

func (uc *releaseUsecase) Update(ctx context.Context, req *domain.UpdateReleaseRequest) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	owner, err := parseOwnerID(req.UserID)
	if err != nil {
		return err
	}
	release, err := parseReleaseID(req.ReleaseID)
	if err != nil {
		return err
	}

	mutation, err := req.Compile()
	if err != nil {
		return err
	}

	found, err := uc.repo.ApplyMutation(ctx, owner, release, mutation)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrReleaseNotFound
	}
	return nil
}

func (uc *releaseUsecase) Delete(ctx context.Context, userID, releaseID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	owner, err := parseOwnerID(userID)
	if err != nil {
		return err
	}
	release, err := parseReleaseID(releaseID)
	if err != nil {
		return err
	}

	if err := uc.repo.SoftDelete(ctx, owner, release); err != nil {
		return err
	}

	logger.Info(logger.EventReleaseDeleted, "release marked deleted", logger.Fields(
		"release_id", release.Hex(),
		"user_id", owner.Hex(),
	))
	return nil
}
