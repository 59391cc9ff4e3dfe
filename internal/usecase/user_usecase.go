package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type UserUsecase struct {
	userRepo repo.UserRepository
	clock    Clock
}

func NewUserUsecase(userRepo repo.UserRepository, clock Clock) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, clock: clock}
}

type UpdateUserInput struct {
	Name   string
	Gender string
	About  string
}

type UserListOutput struct {
	Items []model.User `json:"items"`
	Total int64        `json:"total"`
}

func (u *UserUsecase) GetUser(ctx context.Context, userID string) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return *user, nil
}

func (u *UserUsecase) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	return *user, nil
}

func (u *UserUsecase) GetAllUsers(ctx context.Context, in ListInput) (UserListOutput, error) {
	items, total, err := u.userRepo.List(ctx, toPageQuery(in))
	if err != nil {
		return UserListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return UserListOutput{Items: items, Total: total}, nil
}

func (u *UserUsecase) UpdateUser(ctx context.Context, userID string, in UpdateUserInput) (model.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.Name = in.Name
	user.Gender = in.Gender
	user.About = in.About
	user.UpdatedAt = u.clock.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return *user, nil
}

func (u *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if err := u.userRepo.DeleteByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SetUserImage はプロフィール画像のファイル名だけ差し替える。
func (u *UserUsecase) SetUserImage(ctx context.Context, userID string, imageName string) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.ImageName = imageName
	user.UpdatedAt = u.clock.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return *user, nil
}
