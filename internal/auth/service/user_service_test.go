package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ansoncht/Cat-Food-Helper/internal/auth/domain"
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/dto"
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/service"
	autherror "github.com/ansoncht/Cat-Food-Helper/internal/errors"
	"github.com/ansoncht/Cat-Food-Helper/internal/mocks"
	"github.com/ansoncht/Cat-Food-Helper/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validSignUpInput() dto.SignUpInput {
	return dto.SignUpInput{
		Username:  "test",
		Email:     "test@gmail.com",
		FirstName: "test",
		LastName:  "test",
		Password:  "testPassword",
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	input := validSignUpInput()

	var created *domain.User

	mockRepo.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(false, nil)
	mockRepo.EXPECT().ExistsByEmail(gomock.Any(), input.Email).Return(false, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) error {
			created = user
			return nil
		})

	out, err := s.RegisterUser(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, input.Username, out.Username)
	assert.Equal(t, input.Email, out.Email)
	assert.Equal(t, input.FirstName, out.FirstName)
	assert.Equal(t, input.LastName, out.LastName)
	assert.NotEmpty(t, out.ID)
	assert.NotZero(t, out.CreatedAt)
	assert.NotZero(t, out.UpdatedAt)

	require.NotNil(t, created)
	assert.Contains(t, created.Roles, constant.RoleUser)
	assert.NotEqual(t, input.Password, created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(input.Password)))
}

func TestUserService_RegisterUser_ExistingUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	input := validSignUpInput()

	// Username is checked first; no email check and no write may follow.
	mockRepo.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(true, nil)

	out, err := s.RegisterUser(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrUsernameAlreadyInUse)
	assert.Nil(t, out)
}

func TestUserService_RegisterUser_ExistingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	input := validSignUpInput()

	mockRepo.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(false, nil)
	mockRepo.EXPECT().ExistsByEmail(gomock.Any(), input.Email).Return(true, nil)

	out, err := s.RegisterUser(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	assert.Nil(t, out)
}

func TestUserService_RegisterUser_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	input := validSignUpInput()
	expectedErr := errors.New("database error")

	mockRepo.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(false, expectedErr)

	out, err := s.RegisterUser(context.Background(), input)

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, out)
}

func TestUserService_RegisterUser_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	input := validSignUpInput()

	mockRepo.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(false, nil)
	mockRepo.EXPECT().ExistsByEmail(gomock.Any(), input.Email).Return(false, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(autherror.ErrUsernameAlreadyInUse)

	out, err := s.RegisterUser(context.Background(), input)

	// A lost race surfaces the same duplicate error as the pre-check.
	assert.ErrorIs(t, err, autherror.ErrUsernameAlreadyInUse)
	assert.Nil(t, out)
}

func storedUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	now := time.Now()

	return &domain.User{
		ID:           "user-123",
		Username:     "test",
		Email:        "test@gmail.com",
		FirstName:    "test",
		LastName:     "test",
		PasswordHash: string(hash),
		Roles:        []string{constant.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserService_AuthenticateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	user := storedUser(t, "testPassword")
	input := dto.SignInInput{UsernameOrEmail: "test@gmail.com", Password: "testPassword"}

	mockRepo.EXPECT().
		FindByUsernameOrEmail(gomock.Any(), input.UsernameOrEmail, input.UsernameOrEmail).
		Return(user, nil)

	out, err := s.AuthenticateUser(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, user.ID, out.ID)
	assert.Equal(t, user.Username, out.Username)
	assert.Equal(t, user.Email, out.Email)
}

func TestUserService_AuthenticateUser_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	user := storedUser(t, "testPassword")
	input := dto.SignInInput{UsernameOrEmail: "test", Password: "wrongPassword"}

	mockRepo.EXPECT().
		FindByUsernameOrEmail(gomock.Any(), input.UsernameOrEmail, input.UsernameOrEmail).
		Return(user, nil)

	out, err := s.AuthenticateUser(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestUserService_AuthenticateUser_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	input := dto.SignInInput{UsernameOrEmail: "nobody", Password: "testPassword"}

	mockRepo.EXPECT().
		FindByUsernameOrEmail(gomock.Any(), input.UsernameOrEmail, input.UsernameOrEmail).
		Return(nil, nil)

	out, err := s.AuthenticateUser(context.Background(), input)

	// Unknown user and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestUserService_AuthenticateUser_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	input := dto.SignInInput{UsernameOrEmail: "test", Password: "testPassword"}
	expectedErr := errors.New("database error")

	mockRepo.EXPECT().
		FindByUsernameOrEmail(gomock.Any(), input.UsernameOrEmail, input.UsernameOrEmail).
		Return(nil, expectedErr)

	out, err := s.AuthenticateUser(context.Background(), input)

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, out)
}

func TestUserService_LoadByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewUserService(mockRepo)

	t.Run("found", func(t *testing.T) {
		user := storedUser(t, "testPassword")

		mockRepo.EXPECT().
			FindByUsernameOrEmail(gomock.Any(), "test", "test").
			Return(user, nil)

		got, err := s.LoadByUsername(context.Background(), "test")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByUsernameOrEmail(gomock.Any(), "nobody", "nobody").
			Return(nil, nil)

		got, err := s.LoadByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
		assert.Nil(t, got)
	})
}
