package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/cognitax/cognitax/internal/auth"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 168*time.Hour)
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "new@example.com").
		Return(nil, auth.ErrNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *auth.User) error {
			user.ID = uuid.New()
			user.CreatedAt = time.Now()
			return nil
		})

	svc := auth.NewService(repo, newTokenManager())

	user, token, err := svc.Register(context.Background(), "new@example.com", "hunter22", "New User")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
}

func TestService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&auth.User{ID: uuid.New()}, nil)

	svc := auth.NewService(repo, newTokenManager())

	_, _, err := svc.Register(context.Background(), "taken@example.com", "hunter22", "")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestService_Register_ConcurrentEmailTaken(t *testing.T) {
	// The pre-check passes but the insert loses the race and trips the
	// unique constraint.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "raced@example.com").
		Return(nil, auth.ErrNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(auth.ErrEmailTaken)

	svc := auth.NewService(repo, newTokenManager())

	_, _, err := svc.Register(context.Background(), "raced@example.com", "hunter22", "")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &auth.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		Name:         "User",
		PasswordHash: string(hash),
	}

	type testCase struct {
		name      string
		email     string
		password  string
		setupMock func(m *auth.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			email:    "user@example.com",
			password: "hunter22",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "user@example.com").
					Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			email:    "user@example.com",
			password: "nope",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "user@example.com").
					Return(stored, nil)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "UnknownEmail",
			email:    "ghost@example.com",
			password: "hunter22",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ghost@example.com").
					Return(nil, auth.ErrNotFound)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := auth.NewService(repo, newTokenManager())

			user, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_LoginRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	svc := auth.NewService(repo, newTokenManager())

	_, _, err := svc.Login(context.Background(), "user@example.com", "hunter22")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
