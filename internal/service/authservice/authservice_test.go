package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, operatorRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name             string
		login            string
		password         string
		prepareMock      func()
		expectedOperator *domain.Operator
		expectedError    error
	}{
		{
			name:     "Successful registration",
			login:    "testoperator",
			password: "testpassword",
			prepareMock: func() {
				operatorRepo.EXPECT().FindByLogin(context.Background(), "testoperator").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				operatorRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, operator *domain.Operator) (*domain.Operator, error) {
					operator.ID = 1
					return operator, nil
				})
			},
			expectedOperator: &domain.Operator{
				ID:           1,
				Login:        "testoperator",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Operator already exists",
			login:    "testoperator",
			password: "testpassword",
			prepareMock: func() {
				operatorRepo.EXPECT().FindByLogin(context.Background(), "testoperator").Return(&domain.Operator{Login: "testoperator"}, nil)
			},
			expectedOperator: nil,
			expectedError:    errors.New("login already taken"),
		},
		{
			name:     "Error finding operator",
			login:    "testoperator",
			password: "testpassword",
			prepareMock: func() {
				operatorRepo.EXPECT().FindByLogin(context.Background(), "testoperator").Return(nil, errors.New("database error"))
			},
			expectedOperator: nil,
			expectedError:    errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "testoperator",
			password: "testpassword",
			prepareMock: func() {
				operatorRepo.EXPECT().FindByLogin(context.Background(), "testoperator").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedOperator: nil,
			expectedError:    errors.New("hashing error"),
		},
		{
			name:     "Error creating operator",
			login:    "testoperator",
			password: "testpassword",
			prepareMock: func() {
				operatorRepo.EXPECT().FindByLogin(context.Background(), "testoperator").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				operatorRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedOperator: nil,
			expectedError:    errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			operator, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOperator, operator)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, operatorRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name             string
		login            string
		password         string
		prepareMock      func()
		expectedOperator *domain.Operator
		expectedError    error
	}{
		{
			name:     "Successful authentication",
			login:    "testoperator",
			password: "testpassword",
			prepareMock: func() {
				operatorRepo.EXPECT().FindByLogin(context.Background(), "testoperator").Return(&domain.Operator{
					ID:           1,
					Login:        "testoperator",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedOperator: &domain.Operator{
				ID:           1,
				Login:        "testoperator",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Invalid credentials - operator not found",
			login:    "testoperator",
			password: "testpassword",
			prepareMock: func() {
				operatorRepo.EXPECT().FindByLogin(context.Background(), "testoperator").Return(nil, nil)
			},
			expectedOperator: nil,
			expectedError:    errors.New("invalid credentials"),
		},
		{
			name:     "Invalid credentials - incorrect password",
			login:    "testoperator",
			password: "wrongpassword",
			prepareMock: func() {
				operatorRepo.EXPECT().FindByLogin(context.Background(), "testoperator").Return(&domain.Operator{
					ID:           1,
					Login:        "testoperator",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedOperator: nil,
			expectedError:    errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			operator, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOperator, operator)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		operatorID    int
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:       "Successful token generation",
			operatorID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
			expectedError: nil,
		},
		{
			name:       "Error generating token",
			operatorID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedToken: "",
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.operatorID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
