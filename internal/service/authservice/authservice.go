package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/voltwire/referral/internal/domain"
	"github.com/voltwire/referral/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Operator, error)
	Create(ctx context.Context, operator *domain.Operator) (*domain.Operator, error)
}

type Service struct {
	operatorRepo Repo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		operatorRepo: repo,
		hashService:  hashService,
		jwtService:   jwtService,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.Operator, error) {
	existing, err := s.operatorRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find operator: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("operator already exists, login: ", zap.String("login", login))
		return nil, errors.New("login already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	operator := &domain.Operator{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	created, err := s.operatorRepo.Create(ctx, operator)
	if err != nil {
		zap.L().Error("can't create operator: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("operator successfully registered", zap.String("login", login))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Operator, error) {
	operator, err := s.operatorRepo.FindByLogin(ctx, login)
	if err != nil || operator == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(operator.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("operator successfully authenticated", zap.String("login", login))
	return operator, nil
}

func (s *Service) GenerateToken(operatorID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(operatorID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
