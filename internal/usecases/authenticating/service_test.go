package authenticating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret: "segredo-de-teste",
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestCreateUser(t *testing.T) {
	t.Run("Usuário criado inativo com papel padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.False(t, u.Active)
			assert.Equal(t, 3, u.RoleID)
			assert.NotEqual(t, "senha123", u.PasswordHash)
			u.ID = 7
			return u, nil
		})

		user, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        " Maria@Example.com ",
			PasswordHash: "senha123",
		})
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Equal(t, "maria@example.com", user.Email)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@example.com",
			PasswordHash: "senha123",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		_, err := service.CreateUser(&domain.User{Email: "maria@example.com"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestLoginUser(t *testing.T) {
	t.Run("Login bem-sucedido gera token válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		cfg := authTestConfig()
		service := NewService(userRepo, cfg)

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{
			ID:           7,
			Name:         "Maria",
			Email:        "maria@example.com",
			Active:       true,
			RoleID:       2,
			PasswordHash: hashPassword(t, "senha123"),
		}, nil)

		token, err := service.LoginUser("Maria@Example.com", "senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{
			ID:           7,
			Active:       true,
			PasswordHash: hashPassword(t, "senha123"),
		}, nil)

		_, err := service.LoginUser("maria@example.com", "senha-errada")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Conta desativada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{
			ID:           7,
			Active:       false,
			PasswordHash: hashPassword(t, "senha123"),
		}, nil)

		_, err := service.LoginUser("maria@example.com", "senha123")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Usuário não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByEmail("fulano@example.com").Return(nil, nil)

		_, err := service.LoginUser("fulano@example.com", "senha123")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		otherCfg := authTestConfig()
		otherCfg.Auth.Secret = "outro-segredo"
		otherService := NewService(userRepo, otherCfg)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{
			ID:           7,
			Active:       true,
			PasswordHash: hashPassword(t, "senha123"),
		}, nil)

		token, err := otherService.LoginUser("maria@example.com", "senha123")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Token malformado é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockUserRepository(ctrl), authTestConfig())

		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.Error(t, err)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("Atualiza apenas os campos enviados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
			ID:       7,
			Name:     "Maria",
			Lastname: "Silva",
			Email:    "maria@example.com",
			Active:   false,
			RoleID:   3,
		}, nil)

		active := true
		roleID := 2
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.Equal(t, "Maria", u.Name)
			assert.True(t, u.Active)
			assert.Equal(t, 2, u.RoleID)
			return nil
		})

		err := service.UpdateUser(&domain.UpdateUserRequest{
			ID:     7,
			Active: &active,
			RoleID: &roleID,
		})
		require.NoError(t, err)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		err := service.UpdateUser(&domain.UpdateUserRequest{ID: 99})
		assert.Error(t, err)
	})
}

func TestGetUserProfile(t *testing.T) {
	t.Run("Senha nunca é exposta no perfil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
			ID:           7,
			Name:         "Maria",
			PasswordHash: hashPassword(t, "senha123"),
		}, nil)

		user, err := service.GetUserProfile(7)
		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, authTestConfig())

		userRepo.EXPECT().GetUserByID(7).Return(nil, fmt.Errorf("conexão recusada"))

		_, err := service.GetUserProfile(7)
		assert.Error(t, err)
	})
}
