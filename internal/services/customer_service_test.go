package services

import (
	"testing"
	"time"

	"storefront/internal/auth"
	"storefront/internal/domain"
	"storefront/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", 30*time.Minute)
}

func TestCustomerService_RegisterHashesPassword(t *testing.T) {
	mockRepo := new(mocks.MockCustomerRepository)
	mockRepo.On("Save", mock.AnythingOfType("*domain.Customer")).Return(nil).Run(func(args mock.Arguments) {
		customer := args.Get(0).(*domain.Customer)
		customer.ID = 7
	})

	service := NewCustomerService(mockRepo, newTestIssuer(), "admin", "admin123")

	customer, err := service.Register("alice", "s3cret-pass")

	assert.NoError(t, err)
	assert.Equal(t, uint64(7), customer.ID)
	assert.NotEqual(t, "s3cret-pass", customer.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte("s3cret-pass")))
}

func TestCustomerService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	issuer := newTestIssuer()

	tests := []struct {
		name          string
		password      string
		setupMocks    func(*mocks.MockCustomerRepository)
		expectedError error
	}{
		{
			name:     "matching password yields customer token",
			password: "s3cret-pass",
			setupMocks: func(mockRepo *mocks.MockCustomerRepository) {
				mockRepo.On("FindByUsername", "alice").Return([]domain.Customer{
					{ID: 7, Username: "alice", Password: string(hash)},
				}, nil)
			},
		},
		{
			name:     "wrong password",
			password: "nope",
			setupMocks: func(mockRepo *mocks.MockCustomerRepository) {
				mockRepo.On("FindByUsername", "alice").Return([]domain.Customer{
					{ID: 7, Username: "alice", Password: string(hash)},
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown username",
			password: "s3cret-pass",
			setupMocks: func(mockRepo *mocks.MockCustomerRepository) {
				mockRepo.On("FindByUsername", "alice").Return([]domain.Customer{}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockCustomerRepository)
			tt.setupMocks(mockRepo)

			service := NewCustomerService(mockRepo, issuer, "admin", "admin123")

			token, err := service.Login("alice", tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				identity, err := issuer.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, auth.RoleCustomer, identity.Role)
				assert.Equal(t, uint64(7), identity.CustomerID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCustomerService_AdminLogin(t *testing.T) {
	issuer := newTestIssuer()
	service := NewCustomerService(new(mocks.MockCustomerRepository), issuer, "admin", "admin123")

	token, err := service.AdminLogin("admin", "admin123")
	assert.NoError(t, err)

	identity, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.True(t, identity.IsAdmin())

	_, err = service.AdminLogin("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
