package services

import (
	"log"
	"strings"

	"storefront/internal/auth"
	"storefront/internal/domain"
	"storefront/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type CustomerService struct {
	repo   repository.CustomerRepository
	tokens *auth.TokenIssuer

	adminUsername string
	adminPassword string
}

func NewCustomerService(r repository.CustomerRepository, tokens *auth.TokenIssuer, adminUsername, adminPassword string) *CustomerService {
	return &CustomerService{
		repo:          r,
		tokens:        tokens,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

func (s *CustomerService) Register(username, password string) (*domain.Customer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Username: username,
		Password: string(hash),
	}
	if err := s.repo.Save(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Login checks every customer row carrying the username; usernames are not
// unique, the password picks the match.
func (s *CustomerService) Login(username, password string) (string, error) {
	customers, err := s.repo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", err
	}

	for _, customer := range customers {
		if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) == nil {
			return s.tokens.IssueCustomer(customer.ID)
		}
	}
	return "", ErrInvalidCredentials
}

func (s *CustomerService) AdminLogin(username, password string) (string, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return "", ErrInvalidCredentials
	}
	return s.tokens.IssueAdmin()
}

func (s *CustomerService) GetByID(id uint64) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *CustomerService) List() ([]domain.Customer, error) {
	return s.repo.FindAll()
}

func (s *CustomerService) Update(id uint64, username, password string) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if username != "" {
		customer.Username = strings.TrimSpace(username)
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		customer.Password = string(hash)
	}

	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(id uint64) error {
	customer, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	log.Printf("customer %d deleted", id)
	return nil
}
