package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

type AccountService interface {
	Profile(ctx context.Context, userID int64) (*entity.User, error)
	ListAddresses(ctx context.Context) ([]entity.Address, error)
	SaveAddress(ctx context.Context, addr entity.Address) (*entity.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
	ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	SavePaymentMethod(ctx context.Context, method entity.PaymentMethod) (*entity.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id int64) error
}

type accountService struct {
	users     repository.UserRepository
	addresses repository.AddressRepository
	methods   repository.PaymentMethodRepository
	clock     clock.Clock
	log       logger.Logger
}

func NewAccountService(
	users repository.UserRepository,
	addresses repository.AddressRepository,
	methods repository.PaymentMethodRepository,
	clk clock.Clock,
	log logger.Logger,
) AccountService {
	return &accountService{users: users, addresses: addresses, methods: methods, clock: clk, log: log}
}

func (s *accountService) Profile(ctx context.Context, userID int64) (*entity.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *accountService) ListAddresses(ctx context.Context) ([]entity.Address, error) {
	return s.addresses.List(ctx)
}

// SaveAddress creates the address when ID is zero and replaces it otherwise.
func (s *accountService) SaveAddress(ctx context.Context, addr entity.Address) (*entity.Address, error) {
	if strings.TrimSpace(addr.FullName) == "" || strings.TrimSpace(addr.Street) == "" || strings.TrimSpace(addr.City) == "" {
		return nil, fmt.Errorf("%w: full name, street and city are required", entity.ErrInvalidInput)
	}
	switch addr.Type {
	case entity.AddressHome, entity.AddressWork, entity.AddressOther:
	case "":
		addr.Type = entity.AddressOther
	default:
		return nil, fmt.Errorf("%w: unknown address type %q", entity.ErrInvalidInput, addr.Type)
	}

	if addr.ID == 0 {
		addr.ID = s.clock.NextID()
	} else if _, err := s.addresses.GetByID(ctx, addr.ID); err != nil {
		return nil, err
	}
	if err := s.addresses.Save(ctx, addr); err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}
	s.log.Infof("Saved address %d (default=%t)", addr.ID, addr.IsDefault)
	return &addr, nil
}

func (s *accountService) DeleteAddress(ctx context.Context, id int64) error {
	return s.addresses.Delete(ctx, id)
}

func (s *accountService) ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return s.methods.List(ctx)
}

func (s *accountService) SavePaymentMethod(ctx context.Context, method entity.PaymentMethod) (*entity.PaymentMethod, error) {
	if strings.TrimSpace(method.Type) == "" {
		return nil, fmt.Errorf("%w: payment method type is required", entity.ErrInvalidInput)
	}
	if method.Last4 == "" && method.Email == "" {
		return nil, fmt.Errorf("%w: a card number or an account e-mail is required", entity.ErrInvalidInput)
	}
	if method.Last4 != "" && !isDigits(method.Last4, 4) {
		return nil, fmt.Errorf("%w: last4 must be four digits", entity.ErrInvalidInput)
	}

	if method.ID == 0 {
		method.ID = s.clock.NextID()
	} else if _, err := s.methods.GetByID(ctx, method.ID); err != nil {
		return nil, err
	}
	if err := s.methods.Save(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}
	s.log.Infof("Saved payment method %d (%s)", method.ID, method.Label())
	return &method, nil
}

func (s *accountService) DeletePaymentMethod(ctx context.Context, id int64) error {
	return s.methods.Delete(ctx, id)
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
