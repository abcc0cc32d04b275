package auth

import (
	"errors"

	"github.com/trezcool/shule/core"
)

var (
	// errors
	ErrNotFound             = errors.New("account not found")
	ErrEmailExists          = errors.New("an account with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

type (
	// Repository is the account registry. It is seeded at process start and
	// is the sole source of authentication decisions.
	Repository interface {
		CreateAccount(acct Account) (Account, error)
		QueryAllAccounts() ([]Account, error)
		GetAccountByID(id string) (Account, error)
		GetAccountByEmail(email string) (Account, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Register(na NewAccount) (Identity, error) {
	if _, err := svc.repo.GetAccountByEmail(na.Email); err == nil {
		return Identity{}, core.NewValidationError("", core.FieldError{Field: "email", Message: ErrEmailExists.Error()})
	}
	acct := Account{
		Identity: Identity{
			Email:  na.Email,
			Name:   na.Name,
			Role:   na.Role,
			Avatar: na.Avatar,
		},
	}
	if err := acct.SetPassword(na.Password); err != nil {
		return Identity{}, err
	}
	acct, err := svc.repo.CreateAccount(acct)
	if err != nil {
		return Identity{}, err
	}
	return acct.Identity, nil
}

func (svc *Service) QueryAll() ([]Account, error) {
	return svc.repo.QueryAllAccounts()
}

func (svc *Service) GetByID(id string) (Account, error) {
	return svc.repo.GetAccountByID(id)
}

func (svc *Service) GetByEmail(email string) (Account, error) {
	return svc.repo.GetAccountByEmail(core.CleanString(email, true /* lower */))
}

// Authenticate checks the credentials against the registry and returns the
// matching Identity, credentials excluded. Any mismatch — unknown email or
// wrong password — yields ErrAuthenticationFailed.
func (svc *Service) Authenticate(email, pwd string) (Identity, error) {
	if acct, err := svc.GetByEmail(email); err == nil {
		if err := acct.CheckPassword(pwd); err == nil {
			return acct.Identity, nil
		}
	}
	return Identity{}, ErrAuthenticationFailed
}
