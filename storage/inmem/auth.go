package inmem

import (
	"strconv"

	"github.com/trezcool/shule/core/auth"
)

type accountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) auth.Repository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) CreateAccount(acct auth.Account) (auth.Account, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if acct.ID == "" {
		acct.ID = repo.db.nextID()
	} else if n, err := strconv.Atoi(acct.ID); err == nil && n > repo.db.pkCount {
		// keep the counter ahead of seeded numeric ids
		repo.db.pkCount = n
	}
	repo.db.accounts = append(repo.db.accounts, acct)
	return acct, nil
}

func (repo *accountRepository) QueryAllAccounts() ([]auth.Account, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	accounts := make([]auth.Account, len(repo.db.accounts))
	copy(accounts, repo.db.accounts)
	return accounts, nil
}

func (repo *accountRepository) GetAccountByID(id string) (auth.Account, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, acct := range repo.db.accounts {
		if acct.ID == id {
			return acct, nil
		}
	}
	return auth.Account{}, auth.ErrNotFound
}

func (repo *accountRepository) GetAccountByEmail(email string) (auth.Account, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, acct := range repo.db.accounts {
		if acct.Email == email {
			return acct, nil
		}
	}
	return auth.Account{}, auth.ErrNotFound
}
