package testutil

import (
	"testing"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/storage/inmem"
)

// PrepareDB opens a fresh store loaded with the fixture dataset.
func PrepareDB(t *testing.T) *inmem.DB {
	t.Helper()

	db, err := inmem.Open()
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	if err := inmem.Seed(db); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	return db
}

// PrepareEmptyDB opens a fresh, unseeded store.
func PrepareEmptyDB(t *testing.T) *inmem.DB {
	t.Helper()

	db, err := inmem.Open()
	if err != nil {
		t.Fatalf("PrepareEmptyDB() failed: %v", err)
	}
	return db
}

func CreateAccount(
	t *testing.T,
	repo auth.Repository,
	name, email, role, pwd string,
) auth.Account {
	t.Helper()

	acct := auth.Account{
		Identity: auth.Identity{
			Name:  name,
			Email: email,
			Role:  role,
		},
	}
	if pwd != "" {
		if err := acct.SetPassword(pwd); err != nil {
			t.Fatalf("CreateAccount() failed: %v", err)
		}
	}
	acct, err := repo.CreateAccount(acct)
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	return acct
}
