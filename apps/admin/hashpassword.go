package main

import (
	"fmt"

	"github.com/trezcool/shule/core/auth"
)

// hashPassword prints the bcrypt hash of the prompted password, ready to be
// pasted into a registry fixture.
func (cli *commandLine) hashPassword(pwd string) error {
	var acct auth.Account
	if err := acct.SetPassword(pwd); err != nil {
		return err
	}
	fmt.Println(string(acct.PasswordHash))
	return nil
}
