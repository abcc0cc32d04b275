package main

import (
	"errors"
	"fmt"
)

var errLoginFailed = errors.New("login failed")

// checkLogin drives a full session round-trip against the seeded registry.
func (cli *commandLine) checkLogin(email, pwd string) error {
	if ok := cli.session.Login(email, pwd); !ok {
		return errLoginFailed
	}
	ident, _ := cli.session.Current()
	fmt.Printf("OK: %s <%s> role=%s\n", ident.Name, ident.Email, ident.Role)
	cli.session.Logout()
	return nil
}
