package main

import (
	"log"
	"os"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/storage/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the seeded store
	db, err := inmem.Open()
	errAndDie(err)
	errAndDie(inmem.Seed(db))

	// start CLI
	cli := commandLine{
		session: auth.NewSession(auth.NewService(inmem.NewAccountRepository(db))),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
