package main

import (
	"database/sql"

	"github.com/interlinkedhq/interlinked/storage/database"
)

var gooseRunFunc = func(command string, db *sql.DB, args ...string) error { // mockable
	return database.RunGooseCommand(command, db, args...)
}

func (cli *commandLine) migrate(args []string) error {
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db, arguments...)
}
